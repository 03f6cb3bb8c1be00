package dbmodels

import (
	"attachment-hub-backend/models"
	"time"
)

type JobApplication struct {
	BaseModel
	JobID          string                   `gorm:"type:varchar(36);uniqueIndex:idx_application_job_student"`
	Job            *JobPost                 `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE"`
	StudentID      string                   `gorm:"type:varchar(36);uniqueIndex:idx_application_job_student"`
	Student        *User                    `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE"`
	CoverLetter    string
	ResumeKey      string
	Status         models.ApplicationStatus `gorm:"type:varchar(20);index"`
	CertifyTruth   bool
	AgreeAtWill    bool
	SubmittedAt    *time.Time
	Personal       *ApplicationPersonal        `gorm:"foreignKey:ApplicationID;constraint:OnDelete:CASCADE"`
	Educations     []ApplicationEducation     `gorm:"foreignKey:ApplicationID;constraint:OnDelete:CASCADE"`
	Certifications []ApplicationCertification `gorm:"foreignKey:ApplicationID;constraint:OnDelete:CASCADE"`
	Employments    []ApplicationEmployment    `gorm:"foreignKey:ApplicationID;constraint:OnDelete:CASCADE"`
	References     []ApplicationReference     `gorm:"foreignKey:ApplicationID;constraint:OnDelete:CASCADE"`
	Questions      []ApplicationQuestion      `gorm:"foreignKey:ApplicationID;constraint:OnDelete:CASCADE"`
	Criminal       *ApplicationCriminalHistory `gorm:"foreignKey:ApplicationID;constraint:OnDelete:CASCADE"`
	Referral       *ApplicationReferral        `gorm:"foreignKey:ApplicationID;constraint:OnDelete:CASCADE"`
	EEO            *ApplicationEEO             `gorm:"foreignKey:ApplicationID;constraint:OnDelete:CASCADE"`
}

// ApplicationExt is an application row joined with the student's identity for applicant lists.
type ApplicationExt struct {
	JobApplication
	Username string
	Email    string
	FullName string
}

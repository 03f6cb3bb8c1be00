package dbmodels

import "time"

type ApplicationPersonal struct {
	BaseModel
	ApplicationID     string `gorm:"type:varchar(36);uniqueIndex"`
	FullLegalName     string `gorm:"type:varchar(255)"`
	PreviousNames     string `gorm:"type:varchar(255)"`
	Phone             string `gorm:"type:varchar(50)"`
	Email             string `gorm:"type:varchar(255)"`
	Address           string `gorm:"type:varchar(255)"`
	EligibleToWork    *bool
	StartDate         *time.Time `gorm:"type:date"`
	PreferredSchedule string     `gorm:"type:varchar(255)"`
}

type ApplicationEducation struct {
	BaseModel
	ApplicationID   string `gorm:"type:varchar(36);index"`
	Institution     string `gorm:"type:varchar(255)"`
	DegreeOrDiploma string `gorm:"type:varchar(255)"`
	FieldOfStudy    string `gorm:"type:varchar(255)"`
	StartYear       string `gorm:"type:varchar(10)"`
	EndYear         string `gorm:"type:varchar(10)"`
	Graduated       bool
}

type ApplicationCertification struct {
	BaseModel
	ApplicationID string     `gorm:"type:varchar(36);index"`
	Name          string     `gorm:"type:varchar(255)"`
	Issuer        string     `gorm:"type:varchar(255)"`
	LicenseNumber string     `gorm:"type:varchar(100)"`
	ValidThrough  *time.Time `gorm:"type:date"`
}

type ApplicationEmployment struct {
	BaseModel
	ApplicationID    string     `gorm:"type:varchar(36);index"`
	CompanyName      string     `gorm:"type:varchar(255)"`
	CompanyAddress   string     `gorm:"type:varchar(255)"`
	CompanyPhone     string     `gorm:"type:varchar(50)"`
	JobTitle         string     `gorm:"type:varchar(255)"`
	StartDate        *time.Time `gorm:"type:date"`
	EndDate          *time.Time `gorm:"type:date"`
	Responsibilities string
	SupervisorName   string `gorm:"type:varchar(255)"`
	ReasonForLeaving string `gorm:"type:varchar(255)"`
}

type ApplicationReference struct {
	BaseModel
	ApplicationID string `gorm:"type:varchar(36);index"`
	Name          string `gorm:"type:varchar(255)"`
	Title         string `gorm:"type:varchar(255)"`
	Phone         string `gorm:"type:varchar(50)"`
	Email         string `gorm:"type:varchar(255)"`
	Relationship  string `gorm:"type:varchar(255)"`
}

type ApplicationQuestion struct {
	BaseModel
	ApplicationID string `gorm:"type:varchar(36);index"`
	Prompt        string `gorm:"type:varchar(255)"`
	Answer        string
}

type ApplicationCriminalHistory struct {
	BaseModel
	ApplicationID         string `gorm:"type:varchar(36);uniqueIndex"`
	HasUnspentConvictions *bool
	Explanation           string
}

type ApplicationReferral struct {
	BaseModel
	ApplicationID string `gorm:"type:varchar(36);uniqueIndex"`
	Source        string `gorm:"type:varchar(255)"`
	Details       string `gorm:"type:varchar(255)"`
}

// ApplicationEEO is voluntary and never used for decisions.
type ApplicationEEO struct {
	BaseModel
	ApplicationID string `gorm:"type:varchar(36);uniqueIndex"`
	Gender        string `gorm:"type:varchar(50)"`
	Ethnicity     string `gorm:"type:varchar(100)"`
	VeteranStatus string `gorm:"type:varchar(100)"`
}

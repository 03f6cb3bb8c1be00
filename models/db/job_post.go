package dbmodels

import (
	"attachment-hub-backend/models"
	"time"
)

type JobPost struct {
	BaseModel
	CompanyID           string                  `gorm:"type:varchar(36);index"`
	Company             *CompanyProfile         `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE"`
	Title               string                  `gorm:"type:varchar(255);index"`
	Department          string                  `gorm:"type:varchar(255)"`
	Location            string                  `gorm:"type:varchar(255)"`
	Region              string                  `gorm:"type:varchar(255)"`
	WorkLocationType    models.WorkLocationType `gorm:"type:varchar(10)"`
	JobType             models.JobType          `gorm:"type:varchar(12);index"`
	ExperienceLevel     models.ExperienceLevel  `gorm:"type:varchar(6);index"`
	SalaryMin           *float64                `gorm:"type:numeric(12,2)"`
	SalaryMax           *float64                `gorm:"type:numeric(12,2)"`
	Currency            models.Currency         `gorm:"type:varchar(3)"`
	Responsibilities    string
	Benefits            string
	ApplicationDeadline *time.Time `gorm:"type:date"`
	EasyApply           bool
	StandardApply       bool
	IsActive            bool `gorm:"index"`
}

package dbmodels

import (
	"attachment-hub-backend/models"
	"time"

	"github.com/lib/pq"
)

type Vacancy struct {
	BaseModel
	CompanyID          string          `gorm:"type:varchar(36);index"`
	Company            *CompanyProfile `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE"`
	Title              string          `gorm:"type:varchar(255);index"`
	Department         string          `gorm:"type:varchar(255)"`
	Location           string          `gorm:"type:varchar(255)"`
	Duration           string          `gorm:"type:varchar(255)"`
	RequiredSkills     pq.StringArray  `gorm:"type:text[]"`
	Requirements       string
	ApplicationMethod  string `gorm:"type:varchar(255)"`
	ApplicationLink    string
	PositionsAvailable int `gorm:"default:1"`
	StartDate          *time.Time `gorm:"type:date"`
	Region             string     `gorm:"type:varchar(255)"`
	Deadline           time.Time  `gorm:"type:date;index"`
	IsVerifiedVacancy  bool
	IsActive           bool `gorm:"index"`
}

func (v Vacancy) IsExpired(today time.Time) bool {
	return v.Deadline.Before(today)
}

func (v Vacancy) Badge() models.VerificationBadge {
	if v.IsVerifiedVacancy {
		return models.BadgeVerifiedVacancy
	}
	if v.Company == nil {
		return models.BadgeNotVerified
	}
	return v.Company.Badge()
}

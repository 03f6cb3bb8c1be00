package dbmodels

import (
	"attachment-hub-backend/models"
	"time"
)

type User struct {
	BaseModel
	Username       string          `gorm:"type:varchar(150);uniqueIndex"`
	Email          string          `gorm:"type:varchar(255);uniqueIndex"`
	Password       string          `gorm:"type:varchar(255)"`
	Role           models.UserRole `gorm:"type:varchar(20);index"`
	IsActive       bool
	LastLogin      *time.Time
	CompanyProfile *CompanyProfile `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	StudentProfile *StudentProfile `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

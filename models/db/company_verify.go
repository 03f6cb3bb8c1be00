package dbmodels

import "time"

// CompanyVerifyToken tracks issued verification links so each one can be used once.
type CompanyVerifyToken struct {
	BaseModel
	UserID      string `gorm:"type:varchar(36);index"`
	TokenID     string `gorm:"type:varchar(36);uniqueIndex"`
	DateExpires time.Time
	DateUsed    *time.Time
}

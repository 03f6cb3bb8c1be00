package dbmodels

import "time"

type Testimony struct {
	BaseModel
	Username     string `gorm:"type:varchar(150);index"`
	FullName     string `gorm:"type:varchar(255)"`
	Company      string `gorm:"type:varchar(255)"`
	CompanyEmail string `gorm:"type:varchar(255)"`
	University   string `gorm:"type:varchar(255)"`
	StartDate    string `gorm:"type:varchar(20)"`
	EndDate      string `gorm:"type:varchar(20)"`
	Department   string `gorm:"type:varchar(255)"`
	Rating       int
	Notes        string
	Timestamp    time.Time `gorm:"autoCreateTime"`
}

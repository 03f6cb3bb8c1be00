package dbmodels

type PortalUser struct {
	BaseModel
	FullName   string `gorm:"type:varchar(255)"`
	Age        int
	Dob        string `gorm:"type:varchar(20)"`
	Course     string `gorm:"type:varchar(255)"`
	Year       string `gorm:"type:varchar(20)"`
	Email      string `gorm:"type:varchar(255);uniqueIndex"`
	University string `gorm:"type:varchar(255)"`
	Username   string `gorm:"type:varchar(150);uniqueIndex"`
	Password   string `gorm:"type:varchar(255)"`
}

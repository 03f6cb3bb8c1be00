package dbmodels

type StudentProfile struct {
	BaseModel
	UserID             string `gorm:"type:varchar(36);uniqueIndex"`
	FullName           string `gorm:"type:varchar(255)"`
	Phone              string `gorm:"type:varchar(50)"`
	Location           string `gorm:"type:varchar(255)"`
	EducationHistory   string
	WorkExperience     string
	DefaultCoverLetter string
	ResumeKey          string
}

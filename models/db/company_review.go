package dbmodels

type CompanyReview struct {
	BaseModel
	CompanyID string          `gorm:"type:varchar(36);index"`
	Company   *CompanyProfile `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE"`
	Name      string          `gorm:"type:varchar(150)"`
	Rating    int
	Comment   string
	Approved  bool `gorm:"index"`
}

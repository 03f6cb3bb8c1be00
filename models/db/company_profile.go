package dbmodels

import "attachment-hub-backend/models"

type CompanyProfile struct {
	BaseModel
	UserID             string `gorm:"type:varchar(36);uniqueIndex"`
	User               *User  `gorm:"foreignKey:UserID"`
	Name               string `gorm:"type:varchar(255);index"`
	RegistrationNumber string `gorm:"type:varchar(100);uniqueIndex"`
	Industry           string `gorm:"type:varchar(255)"`
	Location           string `gorm:"type:varchar(255)"`
	Region             string `gorm:"type:varchar(255)"`
	MapEmbedURL        string
	ContactPerson      string `gorm:"type:varchar(255)"`
	OfficialEmail      string `gorm:"type:varchar(255)"`
	PhoneNumber        string `gorm:"type:varchar(50)"`
	Website            string
	LogoKey            string
	EmailVerified      bool
	AdminApproved      bool
	IsVerifiedCompany  bool
}

// CanPost is the posting privilege for vacancies and jobs.
func (c CompanyProfile) CanPost() bool {
	return c.EmailVerified && c.AdminApproved
}

// Badge is the trust level shown next to postings of this company.
func (c CompanyProfile) Badge() models.VerificationBadge {
	if c.IsVerifiedCompany {
		return models.BadgeVerifiedCompany
	}
	if c.AdminApproved {
		return models.BadgeApprovedCompany
	}
	return models.BadgeNotVerified
}

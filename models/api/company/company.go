package companyapimodels

import (
	"attachment-hub-backend/models"
	apimodels "attachment-hub-backend/models/api"
	jobapimodels "attachment-hub-backend/models/api/job"
	reviewapimodels "attachment-hub-backend/models/api/review"
	vacancyapimodels "attachment-hub-backend/models/api/vacancy"
	dbmodels "attachment-hub-backend/models/db"
	"strings"
	"time"
)

type CompanyDetails struct {
	Industry      string `json:"industry" validate:"required,max=255"`
	Location      string `json:"location" validate:"required,max=255"`
	Region        string `json:"region" validate:"max=255"`
	ContactPerson string `json:"contact_person" validate:"required,max=255"`
	OfficialEmail string `json:"official_email" validate:"required,email"`
	PhoneNumber   string `json:"phone_number" validate:"max=50"`
	Website       string `json:"website" validate:"omitempty,url"`
	MapEmbedURL   string `json:"map_embed_url" validate:"omitempty,url"`
}

type CompanyRegister struct {
	Username           string `json:"username" validate:"required,max=150"`
	Email              string `json:"email" validate:"required,email"`
	Password           string `json:"password" validate:"required,min=8"`
	PasswordConfirm    string `json:"password_confirm" validate:"required,eqfield=Password"`
	Name               string `json:"name" validate:"required,max=255"`
	RegistrationNumber string `json:"registration_number" validate:"required,max=100"`
	CompanyDetails
}

func (r CompanyRegister) Validate() error {
	return apimodels.ValidateStruct(r)
}

func (r CompanyRegister) ToDb(userID string) dbmodels.CompanyProfile {
	return dbmodels.CompanyProfile{
		UserID:             userID,
		Name:               strings.TrimSpace(r.Name),
		RegistrationNumber: strings.TrimSpace(r.RegistrationNumber),
		Industry:           r.Industry,
		Location:           r.Location,
		Region:             r.Region,
		MapEmbedURL:        r.MapEmbedURL,
		ContactPerson:      r.ContactPerson,
		OfficialEmail:      r.OfficialEmail,
		PhoneNumber:        r.PhoneNumber,
		Website:            r.Website,
	}
}

type CompanyProfileUpdate struct {
	Name string `json:"name" validate:"required,max=255"`
	CompanyDetails
}

func (r CompanyProfileUpdate) Validate() error {
	return apimodels.ValidateStruct(r)
}

func (r CompanyProfileUpdate) ToUpdMap() map[string]interface{} {
	return map[string]interface{}{
		"name":           strings.TrimSpace(r.Name),
		"industry":       r.Industry,
		"location":       r.Location,
		"region":         r.Region,
		"contact_person": r.ContactPerson,
		"official_email": r.OfficialEmail,
		"phone_number":   r.PhoneNumber,
		"website":        r.Website,
		"map_embed_url":  r.MapEmbedURL,
	}
}

type CompanyView struct {
	ID                 string                   `json:"id"`
	Name               string                   `json:"name"`
	RegistrationNumber string                   `json:"registration_number"`
	CompanyDetails
	HasLogo           bool                     `json:"has_logo"`
	EmailVerified     bool                     `json:"email_verified"`
	AdminApproved     bool                     `json:"admin_approved"`
	IsVerifiedCompany bool                     `json:"is_verified_company"`
	CanPost           bool                     `json:"can_post"`
	Badge             models.VerificationBadge `json:"badge"`
	CreatedAt         time.Time                `json:"created_at"`
	Username          string                   `json:"username,omitempty"`
	Email             string                   `json:"email,omitempty"`
}

func CompanyConvert(rec dbmodels.CompanyProfile) CompanyView {
	result := CompanyView{
		ID:                 rec.ID,
		Name:               rec.Name,
		RegistrationNumber: rec.RegistrationNumber,
		CompanyDetails: CompanyDetails{
			Industry:      rec.Industry,
			Location:      rec.Location,
			Region:        rec.Region,
			ContactPerson: rec.ContactPerson,
			OfficialEmail: rec.OfficialEmail,
			PhoneNumber:   rec.PhoneNumber,
			Website:       rec.Website,
			MapEmbedURL:   rec.MapEmbedURL,
		},
		HasLogo:           rec.LogoKey != "",
		EmailVerified:     rec.EmailVerified,
		AdminApproved:     rec.AdminApproved,
		IsVerifiedCompany: rec.IsVerifiedCompany,
		CanPost:           rec.CanPost(),
		Badge:             rec.Badge(),
		CreatedAt:         rec.CreatedAt,
	}
	if rec.User != nil {
		result.Username = rec.User.Username
		result.Email = rec.User.Email
	}
	return result
}

type RegisterResult struct {
	CompanyID string `json:"company_id"`
	Message   string `json:"message"`
}

type PublicProfileTab string

const (
	AttachmentsTab PublicProfileTab = "attachments"
	JobsTab        PublicProfileTab = "jobs"
)

func (t PublicProfileTab) Normalize() PublicProfileTab {
	if t == JobsTab {
		return JobsTab
	}
	return AttachmentsTab
}

type PublicProfile struct {
	Company       CompanyView                    `json:"company"`
	Tab           PublicProfileTab               `json:"tab"`
	Attachments   []vacancyapimodels.VacancyView `json:"attachments"`
	Jobs          []jobapimodels.JobView         `json:"jobs"`
	AverageRating *float64                       `json:"average_rating"`
	Reviews       []reviewapimodels.ReviewView   `json:"reviews"`
}

type Dashboard struct {
	Company   CompanyView                    `json:"company"`
	Vacancies []vacancyapimodels.VacancyView `json:"vacancies"`
	Jobs      []jobapimodels.JobView         `json:"jobs"`
}

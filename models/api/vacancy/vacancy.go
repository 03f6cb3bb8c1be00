package vacancyapimodels

import (
	"attachment-hub-backend/lib/utils/helpers"
	"attachment-hub-backend/models"
	apimodels "attachment-hub-backend/models/api"
	dbmodels "attachment-hub-backend/models/db"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const DateLayout = "2006-01-02"

// PageSize is the fixed page size of the public vacancy list.
const PageSize = 12

type VacancyData struct {
	Title              string   `json:"title" validate:"required,max=255"`
	Department         string   `json:"department" validate:"required,max=255"`
	Location           string   `json:"location" validate:"required,max=255"`
	Duration           string   `json:"duration" validate:"required,max=255"`
	RequiredSkills     []string `json:"required_skills" validate:"required,min=1"`
	Requirements       string   `json:"requirements" validate:"required"`
	ApplicationMethod  string   `json:"application_method" validate:"required,max=255"`
	ApplicationLink    string   `json:"application_link" validate:"omitempty,url"`
	PositionsAvailable int      `json:"positions_available" validate:"omitempty,gte=1"`
	StartDate          string   `json:"start_date" validate:"omitempty,datetime=2006-01-02"` // YYYY-MM-DD
	Region             string   `json:"region" validate:"max=255"`
	Deadline           string   `json:"deadline" validate:"required,datetime=2006-01-02"` // YYYY-MM-DD
	IsVerifiedVacancy  bool     `json:"is_verified_vacancy"`                              // honoured for staff only
	IsActive           *bool    `json:"is_active"`
}

func (v VacancyData) Validate() error {
	if err := apimodels.ValidateStruct(v); err != nil {
		return err
	}
	if v.PositionsAvailable < 0 {
		return errors.New("positions_available: must be at least 1")
	}
	return nil
}

func (v VacancyData) GetDeadline() (time.Time, error) {
	return helpers.ParseDate(v.Deadline)
}

func (v VacancyData) GetStartDate() (*time.Time, error) {
	if v.StartDate == "" {
		return nil, nil
	}
	d, err := helpers.ParseDate(v.StartDate)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (v VacancyData) GetPositions() int {
	if v.PositionsAvailable <= 0 {
		return 1
	}
	return v.PositionsAvailable
}

func (v VacancyData) GetIsActive() bool {
	if v.IsActive == nil {
		return true
	}
	return *v.IsActive
}

func (v VacancyData) GetSkills() []string {
	result := make([]string, 0, len(v.RequiredSkills))
	for _, skill := range v.RequiredSkills {
		skill = strings.TrimSpace(skill)
		if skill != "" {
			result = append(result, skill)
		}
	}
	return result
}

type VacancyFilter struct {
	Q        string `query:"q"`        // title, department, location, region, skills
	Company  string `query:"company"`  // company name contains
	Verified string `query:"verified"` // "1" keeps rows of verified companies only
	Page     int    `query:"page"`
}

func (f VacancyFilter) OnlyVerified() bool {
	return f.Verified == "1"
}

func (f VacancyFilter) GetPage() (page, limit int) {
	page = 1
	if f.Page > 0 {
		page = f.Page
	}
	return page, PageSize
}

type VacancyView struct {
	ID                 string                   `json:"id"`
	CompanyID          string                   `json:"company_id"`
	CompanyName        string                   `json:"company_name"`
	Title              string                   `json:"title"`
	Department         string                   `json:"department"`
	Location           string                   `json:"location"`
	Duration           string                   `json:"duration"`
	RequiredSkills     []string                 `json:"required_skills"`
	Requirements       string                   `json:"requirements"`
	ApplicationMethod  string                   `json:"application_method"`
	ApplicationLink    string                   `json:"application_link"`
	PositionsAvailable int                      `json:"positions_available"`
	StartDate          string                   `json:"start_date,omitempty"`
	Region             string                   `json:"region"`
	Deadline           string                   `json:"deadline"`
	IsVerifiedVacancy  bool                     `json:"is_verified_vacancy"`
	IsActive           bool                     `json:"is_active"`
	IsExpired          bool                     `json:"is_expired"`
	Badge              models.VerificationBadge `json:"badge"`
	CreatedAt          time.Time                `json:"created_at"`
}

func VacancyConvert(rec dbmodels.Vacancy, today time.Time) VacancyView {
	result := VacancyView{
		ID:                 rec.ID,
		CompanyID:          rec.CompanyID,
		Title:              rec.Title,
		Department:         rec.Department,
		Location:           rec.Location,
		Duration:           rec.Duration,
		RequiredSkills:     []string(rec.RequiredSkills),
		Requirements:       rec.Requirements,
		ApplicationMethod:  rec.ApplicationMethod,
		ApplicationLink:    rec.ApplicationLink,
		PositionsAvailable: rec.PositionsAvailable,
		Region:             rec.Region,
		Deadline:           rec.Deadline.Format(DateLayout),
		IsVerifiedVacancy:  rec.IsVerifiedVacancy,
		IsActive:           rec.IsActive,
		IsExpired:          rec.IsExpired(today),
		Badge:              rec.Badge(),
		CreatedAt:          rec.CreatedAt,
	}
	if result.RequiredSkills == nil {
		result.RequiredSkills = []string{}
	}
	if rec.StartDate != nil {
		result.StartDate = rec.StartDate.Format(DateLayout)
	}
	if rec.Company != nil {
		result.CompanyName = rec.Company.Name
	}
	return result
}

type ReviewSummary struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

type VacancyDetail struct {
	VacancyView
	AverageRating *float64        `json:"average_rating"`
	Reviews       []ReviewSummary `json:"reviews"`
}

package jobapimodels

import (
	"attachment-hub-backend/lib/utils/helpers"
	"attachment-hub-backend/models"
	apimodels "attachment-hub-backend/models/api"
	dbmodels "attachment-hub-backend/models/db"
	"time"

	"github.com/pkg/errors"
)

const DateLayout = "2006-01-02"

type JobData struct {
	Title               string                  `json:"title" validate:"required,max=255"`
	Department          string                  `json:"department" validate:"max=255"`
	Location            string                  `json:"location" validate:"required,max=255"`
	Region              string                  `json:"region" validate:"max=255"`
	WorkLocationType    models.WorkLocationType `json:"work_location_type"`
	JobType             models.JobType          `json:"job_type"`
	ExperienceLevel     models.ExperienceLevel  `json:"experience_level"`
	SalaryMin           *float64                `json:"salary_min" validate:"omitempty,gte=0"`
	SalaryMax           *float64                `json:"salary_max" validate:"omitempty,gte=0"`
	Currency            models.Currency         `json:"currency"`
	Responsibilities    string                  `json:"responsibilities"`
	Benefits            string                  `json:"benefits"`
	ApplicationDeadline string                  `json:"application_deadline" validate:"omitempty,datetime=2006-01-02"` // optional, open-ended when empty
	EasyApply           *bool                   `json:"easy_apply"`                                                     // default true
	StandardApply       *bool                   `json:"standard_apply"`                                                 // default false
	IsActive            *bool                   `json:"is_active"`                                                      // default true
}

func (r JobData) Validate() error {
	if err := apimodels.ValidateStruct(r); err != nil {
		return err
	}
	if r.WorkLocationType != "" && !r.WorkLocationType.IsValid() {
		return errors.New("work_location_type: must be one of [ONSITE REMOTE HYBRID]")
	}
	if r.JobType != "" && !r.JobType.IsValid() {
		return errors.New("job_type: must be one of [FULL_TIME PART_TIME CONTRACT FREELANCE INTERN]")
	}
	if r.ExperienceLevel != "" && !r.ExperienceLevel.IsValid() {
		return errors.New("experience_level: must be one of [ENTRY MID SENIOR EXEC]")
	}
	if r.Currency != "" && !r.Currency.IsValid() {
		return errors.New("currency: must be one of [KES USD EUR GBP]")
	}
	if r.SalaryMin != nil && r.SalaryMax != nil && *r.SalaryMin > *r.SalaryMax {
		return errors.New("salary_max: must be greater than or equal to salary_min")
	}
	return nil
}

func (r JobData) ToDb(companyID string) (dbmodels.JobPost, error) {
	rec := dbmodels.JobPost{
		CompanyID:        companyID,
		Title:            r.Title,
		Department:       r.Department,
		Location:         r.Location,
		Region:           r.Region,
		WorkLocationType: r.WorkLocationType,
		JobType:          r.JobType,
		ExperienceLevel:  r.ExperienceLevel,
		SalaryMin:        r.SalaryMin,
		SalaryMax:        r.SalaryMax,
		Currency:         r.Currency,
		Responsibilities: r.Responsibilities,
		Benefits:         r.Benefits,
		EasyApply:        boolOr(r.EasyApply, true),
		StandardApply:    boolOr(r.StandardApply, false),
		IsActive:         boolOr(r.IsActive, true),
	}
	if rec.WorkLocationType == "" {
		rec.WorkLocationType = models.OnsiteLocation
	}
	if rec.JobType == "" {
		rec.JobType = models.FullTimeJob
	}
	if rec.ExperienceLevel == "" {
		rec.ExperienceLevel = models.EntryLevel
	}
	if rec.Currency == "" {
		rec.Currency = models.CurrencyKES
	}
	if r.ApplicationDeadline != "" {
		deadline, err := helpers.ParseDate(r.ApplicationDeadline)
		if err != nil {
			return dbmodels.JobPost{}, err
		}
		rec.ApplicationDeadline = &deadline
	}
	return rec, nil
}

func (r JobData) ToUpdMap() (map[string]interface{}, error) {
	rec, err := r.ToDb("")
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"title":                rec.Title,
		"department":           rec.Department,
		"location":             rec.Location,
		"region":               rec.Region,
		"work_location_type":   rec.WorkLocationType,
		"job_type":             rec.JobType,
		"experience_level":     rec.ExperienceLevel,
		"salary_min":           rec.SalaryMin,
		"salary_max":           rec.SalaryMax,
		"currency":             rec.Currency,
		"responsibilities":     rec.Responsibilities,
		"benefits":             rec.Benefits,
		"application_deadline": rec.ApplicationDeadline,
		"easy_apply":           rec.EasyApply,
		"standard_apply":       rec.StandardApply,
		"is_active":            rec.IsActive,
	}, nil
}

func boolOr(value *bool, def bool) bool {
	if value == nil {
		return def
	}
	return *value
}

type JobMode string

const AttachmentsMode JobMode = "attachments"

type JobFilter struct {
	Mode     JobMode  `query:"mode"` // "attachments" switches to the vacancy list
	Q        string   `query:"q"`    // title or department
	Company  string   `query:"company"`
	Exp      string   `query:"exp"`
	Type     string   `query:"type"`
	Remote   string   `query:"remote"`   // "1" keeps remote jobs only
	Smin     *float64 `query:"smin"`     // salary_min >= smin
	Smax     *float64 `query:"smax"`     // salary_max <= smax or unset
	Verified string   `query:"verified"` // used by mode=attachments
	Page     int      `query:"page"`
	Limit    int      `query:"limit"`
}

func (f JobFilter) GetPage() (page, limit int) {
	return apimodels.Pagination{Page: f.Page, Limit: f.Limit}.GetPage()
}

func (f JobFilter) OnlyRemote() bool {
	return f.Remote == "1"
}

type JobView struct {
	ID                  string                   `json:"id"`
	CompanyID           string                   `json:"company_id"`
	CompanyName         string                   `json:"company_name"`
	Title               string                   `json:"title"`
	Department          string                   `json:"department"`
	Location            string                   `json:"location"`
	Region              string                   `json:"region"`
	WorkLocationType    models.WorkLocationType  `json:"work_location_type"`
	JobType             models.JobType           `json:"job_type"`
	JobTypeName         string                   `json:"job_type_name"`
	ExperienceLevel     models.ExperienceLevel   `json:"experience_level"`
	ExperienceLevelName string                   `json:"experience_level_name"`
	SalaryMin           *float64                 `json:"salary_min"`
	SalaryMax           *float64                 `json:"salary_max"`
	Currency            models.Currency          `json:"currency"`
	SalaryDisplay       string                   `json:"salary_display"`
	Responsibilities    string                   `json:"responsibilities"`
	Benefits            string                   `json:"benefits"`
	ApplicationDeadline string                   `json:"application_deadline,omitempty"`
	EasyApply           bool                     `json:"easy_apply"`
	StandardApply       bool                     `json:"standard_apply"`
	IsActive            bool                     `json:"is_active"`
	CompanyBadge        models.VerificationBadge `json:"company_badge"`
	CreatedAt           time.Time                `json:"created_at"`
}

func JobConvert(rec dbmodels.JobPost) JobView {
	result := JobView{
		ID:                  rec.ID,
		CompanyID:           rec.CompanyID,
		Title:               rec.Title,
		Department:          rec.Department,
		Location:            rec.Location,
		Region:              rec.Region,
		WorkLocationType:    rec.WorkLocationType,
		JobType:             rec.JobType,
		JobTypeName:         rec.JobType.ToHuman(),
		ExperienceLevel:     rec.ExperienceLevel,
		ExperienceLevelName: rec.ExperienceLevel.ToHuman(),
		SalaryMin:           rec.SalaryMin,
		SalaryMax:           rec.SalaryMax,
		Currency:            rec.Currency,
		SalaryDisplay:       SalaryDisplay(rec.Currency, rec.SalaryMin, rec.SalaryMax),
		Responsibilities:    rec.Responsibilities,
		Benefits:            rec.Benefits,
		EasyApply:           rec.EasyApply,
		StandardApply:       rec.StandardApply,
		IsActive:            rec.IsActive,
		CompanyBadge:        models.BadgeNotVerified,
		CreatedAt:           rec.CreatedAt,
	}
	if rec.ApplicationDeadline != nil {
		result.ApplicationDeadline = rec.ApplicationDeadline.Format(DateLayout)
	}
	if rec.Company != nil {
		result.CompanyName = rec.Company.Name
		result.CompanyBadge = rec.Company.Badge()
	}
	return result
}

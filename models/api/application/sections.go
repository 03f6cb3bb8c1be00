package applicationapimodels

import (
	"attachment-hub-backend/lib/utils/helpers"
	dbmodels "attachment-hub-backend/models/db"
	"time"
)

const DateLayout = "2006-01-02"

type PersonalSection struct {
	FullLegalName     string `json:"full_legal_name" validate:"required,max=255"`
	PreviousNames     string `json:"previous_names" validate:"max=255"`
	Phone             string `json:"phone" validate:"required,max=50"`
	Email             string `json:"email" validate:"required,email"`
	Address           string `json:"address" validate:"required,max=255"`
	EligibleToWork    *bool  `json:"eligible_to_work"`
	StartDate         string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	PreferredSchedule string `json:"preferred_schedule" validate:"max=255"`
}

func (s PersonalSection) ToDb(applicationID string) dbmodels.ApplicationPersonal {
	return dbmodels.ApplicationPersonal{
		ApplicationID:     applicationID,
		FullLegalName:     s.FullLegalName,
		PreviousNames:     s.PreviousNames,
		Phone:             s.Phone,
		Email:             s.Email,
		Address:           s.Address,
		EligibleToWork:    s.EligibleToWork,
		StartDate:         parseOptionalDate(s.StartDate),
		PreferredSchedule: s.PreferredSchedule,
	}
}

type EducationSection struct {
	Institution     string `json:"institution" validate:"required,max=255"`
	DegreeOrDiploma string `json:"degree_or_diploma" validate:"max=255"`
	FieldOfStudy    string `json:"field_of_study" validate:"max=255"`
	StartYear       string `json:"start_year" validate:"max=10"`
	EndYear         string `json:"end_year" validate:"max=10"`
	Graduated       bool   `json:"graduated"`
}

func (s EducationSection) ToDb(applicationID string) dbmodels.ApplicationEducation {
	return dbmodels.ApplicationEducation{
		ApplicationID:   applicationID,
		Institution:     s.Institution,
		DegreeOrDiploma: s.DegreeOrDiploma,
		FieldOfStudy:    s.FieldOfStudy,
		StartYear:       s.StartYear,
		EndYear:         s.EndYear,
		Graduated:       s.Graduated,
	}
}

type CertificationSection struct {
	Name          string `json:"name" validate:"required,max=255"`
	Issuer        string `json:"issuer" validate:"max=255"`
	LicenseNumber string `json:"license_number" validate:"max=100"`
	ValidThrough  string `json:"valid_through" validate:"omitempty,datetime=2006-01-02"`
}

func (s CertificationSection) ToDb(applicationID string) dbmodels.ApplicationCertification {
	return dbmodels.ApplicationCertification{
		ApplicationID: applicationID,
		Name:          s.Name,
		Issuer:        s.Issuer,
		LicenseNumber: s.LicenseNumber,
		ValidThrough:  parseOptionalDate(s.ValidThrough),
	}
}

type EmploymentSection struct {
	CompanyName      string `json:"company_name" validate:"required,max=255"`
	CompanyAddress   string `json:"company_address" validate:"max=255"`
	CompanyPhone     string `json:"company_phone" validate:"max=50"`
	JobTitle         string `json:"job_title" validate:"required,max=255"`
	StartDate        string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate          string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Responsibilities string `json:"responsibilities"`
	SupervisorName   string `json:"supervisor_name" validate:"max=255"`
	ReasonForLeaving string `json:"reason_for_leaving" validate:"max=255"`
}

func (s EmploymentSection) ToDb(applicationID string) dbmodels.ApplicationEmployment {
	return dbmodels.ApplicationEmployment{
		ApplicationID:    applicationID,
		CompanyName:      s.CompanyName,
		CompanyAddress:   s.CompanyAddress,
		CompanyPhone:     s.CompanyPhone,
		JobTitle:         s.JobTitle,
		StartDate:        parseOptionalDate(s.StartDate),
		EndDate:          parseOptionalDate(s.EndDate),
		Responsibilities: s.Responsibilities,
		SupervisorName:   s.SupervisorName,
		ReasonForLeaving: s.ReasonForLeaving,
	}
}

type ReferenceSection struct {
	Name         string `json:"name" validate:"required,max=255"`
	Title        string `json:"title" validate:"max=255"`
	Phone        string `json:"phone" validate:"max=50"`
	Email        string `json:"email" validate:"omitempty,email"`
	Relationship string `json:"relationship" validate:"max=255"`
}

func (s ReferenceSection) ToDb(applicationID string) dbmodels.ApplicationReference {
	return dbmodels.ApplicationReference{
		ApplicationID: applicationID,
		Name:          s.Name,
		Title:         s.Title,
		Phone:         s.Phone,
		Email:         s.Email,
		Relationship:  s.Relationship,
	}
}

type QuestionSection struct {
	Prompt string `json:"prompt" validate:"required,max=255"`
	Answer string `json:"answer" validate:"required"`
}

func (s QuestionSection) ToDb(applicationID string) dbmodels.ApplicationQuestion {
	return dbmodels.ApplicationQuestion{
		ApplicationID: applicationID,
		Prompt:        s.Prompt,
		Answer:        s.Answer,
	}
}

type CriminalSection struct {
	HasUnspentConvictions *bool  `json:"has_unspent_convictions"`
	Explanation           string `json:"explanation"`
}

func (s CriminalSection) ToDb(applicationID string) dbmodels.ApplicationCriminalHistory {
	return dbmodels.ApplicationCriminalHistory{
		ApplicationID:         applicationID,
		HasUnspentConvictions: s.HasUnspentConvictions,
		Explanation:           s.Explanation,
	}
}

type ReferralSection struct {
	Source  string `json:"source" validate:"max=255"`
	Details string `json:"details" validate:"max=255"`
}

func (s ReferralSection) ToDb(applicationID string) dbmodels.ApplicationReferral {
	return dbmodels.ApplicationReferral{
		ApplicationID: applicationID,
		Source:        s.Source,
		Details:       s.Details,
	}
}

// EEOSection is voluntary.
type EEOSection struct {
	Gender        string `json:"gender" validate:"max=50"`
	Ethnicity     string `json:"ethnicity" validate:"max=100"`
	VeteranStatus string `json:"veteran_status" validate:"max=100"`
}

func (s EEOSection) ToDb(applicationID string) dbmodels.ApplicationEEO {
	return dbmodels.ApplicationEEO{
		ApplicationID: applicationID,
		Gender:        s.Gender,
		Ethnicity:     s.Ethnicity,
		VeteranStatus: s.VeteranStatus,
	}
}

func parseOptionalDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	d, err := helpers.ParseDate(value)
	if err != nil {
		return nil
	}
	return &d
}

func formatOptionalDate(value *time.Time) string {
	if value == nil {
		return ""
	}
	return value.Format(DateLayout)
}

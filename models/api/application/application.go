package applicationapimodels

import (
	"attachment-hub-backend/models"
	apimodels "attachment-hub-backend/models/api"
	jobapimodels "attachment-hub-backend/models/api/job"
	dbmodels "attachment-hub-backend/models/db"
	"time"

	"github.com/pkg/errors"
)

type EasyApply struct {
	CoverLetter     string `json:"cover_letter"`
	UseProfileCover *bool  `json:"use_profile_cover"` // default true
}

func (r EasyApply) Validate() error {
	return nil
}

func (r EasyApply) GetUseProfileCover() bool {
	if r.UseProfileCover == nil {
		return true
	}
	return *r.UseProfileCover
}

type EasyApplyForm struct {
	Job             jobapimodels.JobView `json:"job"`
	CoverLetter     string               `json:"cover_letter"`
	UseProfileCover bool                 `json:"use_profile_cover"`
	AlreadyApplied  bool                 `json:"already_applied"`
}

type EasyApplyResult struct {
	ApplicationID  string `json:"application_id"`
	AlreadyApplied bool   `json:"already_applied"`
	Message        string `json:"message"`
}

// StandardApply is the composite form. All sections are validated together before anything is saved.
type StandardApply struct {
	Personal       PersonalSection        `json:"personal"`
	Educations     []EducationSection     `json:"educations" validate:"dive"`
	Certifications []CertificationSection `json:"certifications" validate:"dive"`
	Employments    []EmploymentSection    `json:"employments" validate:"dive"`
	References     []ReferenceSection     `json:"references" validate:"dive"`
	Questions      []QuestionSection      `json:"questions" validate:"dive"`
	Criminal       CriminalSection        `json:"criminal"`
	Referral       ReferralSection        `json:"referral"`
	EEO            EEOSection             `json:"eeo"`
	CertifyTruth   bool                   `json:"certify_truth"`
	AgreeAtWill    bool                   `json:"agree_at_will"`
}

func (r StandardApply) Validate() error {
	return apimodels.ValidateStruct(r)
}

type StandardApplyForm struct {
	ApplicationID string               `json:"application_id"`
	Job           jobapimodels.JobView `json:"job"`
	Submitted     bool                 `json:"submitted"`
	StandardApply
}

func StandardApplyConvert(rec dbmodels.JobApplication) StandardApply {
	result := StandardApply{
		Educations:     []EducationSection{},
		Certifications: []CertificationSection{},
		Employments:    []EmploymentSection{},
		References:     []ReferenceSection{},
		Questions:      []QuestionSection{},
		CertifyTruth:   rec.CertifyTruth,
		AgreeAtWill:    rec.AgreeAtWill,
	}
	if rec.Personal != nil {
		result.Personal = PersonalSection{
			FullLegalName:     rec.Personal.FullLegalName,
			PreviousNames:     rec.Personal.PreviousNames,
			Phone:             rec.Personal.Phone,
			Email:             rec.Personal.Email,
			Address:           rec.Personal.Address,
			EligibleToWork:    rec.Personal.EligibleToWork,
			StartDate:         formatOptionalDate(rec.Personal.StartDate),
			PreferredSchedule: rec.Personal.PreferredSchedule,
		}
	}
	for _, e := range rec.Educations {
		result.Educations = append(result.Educations, EducationSection{
			Institution:     e.Institution,
			DegreeOrDiploma: e.DegreeOrDiploma,
			FieldOfStudy:    e.FieldOfStudy,
			StartYear:       e.StartYear,
			EndYear:         e.EndYear,
			Graduated:       e.Graduated,
		})
	}
	for _, c := range rec.Certifications {
		result.Certifications = append(result.Certifications, CertificationSection{
			Name:          c.Name,
			Issuer:        c.Issuer,
			LicenseNumber: c.LicenseNumber,
			ValidThrough:  formatOptionalDate(c.ValidThrough),
		})
	}
	for _, e := range rec.Employments {
		result.Employments = append(result.Employments, EmploymentSection{
			CompanyName:      e.CompanyName,
			CompanyAddress:   e.CompanyAddress,
			CompanyPhone:     e.CompanyPhone,
			JobTitle:         e.JobTitle,
			StartDate:        formatOptionalDate(e.StartDate),
			EndDate:          formatOptionalDate(e.EndDate),
			Responsibilities: e.Responsibilities,
			SupervisorName:   e.SupervisorName,
			ReasonForLeaving: e.ReasonForLeaving,
		})
	}
	for _, r := range rec.References {
		result.References = append(result.References, ReferenceSection{
			Name:         r.Name,
			Title:        r.Title,
			Phone:        r.Phone,
			Email:        r.Email,
			Relationship: r.Relationship,
		})
	}
	for _, q := range rec.Questions {
		result.Questions = append(result.Questions, QuestionSection{
			Prompt: q.Prompt,
			Answer: q.Answer,
		})
	}
	if rec.Criminal != nil {
		result.Criminal = CriminalSection{
			HasUnspentConvictions: rec.Criminal.HasUnspentConvictions,
			Explanation:           rec.Criminal.Explanation,
		}
	}
	if rec.Referral != nil {
		result.Referral = ReferralSection{
			Source:  rec.Referral.Source,
			Details: rec.Referral.Details,
		}
	}
	if rec.EEO != nil {
		result.EEO = EEOSection{
			Gender:        rec.EEO.Gender,
			Ethnicity:     rec.EEO.Ethnicity,
			VeteranStatus: rec.EEO.VeteranStatus,
		}
	}
	return result
}

type ApplicantFilter struct {
	Status models.ApplicationStatus `query:"status"`
	Q      string                   `query:"q"` // username, email or cover letter
	Page   int                      `query:"page"`
	Limit  int                      `query:"limit"`
}

func (f ApplicantFilter) Validate() error {
	if f.Status != "" && !f.Status.IsValid() {
		return errors.New("status: unknown application status")
	}
	return nil
}

func (f ApplicantFilter) GetPage() (page, limit int) {
	return apimodels.Pagination{Page: f.Page, Limit: f.Limit}.GetPage()
}

type StatusUpdate struct {
	Status models.ApplicationStatus `json:"status" validate:"required"`
}

func (r StatusUpdate) Validate() error {
	if err := apimodels.ValidateStruct(r); err != nil {
		return err
	}
	if !r.Status.IsValid() {
		return errors.New("status: unknown application status")
	}
	return nil
}

type ApplicationView struct {
	ID           string                   `json:"id"`
	JobID        string                   `json:"job_id"`
	JobTitle     string                   `json:"job_title"`
	CompanyID    string                   `json:"company_id"`
	CompanyName  string                   `json:"company_name"`
	StudentID    string                   `json:"student_id"`
	Username     string                   `json:"username,omitempty"`
	Email        string                   `json:"email,omitempty"`
	FullName     string                   `json:"full_name,omitempty"`
	CoverLetter  string                   `json:"cover_letter"`
	HasResume    bool                     `json:"has_resume"`
	Status       models.ApplicationStatus `json:"status"`
	StatusName   string                   `json:"status_name"`
	CertifyTruth bool                     `json:"certify_truth"`
	AgreeAtWill  bool                     `json:"agree_at_will"`
	SubmittedAt  *time.Time               `json:"submitted_at"`
	CreatedAt    time.Time                `json:"created_at"`
}

func ApplicationConvert(rec dbmodels.JobApplication) ApplicationView {
	result := ApplicationView{
		ID:           rec.ID,
		JobID:        rec.JobID,
		StudentID:    rec.StudentID,
		CoverLetter:  rec.CoverLetter,
		HasResume:    rec.ResumeKey != "",
		Status:       rec.Status,
		StatusName:   rec.Status.ToHuman(),
		CertifyTruth: rec.CertifyTruth,
		AgreeAtWill:  rec.AgreeAtWill,
		SubmittedAt:  rec.SubmittedAt,
		CreatedAt:    rec.CreatedAt,
	}
	if rec.Job != nil {
		result.JobTitle = rec.Job.Title
		result.CompanyID = rec.Job.CompanyID
		if rec.Job.Company != nil {
			result.CompanyName = rec.Job.Company.Name
		}
	}
	if rec.Student != nil {
		result.Username = rec.Student.Username
		result.Email = rec.Student.Email
		if rec.Student.StudentProfile != nil {
			result.FullName = rec.Student.StudentProfile.FullName
		}
	}
	return result
}

func ApplicationExtConvert(rec dbmodels.ApplicationExt) ApplicationView {
	result := ApplicationConvert(rec.JobApplication)
	result.Username = rec.Username
	result.Email = rec.Email
	result.FullName = rec.FullName
	return result
}

type ApplicationDetail struct {
	ApplicationView
	Sections StandardApply `json:"sections"`
}

package studentapimodels

import (
	apimodels "attachment-hub-backend/models/api"
	dbmodels "attachment-hub-backend/models/db"
)

type StudentProfileData struct {
	FullName           string `json:"full_name" validate:"max=255"`
	Phone              string `json:"phone" validate:"max=50"`
	Location           string `json:"location" validate:"max=255"`
	EducationHistory   string `json:"education_history"`
	WorkExperience     string `json:"work_experience"`
	DefaultCoverLetter string `json:"default_cover_letter"`
}

func (r StudentProfileData) Validate() error {
	return apimodels.ValidateStruct(r)
}

func (r StudentProfileData) ToUpdMap() map[string]interface{} {
	return map[string]interface{}{
		"full_name":            r.FullName,
		"phone":                r.Phone,
		"location":             r.Location,
		"education_history":    r.EducationHistory,
		"work_experience":      r.WorkExperience,
		"default_cover_letter": r.DefaultCoverLetter,
	}
}

type StudentProfileView struct {
	StudentProfileData
	UserID    string `json:"user_id"`
	HasResume bool   `json:"has_resume"`
}

func StudentProfileConvert(rec dbmodels.StudentProfile) StudentProfileView {
	return StudentProfileView{
		StudentProfileData: StudentProfileData{
			FullName:           rec.FullName,
			Phone:              rec.Phone,
			Location:           rec.Location,
			EducationHistory:   rec.EducationHistory,
			WorkExperience:     rec.WorkExperience,
			DefaultCoverLetter: rec.DefaultCoverLetter,
		},
		UserID:    rec.UserID,
		HasResume: rec.ResumeKey != "",
	}
}

package models

type RbacFunc func(userID string, role UserRole, path string) bool

// Action is a capability checked by the authorization function before a handler runs.
type Action string

const (
	VacancyManageAction    Action = "VACANCY_MANAGE"
	JobManageAction        Action = "JOB_MANAGE"
	ApplicantsManageAction Action = "APPLICANTS_MANAGE"
	CompanyProfileAction   Action = "COMPANY_PROFILE"
	ApplyAction            Action = "APPLY"
	StudentProfileAction   Action = "STUDENT_PROFILE"
	ModerateAction         Action = "MODERATE"
	PortalAdminAction      Action = "PORTAL_ADMIN"
)

package rbac

import (
	"attachment-hub-backend/models"
	"slices"
)

// capabilities is the closed role → action table. ADMIN holds every action outside studentOnly.
var capabilities = map[models.UserRole][]models.Action{
	models.ModeratorRole: {
		models.ModerateAction,
	},
	models.CompanyRole: {
		models.VacancyManageAction,
		models.JobManageAction,
		models.ApplicantsManageAction,
		models.CompanyProfileAction,
	},
	models.StudentRole: {
		models.ApplyAction,
		models.StudentProfileAction,
	},
}

// studentOnly actions need a student profile behind the caller.
var studentOnly = []models.Action{
	models.ApplyAction,
	models.StudentProfileAction,
}

var allActions = []models.Action{
	models.VacancyManageAction,
	models.JobManageAction,
	models.ApplicantsManageAction,
	models.CompanyProfileAction,
	models.ApplyAction,
	models.StudentProfileAction,
	models.ModerateAction,
	models.PortalAdminAction,
}

// Can reports whether role may perform action.
func Can(role models.UserRole, action models.Action) bool {
	if role == models.AdminRole {
		return slices.Contains(allActions, action) && !slices.Contains(studentOnly, action)
	}
	return slices.Contains(capabilities[role], action)
}

func Actions(role models.UserRole) []models.Action {
	if role == models.AdminRole {
		return slices.DeleteFunc(slices.Clone(allActions), func(action models.Action) bool {
			return slices.Contains(studentOnly, action)
		})
	}
	return slices.Clone(capabilities[role])
}

package rbac

import (
	"attachment-hub-backend/models"

	log "github.com/sirupsen/logrus"
)

func (i *impl) initRules() {
	i.studentRbac()
	i.companyRbac()
	i.vacancyRbac()
	i.jobRbac()
	i.applicationRbac()
	i.moderatorRbac()
	i.portalAdminRbac()
}

func (i *impl) mustRegister(action models.Action, swaggerPattern string, handler models.RbacFunc) {
	if err := i.RegisterRule(action, swaggerPattern, handler); err != nil {
		log.WithError(err).Fatal("rbac rule registration failed")
	}
}

func (i *impl) studentRbac() {
	i.mustRegister(models.StudentProfileAction, "/api/v1/students/profile [get]", nil)
	i.mustRegister(models.StudentProfileAction, "/api/v1/students/profile [put]", nil)
	i.mustRegister(models.StudentProfileAction, "/api/v1/students/profile/resume [get]", nil)
	i.mustRegister(models.StudentProfileAction, "/api/v1/students/profile/resume [post]", nil)
	i.mustRegister(models.StudentProfileAction, "/api/v1/students/dashboard [get]", nil)
}

func (i *impl) companyRbac() {
	i.mustRegister(models.CompanyProfileAction, "/api/v1/companies/dashboard [get]", nil)
	i.mustRegister(models.CompanyProfileAction, "/api/v1/companies/profile [get]", nil)
	i.mustRegister(models.CompanyProfileAction, "/api/v1/companies/profile [put]", nil)
	i.mustRegister(models.CompanyProfileAction, "/api/v1/companies/profile/logo [post]", nil)
}

func (i *impl) vacancyRbac() {
	i.mustRegister(models.VacancyManageAction, "/api/v1/vacancies [post]", nil)
	i.mustRegister(models.VacancyManageAction, "/api/v1/vacancies/{id} [put]", nil)
	i.mustRegister(models.VacancyManageAction, "/api/v1/vacancies/{id}/deactivate [put]", nil)
}

func (i *impl) jobRbac() {
	i.mustRegister(models.JobManageAction, "/api/v1/jobs [post]", nil)
	i.mustRegister(models.JobManageAction, "/api/v1/jobs/{id} [put]", nil)
	i.mustRegister(models.JobManageAction, "/api/v1/jobs/{id}/deactivate [put]", nil)
	i.mustRegister(models.ApplicantsManageAction, "/api/v1/jobs/{id}/applicants [get]", nil)
	i.mustRegister(models.ApplyAction, "/api/v1/jobs/{id}/apply/easy [get]", nil)
	i.mustRegister(models.ApplyAction, "/api/v1/jobs/{id}/apply/easy [post]", nil)
	i.mustRegister(models.ApplyAction, "/api/v1/jobs/{id}/apply/full [get]", nil)
	i.mustRegister(models.ApplyAction, "/api/v1/jobs/{id}/apply/full [post]", nil)
}

func (i *impl) applicationRbac() {
	// ownership is checked by the handler
	viewAllow := AllowAnyActionFunc(models.ApplicantsManageAction, models.ApplyAction)
	i.mustRegister(models.ApplicantsManageAction, "/api/v1/applications/{id} [get]", viewAllow)
	i.mustRegister(models.ApplicantsManageAction, "/api/v1/applications/{id}/resume [get]", viewAllow)
	i.mustRegister(models.ApplicantsManageAction, "/api/v1/applications/{id}/status [put]", nil)
}

func (i *impl) moderatorRbac() {
	i.mustRegister(models.ModerateAction, "/api/v1/moderator/dashboard [get]", nil)
	i.mustRegister(models.ModerateAction, "/api/v1/moderator/dashboard [post]", nil)
}

func (i *impl) portalAdminRbac() {
	i.mustRegister(models.PortalAdminAction, "/api/v1/portal/admin/* [get]", nil)
	i.mustRegister(models.PortalAdminAction, "/api/v1/portal/admin/* [post]", nil)
	i.mustRegister(models.PortalAdminAction, "/api/v1/portal/admin/* [put]", nil)
	i.mustRegister(models.PortalAdminAction, "/api/v1/portal/admin/* [delete]", nil)
}

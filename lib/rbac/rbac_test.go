package rbac

import (
	"attachment-hub-backend/models"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRbac(t *testing.T) {
	t.Run(`pathToRegex check`, func(t *testing.T) {
		path, method, err := parseSwaggerPattern("/api/v1/jobs/{id}/apply/easy [post]")
		require.Nil(t, err)
		require.Equal(t, POST, method)
		r1 := pathToRegex(path)

		require.True(t, r1.MatchString("/api/v1/jobs/123-321/apply/easy"))
		require.False(t, r1.MatchString("/api/v1/jobs/apply/easy"))

		path, method, err = parseSwaggerPattern("/api/v1/portal/admin/* [delete]")
		require.Nil(t, err)
		require.Equal(t, DELETE, method)
		r2 := pathToRegex(path)
		require.True(t, r2.MatchString("/api/v1/portal/admin/users/42"))
		require.False(t, r2.MatchString("/api/v1/portal/testimonies"))

		_, _, err = parseSwaggerPattern("/api/v1/jobs")
		require.NotNil(t, err)
	})

	t.Run(`capability table check`, func(t *testing.T) {
		require.True(t, Can(models.AdminRole, models.ModerateAction))
		require.True(t, Can(models.AdminRole, models.PortalAdminAction))
		require.True(t, Can(models.ModeratorRole, models.ModerateAction))
		require.False(t, Can(models.ModeratorRole, models.PortalAdminAction))
		require.True(t, Can(models.CompanyRole, models.VacancyManageAction))
		require.False(t, Can(models.CompanyRole, models.ApplyAction))
		require.True(t, Can(models.StudentRole, models.ApplyAction))
		require.False(t, Can(models.StudentRole, models.JobManageAction))
		require.False(t, Can(models.UserRole("GUEST"), models.ApplyAction))
		require.False(t, Can(models.AdminRole, models.ApplyAction))
		require.False(t, Can(models.AdminRole, models.StudentProfileAction))
		require.Len(t, Actions(models.AdminRole), 6)
	})

	t.Run(`registered rules check`, func(t *testing.T) {
		i := &impl{rules: map[HTTPMethod]*PathRule{}}
		i.initRules()

		handler, found := i.GetRuleFunc("post", "/api/v1/vacancies/")
		require.True(t, found)
		require.True(t, handler("u1", models.CompanyRole, "/api/v1/vacancies"))
		require.False(t, handler("u1", models.StudentRole, "/api/v1/vacancies"))

		handler, found = i.GetRuleFunc("POST", "/api/v1/jobs/7/apply/full")
		require.True(t, found)
		require.True(t, handler("u1", models.StudentRole, ""))
		require.False(t, handler("u1", models.CompanyRole, ""))
		require.False(t, handler("u1", models.AdminRole, ""))

		handler, found = i.GetRuleFunc("GET", "/api/v1/applications/5")
		require.True(t, found)
		require.True(t, handler("u1", models.StudentRole, ""))
		require.True(t, handler("u1", models.CompanyRole, ""))
		require.False(t, handler("u1", models.ModeratorRole, ""))

		_, found = i.GetRuleFunc("GET", "/api/v1/vacancies")
		require.False(t, found)
	})
}

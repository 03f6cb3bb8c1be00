package portalusershandler

import (
	auditlogstore "attachment-hub-backend/lib/portal/audit-log/store"
	testimonystore "attachment-hub-backend/lib/portal/testimony/store"
	portaluserstore "attachment-hub-backend/lib/portal/users/store"
	authutils "attachment-hub-backend/lib/utils/auth-utils"
	"attachment-hub-backend/models"
	apimodels "attachment-hub-backend/models/api"
	portalapimodels "attachment-hub-backend/models/api/portal"
	dbmodels "attachment-hub-backend/models/db"
	"fmt"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

type fakeUserStore struct {
	users []*dbmodels.PortalUser
	seq   int
}

func (f *fakeUserStore) Create(rec dbmodels.PortalUser) (string, error) {
	f.seq++
	rec.ID = fmt.Sprintf("p%v", f.seq)
	f.users = append(f.users, &rec)
	return rec.ID, nil
}

func (f *fakeUserStore) find(match func(rec *dbmodels.PortalUser) bool) *dbmodels.PortalUser {
	for _, rec := range f.users {
		if match(rec) {
			return rec
		}
	}
	return nil
}

func (f *fakeUserStore) GetByID(id string) (*dbmodels.PortalUser, error) {
	return f.find(func(rec *dbmodels.PortalUser) bool { return rec.ID == id }), nil
}

func (f *fakeUserStore) GetByUsername(username string) (*dbmodels.PortalUser, error) {
	return f.find(func(rec *dbmodels.PortalUser) bool { return rec.Username == username }), nil
}

func (f *fakeUserStore) GetByEmail(email string) (*dbmodels.PortalUser, error) {
	return f.find(func(rec *dbmodels.PortalUser) bool { return strings.EqualFold(rec.Email, email) }), nil
}

func (f *fakeUserStore) ExistByUsernameOrEmail(username, email string) (bool, error) {
	rec := f.find(func(rec *dbmodels.PortalUser) bool {
		return rec.Username == username || strings.EqualFold(rec.Email, email)
	})
	return rec != nil, nil
}

func (f *fakeUserStore) apply(rec *dbmodels.PortalUser, updMap map[string]interface{}) {
	if v, ok := updMap["email"]; ok {
		rec.Email = v.(string)
	}
	if v, ok := updMap["password"]; ok {
		rec.Password = v.(string)
	}
	if v, ok := updMap["full_name"]; ok {
		rec.FullName = v.(string)
	}
}

func (f *fakeUserStore) Update(id string, updMap map[string]interface{}) error {
	rec, _ := f.GetByID(id)
	if rec == nil {
		return fmt.Errorf("portal user not found")
	}
	f.apply(rec, updMap)
	return nil
}

func (f *fakeUserStore) UpdateByUsername(username string, updMap map[string]interface{}) error {
	rec, _ := f.GetByUsername(username)
	if rec == nil {
		return fmt.Errorf("portal user not found")
	}
	f.apply(rec, updMap)
	return nil
}

func (f *fakeUserStore) Delete(id string) error {
	list := []*dbmodels.PortalUser{}
	for _, rec := range f.users {
		if rec.ID != id {
			list = append(list, rec)
		}
	}
	f.users = list
	return nil
}

func (f *fakeUserStore) List() ([]dbmodels.PortalUser, error) {
	list := []dbmodels.PortalUser{}
	for _, rec := range f.users {
		list = append(list, *rec)
	}
	return list, nil
}

func (f *fakeUserStore) Count() (int64, error) { return int64(len(f.users)), nil }

type fakeTestimonyStore struct {
	list []dbmodels.Testimony
}

func (f *fakeTestimonyStore) Create(rec dbmodels.Testimony) (string, error) {
	f.list = append(f.list, rec)
	return rec.ID, nil
}

func (f *fakeTestimonyStore) GetByID(id string) (*dbmodels.Testimony, error) { return nil, nil }

func (f *fakeTestimonyStore) Update(id string, updMap map[string]interface{}) error { return nil }

func (f *fakeTestimonyStore) Delete(id string) error { return nil }

func (f *fakeTestimonyStore) DeleteByUsername(username string) error {
	list := []dbmodels.Testimony{}
	for _, rec := range f.list {
		if rec.Username != username {
			list = append(list, rec)
		}
	}
	f.list = list
	return nil
}

func (f *fakeTestimonyStore) ListCount(filter portalapimodels.TestimonyFilter) (int64, error) {
	return int64(len(f.list)), nil
}

func (f *fakeTestimonyStore) List(filter portalapimodels.TestimonyFilter) ([]dbmodels.Testimony, error) {
	return f.list, nil
}

func (f *fakeTestimonyStore) ListByUsername(username string) ([]dbmodels.Testimony, error) {
	list := []dbmodels.Testimony{}
	for _, rec := range f.list {
		if rec.Username == username {
			list = append(list, rec)
		}
	}
	return list, nil
}

func (f *fakeTestimonyStore) ListAll() ([]dbmodels.Testimony, error) { return f.list, nil }

func (f *fakeTestimonyStore) Latest(limit int) ([]dbmodels.Testimony, error) { return f.list, nil }

func (f *fakeTestimonyStore) Count() (int64, error) { return int64(len(f.list)), nil }

type fakeLogStore struct {
	rows []dbmodels.AuditLog
}

func (f *fakeLogStore) Create(rec dbmodels.AuditLog) (string, error) {
	f.rows = append(f.rows, rec)
	return "", nil
}

func (f *fakeLogStore) ListCount() (int64, error) { return int64(len(f.rows)), nil }

func (f *fakeLogStore) List(pagination apimodels.Pagination) ([]dbmodels.AuditLog, error) {
	return f.rows, nil
}

func (f *fakeLogStore) ListAll() ([]dbmodels.AuditLog, error) { return f.rows, nil }

type fakeAudit struct {
	logs *fakeLogStore
}

func (f fakeAudit) Save(username string, action models.LogAction, details string) {
	f.logs.rows = append(f.logs.rows, dbmodels.AuditLog{Username: username, Action: action, Details: details})
}

func (f fakeAudit) List(pagination apimodels.Pagination) ([]portalapimodels.LogView, int64, error) {
	return nil, 0, nil
}

type fakeMail struct {
	to, subject, body string
}

func (f *fakeMail) SendEMail(to, subject, message string) error {
	f.to, f.subject, f.body = to, subject, message
	return nil
}

func (f *fakeMail) SendAsync(to, subject, message string) {
	_ = f.SendEMail(to, subject, message)
}

type testEnv struct {
	handler     impl
	users       *fakeUserStore
	testimonies *fakeTestimonyStore
	logs        *fakeLogStore
	mail        *fakeMail
}

func newTestEnv() testEnv {
	env := testEnv{
		users:       &fakeUserStore{},
		testimonies: &fakeTestimonyStore{},
		logs:        &fakeLogStore{},
		mail:        &fakeMail{},
	}
	env.handler = impl{
		store:              env.users,
		testimonyStore:     env.testimonies,
		audit:              fakeAudit{logs: env.logs},
		mail:               env.mail,
		secret:             "secret",
		expireInSec:        60,
		tempPasswordLength: 10,
		withTx: func(fn func(users portaluserstore.Provider, testimonies testimonystore.Provider, logs auditlogstore.Provider) error) error {
			return fn(env.users, env.testimonies, env.logs)
		},
	}
	return env
}

func signupData(username, email string) portalapimodels.Signup {
	return portalapimodels.Signup{
		FullName:   "Jane Doe",
		Email:      email,
		University: "UoN",
		Username:   username,
		Password:   "secret1",
	}
}

func actions(logs *fakeLogStore) []models.LogAction {
	result := []models.LogAction{}
	for _, row := range logs.rows {
		result = append(result, row.Action)
	}
	return result
}

func TestSignupAndLogin(t *testing.T) {
	t.Run("signup logs and rejects duplicates", func(t *testing.T) {
		env := newTestEnv()
		id, hMsg, err := env.handler.Signup(signupData("jane", "jane@example.com"))
		require.NoError(t, err)
		require.Empty(t, hMsg)
		require.Equal(t, "p1", id)
		require.NotEqual(t, "secret1", env.users.users[0].Password)

		_, hMsg, err = env.handler.Signup(signupData("jane", "other@example.com"))
		require.NoError(t, err)
		require.Equal(t, duplicateMessage, hMsg)

		_, hMsg, err = env.handler.Signup(signupData("john", "JANE@example.com"))
		require.NoError(t, err)
		require.Equal(t, duplicateMessage, hMsg)

		require.Equal(t, []models.LogAction{models.LogSignup}, actions(env.logs))
	})
	t.Run("login issues a portal session", func(t *testing.T) {
		env := newTestEnv()
		_, _, err := env.handler.Signup(signupData("jane", "jane@example.com"))
		require.NoError(t, err)

		resp, hMsg, err := env.handler.Login(portalapimodels.Login{Username: "jane", Password: "secret1"})
		require.NoError(t, err)
		require.Empty(t, hMsg)
		require.Equal(t, "jane", resp.Username)

		token, err := jwt.Parse(resp.Token, func(token *jwt.Token) (interface{}, error) {
			return []byte("secret"), nil
		})
		require.NoError(t, err)
		claims := token.Claims.(jwt.MapClaims)
		require.Equal(t, "portal", authutils.GetClaimString(claims, "scope"))
		require.Equal(t, "jane", authutils.GetClaimString(claims, "name"))
		require.Contains(t, actions(env.logs), models.LogLogin)
	})
	t.Run("bad password", func(t *testing.T) {
		env := newTestEnv()
		_, _, err := env.handler.Signup(signupData("jane", "jane@example.com"))
		require.NoError(t, err)
		_, hMsg, err := env.handler.Login(portalapimodels.Login{Username: "jane", Password: "nope"})
		require.NoError(t, err)
		require.Equal(t, invalidCredentials, hMsg)
		require.NotContains(t, actions(env.logs), models.LogLogin)
	})
}

func TestForgotPassword(t *testing.T) {
	t.Run("unknown email", func(t *testing.T) {
		env := newTestEnv()
		_, hMsg, err := env.handler.ForgotPassword(portalapimodels.ForgotPassword{Email: "nobody@example.com"})
		require.NoError(t, err)
		require.Equal(t, emailNotFound, hMsg)
	})
	t.Run("temporary password mailed and usable", func(t *testing.T) {
		env := newTestEnv()
		_, _, err := env.handler.Signup(signupData("jane", "jane@example.com"))
		require.NoError(t, err)

		message, hMsg, err := env.handler.ForgotPassword(portalapimodels.ForgotPassword{Email: "jane@example.com"})
		require.NoError(t, err)
		require.Empty(t, hMsg)
		require.Equal(t, resetSentMessage, message)
		require.Equal(t, "jane@example.com", env.mail.to)

		idx := strings.Index(env.mail.body, "password is: ")
		require.True(t, idx >= 0)
		temp := strings.Fields(env.mail.body[idx+len("password is: "):])[0]
		require.Len(t, temp, 10)
		require.True(t, authutils.CheckPasswordHash(temp, env.users.users[0].Password))
		require.Contains(t, actions(env.logs), models.LogResetPassword)
	})
}

func TestProfile(t *testing.T) {
	t.Run("update email", func(t *testing.T) {
		env := newTestEnv()
		_, _, err := env.handler.Signup(signupData("jane", "jane@example.com"))
		require.NoError(t, err)
		_, _, err = env.handler.Signup(signupData("john", "john@example.com"))
		require.NoError(t, err)

		hMsg, err := env.handler.UpdateProfile("jane", portalapimodels.ProfileUpdate{Email: "john@example.com"})
		require.NoError(t, err)
		require.NotEmpty(t, hMsg)

		hMsg, err = env.handler.UpdateProfile("jane", portalapimodels.ProfileUpdate{Email: "jane.doe@example.com"})
		require.NoError(t, err)
		require.Empty(t, hMsg)
		view, err := env.handler.GetProfile("jane")
		require.NoError(t, err)
		require.Equal(t, "jane.doe@example.com", view.Email)
	})
	t.Run("delete cascades testimonies", func(t *testing.T) {
		env := newTestEnv()
		_, _, err := env.handler.Signup(signupData("jane", "jane@example.com"))
		require.NoError(t, err)
		env.testimonies.list = []dbmodels.Testimony{{Username: "jane"}, {Username: "john"}}

		require.NoError(t, env.handler.DeleteAccount("jane"))
		require.Empty(t, env.users.users)
		require.Len(t, env.testimonies.list, 1)
		require.Contains(t, actions(env.logs), models.LogDeleteAccount)

		require.ErrorIs(t, env.handler.DeleteAccount("jane"), models.ErrNotFound)
	})
	t.Run("dashboard shows own testimonies", func(t *testing.T) {
		env := newTestEnv()
		_, _, err := env.handler.Signup(signupData("jane", "jane@example.com"))
		require.NoError(t, err)
		env.testimonies.list = []dbmodels.Testimony{{Username: "jane"}, {Username: "john"}}
		item, err := env.handler.Dashboard("jane")
		require.NoError(t, err)
		require.Equal(t, "Jane Doe", item.FullName)
		require.Len(t, item.Testimonies, 1)
	})
}

func TestAdmin(t *testing.T) {
	env := newTestEnv()
	id, _, err := env.handler.Signup(signupData("jane", "jane@example.com"))
	require.NoError(t, err)
	oldHash := env.users.users[0].Password

	update := portalapimodels.UserUpdate{FullName: "Jane D", Email: "jane@example.com"}
	hMsg, err := env.handler.AdminUpdate(id, update)
	require.NoError(t, err)
	require.Empty(t, hMsg)
	require.Equal(t, "Jane D", env.users.users[0].FullName)
	require.Equal(t, oldHash, env.users.users[0].Password)

	update.Password = "newpass1"
	_, err = env.handler.AdminUpdate(id, update)
	require.NoError(t, err)
	require.True(t, authutils.CheckPasswordHash("newpass1", env.users.users[0].Password))

	_, err = env.handler.AdminUpdate("missing", update)
	require.ErrorIs(t, err, models.ErrNotFound)

	list, err := env.handler.List()
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, env.handler.AdminDelete(id))
	require.Empty(t, env.users.users)
	require.Contains(t, actions(env.logs), models.LogAdminUpdateUser)
	require.Contains(t, actions(env.logs), models.LogAdminDeleteUser)
}

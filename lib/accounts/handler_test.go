package accountshandler

import (
	authutils "attachment-hub-backend/lib/utils/auth-utils"
	"attachment-hub-backend/models"
	authapimodels "attachment-hub-backend/models/api/auth"
	dbmodels "attachment-hub-backend/models/db"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

type fakeAccountsStore struct {
	users []*dbmodels.User
}

func (f *fakeAccountsStore) Create(rec dbmodels.User) (string, error) {
	f.users = append(f.users, &rec)
	return rec.ID, nil
}

func (f *fakeAccountsStore) GetByID(id string) (*dbmodels.User, error) {
	for _, rec := range f.users {
		if rec.ID == id {
			return rec, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountsStore) FindByLogin(login string) (*dbmodels.User, error) {
	for _, rec := range f.users {
		if rec.Username == login || strings.EqualFold(rec.Email, login) {
			return rec, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountsStore) ExistByUsername(username string) (bool, error) { return false, nil }

func (f *fakeAccountsStore) ExistByEmail(email string) (bool, error) { return false, nil }

func (f *fakeAccountsStore) Update(id string, updMap map[string]interface{}) error { return nil }

type fakeCompanyStore struct {
	company *dbmodels.CompanyProfile
}

func (f fakeCompanyStore) Create(rec dbmodels.CompanyProfile) (string, error) { return rec.ID, nil }

func (f fakeCompanyStore) GetByID(id string) (*dbmodels.CompanyProfile, error) { return f.company, nil }

func (f fakeCompanyStore) GetByUserID(userID string) (*dbmodels.CompanyProfile, error) {
	if f.company != nil && f.company.UserID == userID {
		return f.company, nil
	}
	return nil, nil
}

func (f fakeCompanyStore) ExistByRegistrationNumber(number string) (bool, error) { return false, nil }

func (f fakeCompanyStore) Update(id string, updMap map[string]interface{}) error { return nil }

func (f fakeCompanyStore) ListPendingApproval() ([]dbmodels.CompanyProfile, error) { return nil, nil }

const testSecret = "test-secret"

func newTestHandler(t *testing.T) impl {
	hash, err := authutils.HashPassword("secret123")
	require.NoError(t, err)
	student := &dbmodels.User{Username: "jane", Email: "jane@example.com", Password: hash, Role: models.StudentRole, IsActive: true}
	student.ID = "u1"
	pending := &dbmodels.User{Username: "acme", Email: "hr@acme.com", Password: hash, Role: models.CompanyRole, IsActive: false}
	pending.ID = "u2"
	company := &dbmodels.CompanyProfile{UserID: "u2", EmailVerified: true}
	return impl{
		store:        &fakeAccountsStore{users: []*dbmodels.User{student, pending}},
		companyStore: fakeCompanyStore{company: company},
		secret:       testSecret,
		expireInSec:  60,
	}
}

func TestLogin(t *testing.T) {
	h := newTestHandler(t)

	t.Run("by username", func(t *testing.T) {
		resp, hMsg, err := h.Login(authapimodels.LoginRequest{Login: "jane", Password: "secret123"})
		require.NoError(t, err)
		require.Empty(t, hMsg)
		token, err := jwt.Parse(resp.Token, func(token *jwt.Token) (interface{}, error) {
			return []byte(testSecret), nil
		})
		require.NoError(t, err)
		claims := token.Claims.(jwt.MapClaims)
		require.Equal(t, "u1", claims["sub"])
		require.Equal(t, string(models.StudentRole), claims["role"])
		require.Equal(t, string(models.HubScope), claims["scope"])
	})

	t.Run("by email", func(t *testing.T) {
		_, hMsg, err := h.Login(authapimodels.LoginRequest{Login: "JANE@example.com", Password: "secret123"})
		require.NoError(t, err)
		require.Empty(t, hMsg)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, hMsg, err := h.Login(authapimodels.LoginRequest{Login: "jane", Password: "nope"})
		require.NoError(t, err)
		require.Equal(t, invalidCredentialsMessage, hMsg)
	})

	t.Run("inactive company", func(t *testing.T) {
		_, hMsg, err := h.Login(authapimodels.LoginRequest{Login: "acme", Password: "secret123"})
		require.NoError(t, err)
		require.Equal(t, inactiveMessage, hMsg)
	})

	t.Run("empty form", func(t *testing.T) {
		_, hMsg, err := h.Login(authapimodels.LoginRequest{})
		require.NoError(t, err)
		require.Contains(t, hMsg, "login")
	})
}

func TestMe(t *testing.T) {
	h := newTestHandler(t)

	me, err := h.Me("u1")
	require.NoError(t, err)
	require.Equal(t, "jane", me.Username)
	require.Nil(t, me.CanPost)

	me, err = h.Me("u2")
	require.NoError(t, err)
	require.NotNil(t, me.CanPost)
	require.False(t, *me.CanPost)

	_, err = h.Me("missing")
	require.ErrorIs(t, err, models.ErrNotFound)
}

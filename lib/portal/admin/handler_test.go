package portaladminhandler

import (
	"attachment-hub-backend/models"
	apimodels "attachment-hub-backend/models/api"
	authapimodels "attachment-hub-backend/models/api/auth"
	portalapimodels "attachment-hub-backend/models/api/portal"
	dbmodels "attachment-hub-backend/models/db"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeAccounts struct {
	user *dbmodels.User
}

func (f fakeAccounts) Login(data authapimodels.LoginRequest) (authapimodels.JWTResponse, string, error) {
	return authapimodels.JWTResponse{}, "", nil
}

func (f fakeAccounts) Authenticate(login, password string) (*dbmodels.User, string, error) {
	if f.user == nil || f.user.Username != login || password != "admin123" {
		return nil, "Invalid username or password.", nil
	}
	return f.user, "", nil
}

func (f fakeAccounts) IssueToken(user dbmodels.User) (string, error) {
	return "token-" + user.Username, nil
}

func (f fakeAccounts) Me(userID string) (authapimodels.MeView, error) {
	return authapimodels.MeView{}, nil
}

type fakeAudit struct {
	actions *[]models.LogAction
}

func (f fakeAudit) Save(username string, action models.LogAction, details string) {
	*f.actions = append(*f.actions, action)
}

func (f fakeAudit) List(pagination apimodels.Pagination) ([]portalapimodels.LogView, int64, error) {
	return nil, 0, nil
}

func TestLogin(t *testing.T) {
	t.Run("admin role required", func(t *testing.T) {
		actions := []models.LogAction{}
		h := impl{
			accounts: fakeAccounts{user: &dbmodels.User{Username: "mod", Role: models.ModeratorRole, IsActive: true}},
			audit:    fakeAudit{actions: &actions},
		}
		_, hMsg, err := h.Login(authapimodels.LoginRequest{Login: "mod", Password: "admin123"})
		require.NoError(t, err)
		require.Equal(t, invalidAdminCredentials, hMsg)
		require.Empty(t, actions)
	})
	t.Run("wrong password", func(t *testing.T) {
		actions := []models.LogAction{}
		h := impl{
			accounts: fakeAccounts{user: &dbmodels.User{Username: "admin", Role: models.AdminRole, IsActive: true}},
			audit:    fakeAudit{actions: &actions},
		}
		_, hMsg, err := h.Login(authapimodels.LoginRequest{Login: "admin", Password: "nope"})
		require.NoError(t, err)
		require.Equal(t, invalidAdminCredentials, hMsg)
	})
	t.Run("login and logout are logged", func(t *testing.T) {
		actions := []models.LogAction{}
		h := impl{
			accounts: fakeAccounts{user: &dbmodels.User{Username: "admin", Role: models.AdminRole, IsActive: true}},
			audit:    fakeAudit{actions: &actions},
		}
		resp, hMsg, err := h.Login(authapimodels.LoginRequest{Login: "admin", Password: "admin123"})
		require.NoError(t, err)
		require.Empty(t, hMsg)
		require.Equal(t, "token-admin", resp.Token)
		h.Logout("u1")
		require.Equal(t, []models.LogAction{models.LogAdminLogin, models.LogAdminLogout}, actions)
	})
}

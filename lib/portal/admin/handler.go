package portaladminhandler

import (
	accountshandler "attachment-hub-backend/lib/accounts"
	auditloghandler "attachment-hub-backend/lib/portal/audit-log"
	"attachment-hub-backend/models"
	authapimodels "attachment-hub-backend/models/api/auth"

	log "github.com/sirupsen/logrus"
)

// Provider opens and closes administrator sessions for the testimony portal.
// Administrators are marketplace accounts with the ADMIN role.
type Provider interface {
	Login(data authapimodels.LoginRequest) (response authapimodels.JWTResponse, hMsg string, err error)
	Logout(userID string)
}

var Instance Provider

const invalidAdminCredentials = "Invalid admin credentials"

func NewHandler() {
	Instance = impl{
		accounts: accountshandler.Instance,
		audit:    auditloghandler.Instance,
	}
}

type impl struct {
	accounts accountshandler.Provider
	audit    auditloghandler.Provider
}

func (i impl) Login(data authapimodels.LoginRequest) (response authapimodels.JWTResponse, hMsg string, err error) {
	logger := log.WithField("login", data.Login)
	if err = data.Validate(); err != nil {
		return response, err.Error(), nil
	}
	user, hMsg, err := i.accounts.Authenticate(data.Login, data.Password)
	if err != nil {
		return response, "", err
	}
	if hMsg != "" || user == nil || user.Role != models.AdminRole {
		logger.Debug("portal admin login rejected")
		return response, invalidAdminCredentials, nil
	}
	token, err := i.accounts.IssueToken(*user)
	if err != nil {
		logger.WithError(err).Error("portal admin token failed")
		return response, "", err
	}
	i.audit.Save(models.PortalAdminName, models.LogAdminLogin, "Admin logged in")
	return authapimodels.JWTResponse{Token: token}, "", nil
}

func (i impl) Logout(userID string) {
	log.WithField("user_id", userID).Info("portal admin logged out")
	i.audit.Save(models.PortalAdminName, models.LogAdminLogout, "Admin logged out")
}

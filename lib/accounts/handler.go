package accountshandler

import (
	"attachment-hub-backend/db"
	accountsstore "attachment-hub-backend/lib/accounts/store"
	companystore "attachment-hub-backend/lib/company/store"
	authutils "attachment-hub-backend/lib/utils/auth-utils"
	"attachment-hub-backend/models"
	authapimodels "attachment-hub-backend/models/api/auth"
	dbmodels "attachment-hub-backend/models/db"
	"time"

	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Login(data authapimodels.LoginRequest) (response authapimodels.JWTResponse, hMsg string, err error)
	// Authenticate checks credentials and the active flag without issuing a session.
	Authenticate(login, password string) (user *dbmodels.User, hMsg string, err error)
	IssueToken(user dbmodels.User) (token string, err error)
	Me(userID string) (result authapimodels.MeView, err error)
}

var Instance Provider

const (
	invalidCredentialsMessage = "Invalid username or password."
	inactiveMessage           = "Your account is not active yet. Please verify your email first."
)

func NewHandler(secret string, expireInSec int64) {
	Instance = impl{
		store:        accountsstore.NewInstance(db.DB),
		companyStore: companystore.NewInstance(db.DB),
		secret:       secret,
		expireInSec:  expireInSec,
	}
}

type impl struct {
	store        accountsstore.Provider
	companyStore companystore.Provider
	secret       string
	expireInSec  int64
}

func (i impl) Login(data authapimodels.LoginRequest) (response authapimodels.JWTResponse, hMsg string, err error) {
	if err = data.Validate(); err != nil {
		return authapimodels.JWTResponse{}, err.Error(), nil
	}
	user, hMsg, err := i.Authenticate(data.Login, data.Password)
	if err != nil || hMsg != "" {
		return authapimodels.JWTResponse{}, hMsg, err
	}
	token, err := i.IssueToken(*user)
	if err != nil {
		return authapimodels.JWTResponse{}, "", err
	}
	return authapimodels.JWTResponse{Token: token}, "", nil
}

func (i impl) Authenticate(login, password string) (*dbmodels.User, string, error) {
	logger := log.WithField("login", login)
	user, err := i.store.FindByLogin(login)
	if err != nil {
		logger.WithError(err).Error("user lookup failed")
		return nil, "", err
	}
	if user == nil || !authutils.CheckPasswordHash(password, user.Password) {
		logger.Debug("login rejected")
		return nil, invalidCredentialsMessage, nil
	}
	if !user.IsActive {
		return nil, inactiveMessage, nil
	}
	err = i.store.Update(user.ID, map[string]interface{}{"last_login": time.Now()})
	if err != nil {
		logger.WithError(err).Error("last login update failed")
	}
	return user, "", nil
}

func (i impl) IssueToken(user dbmodels.User) (string, error) {
	return authutils.GetToken(authutils.TokenParams{
		UserID: user.ID,
		Name:   user.Username,
		Role:   user.Role,
		Scope:  models.HubScope,
	}, i.secret, i.expireInSec)
}

func (i impl) Me(userID string) (authapimodels.MeView, error) {
	user, err := i.store.GetByID(userID)
	if err != nil {
		return authapimodels.MeView{}, err
	}
	if user == nil {
		return authapimodels.MeView{}, models.ErrNotFound
	}
	result := authapimodels.MeView{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
		RoleName: user.Role.ToHuman(),
		Scope:    models.HubScope,
	}
	if user.Role == models.CompanyRole {
		company, err := i.companyStore.GetByUserID(userID)
		if err != nil {
			return authapimodels.MeView{}, err
		}
		canPost := company != nil && company.CanPost()
		result.CanPost = &canPost
	}
	return result, nil
}

package portalusershandler

import (
	"attachment-hub-backend/db"
	auditloghandler "attachment-hub-backend/lib/portal/audit-log"
	auditlogstore "attachment-hub-backend/lib/portal/audit-log/store"
	testimonystore "attachment-hub-backend/lib/portal/testimony/store"
	portaluserstore "attachment-hub-backend/lib/portal/users/store"
	"attachment-hub-backend/lib/smtp"
	authutils "attachment-hub-backend/lib/utils/auth-utils"
	"attachment-hub-backend/models"
	portalapimodels "attachment-hub-backend/models/api/portal"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	Signup(data portalapimodels.Signup) (id, hMsg string, err error)
	Login(data portalapimodels.Login) (response portalapimodels.SessionResponse, hMsg string, err error)
	ForgotPassword(data portalapimodels.ForgotPassword) (message, hMsg string, err error)
	GetProfile(username string) (item portalapimodels.UserView, err error)
	UpdateProfile(username string, data portalapimodels.ProfileUpdate) (hMsg string, err error)
	DeleteAccount(username string) error
	Dashboard(username string) (item portalapimodels.Dashboard, err error)

	List() (list []portalapimodels.UserView, err error)
	AdminUpdate(id string, data portalapimodels.UserUpdate) (hMsg string, err error)
	AdminDelete(id string) error
}

var Instance Provider

const (
	duplicateMessage   = "Username or email already exists"
	invalidCredentials = "Invalid credentials"
	emailNotFound      = "Email not found"
	resetSentMessage   = "Password reset link sent to your email."
	resetMailSubject   = "Password Reset"
)

type txFunc func(fn func(users portaluserstore.Provider, testimonies testimonystore.Provider, logs auditlogstore.Provider) error) error

func NewHandler(secret string, expireInSec int64, tempPasswordLength int) {
	Instance = impl{
		store:              portaluserstore.NewInstance(db.DB),
		testimonyStore:     testimonystore.NewInstance(db.DB),
		audit:              auditloghandler.Instance,
		mail:               smtp.Instance,
		secret:             secret,
		expireInSec:        expireInSec,
		tempPasswordLength: tempPasswordLength,
		withTx: func(fn func(users portaluserstore.Provider, testimonies testimonystore.Provider, logs auditlogstore.Provider) error) error {
			return db.DB.Transaction(func(tx *gorm.DB) error {
				return fn(portaluserstore.NewInstance(tx), testimonystore.NewInstance(tx), auditlogstore.NewInstance(tx))
			})
		},
	}
}

type impl struct {
	store              portaluserstore.Provider
	testimonyStore     testimonystore.Provider
	audit              auditloghandler.Provider
	mail               smtp.Provider
	secret             string
	expireInSec        int64
	tempPasswordLength int
	withTx             txFunc
}

func (i impl) Signup(data portalapimodels.Signup) (id, hMsg string, err error) {
	if err = data.Validate(); err != nil {
		return "", err.Error(), nil
	}
	exist, err := i.store.ExistByUsernameOrEmail(data.Username, data.Email)
	if err != nil {
		return "", "", err
	}
	if exist {
		return "", duplicateMessage, nil
	}
	hash, err := authutils.HashPassword(data.Password)
	if err != nil {
		return "", "", errors.Wrap(err, "password hash failed")
	}
	rec := data.ToDb(hash)
	err = i.withTx(func(users portaluserstore.Provider, testimonies testimonystore.Provider, logs auditlogstore.Provider) error {
		id, err = users.Create(rec)
		if err != nil {
			return err
		}
		_, err = logs.Create(auditloghandler.NewRecord(rec.Username, models.LogSignup, fmt.Sprintf("User %s registered", rec.Username)))
		return err
	})
	if err != nil {
		if isDuplicate(err) {
			return "", duplicateMessage, nil
		}
		return "", "", err
	}
	log.WithField("portal_user", rec.Username).Info("portal user registered")
	return id, "", nil
}

func (i impl) Login(data portalapimodels.Login) (response portalapimodels.SessionResponse, hMsg string, err error) {
	if err = data.Validate(); err != nil {
		return response, err.Error(), nil
	}
	user, err := i.store.GetByUsername(data.Username)
	if err != nil {
		return response, "", err
	}
	if user == nil || !authutils.CheckPasswordHash(data.Password, user.Password) {
		return response, invalidCredentials, nil
	}
	token, err := authutils.GetToken(authutils.TokenParams{
		UserID: user.ID,
		Name:   user.Username,
		Scope:  models.PortalScope,
	}, i.secret, i.expireInSec)
	if err != nil {
		return response, "", err
	}
	i.audit.Save(user.Username, models.LogLogin, fmt.Sprintf("User %s logged in", user.Username))
	return portalapimodels.SessionResponse{Token: token, Username: user.Username}, "", nil
}

func (i impl) ForgotPassword(data portalapimodels.ForgotPassword) (message, hMsg string, err error) {
	if err = data.Validate(); err != nil {
		return "", err.Error(), nil
	}
	user, err := i.store.GetByEmail(data.Email)
	if err != nil {
		return "", "", err
	}
	if user == nil {
		return "", emailNotFound, nil
	}
	password := authutils.GenerateTempPassword(i.tempPasswordLength)
	hash, err := authutils.HashPassword(password)
	if err != nil {
		return "", "", errors.Wrap(err, "password hash failed")
	}
	if err = i.store.Update(user.ID, map[string]interface{}{"password": hash}); err != nil {
		return "", "", err
	}
	i.audit.Save(user.Username, models.LogResetPassword, fmt.Sprintf("User %s reset password for email %s", user.Username, user.Email))
	body := fmt.Sprintf("Hello %s,\n\nYour temporary password is: %s\nPlease log in and change it.\n", user.FullName, password)
	i.mail.SendAsync(user.Email, resetMailSubject, body)
	return resetSentMessage, "", nil
}

func (i impl) GetProfile(username string) (portalapimodels.UserView, error) {
	user, err := i.store.GetByUsername(username)
	if err != nil {
		return portalapimodels.UserView{}, err
	}
	if user == nil {
		return portalapimodels.UserView{}, models.ErrNotFound
	}
	return portalapimodels.UserConvert(*user), nil
}

func (i impl) UpdateProfile(username string, data portalapimodels.ProfileUpdate) (hMsg string, err error) {
	if err = data.Validate(); err != nil {
		return err.Error(), nil
	}
	email := strings.TrimSpace(data.Email)
	other, err := i.store.GetByEmail(email)
	if err != nil {
		return "", err
	}
	if other != nil && other.Username != username {
		return "email: already in use", nil
	}
	if err = i.store.UpdateByUsername(username, map[string]interface{}{"email": email}); err != nil {
		if isDuplicate(err) {
			return "email: already in use", nil
		}
		return "", err
	}
	i.audit.Save(username, models.LogUpdateProfile, fmt.Sprintf("User %s updated email to %s", username, email))
	return "", nil
}

func (i impl) DeleteAccount(username string) error {
	user, err := i.store.GetByUsername(username)
	if err != nil {
		return err
	}
	if user == nil {
		return models.ErrNotFound
	}
	return i.deleteCascade(user.ID, user.Username, models.LogDeleteAccount, fmt.Sprintf("User %s deleted their account", user.Username))
}

func (i impl) Dashboard(username string) (item portalapimodels.Dashboard, err error) {
	user, err := i.store.GetByUsername(username)
	if err != nil {
		return item, err
	}
	if user == nil {
		return item, models.ErrNotFound
	}
	list, err := i.testimonyStore.ListByUsername(user.Username)
	if err != nil {
		return item, err
	}
	item = portalapimodels.Dashboard{
		Username:    user.Username,
		FullName:    user.FullName,
		Testimonies: make([]portalapimodels.TestimonyView, 0, len(list)),
	}
	for _, rec := range list {
		item.Testimonies = append(item.Testimonies, portalapimodels.TestimonyConvert(rec))
	}
	return item, nil
}

func (i impl) List() ([]portalapimodels.UserView, error) {
	list, err := i.store.List()
	if err != nil {
		return nil, err
	}
	result := make([]portalapimodels.UserView, 0, len(list))
	for _, rec := range list {
		result = append(result, portalapimodels.UserConvert(rec))
	}
	return result, nil
}

func (i impl) AdminUpdate(id string, data portalapimodels.UserUpdate) (hMsg string, err error) {
	if err = data.Validate(); err != nil {
		return err.Error(), nil
	}
	user, err := i.store.GetByID(id)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", models.ErrNotFound
	}
	updMap := data.ToUpdMap()
	if data.Password != "" {
		hash, err := authutils.HashPassword(data.Password)
		if err != nil {
			return "", errors.Wrap(err, "password hash failed")
		}
		updMap["password"] = hash
	}
	if err = i.store.Update(id, updMap); err != nil {
		if isDuplicate(err) {
			return "email: already in use", nil
		}
		return "", err
	}
	i.audit.Save(user.Username, models.LogAdminUpdateUser, fmt.Sprintf("Admin updated user %s", user.Username))
	return "", nil
}

func (i impl) AdminDelete(id string) error {
	user, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return models.ErrNotFound
	}
	return i.deleteCascade(user.ID, user.Username, models.LogAdminDeleteUser, fmt.Sprintf("Admin deleted user %s", user.Username))
}

// deleteCascade removes the user together with their testimonies.
func (i impl) deleteCascade(id, username string, action models.LogAction, details string) error {
	err := i.withTx(func(users portaluserstore.Provider, testimonies testimonystore.Provider, logs auditlogstore.Provider) error {
		if err := testimonies.DeleteByUsername(username); err != nil {
			return err
		}
		if err := users.Delete(id); err != nil {
			return err
		}
		_, err := logs.Create(auditloghandler.NewRecord(username, action, details))
		return err
	})
	if err != nil {
		return err
	}
	log.
		WithField("portal_user", username).
		WithField("action", action).
		Info("portal user deleted")
	return nil
}

func isDuplicate(err error) bool {
	return strings.Contains(err.Error(), "(SQLSTATE 23505)")
}

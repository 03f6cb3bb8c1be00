package studenthandler

import (
	"attachment-hub-backend/db"
	accountshandler "attachment-hub-backend/lib/accounts"
	accountsstore "attachment-hub-backend/lib/accounts/store"
	filestorage "attachment-hub-backend/lib/file-storage"
	studentstore "attachment-hub-backend/lib/student/store"
	authutils "attachment-hub-backend/lib/utils/auth-utils"
	"attachment-hub-backend/lib/utils/helpers"
	"attachment-hub-backend/models"
	authapimodels "attachment-hub-backend/models/api/auth"
	studentapimodels "attachment-hub-backend/models/api/student"
	dbmodels "attachment-hub-backend/models/db"
	"context"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	Register(data authapimodels.StudentRegister) (response authapimodels.JWTResponse, hMsg string, err error)
	GetProfile(userID string) (item studentapimodels.StudentProfileView, err error)
	UpdateProfile(userID string, data studentapimodels.StudentProfileData) (hMsg string, err error)
	UploadResume(ctx context.Context, userID, fileName, contentType string, data []byte) (hMsg string, err error)
	GetResume(ctx context.Context, userID string) (data []byte, contentType string, err error)
}

var Instance Provider

type txFunc func(fn func(accounts accountsstore.Provider, students studentstore.Provider) error) error

func NewHandler() {
	Instance = impl{
		accountsStore: accountsstore.NewInstance(db.DB),
		store:         studentstore.NewInstance(db.DB),
		accounts:      accountshandler.Instance,
		files:         filestorage.Instance,
		withTx: func(fn func(accounts accountsstore.Provider, students studentstore.Provider) error) error {
			return db.DB.Transaction(func(tx *gorm.DB) error {
				return fn(accountsstore.NewInstance(tx), studentstore.NewInstance(tx))
			})
		},
	}
}

type impl struct {
	accountsStore accountsstore.Provider
	store         studentstore.Provider
	accounts      accountshandler.Provider
	files         filestorage.Provider
	withTx        txFunc
}

var resumeExtensions = []string{".pdf", ".doc", ".docx"}

func (i impl) Register(data authapimodels.StudentRegister) (response authapimodels.JWTResponse, hMsg string, err error) {
	if err = data.Validate(); err != nil {
		return authapimodels.JWTResponse{}, err.Error(), nil
	}
	hMsg, err = i.checkUnique(data.Username, data.Email)
	if err != nil || hMsg != "" {
		return authapimodels.JWTResponse{}, hMsg, err
	}
	hash, err := authutils.HashPassword(data.Password)
	if err != nil {
		return authapimodels.JWTResponse{}, "", errors.Wrap(err, "password hash failed")
	}
	user := dbmodels.User{
		Username: strings.TrimSpace(data.Username),
		Email:    strings.TrimSpace(data.Email),
		Password: hash,
		Role:     models.StudentRole,
		IsActive: true,
	}
	err = i.withTx(func(accounts accountsstore.Provider, students studentstore.Provider) error {
		id, err := accounts.Create(user)
		if err != nil {
			return err
		}
		user.ID = id
		_, err = students.GetOrCreate(id)
		return err
	})
	if err != nil {
		if strings.Contains(err.Error(), "(SQLSTATE 23505)") {
			return authapimodels.JWTResponse{}, "username: a user with that username or email already exists", nil
		}
		return authapimodels.JWTResponse{}, "", err
	}
	log.WithField("user_id", user.ID).Info("student registered")
	token, err := i.accounts.IssueToken(user)
	if err != nil {
		return authapimodels.JWTResponse{}, "", err
	}
	response = authapimodels.JWTResponse{Token: token}
	if helpers.IsSafeRedirect(data.Next) {
		response.Next = data.Next
	}
	return response, "", nil
}

func (i impl) checkUnique(username, email string) (hMsg string, err error) {
	exist, err := i.accountsStore.ExistByUsername(strings.TrimSpace(username))
	if err != nil {
		return "", err
	}
	if exist {
		return "username: a user with that username already exists", nil
	}
	exist, err = i.accountsStore.ExistByEmail(strings.TrimSpace(email))
	if err != nil {
		return "", err
	}
	if exist {
		return "email: a user with that email already exists", nil
	}
	return "", nil
}

func (i impl) GetProfile(userID string) (studentapimodels.StudentProfileView, error) {
	rec, err := i.store.GetOrCreate(userID)
	if err != nil {
		return studentapimodels.StudentProfileView{}, err
	}
	return studentapimodels.StudentProfileConvert(*rec), nil
}

func (i impl) UpdateProfile(userID string, data studentapimodels.StudentProfileData) (hMsg string, err error) {
	if err = data.Validate(); err != nil {
		return err.Error(), nil
	}
	if _, err = i.store.GetOrCreate(userID); err != nil {
		return "", err
	}
	if err = i.store.Update(userID, data.ToUpdMap()); err != nil {
		return "", err
	}
	return "", nil
}

func (i impl) UploadResume(ctx context.Context, userID, fileName, contentType string, data []byte) (hMsg string, err error) {
	logger := log.WithField("user_id", userID)
	ext := strings.ToLower(filepath.Ext(fileName))
	if !contains(resumeExtensions, ext) {
		return "resume: upload a PDF or Word document", nil
	}
	profile, err := i.store.GetOrCreate(userID)
	if err != nil {
		return "", err
	}
	oldKey := profile.ResumeKey
	key, err := i.files.Upload(ctx, filestorage.ResumeFolder, fileName, contentType, data)
	if err != nil {
		if errors.Is(err, filestorage.ErrStorageDisabled) {
			return "resume uploads are not available right now", nil
		}
		return "", err
	}
	if err = i.store.Update(userID, map[string]interface{}{"resume_key": key}); err != nil {
		return "", err
	}
	if oldKey != "" {
		// snapshots taken by applications are separate objects
		if err := i.files.Delete(ctx, oldKey); err != nil {
			logger.WithError(err).Warn("previous resume delete failed")
		}
	}
	logger.Info("resume uploaded")
	return "", nil
}

func (i impl) GetResume(ctx context.Context, userID string) (data []byte, contentType string, err error) {
	profile, err := i.store.GetByUserID(userID)
	if err != nil {
		return nil, "", err
	}
	if profile == nil || profile.ResumeKey == "" {
		return nil, "", models.ErrNotFound
	}
	return i.files.Get(ctx, profile.ResumeKey)
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}

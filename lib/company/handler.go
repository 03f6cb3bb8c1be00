package companyhandler

import (
	"attachment-hub-backend/db"
	accountsstore "attachment-hub-backend/lib/accounts/store"
	companyverify "attachment-hub-backend/lib/company-verify"
	companyverifystore "attachment-hub-backend/lib/company-verify/store"
	companystore "attachment-hub-backend/lib/company/store"
	filestorage "attachment-hub-backend/lib/file-storage"
	jobhandler "attachment-hub-backend/lib/job"
	reviewhandler "attachment-hub-backend/lib/review"
	"attachment-hub-backend/lib/smtp"
	authutils "attachment-hub-backend/lib/utils/auth-utils"
	vacancyhandler "attachment-hub-backend/lib/vacancy"
	"attachment-hub-backend/models"
	companyapimodels "attachment-hub-backend/models/api/company"
	dbmodels "attachment-hub-backend/models/db"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	Register(data companyapimodels.CompanyRegister) (result companyapimodels.RegisterResult, hMsg string, err error)
	Verify(uid, token string) (message, hMsg string, err error)
	GetProfile(userID string) (item companyapimodels.CompanyView, err error)
	UpdateProfile(userID string, data companyapimodels.CompanyProfileUpdate) (hMsg string, err error)
	UploadLogo(ctx context.Context, userID, fileName, contentType string, data []byte) (hMsg string, err error)
	GetLogo(ctx context.Context, companyID string) (data []byte, contentType string, err error)
	PublicProfile(companyID string, tab companyapimodels.PublicProfileTab) (item companyapimodels.PublicProfile, err error)
	Dashboard(userID string) (item companyapimodels.Dashboard, hMsg string, err error)
}

var Instance Provider

const (
	registeredMessage  = "Registration received. Please verify your email via the link sent to you."
	verifiedMessage    = "Email verified. Wait for admin approval to start posting."
	invalidLinkMessage = "Invalid or expired verification link."
	verifyMailSubject  = "Verify your company account"
	publicReviewLimit  = 6
)

var logoExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".webp"}

type txFunc func(fn func(accounts accountsstore.Provider, companies companystore.Provider, tokens companyverifystore.Provider) error) error

func NewHandler(domain string) {
	Instance = impl{
		accountsStore: accountsstore.NewInstance(db.DB),
		store:         companystore.NewInstance(db.DB),
		verify:        companyverify.Instance,
		vacancies:     vacancyhandler.Instance,
		jobs:          jobhandler.Instance,
		reviews:       reviewhandler.Instance,
		files:         filestorage.Instance,
		mail:          smtp.Instance,
		domain:        strings.TrimRight(domain, "/"),
		withTx: func(fn func(accounts accountsstore.Provider, companies companystore.Provider, tokens companyverifystore.Provider) error) error {
			return db.DB.Transaction(func(tx *gorm.DB) error {
				return fn(accountsstore.NewInstance(tx), companystore.NewInstance(tx), companyverifystore.NewInstance(tx))
			})
		},
	}
}

type impl struct {
	accountsStore accountsstore.Provider
	store         companystore.Provider
	verify        companyverify.Provider
	vacancies     vacancyhandler.Provider
	jobs          jobhandler.Provider
	reviews       reviewhandler.Provider
	files         filestorage.Provider
	mail          smtp.Provider
	domain        string
	withTx        txFunc
}

func (i impl) Register(data companyapimodels.CompanyRegister) (result companyapimodels.RegisterResult, hMsg string, err error) {
	if err = data.Validate(); err != nil {
		return result, err.Error(), nil
	}
	hMsg, err = i.checkUnique(data)
	if err != nil || hMsg != "" {
		return result, hMsg, err
	}
	hash, err := authutils.HashPassword(data.Password)
	if err != nil {
		return result, "", errors.Wrap(err, "password hash failed")
	}
	user := dbmodels.User{
		Username: strings.TrimSpace(data.Username),
		Email:    strings.TrimSpace(data.Email),
		Password: hash,
		Role:     models.CompanyRole,
		IsActive: false,
	}
	var uid, token string
	err = i.withTx(func(accounts accountsstore.Provider, companies companystore.Provider, tokens companyverifystore.Provider) error {
		userID, err := accounts.Create(user)
		if err != nil {
			return err
		}
		result.CompanyID, err = companies.Create(data.ToDb(userID))
		if err != nil {
			return err
		}
		uid, token, err = i.verify.Issue(tokens, userID)
		return err
	})
	if err != nil {
		if strings.Contains(err.Error(), "(SQLSTATE 23505)") {
			return companyapimodels.RegisterResult{}, "username: a user with that username, email or registration number already exists", nil
		}
		return companyapimodels.RegisterResult{}, "", err
	}
	i.getLogger(result.CompanyID).Info("company registered")

	link := i.verify.Link(i.domain, uid, token)
	body := fmt.Sprintf("Hello %s,\n\nPlease verify your email by clicking the link below:\n%s\n\nThank you.", data.Name, link)
	i.mail.SendAsync(user.Email, verifyMailSubject, body)

	result.Message = registeredMessage
	return result, "", nil
}

func (i impl) checkUnique(data companyapimodels.CompanyRegister) (hMsg string, err error) {
	exist, err := i.accountsStore.ExistByUsername(data.Username)
	if err != nil {
		return "", err
	}
	if exist {
		return "username: a user with that username already exists", nil
	}
	exist, err = i.accountsStore.ExistByEmail(data.Email)
	if err != nil {
		return "", err
	}
	if exist {
		return "email: a user with that email already exists", nil
	}
	exist, err = i.store.ExistByRegistrationNumber(data.RegistrationNumber)
	if err != nil {
		return "", err
	}
	if exist {
		return "registration_number: a company with that registration number already exists", nil
	}
	return "", nil
}

func (i impl) Verify(uid, token string) (message, hMsg string, err error) {
	err = i.withTx(func(accounts accountsstore.Provider, companies companystore.Provider, tokens companyverifystore.Provider) error {
		userID, err := i.verify.Consume(tokens, uid, token)
		if err != nil {
			return err
		}
		company, err := companies.GetByUserID(userID)
		if err != nil {
			return err
		}
		if company == nil {
			return companyverify.ErrInvalidLink
		}
		if err = accounts.Update(userID, map[string]interface{}{"is_active": true}); err != nil {
			return err
		}
		return companies.Update(company.ID, map[string]interface{}{"email_verified": true})
	})
	if err != nil {
		if errors.Is(err, companyverify.ErrInvalidLink) {
			return "", invalidLinkMessage, nil
		}
		return "", "", err
	}
	return verifiedMessage, "", nil
}

func (i impl) GetProfile(userID string) (companyapimodels.CompanyView, error) {
	rec, err := i.getOwn(userID)
	if err != nil {
		return companyapimodels.CompanyView{}, err
	}
	return companyapimodels.CompanyConvert(*rec), nil
}

func (i impl) UpdateProfile(userID string, data companyapimodels.CompanyProfileUpdate) (hMsg string, err error) {
	if err = data.Validate(); err != nil {
		return err.Error(), nil
	}
	rec, err := i.getOwn(userID)
	if err != nil {
		return "", err
	}
	if err = i.store.Update(rec.ID, data.ToUpdMap()); err != nil {
		return "", err
	}
	i.getLogger(rec.ID).Info("company profile updated")
	return "", nil
}

func (i impl) UploadLogo(ctx context.Context, userID, fileName, contentType string, data []byte) (hMsg string, err error) {
	ext := strings.ToLower(filepath.Ext(fileName))
	if !contains(logoExtensions, ext) {
		return "logo: upload a PNG, JPEG, GIF or WebP image", nil
	}
	rec, err := i.getOwn(userID)
	if err != nil {
		return "", err
	}
	logger := i.getLogger(rec.ID)
	oldKey := rec.LogoKey
	key, err := i.files.Upload(ctx, filestorage.LogoFolder, fileName, contentType, data)
	if err != nil {
		if errors.Is(err, filestorage.ErrStorageDisabled) {
			return "logo uploads are not available right now", nil
		}
		return "", err
	}
	if err = i.store.Update(rec.ID, map[string]interface{}{"logo_key": key}); err != nil {
		return "", err
	}
	if oldKey != "" {
		if err := i.files.Delete(ctx, oldKey); err != nil {
			logger.WithError(err).Warn("previous logo delete failed")
		}
	}
	logger.Info("company logo uploaded")
	return "", nil
}

func (i impl) GetLogo(ctx context.Context, companyID string) (data []byte, contentType string, err error) {
	rec, err := i.store.GetByID(companyID)
	if err != nil {
		return nil, "", err
	}
	if rec == nil || rec.LogoKey == "" {
		return nil, "", models.ErrNotFound
	}
	return i.files.Get(ctx, rec.LogoKey)
}

func (i impl) PublicProfile(companyID string, tab companyapimodels.PublicProfileTab) (item companyapimodels.PublicProfile, err error) {
	rec, err := i.store.GetByID(companyID)
	if err != nil {
		return item, err
	}
	if rec == nil {
		return item, models.ErrNotFound
	}
	item = companyapimodels.PublicProfile{
		Company: companyapimodels.CompanyConvert(*rec),
		Tab:     tab.Normalize(),
	}
	item.Attachments, err = i.vacancies.ListOpenByCompany(rec.ID)
	if err != nil {
		return item, err
	}
	item.Jobs, err = i.jobs.ListByCompany(rec.ID, true)
	if err != nil {
		return item, err
	}
	item.AverageRating, err = i.reviews.CompanyRating(rec.ID)
	if err != nil {
		return item, err
	}
	item.Reviews, err = i.reviews.ApprovedReviews(rec.ID, publicReviewLimit)
	if err != nil {
		return item, err
	}
	return item, nil
}

func (i impl) Dashboard(userID string) (item companyapimodels.Dashboard, hMsg string, err error) {
	rec, err := i.store.GetByUserID(userID)
	if err != nil {
		return item, "", err
	}
	if rec == nil || !rec.CanPost() {
		return item, models.CannotPostMessage, nil
	}
	item.Company = companyapimodels.CompanyConvert(*rec)
	item.Vacancies, err = i.vacancies.ListByCompany(rec.ID)
	if err != nil {
		return item, "", err
	}
	item.Jobs, err = i.jobs.ListByCompany(rec.ID, false)
	if err != nil {
		return item, "", err
	}
	return item, "", nil
}

func (i impl) getOwn(userID string) (*dbmodels.CompanyProfile, error) {
	rec, err := i.store.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, models.ErrNotFound
	}
	return rec, nil
}

func (i impl) getLogger(companyID string) *log.Entry {
	logger := log.WithField("company_id", companyID)
	return logger
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}

package companyhandler

import (
	accountsstore "attachment-hub-backend/lib/accounts/store"
	companyverify "attachment-hub-backend/lib/company-verify"
	companyverifystore "attachment-hub-backend/lib/company-verify/store"
	companystore "attachment-hub-backend/lib/company/store"
	filestorage "attachment-hub-backend/lib/file-storage"
	"attachment-hub-backend/models"
	companyapimodels "attachment-hub-backend/models/api/company"
	jobapimodels "attachment-hub-backend/models/api/job"
	reviewapimodels "attachment-hub-backend/models/api/review"
	vacancyapimodels "attachment-hub-backend/models/api/vacancy"
	dbmodels "attachment-hub-backend/models/db"
	"context"
	"fmt"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeAccountsStore struct {
	users map[string]*dbmodels.User
}

func (f *fakeAccountsStore) Create(rec dbmodels.User) (string, error) {
	rec.ID = fmt.Sprintf("u%v", len(f.users)+1)
	f.users[rec.ID] = &rec
	return rec.ID, nil
}

func (f *fakeAccountsStore) GetByID(id string) (*dbmodels.User, error) { return f.users[id], nil }

func (f *fakeAccountsStore) FindByLogin(login string) (*dbmodels.User, error) { return nil, nil }

func (f *fakeAccountsStore) ExistByUsername(username string) (bool, error) {
	for _, rec := range f.users {
		if rec.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAccountsStore) ExistByEmail(email string) (bool, error) {
	for _, rec := range f.users {
		if strings.EqualFold(rec.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAccountsStore) Update(id string, updMap map[string]interface{}) error {
	rec, ok := f.users[id]
	if !ok {
		return fmt.Errorf("user not found")
	}
	if v, ok := updMap["is_active"]; ok {
		rec.IsActive = v.(bool)
	}
	return nil
}

type fakeCompanyStore struct {
	companies map[string]*dbmodels.CompanyProfile
}

func (f *fakeCompanyStore) Create(rec dbmodels.CompanyProfile) (string, error) {
	rec.ID = fmt.Sprintf("c%v", len(f.companies)+1)
	f.companies[rec.ID] = &rec
	return rec.ID, nil
}

func (f *fakeCompanyStore) GetByID(id string) (*dbmodels.CompanyProfile, error) {
	return f.companies[id], nil
}

func (f *fakeCompanyStore) GetByUserID(userID string) (*dbmodels.CompanyProfile, error) {
	for _, rec := range f.companies {
		if rec.UserID == userID {
			return rec, nil
		}
	}
	return nil, nil
}

func (f *fakeCompanyStore) ExistByRegistrationNumber(number string) (bool, error) {
	for _, rec := range f.companies {
		if strings.EqualFold(rec.RegistrationNumber, number) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCompanyStore) Update(id string, updMap map[string]interface{}) error {
	rec, ok := f.companies[id]
	if !ok {
		return fmt.Errorf("company not found")
	}
	if v, ok := updMap["email_verified"]; ok {
		rec.EmailVerified = v.(bool)
	}
	if v, ok := updMap["name"]; ok {
		rec.Name = v.(string)
	}
	if v, ok := updMap["logo_key"]; ok {
		rec.LogoKey = v.(string)
	}
	return nil
}

func (f *fakeCompanyStore) ListPendingApproval() ([]dbmodels.CompanyProfile, error) { return nil, nil }

type fakeTokenStore struct {
	tokens map[string]*dbmodels.CompanyVerifyToken
}

func (f *fakeTokenStore) Create(rec dbmodels.CompanyVerifyToken) error {
	f.tokens[rec.TokenID] = &rec
	return nil
}

func (f *fakeTokenStore) GetByTokenID(tokenID string) (*dbmodels.CompanyVerifyToken, error) {
	return f.tokens[tokenID], nil
}

func (f *fakeTokenStore) MarkUsed(tokenID string, usedAt time.Time) (bool, error) {
	rec, ok := f.tokens[tokenID]
	if !ok || rec.DateUsed != nil {
		return false, nil
	}
	rec.DateUsed = &usedAt
	return true, nil
}

type fakeVacancies struct{}

func (f fakeVacancies) Create(userID string, role models.UserRole, data vacancyapimodels.VacancyData) (string, string, error) {
	return "", "", nil
}

func (f fakeVacancies) Update(userID string, role models.UserRole, id string, data vacancyapimodels.VacancyData) (string, error) {
	return "", nil
}

func (f fakeVacancies) Deactivate(userID string, role models.UserRole, id string) (string, error) {
	return "", nil
}

func (f fakeVacancies) GetByID(id string) (*vacancyapimodels.VacancyDetail, error) { return nil, nil }

func (f fakeVacancies) List(filter vacancyapimodels.VacancyFilter) ([]vacancyapimodels.VacancyView, int64, error) {
	return nil, 0, nil
}

func (f fakeVacancies) ListByCompany(companyID string) ([]vacancyapimodels.VacancyView, error) {
	return []vacancyapimodels.VacancyView{{ID: "v-open", CompanyID: companyID}, {ID: "v-closed", CompanyID: companyID}}, nil
}

func (f fakeVacancies) ListOpenByCompany(companyID string) ([]vacancyapimodels.VacancyView, error) {
	return []vacancyapimodels.VacancyView{{ID: "v-open", CompanyID: companyID}}, nil
}

func (f fakeVacancies) ArchiveExpired() (int64, error) { return 0, nil }

type fakeJobs struct{}

func (f fakeJobs) Create(userID string, role models.UserRole, data jobapimodels.JobData) (string, string, error) {
	return "", "", nil
}

func (f fakeJobs) Update(userID string, role models.UserRole, id string, data jobapimodels.JobData) (string, error) {
	return "", nil
}

func (f fakeJobs) Deactivate(userID string, role models.UserRole, id string) (string, error) {
	return "", nil
}

func (f fakeJobs) GetActive(id string) (*jobapimodels.JobView, error) { return nil, nil }

func (f fakeJobs) List(filter jobapimodels.JobFilter) ([]jobapimodels.JobView, int64, error) {
	return nil, 0, nil
}

func (f fakeJobs) ListByCompany(companyID string, onlyActive bool) ([]jobapimodels.JobView, error) {
	list := []jobapimodels.JobView{{ID: "j-active", IsActive: true}}
	if !onlyActive {
		list = append(list, jobapimodels.JobView{ID: "j-inactive"})
	}
	return list, nil
}

func (f fakeJobs) ListActive(limit int) ([]jobapimodels.JobView, error) { return nil, nil }

type fakeReviews struct{}

func (f fakeReviews) Submit(ctx context.Context, identity string, data reviewapimodels.ReviewData) (reviewapimodels.SubmitResult, string, error) {
	return reviewapimodels.SubmitResult{}, "", nil
}

func (f fakeReviews) CompanyRating(companyID string) (*float64, error) {
	rating := 4.5
	return &rating, nil
}

func (f fakeReviews) ApprovedReviews(companyID string, limit int) ([]reviewapimodels.ReviewView, error) {
	list := []reviewapimodels.ReviewView{}
	for i := 0; i < 10 && i < limit; i++ {
		list = append(list, reviewapimodels.ReviewView{ID: fmt.Sprintf("r%v", i)})
	}
	return list, nil
}

func (f fakeReviews) PendingReviews(limit int) ([]reviewapimodels.ReviewView, error) { return nil, nil }

type fakeFiles struct {
	objects map[string][]byte
	deleted []string
}

func (f *fakeFiles) Upload(ctx context.Context, folder filestorage.Folder, fileName, contentType string, data []byte) (string, error) {
	key := fmt.Sprintf("%v/%v-%v", folder, len(f.objects), fileName)
	f.objects[key] = data
	return key, nil
}

func (f *fakeFiles) Get(ctx context.Context, key string) ([]byte, string, error) {
	data, ok := f.objects[key]
	if !ok {
		return nil, "", models.ErrNotFound
	}
	return data, "image/png", nil
}

func (f *fakeFiles) Copy(ctx context.Context, srcKey string, folder filestorage.Folder) (string, error) {
	return "", nil
}

func (f *fakeFiles) Delete(ctx context.Context, key string) error {
	f.deleted = append(f.deleted, key)
	delete(f.objects, key)
	return nil
}

type sentMail struct {
	to, subject, body string
}

type fakeMail struct {
	sent []sentMail
}

func (f *fakeMail) SendEMail(to, subject, message string) error {
	f.sent = append(f.sent, sentMail{to: to, subject: subject, body: message})
	return nil
}

func (f *fakeMail) SendAsync(to, subject, message string) {
	_ = f.SendEMail(to, subject, message)
}

type testEnv struct {
	handler   impl
	accounts  *fakeAccountsStore
	companies *fakeCompanyStore
	tokens    *fakeTokenStore
	files     *fakeFiles
	mail      *fakeMail
}

func newTestEnv() testEnv {
	env := testEnv{
		accounts:  &fakeAccountsStore{users: map[string]*dbmodels.User{}},
		companies: &fakeCompanyStore{companies: map[string]*dbmodels.CompanyProfile{}},
		tokens:    &fakeTokenStore{tokens: map[string]*dbmodels.CompanyVerifyToken{}},
		files:     &fakeFiles{objects: map[string][]byte{}},
		mail:      &fakeMail{},
	}
	env.handler = impl{
		accountsStore: env.accounts,
		store:         env.companies,
		verify:        companyverify.NewSigner("secret", 3600, time.Now),
		vacancies:     fakeVacancies{},
		jobs:          fakeJobs{},
		reviews:       fakeReviews{},
		files:         env.files,
		mail:          env.mail,
		domain:        "https://hub.example.com",
		withTx: func(fn func(accounts accountsstore.Provider, companies companystore.Provider, tokens companyverifystore.Provider) error) error {
			return fn(env.accounts, env.companies, env.tokens)
		},
	}
	return env
}

func registerData() companyapimodels.CompanyRegister {
	return companyapimodels.CompanyRegister{
		Username:           "acme",
		Email:              "hr@acme.com",
		Password:           "secret123",
		PasswordConfirm:    "secret123",
		Name:               "Acme Ltd",
		RegistrationNumber: "PVT-001",
		CompanyDetails: companyapimodels.CompanyDetails{
			Industry:      "Engineering",
			Location:      "Nairobi",
			ContactPerson: "Jane",
			OfficialEmail: "info@acme.com",
		},
	}
}

func linkParts(t *testing.T, body string) (uid, token string) {
	idx := strings.Index(body, "https://hub.example.com/api/v1/companies/verify/")
	require.True(t, idx >= 0, body)
	link := strings.Fields(body[idx:])[0]
	u, err := url.Parse(link)
	require.NoError(t, err)
	parts := strings.Split(strings.TrimPrefix(u.Path, "/api/v1/companies/verify/"), "/")
	require.Len(t, parts, 2)
	return parts[0], parts[1]
}

func TestRegister(t *testing.T) {
	t.Run("creates inactive user and sends verification mail", func(t *testing.T) {
		env := newTestEnv()
		result, hMsg, err := env.handler.Register(registerData())
		require.NoError(t, err)
		require.Empty(t, hMsg)
		require.Equal(t, registeredMessage, result.Message)
		require.NotEmpty(t, result.CompanyID)

		user := env.accounts.users["u1"]
		require.NotNil(t, user)
		require.False(t, user.IsActive)
		require.Equal(t, models.CompanyRole, user.Role)
		require.False(t, env.companies.companies[result.CompanyID].CanPost())

		require.Len(t, env.mail.sent, 1)
		require.Equal(t, "hr@acme.com", env.mail.sent[0].to)
		require.Equal(t, "Verify your company account", env.mail.sent[0].subject)
		require.Contains(t, env.mail.sent[0].body, "Hello Acme Ltd,")
		require.Len(t, env.tokens.tokens, 1)
	})
	t.Run("duplicates rejected", func(t *testing.T) {
		env := newTestEnv()
		_, _, err := env.handler.Register(registerData())
		require.NoError(t, err)

		data := registerData()
		data.Email = "other@acme.com"
		_, hMsg, err := env.handler.Register(data)
		require.NoError(t, err)
		require.Contains(t, hMsg, "username")

		data = registerData()
		data.Username = "acme2"
		data.Email = "other@acme.com"
		data.RegistrationNumber = "pvt-001"
		_, hMsg, err = env.handler.Register(data)
		require.NoError(t, err)
		require.Contains(t, hMsg, "registration_number")
		require.Len(t, env.accounts.users, 1)
	})
	t.Run("duplicate email rejected", func(t *testing.T) {
		env := newTestEnv()
		_, _, err := env.handler.Register(registerData())
		require.NoError(t, err)

		data := registerData()
		data.Username = "acme-two"
		data.RegistrationNumber = "PVT-002"
		_, hMsg, err := env.handler.Register(data)
		require.NoError(t, err)
		require.Contains(t, hMsg, "email")
		require.Len(t, env.accounts.users, 1)
		require.Len(t, env.mail.sent, 1)
	})
}

func TestVerify(t *testing.T) {
	t.Run("link activates the account once", func(t *testing.T) {
		env := newTestEnv()
		result, _, err := env.handler.Register(registerData())
		require.NoError(t, err)
		uid, token := linkParts(t, env.mail.sent[0].body)

		message, hMsg, err := env.handler.Verify(uid, token)
		require.NoError(t, err)
		require.Empty(t, hMsg)
		require.Equal(t, verifiedMessage, message)
		require.True(t, env.accounts.users["u1"].IsActive)
		company := env.companies.companies[result.CompanyID]
		require.True(t, company.EmailVerified)
		require.False(t, company.CanPost())

		_, hMsg, err = env.handler.Verify(uid, token)
		require.NoError(t, err)
		require.Equal(t, invalidLinkMessage, hMsg)
	})
	t.Run("tampered token", func(t *testing.T) {
		env := newTestEnv()
		_, _, err := env.handler.Register(registerData())
		require.NoError(t, err)
		uid, token := linkParts(t, env.mail.sent[0].body)

		_, hMsg, err := env.handler.Verify(uid, token+"x")
		require.NoError(t, err)
		require.Equal(t, invalidLinkMessage, hMsg)
		require.False(t, env.accounts.users["u1"].IsActive)
	})
}

func newApprovedCompany(env testEnv) *dbmodels.CompanyProfile {
	rec := &dbmodels.CompanyProfile{UserID: "u9", Name: "Acme", EmailVerified: true, AdminApproved: true}
	rec.ID = "c9"
	env.companies.companies[rec.ID] = rec
	return rec
}

func TestProfile(t *testing.T) {
	t.Run("update own profile", func(t *testing.T) {
		env := newTestEnv()
		newApprovedCompany(env)
		data := companyapimodels.CompanyProfileUpdate{
			Name: "Acme Group",
			CompanyDetails: companyapimodels.CompanyDetails{
				Industry:      "Engineering",
				Location:      "Nairobi",
				ContactPerson: "Jane",
				OfficialEmail: "info@acme.com",
			},
		}
		hMsg, err := env.handler.UpdateProfile("u9", data)
		require.NoError(t, err)
		require.Empty(t, hMsg)
		view, err := env.handler.GetProfile("u9")
		require.NoError(t, err)
		require.Equal(t, "Acme Group", view.Name)
	})
	t.Run("no company for user", func(t *testing.T) {
		env := newTestEnv()
		_, err := env.handler.GetProfile("nobody")
		require.ErrorIs(t, err, models.ErrNotFound)
	})
	t.Run("logo replaced", func(t *testing.T) {
		env := newTestEnv()
		rec := newApprovedCompany(env)
		ctx := context.Background()

		hMsg, err := env.handler.UploadLogo(ctx, "u9", "logo.txt", "text/plain", []byte("x"))
		require.NoError(t, err)
		require.NotEmpty(t, hMsg)

		hMsg, err = env.handler.UploadLogo(ctx, "u9", "logo.png", "image/png", []byte("first"))
		require.NoError(t, err)
		require.Empty(t, hMsg)
		first := rec.LogoKey

		hMsg, err = env.handler.UploadLogo(ctx, "u9", "logo.jpg", "image/jpeg", []byte("second"))
		require.NoError(t, err)
		require.Empty(t, hMsg)
		require.Equal(t, []string{first}, env.files.deleted)
		require.Contains(t, env.files.objects, rec.LogoKey)

		data, _, err := env.handler.GetLogo(ctx, rec.ID)
		require.NoError(t, err)
		require.Equal(t, []byte("second"), data)
	})
}

func TestPublicProfile(t *testing.T) {
	env := newTestEnv()
	rec := newApprovedCompany(env)

	item, err := env.handler.PublicProfile(rec.ID, "unknown")
	require.NoError(t, err)
	require.Equal(t, companyapimodels.AttachmentsTab, item.Tab)
	require.Len(t, item.Attachments, 1)
	require.Len(t, item.Jobs, 1)
	require.Len(t, item.Reviews, publicReviewLimit)
	require.NotNil(t, item.AverageRating)
	require.Equal(t, 4.5, *item.AverageRating)

	item, err = env.handler.PublicProfile(rec.ID, companyapimodels.JobsTab)
	require.NoError(t, err)
	require.Equal(t, companyapimodels.JobsTab, item.Tab)

	_, err = env.handler.PublicProfile("missing", "")
	require.ErrorIs(t, err, models.ErrNotFound)
}

func TestDashboard(t *testing.T) {
	t.Run("approved company sees everything it owns", func(t *testing.T) {
		env := newTestEnv()
		newApprovedCompany(env)
		item, hMsg, err := env.handler.Dashboard("u9")
		require.NoError(t, err)
		require.Empty(t, hMsg)
		require.Len(t, item.Vacancies, 2)
		require.Len(t, item.Jobs, 2)
	})
	t.Run("unapproved company is blocked", func(t *testing.T) {
		env := newTestEnv()
		rec := newApprovedCompany(env)
		rec.AdminApproved = false
		_, hMsg, err := env.handler.Dashboard("u9")
		require.NoError(t, err)
		require.Equal(t, models.CannotPostMessage, hMsg)
	})
}

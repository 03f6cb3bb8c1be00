package applicationhandler

import (
	applicationstore "attachment-hub-backend/lib/application/store"
	filestorage "attachment-hub-backend/lib/file-storage"
	"attachment-hub-backend/models"
	applicationapimodels "attachment-hub-backend/models/api/application"
	jobapimodels "attachment-hub-backend/models/api/job"
	dbmodels "attachment-hub-backend/models/db"
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type fakeApplicationStore struct {
	recs     map[string]*dbmodels.JobApplication
	sections map[string]applicationstore.Sections
	failSave bool
}

func newFakeApplicationStore() *fakeApplicationStore {
	return &fakeApplicationStore{
		recs:     map[string]*dbmodels.JobApplication{},
		sections: map[string]applicationstore.Sections{},
	}
}

func (f *fakeApplicationStore) Create(rec dbmodels.JobApplication) (string, error) {
	for _, existing := range f.recs {
		if existing.JobID == rec.JobID && existing.StudentID == rec.StudentID {
			return "", errors.New(`duplicate key value violates unique constraint "idx_application_job_student" (SQLSTATE 23505)`)
		}
	}
	rec.ID = fmt.Sprintf("a%d", len(f.recs)+1)
	f.recs[rec.ID] = &rec
	return rec.ID, nil
}

func (f *fakeApplicationStore) GetByID(id string) (*dbmodels.JobApplication, error) {
	rec, ok := f.recs[id]
	if !ok {
		return nil, nil
	}
	result := *rec
	return &result, nil
}

func (f *fakeApplicationStore) GetByJobAndStudent(jobID, studentID string) (*dbmodels.JobApplication, error) {
	for _, rec := range f.recs {
		if rec.JobID == jobID && rec.StudentID == studentID {
			result := *rec
			return &result, nil
		}
	}
	return nil, nil
}

// staleReadStore misses rows written by a concurrent request.
type staleReadStore struct {
	*fakeApplicationStore
}

func (f staleReadStore) GetByJobAndStudent(jobID, studentID string) (*dbmodels.JobApplication, error) {
	return nil, nil
}

func (f *fakeApplicationStore) Exist(jobID, studentID string) (bool, error) {
	rec, _ := f.GetByJobAndStudent(jobID, studentID)
	return rec != nil, nil
}

func (f *fakeApplicationStore) Update(id string, updMap map[string]interface{}) error {
	rec := f.recs[id]
	if v, ok := updMap["status"]; ok {
		rec.Status = v.(models.ApplicationStatus)
	}
	if v, ok := updMap["certify_truth"]; ok {
		rec.CertifyTruth = v.(bool)
	}
	if v, ok := updMap["agree_at_will"]; ok {
		rec.AgreeAtWill = v.(bool)
	}
	if v, ok := updMap["submitted_at"]; ok {
		submittedAt := v.(time.Time)
		rec.SubmittedAt = &submittedAt
	}
	return nil
}

func (f *fakeApplicationStore) SaveSections(applicationID string, sections applicationstore.Sections) error {
	if f.failSave {
		return errors.New("disk full")
	}
	f.sections[applicationID] = sections
	return nil
}

func (f *fakeApplicationStore) ListByStudent(studentID string) ([]dbmodels.JobApplication, error) {
	return nil, nil
}

func (f *fakeApplicationStore) ListApplicantsCount(jobID string, filter applicationapimodels.ApplicantFilter) (int64, error) {
	return int64(len(f.recs)), nil
}

func (f *fakeApplicationStore) ListApplicants(jobID string, filter applicationapimodels.ApplicantFilter) ([]dbmodels.ApplicationExt, error) {
	list := []dbmodels.ApplicationExt{}
	for _, rec := range f.recs {
		if rec.JobID == jobID {
			list = append(list, dbmodels.ApplicationExt{JobApplication: *rec, Username: "student"})
		}
	}
	return list, nil
}

type fakeJobStore struct {
	jobs map[string]dbmodels.JobPost
}

func (f fakeJobStore) Create(rec dbmodels.JobPost) (string, error) { return rec.ID, nil }

func (f fakeJobStore) GetByID(id string) (*dbmodels.JobPost, error) {
	rec, ok := f.jobs[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (f fakeJobStore) Update(id string, updMap map[string]interface{}) error { return nil }

func (f fakeJobStore) ListCount(filter jobapimodels.JobFilter) (int64, error) { return 0, nil }

func (f fakeJobStore) List(filter jobapimodels.JobFilter) ([]dbmodels.JobPost, error) {
	return nil, nil
}

func (f fakeJobStore) ListByCompany(companyID string, onlyActive bool) ([]dbmodels.JobPost, error) {
	return nil, nil
}

func (f fakeJobStore) ListActive(limit int) ([]dbmodels.JobPost, error) { return nil, nil }

type fakeCompanyStore struct {
	companies []dbmodels.CompanyProfile
}

func (f fakeCompanyStore) Create(rec dbmodels.CompanyProfile) (string, error) { return rec.ID, nil }

func (f fakeCompanyStore) GetByID(id string) (*dbmodels.CompanyProfile, error) { return nil, nil }

func (f fakeCompanyStore) GetByUserID(userID string) (*dbmodels.CompanyProfile, error) {
	for _, rec := range f.companies {
		if rec.UserID == userID {
			return &rec, nil
		}
	}
	return nil, nil
}

func (f fakeCompanyStore) ExistByRegistrationNumber(number string) (bool, error) { return false, nil }

func (f fakeCompanyStore) Update(id string, updMap map[string]interface{}) error { return nil }

func (f fakeCompanyStore) ListPendingApproval() ([]dbmodels.CompanyProfile, error) { return nil, nil }

type fakeStudentStore struct {
	profiles map[string]dbmodels.StudentProfile
}

func (f fakeStudentStore) GetByUserID(userID string) (*dbmodels.StudentProfile, error) {
	rec, ok := f.profiles[userID]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (f fakeStudentStore) GetOrCreate(userID string) (*dbmodels.StudentProfile, error) {
	return f.GetByUserID(userID)
}

func (f fakeStudentStore) Update(userID string, updMap map[string]interface{}) error { return nil }

type fakeFiles struct {
	copied  []string
	deleted []string
}

func (f *fakeFiles) Upload(ctx context.Context, folder filestorage.Folder, fileName, contentType string, data []byte) (string, error) {
	return filestorage.ObjectKey(folder, fileName), nil
}

func (f *fakeFiles) Get(ctx context.Context, key string) ([]byte, string, error) {
	return []byte("%PDF"), "application/pdf", nil
}

func (f *fakeFiles) Copy(ctx context.Context, srcKey string, folder filestorage.Folder) (string, error) {
	f.copied = append(f.copied, srcKey)
	return string(folder) + "/copy.pdf", nil
}

func (f *fakeFiles) Delete(ctx context.Context, key string) error {
	f.deleted = append(f.deleted, key)
	return nil
}

type sentMail struct {
	to, subject, message string
}

type fakeMail struct {
	mu   sync.Mutex
	sent []sentMail
}

func (f *fakeMail) SendEMail(to, subject, message string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sentMail{to: to, subject: subject, message: message})
	return nil
}

func (f *fakeMail) SendAsync(to, subject, message string) {
	_ = f.SendEMail(to, subject, message)
}

type testEnv struct {
	h     impl
	store *fakeApplicationStore
	files *fakeFiles
	mail  *fakeMail
}

func newTestEnv() testEnv {
	company := dbmodels.CompanyProfile{UserID: "owner", Name: "Acme", EmailVerified: true, AdminApproved: true}
	company.ID = "c1"
	other := dbmodels.CompanyProfile{UserID: "rival", Name: "Rival"}
	other.ID = "c2"
	pending := dbmodels.CompanyProfile{UserID: "pending", Name: "Pending", EmailVerified: true}
	pending.ID = "c3"
	job := func(id string, easy, standard, active bool) dbmodels.JobPost {
		rec := dbmodels.JobPost{CompanyID: "c1", Company: &company, Title: "Data Intern", EasyApply: easy, StandardApply: standard, IsActive: active}
		rec.ID = id
		return rec
	}
	store := newFakeApplicationStore()
	files := &fakeFiles{}
	mail := &fakeMail{}
	h := impl{
		store: store,
		jobStore: fakeJobStore{jobs: map[string]dbmodels.JobPost{
			"7":        job("7", true, true, true),
			"easyonly": job("easyonly", true, false, true),
			"closed":   job("closed", true, true, false),
			"pending":  {BaseModel: dbmodels.BaseModel{ID: "pending"}, CompanyID: "c3", Company: &pending, Title: "Field Intern", EasyApply: true, IsActive: true},
		}},
		companyStore: fakeCompanyStore{companies: []dbmodels.CompanyProfile{company, other, pending}},
		studentStore: fakeStudentStore{profiles: map[string]dbmodels.StudentProfile{
			"s1": {UserID: "s1", DefaultCoverLetter: "I love data.", ResumeKey: "resumes/cv.pdf"},
		}},
		files: files,
		mail:  mail,
		withTx: func(fn func(store applicationstore.Provider) error) error {
			return fn(store)
		},
		now: time.Now,
	}
	return testEnv{h: h, store: store, files: files, mail: mail}
}

func TestEasyApply(t *testing.T) {
	ctx := context.Background()

	t.Run("second attempt is already applied", func(t *testing.T) {
		env := newTestEnv()
		first, hMsg, err := env.h.EasyApply(ctx, "s1", "7", applicationapimodels.EasyApply{CoverLetter: "Hire me"})
		require.NoError(t, err)
		require.Empty(t, hMsg)
		require.False(t, first.AlreadyApplied)

		second, hMsg, err := env.h.EasyApply(ctx, "s1", "7", applicationapimodels.EasyApply{CoverLetter: "Hire me again"})
		require.NoError(t, err)
		require.Empty(t, hMsg)
		require.True(t, second.AlreadyApplied)
		require.Equal(t, first.ApplicationID, second.ApplicationID)
		require.Len(t, env.store.recs, 1)
		require.Equal(t, "Hire me", env.store.recs[first.ApplicationID].CoverLetter)
	})

	t.Run("concurrent duplicate insert is already applied", func(t *testing.T) {
		env := newTestEnv()
		_, _, err := env.h.EasyApply(ctx, "s1", "7", applicationapimodels.EasyApply{})
		require.NoError(t, err)
		require.Empty(t, env.files.deleted)

		env.h.store = staleReadStore{env.store}
		result, hMsg, err := env.h.EasyApply(ctx, "s1", "7", applicationapimodels.EasyApply{})
		require.NoError(t, err)
		require.Empty(t, hMsg)
		require.True(t, result.AlreadyApplied)
		require.Len(t, env.store.recs, 1)
		require.Equal(t, []string{"application-resumes/copy.pdf"}, env.files.deleted)
	})

	t.Run("blank cover letter is filled from profile", func(t *testing.T) {
		env := newTestEnv()
		result, _, err := env.h.EasyApply(ctx, "s1", "7", applicationapimodels.EasyApply{})
		require.NoError(t, err)
		rec := env.store.recs[result.ApplicationID]
		require.Equal(t, "I love data.", rec.CoverLetter)
		require.Equal(t, "application-resumes/copy.pdf", rec.ResumeKey)
		require.Equal(t, []string{"resumes/cv.pdf"}, env.files.copied)
		require.Equal(t, models.ApplicationApplied, rec.Status)
		require.NotNil(t, rec.SubmittedAt)
	})

	t.Run("explicit cover letter wins", func(t *testing.T) {
		env := newTestEnv()
		result, _, err := env.h.EasyApply(ctx, "s1", "7", applicationapimodels.EasyApply{CoverLetter: "Mine"})
		require.NoError(t, err)
		require.Equal(t, "Mine", env.store.recs[result.ApplicationID].CoverLetter)
	})

	t.Run("profile cover can be declined", func(t *testing.T) {
		env := newTestEnv()
		no := false
		result, _, err := env.h.EasyApply(ctx, "s1", "7", applicationapimodels.EasyApply{UseProfileCover: &no})
		require.NoError(t, err)
		require.Empty(t, env.store.recs[result.ApplicationID].CoverLetter)
	})

	t.Run("inactive job is not found", func(t *testing.T) {
		env := newTestEnv()
		_, _, err := env.h.EasyApply(ctx, "s1", "closed", applicationapimodels.EasyApply{})
		require.ErrorIs(t, err, models.ErrNotFound)
		_, _, err = env.h.EasyApply(ctx, "s1", "missing", applicationapimodels.EasyApply{})
		require.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("prefill", func(t *testing.T) {
		env := newTestEnv()
		form, err := env.h.GetEasyApply("s1", "7")
		require.NoError(t, err)
		require.Equal(t, "I love data.", form.CoverLetter)
		require.True(t, form.UseProfileCover)
		require.False(t, form.AlreadyApplied)
	})
}

func validSubmission() applicationapimodels.StandardApply {
	return applicationapimodels.StandardApply{
		Personal: applicationapimodels.PersonalSection{
			FullLegalName: "Jane Wanjiru",
			Phone:         "+254700000000",
			Email:         "jane@example.com",
			Address:       "Nairobi",
		},
		Educations:   []applicationapimodels.EducationSection{{Institution: "University of Nairobi"}},
		References:   []applicationapimodels.ReferenceSection{{Name: "Dr. Otieno"}},
		CertifyTruth: true,
		AgreeAtWill:  true,
	}
}

func TestStandardApply(t *testing.T) {
	ctx := context.Background()

	t.Run("disabled mode is not found", func(t *testing.T) {
		env := newTestEnv()
		_, err := env.h.GetStandardApply(ctx, "s1", "easyonly")
		require.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("repeated form loads reuse one parent", func(t *testing.T) {
		env := newTestEnv()
		first, err := env.h.GetStandardApply(ctx, "s1", "7")
		require.NoError(t, err)
		second, err := env.h.GetStandardApply(ctx, "s1", "7")
		require.NoError(t, err)
		require.Equal(t, first.ApplicationID, second.ApplicationID)
		require.Len(t, env.store.recs, 1)
		require.False(t, second.Submitted)
	})

	t.Run("invalid education persists nothing", func(t *testing.T) {
		env := newTestEnv()
		data := validSubmission()
		data.Educations = append(data.Educations, applicationapimodels.EducationSection{FieldOfStudy: "Maths"})
		_, hMsg, err := env.h.SubmitStandardApply(ctx, "s1", "7", data)
		require.NoError(t, err)
		require.Contains(t, hMsg, "educations[1].institution")
		require.Empty(t, env.store.recs)
		require.Empty(t, env.store.sections)
	})

	t.Run("valid submission saves every section", func(t *testing.T) {
		env := newTestEnv()
		id, hMsg, err := env.h.SubmitStandardApply(ctx, "s1", "7", validSubmission())
		require.NoError(t, err)
		require.Empty(t, hMsg)
		sections := env.store.sections[id]
		require.Equal(t, id, sections.Personal.ApplicationID)
		require.Len(t, sections.Educations, 1)
		require.Equal(t, id, sections.Educations[0].ApplicationID)
		require.Equal(t, id, sections.EEO.ApplicationID)
		rec := env.store.recs[id]
		require.True(t, rec.CertifyTruth)
		require.True(t, rec.AgreeAtWill)
		require.NotNil(t, rec.SubmittedAt)
	})

	t.Run("failed save leaves parent untouched", func(t *testing.T) {
		env := newTestEnv()
		env.store.failSave = true
		_, _, err := env.h.SubmitStandardApply(ctx, "s1", "7", validSubmission())
		require.Error(t, err)
		for _, rec := range env.store.recs {
			require.Nil(t, rec.SubmittedAt)
			require.False(t, rec.CertifyTruth)
		}
	})
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	result, _, err := env.h.EasyApply(ctx, "s1", "7", applicationapimodels.EasyApply{CoverLetter: "Hi"})
	require.NoError(t, err)
	rec := env.store.recs[result.ApplicationID]
	job, _ := env.h.jobStore.GetByID("7")
	rec.Job = job
	rec.Student = &dbmodels.User{Username: "jane", Email: "jane@example.com"}

	t.Run("rival company is forbidden", func(t *testing.T) {
		_, err := env.h.UpdateStatus("rival", models.CompanyRole, rec.ID, applicationapimodels.StatusUpdate{Status: models.ApplicationInterview})
		require.ErrorIs(t, err, models.ErrForbidden)
	})

	t.Run("unknown status", func(t *testing.T) {
		hMsg, err := env.h.UpdateStatus("owner", models.CompanyRole, rec.ID, applicationapimodels.StatusUpdate{Status: "LOST"})
		require.NoError(t, err)
		require.NotEmpty(t, hMsg)
	})

	t.Run("owner changes status and student is notified", func(t *testing.T) {
		hMsg, err := env.h.UpdateStatus("owner", models.CompanyRole, rec.ID, applicationapimodels.StatusUpdate{Status: models.ApplicationInterview})
		require.NoError(t, err)
		require.Empty(t, hMsg)
		require.Equal(t, models.ApplicationInterview, env.store.recs[rec.ID].Status)
		require.Len(t, env.mail.sent, 1)
		require.Equal(t, "jane@example.com", env.mail.sent[0].to)
		require.Equal(t, "Update on your application for Data Intern", env.mail.sent[0].subject)
		require.True(t, strings.Contains(env.mail.sent[0].message, "Interviewing"))
	})

	t.Run("applicant sees own application and resume", func(t *testing.T) {
		item, err := env.h.GetByID("s1", models.StudentRole, rec.ID)
		require.NoError(t, err)
		require.Equal(t, "Acme", item.CompanyName)
		data, contentType, err := env.h.GetResume(ctx, "s1", models.StudentRole, rec.ID)
		require.NoError(t, err)
		require.Equal(t, "application/pdf", contentType)
		require.NotEmpty(t, data)
	})

	t.Run("other student is forbidden", func(t *testing.T) {
		_, err := env.h.GetByID("s2", models.StudentRole, rec.ID)
		require.ErrorIs(t, err, models.ErrForbidden)
	})

	t.Run("company without posting privilege is forbidden", func(t *testing.T) {
		_, _, err := env.h.ListApplicants("pending", models.CompanyRole, "pending", applicationapimodels.ApplicantFilter{})
		require.ErrorIs(t, err, models.ErrForbidden)
	})

	t.Run("applicants list for owner", func(t *testing.T) {
		list, count, err := env.h.ListApplicants("owner", models.CompanyRole, "7", applicationapimodels.ApplicantFilter{})
		require.NoError(t, err)
		require.EqualValues(t, 1, count)
		require.Len(t, list, 1)
		require.Equal(t, "Data Intern", list[0].JobTitle)
	})
}

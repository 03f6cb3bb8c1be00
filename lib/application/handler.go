package applicationhandler

import (
	"attachment-hub-backend/db"
	applicationstore "attachment-hub-backend/lib/application/store"
	companystore "attachment-hub-backend/lib/company/store"
	filestorage "attachment-hub-backend/lib/file-storage"
	jobstore "attachment-hub-backend/lib/job/store"
	"attachment-hub-backend/lib/smtp"
	studentstore "attachment-hub-backend/lib/student/store"
	"attachment-hub-backend/lib/utils/lock"
	"attachment-hub-backend/models"
	applicationapimodels "attachment-hub-backend/models/api/application"
	jobapimodels "attachment-hub-backend/models/api/job"
	dbmodels "attachment-hub-backend/models/db"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	GetEasyApply(studentID, jobID string) (form applicationapimodels.EasyApplyForm, err error)
	EasyApply(ctx context.Context, studentID, jobID string, data applicationapimodels.EasyApply) (result applicationapimodels.EasyApplyResult, hMsg string, err error)
	GetStandardApply(ctx context.Context, studentID, jobID string) (form applicationapimodels.StandardApplyForm, err error)
	SubmitStandardApply(ctx context.Context, studentID, jobID string, data applicationapimodels.StandardApply) (id, hMsg string, err error)
	ListByStudent(studentID string) (list []applicationapimodels.ApplicationView, err error)
	ListApplicants(userID string, role models.UserRole, jobID string, filter applicationapimodels.ApplicantFilter) (list []applicationapimodels.ApplicationView, rowCount int64, err error)
	GetByID(userID string, role models.UserRole, id string) (item applicationapimodels.ApplicationDetail, err error)
	GetResume(ctx context.Context, userID string, role models.UserRole, id string) (data []byte, contentType string, err error)
	UpdateStatus(userID string, role models.UserRole, id string, data applicationapimodels.StatusUpdate) (hMsg string, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:        applicationstore.NewInstance(db.DB),
		jobStore:     jobstore.NewInstance(db.DB),
		companyStore: companystore.NewInstance(db.DB),
		studentStore: studentstore.NewInstance(db.DB),
		files:        filestorage.Instance,
		mail:         smtp.Instance,
		withTx: func(fn func(store applicationstore.Provider) error) error {
			return db.DB.Transaction(func(tx *gorm.DB) error {
				return fn(applicationstore.NewInstance(tx))
			})
		},
		now: time.Now,
	}
}

type impl struct {
	store        applicationstore.Provider
	jobStore     jobstore.Provider
	companyStore companystore.Provider
	studentStore studentstore.Provider
	files        filestorage.Provider
	mail         smtp.Provider
	withTx       func(fn func(store applicationstore.Provider) error) error
	now          func() time.Time
}

const (
	alreadyAppliedMessage = "You have already applied for this job."
	appliedMessage        = "Your application has been submitted."
	parentLockWait        = 5 * time.Second
)

func (i impl) GetEasyApply(studentID, jobID string) (applicationapimodels.EasyApplyForm, error) {
	job, err := i.getApplicableJob(jobID, func(job dbmodels.JobPost) bool { return job.EasyApply })
	if err != nil {
		return applicationapimodels.EasyApplyForm{}, err
	}
	result := applicationapimodels.EasyApplyForm{
		Job:             jobapimodels.JobConvert(*job),
		UseProfileCover: true,
	}
	result.AlreadyApplied, err = i.store.Exist(jobID, studentID)
	if err != nil {
		return applicationapimodels.EasyApplyForm{}, err
	}
	profile, err := i.studentStore.GetByUserID(studentID)
	if err != nil {
		return applicationapimodels.EasyApplyForm{}, err
	}
	if profile != nil {
		result.CoverLetter = profile.DefaultCoverLetter
	}
	return result, nil
}

func (i impl) EasyApply(ctx context.Context, studentID, jobID string, data applicationapimodels.EasyApply) (result applicationapimodels.EasyApplyResult, hMsg string, err error) {
	logger := i.getLogger(jobID, studentID)
	job, err := i.getApplicableJob(jobID, func(job dbmodels.JobPost) bool { return job.EasyApply })
	if err != nil {
		return applicationapimodels.EasyApplyResult{}, "", err
	}
	existing, err := i.store.GetByJobAndStudent(job.ID, studentID)
	if err != nil {
		return applicationapimodels.EasyApplyResult{}, "", err
	}
	if existing != nil {
		return alreadyApplied(existing.ID), "", nil
	}
	rec := dbmodels.JobApplication{
		JobID:       job.ID,
		StudentID:   studentID,
		CoverLetter: strings.TrimSpace(data.CoverLetter),
		Status:      models.ApplicationApplied,
	}
	submittedAt := i.now()
	rec.SubmittedAt = &submittedAt
	i.autofill(ctx, logger, studentID, data.GetUseProfileCover(), &rec)

	id, err := i.store.Create(rec)
	if err != nil {
		if isDuplicate(err) {
			// concurrent submission won the race
			if rec.ResumeKey != "" {
				i.dropSnapshot(ctx, logger, rec.ResumeKey)
			}
			return alreadyApplied(""), "", nil
		}
		return applicationapimodels.EasyApplyResult{}, "", err
	}
	logger.WithField("application_id", id).Info("easy application submitted")
	return applicationapimodels.EasyApplyResult{ApplicationID: id, Message: appliedMessage}, "", nil
}

// autofill copies profile data into fields the submission left blank.
func (i impl) autofill(ctx context.Context, logger *log.Entry, studentID string, useProfileCover bool, rec *dbmodels.JobApplication) {
	profile, err := i.studentStore.GetByUserID(studentID)
	if err != nil {
		logger.WithError(err).Warn("student profile load failed, autofill skipped")
		return
	}
	if profile == nil {
		return
	}
	if rec.CoverLetter == "" && useProfileCover {
		rec.CoverLetter = profile.DefaultCoverLetter
	}
	if rec.ResumeKey == "" && profile.ResumeKey != "" {
		key, err := i.files.Copy(ctx, profile.ResumeKey, filestorage.ResumeSnapshotFolder)
		if err != nil {
			logger.WithError(err).Warn("resume snapshot failed")
			return
		}
		rec.ResumeKey = key
	}
}

func (i impl) dropSnapshot(ctx context.Context, logger *log.Entry, key string) {
	if err := i.files.Delete(ctx, key); err != nil {
		logger.WithError(err).Warn("orphan resume snapshot delete failed")
	}
}

func (i impl) GetStandardApply(ctx context.Context, studentID, jobID string) (applicationapimodels.StandardApplyForm, error) {
	job, err := i.getApplicableJob(jobID, func(job dbmodels.JobPost) bool { return job.StandardApply })
	if err != nil {
		return applicationapimodels.StandardApplyForm{}, err
	}
	rec, err := i.getOrCreateParent(ctx, job.ID, studentID)
	if err != nil {
		return applicationapimodels.StandardApplyForm{}, err
	}
	return applicationapimodels.StandardApplyForm{
		ApplicationID: rec.ID,
		Job:           jobapimodels.JobConvert(*job),
		Submitted:     rec.SubmittedAt != nil,
		StandardApply: applicationapimodels.StandardApplyConvert(*rec),
	}, nil
}

func (i impl) SubmitStandardApply(ctx context.Context, studentID, jobID string, data applicationapimodels.StandardApply) (id, hMsg string, err error) {
	logger := i.getLogger(jobID, studentID)
	// every section is checked before anything is written
	if err = data.Validate(); err != nil {
		return "", err.Error(), nil
	}
	job, err := i.getApplicableJob(jobID, func(job dbmodels.JobPost) bool { return job.StandardApply })
	if err != nil {
		return "", "", err
	}
	parent, err := i.getOrCreateParent(ctx, job.ID, studentID)
	if err != nil {
		return "", "", err
	}
	sections := toSections(parent.ID, data)
	submittedAt := i.now()
	err = i.withTx(func(store applicationstore.Provider) error {
		if err := store.SaveSections(parent.ID, sections); err != nil {
			return err
		}
		updMap := map[string]interface{}{
			"certify_truth": data.CertifyTruth,
			"agree_at_will": data.AgreeAtWill,
			"submitted_at":  submittedAt,
		}
		return store.Update(parent.ID, updMap)
	})
	if err != nil {
		return "", "", errors.Wrap(err, "standard application save failed")
	}
	logger.WithField("application_id", parent.ID).Info("standard application submitted")
	return parent.ID, "", nil
}

// getOrCreateParent is idempotent: repeated calls return the same application.
func (i impl) getOrCreateParent(ctx context.Context, jobID, studentID string) (*dbmodels.JobApplication, error) {
	var rec *dbmodels.JobApplication
	lockKey := fmt.Sprintf("application:%v:%v", jobID, studentID)
	ok, err := lock.WithDelay(ctx, lockKey, parentLockWait, func() error {
		var err error
		rec, err = i.store.GetByJobAndStudent(jobID, studentID)
		if err != nil || rec != nil {
			return err
		}
		_, err = i.store.Create(dbmodels.JobApplication{
			JobID:     jobID,
			StudentID: studentID,
			Status:    models.ApplicationApplied,
		})
		if err != nil && !isDuplicate(err) {
			return err
		}
		rec, err = i.store.GetByJobAndStudent(jobID, studentID)
		return err
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.New("application is busy, try again")
	}
	if rec == nil {
		return nil, errors.New("application not found after create")
	}
	return rec, nil
}

func (i impl) ListByStudent(studentID string) ([]applicationapimodels.ApplicationView, error) {
	list, err := i.store.ListByStudent(studentID)
	if err != nil {
		return nil, err
	}
	result := make([]applicationapimodels.ApplicationView, 0, len(list))
	for _, rec := range list {
		result = append(result, applicationapimodels.ApplicationConvert(rec))
	}
	return result, nil
}

func (i impl) ListApplicants(userID string, role models.UserRole, jobID string, filter applicationapimodels.ApplicantFilter) (list []applicationapimodels.ApplicationView, rowCount int64, err error) {
	job, err := i.jobStore.GetByID(jobID)
	if err != nil {
		return nil, 0, err
	}
	if job == nil {
		return nil, 0, models.ErrNotFound
	}
	if err = i.checkJobOwner(userID, role, *job); err != nil {
		return nil, 0, err
	}
	rowCount, err = i.store.ListApplicantsCount(jobID, filter)
	if err != nil {
		return nil, 0, err
	}
	page, limit := filter.GetPage()
	if int64((page-1)*limit) > rowCount {
		return []applicationapimodels.ApplicationView{}, rowCount, nil
	}
	recList, err := i.store.ListApplicants(jobID, filter)
	if err != nil {
		return nil, 0, err
	}
	list = make([]applicationapimodels.ApplicationView, 0, len(recList))
	for _, rec := range recList {
		item := applicationapimodels.ApplicationExtConvert(rec)
		item.JobTitle = job.Title
		item.CompanyID = job.CompanyID
		list = append(list, item)
	}
	return list, rowCount, nil
}

func (i impl) GetByID(userID string, role models.UserRole, id string) (applicationapimodels.ApplicationDetail, error) {
	rec, err := i.getVisible(userID, role, id)
	if err != nil {
		return applicationapimodels.ApplicationDetail{}, err
	}
	return applicationapimodels.ApplicationDetail{
		ApplicationView: applicationapimodels.ApplicationConvert(*rec),
		Sections:        applicationapimodels.StandardApplyConvert(*rec),
	}, nil
}

func (i impl) GetResume(ctx context.Context, userID string, role models.UserRole, id string) (data []byte, contentType string, err error) {
	rec, err := i.getVisible(userID, role, id)
	if err != nil {
		return nil, "", err
	}
	if rec.ResumeKey == "" {
		return nil, "", models.ErrNotFound
	}
	return i.files.Get(ctx, rec.ResumeKey)
}

func (i impl) UpdateStatus(userID string, role models.UserRole, id string, data applicationapimodels.StatusUpdate) (hMsg string, err error) {
	if err = data.Validate(); err != nil {
		return err.Error(), nil
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return "", err
	}
	if rec == nil || rec.Job == nil {
		return "", models.ErrNotFound
	}
	if err = i.checkJobOwner(userID, role, *rec.Job); err != nil {
		return "", err
	}
	if rec.Status == data.Status {
		return "", nil
	}
	err = i.store.Update(id, map[string]interface{}{"status": data.Status})
	if err != nil {
		return "", err
	}
	i.getLogger(rec.JobID, rec.StudentID).
		WithField("application_id", id).
		WithField("status", data.Status).
		Info("application status changed")
	i.sendStatusNotice(*rec, data.Status)
	return "", nil
}

func (i impl) sendStatusNotice(rec dbmodels.JobApplication, status models.ApplicationStatus) {
	if i.mail == nil || rec.Student == nil || rec.Student.Email == "" {
		return
	}
	companyName := ""
	if rec.Job.Company != nil {
		companyName = rec.Job.Company.Name
	}
	subject := fmt.Sprintf("Update on your application for %v", rec.Job.Title)
	message := fmt.Sprintf("Hello %v,\n\nThe status of your application for %v at %v is now: %v.\n\nAttachment Hub",
		rec.Student.Username, rec.Job.Title, companyName, status.ToHuman())
	i.mail.SendAsync(rec.Student.Email, subject, message)
}

// getVisible allows the applicant, the owning company and staff.
func (i impl) getVisible(userID string, role models.UserRole, id string) (*dbmodels.JobApplication, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil || rec.Job == nil {
		return nil, models.ErrNotFound
	}
	if rec.StudentID == userID {
		return rec, nil
	}
	if err = i.checkJobOwner(userID, role, *rec.Job); err != nil {
		return nil, err
	}
	return rec, nil
}

func (i impl) checkJobOwner(userID string, role models.UserRole, job dbmodels.JobPost) error {
	if role.IsStaff() {
		return nil
	}
	if role != models.CompanyRole {
		return models.ErrForbidden
	}
	company, err := i.companyStore.GetByUserID(userID)
	if err != nil {
		return err
	}
	if company == nil || company.ID != job.CompanyID || !company.CanPost() {
		return models.ErrForbidden
	}
	return nil
}

// getApplicableJob returns an active job whose apply mode is enabled, else ErrNotFound.
func (i impl) getApplicableJob(jobID string, modeEnabled func(job dbmodels.JobPost) bool) (*dbmodels.JobPost, error) {
	job, err := i.jobStore.GetByID(jobID)
	if err != nil {
		return nil, err
	}
	if job == nil || !job.IsActive || !modeEnabled(*job) {
		return nil, models.ErrNotFound
	}
	return job, nil
}

func toSections(applicationID string, data applicationapimodels.StandardApply) applicationstore.Sections {
	result := applicationstore.Sections{
		Personal: data.Personal.ToDb(applicationID),
		Criminal: data.Criminal.ToDb(applicationID),
		Referral: data.Referral.ToDb(applicationID),
		EEO:      data.EEO.ToDb(applicationID),
	}
	for _, s := range data.Educations {
		result.Educations = append(result.Educations, s.ToDb(applicationID))
	}
	for _, s := range data.Certifications {
		result.Certifications = append(result.Certifications, s.ToDb(applicationID))
	}
	for _, s := range data.Employments {
		result.Employments = append(result.Employments, s.ToDb(applicationID))
	}
	for _, s := range data.References {
		result.References = append(result.References, s.ToDb(applicationID))
	}
	for _, s := range data.Questions {
		result.Questions = append(result.Questions, s.ToDb(applicationID))
	}
	return result
}

func alreadyApplied(id string) applicationapimodels.EasyApplyResult {
	return applicationapimodels.EasyApplyResult{
		ApplicationID:  id,
		AlreadyApplied: true,
		Message:        alreadyAppliedMessage,
	}
}

func isDuplicate(err error) bool {
	return err != nil && strings.Contains(err.Error(), "(SQLSTATE 23505)")
}

func (i impl) getLogger(jobID, studentID string) *log.Entry {
	return log.
		WithField("job_id", jobID).
		WithField("student_id", studentID)
}

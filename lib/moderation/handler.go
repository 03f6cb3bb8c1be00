package moderationhandler

import (
	"attachment-hub-backend/db"
	companystore "attachment-hub-backend/lib/company/store"
	jobstore "attachment-hub-backend/lib/job/store"
	reviewstore "attachment-hub-backend/lib/review/store"
	"attachment-hub-backend/models"
	companyapimodels "attachment-hub-backend/models/api/company"
	jobapimodels "attachment-hub-backend/models/api/job"
	moderationapimodels "attachment-hub-backend/models/api/moderation"
	reviewapimodels "attachment-hub-backend/models/api/review"

	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Dashboard() (result moderationapimodels.Dashboard, err error)
	// Moderate applies one action; unknown action/object pairs and missing objects are no-ops.
	Moderate(userID string, data moderationapimodels.ModerationRequest) (result moderationapimodels.ModerationResult, hMsg string, err error)
}

var Instance Provider

const dashboardLimit = 20

func NewHandler() {
	Instance = impl{
		companyStore: companystore.NewInstance(db.DB),
		reviewStore:  reviewstore.NewInstance(db.DB),
		jobStore:     jobstore.NewInstance(db.DB),
	}
}

type impl struct {
	companyStore companystore.Provider
	reviewStore  reviewstore.Provider
	jobStore     jobstore.Provider
}

func (i impl) Dashboard() (moderationapimodels.Dashboard, error) {
	result := moderationapimodels.Dashboard{
		PendingCompanies: []companyapimodels.CompanyView{},
		PendingReviews:   []reviewapimodels.ReviewView{},
		ActiveJobs:       []jobapimodels.JobView{},
	}
	companies, err := i.companyStore.ListPendingApproval()
	if err != nil {
		return moderationapimodels.Dashboard{}, err
	}
	for _, rec := range companies {
		result.PendingCompanies = append(result.PendingCompanies, companyapimodels.CompanyConvert(rec))
	}
	reviews, err := i.reviewStore.ListPending(dashboardLimit)
	if err != nil {
		return moderationapimodels.Dashboard{}, err
	}
	for _, rec := range reviews {
		result.PendingReviews = append(result.PendingReviews, reviewapimodels.ReviewConvert(rec))
	}
	jobs, err := i.jobStore.ListActive(dashboardLimit)
	if err != nil {
		return moderationapimodels.Dashboard{}, err
	}
	for _, rec := range jobs {
		result.ActiveJobs = append(result.ActiveJobs, jobapimodels.JobConvert(rec))
	}
	return result, nil
}

func (i impl) Moderate(userID string, data moderationapimodels.ModerationRequest) (result moderationapimodels.ModerationResult, hMsg string, err error) {
	if err = data.Validate(); err != nil {
		return moderationapimodels.ModerationResult{}, err.Error(), nil
	}
	logger := log.
		WithField("user_id", userID).
		WithField("action", data.Action).
		WithField("object_type", data.ObjectType).
		WithField("object_id", data.ObjectID)

	var message string
	switch data.ObjectType {
	case models.CompanyObject:
		message, err = i.moderateCompany(data)
	case models.ReviewObject:
		message, err = i.moderateReview(data)
	case models.JobObject:
		message, err = i.moderateJob(data)
	}
	if err != nil {
		return moderationapimodels.ModerationResult{}, "", err
	}
	if message == "" {
		logger.Info("moderation request ignored")
		return moderationapimodels.ModerationResult{Applied: false}, "", nil
	}
	logger.Info("moderation applied")
	return moderationapimodels.ModerationResult{Applied: true, Message: message}, "", nil
}

func (i impl) moderateCompany(data moderationapimodels.ModerationRequest) (string, error) {
	rec, err := i.companyStore.GetByID(data.ObjectID)
	if err != nil || rec == nil {
		return "", err
	}
	var updMap map[string]interface{}
	switch data.Action {
	case models.ModerationApprove:
		updMap = map[string]interface{}{"admin_approved": true}
	case models.ModerationVerify:
		updMap = map[string]interface{}{"is_verified_company": true}
	default:
		return "", nil
	}
	if err = i.companyStore.Update(rec.ID, updMap); err != nil {
		return "", err
	}
	return "Company updated.", nil
}

func (i impl) moderateReview(data moderationapimodels.ModerationRequest) (string, error) {
	rec, err := i.reviewStore.GetByID(data.ObjectID)
	if err != nil || rec == nil {
		return "", err
	}
	switch data.Action {
	case models.ModerationApprove:
		err = i.reviewStore.Approve(rec.ID)
	case models.ModerationReject:
		err = i.reviewStore.Delete(rec.ID)
	default:
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return "Review moderated.", nil
}

func (i impl) moderateJob(data moderationapimodels.ModerationRequest) (string, error) {
	if data.Action != models.ModerationDeactivate {
		return "", nil
	}
	rec, err := i.jobStore.GetByID(data.ObjectID)
	if err != nil || rec == nil {
		return "", err
	}
	if err = i.jobStore.Update(rec.ID, map[string]interface{}{"is_active": false}); err != nil {
		return "", err
	}
	return "Job deactivated.", nil
}

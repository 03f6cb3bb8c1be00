package moderationapimodels

import (
	"attachment-hub-backend/models"
	apimodels "attachment-hub-backend/models/api"
	companyapimodels "attachment-hub-backend/models/api/company"
	jobapimodels "attachment-hub-backend/models/api/job"
	reviewapimodels "attachment-hub-backend/models/api/review"
)

type ModerationRequest struct {
	Action     models.ModerationAction `json:"action" validate:"required"`
	ObjectType models.ModerationObject `json:"object_type" validate:"required"`
	ObjectID   string                  `json:"object_id" validate:"required"`
}

// Validate checks presence only. Unknown action/object pairs are accepted and ignored by the dispatcher.
func (r ModerationRequest) Validate() error {
	return apimodels.ValidateStruct(r)
}

type ModerationResult struct {
	Applied bool   `json:"applied"`
	Message string `json:"message,omitempty"`
}

type Dashboard struct {
	PendingCompanies []companyapimodels.CompanyView `json:"pending_companies"`
	PendingReviews   []reviewapimodels.ReviewView   `json:"pending_reviews"`
	ActiveJobs       []jobapimodels.JobView         `json:"active_jobs"`
}

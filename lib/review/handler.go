package reviewhandler

import (
	"attachment-hub-backend/db"
	"attachment-hub-backend/lib/cache"
	companystore "attachment-hub-backend/lib/company/store"
	reviewstore "attachment-hub-backend/lib/review/store"
	reviewapimodels "attachment-hub-backend/models/api/review"
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Submit(ctx context.Context, identity string, data reviewapimodels.ReviewData) (result reviewapimodels.SubmitResult, hMsg string, err error)
	CompanyRating(companyID string) (*float64, error)
	ApprovedReviews(companyID string, limit int) ([]reviewapimodels.ReviewView, error)
	PendingReviews(limit int) ([]reviewapimodels.ReviewView, error)
}

var Instance Provider

func NewHandler(window time.Duration) {
	Instance = impl{
		store:        reviewstore.NewInstance(db.DB),
		companyStore: companystore.NewInstance(db.DB),
		throttle:     cache.Instance,
		window:       window,
	}
}

type impl struct {
	store        reviewstore.Provider
	companyStore companystore.Provider
	throttle     cache.Provider
	window       time.Duration
}

const (
	thanksMessage   = "Thank you! Your review has been submitted and is pending approval."
	throttleMessage = "You have already reviewed this company recently. Please try again later."
)

// IdentityKey keys the review throttle by account when signed in, else by network address.
func IdentityKey(userID, ip string) string {
	if userID != "" {
		return "user:" + userID
	}
	return "ip:" + ip
}

func throttleKey(identity, companyID string) string {
	return fmt.Sprintf("review_rl:%v:company:%v", identity, companyID)
}

func (i impl) Submit(ctx context.Context, identity string, data reviewapimodels.ReviewData) (result reviewapimodels.SubmitResult, hMsg string, err error) {
	logger := i.getLogger(data.CompanyID, identity)
	if err = data.Validate(); err != nil {
		return reviewapimodels.SubmitResult{}, err.Error(), nil
	}
	company, err := i.companyStore.GetByID(data.CompanyID)
	if err != nil {
		return reviewapimodels.SubmitResult{}, "", err
	}
	if company == nil {
		return reviewapimodels.SubmitResult{}, "company not found", nil
	}
	stored, err := i.throttle.SetIfAbsent(ctx, throttleKey(identity, data.CompanyID), []byte("1"), i.window)
	if err != nil {
		return reviewapimodels.SubmitResult{}, "", err
	}
	if !stored {
		return reviewapimodels.SubmitResult{}, throttleMessage, nil
	}
	id, err := i.store.Create(data.ToDb())
	if err != nil {
		// give the identity another attempt when nothing was saved
		if delErr := i.throttle.Delete(ctx, throttleKey(identity, data.CompanyID)); delErr != nil {
			logger.WithError(delErr).Warn("review throttle rollback failed")
		}
		return reviewapimodels.SubmitResult{}, "", err
	}
	logger.WithField("review_id", id).Info("review submitted")
	return reviewapimodels.SubmitResult{ReviewID: id, Message: thanksMessage}, "", nil
}

func (i impl) CompanyRating(companyID string) (*float64, error) {
	ratings, err := i.store.ApprovedRatings(companyID)
	if err != nil {
		return nil, err
	}
	return AverageRating(ratings), nil
}

func (i impl) ApprovedReviews(companyID string, limit int) ([]reviewapimodels.ReviewView, error) {
	list, err := i.store.ListApproved(companyID, limit)
	if err != nil {
		return nil, err
	}
	result := make([]reviewapimodels.ReviewView, 0, len(list))
	for _, rec := range list {
		result = append(result, reviewapimodels.ReviewConvert(rec))
	}
	return result, nil
}

func (i impl) PendingReviews(limit int) ([]reviewapimodels.ReviewView, error) {
	list, err := i.store.ListPending(limit)
	if err != nil {
		return nil, err
	}
	result := make([]reviewapimodels.ReviewView, 0, len(list))
	for _, rec := range list {
		result = append(result, reviewapimodels.ReviewConvert(rec))
	}
	return result, nil
}

func (i impl) getLogger(companyID, identity string) *log.Entry {
	logger := log.WithField("company_id", companyID)
	if identity != "" {
		logger = logger.WithField("identity", identity)
	}
	return logger
}

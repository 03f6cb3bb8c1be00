package vacancyworker

import (
	baseworker "attachment-hub-backend/lib/utils/base-worker"
	"attachment-hub-backend/lib/utils/helpers"
	vacancyhandler "attachment-hub-backend/lib/vacancy"
	"context"
	"time"
)

// StartWorker runs the archive sweep that retires vacancies past their deadline.
func StartWorker(ctx context.Context, interval time.Duration) {
	i := &impl{
		BaseImpl: *baseworker.NewInstance("VacancyArchiveWorker", 15*time.Second, interval),
		vacancy:  vacancyhandler.Instance,
	}
	go i.Run(ctx, i.handle)
}

type impl struct {
	baseworker.BaseImpl
	vacancy vacancyhandler.Provider
}

func (i impl) handle(ctx context.Context) {
	if helpers.IsContextDone(ctx) {
		return
	}
	logger := i.GetLogger()
	count, err := i.vacancy.ArchiveExpired()
	if err != nil {
		logger.WithError(err).Error("expired vacancy archive failed")
		return
	}
	logger.WithField("count", count).Info("expired vacancies archived")
}

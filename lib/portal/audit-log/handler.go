package auditloghandler

import (
	"attachment-hub-backend/db"
	auditlogstore "attachment-hub-backend/lib/portal/audit-log/store"
	"attachment-hub-backend/models"
	apimodels "attachment-hub-backend/models/api"
	portalapimodels "attachment-hub-backend/models/api/portal"
	dbmodels "attachment-hub-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	// Save never fails the calling operation; write errors are only logged.
	Save(username string, action models.LogAction, details string)
	List(pagination apimodels.Pagination) ([]portalapimodels.LogView, int64, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: auditlogstore.NewInstance(db.DB),
	}
}

type impl struct {
	store auditlogstore.Provider
}

func (i impl) Save(username string, action models.LogAction, details string) {
	if _, err := i.store.Create(NewRecord(username, action, details)); err != nil {
		log.
			WithField("username", username).
			WithField("action", action).
			WithError(err).
			Error("audit log write failed")
	}
}

func (i impl) List(pagination apimodels.Pagination) ([]portalapimodels.LogView, int64, error) {
	rowCount, err := i.store.ListCount()
	if err != nil {
		return nil, 0, err
	}

	page, limit := pagination.GetPage()
	offset := (page - 1) * limit
	if int64(offset) > rowCount {
		return []portalapimodels.LogView{}, rowCount, nil
	}

	list, err := i.store.List(pagination)
	if err != nil {
		log.WithError(err).Error("audit log list failed")
		return nil, 0, errors.New("audit log list failed")
	}
	result := make([]portalapimodels.LogView, 0, len(list))
	for _, rec := range list {
		result = append(result, portalapimodels.LogConvert(rec))
	}
	return result, rowCount, nil
}

func NewRecord(username string, action models.LogAction, details string) dbmodels.AuditLog {
	return dbmodels.AuditLog{
		Username: username,
		Action:   action,
		Details:  details,
	}
}

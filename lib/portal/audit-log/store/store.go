package auditlogstore

import (
	apimodels "attachment-hub-backend/models/api"
	dbmodels "attachment-hub-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.AuditLog) (id string, err error)
	ListCount() (count int64, err error)
	List(pagination apimodels.Pagination) (list []dbmodels.AuditLog, err error)
	ListAll() (list []dbmodels.AuditLog, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.AuditLog) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) ListCount() (count int64, err error) {
	err = i.db.
		Model(dbmodels.AuditLog{}).
		Count(&count).
		Error
	if err != nil {
		log.WithError(err).Error("audit log count failed")
		return 0, errors.New("audit log count failed")
	}
	return count, nil
}

func (i impl) List(pagination apimodels.Pagination) (list []dbmodels.AuditLog, err error) {
	list = []dbmodels.AuditLog{}
	tx := i.db.
		Model(dbmodels.AuditLog{})
	page, limit := pagination.GetPage()
	i.setPage(tx, page, limit)
	err = tx.
		Order("timestamp desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListAll() (list []dbmodels.AuditLog, err error) {
	list = []dbmodels.AuditLog{}
	err = i.db.
		Model(dbmodels.AuditLog{}).
		Order("timestamp").
		Find(&list).
		Error
	return list, err
}

func (i impl) setPage(tx *gorm.DB, page, limit int) {
	offset := (page - 1) * limit
	tx.Limit(limit).Offset(offset)
}

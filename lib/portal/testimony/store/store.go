package testimonystore

import (
	portalapimodels "attachment-hub-backend/models/api/portal"
	dbmodels "attachment-hub-backend/models/db"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Testimony) (id string, err error)
	GetByID(id string) (rec *dbmodels.Testimony, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	DeleteByUsername(username string) error
	ListCount(filter portalapimodels.TestimonyFilter) (count int64, err error)
	List(filter portalapimodels.TestimonyFilter) (list []dbmodels.Testimony, err error)
	ListByUsername(username string) (list []dbmodels.Testimony, err error)
	ListAll() (list []dbmodels.Testimony, err error)
	Latest(limit int) (list []dbmodels.Testimony, err error)
	Count() (count int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Testimony) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Testimony, error) {
	rec := dbmodels.Testimony{}
	err := i.db.
		Model(&dbmodels.Testimony{}).
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	tx := i.db.
		Model(&dbmodels.Testimony{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("testimony not found")
	}
	return nil
}

func (i impl) Delete(id string) error {
	return i.db.
		Where("id = ?", id).
		Delete(&dbmodels.Testimony{}).
		Error
}

func (i impl) DeleteByUsername(username string) error {
	return i.db.
		Where("username = ?", username).
		Delete(&dbmodels.Testimony{}).
		Error
}

func (i impl) ListCount(filter portalapimodels.TestimonyFilter) (count int64, err error) {
	tx := i.db.Model(&dbmodels.Testimony{})
	i.addFilter(tx, filter)
	err = tx.Count(&count).Error
	return count, err
}

func (i impl) List(filter portalapimodels.TestimonyFilter) (list []dbmodels.Testimony, err error) {
	list = []dbmodels.Testimony{}
	tx := i.db.Model(&dbmodels.Testimony{})
	i.addFilter(tx, filter)
	page, limit := filter.GetPage()
	i.setPage(tx, page, limit)
	err = tx.
		Order("timestamp desc").
		Find(&list).
		Error
	return list, err
}

func (i impl) ListByUsername(username string) (list []dbmodels.Testimony, err error) {
	list = []dbmodels.Testimony{}
	err = i.db.
		Model(&dbmodels.Testimony{}).
		Where("username = ?", username).
		Order("timestamp desc").
		Find(&list).
		Error
	return list, err
}

func (i impl) ListAll() (list []dbmodels.Testimony, err error) {
	list = []dbmodels.Testimony{}
	err = i.db.
		Model(&dbmodels.Testimony{}).
		Order("timestamp").
		Find(&list).
		Error
	return list, err
}

func (i impl) Latest(limit int) (list []dbmodels.Testimony, err error) {
	list = []dbmodels.Testimony{}
	err = i.db.
		Model(&dbmodels.Testimony{}).
		Order("timestamp desc").
		Limit(limit).
		Find(&list).
		Error
	return list, err
}

func (i impl) Count() (count int64, err error) {
	err = i.db.
		Model(&dbmodels.Testimony{}).
		Count(&count).
		Error
	return count, err
}

func (i impl) addFilter(tx *gorm.DB, filter portalapimodels.TestimonyFilter) {
	q := strings.TrimSpace(filter.Q)
	if q == "" {
		return
	}
	pattern := "%" + strings.ToLower(q) + "%"
	tx.Where("LOWER(full_name) LIKE ? OR LOWER(company) LIKE ? OR LOWER(university) LIKE ? OR LOWER(notes) LIKE ?",
		pattern, pattern, pattern, pattern)
}

func (i impl) setPage(tx *gorm.DB, page, limit int) {
	offset := (page - 1) * limit
	tx.Limit(limit).Offset(offset)
}

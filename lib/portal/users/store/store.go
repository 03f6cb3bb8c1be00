package portaluserstore

import (
	dbmodels "attachment-hub-backend/models/db"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.PortalUser) (id string, err error)
	GetByID(id string) (rec *dbmodels.PortalUser, err error)
	GetByUsername(username string) (rec *dbmodels.PortalUser, err error)
	GetByEmail(email string) (rec *dbmodels.PortalUser, err error)
	ExistByUsernameOrEmail(username, email string) (bool, error)
	Update(id string, updMap map[string]interface{}) error
	UpdateByUsername(username string, updMap map[string]interface{}) error
	Delete(id string) error
	List() (list []dbmodels.PortalUser, err error)
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

func (i impl) Create(rec dbmodels.PortalUser) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.PortalUser, error) {
	return i.getBy("id = ?", id)
}

func (i impl) GetByUsername(username string) (*dbmodels.PortalUser, error) {
	return i.getBy("username = ?", strings.TrimSpace(username))
}

func (i impl) GetByEmail(email string) (*dbmodels.PortalUser, error) {
	return i.getBy("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email)))
}

func (i impl) getBy(query string, value string) (*dbmodels.PortalUser, error) {
	rec := dbmodels.PortalUser{}
	err := i.db.
		Model(&dbmodels.PortalUser{}).
		Where(query, value).
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

func (i impl) ExistByUsernameOrEmail(username, email string) (bool, error) {
	var count int64
	err := i.db.
		Model(&dbmodels.PortalUser{}).
		Where("username = ? OR LOWER(email) = ?", strings.TrimSpace(username), strings.ToLower(strings.TrimSpace(email))).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	tx := i.db.
		Model(&dbmodels.PortalUser{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("portal user not found")
	}
	return nil
}

func (i impl) UpdateByUsername(username string, updMap map[string]interface{}) error {
	tx := i.db.
		Model(&dbmodels.PortalUser{}).
		Where("username = ?", username).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("portal user not found")
	}
	return nil
}

func (i impl) Delete(id string) error {
	return i.db.
		Where("id = ?", id).
		Delete(&dbmodels.PortalUser{}).
		Error
}

func (i impl) List() (list []dbmodels.PortalUser, err error) {
	list = []dbmodels.PortalUser{}
	err = i.db.
		Model(&dbmodels.PortalUser{}).
		Order("created_at").
		Find(&list).
		Error
	return list, err
}

func (i impl) Count() (count int64, err error) {
	err = i.db.
		Model(&dbmodels.PortalUser{}).
		Count(&count).
		Error
	return count, err
}

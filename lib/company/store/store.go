package companystore

import (
	dbmodels "attachment-hub-backend/models/db"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.CompanyProfile) (id string, err error)
	GetByID(id string) (rec *dbmodels.CompanyProfile, err error)
	GetByUserID(userID string) (rec *dbmodels.CompanyProfile, err error)
	ExistByRegistrationNumber(number string) (bool, error)
	Update(id string, updMap map[string]interface{}) error
	ListPendingApproval() (list []dbmodels.CompanyProfile, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.CompanyProfile) (id string, err error) {
	err = i.db.
		Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.CompanyProfile, error) {
	rec := dbmodels.CompanyProfile{}
	err := i.db.
		Model(&dbmodels.CompanyProfile{}).
		Where("id = ?", id).
		Preload(clause.Associations).
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

func (i impl) GetByUserID(userID string) (*dbmodels.CompanyProfile, error) {
	rec := dbmodels.CompanyProfile{}
	err := i.db.
		Model(&dbmodels.CompanyProfile{}).
		Where("user_id = ?", userID).
		Preload(clause.Associations).
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

func (i impl) ExistByRegistrationNumber(number string) (bool, error) {
	var count int64
	err := i.db.
		Model(&dbmodels.CompanyProfile{}).
		Where("LOWER(registration_number) = ?", strings.ToLower(strings.TrimSpace(number))).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.CompanyProfile{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("company not found")
	}
	return nil
}

func (i impl) ListPendingApproval() (list []dbmodels.CompanyProfile, err error) {
	err = i.db.
		Model(&dbmodels.CompanyProfile{}).
		Where("email_verified = ?", true).
		Where("admin_approved = ?", false).
		Order("created_at").
		Preload(clause.Associations).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

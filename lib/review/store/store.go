package reviewstore

import (
	dbmodels "attachment-hub-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.CompanyReview) (id string, err error)
	GetByID(id string) (rec *dbmodels.CompanyReview, err error)
	Approve(id string) error
	Delete(id string) error
	ListApproved(companyID string, limit int) (list []dbmodels.CompanyReview, err error)
	ListPending(limit int) (list []dbmodels.CompanyReview, err error)
	// ApprovedRatings returns the ratings of approved reviews only.
	ApprovedRatings(companyID string) (ratings []int, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.CompanyReview) (id string, err error) {
	err = i.db.
		Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.CompanyReview, error) {
	rec := dbmodels.CompanyReview{}
	err := i.db.
		Model(&dbmodels.CompanyReview{}).
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

func (i impl) Approve(id string) error {
	tx := i.db.
		Model(&dbmodels.CompanyReview{}).
		Where("id = ?", id).
		Update("approved", true)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("review not found")
	}
	return nil
}

func (i impl) Delete(id string) error {
	return i.db.
		Where("id = ?", id).
		Delete(&dbmodels.CompanyReview{}).
		Error
}

func (i impl) ListApproved(companyID string, limit int) (list []dbmodels.CompanyReview, err error) {
	tx := i.db.
		Model(&dbmodels.CompanyReview{}).
		Where("company_id = ?", companyID).
		Where("approved = ?", true).
		Order("created_at desc")
	if limit > 0 {
		tx = tx.Limit(limit)
	}
	err = tx.Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListPending(limit int) (list []dbmodels.CompanyReview, err error) {
	tx := i.db.
		Model(&dbmodels.CompanyReview{}).
		Where("approved = ?", false).
		Order("created_at desc").
		Preload("Company")
	if limit > 0 {
		tx = tx.Limit(limit)
	}
	err = tx.Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ApprovedRatings(companyID string) (ratings []int, err error) {
	err = i.db.
		Model(&dbmodels.CompanyReview{}).
		Where("company_id = ?", companyID).
		Where("approved = ?", true).
		Pluck("rating", &ratings).
		Error
	if err != nil {
		return nil, err
	}
	return ratings, nil
}

package companyverifystore

import (
	dbmodels "attachment-hub-backend/models/db"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.CompanyVerifyToken) error
	GetByTokenID(tokenID string) (*dbmodels.CompanyVerifyToken, error)
	// MarkUsed consumes the token and reports false when it was already used.
	MarkUsed(tokenID string, usedAt time.Time) (bool, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.CompanyVerifyToken) error {
	return i.db.
		Save(&rec).
		Error
}

func (i impl) GetByTokenID(tokenID string) (*dbmodels.CompanyVerifyToken, error) {
	rec := dbmodels.CompanyVerifyToken{}
	err := i.db.
		Where("token_id = ?", tokenID).
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

func (i impl) MarkUsed(tokenID string, usedAt time.Time) (bool, error) {
	tx := i.db.
		Model(&dbmodels.CompanyVerifyToken{}).
		Where("token_id = ?", tokenID).
		Where("date_used IS NULL").
		Update("date_used", usedAt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected == 1, nil
}

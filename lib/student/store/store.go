package studentstore

import (
	dbmodels "attachment-hub-backend/models/db"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	GetByUserID(userID string) (rec *dbmodels.StudentProfile, err error)
	GetOrCreate(userID string) (rec *dbmodels.StudentProfile, err error)
	Update(userID string, updMap map[string]interface{}) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) GetByUserID(userID string) (*dbmodels.StudentProfile, error) {
	rec := dbmodels.StudentProfile{}
	err := i.db.
		Where("user_id = ?", userID).
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

func (i impl) GetOrCreate(userID string) (*dbmodels.StudentProfile, error) {
	rec := dbmodels.StudentProfile{}
	err := i.db.
		Where(dbmodels.StudentProfile{UserID: userID}).
		FirstOrCreate(&rec).
		Error
	if err != nil {
		if strings.Contains(err.Error(), "(SQLSTATE 23505)") {
			// created concurrently
			return i.GetByUserID(userID)
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) Update(userID string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	return i.db.
		Model(&dbmodels.StudentProfile{}).
		Where("user_id = ?", userID).
		Updates(updMap).
		Error
}

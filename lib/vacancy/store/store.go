package vacancystore

import (
	vacancyapimodels "attachment-hub-backend/models/api/vacancy"
	dbmodels "attachment-hub-backend/models/db"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.Vacancy) (id string, err error)
	GetByID(id string) (rec *dbmodels.Vacancy, err error)
	Update(id string, updMap map[string]interface{}) error
	ListCount(filter vacancyapimodels.VacancyFilter, today time.Time) (count int64, err error)
	List(filter vacancyapimodels.VacancyFilter, today time.Time) (list []dbmodels.Vacancy, err error)
	ListByCompany(companyID string) (list []dbmodels.Vacancy, err error)
	ListOpenByCompany(companyID string, today time.Time) (list []dbmodels.Vacancy, err error)
	// DeactivateExpired flips is_active off for active rows whose deadline is before today.
	DeactivateExpired(today time.Time) (count int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Vacancy) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Vacancy, error) {
	rec := dbmodels.Vacancy{}
	err := i.db.
		Model(&dbmodels.Vacancy{}).
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

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Vacancy{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("vacancy not found")
	}
	return nil
}

func (i impl) ListCount(filter vacancyapimodels.VacancyFilter, today time.Time) (count int64, err error) {
	var rowCount int64
	tx := i.db.
		Model(dbmodels.Vacancy{}).
		Joins("left join company_profiles as cp on cp.id = vacancies.company_id")
	i.addFilter(tx, filter, today)
	err = tx.Count(&rowCount).Error
	if err != nil {
		log.WithError(err).Error("vacancy count failed")
		return 0, errors.New("vacancy count failed")
	}
	return rowCount, nil
}

func (i impl) List(filter vacancyapimodels.VacancyFilter, today time.Time) (list []dbmodels.Vacancy, err error) {
	list = []dbmodels.Vacancy{}
	tx := i.db.
		Model(dbmodels.Vacancy{}).
		Select("vacancies.*").
		Joins("left join company_profiles as cp on cp.id = vacancies.company_id")
	i.addFilter(tx, filter, today)
	tx.Order("vacancies.created_at desc")
	page, limit := filter.GetPage()
	i.setPage(tx, page, limit)
	err = tx.Preload("Company").Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListByCompany(companyID string) (list []dbmodels.Vacancy, err error) {
	err = i.db.
		Model(dbmodels.Vacancy{}).
		Where("company_id = ?", companyID).
		Order("created_at desc").
		Preload("Company").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListOpenByCompany(companyID string, today time.Time) (list []dbmodels.Vacancy, err error) {
	err = i.db.
		Model(dbmodels.Vacancy{}).
		Where("company_id = ?", companyID).
		Where("is_active = ?", true).
		Where("deadline >= ?", today).
		Order("created_at desc").
		Preload("Company").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) DeactivateExpired(today time.Time) (count int64, err error) {
	tx := i.db.
		Model(&dbmodels.Vacancy{}).
		Where("is_active = ?", true).
		Where("deadline < ?", today).
		Update("is_active", false)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return tx.RowsAffected, nil
}

func (i impl) addFilter(tx *gorm.DB, filter vacancyapimodels.VacancyFilter, today time.Time) {
	tx.Where("vacancies.is_active = ?", true).
		Where("vacancies.deadline >= ?", today)
	if q := strings.TrimSpace(filter.Q); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		tx.Where("(LOWER(vacancies.title) like ? or LOWER(vacancies.department) like ? or LOWER(vacancies.location) like ? "+
			"or LOWER(vacancies.region) like ? or LOWER(array_to_string(vacancies.required_skills, ',')) like ?)",
			like, like, like, like, like)
	}
	if company := strings.TrimSpace(filter.Company); company != "" {
		tx.Where("LOWER(cp.name) like ?", "%"+strings.ToLower(company)+"%")
	}
	if filter.OnlyVerified() {
		tx.Where("cp.is_verified_company = ?", true)
	}
}

func (i impl) setPage(tx *gorm.DB, page, limit int) {
	offset := (page - 1) * limit
	tx.Limit(limit).Offset(offset)
}

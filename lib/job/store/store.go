package jobstore

import (
	"attachment-hub-backend/models"
	jobapimodels "attachment-hub-backend/models/api/job"
	dbmodels "attachment-hub-backend/models/db"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.JobPost) (id string, err error)
	GetByID(id string) (rec *dbmodels.JobPost, err error)
	Update(id string, updMap map[string]interface{}) error
	ListCount(filter jobapimodels.JobFilter) (count int64, err error)
	List(filter jobapimodels.JobFilter) (list []dbmodels.JobPost, err error)
	ListByCompany(companyID string, onlyActive bool) (list []dbmodels.JobPost, err error)
	ListActive(limit int) (list []dbmodels.JobPost, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.JobPost) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.JobPost, error) {
	rec := dbmodels.JobPost{}
	err := i.db.
		Model(&dbmodels.JobPost{}).
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
		Model(&dbmodels.JobPost{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("job not found")
	}
	return nil
}

func (i impl) ListCount(filter jobapimodels.JobFilter) (count int64, err error) {
	var rowCount int64
	tx := i.db.
		Model(dbmodels.JobPost{}).
		Joins("left join company_profiles as cp on cp.id = job_posts.company_id")
	i.addFilter(tx, filter)
	err = tx.Count(&rowCount).Error
	if err != nil {
		log.WithError(err).Error("job count failed")
		return 0, errors.New("job count failed")
	}
	return rowCount, nil
}

func (i impl) List(filter jobapimodels.JobFilter) (list []dbmodels.JobPost, err error) {
	list = []dbmodels.JobPost{}
	tx := i.db.
		Model(dbmodels.JobPost{}).
		Select("job_posts.*").
		Joins("left join company_profiles as cp on cp.id = job_posts.company_id")
	i.addFilter(tx, filter)
	tx.Order("job_posts.created_at desc")
	page, limit := filter.GetPage()
	offset := (page - 1) * limit
	tx.Limit(limit).Offset(offset)
	err = tx.Preload("Company").Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListByCompany(companyID string, onlyActive bool) (list []dbmodels.JobPost, err error) {
	tx := i.db.
		Model(dbmodels.JobPost{}).
		Where("company_id = ?", companyID)
	if onlyActive {
		tx = tx.Where("is_active = ?", true)
	}
	err = tx.
		Order("created_at desc").
		Preload("Company").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListActive(limit int) (list []dbmodels.JobPost, err error) {
	tx := i.db.
		Model(dbmodels.JobPost{}).
		Where("is_active = ?", true).
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

func (i impl) addFilter(tx *gorm.DB, filter jobapimodels.JobFilter) {
	tx.Where("job_posts.is_active = ?", true)
	if q := strings.TrimSpace(filter.Q); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		tx.Where("(LOWER(job_posts.title) like ? or LOWER(job_posts.department) like ?)", like, like)
	}
	if company := strings.TrimSpace(filter.Company); company != "" {
		tx.Where("LOWER(cp.name) like ?", "%"+strings.ToLower(company)+"%")
	}
	if filter.Exp != "" {
		tx.Where("job_posts.experience_level = ?", filter.Exp)
	}
	if filter.Type != "" {
		tx.Where("job_posts.job_type = ?", filter.Type)
	}
	if filter.OnlyRemote() {
		tx.Where("job_posts.work_location_type = ?", models.RemoteLocation)
	}
	if filter.Smin != nil {
		tx.Where("job_posts.salary_min >= ?", *filter.Smin)
	}
	if filter.Smax != nil {
		tx.Where("(job_posts.salary_max <= ? or job_posts.salary_max is null)", *filter.Smax)
	}
}

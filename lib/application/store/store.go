package applicationstore

import (
	applicationapimodels "attachment-hub-backend/models/api/application"
	dbmodels "attachment-hub-backend/models/db"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Sections is the full child set of one standard application.
type Sections struct {
	Personal       dbmodels.ApplicationPersonal
	Educations     []dbmodels.ApplicationEducation
	Certifications []dbmodels.ApplicationCertification
	Employments    []dbmodels.ApplicationEmployment
	References     []dbmodels.ApplicationReference
	Questions      []dbmodels.ApplicationQuestion
	Criminal       dbmodels.ApplicationCriminalHistory
	Referral       dbmodels.ApplicationReferral
	EEO            dbmodels.ApplicationEEO
}

type Provider interface {
	Create(rec dbmodels.JobApplication) (id string, err error)
	GetByID(id string) (rec *dbmodels.JobApplication, err error)
	GetByJobAndStudent(jobID, studentID string) (rec *dbmodels.JobApplication, err error)
	Exist(jobID, studentID string) (bool, error)
	Update(id string, updMap map[string]interface{}) error
	// SaveSections replaces the repeatable sections and upserts the singletons.
	SaveSections(applicationID string, sections Sections) error
	ListByStudent(studentID string) (list []dbmodels.JobApplication, err error)
	ListApplicantsCount(jobID string, filter applicationapimodels.ApplicantFilter) (count int64, err error)
	ListApplicants(jobID string, filter applicationapimodels.ApplicantFilter) (list []dbmodels.ApplicationExt, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.JobApplication) (id string, err error) {
	err = i.db.
		Omit(clause.Associations).
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.JobApplication, error) {
	return i.get(i.db.Where("id = ?", id))
}

func (i impl) GetByJobAndStudent(jobID, studentID string) (*dbmodels.JobApplication, error) {
	return i.get(i.db.
		Where("job_id = ?", jobID).
		Where("student_id = ?", studentID))
}

func (i impl) get(tx *gorm.DB) (*dbmodels.JobApplication, error) {
	rec := dbmodels.JobApplication{}
	err := tx.
		Model(&dbmodels.JobApplication{}).
		Preload("Job.Company").
		Preload("Student.StudentProfile").
		Preload("Personal").
		Preload("Educations").
		Preload("Certifications").
		Preload("Employments").
		Preload("References").
		Preload("Questions").
		Preload("Criminal").
		Preload("Referral").
		Preload("EEO").
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

func (i impl) Exist(jobID, studentID string) (bool, error) {
	var count int64
	err := i.db.
		Model(&dbmodels.JobApplication{}).
		Where("job_id = ?", jobID).
		Where("student_id = ?", studentID).
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
		Model(&dbmodels.JobApplication{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("application not found")
	}
	return nil
}

func (i impl) SaveSections(applicationID string, sections Sections) error {
	repeatable := []interface{}{
		&dbmodels.ApplicationEducation{},
		&dbmodels.ApplicationCertification{},
		&dbmodels.ApplicationEmployment{},
		&dbmodels.ApplicationReference{},
		&dbmodels.ApplicationQuestion{},
	}
	for _, model := range repeatable {
		err := i.db.
			Where("application_id = ?", applicationID).
			Delete(model).
			Error
		if err != nil {
			return errors.Wrap(err, "section cleanup failed")
		}
	}
	if len(sections.Educations) > 0 {
		if err := i.db.Create(&sections.Educations).Error; err != nil {
			return errors.Wrap(err, "education save failed")
		}
	}
	if len(sections.Certifications) > 0 {
		if err := i.db.Create(&sections.Certifications).Error; err != nil {
			return errors.Wrap(err, "certification save failed")
		}
	}
	if len(sections.Employments) > 0 {
		if err := i.db.Create(&sections.Employments).Error; err != nil {
			return errors.Wrap(err, "employment save failed")
		}
	}
	if len(sections.References) > 0 {
		if err := i.db.Create(&sections.References).Error; err != nil {
			return errors.Wrap(err, "reference save failed")
		}
	}
	if len(sections.Questions) > 0 {
		if err := i.db.Create(&sections.Questions).Error; err != nil {
			return errors.Wrap(err, "question save failed")
		}
	}
	upsert := clause.OnConflict{
		Columns:   []clause.Column{{Name: "application_id"}},
		UpdateAll: true,
	}
	if err := i.db.Clauses(upsert).Create(&sections.Personal).Error; err != nil {
		return errors.Wrap(err, "personal section save failed")
	}
	if err := i.db.Clauses(upsert).Create(&sections.Criminal).Error; err != nil {
		return errors.Wrap(err, "criminal history save failed")
	}
	if err := i.db.Clauses(upsert).Create(&sections.Referral).Error; err != nil {
		return errors.Wrap(err, "referral save failed")
	}
	if err := i.db.Clauses(upsert).Create(&sections.EEO).Error; err != nil {
		return errors.Wrap(err, "eeo save failed")
	}
	return nil
}

func (i impl) ListByStudent(studentID string) (list []dbmodels.JobApplication, err error) {
	err = i.db.
		Model(&dbmodels.JobApplication{}).
		Where("student_id = ?", studentID).
		Order("created_at desc").
		Preload("Job.Company").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListApplicantsCount(jobID string, filter applicationapimodels.ApplicantFilter) (count int64, err error) {
	tx := i.applicantsQuery(jobID, filter)
	err = tx.Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (i impl) ListApplicants(jobID string, filter applicationapimodels.ApplicantFilter) (list []dbmodels.ApplicationExt, err error) {
	list = []dbmodels.ApplicationExt{}
	tx := i.applicantsQuery(jobID, filter).
		Select("job_applications.*, u.username as username, u.email as email, sp.full_name as full_name").
		Order("job_applications.created_at desc")
	page, limit := filter.GetPage()
	tx.Limit(limit).Offset((page - 1) * limit)
	err = tx.Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) applicantsQuery(jobID string, filter applicationapimodels.ApplicantFilter) *gorm.DB {
	tx := i.db.
		Model(&dbmodels.JobApplication{}).
		Joins("join users as u on u.id = job_applications.student_id").
		Joins("left join student_profiles as sp on sp.user_id = u.id").
		Where("job_applications.job_id = ?", jobID)
	if filter.Status != "" {
		tx = tx.Where("job_applications.status = ?", filter.Status)
	}
	if q := strings.TrimSpace(filter.Q); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		tx = tx.Where("(LOWER(u.username) like ? or LOWER(u.email) like ? or LOWER(job_applications.cover_letter) like ?)", like, like, like)
	}
	return tx
}

package jobhandler

import (
	"attachment-hub-backend/db"
	companystore "attachment-hub-backend/lib/company/store"
	jobstore "attachment-hub-backend/lib/job/store"
	"attachment-hub-backend/models"
	jobapimodels "attachment-hub-backend/models/api/job"
	dbmodels "attachment-hub-backend/models/db"

	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Create(userID string, role models.UserRole, data jobapimodels.JobData) (id, hMsg string, err error)
	Update(userID string, role models.UserRole, id string, data jobapimodels.JobData) (hMsg string, err error)
	Deactivate(userID string, role models.UserRole, id string) (hMsg string, err error)
	// GetActive returns a job visible to the public; inactive jobs are not found.
	GetActive(id string) (item *jobapimodels.JobView, err error)
	List(filter jobapimodels.JobFilter) (list []jobapimodels.JobView, rowCount int64, err error)
	ListByCompany(companyID string, onlyActive bool) (list []jobapimodels.JobView, err error)
	ListActive(limit int) (list []jobapimodels.JobView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:        jobstore.NewInstance(db.DB),
		companyStore: companystore.NewInstance(db.DB),
	}
}

type impl struct {
	store        jobstore.Provider
	companyStore companystore.Provider
}

func (i impl) Create(userID string, role models.UserRole, data jobapimodels.JobData) (id, hMsg string, err error) {
	if err = data.Validate(); err != nil {
		return "", err.Error(), nil
	}
	company, err := i.companyStore.GetByUserID(userID)
	if err != nil {
		return "", "", err
	}
	if company == nil || !company.CanPost() {
		return "", models.CannotPostMessage, nil
	}
	rec, err := data.ToDb(company.ID)
	if err != nil {
		return "", err.Error(), nil
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", "", err
	}
	i.getLogger(id, userID).
		WithField("company_id", company.ID).
		Info("job created")
	return id, "", nil
}

func (i impl) Update(userID string, role models.UserRole, id string, data jobapimodels.JobData) (hMsg string, err error) {
	if err = data.Validate(); err != nil {
		return err.Error(), nil
	}
	hMsg, err = i.checkEditable(userID, role, id)
	if err != nil || hMsg != "" {
		return hMsg, err
	}
	updMap, err := data.ToUpdMap()
	if err != nil {
		return err.Error(), nil
	}
	err = i.store.Update(id, updMap)
	if err != nil {
		return "", err
	}
	i.getLogger(id, userID).Info("job updated")
	return "", nil
}

func (i impl) Deactivate(userID string, role models.UserRole, id string) (hMsg string, err error) {
	hMsg, err = i.checkEditable(userID, role, id)
	if err != nil || hMsg != "" {
		return hMsg, err
	}
	err = i.store.Update(id, map[string]interface{}{"is_active": false})
	if err != nil {
		return "", err
	}
	i.getLogger(id, userID).Info("job deactivated")
	return "", nil
}

func (i impl) GetActive(id string) (*jobapimodels.JobView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil || !rec.IsActive {
		return nil, models.ErrNotFound
	}
	result := jobapimodels.JobConvert(*rec)
	return &result, nil
}

func (i impl) List(filter jobapimodels.JobFilter) (list []jobapimodels.JobView, rowCount int64, err error) {
	rowCount, err = i.store.ListCount(filter)
	if err != nil {
		return nil, 0, err
	}
	page, limit := filter.GetPage()
	offset := (page - 1) * limit
	if int64(offset) > rowCount {
		return []jobapimodels.JobView{}, rowCount, nil
	}
	recList, err := i.store.List(filter)
	if err != nil {
		return nil, 0, err
	}
	return convertList(recList), rowCount, nil
}

func (i impl) ListByCompany(companyID string, onlyActive bool) ([]jobapimodels.JobView, error) {
	recList, err := i.store.ListByCompany(companyID, onlyActive)
	if err != nil {
		return nil, err
	}
	return convertList(recList), nil
}

func (i impl) ListActive(limit int) ([]jobapimodels.JobView, error) {
	recList, err := i.store.ListActive(limit)
	if err != nil {
		return nil, err
	}
	return convertList(recList), nil
}

// checkEditable allows the owning company with posting privilege, or an admin.
func (i impl) checkEditable(userID string, role models.UserRole, id string) (hMsg string, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "", models.ErrNotFound
	}
	if role.IsStaff() {
		return "", nil
	}
	company, err := i.companyStore.GetByUserID(userID)
	if err != nil {
		return "", err
	}
	if company == nil || company.ID != rec.CompanyID {
		return "", models.ErrForbidden
	}
	if !company.CanPost() {
		return models.CannotPostMessage, nil
	}
	return "", nil
}

func convertList(recList []dbmodels.JobPost) []jobapimodels.JobView {
	result := make([]jobapimodels.JobView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, jobapimodels.JobConvert(rec))
	}
	return result
}

func (i impl) getLogger(jobID, userID string) *log.Entry {
	logger := log.WithField("job_id", jobID)
	if userID != "" {
		logger = logger.WithField("user_id", userID)
	}
	return logger
}

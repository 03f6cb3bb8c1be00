package vacancyhandler

import (
	"attachment-hub-backend/db"
	companystore "attachment-hub-backend/lib/company/store"
	reviewhandler "attachment-hub-backend/lib/review"
	"attachment-hub-backend/lib/utils/helpers"
	vacancystore "attachment-hub-backend/lib/vacancy/store"
	"attachment-hub-backend/models"
	vacancyapimodels "attachment-hub-backend/models/api/vacancy"
	dbmodels "attachment-hub-backend/models/db"
	"time"

	"github.com/lib/pq"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Create(userID string, role models.UserRole, data vacancyapimodels.VacancyData) (id, hMsg string, err error)
	Update(userID string, role models.UserRole, id string, data vacancyapimodels.VacancyData) (hMsg string, err error)
	Deactivate(userID string, role models.UserRole, id string) (hMsg string, err error)
	GetByID(id string) (item *vacancyapimodels.VacancyDetail, err error)
	List(filter vacancyapimodels.VacancyFilter) (list []vacancyapimodels.VacancyView, rowCount int64, err error)
	ListByCompany(companyID string) (list []vacancyapimodels.VacancyView, err error)
	ListOpenByCompany(companyID string) (list []vacancyapimodels.VacancyView, err error)
	ArchiveExpired() (count int64, err error)
}

var Instance Provider

// detailReviewLimit caps approved reviews shown on a vacancy page.
const detailReviewLimit = 6

func NewHandler(maxDeadlineDays int) {
	Instance = impl{
		store:           vacancystore.NewInstance(db.DB),
		companyStore:    companystore.NewInstance(db.DB),
		reviews:         reviewhandler.Instance,
		maxDeadlineDays: maxDeadlineDays,
		now:             time.Now,
	}
}

type impl struct {
	store           vacancystore.Provider
	companyStore    companystore.Provider
	reviews         reviewhandler.Provider
	maxDeadlineDays int
	now             func() time.Time
}

func (i impl) today() time.Time {
	return helpers.DateOnly(i.now())
}

func (i impl) Create(userID string, role models.UserRole, data vacancyapimodels.VacancyData) (id, hMsg string, err error) {
	logger := i.getLogger("", userID)
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
	today := i.today()
	deadline, startDate, hMsg := i.checkDates(today, data)
	if hMsg != "" {
		return "", hMsg, nil
	}
	rec := dbmodels.Vacancy{
		CompanyID:          company.ID,
		Title:              data.Title,
		Department:         data.Department,
		Location:           data.Location,
		Duration:           data.Duration,
		RequiredSkills:     pq.StringArray(data.GetSkills()),
		Requirements:       data.Requirements,
		ApplicationMethod:  data.ApplicationMethod,
		ApplicationLink:    data.ApplicationLink,
		PositionsAvailable: data.GetPositions(),
		StartDate:          startDate,
		Region:             data.Region,
		Deadline:           deadline,
		IsVerifiedVacancy:  role.IsStaff() && data.IsVerifiedVacancy,
		IsActive:           data.GetIsActive() && !deadline.Before(today),
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", "", err
	}
	logger.
		WithField("vacancy_id", id).
		WithField("company_id", company.ID).
		Info("vacancy created")
	return id, "", nil
}

func (i impl) Update(userID string, role models.UserRole, id string, data vacancyapimodels.VacancyData) (hMsg string, err error) {
	logger := i.getLogger(id, userID)
	if err = data.Validate(); err != nil {
		return err.Error(), nil
	}
	rec, hMsg, err := i.getEditable(userID, role, id)
	if err != nil || hMsg != "" {
		return hMsg, err
	}
	deadline, startDate, hMsg := i.checkDates(rec.CreatedAt, data)
	if hMsg != "" {
		return hMsg, nil
	}
	isVerified := rec.IsVerifiedVacancy
	if role.IsStaff() {
		isVerified = data.IsVerifiedVacancy
	}
	updMap := map[string]interface{}{
		"title":               data.Title,
		"department":          data.Department,
		"location":            data.Location,
		"duration":            data.Duration,
		"required_skills":     pq.StringArray(data.GetSkills()),
		"requirements":        data.Requirements,
		"application_method":  data.ApplicationMethod,
		"application_link":    data.ApplicationLink,
		"positions_available": data.GetPositions(),
		"start_date":          startDate,
		"region":              data.Region,
		"deadline":            deadline,
		"is_verified_vacancy": isVerified,
		"is_active":           data.GetIsActive() && !deadline.Before(i.today()),
	}
	err = i.store.Update(id, updMap)
	if err != nil {
		return "", err
	}
	logger.Info("vacancy updated")
	return "", nil
}

func (i impl) Deactivate(userID string, role models.UserRole, id string) (hMsg string, err error) {
	_, hMsg, err = i.getEditable(userID, role, id)
	if err != nil || hMsg != "" {
		return hMsg, err
	}
	err = i.store.Update(id, map[string]interface{}{"is_active": false})
	if err != nil {
		return "", err
	}
	i.getLogger(id, userID).Info("vacancy deactivated")
	return "", nil
}

func (i impl) GetByID(id string) (*vacancyapimodels.VacancyDetail, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil || !rec.IsActive {
		return nil, models.ErrNotFound
	}
	result := vacancyapimodels.VacancyDetail{
		VacancyView: vacancyapimodels.VacancyConvert(*rec, i.today()),
		Reviews:     []vacancyapimodels.ReviewSummary{},
	}
	result.AverageRating, err = i.reviews.CompanyRating(rec.CompanyID)
	if err != nil {
		return nil, err
	}
	reviews, err := i.reviews.ApprovedReviews(rec.CompanyID, detailReviewLimit)
	if err != nil {
		return nil, err
	}
	for _, review := range reviews {
		result.Reviews = append(result.Reviews, vacancyapimodels.ReviewSummary{
			ID:        review.ID,
			Name:      review.Name,
			Rating:    review.Rating,
			Comment:   review.Comment,
			CreatedAt: review.CreatedAt,
		})
	}
	return &result, nil
}

func (i impl) List(filter vacancyapimodels.VacancyFilter) (list []vacancyapimodels.VacancyView, rowCount int64, err error) {
	today := i.today()
	rowCount, err = i.store.ListCount(filter, today)
	if err != nil {
		return nil, 0, err
	}
	page, limit := filter.GetPage()
	offset := (page - 1) * limit
	if int64(offset) > rowCount {
		return []vacancyapimodels.VacancyView{}, rowCount, nil
	}
	recList, err := i.store.List(filter, today)
	if err != nil {
		return nil, 0, err
	}
	return i.convertList(recList, today), rowCount, nil
}

func (i impl) ListByCompany(companyID string) ([]vacancyapimodels.VacancyView, error) {
	recList, err := i.store.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	return i.convertList(recList, i.today()), nil
}

func (i impl) ListOpenByCompany(companyID string) ([]vacancyapimodels.VacancyView, error) {
	today := i.today()
	recList, err := i.store.ListOpenByCompany(companyID, today)
	if err != nil {
		return nil, err
	}
	return i.convertList(recList, today), nil
}

func (i impl) ArchiveExpired() (count int64, err error) {
	return i.store.DeactivateExpired(i.today())
}

// getEditable loads a vacancy the caller may change: owner company with posting privilege, or staff.
func (i impl) getEditable(userID string, role models.UserRole, id string) (rec *dbmodels.Vacancy, hMsg string, err error) {
	rec, err = i.store.GetByID(id)
	if err != nil {
		return nil, "", err
	}
	if rec == nil {
		return nil, "", models.ErrNotFound
	}
	if !role.IsStaff() {
		company, err := i.companyStore.GetByUserID(userID)
		if err != nil {
			return nil, "", err
		}
		if company == nil || company.ID != rec.CompanyID {
			return nil, "", models.ErrForbidden
		}
	}
	if rec.Company == nil || !rec.Company.CanPost() {
		return nil, models.CannotPostMessage, nil
	}
	return rec, "", nil
}

func (i impl) checkDates(base time.Time, data vacancyapimodels.VacancyData) (deadline time.Time, startDate *time.Time, hMsg string) {
	deadline, err := data.GetDeadline()
	if err != nil {
		return time.Time{}, nil, "deadline: must be a date in YYYY-MM-DD format"
	}
	if hMsg = CheckDeadline(base, deadline, i.maxDeadlineDays); hMsg != "" {
		return time.Time{}, nil, hMsg
	}
	startDate, err = data.GetStartDate()
	if err != nil {
		return time.Time{}, nil, "start_date: must be a date in YYYY-MM-DD format"
	}
	return deadline, startDate, ""
}

func (i impl) convertList(recList []dbmodels.Vacancy, today time.Time) []vacancyapimodels.VacancyView {
	result := make([]vacancyapimodels.VacancyView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, vacancyapimodels.VacancyConvert(rec, today))
	}
	return result
}

func (i impl) getLogger(vacancyID, userID string) *log.Entry {
	logger := log.NewEntry(log.StandardLogger())
	if vacancyID != "" {
		logger = logger.WithField("vacancy_id", vacancyID)
	}
	if userID != "" {
		logger = logger.WithField("user_id", userID)
	}
	return logger
}

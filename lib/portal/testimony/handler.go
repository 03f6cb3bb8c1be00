package testimonyhandler

import (
	"attachment-hub-backend/db"
	auditloghandler "attachment-hub-backend/lib/portal/audit-log"
	auditlogstore "attachment-hub-backend/lib/portal/audit-log/store"
	testimonystore "attachment-hub-backend/lib/portal/testimony/store"
	portaluserstore "attachment-hub-backend/lib/portal/users/store"
	"attachment-hub-backend/models"
	portalapimodels "attachment-hub-backend/models/api/portal"
	dbmodels "attachment-hub-backend/models/db"
	"fmt"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	Submit(username string, data portalapimodels.TestimonyData) (id, hMsg string, err error)
	List(filter portalapimodels.TestimonyFilter) (list []portalapimodels.TestimonyView, rowCount int64, err error)
	Home() (item portalapimodels.Home, err error)

	GetByID(id string) (item portalapimodels.TestimonyView, err error)
	AdminCreate(data portalapimodels.AdminTestimonyData) (id, hMsg string, err error)
	AdminUpdate(id string, data portalapimodels.AdminTestimonyData) (hMsg string, err error)
	AdminDelete(id string) error
}

var Instance Provider

// homeLatestLimit is how many recent testimonies the portal home page shows.
const homeLatestLimit = 5

type txFunc func(fn func(testimonies testimonystore.Provider, logs auditlogstore.Provider) error) error

func NewHandler() {
	Instance = impl{
		store:     testimonystore.NewInstance(db.DB),
		userStore: portaluserstore.NewInstance(db.DB),
		audit:     auditloghandler.Instance,
		withTx: func(fn func(testimonies testimonystore.Provider, logs auditlogstore.Provider) error) error {
			return db.DB.Transaction(func(tx *gorm.DB) error {
				return fn(testimonystore.NewInstance(tx), auditlogstore.NewInstance(tx))
			})
		},
	}
}

type impl struct {
	store     testimonystore.Provider
	userStore portaluserstore.Provider
	audit     auditloghandler.Provider
	withTx    txFunc
}

func (i impl) Submit(username string, data portalapimodels.TestimonyData) (id, hMsg string, err error) {
	if err = data.Validate(); err != nil {
		return "", err.Error(), nil
	}
	user, err := i.userStore.GetByUsername(username)
	if err != nil {
		return "", "", err
	}
	if user == nil {
		return "", "Please log in to submit a testimony.", nil
	}
	return i.create(data.ToDb(user.Username), fmt.Sprintf("User %s submitted a testimony for %s", user.Username, data.Company))
}

func (i impl) create(rec dbmodels.Testimony, details string) (id, hMsg string, err error) {
	err = i.withTx(func(testimonies testimonystore.Provider, logs auditlogstore.Provider) error {
		id, err = testimonies.Create(rec)
		if err != nil {
			return err
		}
		_, err = logs.Create(auditloghandler.NewRecord(rec.Username, models.LogSubmitTestimony, details))
		return err
	})
	if err != nil {
		return "", "", err
	}
	log.
		WithField("portal_user", rec.Username).
		WithField("testimony_id", id).
		Info("testimony submitted")
	return id, "", nil
}

func (i impl) List(filter portalapimodels.TestimonyFilter) ([]portalapimodels.TestimonyView, int64, error) {
	rowCount, err := i.store.ListCount(filter)
	if err != nil {
		return nil, 0, err
	}

	page, limit := filter.GetPage()
	offset := (page - 1) * limit
	if int64(offset) > rowCount {
		return []portalapimodels.TestimonyView{}, rowCount, nil
	}

	list, err := i.store.List(filter)
	if err != nil {
		return nil, 0, err
	}
	return convertList(list), rowCount, nil
}

func (i impl) Home() (item portalapimodels.Home, err error) {
	item.TestimonyCount, err = i.store.Count()
	if err != nil {
		return item, err
	}
	item.UserCount, err = i.userStore.Count()
	if err != nil {
		return item, err
	}
	list, err := i.store.Latest(homeLatestLimit)
	if err != nil {
		return item, err
	}
	item.Latest = convertList(list)
	return item, nil
}

func (i impl) GetByID(id string) (portalapimodels.TestimonyView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return portalapimodels.TestimonyView{}, err
	}
	if rec == nil {
		return portalapimodels.TestimonyView{}, models.ErrNotFound
	}
	return portalapimodels.TestimonyConvert(*rec), nil
}

func (i impl) AdminCreate(data portalapimodels.AdminTestimonyData) (id, hMsg string, err error) {
	if err = data.Validate(); err != nil {
		return "", err.Error(), nil
	}
	return i.create(data.ToDb(data.Username), fmt.Sprintf("User %s submitted a testimony for %s", data.Username, data.Company))
}

func (i impl) AdminUpdate(id string, data portalapimodels.AdminTestimonyData) (hMsg string, err error) {
	if err = data.Validate(); err != nil {
		return err.Error(), nil
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "", models.ErrNotFound
	}
	if err = i.store.Update(id, data.ToUpdMap()); err != nil {
		return "", err
	}
	i.audit.Save(data.Username, models.LogAdminUpdateTestimony, fmt.Sprintf("Admin updated testimony ID %s", id))
	return "", nil
}

func (i impl) AdminDelete(id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return models.ErrNotFound
	}
	if err = i.store.Delete(id); err != nil {
		return err
	}
	i.audit.Save(rec.Username, models.LogAdminDeleteTestimony, fmt.Sprintf("Admin deleted testimony ID %s", id))
	return nil
}

func convertList(list []dbmodels.Testimony) []portalapimodels.TestimonyView {
	result := make([]portalapimodels.TestimonyView, 0, len(list))
	for _, rec := range list {
		result = append(result, portalapimodels.TestimonyConvert(rec))
	}
	return result
}

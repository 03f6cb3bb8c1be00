package testimonyhandler

import (
	auditlogstore "attachment-hub-backend/lib/portal/audit-log/store"
	testimonystore "attachment-hub-backend/lib/portal/testimony/store"
	"attachment-hub-backend/models"
	apimodels "attachment-hub-backend/models/api"
	portalapimodels "attachment-hub-backend/models/api/portal"
	dbmodels "attachment-hub-backend/models/db"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeTestimonyStore struct {
	list []*dbmodels.Testimony
}

func (f *fakeTestimonyStore) Create(rec dbmodels.Testimony) (string, error) {
	rec.ID = fmt.Sprintf("t%v", len(f.list)+1)
	f.list = append(f.list, &rec)
	return rec.ID, nil
}

func (f *fakeTestimonyStore) GetByID(id string) (*dbmodels.Testimony, error) {
	for _, rec := range f.list {
		if rec.ID == id {
			return rec, nil
		}
	}
	return nil, nil
}

func (f *fakeTestimonyStore) Update(id string, updMap map[string]interface{}) error {
	rec, _ := f.GetByID(id)
	if rec == nil {
		return fmt.Errorf("testimony not found")
	}
	rec.Company = updMap["company"].(string)
	rec.Username = updMap["username"].(string)
	return nil
}

func (f *fakeTestimonyStore) Delete(id string) error {
	list := []*dbmodels.Testimony{}
	for _, rec := range f.list {
		if rec.ID != id {
			list = append(list, rec)
		}
	}
	f.list = list
	return nil
}

func (f *fakeTestimonyStore) DeleteByUsername(username string) error { return nil }

func (f *fakeTestimonyStore) ListCount(filter portalapimodels.TestimonyFilter) (int64, error) {
	return int64(len(f.list)), nil
}

func (f *fakeTestimonyStore) List(filter portalapimodels.TestimonyFilter) ([]dbmodels.Testimony, error) {
	return f.values(), nil
}

func (f *fakeTestimonyStore) ListByUsername(username string) ([]dbmodels.Testimony, error) {
	return nil, nil
}

func (f *fakeTestimonyStore) ListAll() ([]dbmodels.Testimony, error) { return f.values(), nil }

func (f *fakeTestimonyStore) Latest(limit int) ([]dbmodels.Testimony, error) {
	list := f.values()
	if len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}

func (f *fakeTestimonyStore) Count() (int64, error) { return int64(len(f.list)), nil }

func (f *fakeTestimonyStore) values() []dbmodels.Testimony {
	result := []dbmodels.Testimony{}
	for _, rec := range f.list {
		result = append(result, *rec)
	}
	return result
}

type fakeUserStore struct {
	users []dbmodels.PortalUser
}

func (f fakeUserStore) Create(rec dbmodels.PortalUser) (string, error) { return "", nil }

func (f fakeUserStore) GetByID(id string) (*dbmodels.PortalUser, error) { return nil, nil }

func (f fakeUserStore) GetByUsername(username string) (*dbmodels.PortalUser, error) {
	for _, rec := range f.users {
		if rec.Username == username {
			return &rec, nil
		}
	}
	return nil, nil
}

func (f fakeUserStore) GetByEmail(email string) (*dbmodels.PortalUser, error) { return nil, nil }

func (f fakeUserStore) ExistByUsernameOrEmail(username, email string) (bool, error) {
	return false, nil
}

func (f fakeUserStore) Update(id string, updMap map[string]interface{}) error { return nil }

func (f fakeUserStore) UpdateByUsername(username string, updMap map[string]interface{}) error {
	return nil
}

func (f fakeUserStore) Delete(id string) error { return nil }

func (f fakeUserStore) List() ([]dbmodels.PortalUser, error) { return f.users, nil }

func (f fakeUserStore) Count() (int64, error) { return int64(len(f.users)), nil }

type fakeLogStore struct {
	rows []dbmodels.AuditLog
}

func (f *fakeLogStore) Create(rec dbmodels.AuditLog) (string, error) {
	f.rows = append(f.rows, rec)
	return "", nil
}

func (f *fakeLogStore) ListCount() (int64, error) { return int64(len(f.rows)), nil }

func (f *fakeLogStore) List(pagination apimodels.Pagination) ([]dbmodels.AuditLog, error) {
	return f.rows, nil
}

func (f *fakeLogStore) ListAll() ([]dbmodels.AuditLog, error) { return f.rows, nil }

type fakeAudit struct {
	logs *fakeLogStore
}

func (f fakeAudit) Save(username string, action models.LogAction, details string) {
	f.logs.rows = append(f.logs.rows, dbmodels.AuditLog{Username: username, Action: action, Details: details})
}

func (f fakeAudit) List(pagination apimodels.Pagination) ([]portalapimodels.LogView, int64, error) {
	return nil, 0, nil
}

func newTestHandler() (impl, *fakeTestimonyStore, *fakeLogStore) {
	store := &fakeTestimonyStore{}
	logs := &fakeLogStore{}
	users := fakeUserStore{users: []dbmodels.PortalUser{{Username: "jane", FullName: "Jane Doe"}}}
	return impl{
		store:     store,
		userStore: users,
		audit:     fakeAudit{logs: logs},
		withTx: func(fn func(testimonies testimonystore.Provider, logs auditlogstore.Provider) error) error {
			return fn(store, logs)
		},
	}, store, logs
}

func testimonyData() portalapimodels.TestimonyData {
	return portalapimodels.TestimonyData{
		FullName:  "Jane Doe",
		Company:   "Acme",
		StartDate: "2024-01-08",
		EndDate:   "2024-03-29",
		Rating:    4,
		Notes:     "Great mentors",
	}
}

func TestSubmit(t *testing.T) {
	t.Run("stored with session username and logged", func(t *testing.T) {
		h, store, logs := newTestHandler()
		id, hMsg, err := h.Submit("jane", testimonyData())
		require.NoError(t, err)
		require.Empty(t, hMsg)
		require.Equal(t, "t1", id)
		require.Equal(t, "jane", store.list[0].Username)
		require.Len(t, logs.rows, 1)
		require.Equal(t, models.LogSubmitTestimony, logs.rows[0].Action)
		require.Equal(t, "User jane submitted a testimony for Acme", logs.rows[0].Details)
	})
	t.Run("rating out of range", func(t *testing.T) {
		h, store, _ := newTestHandler()
		data := testimonyData()
		data.Rating = 6
		_, hMsg, err := h.Submit("jane", data)
		require.NoError(t, err)
		require.NotEmpty(t, hMsg)
		require.Empty(t, store.list)
	})
	t.Run("unknown portal user", func(t *testing.T) {
		h, store, _ := newTestHandler()
		_, hMsg, err := h.Submit("ghost", testimonyData())
		require.NoError(t, err)
		require.NotEmpty(t, hMsg)
		require.Empty(t, store.list)
	})
}

func TestHome(t *testing.T) {
	h, _, _ := newTestHandler()
	for i := 0; i < 7; i++ {
		_, _, err := h.Submit("jane", testimonyData())
		require.NoError(t, err)
	}
	item, err := h.Home()
	require.NoError(t, err)
	require.Equal(t, int64(7), item.TestimonyCount)
	require.Equal(t, int64(1), item.UserCount)
	require.Len(t, item.Latest, homeLatestLimit)
}

func TestAdmin(t *testing.T) {
	h, store, logs := newTestHandler()
	data := portalapimodels.AdminTestimonyData{Username: "john", TestimonyData: testimonyData()}
	id, hMsg, err := h.AdminCreate(data)
	require.NoError(t, err)
	require.Empty(t, hMsg)
	require.Equal(t, "john", store.list[0].Username)

	data.Company = "Globex"
	hMsg, err = h.AdminUpdate(id, data)
	require.NoError(t, err)
	require.Empty(t, hMsg)
	view, err := h.GetByID(id)
	require.NoError(t, err)
	require.Equal(t, "Globex", view.Company)

	require.NoError(t, h.AdminDelete(id))
	require.Empty(t, store.list)
	require.ErrorIs(t, h.AdminDelete(id), models.ErrNotFound)

	last := logs.rows[len(logs.rows)-1]
	require.Equal(t, models.LogAdminDeleteTestimony, last.Action)
	require.Equal(t, "john", last.Username)
}

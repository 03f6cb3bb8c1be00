package jobhandler

import (
	"attachment-hub-backend/models"
	jobapimodels "attachment-hub-backend/models/api/job"
	dbmodels "attachment-hub-backend/models/db"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeJobStore struct {
	recs map[string]*dbmodels.JobPost
}

func (f *fakeJobStore) Create(rec dbmodels.JobPost) (string, error) {
	rec.ID = fmt.Sprintf("j%d", len(f.recs)+1)
	f.recs[rec.ID] = &rec
	return rec.ID, nil
}

func (f *fakeJobStore) GetByID(id string) (*dbmodels.JobPost, error) {
	rec, ok := f.recs[id]
	if !ok {
		return nil, nil
	}
	result := *rec
	return &result, nil
}

func (f *fakeJobStore) Update(id string, updMap map[string]interface{}) error {
	rec := f.recs[id]
	if v, ok := updMap["is_active"]; ok {
		rec.IsActive = v.(bool)
	}
	if v, ok := updMap["title"]; ok {
		rec.Title = v.(string)
	}
	return nil
}

func (f *fakeJobStore) ListCount(filter jobapimodels.JobFilter) (int64, error) {
	return int64(len(f.recs)), nil
}

func (f *fakeJobStore) List(filter jobapimodels.JobFilter) ([]dbmodels.JobPost, error) {
	list := []dbmodels.JobPost{}
	for _, rec := range f.recs {
		if rec.IsActive {
			list = append(list, *rec)
		}
	}
	return list, nil
}

func (f *fakeJobStore) ListByCompany(companyID string, onlyActive bool) ([]dbmodels.JobPost, error) {
	return nil, nil
}

func (f *fakeJobStore) ListActive(limit int) ([]dbmodels.JobPost, error) { return nil, nil }

type fakeCompanyStore struct {
	companies []dbmodels.CompanyProfile
}

func (f fakeCompanyStore) Create(rec dbmodels.CompanyProfile) (string, error) { return rec.ID, nil }

func (f fakeCompanyStore) GetByID(id string) (*dbmodels.CompanyProfile, error) {
	for _, rec := range f.companies {
		if rec.ID == id {
			return &rec, nil
		}
	}
	return nil, nil
}

func (f fakeCompanyStore) GetByUserID(userID string) (*dbmodels.CompanyProfile, error) {
	for _, rec := range f.companies {
		if rec.UserID == userID {
			return &rec, nil
		}
	}
	return nil, nil
}

func (f fakeCompanyStore) ExistByRegistrationNumber(number string) (bool, error) { return false, nil }

func (f fakeCompanyStore) Update(id string, updMap map[string]interface{}) error { return nil }

func (f fakeCompanyStore) ListPendingApproval() ([]dbmodels.CompanyProfile, error) { return nil, nil }

func newTestHandler() (impl, *fakeJobStore) {
	approved := dbmodels.CompanyProfile{UserID: "u1", EmailVerified: true, AdminApproved: true}
	approved.ID = "c1"
	pending := dbmodels.CompanyProfile{UserID: "u2", EmailVerified: false, AdminApproved: true}
	pending.ID = "c2"
	other := dbmodels.CompanyProfile{UserID: "u3", EmailVerified: true, AdminApproved: true}
	other.ID = "c3"
	store := &fakeJobStore{recs: map[string]*dbmodels.JobPost{}}
	return impl{
		store:        store,
		companyStore: fakeCompanyStore{companies: []dbmodels.CompanyProfile{approved, pending, other}},
	}, store
}

func jobData() jobapimodels.JobData {
	return jobapimodels.JobData{Title: "Backend Intern", Location: "Nairobi", JobType: models.InternJob}
}

func TestJobLifecycle(t *testing.T) {
	h, store := newTestHandler()

	t.Run("company without verified email cannot post", func(t *testing.T) {
		_, hMsg, err := h.Create("u2", models.CompanyRole, jobData())
		require.NoError(t, err)
		require.Equal(t, models.CannotPostMessage, hMsg)
		require.Empty(t, store.recs)
	})

	id, hMsg, err := h.Create("u1", models.CompanyRole, jobData())
	require.NoError(t, err)
	require.Empty(t, hMsg)
	require.Equal(t, "c1", store.recs[id].CompanyID)
	require.True(t, store.recs[id].EasyApply)

	t.Run("public view", func(t *testing.T) {
		item, err := h.GetActive(id)
		require.NoError(t, err)
		require.Equal(t, "Internship", item.JobTypeName)
		require.Equal(t, "Salary undisclosed", item.SalaryDisplay)
	})

	t.Run("other company cannot edit", func(t *testing.T) {
		_, err := h.Update("u3", models.CompanyRole, id, jobData())
		require.ErrorIs(t, err, models.ErrForbidden)
		_, err = h.Deactivate("u3", models.CompanyRole, id)
		require.ErrorIs(t, err, models.ErrForbidden)
	})

	t.Run("owner updates", func(t *testing.T) {
		data := jobData()
		data.Title = "Backend Trainee"
		hMsg, err := h.Update("u1", models.CompanyRole, id, data)
		require.NoError(t, err)
		require.Empty(t, hMsg)
		require.Equal(t, "Backend Trainee", store.recs[id].Title)
	})

	t.Run("deactivated job is hidden", func(t *testing.T) {
		hMsg, err := h.Deactivate("u1", models.CompanyRole, id)
		require.NoError(t, err)
		require.Empty(t, hMsg)
		_, err = h.GetActive(id)
		require.ErrorIs(t, err, models.ErrNotFound)
		list, _, err := h.List(jobapimodels.JobFilter{})
		require.NoError(t, err)
		require.Empty(t, list)
	})
}

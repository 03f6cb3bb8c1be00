package exporthandler

import (
	"attachment-hub-backend/models"
	apimodels "attachment-hub-backend/models/api"
	portalapimodels "attachment-hub-backend/models/api/portal"
	dbmodels "attachment-hub-backend/models/db"
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type userStoreFake struct {
	list []dbmodels.PortalUser
}

func (f userStoreFake) Create(rec dbmodels.PortalUser) (string, error) { return "", nil }
func (f userStoreFake) GetByID(id string) (*dbmodels.PortalUser, error) { return nil, nil }
func (f userStoreFake) GetByUsername(u string) (*dbmodels.PortalUser, error) { return nil, nil }
func (f userStoreFake) GetByEmail(email string) (*dbmodels.PortalUser, error) { return nil, nil }
func (f userStoreFake) ExistByUsernameOrEmail(u, e string) (bool, error) { return false, nil }
func (f userStoreFake) Update(id string, updMap map[string]interface{}) error { return nil }
func (f userStoreFake) UpdateByUsername(u string, m map[string]interface{}) error { return nil }
func (f userStoreFake) Delete(id string) error { return nil }
func (f userStoreFake) List() ([]dbmodels.PortalUser, error) { return f.list, nil }
func (f userStoreFake) Count() (int64, error) { return int64(len(f.list)), nil }

type testimonyStoreFake struct {
	list []dbmodels.Testimony
}

func (f testimonyStoreFake) Create(rec dbmodels.Testimony) (string, error) { return "", nil }
func (f testimonyStoreFake) GetByID(id string) (*dbmodels.Testimony, error) { return nil, nil }
func (f testimonyStoreFake) Update(id string, m map[string]interface{}) error { return nil }
func (f testimonyStoreFake) Delete(id string) error { return nil }
func (f testimonyStoreFake) DeleteByUsername(username string) error { return nil }
func (f testimonyStoreFake) ListCount(portalapimodels.TestimonyFilter) (int64, error) {
	return int64(len(f.list)), nil
}
func (f testimonyStoreFake) List(portalapimodels.TestimonyFilter) ([]dbmodels.Testimony, error) {
	return f.list, nil
}
func (f testimonyStoreFake) ListByUsername(string) ([]dbmodels.Testimony, error) { return f.list, nil }
func (f testimonyStoreFake) ListAll() ([]dbmodels.Testimony, error) { return f.list, nil }
func (f testimonyStoreFake) Latest(int) ([]dbmodels.Testimony, error) { return f.list, nil }
func (f testimonyStoreFake) Count() (int64, error) { return int64(len(f.list)), nil }

type logStoreFake struct {
	list []dbmodels.AuditLog
}

func (f logStoreFake) Create(rec dbmodels.AuditLog) (string, error) { return "", nil }
func (f logStoreFake) ListCount() (int64, error) { return int64(len(f.list)), nil }
func (f logStoreFake) List(apimodels.Pagination) ([]dbmodels.AuditLog, error) { return f.list, nil }
func (f logStoreFake) ListAll() ([]dbmodels.AuditLog, error) { return f.list, nil }

func newTestHandler() impl {
	ts := time.Date(2024, 3, 5, 10, 20, 30, 0, time.UTC)
	return impl{
		userStore: userStoreFake{list: []dbmodels.PortalUser{
			{BaseModel: dbmodels.BaseModel{ID: "u1"}, FullName: "Jane Doe", Email: "jane@example.com", Username: "jane"},
		}},
		testimonyStore: testimonyStoreFake{list: []dbmodels.Testimony{
			{
				BaseModel:  dbmodels.BaseModel{ID: "t1"},
				Username:   "jane",
				FullName:   "Jane Doe",
				Company:    "Acme, Ltd",
				University: "State University",
				StartDate:  "2024-01-01",
				EndDate:    "2024-03-01",
				Department: "IT",
				Rating:     4,
				Notes:      "Great mentors",
				Timestamp:  ts,
			},
		}},
		logStore: logStoreFake{list: []dbmodels.AuditLog{
			{BaseModel: dbmodels.BaseModel{ID: "l1"}, Username: "jane", Action: models.LogSignup, Details: "User jane signed up", Timestamp: ts},
		}},
		now: func() time.Time { return ts },
	}
}

func Test_CSV(t *testing.T) {
	h := newTestHandler()

	t.Run("single entity", func(t *testing.T) {
		file, hMsg, err := h.CSV(TestimoniesEntity)
		require.NoError(t, err)
		require.Empty(t, hMsg)
		require.Equal(t, "testimonies_20240305_102030.csv", file.Name)
		require.Equal(t, "text/csv", file.ContentType)

		records, err := csv.NewReader(bytes.NewReader(file.Data)).ReadAll()
		require.NoError(t, err)
		require.Len(t, records, 2)
		require.Equal(t, testimonyHeaders, records[0])
		require.Equal(t, "Acme, Ltd", records[1][3])
		require.Equal(t, "4", records[1][9])
		require.Equal(t, "2024-03-05 10:20:30", records[1][11])
	})

	t.Run("all entities", func(t *testing.T) {
		file, hMsg, err := h.CSV(AllEntity)
		require.NoError(t, err)
		require.Empty(t, hMsg)
		require.Equal(t, "all_data_20240305_102030.csv", file.Name)

		content := string(file.Data)
		require.True(t, strings.HasPrefix(content, "Users\n"))
		require.Contains(t, content, "\n\nTestimonies\n")
		require.Contains(t, content, "\n\nLogs\n")
		require.Contains(t, content, "User jane signed up")
	})

	t.Run("unknown entity", func(t *testing.T) {
		_, hMsg, err := h.CSV(Entity("vacancies"))
		require.NoError(t, err)
		require.NotEmpty(t, hMsg)
	})
}

func Test_XLSX(t *testing.T) {
	h := newTestHandler()
	file, err := h.XLSX()
	require.NoError(t, err)
	require.Equal(t, "all_data_20240305_102030.xlsx", file.Name)

	book, err := excelize.OpenReader(bytes.NewReader(file.Data))
	require.NoError(t, err)
	defer book.Close()
	require.Equal(t, []string{"Users", "Testimonies", "Logs"}, book.GetSheetList())

	value, err := book.GetCellValue("Testimonies", "D2")
	require.NoError(t, err)
	require.Equal(t, "Acme, Ltd", value)
	value, err = book.GetCellValue("Logs", "C2")
	require.NoError(t, err)
	require.Equal(t, "signup", value)
}

func Test_PDF(t *testing.T) {
	h := newTestHandler()
	file, err := h.PDF()
	require.NoError(t, err)
	require.Equal(t, "testimony_report_20240305_102030.pdf", file.Name)
	require.Equal(t, "application/pdf", file.ContentType)
	require.True(t, bytes.HasPrefix(file.Data, []byte("%PDF-")))
}

package exporthandler

import (
	"attachment-hub-backend/db"
	csvexport "attachment-hub-backend/lib/export/csv"
	pdfexport "attachment-hub-backend/lib/export/pdf"
	xlsexport "attachment-hub-backend/lib/export/xls"
	auditlogstore "attachment-hub-backend/lib/portal/audit-log/store"
	testimonystore "attachment-hub-backend/lib/portal/testimony/store"
	portaluserstore "attachment-hub-backend/lib/portal/users/store"
	"fmt"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Entity string

const (
	UsersEntity       Entity = "users"
	TestimoniesEntity Entity = "testimonies"
	LogsEntity        Entity = "logs"
	AllEntity         Entity = "all"
)

// File is a rendered export ready to be sent as an attachment.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

const (
	csvContentType  = "text/csv"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	pdfContentType  = "application/pdf"
	fileStampLayout = "20060102_150405"
)

type Provider interface {
	CSV(entity Entity) (file File, hMsg string, err error)
	XLSX() (file File, err error)
	PDF() (file File, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		userStore:      portaluserstore.NewInstance(db.DB),
		testimonyStore: testimonystore.NewInstance(db.DB),
		logStore:       auditlogstore.NewInstance(db.DB),
		now:            time.Now,
	}
}

type impl struct {
	userStore      portaluserstore.Provider
	testimonyStore testimonystore.Provider
	logStore       auditlogstore.Provider
	now            func() time.Time
}

func (i impl) CSV(entity Entity) (File, string, error) {
	logger := log.WithField("entity", entity)
	var tables []Table
	var err error
	switch entity {
	case UsersEntity, TestimoniesEntity, LogsEntity:
		table, err := i.table(entity)
		if err != nil {
			return File{}, "", err
		}
		tables = []Table{table}
	case AllEntity:
		tables, err = i.allTables()
		if err != nil {
			return File{}, "", err
		}
	default:
		return File{}, "entity: must be one of [users testimonies logs all]", nil
	}

	var data []byte
	name := string(entity)
	if entity == AllEntity {
		name = "all_data"
		sections := make([]csvexport.Section, 0, len(tables))
		for _, table := range tables {
			sections = append(sections, csvexport.Section{Title: table.Title, Headers: table.Headers, Rows: table.Rows})
		}
		data, err = csvexport.WriteSections(sections)
	} else {
		data, err = csvexport.Write(tables[0].Headers, tables[0].Rows)
	}
	if err != nil {
		logger.WithError(err).Error("csv export failed")
		return File{}, "", err
	}
	return File{
		Name:        i.fileName(name, "csv"),
		ContentType: csvContentType,
		Data:        data,
	}, "", nil
}

func (i impl) XLSX() (File, error) {
	tables, err := i.allTables()
	if err != nil {
		return File{}, err
	}
	sheets := make([]xlsexport.Sheet, 0, len(tables))
	for _, table := range tables {
		sheets = append(sheets, xlsexport.Sheet{Name: table.Title, Headers: table.Headers, Rows: table.Rows})
	}
	buf, err := xlsexport.ExportWorkbook(sheets)
	if err != nil {
		log.WithError(err).Error("xlsx export failed")
		return File{}, err
	}
	return File{
		Name:        i.fileName("all_data", "xlsx"),
		ContentType: xlsxContentType,
		Data:        buf.Bytes(),
	}, nil
}

func (i impl) PDF() (File, error) {
	list, err := i.testimonyStore.ListAll()
	if err != nil {
		return File{}, err
	}
	entries := make([]pdfexport.Entry, 0, len(list))
	for _, rec := range list {
		entries = append(entries, pdfexport.Entry{
			Heading: fmt.Sprintf("%s at %s", rec.FullName, rec.Company),
			Lines: []string{
				fmt.Sprintf("Submitted by %s on %s", rec.Username, formatTime(rec.Timestamp)),
				fmt.Sprintf("University: %s; Department: %s", rec.University, rec.Department),
				fmt.Sprintf("Period: %s to %s; Rating: %d/5", rec.StartDate, rec.EndDate, rec.Rating),
			},
			Notes: rec.Notes,
		})
	}
	data, err := pdfexport.GenerateReport(i.now().Format(timestampLayout), entries)
	if err != nil {
		log.WithError(err).Error("pdf export failed")
		return File{}, err
	}
	return File{
		Name:        i.fileName("testimony_report", "pdf"),
		ContentType: pdfContentType,
		Data:        data,
	}, nil
}

func (i impl) table(entity Entity) (Table, error) {
	switch entity {
	case UsersEntity:
		list, err := i.userStore.List()
		if err != nil {
			return Table{}, errors.Wrap(err, "users load failed")
		}
		return UsersTable(list), nil
	case TestimoniesEntity:
		list, err := i.testimonyStore.ListAll()
		if err != nil {
			return Table{}, errors.Wrap(err, "testimonies load failed")
		}
		return TestimoniesTable(list), nil
	case LogsEntity:
		list, err := i.logStore.ListAll()
		if err != nil {
			return Table{}, errors.Wrap(err, "logs load failed")
		}
		return LogsTable(list), nil
	}
	return Table{}, errors.Errorf("unknown export entity %s", entity)
}

func (i impl) allTables() ([]Table, error) {
	result := []Table{}
	for _, entity := range []Entity{UsersEntity, TestimoniesEntity, LogsEntity} {
		table, err := i.table(entity)
		if err != nil {
			return nil, err
		}
		result = append(result, table)
	}
	return result, nil
}

func (i impl) fileName(name, ext string) string {
	return fmt.Sprintf("%s_%s.%s", name, i.now().Format(fileStampLayout), ext)
}

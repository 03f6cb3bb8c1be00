package portalapimodels

import (
	apimodels "attachment-hub-backend/models/api"
	dbmodels "attachment-hub-backend/models/db"
	"time"
)

type TestimonyData struct {
	FullName     string `json:"full_name" validate:"required,max=255"`
	Company      string `json:"company" validate:"required,max=255"`
	CompanyEmail string `json:"company_email" validate:"omitempty,email"`
	University   string `json:"university" validate:"max=255"`
	StartDate    string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate      string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Department   string `json:"department" validate:"max=255"`
	Rating       int    `json:"rating" validate:"gte=1,lte=5"`
	Notes        string `json:"notes"`
}

func (r TestimonyData) Validate() error {
	return apimodels.ValidateStruct(r)
}

func (r TestimonyData) ToDb(username string) dbmodels.Testimony {
	return dbmodels.Testimony{
		Username:     username,
		FullName:     r.FullName,
		Company:      r.Company,
		CompanyEmail: r.CompanyEmail,
		University:   r.University,
		StartDate:    r.StartDate,
		EndDate:      r.EndDate,
		Department:   r.Department,
		Rating:       r.Rating,
		Notes:        r.Notes,
	}
}

func (r TestimonyData) ToUpdMap() map[string]interface{} {
	return map[string]interface{}{
		"full_name":     r.FullName,
		"company":       r.Company,
		"company_email": r.CompanyEmail,
		"university":    r.University,
		"start_date":    r.StartDate,
		"end_date":      r.EndDate,
		"department":    r.Department,
		"rating":        r.Rating,
		"notes":         r.Notes,
	}
}

// AdminTestimonyData lets an administrator file or correct a testimony on behalf of a user.
type AdminTestimonyData struct {
	Username string `json:"username" validate:"required,max=150"`
	TestimonyData
}

func (r AdminTestimonyData) Validate() error {
	return apimodels.ValidateStruct(r)
}

func (r AdminTestimonyData) ToUpdMap() map[string]interface{} {
	updMap := r.TestimonyData.ToUpdMap()
	updMap["username"] = r.Username
	return updMap
}

type TestimonyFilter struct {
	Q     string `query:"q"` // full_name, company, university, notes
	Page  int    `query:"page"`
	Limit int    `query:"limit"`
}

func (f TestimonyFilter) GetPage() (page, limit int) {
	return apimodels.Pagination{Page: f.Page, Limit: f.Limit}.GetPage()
}

type TestimonyView struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	FullName     string    `json:"full_name"`
	Company      string    `json:"company"`
	CompanyEmail string    `json:"company_email"`
	University   string    `json:"university"`
	StartDate    string    `json:"start_date"`
	EndDate      string    `json:"end_date"`
	Department   string    `json:"department"`
	Rating       int       `json:"rating"`
	Notes        string    `json:"notes"`
	Timestamp    time.Time `json:"timestamp"`
}

func TestimonyConvert(rec dbmodels.Testimony) TestimonyView {
	return TestimonyView{
		ID:           rec.ID,
		Username:     rec.Username,
		FullName:     rec.FullName,
		Company:      rec.Company,
		CompanyEmail: rec.CompanyEmail,
		University:   rec.University,
		StartDate:    rec.StartDate,
		EndDate:      rec.EndDate,
		Department:   rec.Department,
		Rating:       rec.Rating,
		Notes:        rec.Notes,
		Timestamp:    rec.Timestamp,
	}
}

type LogView struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Action    string    `json:"action"`
	Details   string    `json:"details"`
	Timestamp time.Time `json:"timestamp"`
}

func LogConvert(rec dbmodels.AuditLog) LogView {
	return LogView{
		ID:        rec.ID,
		Username:  rec.Username,
		Action:    string(rec.Action),
		Details:   rec.Details,
		Timestamp: rec.Timestamp,
	}
}

type Home struct {
	TestimonyCount int64           `json:"testimony_count"`
	UserCount      int64           `json:"user_count"`
	Latest         []TestimonyView `json:"latest"`
}

type Dashboard struct {
	Username    string          `json:"username"`
	FullName    string          `json:"full_name"`
	Testimonies []TestimonyView `json:"testimonies"`
}

type ChatRequest struct {
	Message string `json:"message" validate:"required,max=2000"`
}

func (r ChatRequest) Validate() error {
	return apimodels.ValidateStruct(r)
}

type ChatMessage struct {
	Role string `json:"role"` // You / Assistant
	Text string `json:"text"`
}

type ChatResponse struct {
	Reply   string        `json:"reply"`
	History []ChatMessage `json:"history"`
}

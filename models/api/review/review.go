package reviewapimodels

import (
	apimodels "attachment-hub-backend/models/api"
	dbmodels "attachment-hub-backend/models/db"
	"strings"
	"time"
)

type ReviewData struct {
	CompanyID string `json:"company_id" validate:"required"`
	Name      string `json:"name" validate:"required,max=150"`
	Rating    int    `json:"rating" validate:"gte=1,lte=5"`
	Comment   string `json:"comment"`
}

func (r ReviewData) Validate() error {
	return apimodels.ValidateStruct(r)
}

func (r ReviewData) ToDb() dbmodels.CompanyReview {
	return dbmodels.CompanyReview{
		CompanyID: r.CompanyID,
		Name:      strings.TrimSpace(r.Name),
		Rating:    r.Rating,
		Comment:   r.Comment,
		Approved:  false,
	}
}

type ReviewView struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"company_id"`
	CompanyName string    `json:"company_name,omitempty"`
	Name        string    `json:"name"`
	Rating      int       `json:"rating"`
	Comment     string    `json:"comment"`
	Approved    bool      `json:"approved"`
	CreatedAt   time.Time `json:"created_at"`
}

func ReviewConvert(rec dbmodels.CompanyReview) ReviewView {
	result := ReviewView{
		ID:        rec.ID,
		CompanyID: rec.CompanyID,
		Name:      rec.Name,
		Rating:    rec.Rating,
		Comment:   rec.Comment,
		Approved:  rec.Approved,
		CreatedAt: rec.CreatedAt,
	}
	if rec.Company != nil {
		result.CompanyName = rec.Company.Name
	}
	return result
}

type SubmitResult struct {
	ReviewID string `json:"review_id"`
	Message  string `json:"message"`
}

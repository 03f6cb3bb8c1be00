package portalapimodels

import (
	apimodels "attachment-hub-backend/models/api"
	dbmodels "attachment-hub-backend/models/db"
	"strings"
	"time"
)

type Signup struct {
	FullName   string `json:"full_name" validate:"required,max=255"`
	Age        int    `json:"age" validate:"omitempty,gte=0,lte=150"`
	Dob        string `json:"dob" validate:"omitempty,datetime=2006-01-02"`
	Course     string `json:"course" validate:"max=255"`
	Year       string `json:"year" validate:"max=20"`
	Email      string `json:"email" validate:"required,email"`
	University string `json:"university" validate:"max=255"`
	Username   string `json:"username" validate:"required,max=150"`
	Password   string `json:"password" validate:"required,min=6"`
}

func (r Signup) Validate() error {
	return apimodels.ValidateStruct(r)
}

func (r Signup) ToDb(passwordHash string) dbmodels.PortalUser {
	return dbmodels.PortalUser{
		FullName:   strings.TrimSpace(r.FullName),
		Age:        r.Age,
		Dob:        r.Dob,
		Course:     r.Course,
		Year:       r.Year,
		Email:      strings.TrimSpace(r.Email),
		University: r.University,
		Username:   strings.TrimSpace(r.Username),
		Password:   passwordHash,
	}
}

type Login struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (r Login) Validate() error {
	return apimodels.ValidateStruct(r)
}

type ForgotPassword struct {
	Email string `json:"email" validate:"required,email"`
}

func (r ForgotPassword) Validate() error {
	return apimodels.ValidateStruct(r)
}

type ProfileUpdate struct {
	Email string `json:"email" validate:"required,email"`
}

func (r ProfileUpdate) Validate() error {
	return apimodels.ValidateStruct(r)
}

// UserUpdate is the admin edit form; empty password keeps the current one.
type UserUpdate struct {
	FullName   string `json:"full_name" validate:"required,max=255"`
	Age        int    `json:"age" validate:"omitempty,gte=0,lte=150"`
	Dob        string `json:"dob" validate:"omitempty,datetime=2006-01-02"`
	Course     string `json:"course" validate:"max=255"`
	Year       string `json:"year" validate:"max=20"`
	Email      string `json:"email" validate:"required,email"`
	University string `json:"university" validate:"max=255"`
	Password   string `json:"password" validate:"omitempty,min=6"`
}

func (r UserUpdate) Validate() error {
	return apimodels.ValidateStruct(r)
}

func (r UserUpdate) ToUpdMap() map[string]interface{} {
	return map[string]interface{}{
		"full_name":  strings.TrimSpace(r.FullName),
		"age":        r.Age,
		"dob":        r.Dob,
		"course":     r.Course,
		"year":       r.Year,
		"email":      strings.TrimSpace(r.Email),
		"university": r.University,
	}
}

type UserView struct {
	ID         string    `json:"id"`
	FullName   string    `json:"full_name"`
	Age        int       `json:"age"`
	Dob        string    `json:"dob"`
	Course     string    `json:"course"`
	Year       string    `json:"year"`
	Email      string    `json:"email"`
	University string    `json:"university"`
	Username   string    `json:"username"`
	CreatedAt  time.Time `json:"created_at"`
}

func UserConvert(rec dbmodels.PortalUser) UserView {
	return UserView{
		ID:         rec.ID,
		FullName:   rec.FullName,
		Age:        rec.Age,
		Dob:        rec.Dob,
		Course:     rec.Course,
		Year:       rec.Year,
		Email:      rec.Email,
		University: rec.University,
		Username:   rec.Username,
		CreatedAt:  rec.CreatedAt,
	}
}

type SessionResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

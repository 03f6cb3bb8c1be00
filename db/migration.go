package db

import (
	dbmodels "attachment-hub-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("running migrations")
	if err := DB.AutoMigrate(&dbmodels.User{}); err != nil {
		return errors.Wrap(err, "migrate User")
	}
	if err := DB.AutoMigrate(&dbmodels.CompanyProfile{}, &dbmodels.StudentProfile{}); err != nil {
		return errors.Wrap(err, "migrate profiles")
	}
	if err := DB.AutoMigrate(&dbmodels.CompanyVerifyToken{}); err != nil {
		return errors.Wrap(err, "migrate CompanyVerifyToken")
	}
	if err := DB.AutoMigrate(&dbmodels.Vacancy{}, &dbmodels.JobPost{}); err != nil {
		return errors.Wrap(err, "migrate postings")
	}
	if err := DB.AutoMigrate(&dbmodels.JobApplication{}); err != nil {
		return errors.Wrap(err, "migrate JobApplication")
	}
	if err := DB.AutoMigrate(
		&dbmodels.ApplicationPersonal{},
		&dbmodels.ApplicationEducation{},
		&dbmodels.ApplicationCertification{},
		&dbmodels.ApplicationEmployment{},
		&dbmodels.ApplicationReference{},
		&dbmodels.ApplicationQuestion{},
		&dbmodels.ApplicationCriminalHistory{},
		&dbmodels.ApplicationReferral{},
		&dbmodels.ApplicationEEO{},
	); err != nil {
		return errors.Wrap(err, "migrate application sections")
	}
	if err := DB.AutoMigrate(&dbmodels.CompanyReview{}); err != nil {
		return errors.Wrap(err, "migrate CompanyReview")
	}
	if err := DB.AutoMigrate(&dbmodels.PortalUser{}, &dbmodels.Testimony{}, &dbmodels.AuditLog{}); err != nil {
		return errors.Wrap(err, "migrate portal tables")
	}
	log.Info("migrations finished")
	return nil
}

package db

import (
	"attachment-hub-backend/config"
	accountsstore "attachment-hub-backend/lib/accounts/store"
	authutils "attachment-hub-backend/lib/utils/auth-utils"
	"attachment-hub-backend/models"
	dbmodels "attachment-hub-backend/models/db"

	log "github.com/sirupsen/logrus"
)

func InitPreload() {
	addAdmin()
}

func addAdmin() {
	if config.Conf.Admin.Email == "" || config.Conf.Admin.Password == "" {
		log.Warn("admin account not created, ADMIN_EMAIL/ADMIN_PASSWORD not set")
		return
	}
	store := accountsstore.NewInstance(DB)
	existedRec, err := store.FindByLogin(config.Conf.Admin.Email)
	if err != nil {
		log.WithError(err).Error("admin account bootstrap failed")
		return
	}
	if existedRec != nil {
		return
	}
	hash, err := authutils.HashPassword(config.Conf.Admin.Password)
	if err != nil {
		log.WithError(err).Error("admin account bootstrap failed")
		return
	}
	rec := dbmodels.User{
		Username: config.Conf.Admin.Username,
		Email:    config.Conf.Admin.Email,
		Password: hash,
		Role:     models.AdminRole,
		IsActive: true,
	}
	_, err = store.Create(rec)
	if err != nil {
		log.WithError(err).Error("admin account bootstrap failed")
		return
	}
	log.Info("admin account created")
}

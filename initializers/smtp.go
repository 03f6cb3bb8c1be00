package initializers

import (
	"attachment-hub-backend/config"
	"attachment-hub-backend/lib/smtp"
)

func InitSmtp() {
	err := smtp.Connect(smtp.Params{
		User:       config.Conf.Smtp.User,
		Password:   config.Conf.Smtp.Password,
		Host:       config.Conf.Smtp.Host,
		Port:       config.Conf.Smtp.Port,
		TLSEnabled: *config.Conf.Smtp.TLSEnabled,
		From:       config.Conf.Smtp.From,
	})
	if err != nil {
		panic(err.Error())
	}
}

package smtp

import (
	"bytes"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
	log "github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
)

var Instance Provider

type Provider interface {
	SendEMail(to, subject, message string) error
	// SendAsync never blocks the caller; delivery failures are only logged.
	SendAsync(to, subject, message string)
}

type Params struct {
	User       string
	Password   string
	Host       string
	Port       string
	TLSEnabled bool
	From       string
}

func Connect(params Params) error {
	Instance = &impl{
		user:       params.User,
		password:   params.Password,
		host:       params.Host,
		port:       params.Port,
		tlsEnabled: params.TLSEnabled,
		from:       params.From,
	}
	return nil
}

type impl struct {
	user       string
	password   string
	host       string
	port       string
	tlsEnabled bool
	from       string
}

func (i impl) SendEMail(to, subject, message string) (err error) {
	logger := log.
		WithField("to", to).
		WithField("subject", subject)
	if i.user == "" || i.host == "" || i.port == "" {
		logger.Warn("email not sent, smtp client is not configured")
		return nil
	}
	body, err := composeMessage(i.from, to, subject, message)
	if err != nil {
		logger.WithError(err).Error("email compose failed")
		return err
	}
	auth := sasl.NewPlainClient("", i.user, i.password)
	if i.tlsEnabled {
		err = smtp.SendMailTLS(i.host+":"+i.port, auth, i.from, []string{to}, bytes.NewReader(body))
	} else {
		err = smtp.SendMail(i.host+":"+i.port, auth, i.from, []string{to}, bytes.NewReader(body))
	}
	if err != nil {
		logger.WithError(err).Error("email send failed")
		return err
	}
	logger.Info("email sent")
	return nil
}

func (i impl) SendAsync(to, subject, message string) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.WithField("to", to).Errorf("email send panic: %v", r)
			}
		}()
		_ = i.SendEMail(to, subject, message)
	}()
}

func composeMessage(from, to, subject, message string) ([]byte, error) {
	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", message)
	buf := bytes.Buffer{}
	_, err := m.WriteTo(&buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

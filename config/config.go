package config

import (
	"github.com/gotify/configor"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr string `default:"" env:"APP_HOST"`
		Port       int    `default:"8080"  env:"APP_PORT"`
		Domain     string `default:"http://localhost:8080" env:"APP_DOMAIN"`
	}
	Database struct {
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"attachment-hub" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
	}
	Auth struct {
		JWTSecret              string `default:"change-me" env:"JWT_SECRET"`
		JWTExpireInSec         int64  `default:"86400" env:"JWT_EXPIRE_IN_SEC"`
		VerifyTokenExpireInSec int64  `default:"259200" env:"VERIFY_TOKEN_EXPIRE_IN_SEC"`
	}
	Smtp struct {
		User       string `default:"" env:"SMTP_USER"`
		Password   string `default:"" env:"SMTP_PASSWORD"`
		Host       string `default:"" env:"SMTP_HOST"`
		Port       string `default:"" env:"SMTP_PORT"`
		TLSEnabled *bool  `default:"true" env:"SMTP_TLS_ENABLED"`
		From       string `default:"no-reply@attachmenthub.local" env:"SMTP_FROM"`
	}
	Redis struct {
		Addr     string `default:"" env:"REDIS_ADDR"`
		Password string `default:"" env:"REDIS_PASSWORD"`
		DB       int    `default:"0" env:"REDIS_DB"`
	}
	S3 struct {
		Endpoint        string `default:"" env:"S3_ENDPOINT"`
		AccessKeyID     string `default:"" env:"S3_ACCESS_KEY_ID"`
		SecretAccessKey string `default:"" env:"S3_SECRET_ACCESS_KEY"`
		BucketName      string `default:"attachment-hub" env:"S3_BUCKET_NAME"`
		UseSSL          *bool  `default:"false" env:"S3_USE_SSL"`
	}
	Review struct {
		// 86400 is what the throttle enforced historically; product has not confirmed the intended window.
		RateLimitWindowSec int64 `default:"86400" env:"REVIEW_RATE_LIMIT_WINDOW_SEC"`
	}
	Cache struct {
		PageTTLSec     int64 `default:"60" env:"PAGE_CACHE_TTL_SEC"`
		ChatHistoryTTL int64 `default:"86400" env:"CHAT_HISTORY_TTL_SEC"`
	}
	Vacancy struct {
		MaxDeadlineDays    int `default:"14" env:"VACANCY_MAX_DEADLINE_DAYS"`
		ArchiveIntervalMin int `default:"60" env:"VACANCY_ARCHIVE_INTERVAL_MIN"`
	}
	Admin struct {
		Username string `default:"admin" env:"ADMIN_USERNAME"`
		Email    string `default:"" env:"ADMIN_EMAIL"`
		Password string `default:"" env:"ADMIN_PASSWORD"`
	}
	Portal struct {
		TempPasswordLength int `default:"10" env:"PORTAL_TEMP_PASSWORD_LENGTH"`
	}
	YandexGPT struct {
		IAMToken  string `default:"" env:"YANDEX_GPT_IAM_TOKEN"`
		CatalogID string `default:"" env:"YANDEX_GPT_CATALOG_ID"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}

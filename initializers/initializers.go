package initializers

import (
	"attachment-hub-backend/config"
	"attachment-hub-backend/fiberlog"
	accountshandler "attachment-hub-backend/lib/accounts"
	applicationhandler "attachment-hub-backend/lib/application"
	companyhandler "attachment-hub-backend/lib/company"
	companyverify "attachment-hub-backend/lib/company-verify"
	exporthandler "attachment-hub-backend/lib/export"
	helpchathandler "attachment-hub-backend/lib/help-chat"
	connectionhub "attachment-hub-backend/lib/help-chat/ws/hub"
	jobhandler "attachment-hub-backend/lib/job"
	moderationhandler "attachment-hub-backend/lib/moderation"
	portaladminhandler "attachment-hub-backend/lib/portal/admin"
	auditloghandler "attachment-hub-backend/lib/portal/audit-log"
	testimonyhandler "attachment-hub-backend/lib/portal/testimony"
	portalusershandler "attachment-hub-backend/lib/portal/users"
	"attachment-hub-backend/lib/rbac"
	reviewhandler "attachment-hub-backend/lib/review"
	studenthandler "attachment-hub-backend/lib/student"
	vacancyhandler "attachment-hub-backend/lib/vacancy"
	vacancyworker "attachment-hub-backend/lib/vacancy/worker"
	"context"
	"time"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3()
	InitSmtp()
	InitCache()
	connectionhub.Init()
	rbac.NewHandler()

	conf := config.Conf
	reviewhandler.NewHandler(time.Duration(conf.Review.RateLimitWindowSec) * time.Second)
	vacancyhandler.NewHandler(conf.Vacancy.MaxDeadlineDays)
	jobhandler.NewHandler()
	accountshandler.NewHandler(conf.Auth.JWTSecret, conf.Auth.JWTExpireInSec)
	companyverify.NewHandler(conf.Auth.JWTSecret, conf.Auth.VerifyTokenExpireInSec)
	studenthandler.NewHandler()
	companyhandler.NewHandler(conf.App.Domain)
	applicationhandler.NewHandler()
	moderationhandler.NewHandler()

	auditloghandler.NewHandler()
	portalusershandler.NewHandler(conf.Auth.JWTSecret, conf.Auth.JWTExpireInSec, conf.Portal.TempPasswordLength)
	testimonyhandler.NewHandler()
	portaladminhandler.NewHandler()
	helpchathandler.NewHandler(time.Duration(conf.Cache.ChatHistoryTTL)*time.Second, conf.YandexGPT.IAMToken, conf.YandexGPT.CatalogID)
	exporthandler.NewHandler()

	go initWorkers(ctx)
}

func initWorkers(ctx context.Context) {
	// retires vacancies whose application deadline has passed
	vacancyworker.StartWorker(ctx, time.Duration(config.Conf.Vacancy.ArchiveIntervalMin)*time.Minute)
}

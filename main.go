package main

import (
	"attachment-hub-backend/config"
	apiv1 "attachment-hub-backend/controllers/v1"
	portalapiv1 "attachment-hub-backend/controllers/v1/portal"
	"attachment-hub-backend/fiberlog"
	"attachment-hub-backend/initializers"
	"attachment-hub-backend/middleware"
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	log "github.com/sirupsen/logrus"
)

const uploadBodyLimit = 10 * 1024 * 1024

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	initializers.InitAllServices(ctx)

	app := fiber.New(fiber.Config{
		BodyLimit: uploadBodyLimit,
	})
	app.Use(fiberRecover.New())

	swaggerCfg := swagger.Config{
		Path:     "/swagger",
		FilePath: "./docs/swagger.json",
	}
	app.Use(swagger.New(swaggerCfg))

	//api
	apiV1 := fiber.New()
	apiV1.Use(fiberlog.New(*initializers.LoggerConfig))
	app.Mount("/api/v1", apiV1)
	apiV1.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PATCH, DELETE, PUT",
	}))
	apiv1.InitAuthApiRouters(apiV1)
	apiv1.InitStudentApiRouters(apiV1)
	apiv1.InitCompanyApiRouters(apiV1)
	apiv1.InitVacancyApiRouters(apiV1)
	apiv1.InitJobApiRouters(apiV1)
	apiv1.InitApplicationApiRouters(apiV1)
	apiv1.InitReviewApiRouters(apiV1)
	apiv1.InitModeratorApiRouters(apiV1)

	//testimony portal
	portal := fiber.New()
	apiV1.Mount("/portal", portal)
	portal.Use(middleware.WithBodyLimit(64 * 1024))
	portalapiv1.InitAuthApiRouters(portal)
	portalapiv1.InitProfileApiRouters(portal)
	portalapiv1.InitTestimonyApiRouters(portal)
	portalapiv1.InitHelpApiRouters(portal)
	portalapiv1.InitAdminApiRouters(portal)

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	wg := sync.WaitGroup{}
	go func() {
		<-c
		wg.Add(1)
		defer wg.Done()
		log.Info("Gracefully shutting down...")
		cancel()
		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error("Error when try gracefully shutting down")
		}
		time.Sleep(time.Second)
		log.Info("Gracefully shutting down finished")
	}()

	// run HTTP server
	if err := app.Listen(fmt.Sprintf("%s:%d", config.Conf.App.ListenAddr, config.Conf.App.Port)); err != nil {
		log.Fatal(err)
	}

	wg.Wait()
	log.Info("HTTP server successfully stopped")
}

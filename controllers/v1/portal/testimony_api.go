package portalapiv1

import (
	"attachment-hub-backend/config"
	"attachment-hub-backend/controllers"
	"attachment-hub-backend/lib/cache"
	testimonyhandler "attachment-hub-backend/lib/portal/testimony"
	"attachment-hub-backend/middleware"
	apimodels "attachment-hub-backend/models/api"
	portalapimodels "attachment-hub-backend/models/api/portal"
	"time"

	"github.com/gofiber/fiber/v2"
)

type testimonyApiController struct {
	controllers.BaseAPIController
}

func InitTestimonyApiRouters(app *fiber.App) {
	controller := testimonyApiController{}
	pageTTL := time.Duration(config.Conf.Cache.PageTTLSec) * time.Second
	app.Get("home", middleware.PageCache(cache.Instance, pageTTL), controller.home)
	app.Route("testimonies", func(router fiber.Router) {
		router.Get("", middleware.PageCache(cache.Instance, pageTTL), controller.list)
		router.Post("", middleware.AuthorizationRequired(), middleware.PortalUserRequired(), controller.submit)
		router.Get(":id", controller.get)
	})
}

// @Summary Home
// @Tags Portal testimonies
// @Description Totals and the latest testimonies
// @Success 200 {object} apimodels.Response{data=portalapimodels.Home}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/portal/home [get]
func (c *testimonyApiController) home(ctx *fiber.Ctx) error {
	resp, err := testimonyhandler.Instance.Home()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load the home page")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary List
// @Tags Portal testimonies
// @Description Newest first, q searches name, company, university and notes
// @Param   q          		query    string  				    	false        "search text"
// @Param   page            query    int  				    	    false        "page"
// @Param   limit           query    int  				    	    false        "rows per page"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]portalapimodels.TestimonyView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/portal/testimonies [get]
func (c *testimonyApiController) list(ctx *fiber.Ctx) error {
	var filter portalapimodels.TestimonyFilter
	if err := c.QueryParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := testimonyhandler.Instance.List(filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load testimonies")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Submit
// @Tags Portal testimonies
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		portalapimodels.TestimonyData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/portal/testimonies [post]
func (c *testimonyApiController) submit(ctx *fiber.Ctx) error {
	var payload portalapimodels.TestimonyData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, hMsg, err := testimonyhandler.Instance.Submit(middleware.GetUserName(ctx), payload)
	return c.SendResult(ctx, id, hMsg, err, "failed to submit the testimony")
}

// @Summary Get by ID
// @Tags Portal testimonies
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=portalapimodels.TestimonyView}
// @Failure 404
// @Failure 500 {object} apimodels.Response
// @router /api/v1/portal/testimonies/{id} [get]
func (c *testimonyApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := testimonyhandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load the testimony")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

package portalapiv1

import (
	"attachment-hub-backend/config"
	"attachment-hub-backend/controllers"
	"attachment-hub-backend/lib/cache"
	portalusershandler "attachment-hub-backend/lib/portal/users"
	"attachment-hub-backend/middleware"
	apimodels "attachment-hub-backend/models/api"
	portalapimodels "attachment-hub-backend/models/api/portal"
	"time"

	"github.com/gofiber/fiber/v2"
)

type profileApiController struct {
	controllers.BaseAPIController
}

func InitProfileApiRouters(app *fiber.App) {
	controller := profileApiController{}
	pageTTL := time.Duration(config.Conf.Cache.PageTTLSec) * time.Second
	app.Get("dashboard", middleware.AuthorizationRequired(), middleware.PortalUserRequired(),
		middleware.PageCache(cache.Instance, pageTTL), controller.dashboard)
	app.Route("profile", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired(), middleware.PortalUserRequired())
		router.Get("", controller.get)
		router.Put("", controller.update)
		router.Delete("", controller.delete)
	})
}

// @Summary Dashboard
// @Tags Portal profile
// @Description Own testimonies
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=portalapimodels.Dashboard}
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/portal/dashboard [get]
func (c *profileApiController) dashboard(ctx *fiber.Ctx) error {
	resp, err := portalusershandler.Instance.Dashboard(middleware.GetUserName(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load the dashboard")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Get profile
// @Tags Portal profile
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=portalapimodels.UserView}
// @Failure 401
// @Failure 404
// @Failure 500 {object} apimodels.Response
// @router /api/v1/portal/profile [get]
func (c *profileApiController) get(ctx *fiber.Ctx) error {
	resp, err := portalusershandler.Instance.GetProfile(middleware.GetUserName(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load the profile")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Update email
// @Tags Portal profile
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		portalapimodels.ProfileUpdate	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/portal/profile [put]
func (c *profileApiController) update(ctx *fiber.Ctx) error {
	var payload portalapimodels.ProfileUpdate
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	hMsg, err := portalusershandler.Instance.UpdateProfile(middleware.GetUserName(ctx), payload)
	return c.SendResult(ctx, nil, hMsg, err, "failed to update the profile")
}

// @Summary Delete account
// @Tags Portal profile
// @Description Removes the account with its testimonies
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response
// @Failure 401
// @Failure 404
// @Failure 500 {object} apimodels.Response
// @router /api/v1/portal/profile [delete]
func (c *profileApiController) delete(ctx *fiber.Ctx) error {
	err := portalusershandler.Instance.DeleteAccount(middleware.GetUserName(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to delete the account")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

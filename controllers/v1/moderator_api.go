package apiv1

import (
	"attachment-hub-backend/controllers"
	moderationhandler "attachment-hub-backend/lib/moderation"
	"attachment-hub-backend/middleware"
	apimodels "attachment-hub-backend/models/api"
	moderationapimodels "attachment-hub-backend/models/api/moderation"

	"github.com/gofiber/fiber/v2"
)

type moderatorApiController struct {
	controllers.BaseAPIController
}

func InitModeratorApiRouters(app *fiber.App) {
	controller := moderatorApiController{}
	app.Route("moderator", func(router fiber.Router) {
		router.Get("dashboard", withHubAccess(controller.dashboard)...)
		router.Post("dashboard", withHubAccess(controller.moderate)...)
	})
}

// @Summary Moderation queue
// @Tags Moderation
// @Description Companies awaiting approval, pending reviews and active jobs
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=moderationapimodels.Dashboard}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/moderator/dashboard [get]
func (c *moderatorApiController) dashboard(ctx *fiber.Ctx) error {
	resp, err := moderationhandler.Instance.Dashboard()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load the moderation queue")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Moderate
// @Tags Moderation
// @Description Approve or verify a company, approve or reject a review, deactivate a job. Unknown combinations are ignored
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 moderationapimodels.ModerationRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=moderationapimodels.ModerationResult}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/moderator/dashboard [post]
func (c *moderatorApiController) moderate(ctx *fiber.Ctx) error {
	var payload moderationapimodels.ModerationRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, hMsg, err := moderationhandler.Instance.Moderate(middleware.GetUserID(ctx), payload)
	return c.SendResult(ctx, resp, hMsg, err, "moderation failed")
}

package apiv1

import (
	"attachment-hub-backend/controllers"
	applicationhandler "attachment-hub-backend/lib/application"
	"attachment-hub-backend/middleware"
	apimodels "attachment-hub-backend/models/api"
	applicationapimodels "attachment-hub-backend/models/api/application"

	"github.com/gofiber/fiber/v2"
)

type applicationApiController struct {
	controllers.BaseAPIController
}

func InitApplicationApiRouters(app *fiber.App) {
	controller := applicationApiController{}
	app.Route("applications/:id", func(router fiber.Router) {
		router.Get("", withHubAccess(controller.get)...)
		router.Get("resume", withHubAccess(controller.resume)...)
		router.Put("status", withHubAccess(controller.updateStatus)...)
	})
}

// @Summary Get by ID
// @Tags Applications
// @Description Visible to the applicant and the company that owns the job
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=applicationapimodels.ApplicationDetail}
// @Failure 403
// @Failure 404
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applications/{id} [get]
func (c *applicationApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := applicationhandler.Instance.GetByID(middleware.GetUserID(ctx), middleware.GetUserRole(ctx), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load the application")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Resume snapshot
// @Tags Applications
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200
// @Failure 403
// @Failure 404
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applications/{id}/resume [get]
func (c *applicationApiController) resume(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	data, contentType, err := applicationhandler.Instance.GetResume(ctx.UserContext(), middleware.GetUserID(ctx), middleware.GetUserRole(ctx), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load the resume")
	}
	return c.SendFile(ctx, "resume", contentType, data, true)
}

// @Summary Change status
// @Tags Applications
// @Description The applicant is notified by email
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param	body body	 applicationapimodels.StatusUpdate	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applications/{id}/status [put]
func (c *applicationApiController) updateStatus(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload applicationapimodels.StatusUpdate
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	hMsg, err := applicationhandler.Instance.UpdateStatus(middleware.GetUserID(ctx), middleware.GetUserRole(ctx), id, payload)
	return c.SendResult(ctx, nil, hMsg, err, "failed to update the application status")
}

package apiv1

import (
	"attachment-hub-backend/controllers"
	applicationhandler "attachment-hub-backend/lib/application"
	studenthandler "attachment-hub-backend/lib/student"
	"attachment-hub-backend/middleware"
	apimodels "attachment-hub-backend/models/api"
	authapimodels "attachment-hub-backend/models/api/auth"
	studentapimodels "attachment-hub-backend/models/api/student"

	"github.com/gofiber/fiber/v2"
)

type studentApiController struct {
	controllers.BaseAPIController
}

func InitStudentApiRouters(app *fiber.App) {
	controller := studentApiController{}
	app.Route("students", func(router fiber.Router) {
		router.Post("register", controller.register)
		router.Get("dashboard", withHubAccess(controller.dashboard)...)
		router.Route("profile", func(profile fiber.Router) {
			profile.Get("", withHubAccess(controller.getProfile)...)
			profile.Put("", withHubAccess(controller.updateProfile)...)
			profile.Get("resume", withHubAccess(controller.getResume)...)
			profile.Post("resume", withHubAccess(controller.uploadResume)...)
		})
	})
}

// @Summary Student registration
// @Tags Students
// @Description Creates an active student account and returns a session
// @Param	body body	 authapimodels.StudentRegister	true	"request body"
// @Success 200 {object} apimodels.Response{data=authapimodels.JWTResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/students/register [post]
func (c *studentApiController) register(ctx *fiber.Ctx) error {
	var payload authapimodels.StudentRegister
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, hMsg, err := studenthandler.Instance.Register(payload)
	return c.SendResult(ctx, resp, hMsg, err, "student registration failed")
}

// @Summary Student dashboard
// @Tags Students
// @Description Own applications with job and company
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]applicationapimodels.ApplicationView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/students/dashboard [get]
func (c *studentApiController) dashboard(ctx *fiber.Ctx) error {
	list, err := applicationhandler.Instance.ListByStudent(middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load applications")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Get profile
// @Tags Students
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=studentapimodels.StudentProfileView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/students/profile [get]
func (c *studentApiController) getProfile(ctx *fiber.Ctx) error {
	resp, err := studenthandler.Instance.GetProfile(middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load the profile")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Update profile
// @Tags Students
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 studentapimodels.StudentProfileData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/students/profile [put]
func (c *studentApiController) updateProfile(ctx *fiber.Ctx) error {
	var payload studentapimodels.StudentProfileData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	hMsg, err := studenthandler.Instance.UpdateProfile(middleware.GetUserID(ctx), payload)
	return c.SendResult(ctx, nil, hMsg, err, "failed to update the profile")
}

// @Summary Upload resume
// @Tags Students
// @Description PDF or Word document, replaces the previous resume
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   resume				formData	file 	true 	"Resume"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/students/profile/resume [post]
func (c *studentApiController) uploadResume(ctx *fiber.Ctx) error {
	file, err := c.ReadFormFile(ctx, "resume")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	hMsg, err := studenthandler.Instance.UploadResume(ctx.UserContext(), middleware.GetUserID(ctx), file.Name, file.ContentType, file.Data)
	return c.SendResult(ctx, nil, hMsg, err, "failed to upload the resume")
}

// @Summary Download resume
// @Tags Students
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200
// @Failure 403
// @Failure 404
// @Failure 500 {object} apimodels.Response
// @router /api/v1/students/profile/resume [get]
func (c *studentApiController) getResume(ctx *fiber.Ctx) error {
	data, contentType, err := studenthandler.Instance.GetResume(ctx.UserContext(), middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load the resume")
	}
	return c.SendFile(ctx, "resume", contentType, data, false)
}

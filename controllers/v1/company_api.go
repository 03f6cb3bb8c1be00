package apiv1

import (
	"attachment-hub-backend/controllers"
	companyhandler "attachment-hub-backend/lib/company"
	"attachment-hub-backend/middleware"
	apimodels "attachment-hub-backend/models/api"
	companyapimodels "attachment-hub-backend/models/api/company"

	"github.com/gofiber/fiber/v2"
)

type companyApiController struct {
	controllers.BaseAPIController
}

func InitCompanyApiRouters(app *fiber.App) {
	controller := companyApiController{}
	app.Route("companies", func(router fiber.Router) {
		router.Post("register", controller.register)
		router.Get("verify/:uid/:token", controller.verify)
		router.Get("dashboard", withHubAccess(controller.dashboard)...)
		router.Route("profile", func(profile fiber.Router) {
			profile.Get("", withHubAccess(controller.getProfile)...)
			profile.Put("", withHubAccess(controller.updateProfile)...)
			profile.Post("logo", withHubAccess(controller.uploadLogo)...)
		})
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.publicProfile)
			idRoute.Get("logo", controller.getLogo)
		})
	})
}

// @Summary Company registration
// @Tags Companies
// @Description Creates an inactive company account and mails the verification link
// @Param	body body	 companyapimodels.CompanyRegister	true	"request body"
// @Success 200 {object} apimodels.Response{data=companyapimodels.RegisterResult}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/companies/register [post]
func (c *companyApiController) register(ctx *fiber.Ctx) error {
	var payload companyapimodels.CompanyRegister
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, hMsg, err := companyhandler.Instance.Register(payload)
	return c.SendResult(ctx, resp, hMsg, err, "company registration failed")
}

// @Summary Verify company email
// @Tags Companies
// @Description Single use link from the registration email
// @Param   uid          		path    string  				    	true         "encoded account id"
// @Param   token          		path    string  				    	true         "verification token"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/companies/verify/{uid}/{token} [get]
func (c *companyApiController) verify(ctx *fiber.Ctx) error {
	uid, err := c.GetParam(ctx, "uid")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	token, err := c.GetParam(ctx, "token")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	message, hMsg, err := companyhandler.Instance.Verify(uid, token)
	return c.SendResult(ctx, message, hMsg, err, "company verification failed")
}

// @Summary Company dashboard
// @Tags Companies
// @Description Own vacancies and jobs. Requires a verified and approved company
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=companyapimodels.Dashboard}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/companies/dashboard [get]
func (c *companyApiController) dashboard(ctx *fiber.Ctx) error {
	resp, hMsg, err := companyhandler.Instance.Dashboard(middleware.GetUserID(ctx))
	return c.SendResult(ctx, resp, hMsg, err, "failed to load the dashboard")
}

// @Summary Get own profile
// @Tags Companies
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=companyapimodels.CompanyView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/companies/profile [get]
func (c *companyApiController) getProfile(ctx *fiber.Ctx) error {
	resp, err := companyhandler.Instance.GetProfile(middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load the company profile")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Update own profile
// @Tags Companies
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 companyapimodels.CompanyProfileUpdate	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/companies/profile [put]
func (c *companyApiController) updateProfile(ctx *fiber.Ctx) error {
	var payload companyapimodels.CompanyProfileUpdate
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	hMsg, err := companyhandler.Instance.UpdateProfile(middleware.GetUserID(ctx), payload)
	return c.SendResult(ctx, nil, hMsg, err, "failed to update the company profile")
}

// @Summary Upload logo
// @Tags Companies
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   logo				formData	file 	true 	"Logo image"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/companies/profile/logo [post]
func (c *companyApiController) uploadLogo(ctx *fiber.Ctx) error {
	file, err := c.ReadFormFile(ctx, "logo")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	hMsg, err := companyhandler.Instance.UploadLogo(ctx.UserContext(), middleware.GetUserID(ctx), file.Name, file.ContentType, file.Data)
	return c.SendResult(ctx, nil, hMsg, err, "failed to upload the logo")
}

// @Summary Public company profile
// @Tags Companies
// @Description Open attachments or jobs, average rating and latest approved reviews
// @Param   id          		path    string  				    	true         "company ID"
// @Param   tab          		query   string  				    	false        "attachments or jobs"
// @Success 200 {object} apimodels.Response{data=companyapimodels.PublicProfile}
// @Failure 404
// @Failure 500 {object} apimodels.Response
// @router /api/v1/companies/{id} [get]
func (c *companyApiController) publicProfile(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tab := companyapimodels.PublicProfileTab(ctx.Query("tab"))
	resp, err := companyhandler.Instance.PublicProfile(id, tab)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load the company")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Company logo
// @Tags Companies
// @Param   id          		path    string  				    	true         "company ID"
// @Success 200
// @Failure 404
// @Failure 500 {object} apimodels.Response
// @router /api/v1/companies/{id}/logo [get]
func (c *companyApiController) getLogo(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	data, contentType, err := companyhandler.Instance.GetLogo(ctx.UserContext(), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load the logo")
	}
	return c.SendFile(ctx, "logo", contentType, data, false)
}

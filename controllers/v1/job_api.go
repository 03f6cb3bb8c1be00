package apiv1

import (
	"attachment-hub-backend/controllers"
	applicationhandler "attachment-hub-backend/lib/application"
	jobhandler "attachment-hub-backend/lib/job"
	vacancyhandler "attachment-hub-backend/lib/vacancy"
	"attachment-hub-backend/middleware"
	apimodels "attachment-hub-backend/models/api"
	applicationapimodels "attachment-hub-backend/models/api/application"
	jobapimodels "attachment-hub-backend/models/api/job"
	vacancyapimodels "attachment-hub-backend/models/api/vacancy"

	"github.com/gofiber/fiber/v2"
)

type jobApiController struct {
	controllers.BaseAPIController
}

func InitJobApiRouters(app *fiber.App) {
	controller := jobApiController{}
	app.Route("jobs", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Post("", withHubAccess(controller.create)...)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", withHubAccess(controller.update)...)
			idRoute.Put("deactivate", withHubAccess(controller.deactivate)...)
			idRoute.Get("applicants", withHubAccess(controller.applicants)...)
			idRoute.Route("apply", func(applyRoute fiber.Router) {
				applyRoute.Get("easy", withHubAccess(controller.getEasyApply)...)
				applyRoute.Post("easy", withHubAccess(controller.easyApply)...)
				applyRoute.Get("full", withHubAccess(controller.getStandardApply)...)
				applyRoute.Post("full", withHubAccess(controller.standardApply)...)
			})
		})
	})
}

// @Summary List
// @Tags Jobs
// @Description Active jobs. mode=attachments returns the vacancy list instead
// @Param   mode          	query    string  				    	false        "attachments"
// @Param   q          		query    string  				    	false        "title or department"
// @Param   company         query    string  				    	false        "company name"
// @Param   exp             query    string  				    	false        "experience level"
// @Param   type            query    string  				    	false        "job type"
// @Param   remote          query    string  				    	false        "1 keeps remote jobs"
// @Param   smin            query    number  				    	false        "minimal salary"
// @Param   smax            query    number  				    	false        "maximal salary"
// @Param   page            query    int  				    	    false        "page"
// @Param   limit           query    int  				    	    false        "rows per page"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]jobapimodels.JobView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/jobs [get]
func (c *jobApiController) list(ctx *fiber.Ctx) error {
	var filter jobapimodels.JobFilter
	if err := c.QueryParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if filter.Mode == jobapimodels.AttachmentsMode {
		list, rowCount, err := vacancyhandler.Instance.List(vacancyapimodels.VacancyFilter{
			Q:        filter.Q,
			Company:  filter.Company,
			Verified: filter.Verified,
			Page:     filter.Page,
		})
		if err != nil {
			return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load vacancies")
		}
		return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
	}
	list, rowCount, err := jobhandler.Instance.List(filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load jobs")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Create
// @Tags Jobs
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 jobapimodels.JobData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/jobs [post]
func (c *jobApiController) create(ctx *fiber.Ctx) error {
	var payload jobapimodels.JobData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, hMsg, err := jobhandler.Instance.Create(middleware.GetUserID(ctx), middleware.GetUserRole(ctx), payload)
	return c.SendResult(ctx, id, hMsg, err, "failed to create the job")
}

// @Summary Update
// @Tags Jobs
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 jobapimodels.JobData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404
// @Failure 500 {object} apimodels.Response
// @router /api/v1/jobs/{id} [put]
func (c *jobApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload jobapimodels.JobData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	hMsg, err := jobhandler.Instance.Update(middleware.GetUserID(ctx), middleware.GetUserRole(ctx), id, payload)
	return c.SendResult(ctx, nil, hMsg, err, "failed to update the job")
}

// @Summary Get by ID
// @Tags Jobs
// @Description Inactive jobs are not found
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=jobapimodels.JobView}
// @Failure 404
// @Failure 500 {object} apimodels.Response
// @router /api/v1/jobs/{id} [get]
func (c *jobApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := jobhandler.Instance.GetActive(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load the job")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Deactivate
// @Tags Jobs
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404
// @Failure 500 {object} apimodels.Response
// @router /api/v1/jobs/{id}/deactivate [put]
func (c *jobApiController) deactivate(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	hMsg, err := jobhandler.Instance.Deactivate(middleware.GetUserID(ctx), middleware.GetUserRole(ctx), id)
	return c.SendResult(ctx, nil, hMsg, err, "failed to deactivate the job")
}

// @Summary Applicants
// @Tags Jobs
// @Description Applications to a job owned by the current company
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "job ID"
// @Param   status          query    string  				    	false        "application status"
// @Param   q          		query    string  				    	false        "username, email or cover letter"
// @Param   page            query    int  				    	    false        "page"
// @Param   limit           query    int  				    	    false        "rows per page"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]applicationapimodels.ApplicationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404
// @Failure 500 {object} apimodels.Response
// @router /api/v1/jobs/{id}/applicants [get]
func (c *jobApiController) applicants(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var filter applicationapimodels.ApplicantFilter
	if err = c.QueryParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = filter.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := applicationhandler.Instance.ListApplicants(middleware.GetUserID(ctx), middleware.GetUserRole(ctx), id, filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load applicants")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Easy apply form
// @Tags Applications
// @Description Prefilled with the default cover letter from the profile
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "job ID"
// @Success 200 {object} apimodels.Response{data=applicationapimodels.EasyApplyForm}
// @Failure 403
// @Failure 404
// @Failure 500 {object} apimodels.Response
// @router /api/v1/jobs/{id}/apply/easy [get]
func (c *jobApiController) getEasyApply(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := applicationhandler.Instance.GetEasyApply(middleware.GetUserID(ctx), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load the application form")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Easy apply
// @Tags Applications
// @Description A repeated application returns an informational message and the existing application
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "job ID"
// @Param	body body	 applicationapimodels.EasyApply	true	"request body"
// @Success 200 {object} apimodels.Response{data=applicationapimodels.EasyApplyResult}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404
// @Failure 500 {object} apimodels.Response
// @router /api/v1/jobs/{id}/apply/easy [post]
func (c *jobApiController) easyApply(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload applicationapimodels.EasyApply
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, hMsg, err := applicationhandler.Instance.EasyApply(ctx.UserContext(), middleware.GetUserID(ctx), id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to submit the application")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewInfo(resp.Message, resp))
}

// @Summary Standard apply form
// @Tags Applications
// @Description Returns the saved sections of the draft application, creating the draft on first open
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "job ID"
// @Success 200 {object} apimodels.Response{data=applicationapimodels.StandardApplyForm}
// @Failure 403
// @Failure 404
// @Failure 500 {object} apimodels.Response
// @router /api/v1/jobs/{id}/apply/full [get]
func (c *jobApiController) getStandardApply(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := applicationhandler.Instance.GetStandardApply(ctx.UserContext(), middleware.GetUserID(ctx), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load the application form")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Standard apply
// @Tags Applications
// @Description All sections are validated and saved together
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "job ID"
// @Param	body body	 applicationapimodels.StandardApply	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404
// @Failure 500 {object} apimodels.Response
// @router /api/v1/jobs/{id}/apply/full [post]
func (c *jobApiController) standardApply(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload applicationapimodels.StandardApply
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	applicationID, hMsg, err := applicationhandler.Instance.SubmitStandardApply(ctx.UserContext(), middleware.GetUserID(ctx), id, payload)
	return c.SendResult(ctx, applicationID, hMsg, err, "failed to submit the application")
}

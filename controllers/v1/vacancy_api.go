package apiv1

import (
	"attachment-hub-backend/controllers"
	vacancyhandler "attachment-hub-backend/lib/vacancy"
	"attachment-hub-backend/middleware"
	apimodels "attachment-hub-backend/models/api"
	vacancyapimodels "attachment-hub-backend/models/api/vacancy"

	"github.com/gofiber/fiber/v2"
)

type vacancyApiController struct {
	controllers.BaseAPIController
}

func InitVacancyApiRouters(app *fiber.App) {
	controller := vacancyApiController{}
	app.Route("vacancies", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Post("", withHubAccess(controller.create)...)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", withHubAccess(controller.update)...)
			idRoute.Put("deactivate", withHubAccess(controller.deactivate)...)
		})
	})
}

// @Summary List
// @Tags Vacancies
// @Description Open attachment vacancies, newest first, 12 per page
// @Param   q          		query    string  				    	false        "search text"
// @Param   company         query    string  				    	false        "company name"
// @Param   verified        query    string  				    	false        "1 keeps vacancies of verified companies"
// @Param   page            query    int  				    	    false        "page"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]vacancyapimodels.VacancyView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/vacancies [get]
func (c *vacancyApiController) list(ctx *fiber.Ctx) error {
	var filter vacancyapimodels.VacancyFilter
	if err := c.QueryParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := vacancyhandler.Instance.List(filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load vacancies")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Create
// @Tags Vacancies
// @Description The deadline must fall within 14 days of today
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 vacancyapimodels.VacancyData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/vacancies [post]
func (c *vacancyApiController) create(ctx *fiber.Ctx) error {
	var payload vacancyapimodels.VacancyData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, hMsg, err := vacancyhandler.Instance.Create(middleware.GetUserID(ctx), middleware.GetUserRole(ctx), payload)
	return c.SendResult(ctx, id, hMsg, err, "failed to create the vacancy")
}

// @Summary Update
// @Tags Vacancies
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 vacancyapimodels.VacancyData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404
// @Failure 500 {object} apimodels.Response
// @router /api/v1/vacancies/{id} [put]
func (c *vacancyApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload vacancyapimodels.VacancyData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	hMsg, err := vacancyhandler.Instance.Update(middleware.GetUserID(ctx), middleware.GetUserRole(ctx), id, payload)
	return c.SendResult(ctx, nil, hMsg, err, "failed to update the vacancy")
}

// @Summary Get by ID
// @Tags Vacancies
// @Description Vacancy with the company rating and approved reviews
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=vacancyapimodels.VacancyDetail}
// @Failure 404
// @Failure 500 {object} apimodels.Response
// @router /api/v1/vacancies/{id} [get]
func (c *vacancyApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := vacancyhandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load the vacancy")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Deactivate
// @Tags Vacancies
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404
// @Failure 500 {object} apimodels.Response
// @router /api/v1/vacancies/{id}/deactivate [put]
func (c *vacancyApiController) deactivate(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	hMsg, err := vacancyhandler.Instance.Deactivate(middleware.GetUserID(ctx), middleware.GetUserRole(ctx), id)
	return c.SendResult(ctx, nil, hMsg, err, "failed to deactivate the vacancy")
}

package portalapiv1

import (
	"attachment-hub-backend/controllers"
	exporthandler "attachment-hub-backend/lib/export"
	portaladminhandler "attachment-hub-backend/lib/portal/admin"
	auditloghandler "attachment-hub-backend/lib/portal/audit-log"
	testimonyhandler "attachment-hub-backend/lib/portal/testimony"
	portalusershandler "attachment-hub-backend/lib/portal/users"
	"attachment-hub-backend/middleware"
	apimodels "attachment-hub-backend/models/api"
	portalapimodels "attachment-hub-backend/models/api/portal"

	"github.com/gofiber/fiber/v2"
)

type adminApiController struct {
	controllers.BaseAPIController
}

func InitAdminApiRouters(app *fiber.App) {
	controller := adminApiController{}
	app.Route("admin", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired(), middleware.HubScopeRequired(), middleware.RbacMiddleware())
		router.Post("logout", controller.logout)
		router.Route("users", func(users fiber.Router) {
			users.Get("", controller.userList)
			users.Put(":id", controller.userUpdate)
			users.Delete(":id", controller.userDelete)
		})
		router.Route("testimonies", func(testimonies fiber.Router) {
			testimonies.Get("", controller.testimonyList)
			testimonies.Post("", controller.testimonyCreate)
			testimonies.Get(":id", controller.testimonyGet)
			testimonies.Put(":id", controller.testimonyUpdate)
			testimonies.Delete(":id", controller.testimonyDelete)
		})
		router.Get("logs", controller.logList)
		router.Route("export", func(export fiber.Router) {
			export.Get("csv/:entity", controller.exportCSV)
			export.Get("xlsx", controller.exportXLSX)
			export.Get("pdf", controller.exportPDF)
		})
	})
}

// @Summary Admin logout
// @Tags Portal admin
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response
// @Failure 403
// @router /api/v1/portal/admin/logout [post]
func (c *adminApiController) logout(ctx *fiber.Ctx) error {
	portaladminhandler.Instance.Logout(middleware.GetUserID(ctx))
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Users
// @Tags Portal admin
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]portalapimodels.UserView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/portal/admin/users [get]
func (c *adminApiController) userList(ctx *fiber.Ctx) error {
	list, err := portalusershandler.Instance.List()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load users")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Update user
// @Tags Portal admin
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param	body				body		portalapimodels.UserUpdate	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404
// @Failure 500 {object} apimodels.Response
// @router /api/v1/portal/admin/users/{id} [put]
func (c *adminApiController) userUpdate(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload portalapimodels.UserUpdate
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	hMsg, err := portalusershandler.Instance.AdminUpdate(id, payload)
	return c.SendResult(ctx, nil, hMsg, err, "failed to update the user")
}

// @Summary Delete user
// @Tags Portal admin
// @Description Removes the user with their testimonies
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 403
// @Failure 404
// @Failure 500 {object} apimodels.Response
// @router /api/v1/portal/admin/users/{id} [delete]
func (c *adminApiController) userDelete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = portalusershandler.Instance.AdminDelete(id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to delete the user")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Testimonies
// @Tags Portal admin
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   q          		query    string  				    	false        "search text"
// @Param   page            query    int  				    	    false        "page"
// @Param   limit           query    int  				    	    false        "rows per page"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]portalapimodels.TestimonyView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/portal/admin/testimonies [get]
func (c *adminApiController) testimonyList(ctx *fiber.Ctx) error {
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

// @Summary Create testimony
// @Tags Portal admin
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		portalapimodels.AdminTestimonyData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/portal/admin/testimonies [post]
func (c *adminApiController) testimonyCreate(ctx *fiber.Ctx) error {
	var payload portalapimodels.AdminTestimonyData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, hMsg, err := testimonyhandler.Instance.AdminCreate(payload)
	return c.SendResult(ctx, id, hMsg, err, "failed to create the testimony")
}

// @Summary Get testimony
// @Tags Portal admin
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=portalapimodels.TestimonyView}
// @Failure 403
// @Failure 404
// @Failure 500 {object} apimodels.Response
// @router /api/v1/portal/admin/testimonies/{id} [get]
func (c *adminApiController) testimonyGet(ctx *fiber.Ctx) error {
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

// @Summary Update testimony
// @Tags Portal admin
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param	body				body		portalapimodels.AdminTestimonyData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404
// @Failure 500 {object} apimodels.Response
// @router /api/v1/portal/admin/testimonies/{id} [put]
func (c *adminApiController) testimonyUpdate(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload portalapimodels.AdminTestimonyData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	hMsg, err := testimonyhandler.Instance.AdminUpdate(id, payload)
	return c.SendResult(ctx, nil, hMsg, err, "failed to update the testimony")
}

// @Summary Delete testimony
// @Tags Portal admin
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 403
// @Failure 404
// @Failure 500 {object} apimodels.Response
// @router /api/v1/portal/admin/testimonies/{id} [delete]
func (c *adminApiController) testimonyDelete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = testimonyhandler.Instance.AdminDelete(id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to delete the testimony")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Logs
// @Tags Portal admin
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   page            query    int  				    	    false        "page"
// @Param   limit           query    int  				    	    false        "rows per page"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]portalapimodels.LogView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/portal/admin/logs [get]
func (c *adminApiController) logList(ctx *fiber.Ctx) error {
	var pagination apimodels.Pagination
	if err := c.QueryParser(ctx, &pagination); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := auditloghandler.Instance.List(pagination)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load logs")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary CSV export
// @Tags Portal admin
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   entity          		path    string  				    	true         "users, testimonies, logs or all"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/portal/admin/export/csv/{entity} [get]
func (c *adminApiController) exportCSV(ctx *fiber.Ctx) error {
	entity, err := c.GetParam(ctx, "entity")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	file, hMsg, err := exporthandler.Instance.CSV(exporthandler.Entity(entity))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "csv export failed")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return c.SendFile(ctx, file.Name, file.ContentType, file.Data, true)
}

// @Summary XLSX export
// @Tags Portal admin
// @Description Workbook with users, testimonies and logs sheets
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/portal/admin/export/xlsx [get]
func (c *adminApiController) exportXLSX(ctx *fiber.Ctx) error {
	file, err := exporthandler.Instance.XLSX()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "xlsx export failed")
	}
	return c.SendFile(ctx, file.Name, file.ContentType, file.Data, true)
}

// @Summary PDF report
// @Tags Portal admin
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/portal/admin/export/pdf [get]
func (c *adminApiController) exportPDF(ctx *fiber.Ctx) error {
	file, err := exporthandler.Instance.PDF()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "pdf export failed")
	}
	return c.SendFile(ctx, file.Name, file.ContentType, file.Data, true)
}

package portalapiv1

import (
	"attachment-hub-backend/controllers"
	helpchathandler "attachment-hub-backend/lib/help-chat"
	"attachment-hub-backend/lib/help-chat/ws"
	"attachment-hub-backend/middleware"
	apimodels "attachment-hub-backend/models/api"
	portalapimodels "attachment-hub-backend/models/api/portal"

	"github.com/gofiber/fiber/v2"
)

type helpApiController struct {
	controllers.BaseAPIController
}

func InitHelpApiRouters(app *fiber.App) {
	controller := helpApiController{}
	app.Route("help", func(router fiber.Router) {
		ws.InitWs(router.Group("ws", middleware.WebsocketAuthorizationRequired(), sessionRequired()))
		router.Use(middleware.AuthorizationRequired(), sessionRequired())
		router.Post("", controller.ask)
		router.Get("", controller.history)
		router.Delete("", controller.clear)
	})
}

// the transcript belongs to the session id carried by the token
func sessionRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if middleware.GetSessionID(ctx) == "" {
			return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError("please log in to use the help chat"))
		}
		return ctx.Next()
	}
}

// @Summary Ask
// @Tags Portal help
// @Description Keyword answers with an optional assistant fallback
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		portalapimodels.ChatRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=portalapimodels.ChatResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/portal/help [post]
func (c *helpApiController) ask(ctx *fiber.Ctx) error {
	var payload portalapimodels.ChatRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, hMsg, err := helpchathandler.Instance.Ask(ctx.UserContext(), middleware.GetSessionID(ctx), payload)
	return c.SendResult(ctx, resp, hMsg, err, "help chat failed")
}

// @Summary Transcript
// @Tags Portal help
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]portalapimodels.ChatMessage}
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/portal/help [get]
func (c *helpApiController) history(ctx *fiber.Ctx) error {
	list, err := helpchathandler.Instance.History(ctx.UserContext(), middleware.GetSessionID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load the chat")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Clear transcript
// @Tags Portal help
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/portal/help [delete]
func (c *helpApiController) clear(ctx *fiber.Ctx) error {
	if err := helpchathandler.Instance.Clear(ctx.UserContext(), middleware.GetSessionID(ctx)); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to clear the chat")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

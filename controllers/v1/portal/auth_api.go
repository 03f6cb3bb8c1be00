package portalapiv1

import (
	"attachment-hub-backend/controllers"
	helpchathandler "attachment-hub-backend/lib/help-chat"
	portaladminhandler "attachment-hub-backend/lib/portal/admin"
	portalusershandler "attachment-hub-backend/lib/portal/users"
	"attachment-hub-backend/middleware"
	apimodels "attachment-hub-backend/models/api"
	authapimodels "attachment-hub-backend/models/api/auth"
	portalapimodels "attachment-hub-backend/models/api/portal"

	"github.com/gofiber/fiber/v2"
)

type authApiController struct {
	controllers.BaseAPIController
}

func InitAuthApiRouters(app *fiber.App) {
	controller := authApiController{}
	app.Route("auth", func(router fiber.Router) {
		router.Post("signup", controller.signup)
		router.Post("login", controller.login)
		router.Post("forgot-password", controller.forgotPassword)
		router.Post("logout", middleware.AuthorizationRequired(), controller.logout)
		router.Post("admin-login", controller.adminLogin)
	})
}

// @Summary Signup
// @Tags Portal auth
// @Param	body				body		portalapimodels.Signup	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/portal/auth/signup [post]
func (c *authApiController) signup(ctx *fiber.Ctx) error {
	var payload portalapimodels.Signup
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, hMsg, err := portalusershandler.Instance.Signup(payload)
	return c.SendResult(ctx, id, hMsg, err, "signup failed")
}

// @Summary Login
// @Tags Portal auth
// @Param	body				body		portalapimodels.Login	true	"request body"
// @Success 200 {object} apimodels.Response{data=portalapimodels.SessionResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/portal/auth/login [post]
func (c *authApiController) login(ctx *fiber.Ctx) error {
	var payload portalapimodels.Login
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, hMsg, err := portalusershandler.Instance.Login(payload)
	return c.SendResult(ctx, resp, hMsg, err, "login failed")
}

// @Summary Forgot password
// @Tags Portal auth
// @Description Mails a temporary password
// @Param	body				body		portalapimodels.ForgotPassword	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/portal/auth/forgot-password [post]
func (c *authApiController) forgotPassword(ctx *fiber.Ctx) error {
	var payload portalapimodels.ForgotPassword
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	message, hMsg, err := portalusershandler.Instance.ForgotPassword(payload)
	return c.SendResult(ctx, message, hMsg, err, "password reset failed")
}

// @Summary Logout
// @Tags Portal auth
// @Description Drops the help chat transcript of the session
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/portal/auth/logout [post]
func (c *authApiController) logout(ctx *fiber.Ctx) error {
	if sessionID := middleware.GetSessionID(ctx); sessionID != "" {
		if err := helpchathandler.Instance.Clear(ctx.UserContext(), sessionID); err != nil {
			c.GetLogger(ctx).WithError(err).Warn("help chat transcript clear failed")
		}
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Admin login
// @Tags Portal admin
// @Description Login for accounts with the ADMIN role
// @Param	body				body		authapimodels.LoginRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=authapimodels.JWTResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/portal/auth/admin-login [post]
func (c *authApiController) adminLogin(ctx *fiber.Ctx) error {
	var payload authapimodels.LoginRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, hMsg, err := portaladminhandler.Instance.Login(payload)
	return c.SendResult(ctx, resp, hMsg, err, "admin login failed")
}

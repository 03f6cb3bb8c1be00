package apiv1

import (
	"attachment-hub-backend/controllers"
	reviewhandler "attachment-hub-backend/lib/review"
	"attachment-hub-backend/middleware"
	"attachment-hub-backend/models"
	apimodels "attachment-hub-backend/models/api"
	reviewapimodels "attachment-hub-backend/models/api/review"

	"github.com/gofiber/fiber/v2"
)

type reviewApiController struct {
	controllers.BaseAPIController
}

func InitReviewApiRouters(app *fiber.App) {
	controller := reviewApiController{}
	app.Route("reviews", func(router fiber.Router) {
		router.Post("submit", middleware.OptionalAuthorization(), controller.submit)
	})
}

// @Summary Submit review
// @Tags Reviews
// @Description Anyone may review a company once per window. Reviews wait for moderation
// @Param   Authorization		header		string	false	"Authorization token"
// @Param	body body	 reviewapimodels.ReviewData	true	"request body"
// @Success 200 {object} apimodels.Response{data=reviewapimodels.SubmitResult}
// @Failure 400 {object} apimodels.Response
// @Failure 404
// @Failure 500 {object} apimodels.Response
// @router /api/v1/reviews/submit [post]
func (c *reviewApiController) submit(ctx *fiber.Ctx) error {
	var payload reviewapimodels.ReviewData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := ""
	if middleware.GetScope(ctx) == models.HubScope {
		userID = middleware.GetUserID(ctx)
	}
	identity := reviewhandler.IdentityKey(userID, ctx.IP())
	resp, hMsg, err := reviewhandler.Instance.Submit(ctx.UserContext(), identity, payload)
	return c.SendResult(ctx, resp, hMsg, err, "failed to submit the review")
}

package apiv1

import (
	"nexora-hcm/controllers"
	resumeparser "nexora-hcm/lib/resume-parser"
	resumeapimodels "nexora-hcm/models/api/resume"

	"github.com/gofiber/fiber/v2"
)

type resumeApiController struct {
	controllers.BaseAPIController
}

func InitResumeApiRouters(app *fiber.App) {
	controller := resumeApiController{}
	app.Post("resume/parse", controller.parse)
}

// @Summary Разбор резюме
// @Tags Резюме
// @Description Извлечение навыков, стажа, почты и телефона из текста резюме. Текст передается в text или в base64
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 resumeapimodels.ParseRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=resumeapimodels.ParseResult}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @router /api/v1/recruitment/resume/parse [post]
func (c *resumeApiController) parse(ctx *fiber.Ctx) error {
	var payload resumeapimodels.ParseRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err := payload.Validate(); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	text, err := payload.GetText()
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	return c.SendOK(ctx, resumeparser.Parse(text))
}

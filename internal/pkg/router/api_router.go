package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/rvolkov-dev/autobridge/app/controllers"
	"github.com/rvolkov-dev/autobridge/internal/pkg/constants"
)

type ApiRouter struct {
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group(constants.APIRoute, limiter.New())
	api.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Hello from api",
		})
	})

	v1 := api.Group("/v1")
	v1.Get("/ping", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{"status": "ok"})
	})

	v1.Post("/calculator/quote", controllers.HandleCalculatorQuote)

	v1.Get("/vehicles", controllers.HandleVehicleList)
	v1.Get("/vehicles/:slug", controllers.HandleVehicleDetail)

	v1.Post("/inquiries", controllers.HandleInquiryCreate)
}

func NewApiRouter() *ApiRouter {
	return &ApiRouter{}
}

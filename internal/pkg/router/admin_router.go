package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rvolkov-dev/autobridge/app/controllers"
	"github.com/rvolkov-dev/autobridge/internal/pkg/constants"
	"github.com/rvolkov-dev/autobridge/internal/pkg/middleware"
)

type AdminRouter struct {
}

func (h AdminRouter) InstallRouter(app *fiber.App) {
	admin := app.Group(constants.AdminAPIRoute, middleware.AdminTokenMiddleware())

	calculatorController := controllers.NewAdminCalculatorController()
	configs := admin.Group("/configs")
	configs.Get("/", calculatorController.HandleConfigList)
	configs.Get("/active", calculatorController.HandleConfigActive)
	configs.Get("/:id", calculatorController.HandleConfigGet)
	configs.Post("/", calculatorController.HandleConfigCreate)
	configs.Put("/:id", calculatorController.HandleConfigUpdate)
	configs.Post("/:id/activate", calculatorController.HandleConfigActivate)
	configs.Delete("/:id", calculatorController.HandleConfigDelete)

	vehicleController := controllers.NewAdminVehicleController()
	vehicles := admin.Group("/vehicles")
	vehicles.Get("/", vehicleController.HandleVehicleList)
	vehicles.Get("/:id", vehicleController.HandleVehicleGet)
	vehicles.Post("/", vehicleController.HandleVehicleCreate)
	vehicles.Put("/:id", vehicleController.HandleVehicleUpdate)
	vehicles.Delete("/:id", vehicleController.HandleVehicleDelete)

	inquiryController := controllers.NewAdminInquiryController()
	inquiries := admin.Group("/inquiries")
	inquiries.Get("/", inquiryController.HandleInquiryList)
	inquiries.Get("/:id", inquiryController.HandleInquiryGet)
	inquiries.Patch("/:id/status", inquiryController.HandleInquiryStatusUpdate)

	settingsController := controllers.NewAdminSettingsController()
	admin.Get("/settings", settingsController.HandleSettingsGet)
	admin.Put("/settings", settingsController.HandleSettingsUpdate)

	admin.Post("/exchange-rate/refresh", controllers.HandleExchangeRateRefresh)
}

func NewAdminRouter() *AdminRouter {
	return &AdminRouter{}
}

package routes

import (
	"os"
	"strconv"

	bookingController "rhumuda-booking/controllers/booking"
	catalogController "rhumuda-booking/controllers/catalog"
	"rhumuda-booking/logger"
	"rhumuda-booking/repository"
	bookingService "rhumuda-booking/services/booking"
	emailService "rhumuda-booking/services/email"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const defaultAdminEmail = "admin@rhumudaboatcharter.com.my"
const defaultTemplatePath = "resource/templates/booking-confirmation.html"

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	bookingRepo := repository.NewBookingRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)

	smtpPort, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		logger.Warning("SMTP_PORT not set or invalid, defaulting to 587")
		smtpPort = 587
	}
	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = defaultAdminEmail
	}
	templatePath := os.Getenv("EMAIL_TEMPLATE_PATH")
	if templatePath == "" {
		templatePath = defaultTemplatePath
	}

	sender := emailService.NewSMTPSender(
		os.Getenv("SMTP_HOST"),
		smtpPort,
		os.Getenv("SMTP_USERNAME"),
		os.Getenv("SMTP_PASSWORD"),
	)
	mailer := emailService.NewService(sender, catalogRepo, os.Getenv("MAIL_FROM"), adminEmail, templatePath)

	bookingSvc := bookingService.NewService(bookingRepo, catalogRepo, mailer)

	bookings := bookingController.NewBookingController(bookingSvc)
	catalog := catalogController.NewCatalogController(catalogRepo)

	api := app.Group("/api")

	/*=============================================================================
	| Booking Routes
	===============================================================================*/
	bookingGroup := api.Group("/bookings")
	bookingGroup.Post("/", bookings.Store)
	bookingGroup.Get("/:bookingId", bookings.Show)
	bookingGroup.Put("/:bookingId", bookings.Update)
	bookingGroup.Put("/:bookingId/status", bookings.UpdateStatus)
	bookingGroup.Post("/:bookingId/submit", bookings.Submit)

	/*=============================================================================
	| Catalog Routes
	===============================================================================*/
	api.Get("/jettypoints", catalog.JettyPoints)
	api.Get("/addons", catalog.AddOns)
	api.Get("/packages/category/:categoryId", catalog.PackagesByCategory)
	api.Get("/categories", catalog.Categories)
}

package main

import (
	"os"
	"time"

	"rhumuda-booking/database"
	"rhumuda-booking/logger"
	"rhumuda-booking/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
)

func main() {
	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 30,
	})

	if err := godotenv.Load(); err != nil {
		logger.Error("Error loading .env file", err)
	}

	db, err := database.InitDB()
	if err != nil {
		logger.Error("Failed to connect to the database", err)
		return
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins: os.Getenv("FRONTEND_URL"),
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	routes.SetupRoutes(app, db)

	appHost := os.Getenv("APP_HOST")
	appPort := os.Getenv("APP_PORT")
	logger.Success("Server is running on ip: " + appHost + " port: " + appPort)
	if err := app.Listen(appHost + ":" + appPort); err != nil {
		logger.Fatal("Server stopped: " + err.Error())
	}
}

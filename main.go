package main

import (
	"log"

	"placementpulse/config"
	enrollController "placementpulse/controllers/enroll"
	paymentController "placementpulse/controllers/payment"
	"placementpulse/database"
	"placementpulse/gateway"
	adminRoutes "placementpulse/routers/adminRoutes"
	authRoutes "placementpulse/routers/authRoutes"
	courseRoutes "placementpulse/routers/courseRoutes"
	gdTopicRoutes "placementpulse/routers/gdTopicRoutes"
	paymentRoutes "placementpulse/routers/paymentRoutes"
	"placementpulse/scheduler"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	db := database.Database.Db

	// The gateway client is built once here and handed to whoever needs it
	gw := gateway.New(
		config.AppConfig.CashfreeAppID,
		config.AppConfig.CashfreeSecretKey,
		config.AppConfig.CashfreeEnvironment,
	)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve static files (uploads) from the public folder
	app.Static("/", "./public")

	payCtrl := paymentController.NewController(db, gw)
	enrollCtrl := enrollController.NewController(db, gw)

	authRoutes.SetupAuthRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	gdTopicRoutes.SetupGDTopicRoutes(app)
	paymentRoutes.SetupPaymentRoutes(app, payCtrl, enrollCtrl)
	adminRoutes.SetupAdminRoutes(app)

	scheduler.InitializeEnrollmentScheduler(db, gw)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}

package config

import (
	"Pantry-Backend/internal/api/handlers"
	"Pantry-Backend/internal/api/routes"
	"Pantry-Backend/internal/middleware"
	"Pantry-Backend/internal/utils"
	"Pantry-Backend/internal/utils/storage"
	"Pantry-Backend/pkg/barcode"
	"Pantry-Backend/pkg/gamification"
	"Pantry-Backend/pkg/jwt"
	"Pantry-Backend/pkg/notification"
	"Pantry-Backend/pkg/pantry"
	"Pantry-Backend/pkg/scale"
	"Pantry-Backend/pkg/user"
	"context"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	directory := barcode.NewOpenFoodFactsClient(utils.GetConfig("PRODUCT_DIRECTORY_URL"))

	// Repository
	userRepository := user.NewUserRepository(db)
	barcodeRepository := barcode.NewBarcodeRepository(db)
	pantryRepository := pantry.NewPantryRepository(db)
	scaleRepository := scale.NewScaleRepository(db)
	gamificationRepository := gamification.NewGamificationRepository(db)
	notificationRepository := notification.NewNotificationRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	barcodeService := barcode.NewBarcodeService(barcodeRepository, directory)
	gamificationService := gamification.NewGamificationService(gamificationRepository)
	pantryService := pantry.NewPantryService(pantryRepository, s3, barcodeService, gamificationService)
	scaleService := scale.NewScaleService(scaleRepository)
	notificationService := notification.NewNotificationService(
		notificationRepository,
		userRepository,
		pantryService,
		notification.NewGomailMailer(),
		notification.NewHTTPSMSGateway(),
	)

	// Background workers
	notification.StartScheduler(context.Background(), notificationService, 12*time.Hour)

	if utils.GetConfig("SCALE_SIMULATOR_ENABLED") == "true" {
		simulator := scale.NewSimulator(scaleService, scale.SimulatorConfig{
			UserID:     utils.GetConfig("SCALE_SIMULATOR_USER_ID"),
			Barcode:    utils.GetConfig("SCALE_SIMULATOR_BARCODE"),
			BaseWeight: 1000,
			Interval:   30 * time.Second,
		})
		go simulator.Run(context.Background())
	}

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	barcodeHandler := handlers.NewBarcodeHandler(barcodeService, validator)
	pantryHandler := handlers.NewPantryHandler(pantryService, validator)
	scaleHandler := handlers.NewScaleHandler(scaleService, validator)
	gamificationHandler := handlers.NewGamificationHandler(gamificationService)

	// routes
	routesConfig := routes.Config{
		App:                 app,
		UserHandler:         userHandler,
		PantryHandler:       pantryHandler,
		BarcodeHandler:      barcodeHandler,
		ScaleHandler:        scaleHandler,
		GamificationHandler: gamificationHandler,
		Middleware:          middlewares,
		JWTService:          jwtService,
	}
	routesConfig.Setup()
	return app, nil
}

package routes

import (
	"Pantry-Backend/internal/api/handlers"
	"Pantry-Backend/internal/middleware"
	"Pantry-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                 *fiber.App
	UserHandler         handlers.UserHandler
	PantryHandler       handlers.PantryHandler
	BarcodeHandler      handlers.BarcodeHandler
	ScaleHandler        handlers.ScaleHandler
	GamificationHandler handlers.GamificationHandler
	Middleware          middleware.Middleware
	JWTService          jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Barcode()
	c.PantryItems()
	c.Scale()
	c.Gamification()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Post("/send_verify", c.UserHandler.SendVerificationEmail)
		user.Get("/verify", c.UserHandler.VerifyEmail)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/update", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateUser)
	}
}

func (c *Config) Barcode() {
	barcode := c.App.Group("/api/v1/barcode", c.Middleware.AuthMiddleware(c.JWTService))
	barcode.Get("/resolve/:barcode", c.BarcodeHandler.ResolveProduct)
	barcode.Post("/override", c.BarcodeHandler.SetExpiryOverride)
}

func (c *Config) PantryItems() {
	items := c.App.Group("/api/v1/pantry-items", c.Middleware.AuthMiddleware(c.JWTService))
	items.Get("/dashboard", c.PantryHandler.GetDashboardStats)

	// Basic CRUD operations
	items.Post("", c.PantryHandler.AddItem)
	items.Get("", c.PantryHandler.GetItems)
	items.Get("/:id", c.PantryHandler.GetItemDetails)
	items.Put("/:id", c.PantryHandler.UpdateItem)
	items.Delete("/:id", c.PantryHandler.DeleteItem)

	// Special operations
	items.Post("/image", c.PantryHandler.UploadItemImage)
	items.Post("/consume", c.PantryHandler.MarkConsumed)
	items.Post("/waste", c.PantryHandler.MarkWasted)
}

func (c *Config) Scale() {
	scale := c.App.Group("/api/v1/scale", c.Middleware.AuthMiddleware(c.JWTService))
	scale.Post("/readings", c.ScaleHandler.AddReading)
	scale.Get("/current/:barcode", c.ScaleHandler.GetCurrentWeight)
	scale.Get("/history/:barcode", c.ScaleHandler.GetHistory)
}

func (c *Config) Gamification() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)
	c.App.Get("/api/v1/gamification/summary", auth, c.GamificationHandler.GetSummary)
	c.App.Get("/api/v1/analytics/waste", auth, c.GamificationHandler.GetWasteAnalytics)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

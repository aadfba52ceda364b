package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"elevencentral_backend/internals/configs"
	database "elevencentral_backend/internals/databases"
	"elevencentral_backend/internals/features/connect/hub"
	helper "elevencentral_backend/internals/helpers"
	"elevencentral_backend/internals/middlewares"
	"elevencentral_backend/internals/route"
	"elevencentral_backend/internals/scheduler"
	"elevencentral_backend/internals/sessions"
)

func main() {
	configs.LoadEnv()

	database.ConnectDB()
	database.TunePool()
	database.WarmUpQueries()

	sessions.Default = sessions.NewMemoryStore()

	app := fiber.New(fiber.Config{
		AppName:      "E11EVEN Central API",
		JSONEncoder:  sonic.Marshal,
		JSONDecoder:  sonic.Unmarshal,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		ErrorHandler: helper.ErrorHandler,
	})

	app.Use(requestid.New())
	app.Use(compress.New())
	app.Use(etag.New())
	middlewares.SetupMiddlewares(app)

	connectHub := hub.New()
	route.SetupRoutes(app, database.DB, connectHub)

	jobs := scheduler.New(database.DB)
	if err := jobs.Start(); err != nil {
		log.Fatalf("❌ scheduler start failed: %v", err)
	}

	go func() {
		port := configs.GetEnv("PORT", "3000")
		log.Printf("[INFO] 🚀 listening on :%s", port)
		if err := app.Listen(":" + port); err != nil {
			log.Fatalf("❌ server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("[INFO] shutting down...")
	jobs.Stop()
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Printf("[ERROR] shutdown: %v", err)
	}
	log.Println("[INFO] ✅ bye")
}

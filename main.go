package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"travel-backend/config"
	"travel-backend/controllers"
	"travel-backend/routes"
	"travel-backend/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	cfg := config.Load()

	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	log.Println("✅ Database ready")

	// Shared infrastructure
	cache := services.NewCache(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if cache != nil {
		log.Println("✅ Catalog cache enabled")
	}
	media := services.NewMediaService(cfg)
	if !media.Configured() {
		log.Println("⚠️  Cloudinary credentials not set; image uploads will be rejected")
	}
	mailer := services.NewMailer(cfg)
	creds := services.NewStaticCredentialStore(cfg.AdminUsers)

	// Services
	catalogSvc := services.NewCatalogService(db, cache)
	packageSvc := services.NewPackageService(db, media, cache)
	hotelSvc := services.NewHotelService(db, media, cache)
	gallerySvc := services.NewGalleryService(db, media, cache)
	infoSvc := services.NewInfoService(db, cache)
	contactSvc := services.NewContactService(db)

	// Controllers
	ctl := routes.Controllers{
		Catalog: controllers.NewCatalogController(catalogSvc),
		Auth:    controllers.NewAuthController(creds, cfg.SecretKey, cfg.TokenExpiryMinutes),
		Package: controllers.NewPackageController(packageSvc, media),
		Hotel:   controllers.NewHotelController(hotelSvc, media),
		Gallery: controllers.NewGalleryController(gallerySvc, media),
		Info:    controllers.NewInfoController(infoSvc),
		Contact: controllers.NewContactController(contactSvc, mailer),
		Config:  controllers.NewConfigController(cfg, media),
	}

	router := routes.SetupRouter(ctl, cfg.SecretKey, cfg.CORSOrigins, cfg.FrontendDir)

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
		// useful timeouts
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}

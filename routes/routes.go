package routes

import (
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"travel-backend/controllers"
	"travel-backend/middleware"
)

// Controllers bundles everything the router wires up.
type Controllers struct {
	Catalog *controllers.CatalogController
	Auth    *controllers.AuthController
	Package *controllers.PackageController
	Hotel   *controllers.HotelController
	Gallery *controllers.GalleryController
	Info    *controllers.InfoController
	Contact *controllers.ContactController
	Config  *controllers.ConfigController
}

// SetupRouter builds the full route table. secretKey gates the admin
// group; frontendDir, when set, serves the public and admin pages.
func SetupRouter(ctl Controllers, secretKey string, corsOrigins []string, frontendDir string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger(), middleware.Metrics())

	allowCredentials := true
	for _, origin := range corsOrigins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	if frontendDir != "" {
		r.Static("/static", filepath.Join(frontendDir, "static"))
		r.StaticFile("/", filepath.Join(frontendDir, "index.html"))
		r.StaticFile("/index.html", filepath.Join(frontendDir, "index.html"))
		r.StaticFile("/admin.html", filepath.Join(frontendDir, "admin.html"))
	}

	r.GET("/health", ctl.Config.Health)
	r.GET("/config", ctl.Config.GetConfig)
	r.GET("/config/contact", ctl.Config.GetContactConfig)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public catalog
	packages := r.Group("/packages")
	{
		packages.GET("", ctl.Catalog.GetPackages)
		packages.GET("/promoted", ctl.Catalog.GetPromoted)
		packages.GET("/:id", ctl.Catalog.GetPackage)
		packages.GET("/:id/hotels", ctl.Catalog.GetHotels)
		packages.GET("/:id/gallery", ctl.Catalog.GetGallery)
		packages.GET("/:id/info", ctl.Catalog.GetInfo)
		packages.GET("/:id/features", ctl.Catalog.GetFeatures)
	}

	r.POST("/contact", ctl.Contact.Create)
	r.POST("/admin/login", ctl.Auth.Login)

	// Everything below requires a valid bearer token.
	admin := r.Group("/admin", middleware.RequireAuth(secretKey))
	{
		admin.POST("/refresh-token", ctl.Auth.RefreshToken)
		admin.GET("/contact-messages", ctl.Contact.List)
		admin.POST("/upload-cover-image", ctl.Package.UploadCoverImage)

		admin.POST("/packages", ctl.Package.Create)
		admin.POST("/packages/reorder-carousel", ctl.Package.ReorderCarousel)
		admin.PUT("/packages/:id", ctl.Package.Update)
		admin.DELETE("/packages/:id", ctl.Package.Delete)
		admin.PUT("/packages/:id/promote", ctl.Package.Promote)
		admin.PUT("/packages/:id/carousel-order", ctl.Package.SetCarouselOrder)

		admin.POST("/packages/:id/gallery", ctl.Gallery.AddByURL)
		admin.POST("/packages/:id/gallery/upload", ctl.Gallery.Upload)
		admin.PUT("/packages/:id/gallery/:imageId", ctl.Gallery.Update)
		admin.DELETE("/packages/:id/gallery/:imageId", ctl.Gallery.Delete)

		admin.POST("/packages/:id/hotels", ctl.Hotel.Create)
		admin.POST("/packages/:id/hotels/upload", ctl.Hotel.Upload)
		admin.PUT("/packages/:id/hotels/:hotelId", ctl.Hotel.Update)
		admin.DELETE("/packages/:id/hotels/:hotelId", ctl.Hotel.Delete)

		admin.POST("/packages/:id/info", ctl.Info.CreateInfo)
		admin.PUT("/packages/:id/info/:infoId", ctl.Info.UpdateInfo)
		admin.DELETE("/packages/:id/info/:infoId", ctl.Info.DeleteInfo)

		admin.POST("/packages/:id/features", ctl.Info.CreateFeature)
		admin.PUT("/packages/:id/features/:featureId", ctl.Info.UpdateFeature)
		admin.DELETE("/packages/:id/features/:featureId", ctl.Info.DeleteFeature)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Recurso no encontrado"})
	})

	return r
}

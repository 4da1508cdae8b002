package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"travel-backend/models"

	"gorm.io/datatypes"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// mysqlDSNFromURL converts a mysql:// URL into the DSN format the driver
// expects, filling in the charset/parseTime defaults.
func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

// openDialector picks a driver from the URL scheme. PostgreSQL is the
// primary deployment target; mysql:// URLs are still honored. Render
// hands out postgres:// URLs, pgx accepts those directly.
func openDialector(rawURL string) (gorm.Dialector, error) {
	switch {
	case strings.HasPrefix(rawURL, "mysql://"):
		dsn, err := mysqlDSNFromURL(rawURL)
		if err != nil {
			return nil, err
		}
		return mysql.Open(dsn), nil
	case strings.HasPrefix(rawURL, "postgres://"), strings.HasPrefix(rawURL, "postgresql://"):
		return postgres.Open(rawURL), nil
	default:
		// Bare DSN; assume postgres key=value form.
		return postgres.Open(rawURL), nil
	}
}

// Open opens a connection without migrating or seeding. The migrate CLI
// uses it so manual migrations never race AutoMigrate.
func Open(cfg *Config) (*gorm.DB, error) {
	dialector, err := openDialector(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	return gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
}

// ConnectDatabase opens the connection, pings it with retries, migrates
// the schema and seeds first-run data. The ping retry is best-effort:
// a dead database at boot is logged, not fatal, so /health stays up.
func ConnectDatabase(cfg *Config) (*gorm.DB, error) {
	dialector, err := openDialector(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	// Automatic ping disabled so a dead database at boot doesn't stop
	// the process: /health must stay reachable for diagnostics.
	db, err := gorm.Open(dialector, &gorm.Config{Logger: newLogger, DisableAutomaticPing: true})
	if err != nil {
		return nil, err
	}

	if pingWithRetry(db, 5, 2*time.Second) {
		if err := AutoMigrate(db); err != nil {
			return nil, err
		}
		SeedDatabase(db)
	} else {
		log.Println("⚠️  Skipping migrations and seeding; will retry queries as they arrive")
	}

	DB = db
	return db, nil
}

func pingWithRetry(db *gorm.DB, attempts int, delay time.Duration) bool {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("⚠️  cannot get raw sql.DB for ping: %v", err)
		return false
	}
	for i := 1; i <= attempts; i++ {
		err := sqlDB.Ping()
		if err == nil {
			log.Println("✅ Database connection verified")
			return true
		}
		if i < attempts {
			log.Printf("⚠️  Database ping failed (attempt %d/%d): %v", i, attempts, err)
			time.Sleep(delay)
		} else {
			log.Printf("❌ Database unreachable after %d attempts: %v (continuing so /health can serve)", attempts, err)
		}
	}
	return false
}

// AutoMigrate creates/updates the schema, parents before children.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Package{},
		&models.PackageHotel{},
		&models.GalleryImage{},
		&models.PackageInfo{},
		&models.PackageFeature{},
		&models.ContactMessage{},
	)
}

// SeedDatabase inserts the sample catalog on an empty database.
func SeedDatabase(db *gorm.DB) {
	var count int64
	db.Model(&models.Package{}).Count(&count)
	if count > 0 {
		return
	}

	packages := []models.Package{
		{
			Title:       "Buenos Aires Clásico",
			Description: "Descubre la capital argentina con este paquete completo de 3 días. Incluye visitas a los barrios más emblemáticos, espectáculos de tango y la mejor gastronomía local.",
			Price:       "$45.000",
			Image:       "https://images.unsplash.com/photo-1589909202802-8f4aadce1849?auto=format&fit=crop&w=500&q=80",
			Category:    "nacional",
			Features:    datatypes.JSON(`["3 días / 2 noches","Desayuno incluido","City tour","Tango show","Traslados incluidos"]`),
			Duration:    "3 días / 2 noches",
			Destination: "Buenos Aires",
			IdealFor:    "Parejas y familias",
			Itinerary:   datatypes.JSON(`[{"title":"Día 1 - Llegada","description":"Recepción en el destino y traslado al hotel."},{"title":"Día 2 - City Tour","description":"Tour completo por los principales atractivos con guía especializado."},{"title":"Día 3 - Experiencias","description":"Actividades especiales y degustación de gastronomía local."}]`),
		},
		{
			Title:       "Bariloche Aventura",
			Description: "Vive la aventura patagónica con deportes extremos y paisajes únicos. Incluye rafting, trekking y visitas a los cerros más famosos de la región.",
			Price:       "$75.000",
			Image:       "https://images.unsplash.com/photo-1578662996442-48f60103fc96?auto=format&fit=crop&w=500&q=80",
			Category:    "aventura",
			Features:    datatypes.JSON(`["5 días / 4 noches","Pensión completa","Rafting","Cerro Catedral","Trekking","Guía especializado"]`),
			Duration:    "5 días / 4 noches",
			Destination: "Bariloche",
			IdealFor:    "Aventureros y amantes del deporte",
		},
		{
			Title:       "Miami Beach",
			Description: "Disfruta de las mejores playas de Florida en este paquete internacional completo. Incluye vuelos, hotel y las mejores actividades de la ciudad.",
			Price:       "USD 899",
			Image:       "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?auto=format&fit=crop&w=500&q=80",
			Category:    "internacional",
			Features:    datatypes.JSON(`["7 días / 6 noches","Hotel 4 estrellas","Vuelos incluidos","Traslados","Desayuno buffet","City tour opcional"]`),
			Duration:    "7 días / 6 noches",
			Destination: "Miami, USA",
			IdealFor:    "Familias y parejas",
		},
	}

	if err := db.Create(&packages).Error; err != nil {
		log.Printf("warning: failed to seed sample packages: %v", err)
		return
	}
	log.Printf("✅ Seeded %d sample packages", len(packages))
}

package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"travel-backend/config"
	"travel-backend/migrations"
)

func openDB() *gorm.DB {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, relying on environment variables")
	}
	cfg := config.Load()
	db, err := config.Open(cfg)
	if err != nil {
		log.Fatalf("❌ Cannot open database: %v", err)
	}
	return db
}

func runStep(name string, fn func(*gorm.DB) error) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		if err := fn(openDB()); err != nil {
			log.Fatalf("❌ Migration %s failed: %v", name, err)
		}
		log.Printf("✅ Migration %s complete", name)
	}
}

func main() {
	root := &cobra.Command{
		Use:   "migrate",
		Short: "Run schema migrations for the travel backend",
		Long: "Applies the incremental schema migrations the API has shipped " +
			"over time. Every command is idempotent and safe to re-run.",
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "carousel-fields",
			Short: "Add promoted and carousel_order to packages",
			Run:   runStep("carousel-fields", migrations.AddCarouselFields),
		},
		&cobra.Command{
			Use:   "price-tag",
			Short: "Add price_tag to packages",
			Run:   runStep("price-tag", migrations.AddPriceTag),
		},
		&cobra.Command{
			Use:   "hotel-destinations",
			Short: "Add destination, days and order_in_destination to package_hotels",
			Run:   runStep("hotel-destinations", migrations.AddHotelDestinationFields),
		},
		&cobra.Command{
			Use:   "hotel-flags",
			Short: "Add allow_user_days and allow_multiple_per_destination to package_hotels",
			Run:   runStep("hotel-flags", migrations.AddHotelFlags),
		},
		&cobra.Command{
			Use:   "info-tables",
			Short: "Create package_info and package_features, importing legacy feature lists",
			Run:   runStep("info-tables", migrations.CreateInfoTables),
		},
		&cobra.Command{
			Use:   "all",
			Short: "Run every migration in order",
			Run:   runStep("all", migrations.All),
		},
		&cobra.Command{
			Use:   "status",
			Short: "Report which tables and columns exist",
			Run: func(cmd *cobra.Command, args []string) {
				migrations.Status(openDB())
			},
		},
	)

	if err := root.Execute(); err != nil {
		log.Fatalf("❌ %v", err)
	}
}

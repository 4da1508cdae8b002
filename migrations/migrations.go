package migrations

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"travel-backend/models"
)

// Each migration is idempotent: it checks the schema before touching it,
// so re-running `migrate all` on an already-migrated database is a no-op.

func addColumn(db *gorm.DB, model any, column string) error {
	m := db.Migrator()
	if m.HasColumn(model, column) {
		log.Printf("✅ column %q already present, skipping", column)
		return nil
	}
	if err := m.AddColumn(model, column); err != nil {
		return fmt.Errorf("add column %q: %w", column, err)
	}
	log.Printf("✅ column %q added", column)
	return nil
}

// AddCarouselFields adds promoted and carousel_order to packages.
func AddCarouselFields(db *gorm.DB) error {
	for _, col := range []string{"promoted", "carousel_order"} {
		if err := addColumn(db, &models.Package{}, col); err != nil {
			return err
		}
	}
	return nil
}

// AddPriceTag adds the price_tag column to packages. Existing rows get
// the column default so the storefront keeps rendering "DESDE".
func AddPriceTag(db *gorm.DB) error {
	return addColumn(db, &models.Package{}, "price_tag")
}

// AddHotelDestinationFields adds destination, days and order_in_destination
// to package_hotels and backfills rows that predate the columns.
func AddHotelDestinationFields(db *gorm.DB) error {
	for _, col := range []string{"destination", "days", "order_in_destination"} {
		if err := addColumn(db, &models.PackageHotel{}, col); err != nil {
			return err
		}
	}

	if err := db.Model(&models.PackageHotel{}).
		Where("destination IS NULL OR destination = ''").
		Update("destination", "Destino principal").Error; err != nil {
		return err
	}
	if err := db.Model(&models.PackageHotel{}).
		Where("days IS NULL OR days = 0").
		Update("days", 1).Error; err != nil {
		return err
	}

	// Rows created before the column exist with order 0; number them in
	// their current list order so per-destination ordering stays stable.
	var hotels []models.PackageHotel
	if err := db.Where("order_in_destination IS NULL OR order_in_destination = 0").
		Order("package_id ASC, destination ASC, order_index ASC, id ASC").
		Find(&hotels).Error; err != nil {
		return err
	}
	type destKey struct {
		packageID   uint
		destination string
	}
	next := map[destKey]int{}
	for _, h := range hotels {
		k := destKey{h.PackageID, h.Destination}
		if next[k] == 0 {
			var max int
			db.Model(&models.PackageHotel{}).
				Where("package_id = ? AND destination = ?", h.PackageID, h.Destination).
				Select("COALESCE(MAX(order_in_destination), 0)").Scan(&max)
			next[k] = max
		}
		next[k]++
		if err := db.Model(&models.PackageHotel{}).
			Where("id = ?", h.ID).
			Update("order_in_destination", next[k]).Error; err != nil {
			return err
		}
	}
	if len(hotels) > 0 {
		log.Printf("✅ backfilled order_in_destination for %d hotels", len(hotels))
	}
	return nil
}

// AddHotelFlags adds allow_user_days and allow_multiple_per_destination
// to package_hotels.
func AddHotelFlags(db *gorm.DB) error {
	for _, col := range []string{"allow_user_days", "allow_multiple_per_destination"} {
		if err := addColumn(db, &models.PackageHotel{}, col); err != nil {
			return err
		}
	}
	return nil
}

// CreateInfoTables creates package_info and package_features, then moves
// any legacy JSON feature lists into rows.
func CreateInfoTables(db *gorm.DB) error {
	m := db.Migrator()
	if !m.HasTable(&models.PackageInfo{}) {
		if err := m.CreateTable(&models.PackageInfo{}); err != nil {
			return fmt.Errorf("create package_info: %w", err)
		}
		log.Println("✅ table package_info created")
	} else {
		log.Println("✅ table package_info already present, skipping")
	}
	if !m.HasTable(&models.PackageFeature{}) {
		if err := m.CreateTable(&models.PackageFeature{}); err != nil {
			return fmt.Errorf("create package_features: %w", err)
		}
		log.Println("✅ table package_features created")
	} else {
		log.Println("✅ table package_features already present, skipping")
	}
	return MigrateLegacyFeatures(db)
}

// MigrateLegacyFeatures copies each package's JSON feature list into
// package_features rows. It only runs on an empty table so a second
// invocation never duplicates rows.
func MigrateLegacyFeatures(db *gorm.DB) error {
	var existing int64
	if err := db.Model(&models.PackageFeature{}).Count(&existing).Error; err != nil {
		return err
	}
	if existing > 0 {
		log.Printf("✅ package_features already has %d rows, skipping legacy import", existing)
		return nil
	}

	var packages []models.Package
	if err := db.Find(&packages).Error; err != nil {
		return err
	}
	migrated := 0
	for _, p := range packages {
		for i, text := range p.FeatureList() {
			row := models.PackageFeature{
				PackageID:  p.ID,
				Text:       text,
				OrderIndex: i + 1,
			}
			if err := db.Create(&row).Error; err != nil {
				return err
			}
			migrated++
		}
	}
	if migrated > 0 {
		log.Printf("✅ migrated %d legacy features into package_features", migrated)
	}
	return nil
}

// All runs every migration in dependency order.
func All(db *gorm.DB) error {
	steps := []struct {
		name string
		fn   func(*gorm.DB) error
	}{
		{"carousel-fields", AddCarouselFields},
		{"price-tag", AddPriceTag},
		{"hotel-destinations", AddHotelDestinationFields},
		{"hotel-flags", AddHotelFlags},
		{"info-tables", CreateInfoTables},
	}
	for _, s := range steps {
		log.Printf("🚀 running migration %s", s.name)
		if err := s.fn(db); err != nil {
			return fmt.Errorf("migration %s: %w", s.name, err)
		}
	}
	return nil
}

// Status reports which tables and columns are present.
func Status(db *gorm.DB) {
	m := db.Migrator()
	report := func(label string, ok bool) {
		mark := "❌"
		if ok {
			mark = "✅"
		}
		log.Printf("%s %s", mark, label)
	}
	report("table packages", m.HasTable(&models.Package{}))
	report("packages.promoted", m.HasColumn(&models.Package{}, "promoted"))
	report("packages.carousel_order", m.HasColumn(&models.Package{}, "carousel_order"))
	report("packages.price_tag", m.HasColumn(&models.Package{}, "price_tag"))
	report("table package_hotels", m.HasTable(&models.PackageHotel{}))
	report("package_hotels.destination", m.HasColumn(&models.PackageHotel{}, "destination"))
	report("package_hotels.days", m.HasColumn(&models.PackageHotel{}, "days"))
	report("package_hotels.order_in_destination", m.HasColumn(&models.PackageHotel{}, "order_in_destination"))
	report("package_hotels.allow_user_days", m.HasColumn(&models.PackageHotel{}, "allow_user_days"))
	report("package_hotels.allow_multiple_per_destination", m.HasColumn(&models.PackageHotel{}, "allow_multiple_per_destination"))
	report("table package_info", m.HasTable(&models.PackageInfo{}))
	report("table package_features", m.HasTable(&models.PackageFeature{}))
}

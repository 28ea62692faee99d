// internal/database/connection.go
package database

import (
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/selltrack/selltrack-backend/internal/config"
	"github.com/selltrack/selltrack-backend/internal/models"
)

var DB *gorm.DB

func Initialize(cfg config.DatabaseConfig) (*gorm.DB, error) {
	var err error
	var gormConfig *gorm.Config

	// Configure GORM logger
	if cfg.LogLevel == "silent" {
		gormConfig = &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		}
	} else {
		gormConfig = &gorm.Config{
			Logger: logger.Default.LogMode(logger.Info),
		}
	}

	// Connect to database
	DB, err = gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying sql.DB
	sqlDB, err := DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.MaxLifetime) * time.Second)

	// Test connection
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Println("Database connection established successfully")
	return DB, nil
}

func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting underlying sql.DB: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("Database connection closed successfully")
	}
}

func RunMigrations(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Platform{},
		&models.PlatformListing{},
		&models.SalesRecord{},
		&models.Domain{},
		&models.HostingAccount{},
		&models.ServerInstance{},
		&models.SoftwareLicense{},
		&models.Integration{},
		&models.Project{},
		&models.CalendarEvent{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Create indexes
	if err := createIndexes(db); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

func createIndexes(db *gorm.DB) error {
	indexes := []string{
		// User indexes
		"CREATE INDEX IF NOT EXISTS idx_users_email ON users(email)",
		"CREATE INDEX IF NOT EXISTS idx_users_username ON users(username)",
		"CREATE INDEX IF NOT EXISTS idx_users_role_status ON users(role, status)",

		// Product indexes
		"CREATE INDEX IF NOT EXISTS idx_products_user ON products(user_id)",
		"CREATE INDEX IF NOT EXISTS idx_products_category_status ON products(category, status)",
		"CREATE INDEX IF NOT EXISTS idx_products_created_at ON products(created_at DESC)",

		// Listing indexes
		"CREATE INDEX IF NOT EXISTS idx_listings_product ON platform_listings(product_id)",
		"CREATE INDEX IF NOT EXISTS idx_listings_platform_status ON platform_listings(platform_id, status)",

		// Sales record indexes
		"CREATE INDEX IF NOT EXISTS idx_sales_records_listing ON sales_records(listing_id)",
		"CREATE INDEX IF NOT EXISTS idx_sales_records_period ON sales_records(period_end DESC)",

		// Tracker asset indexes
		"CREATE INDEX IF NOT EXISTS idx_domains_user ON domains(user_id)",
		"CREATE INDEX IF NOT EXISTS idx_hosting_accounts_user ON hosting_accounts(user_id)",
		"CREATE INDEX IF NOT EXISTS idx_server_instances_user ON server_instances(user_id)",
		"CREATE INDEX IF NOT EXISTS idx_software_licenses_user ON software_licenses(user_id)",
		"CREATE INDEX IF NOT EXISTS idx_integrations_user ON integrations(user_id)",
		"CREATE INDEX IF NOT EXISTS idx_projects_user ON projects(user_id)",
		"CREATE INDEX IF NOT EXISTS idx_calendar_events_user ON calendar_events(user_id, starts_at)",

		// Full-text search index
		"CREATE INDEX IF NOT EXISTS idx_products_search ON products USING GIN(to_tsvector('english', title || ' ' || description))",
	}

	for _, index := range indexes {
		if err := db.Exec(index).Error; err != nil {
			log.Printf("Warning: Failed to create index: %s, Error: %v", index, err)
			// Continue with other indexes instead of failing completely
		}
	}

	return nil
}

// Seed initial data
func SeedInitialData(db *gorm.DB) error {
	log.Println("Seeding initial data...")

	// Create default admin user
	var adminCount int64
	db.Model(&models.User{}).Where("role = ?", models.UserRoleAdmin).Count(&adminCount)

	if adminCount == 0 {
		admin := &models.User{
			Username: "admin",
			Email:    "admin@selltrack.io",
			Role:     models.UserRoleAdmin,
			Status:   models.UserStatusActive,
		}

		if err := admin.SetPassword("admin123!@#"); err != nil {
			return fmt.Errorf("failed to set admin password: %w", err)
		}

		if err := db.Create(admin).Error; err != nil {
			return fmt.Errorf("failed to create admin user: %w", err)
		}

		log.Println("Default admin user created successfully")
	}

	// Seed the sales platforms users can list on
	defaultPlatforms := []models.Platform{
		{Name: "Etsy", Slug: "etsy", CommissionRate: decimal.NewFromFloat(6.5), DefaultCurrency: "USD", Color: "#F1641E", Active: true},
		{Name: "Gumroad", Slug: "gumroad", CommissionRate: decimal.NewFromFloat(10.0), DefaultCurrency: "USD", Color: "#FF90E8", Active: true},
		{Name: "Amazon KDP", Slug: "amazon-kdp", CommissionRate: decimal.NewFromFloat(30.0), DefaultCurrency: "USD", Color: "#FF9900", Active: true},
		{Name: "Shopify", Slug: "shopify", CommissionRate: decimal.NewFromFloat(2.9), DefaultCurrency: "USD", Color: "#96BF48", Active: true},
		{Name: "Itch.io", Slug: "itch-io", CommissionRate: decimal.NewFromFloat(10.0), DefaultCurrency: "USD", Color: "#FA5C5C", Active: true},
		{Name: "Bandcamp", Slug: "bandcamp", CommissionRate: decimal.NewFromFloat(15.0), DefaultCurrency: "USD", Color: "#629AA9", Active: true},
	}

	for _, platform := range defaultPlatforms {
		var count int64
		db.Model(&models.Platform{}).Where("slug = ?", platform.Slug).Count(&count)

		if count == 0 {
			if err := db.Create(&platform).Error; err != nil {
				log.Printf("Warning: Failed to seed platform %s: %v", platform.Slug, err)
			}
		}
	}

	log.Println("Initial data seeding completed")
	return nil
}

package database

import (
	"fmt"
	"log"
	"os"

	"quoteform-app/internal/domain/clients"
	"quoteform-app/internal/domain/forms"
	"quoteform-app/internal/domain/products"
	"quoteform-app/internal/domain/quotes"
	"quoteform-app/internal/domain/users"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal("DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	DB = db

	// Required for gen_random_uuid() defaults.
	if err := DB.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		log.Fatal("Failed to enable pgcrypto extension:", err)
	}

	if err := DB.AutoMigrate(
		&users.User{},
		&clients.Client{},
		&products.Product{},
		&forms.QuoteForm{},
		&forms.FormField{},
		&quotes.CustomerQuote{},
		&quotes.QuoteResponse{},
	); err != nil {
		log.Fatal("AutoMigrate error:", err)
	}

	fmt.Println("Connected and migrated successfully")
}

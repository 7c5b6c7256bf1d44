package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

const maxRetries = 5
const retryDelay = 5 * time.Second

// ConnectMySQL opens the GORM connection using environment variables.
//
// Supported env vars (local-friendly):
//   - DB_USER / DB_PASSWORD
//   - DB_HOST (default: 127.0.0.1)
//   - DB_PORT (default: 3306)
//   - DB_NAME (default: orcamento)
//
// The database container may still be starting when the API boots, so the
// connection is retried a few times before giving up.
func ConnectMySQL() *gorm.DB {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		getenvDefault("DB_USER", "root"),
		getenvDefault("DB_PASSWORD", ""),
		getenvDefault("DB_HOST", "127.0.0.1"),
		getenvDefault("DB_PORT", "3306"),
		getenvDefault("DB_NAME", "orcamento"),
	)

	var db *gorm.DB
	var err error
	for i := 0; i < maxRetries; i++ {
		db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
		if err == nil {
			return db
		}

		log.Printf("Failed to connect to database (try %d/%d): %v", i+1, maxRetries, err)
		if i < maxRetries-1 {
			time.Sleep(retryDelay)
		}
	}

	log.Fatalf("failed to connect to database after %d tries: %v", maxRetries, err)
	return nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

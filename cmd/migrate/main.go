// This file is used to apply the database schema
// How to run:
// go run cmd/migrate/main.go                 # Apply the schema against env-configured DB
// go run cmd/migrate/main.go -host db.local  # Override the database host
package main

import (
	"flag"
	"log"

	"github.com/joho/godotenv"
	"gorm.io/gorm/logger"

	"github.com/madenai/arqflow/config"
	"github.com/madenai/arqflow/internal/db"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	var (
		host     = flag.String("host", config.GetEnv("DB_HOST", db.DefaultHost), "Database host")
		user     = flag.String("user", config.GetEnv("DB_USER", db.DefaultUser), "Database user")
		password = flag.String("password", config.GetEnv("DB_PASSWORD", db.DefaultPassword), "Database password")
		name     = flag.String("name", config.GetEnv("DB_NAME", db.DefaultDBName), "Database name")
		port     = flag.Int("port", config.GetEnvInt("DB_PORT", db.DefaultPort), "Database port")
	)
	flag.Parse()

	// db.New runs the schema migration and admin seeding on connect
	_, err := db.New(db.Options{
		Host:     *host,
		User:     *user,
		Password: *password,
		DBName:   *name,
		Port:     *port,
		LogLevel: logger.Info,
	})
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Schema is up to date")
}

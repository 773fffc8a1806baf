package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	api "github.com/rvieira/portfolio-cms/api"
	"github.com/rvieira/portfolio-cms/auth"
	"github.com/rvieira/portfolio-cms/config"
	"github.com/rvieira/portfolio-cms/database"
	"github.com/rvieira/portfolio-cms/models"
	"github.com/rvieira/portfolio-cms/storage"
)

func main() {
	fmt.Println("Initializing app...")

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}

	connStr := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", ""),
		getEnv("DB_NAME", "portfolio"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_SSLMODE", "disable"),
	)

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             10 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  connStr,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		PrepareStmt: false,
		Logger:      newLogger,
	})
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}

	// Test database connection
	var result int
	if err := db.Raw("SELECT 1").Scan(&result).Error; err != nil {
		fmt.Printf("Error testing database connection: %v\n", err)
		os.Exit(1)
	}

	if err := database.Migrate(db); err != nil {
		fmt.Printf("Error migrating database: %v\n", err)
		os.Exit(1)
	}

	currentDB := database.New(db)

	// Seed the admin account when credentials are provided
	if email := os.Getenv("ADMIN_EMAIL"); email != "" {
		if err := seedAdmin(currentDB, email, os.Getenv("ADMIN_PASSWORD")); err != nil {
			fmt.Printf("Error seeding admin user: %v\n", err)
			os.Exit(1)
		}
	}

	c := config.New()
	bucket, err := config.Require(c, "AWS_S3_BUCKET")
	if err != nil {
		fmt.Printf("Error reading storage config: %v\n", err)
		os.Exit(1)
	}
	region, err := config.Require(c, "AWS_REGION")
	if err != nil {
		fmt.Printf("Error reading storage config: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.NewS3Store(context.Background(), bucket, region)
	if err != nil {
		fmt.Printf("Error initializing object storage: %v\n", err)
		os.Exit(1)
	}

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(currentDB, store)
	if err != nil {
		fmt.Printf("Error initializing server: %v\n", err)
		os.Exit(1)
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	fmt.Printf("Closing server: %v\n", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

// seedAdmin creates the admin account if it does not exist yet.
func seedAdmin(db database.Database, email, password string) error {
	if password == "" {
		return fmt.Errorf("ADMIN_PASSWORD must be set when ADMIN_EMAIL is set")
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	return db.UserRepo().EnsureUser(&models.User{
		Name:     getEnv("ADMIN_NAME", "Admin"),
		Email:    email,
		Password: hash,
	})
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}

// getEnv returns the value of the environment variable key or a fallback value.
func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

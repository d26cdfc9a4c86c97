package main

import (
	"log"
	"os"
	"time"

	"comptaflow-backend/internal/config"
	"comptaflow-backend/internal/logger"
	"comptaflow-backend/internal/models"
	"comptaflow-backend/internal/repository"
	"comptaflow-backend/internal/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on system env")
	}

	if err := logger.Init(os.Getenv("LOG_LEVEL")); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	db := config.InitDB()

	db.AutoMigrate(
		&models.Tenant{},
		&models.Document{},
		&models.AccountRule{},
		&models.BankTransaction{},
		&models.MatchRun{},
	)

	// Seed the demo tenant on first boot
	tenantRepo := repository.NewTenantRepository(db)
	if err := tenantRepo.EnsureByName(&models.Tenant{
		ID:        uuid.New(),
		Name:      "Cabinet Demo",
		CreatedAt: time.Now().UTC(),
	}); err != nil {
		log.Fatalf("failed to seed demo tenant: %v", err)
	}

	r := gin.Default()
	// CORS config
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Tenant-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, db, logger.Get())

	r.Run(":8080")
}

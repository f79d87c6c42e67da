package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/SundayYogurt/product_service/config"
	"github.com/SundayYogurt/product_service/infra/queue"
	"github.com/SundayYogurt/product_service/internal/api/rest/handlers"
	"github.com/SundayYogurt/product_service/internal/api/rest/middleware"
	"github.com/SundayYogurt/product_service/internal/domain"
	"github.com/SundayYogurt/product_service/internal/repository"
	"github.com/SundayYogurt/product_service/internal/services"
	"github.com/SundayYogurt/product_service/pkg/logger"
)

func StartServer(cfg config.Config) {
	log := logger.New(cfg.Env)
	defer func() { _ = log.Sync() }()

	app := fiber.New()

	// ---------- CORS ----------
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Content-Type, Accept, x-api-key, x-actor",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	// ---------- DB ----------
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DatabaseDSN,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("database connection error: %v", err)
	}
	log.Infow("database connected")

	// ---------- MIGRATION (guarded by advisory lock) ----------
	const migrateLockID int64 = 20260901

	if err := db.Exec("SELECT pg_advisory_lock(?)", migrateLockID).Error; err != nil {
		log.Fatalf("migration lock error: %v", err)
	}
	defer func() {
		_ = db.Exec("SELECT pg_advisory_unlock(?)", migrateLockID).Error
	}()

	if err := db.AutoMigrate(
		&domain.Product{},
		&domain.ProductAudit{},
	); err != nil {
		log.Fatalf("migration error: %v", err)
	}
	log.Infow("migration successful")

	// ---------- Infra ----------
	producer := queue.NewProducer(
		cfg.KafkaBroker,
		cfg.KafkaTopic,
		cfg.KafkaUsername,
		cfg.KafkaPassword,
	)
	defer func() { _ = producer.Close() }()

	// ---------- Repositories ----------
	productRepo := repository.NewProductRepository(db, log)
	auditRepo := repository.NewAuditRepository(db, log)

	// ---------- Service ----------
	productSvc := services.NewProductService(productRepo, auditRepo, producer, log)

	// ---------- Handler ----------
	productHandler := handlers.NewProductHandler(productSvc)
	productHandler.SetupRoutes(app, middleware.APIKeyAuth(cfg.APIKey))

	// ---------- Health ----------
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// ---------- Listen ----------
	log.Infow("listening", "addr", cfg.ServerPort)
	log.Fatal(app.Listen(cfg.ServerPort))
}

package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/eduolivag5/backmarket-api/internal/config"
	"github.com/eduolivag5/backmarket-api/internal/database"
	"github.com/eduolivag5/backmarket-api/internal/modules/brand"
	"github.com/eduolivag5/backmarket-api/internal/modules/category"
	"github.com/eduolivag5/backmarket-api/internal/modules/color"
	"github.com/eduolivag5/backmarket-api/internal/modules/price"
	"github.com/eduolivag5/backmarket-api/internal/modules/product"
	"github.com/eduolivag5/backmarket-api/internal/modules/review"
	"github.com/eduolivag5/backmarket-api/internal/modules/status"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}
	cfg := config.Load()

	db, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	// ── Catalog modules ─────────────────────────────────────
	productRepo := product.NewPostgresRepository(db)
	productService := product.NewService(productRepo)
	product.NewHandler(productService).RegisterRoutes(router)

	priceRepo := price.NewPostgresRepository(db)
	priceService := price.NewService(priceRepo)
	price.NewHandler(priceService).RegisterRoutes(router)

	brandRepo := brand.NewPostgresRepository(db)
	brandService := brand.NewService(brandRepo)
	brand.NewHandler(brandService).RegisterRoutes(router)

	colorRepo := color.NewPostgresRepository(db)
	colorService := color.NewService(colorRepo)
	color.NewHandler(colorService).RegisterRoutes(router)

	// ── Reference data (read-only) ──────────────────────────
	category.NewHandler(category.NewPostgresRepository(db)).RegisterRoutes(router)
	status.NewHandler(
		status.NewPhoneStatusRepository(db),
		status.NewBatteryStatusRepository(db),
	).RegisterRoutes(router)
	review.NewHandler(review.NewPostgresRepository(db)).RegisterRoutes(router)

	// ── Start Server ────────────────────────────────────────
	log.Printf("catalog API listening on :%s", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, router))
}

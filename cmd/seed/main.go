// seed aplica el esquema y carga datos iniciales: usuario admin, categorías,
// marcas y un catálogo de muestra con su stock de apertura.
//
// Uso: go run ./cmd/seed
// Es idempotente: los registros que ya existen se omiten.
package main

import (
	"context"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/smartshoe/pos-api/internal/domain/entity"
	"github.com/smartshoe/pos-api/internal/infrastructure/postgres"
	"github.com/smartshoe/pos-api/pkg/config"
	"github.com/smartshoe/pos-api/pkg/logger"
)

const schemaPath = "internal/infrastructure/postgres/migrations/001_schema.sql"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	schema, err := os.ReadFile(schemaPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", schemaPath).Msg("leer esquema")
	}
	if _, err := pool.Exec(ctx, string(schema)); err != nil {
		log.Fatal().Err(err).Msg("aplicar esquema")
	}
	log.Info().Msg("esquema aplicado")

	userRepo := postgres.NewUserRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	brandRepo := postgres.NewBrandRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)

	// ── Usuario admin ─────────────────────────────────────────────────────────
	if existing, err := userRepo.GetByUsername("admin"); err != nil {
		log.Fatal().Err(err).Msg("buscar admin")
	} else if existing == nil {
		hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Msg("hash de contraseña")
		}
		admin := &entity.User{
			ID:           uuid.NewString(),
			Username:     "admin",
			Email:        "admin@smartshoe.local",
			PasswordHash: string(hash),
			Role:         entity.RoleAdmin,
			CreatedAt:    time.Now(),
		}
		if err := userRepo.Create(admin); err != nil {
			log.Fatal().Err(err).Msg("crear admin")
		}
		log.Info().Str("username", "admin").Msg("usuario admin creado (cambiar la contraseña)")
	}

	// ── Categorías y marcas ───────────────────────────────────────────────────
	categories := []entity.Category{
		{Name: "Sneakers", Description: "Zapatillas casuales y deportivas"},
		{Name: "Running", Description: "Calzado de carrera"},
		{Name: "Formal", Description: "Zapatos de vestir"},
		{Name: "Boots", Description: "Botas y botines"},
		{Name: "Sandals", Description: "Sandalias y chanclas"},
		{Name: "Kids", Description: "Calzado infantil"},
	}
	for _, c := range categories {
		c.ID = uuid.NewString()
		c.CreatedAt = time.Now()
		if err := categoryRepo.Create(&c); err != nil {
			log.Warn().Err(err).Str("name", c.Name).Msg("categoría omitida")
		}
	}

	brands := []entity.Brand{
		{Name: "Nike", Country: "USA"},
		{Name: "Adidas", Country: "Germany"},
		{Name: "Puma", Country: "Germany"},
		{Name: "Bata", Country: "Switzerland"},
		{Name: "Clarks", Country: "UK"},
	}
	for _, b := range brands {
		b.ID = uuid.NewString()
		b.CreatedAt = time.Now()
		if err := brandRepo.Create(&b); err != nil {
			log.Warn().Err(err).Str("name", b.Name).Msg("marca omitida")
		}
	}

	// ── Catálogo de muestra con stock de apertura ─────────────────────────────
	type seedProduct struct {
		product entity.Product
		stock   int
	}
	price := func(v string) decimal.Decimal { return decimal.RequireFromString(v) }
	samples := []seedProduct{
		{entity.Product{SKU: "NIK-SNE-SEED01", Name: "Air Max 90", Brand: "Nike", Category: "Sneakers",
			Size: "42", Color: "White", PurchasePrice: price("4500"), RetailPrice: price("7500"),
			WholesalePrice: price("6200"), Supplier: "Nairobi Footwear Ltd"}, 20},
		{entity.Product{SKU: "ADI-RUN-SEED02", Name: "Ultraboost 22", Brand: "Adidas", Category: "Running",
			Size: "43", Color: "Black", PurchasePrice: price("6000"), RetailPrice: price("9800"),
			WholesalePrice: price("8200"), Supplier: "Nairobi Footwear Ltd"}, 15},
		{entity.Product{SKU: "PUM-SNE-SEED03", Name: "Suede Classic", Brand: "Puma", Category: "Sneakers",
			Size: "41", Color: "Navy", PurchasePrice: price("3200"), RetailPrice: price("5400"),
			WholesalePrice: price("4500"), Supplier: "Mombasa Imports"}, 25},
		{entity.Product{SKU: "CLA-FOR-SEED04", Name: "Desert Oxford", Brand: "Clarks", Category: "Formal",
			Size: "44", Color: "Brown", PurchasePrice: price("5500"), RetailPrice: price("8900"),
			WholesalePrice: price("7400"), Supplier: "Mombasa Imports"}, 10},
		{entity.Product{SKU: "BAT-KID-SEED05", Name: "School Trainer", Brand: "Bata", Category: "Kids",
			Size: "34", Color: "Black", PurchasePrice: price("1200"), RetailPrice: price("2200"),
			WholesalePrice: price("1800"), Supplier: "Bata Kenya"}, 40},
	}
	for _, s := range samples {
		if existing, err := productRepo.GetBySKU(s.product.SKU); err != nil {
			log.Fatal().Err(err).Str("sku", s.product.SKU).Msg("buscar producto")
		} else if existing != nil {
			continue
		}
		s.product.ID = uuid.NewString()
		s.product.CreatedAt = time.Now()
		s.product.UpdatedAt = s.product.CreatedAt
		if err := productRepo.Create(&s.product); err != nil {
			log.Fatal().Err(err).Str("sku", s.product.SKU).Msg("crear producto")
		}
		opening := &entity.InventoryTransaction{
			ID:          uuid.NewString(),
			ProductID:   s.product.ID,
			Type:        entity.TxTypeIn,
			Quantity:    s.stock,
			BatchNumber: "SEED-001",
			Notes:       "Stock de apertura",
			CreatedAt:   time.Now(),
		}
		if err := inventoryRepo.Create(opening); err != nil {
			log.Fatal().Err(err).Str("sku", s.product.SKU).Msg("stock de apertura")
		}
		log.Info().Str("sku", s.product.SKU).Int("stock", s.stock).Msg("producto sembrado")
	}

	log.Info().Msg("seed completado")
}

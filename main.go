package main

import (
	"log"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/lequanQL/glassity-api/config"
	orderController "github.com/lequanQL/glassity-api/controllers/order"
	"github.com/lequanQL/glassity-api/models"
	"github.com/lequanQL/glassity-api/routes"
	"github.com/lequanQL/glassity-api/seeds"
	"github.com/lequanQL/glassity-api/store"
)

func main() {
	log.Println("✅ Starting application...")

	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	// Storage strategy: durable directory store, or the no-op store when
	// running ephemeral (seed fresh on every start).
	kv := initStorage(cfg)

	deps := buildDeps(cfg, kv)
	loadCollections(deps)
	deps.OrderHub = orderController.NewHub(deps.Orders)

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, deps)

	// Start server
	log.Printf("🚀 Server running on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func initStorage(cfg *config.Config) store.KeyValue {
	if cfg.Ephemeral {
		log.Println("🖥️ Ephemeral mode: no durable storage, seeding fresh")
		return store.NopStore{}
	}
	kv, err := store.NewDirStore(cfg.DataDir)
	if err != nil {
		log.Fatalf("❌ Failed to open data directory %s: %v", cfg.DataDir, err)
	}
	log.Printf("🌐 Durable storage at %s", cfg.DataDir)
	return kv
}

// buildDeps constructs every store once and hands them to the routes; the
// collections share one storage strategy and one write-delay setting.
func buildDeps(cfg *config.Config, kv store.KeyValue) *routes.Deps {
	products := store.NewCollection(store.CollectionConfig[models.Product]{
		Key:        "products",
		KV:         kv,
		Seed:       seedSource(cfg, "products", seeds.Products),
		IDOf:       func(p models.Product) int { return p.ID },
		WithID:     func(p models.Product, id int) models.Product { p.ID = id; return p },
		WriteDelay: cfg.WriteDelay,
	})
	customers := store.NewCollection(store.CollectionConfig[models.Customer]{
		Key:        "customers",
		KV:         kv,
		Seed:       seedSource(cfg, "customers", seeds.Customers),
		IDOf:       func(c models.Customer) int { return c.ID },
		WithID:     func(c models.Customer, id int) models.Customer { c.ID = id; return c },
		WriteDelay: cfg.WriteDelay,
	})
	orders := store.NewCollection(store.CollectionConfig[models.Order]{
		Key:        "orders",
		KV:         kv,
		Seed:       seedSource(cfg, "orders", seeds.Orders),
		IDOf:       func(o models.Order) int { return o.ID },
		WithID:     func(o models.Order, id int) models.Order { o.ID = id; return o },
		WriteDelay: cfg.WriteDelay,
	})
	users := store.NewCollection(store.CollectionConfig[models.User]{
		Key:        "users",
		KV:         kv,
		Seed:       seedSource(cfg, "users", seeds.Users),
		IDOf:       func(u models.User) int { return u.ID },
		WithID:     func(u models.User, id int) models.User { u.ID = id; return u },
		WriteDelay: cfg.WriteDelay,
	})

	return &routes.Deps{
		JWTSecret: cfg.JWTSecret,
		Products:  products,
		Customers: customers,
		Orders:    orders,
		Users:     users,
		Session:   store.NewSingle[models.User]("currentUser", kv),
		Carts:     store.NewCarts(),
	}
}

func loadCollections(deps *routes.Deps) {
	if err := deps.Products.Load(); err != nil {
		log.Printf("❌ Products collection degraded: %v", err)
	}
	if err := deps.Customers.Load(); err != nil {
		log.Printf("❌ Customers collection degraded: %v", err)
	}
	if err := deps.Orders.Load(); err != nil {
		log.Printf("❌ Orders collection degraded: %v", err)
	}
	if err := deps.Users.Load(); err != nil {
		log.Printf("❌ Users collection degraded: %v", err)
	}
}

// seedSource prefers an on-disk seed directory when configured, falling
// back to the embedded documents.
func seedSource(cfg *config.Config, name string, embedded []byte) store.SeedSource {
	if cfg.SeedDir != "" {
		return store.FileSeed(filepath.Join(cfg.SeedDir, name+".json"))
	}
	return store.BytesSeed(embedded)
}

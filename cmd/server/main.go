package main // Entry point package

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/dinosaur-museum/internal/catalog"
	"github.com/iliyamo/dinosaur-museum/internal/config"
	"github.com/iliyamo/dinosaur-museum/internal/database"
	"github.com/iliyamo/dinosaur-museum/internal/handler"
	"github.com/iliyamo/dinosaur-museum/internal/middleware"
	"github.com/iliyamo/dinosaur-museum/internal/queue"
	"github.com/iliyamo/dinosaur-museum/internal/repository"
	"github.com/iliyamo/dinosaur-museum/internal/router"
	"github.com/iliyamo/dinosaur-museum/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file loaded; using process environment")
	}
	cfg := config.Load()
	cacheCfg := config.LoadCacheConfig()
	rlCfg := config.LoadRateLimitConfig()
	evCfg := config.LoadEventsConfig()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	src, closeSrc := openSource(ctx, cfg)
	defer closeSrc()

	cat := catalog.New(src)
	st, err := cat.Load(ctx)
	if err != nil {
		log.Fatalf("load catalog: %v", err)
	}
	log.Printf("catalog loaded from %s: %d dinosaurs, %d ticket types, %d extras",
		cfg.DataSource, st.Dinosaurs, st.TicketTypes, st.Extras)

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; response cache and rate limiting disabled")
	} else {
		defer rdb.Close()
	}
	cache := middleware.NewRedisCache(cacheCfg, rdb)
	limit := middleware.NewTokenBucket(rlCfg, rdb)
	loginLimit := middleware.NewTokenBucket(rlCfg.Login(), rdb)

	var pub handler.ReceiptPublisher
	if evCfg.Enabled {
		pub = service.NewReceiptPublisher(evCfg)
		go func() {
			if err := queue.StartReceiptConsumer(ctx, evCfg); err != nil && !errors.Is(err, context.Canceled) {
				log.Printf("receipt consumer stopped: %v", err)
			}
		}()
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.Logger())

	router.RegisterRoutes(e, cat)
	router.RegisterDinosaurs(e, handler.NewDinosaurHandler(cat), cache)
	router.RegisterTickets(e, handler.NewTicketHandler(cat, pub), cache, limit)
	router.RegisterAdmin(e, handler.NewAdminHandler(cfg, cat, purger(cacheCfg, rdb)), cfg.JWTSecret, loginLimit)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}

// openSource returns the configured catalog source and a cleanup func.
func openSource(ctx context.Context, cfg config.Config) (catalog.Source, func()) {
	if cfg.DataSource != config.SourceMySQL {
		return repository.FixtureSource{}, func() {}
	}
	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	if err := database.EnsureSchema(ctx, db); err != nil {
		log.Fatalf("%v", err)
	}
	src := repository.NewMySQLSource(db)
	if cfg.DBSeed {
		if err := seed(ctx, src); err != nil {
			log.Fatalf("%v", err)
		}
		log.Println("database seeded from bundled fixtures")
	}
	return src, func() { _ = db.Close() }
}

func seed(ctx context.Context, dst *repository.MySQLSource) error {
	var fx repository.FixtureSource
	dinos, err := fx.Dinosaurs(ctx)
	if err != nil {
		return err
	}
	table, err := fx.PriceTable(ctx)
	if err != nil {
		return err
	}
	return dst.Seed(ctx, dinos, table)
}

func purger(cfg config.CacheConfig, rdb *redis.Client) func(ctx context.Context) (int, error) {
	return func(ctx context.Context) (int, error) {
		return middleware.PurgeCache(ctx, cfg, rdb)
	}
}

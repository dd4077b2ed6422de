package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/SergeyBogomolovv/restaurant-pos/internal/app"
	"github.com/SergeyBogomolovv/restaurant-pos/internal/config"
	"github.com/SergeyBogomolovv/restaurant-pos/internal/entities"
	"github.com/SergeyBogomolovv/restaurant-pos/internal/handler"
	"github.com/SergeyBogomolovv/restaurant-pos/internal/postgres"
	"github.com/SergeyBogomolovv/restaurant-pos/internal/publisher"
	"github.com/SergeyBogomolovv/restaurant-pos/internal/repo"
	"github.com/SergeyBogomolovv/restaurant-pos/internal/service"
	"github.com/SergeyBogomolovv/restaurant-pos/pkg/cache"
	"github.com/SergeyBogomolovv/restaurant-pos/pkg/locker"
	"github.com/SergeyBogomolovv/restaurant-pos/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

// @title           Restaurant POS API
// @version         1.0
// @description     Жизненный цикл заказов ресторана
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	db, err := postgres.New(ctx, conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	migrations, err := postgres.EmbeddedMigrations()
	panicIfErr("failed to load migrations", err)
	panicIfErr("failed to migrate", postgres.Migrate(ctx, logger, db, migrations))

	orderRepo := repo.NewOrderRepo(db, sq.Dollar)
	catalogRepo := repo.NewCatalogRepo(db, sq.Dollar)
	txManager := trm.NewManager(db)

	menuCache := cache.NewLRUCache[entities.MenuItem](conf.Cache.Capacity, conf.Cache.TTL)
	catalog := service.NewCachedCatalog(catalogRepo, menuCache)
	catalogListener := postgres.NewCatalogListener(logger, conf.Postgres, catalog)

	codeLocker := newLocker(logger, conf)
	events := newPublisher(logger, conf)

	orderService := service.NewOrderService(logger, txManager, orderRepo, orderRepo, catalog, codeLocker, events, service.Options{
		CodeAttempts:        conf.Orders.CodeAttempts,
		MergeReasonRequired: conf.Orders.MergeReasonRequired,
		PublishTimeout:      conf.Events.PublishTimeout,
	})

	httpHandler := handler.NewHTTPHandler(logger, orderService)
	kitchenHandler := handler.NewKafkaHandler(logger, conf.Kafka, orderService)

	app := app.New(logger, conf)

	app.SetHTTPHandlers(httpHandler)
	app.SetConsumers(kitchenHandler)
	app.SetStarters(menuCache, catalogListener)
	app.SetClosers(events, catalogListener)

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

// newLocker guards order code allocation across instances when Redis is configured.
func newLocker(logger *slog.Logger, conf config.Config) service.Locker {
	if conf.Redis.Addr == "" {
		logger.Warn("redis is not configured, order codes are locked in-process only")
		return locker.NewLocalLocker()
	}
	client := redis.NewClient(&redis.Options{
		Addr:     conf.Redis.Addr,
		Password: conf.Redis.Password,
		DB:       conf.Redis.DB,
	})
	return locker.NewRedisLocker(client, conf.Orders.LockTTL)
}

type eventPublisher interface {
	service.EventPublisher
	io.Closer
}

func newPublisher(logger *slog.Logger, conf config.Config) eventPublisher {
	switch conf.Events.Driver {
	case "rabbitmq":
		p, err := publisher.NewRabbitPublisher(logger, conf.RabbitMQ)
		panicIfErr("failed to connect to rabbitmq", err)
		return p
	case "none":
		return publisher.NewNoopPublisher(logger)
	default:
		return publisher.NewKafkaPublisher(logger, conf.Kafka)
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}

package wire

import (
	"fmt"
	"sync"

	"dms-server/cmd/config"
	"dms-server/internal/formbuilder/export"
	"dms-server/internal/formbuilder/persistence"
	"dms-server/internal/formbuilder/usecases"
	"dms-server/internal/infra/cache"
	"dms-server/internal/infra/pubsub"
	"dms-server/internal/infra/sql"
	"dms-server/internal/logger"
	"dms-server/internal/shared_kernel/authz"
)

// Shared infrastructure is created once and handed to every injector, the
// in-memory sqlite database in particular only exists while its connection is
// open.
var (
	databaseOnce sync.Once
	database     sql.ORM
	databaseErr  error

	cacheOnce sync.Once
	formCache cache.Cache
	cacheErr  error

	pubSubOnce    sync.Once
	pubSubFactory *pubsub.Factory
	pubSubErr     error
)

func provideAppConfig() config.AppConfig {
	return config.LoadConfig()
}

func provideDatabase(cfg config.AppConfig) (sql.ORM, error) {
	databaseOnce.Do(func() {
		database, databaseErr = openDatabase(cfg.Database)
	})
	return database, databaseErr
}

func openDatabase(cfg config.DatabaseConfig) (sql.ORM, error) {
	opts := []sql.Option{
		sql.WithAutoMigration(cfg.AutoMigrate),
		sql.WithQueryTimeout(cfg.QueryTimeout),
	}
	if cfg.LogSQL {
		opts = append(opts, sql.WithLogger(logger.NewGormLogger(logger.NewDefaultLogger(), cfg.LogLevel)))
	}

	switch cfg.Driver {
	case config.DriverSQLite:
		if cfg.DSN == "" {
			return sql.NewMemoryORM(opts...)
		}
		return sql.NewSQLiteORM(cfg.DSN, opts...)
	case config.DriverPostgres:
		return sql.NewPosgreORM(cfg.DSN, opts...)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func provideCache(cfg config.AppConfig) (cache.Cache, error) {
	cacheOnce.Do(func() {
		switch cfg.Cache.Driver {
		case config.CacheRedis:
			redisConfig := cache.DefaultRedisConfig()
			redisConfig.Addr = cfg.Redis.Addr
			redisConfig.Password = cfg.Redis.Password
			redisConfig.DB = cfg.Redis.DB
			formCache, cacheErr = cache.NewRedisCache(redisConfig)
		default:
			formCache, cacheErr = cache.New(cache.DefaultConfig())
		}
	})
	return formCache, cacheErr
}

func provideFormRepository(cfg config.AppConfig, orm sql.ORM, store cache.Cache) (*persistence.CachedFormRepository, error) {
	repository, err := persistence.NewFormRepository(orm)
	if err != nil {
		return nil, err
	}

	return persistence.NewCachedFormRepository(repository, store, cfg.Cache.TTL), nil
}

func providePubSubFactory(cfg config.AppConfig) (*pubsub.Factory, error) {
	pubSubOnce.Do(func() {
		pubSubFactory, pubSubErr = pubsub.NewFactory(pubsub.FactoryOptions{
			Environment:       cfg.General.Environment,
			KafkaBrokers:      cfg.Kafka.Brokers,
			ConsumerGroup:     cfg.Kafka.Group,
			SchemaRegistryURL: cfg.Kafka.SchemaRegistry,
		})
	})
	return pubSubFactory, pubSubErr
}

func providePublisherFactory(factory *pubsub.Factory) pubsub.PublisherFactory {
	return factory.GetPublisherFactory()
}

func provideConsumerFactory(factory *pubsub.Factory) pubsub.ConsumerFactory {
	return factory.GetConsumerFactory()
}

func provideAuthorizer(cfg config.AppConfig) authz.Authorizer {
	return authz.NewRoleAuthorizer(cfg.Authz.DefaultRole, cfg.Authz.Roles)
}

func provideRecordService(
	forms usecases.FormRepository,
	store usecases.SchemaStore,
	introspector usecases.SchemaIntrospector,
	publisher usecases.EventPublisher,
	authorizer authz.Authorizer,
) *usecases.SimpleRecordService {
	return usecases.NewRecordService(forms, store, introspector, publisher, authorizer,
		export.NewXLSXRenderer(),
		export.NewPDFRenderer(),
	)
}

func provideSweeperSchedule(cfg config.AppConfig) string {
	return cfg.Sweeper.Schedule
}

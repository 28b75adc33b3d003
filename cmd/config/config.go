package config

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	CacheMemory = "memory"
	CacheRedis  = "redis"
)

var loadConfigOnce sync.Once
var configInstance AppConfig

// BindFlags registers the command line overrides on fs.
func BindFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "extra directory searched for server.yaml")
	fs.String("log-level", "", "log level (debug, info, warn, error)")
}

// LoadConfig reads server.yaml once. Command line flags must have been parsed
// into pflag.CommandLine before the first call.
func LoadConfig() AppConfig {
	loadConfigOnce.Do(func() {
		v := viper.GetViper()
		if flag := pflag.CommandLine.Lookup("config"); flag != nil && flag.Value.String() != "" {
			v.AddConfigPath(flag.Value.String())
		}
		if flag := pflag.CommandLine.Lookup("log-level"); flag != nil && flag.Changed {
			if err := v.BindPFlag("general.log_level", flag); err != nil {
				panic(fmt.Errorf("binding log-level flag: %w", err))
			}
		}

		cfg, err := readConfig(v, "server")
		if err != nil {
			panic(fmt.Errorf("fatal error config file: %w", err))
		}
		configInstance = cfg
	})

	return configInstance
}

func readConfig(v *viper.Viper, name string) (AppConfig, error) {
	v.SetEnvPrefix("dms_server")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetConfigName(name)
	v.AddConfigPath("config")
	v.AddConfigPath("/config")
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return AppConfig{}, err
	}

	return AppConfig{
		General: GeneralConfig{
			LogLevel:    v.GetString("general.log_level"),
			Environment: v.GetString("general.environment"),
		},
		HTTP: HTTPConfig{
			Addr:           v.GetString("http.addr"),
			AllowedOrigins: v.GetStringSlice("http.allowed_origins"),
		},
		Database: DatabaseConfig{
			Driver:       v.GetString("database.driver"),
			DSN:          v.GetString("database.dsn"),
			LogSQL:       v.GetBool("database.log_sql"),
			LogLevel:     v.GetString("database.log_level"),
			AutoMigrate:  v.GetBool("database.auto_migrate"),
			QueryTimeout: v.GetDuration("database.query_timeout"),
		},
		Cache: CacheConfig{
			Driver: v.GetString("cache.driver"),
			TTL:    v.GetDuration("cache.ttl"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("cache.redis.addr"),
			Password: v.GetString("cache.redis.password"),
			DB:       v.GetInt("cache.redis.db"),
		},
		Kafka: KafkaConfig{
			Brokers:        v.GetStringSlice("kafka.brokers"),
			Group:          v.GetString("kafka.group"),
			SchemaRegistry: v.GetString("kafka.schema_registry"),
		},
		Authz: AuthzConfig{
			DefaultRole: v.GetString("authz.default_role"),
			Roles:       v.GetStringMapStringSlice("authz.roles"),
		},
		Sweeper: SweeperConfig{
			Enabled:  v.GetBool("sweeper.enabled"),
			Schedule: v.GetString("sweeper.schedule"),
		},
	}, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("general.log_level", "info")
	v.SetDefault("general.environment", "production")
	v.SetDefault("http.addr", ":3000")
	v.SetDefault("database.driver", DriverPostgres)
	v.SetDefault("database.log_level", "warn")
	v.SetDefault("database.auto_migrate", true)
	v.SetDefault("database.query_timeout", 10*time.Second)
	v.SetDefault("cache.driver", CacheMemory)
	v.SetDefault("cache.ttl", 5*time.Minute)
	v.SetDefault("kafka.group", "dms-server")
	v.SetDefault("authz.default_role", "viewer")
	v.SetDefault("sweeper.schedule", "@every 1h")
}

type AppConfig struct {
	General  GeneralConfig
	HTTP     HTTPConfig
	Database DatabaseConfig
	Cache    CacheConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Authz    AuthzConfig
	Sweeper  SweeperConfig
}

type GeneralConfig struct {
	LogLevel    string
	Environment string
}

type HTTPConfig struct {
	Addr           string
	AllowedOrigins []string
}

type DatabaseConfig struct {
	Driver       string
	DSN          string
	LogSQL       bool
	LogLevel     string
	AutoMigrate  bool
	QueryTimeout time.Duration
}

type CacheConfig struct {
	Driver string
	TTL    time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type KafkaConfig struct {
	Brokers        []string
	Group          string
	SchemaRegistry string
}

// AuthzConfig maps a role to its grants, written as "Resource:action" with
// "*" granting everything.
type AuthzConfig struct {
	DefaultRole string
	Roles       map[string][]string
}

type SweeperConfig struct {
	Enabled  bool
	Schedule string
}

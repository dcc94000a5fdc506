package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const envPrefix = "STOREFRONT_"

type Config struct {
	Server     ServerConfig     `json:"server" yaml:"server"`
	Database   DatabaseConfig   `json:"database" yaml:"database"`
	Redis      RedisConfig      `json:"redis" yaml:"redis"`
	Storage    StorageConfig    `json:"storage" yaml:"storage"`
	Storefront StorefrontConfig `json:"storefront" yaml:"storefront"`
	Logging    LoggingConfig    `json:"logging" yaml:"logging"`
}

type ServerConfig struct {
	Host           string   `json:"host" yaml:"host"`
	Port           int      `json:"port" yaml:"port"`
	MetricsPort    int      `json:"metrics_port" yaml:"metrics_port"`
	RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	AllowedOrigins []string `json:"allowed_origins" yaml:"allowed_origins"`
}

type DatabaseConfig struct {
	Driver         string `json:"driver" yaml:"driver"`
	Host           string `json:"host" yaml:"host"`
	Port           int    `json:"port" yaml:"port"`
	User           string `json:"user" yaml:"user"`
	Password       string `json:"password" yaml:"password"`
	DBName         string `json:"dbname" yaml:"dbname"`
	SSLMode        string `json:"sslmode" yaml:"sslmode"`
	MigrationsPath string `json:"migrations_path" yaml:"migrations_path"`
}

type RedisConfig struct {
	Host     string `json:"host" yaml:"host"`
	Port     int    `json:"port" yaml:"port"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
}

// StorageConfig picks the backends. "memory" keeps everything in process,
// which is what tests and local runs without Redis/Postgres use.
type StorageConfig struct {
	Carts   string `json:"carts" yaml:"carts"`
	Content string `json:"content" yaml:"content"`
}

type StorefrontConfig struct {
	CartKey         string   `json:"cart_key" yaml:"cart_key"`
	CartTTL         Duration `json:"cart_ttl" yaml:"cart_ttl"`
	SessionIdle     Duration `json:"session_idle" yaml:"session_idle"`
	JanitorInterval Duration `json:"janitor_interval" yaml:"janitor_interval"`
	CatalogPage     string   `json:"catalog_page" yaml:"catalog_page"`
	WatchCatalog    bool     `json:"watch_catalog" yaml:"watch_catalog"`
	AllowAdmin      bool     `json:"allow_admin" yaml:"allow_admin"`
}

type LoggingConfig struct {
	Level  string `json:"level" yaml:"level"`
	Format string `json:"format" yaml:"format"`
}

// Duration reads "90s"-style strings in both JSON and YAML.
type Duration struct {
	time.Duration
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Duration) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("duration must be a string like \"30s\": %w", err)
	}
	return d.parse(s)
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	return d.parse(s)
}

func (d *Duration) parse(s string) error {
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:           "0.0.0.0",
			Port:           8080,
			MetricsPort:    9090,
			RequestTimeout: Duration{15 * time.Second},
			AllowedOrigins: []string{"*"},
		},
		Database: DatabaseConfig{
			Driver:         "postgres",
			Host:           "localhost",
			Port:           5432,
			User:           "postgres",
			DBName:         "storefront",
			SSLMode:        "disable",
			MigrationsPath: "migrations",
		},
		Redis: RedisConfig{
			Host: "localhost",
			Port: 6379,
		},
		Storage: StorageConfig{
			Carts:   "redis",
			Content: "postgres",
		},
		Storefront: StorefrontConfig{
			CartKey:         "nhh_cart",
			CartTTL:         Duration{30 * 24 * time.Hour},
			SessionIdle:     Duration{30 * time.Minute},
			JanitorInterval: Duration{time.Minute},
			CatalogPage:     "web/hardware.html",
			WatchCatalog:    true,
			AllowAdmin:      true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// LoadConfig reads a JSON or YAML file on top of the defaults, then applies
// STOREFRONT_* environment overrides. An empty path skips the file.
func LoadConfig(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}

		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			err = yaml.Unmarshal(data, cfg)
		default:
			err = json.Unmarshal(data, cfg)
		}
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	strs := map[string]*string{
		"SERVER_HOST":       &c.Server.Host,
		"DATABASE_DRIVER":   &c.Database.Driver,
		"DATABASE_HOST":     &c.Database.Host,
		"DATABASE_USER":     &c.Database.User,
		"DATABASE_PASSWORD": &c.Database.Password,
		"DATABASE_NAME":     &c.Database.DBName,
		"REDIS_HOST":        &c.Redis.Host,
		"REDIS_PASSWORD":    &c.Redis.Password,
		"STORAGE_CARTS":     &c.Storage.Carts,
		"STORAGE_CONTENT":   &c.Storage.Content,
		"CATALOG_PAGE":      &c.Storefront.CatalogPage,
		"LOG_LEVEL":         &c.Logging.Level,
		"LOG_FORMAT":        &c.Logging.Format,
	}
	for name, field := range strs {
		if v, ok := lookup(envPrefix + name); ok {
			*field = v
		}
	}

	ints := map[string]*int{
		"SERVER_PORT":   &c.Server.Port,
		"METRICS_PORT":  &c.Server.MetricsPort,
		"DATABASE_PORT": &c.Database.Port,
		"REDIS_PORT":    &c.Redis.Port,
		"REDIS_DB":      &c.Redis.DB,
	}
	for name, field := range ints {
		v, ok := lookup(envPrefix + name)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s%s: %w", envPrefix, name, err)
		}
		*field = n
	}

	return nil
}

func (c *Config) Validate() error {
	switch c.Storage.Carts {
	case "redis", "memory":
	default:
		return fmt.Errorf("storage.carts: unknown backend %q", c.Storage.Carts)
	}

	switch c.Storage.Content {
	case "postgres", "memory":
	default:
		return fmt.Errorf("storage.content: unknown backend %q", c.Storage.Content)
	}

	switch c.Database.Driver {
	case "postgres", "pgx":
	default:
		return fmt.Errorf("database.driver: unknown driver %q", c.Database.Driver)
	}

	if c.Storefront.CartKey == "" {
		return fmt.Errorf("storefront.cart_key must not be empty")
	}
	if c.Storefront.SessionIdle.Duration <= 0 || c.Storefront.JanitorInterval.Duration <= 0 {
		return fmt.Errorf("storefront.session_idle and storefront.janitor_interval must be positive")
	}

	return nil
}

func (c *DatabaseConfig) GetDSN() string {
	return "host=" + c.Host +
		" port=" + strconv.Itoa(c.Port) +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.DBName +
		" sslmode=" + c.SSLMode
}

func (c *RedisConfig) Addr() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Address                string `mapstructure:"address"`
	Port                   int    `mapstructure:"port"`
	Mode                   string `mapstructure:"mode"`
	ShutdownTimeoutSeconds int    `mapstructure:"shutdown_timeout_seconds"`
}

type DatabaseConfig struct {
	Driver  string `mapstructure:"driver"` // sqlite / postgres
	Path    string `mapstructure:"path"`
	DSN     string `mapstructure:"dsn"`
	LogMode bool   `mapstructure:"log_mode"`
}

type JWTConfig struct {
	Secret      string `mapstructure:"secret"`
	Issuer      string `mapstructure:"issuer"`
	ExpireHours int    `mapstructure:"expire_hours"`
}

type SecurityConfig struct {
	BcryptCost    int    `mapstructure:"bcrypt_cost"`
	EncryptionKey string `mapstructure:"encryption_key"`
}

type LogConfig struct {
	File   string `mapstructure:"file"`
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // console / json
}

type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

type OpenAIConfig struct {
	APIKey         string `mapstructure:"api_key"`
	Model          string `mapstructure:"model"`
	BaseURL        string `mapstructure:"base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

type AMQPConfig struct {
	URL      string `mapstructure:"url"`
	Exchange string `mapstructure:"exchange"`
	Queue    string `mapstructure:"queue"`
}

type AppSubConfig struct {
	PageSize int `mapstructure:"page_size"`
}

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Security SecurityConfig `mapstructure:"security"`
	Log      LogConfig      `mapstructure:"log"`
	CORS     CORSConfig     `mapstructure:"cors"`
	OpenAI   OpenAIConfig   `mapstructure:"openai"`
	AMQP     AMQPConfig     `mapstructure:"amqp"`
	App      AppSubConfig   `mapstructure:"app"`
}

// TokenTTL returns the JWT lifetime.
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.JWT.ExpireHours) * time.Hour
}

// CompletionTimeout bounds a single call to the completion service.
func (c *Config) CompletionTimeout() time.Duration {
	return time.Duration(c.OpenAI.TimeoutSeconds) * time.Second
}

func (c *Config) ShutdownTimeout() time.Duration {
	return time.Duration(c.Server.ShutdownTimeoutSeconds) * time.Second
}

var (
	appConfig *Config
	mu        sync.RWMutex
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.address", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.shutdown_timeout_seconds", 10)

	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.path", "./data/finai.db")
	v.SetDefault("database.dsn", "")
	v.SetDefault("database.log_mode", false)

	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.issuer", "finai")
	v.SetDefault("jwt.expire_hours", 168)

	v.SetDefault("security.bcrypt_cost", 12)
	v.SetDefault("security.encryption_key", "")

	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetDefault("cors.allow_origins", []string{"*"})

	v.SetDefault("openai.api_key", "")
	v.SetDefault("openai.model", "gpt-4o-mini")
	v.SetDefault("openai.base_url", "")
	v.SetDefault("openai.timeout_seconds", 30)

	v.SetDefault("amqp.url", "")
	v.SetDefault("amqp.exchange", "finai")
	v.SetDefault("amqp.queue", "notifications")

	v.SetDefault("app.page_size", 20)
}

// Load loads configuration from the given file path (e.g. "config.yaml").
// A missing file is not an error: defaults plus FINAI_* environment variables are used,
// e.g. FINAI_SERVER_PORT=9000 or FINAI_OPENAI_API_KEY=sk-...
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("FINAI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path == "" {
		path = "config.yaml"
	}
	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("stat config: %w", err)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	mu.Lock()
	appConfig = &c
	mu.Unlock()
	return &c, nil
}

// Get returns the last loaded configuration.
// Call Load() once at application startup.
func Get() *Config {
	mu.RLock()
	defer mu.RUnlock()
	return appConfig
}

// Validate reports every configuration problem at once.
func (c *Config) Validate() error {
	var problems []string

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid server port %d: must be between 1 and 65535", c.Server.Port))
	}

	switch c.Database.Driver {
	case "sqlite":
		if c.Database.Path == "" {
			problems = append(problems, "database path cannot be empty when using sqlite")
		}
	case "postgres":
		if c.Database.DSN == "" {
			problems = append(problems, "database dsn cannot be empty when using postgres")
		}
	default:
		problems = append(problems, fmt.Sprintf("invalid database driver '%s': must be one of [sqlite postgres]", c.Database.Driver))
	}

	if c.JWT.Secret == "" {
		problems = append(problems, "jwt secret cannot be empty")
	}
	if c.JWT.ExpireHours <= 0 {
		problems = append(problems, fmt.Sprintf("invalid jwt expire_hours %d: must be positive", c.JWT.ExpireHours))
	}

	if c.Security.BcryptCost < 4 || c.Security.BcryptCost > 31 {
		problems = append(problems, fmt.Sprintf("invalid bcrypt_cost %d: must be between 4 and 31", c.Security.BcryptCost))
	}

	if c.OpenAI.TimeoutSeconds <= 0 {
		problems = append(problems, fmt.Sprintf("invalid openai timeout_seconds %d: must be positive", c.OpenAI.TimeoutSeconds))
	}

	if c.AMQP.URL != "" {
		if !strings.HasPrefix(c.AMQP.URL, "amqp://") && !strings.HasPrefix(c.AMQP.URL, "amqps://") {
			problems = append(problems, fmt.Sprintf("invalid amqp url '%s': scheme must be amqp or amqps", c.AMQP.URL))
		}
		if c.AMQP.Exchange == "" || c.AMQP.Queue == "" {
			problems = append(problems, "amqp exchange and queue cannot be empty when amqp url is set")
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(problems, "; "))
	}
	return nil
}

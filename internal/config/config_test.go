package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func validConfig() Config {
	return Config{
		Server:   ServerConfig{Port: 8080},
		Database: DatabaseConfig{Driver: "sqlite", Path: "./test.db"},
		JWT:      JWTConfig{Secret: "secret", ExpireHours: 24},
		Security: SecurityConfig{BcryptCost: 10},
		OpenAI:   OpenAIConfig{TimeoutSeconds: 30},
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(c *Config)
		wantErr     bool
		errorString string
	}{
		{
			name:    "valid sqlite config",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name: "valid postgres config",
			mutate: func(c *Config) {
				c.Database = DatabaseConfig{Driver: "postgres", DSN: "postgres://u:p@localhost/finai"}
			},
			wantErr: false,
		},
		{
			name:        "port out of range",
			mutate:      func(c *Config) { c.Server.Port = 70000 },
			wantErr:     true,
			errorString: "invalid server port 70000",
		},
		{
			name:        "unknown driver",
			mutate:      func(c *Config) { c.Database.Driver = "mysql" },
			wantErr:     true,
			errorString: "invalid database driver 'mysql'",
		},
		{
			name:        "postgres without dsn",
			mutate:      func(c *Config) { c.Database = DatabaseConfig{Driver: "postgres"} },
			wantErr:     true,
			errorString: "database dsn cannot be empty",
		},
		{
			name:        "missing jwt secret",
			mutate:      func(c *Config) { c.JWT.Secret = "" },
			wantErr:     true,
			errorString: "jwt secret cannot be empty",
		},
		{
			name:        "zero completion timeout",
			mutate:      func(c *Config) { c.OpenAI.TimeoutSeconds = 0 },
			wantErr:     true,
			errorString: "invalid openai timeout_seconds 0",
		},
		{
			name:        "bad amqp scheme",
			mutate:      func(c *Config) { c.AMQP = AMQPConfig{URL: "http://broker", Exchange: "x", Queue: "q"} },
			wantErr:     true,
			errorString: "scheme must be amqp or amqps",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(&c)
			err := c.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !strings.Contains(err.Error(), tt.errorString) {
				t.Errorf("Validate() error = %q, want it to contain %q", err.Error(), tt.errorString)
			}
		})
	}
}

func TestConfig_ValidateReportsAllProblems(t *testing.T) {
	c := validConfig()
	c.Server.Port = 0
	c.JWT.Secret = ""

	err := c.Validate()
	if err == nil {
		t.Fatal("Validate() error = nil, want error")
	}
	for _, want := range []string{"invalid server port 0", "jwt secret cannot be empty"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q missing %q", err.Error(), want)
		}
	}
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  port: 9090
jwt:
  secret: "from-file"
openai:
  model: "gpt-test"
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("FINAI_JWT_SECRET", "from-env")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.JWT.Secret != "from-env" {
		t.Errorf("JWT.Secret = %q, want env override", cfg.JWT.Secret)
	}
	if cfg.OpenAI.Model != "gpt-test" {
		t.Errorf("OpenAI.Model = %q, want gpt-test", cfg.OpenAI.Model)
	}
	if cfg.Database.Driver != "sqlite" {
		t.Errorf("Database.Driver = %q, want default sqlite", cfg.Database.Driver)
	}
	if Get() != cfg {
		t.Error("Get() should return the last loaded config")
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.OpenAI.TimeoutSeconds != 30 {
		t.Errorf("OpenAI.TimeoutSeconds = %d, want 30", cfg.OpenAI.TimeoutSeconds)
	}
	if cfg.TokenTTL().Hours() != 168 {
		t.Errorf("TokenTTL() = %v, want 168h", cfg.TokenTTL())
	}
}

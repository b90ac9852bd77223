// Package config loads application configuration from an optional YAML
// file and environment variables.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// envPrefix is stripped from environment variables; "__" nests keys,
// e.g. CONSOLE_SERVER__METRICS_PORT -> server.metrics_port.
const envPrefix = "CONSOLE_"

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host              string        `koanf:"host"`
	Port              string        `koanf:"port"`
	MetricsPort       string        `koanf:"metrics_port"`
	ReadTimeout       time.Duration `koanf:"read_timeout"`
	ReadHeaderTimeout time.Duration `koanf:"read_header_timeout"`
	WriteTimeout      time.Duration `koanf:"write_timeout"`
	IdleTimeout       time.Duration `koanf:"idle_timeout"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"` // json or text
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `koanf:"allowed_origins"`
}

// GitHubConfig holds the source-control proxy settings.
type GitHubConfig struct {
	Owner     string        `koanf:"owner"`
	Repo      string        `koanf:"repo"`
	Token     string        `koanf:"token"`
	Timeout   time.Duration `koanf:"timeout"`
	RateLimit float64       `koanf:"rate_limit"` // requests per second to the upstream API
}

// JiraConfig holds the issue-tracker settings. When BaseURL is empty the
// service answers from fixture data instead of calling upstream.
type JiraConfig struct {
	BaseURL    string        `koanf:"base_url"`
	Email      string        `koanf:"email"`
	APIToken   string        `koanf:"api_token"`
	ProjectKey string        `koanf:"project_key"`
	Timeout    time.Duration `koanf:"timeout"`
	RateLimit  float64       `koanf:"rate_limit"`
}

// OpenShiftConfig holds cluster access settings. When URL is empty all
// cluster reads are served from fixture data.
type OpenShiftConfig struct {
	URL       string        `koanf:"url"`
	Token     string        `koanf:"token"`
	Namespace string        `koanf:"namespace"`
	Timeout   time.Duration `koanf:"timeout"`
}

// SplunkConfig holds the log-store backend settings.
type SplunkConfig struct {
	URL     string        `koanf:"url"`
	Token   string        `koanf:"token"`
	Timeout time.Duration `koanf:"timeout"`
}

// KibanaConfig holds the metrics-store backend settings.
type KibanaConfig struct {
	URL     string        `koanf:"url"`
	Token   string        `koanf:"token"`
	Timeout time.Duration `koanf:"timeout"`
}

// Config is the application configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	CORS      CORSConfig      `koanf:"cors"`
	GitHub    GitHubConfig    `koanf:"github"`
	Jira      JiraConfig      `koanf:"jira"`
	OpenShift OpenShiftConfig `koanf:"openshift"`
	Splunk    SplunkConfig    `koanf:"splunk"`
	Kibana    KibanaConfig    `koanf:"kibana"`
}

// Default returns the configuration defaults.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:              "0.0.0.0",
			Port:              "8080",
			MetricsPort:       "9090",
			ReadTimeout:       15 * time.Second,
			ReadHeaderTimeout: 5 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"*"},
		},
		GitHub: GitHubConfig{
			Timeout:   10 * time.Second,
			RateLimit: 5,
		},
		Jira: JiraConfig{
			ProjectKey: "KAN",
			Timeout:    10 * time.Second,
			RateLimit:  5,
		},
		OpenShift: OpenShiftConfig{
			Namespace: "default",
			Timeout:   10 * time.Second,
		},
		Splunk: SplunkConfig{
			Timeout: 15 * time.Second,
		},
		Kibana: KibanaConfig{
			Timeout: 15 * time.Second,
		},
	}
}

// Load reads configuration from the given YAML file (optional, may be
// empty or missing) and environment variables, layered over defaults.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("load config file %s: %w", path, err)
			}
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks invariants that would otherwise surface as confusing
// runtime failures.
func (c *Config) Validate() error {
	if c.Server.Port == c.Server.MetricsPort {
		return fmt.Errorf("server port and metrics port must differ (both %s)", c.Server.Port)
	}
	if c.Jira.ProjectKey == "" {
		return fmt.Errorf("jira project key must not be empty")
	}
	return nil
}

func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, envPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

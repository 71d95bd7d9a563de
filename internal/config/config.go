package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/plentylife/mattermost-redux/internal/models"
	"gopkg.in/yaml.v3"
)

const defaultPreferenceTTL = 10 * time.Minute

type Config struct {
	DatabaseURL   string
	RedisURL      string
	LogLevel      slog.Level
	PreferenceTTL time.Duration
	Server        ServerSettings
}

// ServerSettings is what the post gate needs to know about the server the
// posts came from.
type ServerSettings struct {
	Version string            `yaml:"server_version"`
	License models.License    `yaml:"license"`
	Post    models.PostConfig `yaml:"post"`
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present. Server settings come from the YAML
// file named by POST_CONFIG_FILE, then individual environment variables
// override the file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	ttl, err := time.ParseDuration(envOrDefault("PREFERENCE_CACHE_TTL", defaultPreferenceTTL.String()))
	if err != nil {
		return nil, fmt.Errorf("invalid PREFERENCE_CACHE_TTL: %w", err)
	}

	cfg := &Config{
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		RedisURL:      envOrDefault("REDIS_URL", "redis://localhost:6379"),
		LogLevel:      parseLogLevel(os.Getenv("LOG_LEVEL")),
		PreferenceTTL: ttl,
		Server: ServerSettings{
			Post: models.DefaultPostConfig(),
		},
	}

	if path := os.Getenv("POST_CONFIG_FILE"); path != "" {
		if err := cfg.Server.loadFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.Server.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Server.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// RequireDatabase returns an error when no database is configured.
func (c *Config) RequireDatabase() error {
	if c.DatabaseURL == "" {
		return errors.New("required environment variable not set: DATABASE_URL")
	}
	return nil
}

func (s *ServerSettings) loadFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read post config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, s); err != nil {
		return fmt.Errorf("parse post config %s: %w", path, err)
	}
	return nil
}

func (s *ServerSettings) applyEnv() error {
	if v, ok := os.LookupEnv("SERVER_VERSION"); ok {
		s.Version = v
	}
	if v, ok := os.LookupEnv("IS_LICENSED"); ok {
		licensed, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("invalid IS_LICENSED: %w", err)
		}
		s.License.IsLicensed = strconv.FormatBool(licensed)
	}
	if v, ok := os.LookupEnv("RESTRICT_POST_DELETE"); ok {
		s.Post.RestrictPostDelete = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := os.LookupEnv("ALLOW_EDIT_POST"); ok {
		s.Post.AllowEditPost = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := os.LookupEnv("POST_EDIT_TIME_LIMIT"); ok {
		limit, err := models.ParseEditTimeLimit(v)
		if err != nil {
			return fmt.Errorf("invalid POST_EDIT_TIME_LIMIT: %w", err)
		}
		s.Post.PostEditTimeLimit = limit
	}
	return nil
}

// Validate rejects post settings the server would never send.
func (s ServerSettings) Validate() error {
	switch s.Post.RestrictPostDelete {
	case models.PermissionsAll, models.PermissionsTeamAdmin, models.PermissionsSystemAdmin:
	default:
		return fmt.Errorf("invalid restrict_post_delete %q", s.Post.RestrictPostDelete)
	}
	switch s.Post.AllowEditPost {
	case models.AllowEditPostAlways, models.AllowEditPostNever, models.AllowEditPostTimeLimit:
	default:
		return fmt.Errorf("invalid allow_edit_post %q", s.Post.AllowEditPost)
	}
	return nil
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

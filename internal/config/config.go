package config

import (
	"fmt"
	"log"
	"net"
	"net/url"
	"os"
	"strconv"
	"time"

	"festBooker/internal/models"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

type Config struct {
	Env          string        `yaml:"env" env:"ENV" env-default:"local"`
	Storage      string        `yaml:"storage" env:"STORAGE" env-default:"postgres"`
	HTTPServer   HTTPServer    `yaml:"http_server"`
	Database     Database      `yaml:"database"`
	Auth         Auth          `yaml:"auth"`
	Approval     Approval      `yaml:"approval"`
	SeedAccounts []SeedAccount `yaml:"seed_accounts"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:8080"`
	Timeout     time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

type Database struct {
	Host           string `yaml:"host" env:"DB_HOST" env-default:"localhost"`
	Port           int    `yaml:"port" env:"DB_PORT" env-default:"5432"`
	User           string `yaml:"user" env:"DB_USER" env-default:"postgres"`
	Password       string `yaml:"password" env:"DB_PASSWORD"`
	DBName         string `yaml:"dbname" env:"DB_NAME" env-default:"festbooker"`
	SSLMode        string `yaml:"sslmode" env:"DB_SSLMODE" env-default:"disable"`
	MigrationsPath string `yaml:"migrations_path" env:"MIGRATIONS_PATH" env-default:"./migrations"`
}

// DSN returns a libpq key/value connection string.
func (d Database) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host,
		d.Port,
		d.User,
		d.Password,
		d.DBName,
		d.SSLMode,
	)
}

// URL returns the connection string in URL form, as golang-migrate expects.
func (d Database) URL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
		Path:     "/" + d.DBName,
		RawQuery: url.Values{"sslmode": []string{d.SSLMode}}.Encode(),
	}

	return u.String()
}

type Auth struct {
	JWTSecret    string        `yaml:"jwt_secret" env:"JWT_SECRET" env-required:"true"`
	TokenTTL     time.Duration `yaml:"token_ttl" env:"TOKEN_TTL" env-default:"30m"`
	BootstrapKey string        `yaml:"bootstrap_key" env:"BOOTSTRAP_KEY"`
}

type Approval struct {
	AttendeeEmailDomain string `yaml:"attendee_email_domain" env:"ATTENDEE_EMAIL_DOMAIN" env-default:"@spit.ac.in"`
}

// SeedAccount is a predefined admin or organizer account created approved.
type SeedAccount struct {
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Role     string `yaml:"role"`
}

// SeedDrafts converts the configured seed accounts into signup drafts.
func (c *Config) SeedDrafts() []models.UserDraft {
	drafts := make([]models.UserDraft, 0, len(c.SeedAccounts))
	for _, a := range c.SeedAccounts {
		drafts = append(drafts, models.UserDraft{
			Name:     a.Name,
			Email:    a.Email,
			Password: a.Password,
			Role:     models.Role(a.Role),
		})
	}

	return drafts
}

func MustLoad() *Config {
	// .env is optional when the variables come from the environment
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return cfg
}

func Load(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); err != nil {
		return nil, err
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, err
	}

	if cfg.Storage != StoragePostgres && cfg.Storage != StorageMemory {
		return nil, fmt.Errorf("unknown storage %q", cfg.Storage)
	}

	return &cfg, nil
}

package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/folio-dev/portfolio-api/internal/utils"
)

// Store drivers
const (
	StoreMemory   = "memory"
	StoreSQLite   = "sqlite"
	StoreMySQL    = "mysql"
	StorePostgres = "postgres"
)

type Config struct {
	Port      string
	GinMode   string
	LogLevel  string
	LogFormat string

	StoreDriver string
	DatabaseDSN string

	GitHubAPIURL string
	GitHubToken  string

	OpenAIAPIKey  string
	OpenAIBaseURL string

	HTTPTimeout        time.Duration
	SyncGenerateImages bool
	SyncAIAnalysis     bool

	CORSAllowedOrigins []string
	SentryDSN          string

	// AdminUsername and AdminPassword bootstrap the owner account when both are set.
	AdminUsername string
	AdminPassword string

	SMTP  SMTPConfig
	MinIO MinIOConfig
}

// SMTPConfig enables forwarding of contact messages when Host is set.
type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromName    string
	FromAddress string
	ToAddress   string
}

func (c SMTPConfig) Enabled() bool {
	return c.Host != "" && c.ToAddress != ""
}

// MinIOConfig enables mirroring of generated images when Endpoint is set.
type MinIOConfig struct {
	Endpoint      string
	AccessKey     string
	SecretKey     string
	Bucket        string
	Secure        bool
	PublicBaseURL string
}

func (c MinIOConfig) Enabled() bool {
	return c.Endpoint != "" && c.Bucket != ""
}

// Load reads configuration from an optional .env file, an optional config.yaml
// in the working directory and the environment, in increasing precedence.
func Load() *Config {
	_ = godotenv.Load()
	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("STORE_DRIVER", StoreMemory)
	v.SetDefault("DATABASE_DSN", "")
	v.SetDefault("GITHUB_API_URL", "https://api.github.com")
	v.SetDefault("OPENAI_BASE_URL", "")
	v.SetDefault("HTTP_TIMEOUT", "30s")
	v.SetDefault("SYNC_GENERATE_IMAGES", true)
	v.SetDefault("SYNC_AI_ANALYSIS", false)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("MINIO_BUCKET", "portfolio")

	// A missing config file is fine; everything has an env or default.
	_ = v.ReadInConfig()
	return v
}

// FromViper builds a Config from v. Split out so tests can feed their own values.
func FromViper(v *viper.Viper) *Config {
	return &Config{
		Port:      v.GetString("PORT"),
		GinMode:   v.GetString("GIN_MODE"),
		LogLevel:  v.GetString("LOG_LEVEL"),
		LogFormat: v.GetString("LOG_FORMAT"),

		StoreDriver: strings.ToLower(v.GetString("STORE_DRIVER")),
		DatabaseDSN: v.GetString("DATABASE_DSN"),

		GitHubAPIURL: strings.TrimRight(v.GetString("GITHUB_API_URL"), "/"),
		GitHubToken:  utils.FirstNonEmpty(v.GetString("GITHUB_TOKEN"), v.GetString("GITHUB_API_KEY")),

		OpenAIAPIKey:  utils.FirstNonEmpty(v.GetString("OPENAI_API_KEY"), v.GetString("OPENAI_TOKEN"), v.GetString("API_KEY")),
		OpenAIBaseURL: v.GetString("OPENAI_BASE_URL"),

		HTTPTimeout:        v.GetDuration("HTTP_TIMEOUT"),
		SyncGenerateImages: v.GetBool("SYNC_GENERATE_IMAGES"),
		SyncAIAnalysis:     v.GetBool("SYNC_AI_ANALYSIS"),

		CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		SentryDSN:          v.GetString("SENTRY_DSN"),

		AdminUsername: v.GetString("ADMIN_USERNAME"),
		AdminPassword: v.GetString("ADMIN_PASSWORD"),

		SMTP: SMTPConfig{
			Host:        v.GetString("SMTP_HOST"),
			Port:        v.GetInt("SMTP_PORT"),
			Username:    v.GetString("SMTP_USERNAME"),
			Password:    v.GetString("SMTP_PASSWORD"),
			FromName:    v.GetString("SMTP_FROM_NAME"),
			FromAddress: v.GetString("SMTP_FROM_ADDRESS"),
			ToAddress:   v.GetString("SMTP_TO_ADDRESS"),
		},
		MinIO: MinIOConfig{
			Endpoint:      v.GetString("MINIO_ENDPOINT"),
			AccessKey:     v.GetString("MINIO_ACCESS_KEY"),
			SecretKey:     v.GetString("MINIO_SECRET_KEY"),
			Bucket:        v.GetString("MINIO_BUCKET"),
			Secure:        v.GetBool("MINIO_SECURE"),
			PublicBaseURL: strings.TrimRight(v.GetString("MINIO_PUBLIC_BASE_URL"), "/"),
		},
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port          string
	DatabaseURL   string
	DBMaxConns    int
	JWTSecret     string
	JWTIssuer     string
	JWTTTLMinutes int

	OpenRouter OpenRouterConfig
	Gemini     GeminiConfig

	RapidAPIKey string
	RedisURL    string
	CacheTTL    time.Duration

	UploadDir   string
	S3          S3Config
	MaxUploadMB int

	LogJSON  bool
	LogDebug bool
}

type OpenRouterConfig struct {
	APIKey   string
	BaseURL  string
	Model    string
	AppTitle string
	Referer  string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type S3Config struct {
	Bucket    string
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
}

// MaxUploadBytes converts the configured limit to bytes.
func (c Config) MaxUploadBytes() int64 { return int64(c.MaxUploadMB) << 20 }

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()
	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("JWT_SECRET", "dev-secret-change")
	v.SetDefault("JWT_ISSUER", "career-lens")
	v.SetDefault("JWT_TTL_MINUTES", 60*24)
	v.SetDefault("OPENROUTER_BASE", "https://openrouter.ai/api/v1")
	v.SetDefault("OPENROUTER_MODEL", "google/gemma-3-27b-it:free")
	v.SetDefault("OPENROUTER_APP_TITLE", "CareerLens AI Coach")
	v.SetDefault("OPENROUTER_REFERER", "http://localhost:3000")
	v.SetDefault("GEMINI_MODEL", "gemini-2.0-flash")
	v.SetDefault("CACHE_TTL", "15m")
	v.SetDefault("UPLOAD_DIR", "uploads")
	v.SetDefault("S3_REGION", "auto")
	v.SetDefault("MAX_UPLOAD_MB", 15)
	v.SetDefault("LOG_JSON", true)
	v.SetDefault("LOG_DEBUG", false)
	return v
}

// FromViper builds a Config from an already populated viper instance.
func FromViper(v *viper.Viper) Config {
	cfg := Config{
		Port:          v.GetString("PORT"),
		DatabaseURL:   v.GetString("DATABASE_URL"),
		DBMaxConns:    v.GetInt("DB_MAX_CONNS"),
		JWTSecret:     v.GetString("JWT_SECRET"),
		JWTIssuer:     v.GetString("JWT_ISSUER"),
		JWTTTLMinutes: v.GetInt("JWT_TTL_MINUTES"),
		OpenRouter: OpenRouterConfig{
			APIKey:   v.GetString("OPENROUTER_API_KEY"),
			BaseURL:  v.GetString("OPENROUTER_BASE"),
			Model:    v.GetString("OPENROUTER_MODEL"),
			AppTitle: v.GetString("OPENROUTER_APP_TITLE"),
			Referer:  v.GetString("OPENROUTER_REFERER"),
		},
		Gemini: GeminiConfig{
			APIKey: v.GetString("GEMINI_API_KEY"),
			Model:  v.GetString("GEMINI_MODEL"),
		},
		RapidAPIKey: v.GetString("RAPIDAPI_KEY"),
		RedisURL:    v.GetString("REDIS_URL"),
		CacheTTL:    v.GetDuration("CACHE_TTL"),
		UploadDir:   v.GetString("UPLOAD_DIR"),
		S3: S3Config{
			Bucket:    v.GetString("S3_BUCKET"),
			Endpoint:  v.GetString("S3_ENDPOINT"),
			Region:    v.GetString("S3_REGION"),
			AccessKey: v.GetString("S3_ACCESS_KEY"),
			SecretKey: v.GetString("S3_SECRET_KEY"),
		},
		MaxUploadMB: v.GetInt("MAX_UPLOAD_MB"),
		LogJSON:     v.GetBool("LOG_JSON"),
		LogDebug:    v.GetBool("LOG_DEBUG"),
	}
	if cfg.JWTTTLMinutes <= 0 {
		cfg.JWTTTLMinutes = 60
	}
	if cfg.DBMaxConns <= 0 {
		cfg.DBMaxConns = 10
	}
	if cfg.MaxUploadMB <= 0 {
		cfg.MaxUploadMB = 15
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 15 * time.Minute
	}
	return cfg
}

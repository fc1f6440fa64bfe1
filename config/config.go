package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr    string `mapstructure:"REDIS_ADDR"`
	RedisPass    string `mapstructure:"REDIS_PASSWORD"`
	RedisSlotDB  int    `mapstructure:"REDIS_SLOT_DB"`
	RedisQueueDB int    `mapstructure:"REDIS_QUEUE_DB"`

	// Gemini API key. Empty disables the assistant (chat and booking flows).
	GeminiAPIKey   string `mapstructure:"GEMINI_API_KEY"`
	GeminiModel    string `mapstructure:"GEMINI_MODEL"`
	EmbeddingModel string `mapstructure:"EMBEDDING_MODEL"`
	AITimeoutSecs  int    `mapstructure:"AI_TIMEOUT_SECS"`

	// Knowledge base tuning.
	ChunkSize    int `mapstructure:"CHUNK_SIZE"`
	ChunkOverlap int `mapstructure:"CHUNK_OVERLAP"`
	RAGTopK      int `mapstructure:"RAG_TOP_K"`
	HistoryLimit int `mapstructure:"HISTORY_LIMIT"`

	// Email (SMTP). Missing sender credentials degrade to log-only mode.
	EmailSender   string `mapstructure:"EMAIL_SENDER"`
	EmailPassword string `mapstructure:"EMAIL_PASSWORD"`
	SMTPServer    string `mapstructure:"SMTP_SERVER"`
	SMTPPort      int    `mapstructure:"SMTP_PORT"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SLOT_DB", 0)
	viper.SetDefault("REDIS_QUEUE_DB", 1)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "neobook")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_MODEL", "models/gemini-1.5-pro")
	viper.SetDefault("EMBEDDING_MODEL", "models/text-embedding-004")
	viper.SetDefault("AI_TIMEOUT_SECS", 30)
	viper.SetDefault("CHUNK_SIZE", 1000)
	viper.SetDefault("CHUNK_OVERLAP", 200)
	viper.SetDefault("RAG_TOP_K", 3)
	viper.SetDefault("HISTORY_LIMIT", 25)
	viper.SetDefault("EMAIL_SENDER", "")
	viper.SetDefault("EMAIL_PASSWORD", "")
	viper.SetDefault("SMTP_SERVER", "smtp.gmail.com")
	viper.SetDefault("SMTP_PORT", 587)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	APIBaseURL        string `mapstructure:"API_BASE_URL"`

	// Static salon data (schedule.json, products.json).
	DataDir        string `mapstructure:"DATA_DIR"`
	SalonTimezone  string `mapstructure:"SALON_TIMEZONE"`
	SalonName      string `mapstructure:"SALON_NAME"`
	ReminderLeadHr int    `mapstructure:"REMINDER_LEAD_HOURS"`

	// Redis configuration. An empty address disables redis-backed features.
	RedisAddr          string `mapstructure:"REDIS_ADDR"`
	RedisPassword      string `mapstructure:"REDIS_PASSWORD"`
	RedisContextDB     int    `mapstructure:"REDIS_CONTEXT_DB"`
	RedisQueueDB       int    `mapstructure:"REDIS_QUEUE_DB"`
	ConversationTTLMin int    `mapstructure:"CONVERSATION_TTL_MINUTES"`

	// Google Calendar.
	GoogleCredentialsFile string `mapstructure:"GOOGLE_APPLICATION_CREDENTIALS"`
	GoogleCalendarID      string `mapstructure:"GOOGLE_CALENDAR_ID"`

	// Resend transactional email.
	ResendAPIKey string `mapstructure:"RESEND_API_KEY"`
	EmailFrom    string `mapstructure:"EMAIL_FROM"`
	SalonEmail   string `mapstructure:"SALON_EMAIL"`

	// ElevenLabs conversational AI.
	ElevenLabsAPIKey  string `mapstructure:"ELEVENLABS_API_KEY"`
	ElevenLabsAgentID string `mapstructure:"ELEVENLABS_AGENT_ID"`
	ElevenLabsBaseURL string `mapstructure:"ELEVENLABS_BASE_URL"`

	// Vapi.ai.
	VapiAPIKey        string `mapstructure:"VAPI_API_KEY"`
	VapiAssistantID   string `mapstructure:"VAPI_ASSISTANT_ID"`
	VapiBaseURL       string `mapstructure:"VAPI_BASE_URL"`
	VapiWebhookSecret string `mapstructure:"VAPI_WEBHOOK_SECRET"`
}

var AppConfig Config

// keys lists every setting so viper.Unmarshal picks them up from the
// environment even when no config file declares them.
var keys = []string{
	"APP_PORT", "ENV", "LOG_LEVEL", "MAX_REQUESTS_PER_MIN", "API_BASE_URL",
	"DATA_DIR", "SALON_TIMEZONE", "SALON_NAME", "REMINDER_LEAD_HOURS",
	"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_CONTEXT_DB", "REDIS_QUEUE_DB", "CONVERSATION_TTL_MINUTES",
	"GOOGLE_APPLICATION_CREDENTIALS", "GOOGLE_CALENDAR_ID",
	"RESEND_API_KEY", "EMAIL_FROM", "SALON_EMAIL",
	"ELEVENLABS_API_KEY", "ELEVENLABS_AGENT_ID", "ELEVENLABS_BASE_URL",
	"VAPI_API_KEY", "VAPI_ASSISTANT_ID", "VAPI_BASE_URL", "VAPI_WEBHOOK_SECRET",
}

func LoadConfig() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()
	for _, k := range keys {
		_ = viper.BindEnv(k)
	}

	viper.SetDefault("APP_PORT", "3000")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 200)
	viper.SetDefault("API_BASE_URL", "https://voice-salon-bot.onrender.com")
	viper.SetDefault("DATA_DIR", "./data")
	viper.SetDefault("SALON_TIMEZONE", "Europe/Madrid")
	viper.SetDefault("SALON_NAME", "Hera's Nails & Lashes")
	viper.SetDefault("REMINDER_LEAD_HOURS", 24)
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_CONTEXT_DB", 0)
	viper.SetDefault("REDIS_QUEUE_DB", 1)
	viper.SetDefault("CONVERSATION_TTL_MINUTES", 30)
	viper.SetDefault("GOOGLE_CALENDAR_ID", "primary")
	viper.SetDefault("EMAIL_FROM", "Hera's Nails & Lashes <atiendebot@gmail.com>")
	viper.SetDefault("ELEVENLABS_BASE_URL", "https://api.elevenlabs.io/v1")
	viper.SetDefault("VAPI_BASE_URL", "https://api.vapi.ai")

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

func IsDevelopment() bool {
	return GetEnv() == "development"
}

// RedisEnabled reports whether a redis address was configured.
func RedisEnabled() bool {
	return AppConfig.RedisAddr != ""
}

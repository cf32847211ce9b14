package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Keys     APIKeys
	Ai       AIConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
	ChatEventTopicName string
	ImageOutputDir     string
	BodyLimitMB        int
}

type DatabaseConfig struct {
	Driver     string // postgres | redis | memory
	Connection string
}

type APIKeys struct {
	GoogleGemini string
	OpenAI       string
}

type AIConfig struct {
	ChatModel    string
	RouterModel  string
	TtsModel     string
	ImageModel   string
	CaptionModel string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "8000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
			ChatEventTopicName: getEnv("CHAT_EVENT_TOPIC_NAME", "CHAT_LIFECYCLE"),
			ImageOutputDir:     getEnv("IMAGE_OUTPUT_DIR", os.TempDir()),
			BodyLimitMB:        getEnvAsInt("BODY_LIMIT_MB", 10),
		},
		Database: DatabaseConfig{
			Driver:     getEnv("DB_DRIVER", "postgres"),
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Keys: APIKeys{
			GoogleGemini: getEnv("GOOGLE_GEMINI_API_KEY", ""),
			OpenAI:       getEnv("OPENAI_API_KEY", ""),
		},
		Ai: AIConfig{
			ChatModel:    getEnv("AI_CHAT_MODEL", "gemini-2.0-flash"),
			RouterModel:  getEnv("AI_ROUTER_MODEL", "gemini-2.0-flash-lite"),
			TtsModel:     getEnv("AI_TTS_MODEL", "gemini-2.5-flash-preview-tts"),
			ImageModel:   getEnv("AI_IMAGE_MODEL", "gemini-2.0-flash-preview-image-generation"),
			CaptionModel: getEnv("AI_CAPTION_MODEL", "gemini-2.0-flash"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

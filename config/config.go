package config

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server     Server
	Database   Database
	Session    Session
	Gemini     Gemini
	Assessment Assessment
	LogLevel   string
}

type Server struct {
	Port    string
	GinMode string
}

type Database struct {
	Driver   string // "postgres" or "sqlite"
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	Path     string // sqlite file
}

type Session struct {
	Backend       string // "database", "memory" or "redis"
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	TTL           time.Duration
}

type Gemini struct {
	ApiKey string
	Model  string
}

type Assessment struct {
	QuestionCount int
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("GIN_MODE", "debug")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_PATH", "shiksha.db")
	viper.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")
	viper.SetDefault("ASSESSMENT_QUESTION_COUNT", 10)
	viper.SetDefault("SESSION_BACKEND", "database")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("SESSION_TTL", "720h")

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Server.GinMode = viper.GetString("GIN_MODE")
	config.LogLevel = viper.GetString("LOG_LEVEL")

	config.Database.Driver = viper.GetString("DATABASE_DRIVER")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")
	config.Database.Path = viper.GetString("DATABASE_PATH")

	config.Session.Backend = viper.GetString("SESSION_BACKEND")
	config.Session.RedisAddr = viper.GetString("REDIS_ADDR")
	config.Session.RedisPassword = viper.GetString("REDIS_PASSWORD")
	config.Session.RedisDB = viper.GetInt("REDIS_DB")
	config.Session.TTL = viper.GetDuration("SESSION_TTL")

	config.Gemini.ApiKey = viper.GetString("GEMINI_API_KEY")
	config.Gemini.Model = viper.GetString("GEMINI_MODEL")

	config.Assessment.QuestionCount = viper.GetInt("ASSESSMENT_QUESTION_COUNT")
	if config.Assessment.QuestionCount <= 0 {
		config.Assessment.QuestionCount = 10
	}

	log.Info().
		Str("port", config.Server.Port).
		Str("db_driver", config.Database.Driver).
		Str("session_backend", config.Session.Backend).
		Str("gemini_model", config.Gemini.Model).
		Bool("gemini_key_set", config.Gemini.ApiKey != "").
		Msg("Config loaded")
	return &config, nil
}

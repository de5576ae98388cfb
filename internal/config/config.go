package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig
	DB         DBConfig
	Redis      RedisConfig
	Logger     LoggerConfig
	Auth       AuthConfig
	LLM        LLMConfig
	YouTube    YouTubeConfig
	Transcript TranscriptConfig
	Generation GenerationConfig
	Analysis   AnalysisConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type LoggerConfig struct {
	Level string
	Env   string
}

type AuthConfig struct {
	JWTSecret string
}

// LLMConfig selects the content-generation vendor binding. Provider is one
// of "openai", "ollama" or "googleai"; only the matching sub-config is read.
type LLMConfig struct {
	Provider string
	OpenAI   OpenAIConfig
	Ollama   OllamaConfig
	GoogleAI GoogleAIConfig
}

type OpenAIConfig struct {
	APIKey string
	Model  string
}

type OllamaConfig struct {
	ServerURL string
	Model     string
}

type GoogleAIConfig struct {
	APIKey string
	Model  string
}

type YouTubeConfig struct {
	APIKey string
}

type TranscriptConfig struct {
	BaseURL string
	Timeout time.Duration
}

// GenerationConfig bounds the per-chapter generation pipeline.
type GenerationConfig struct {
	QuestionsPerChapter int
	OptionsPerQuestion  int
	TranscriptMaxWords  int
	DefaultUnitCount    int
}

// AnalysisConfig carries the performance classification policy.
type AnalysisConfig struct {
	ThresholdPercent float64
	CacheTTL         time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		viper.AddConfigPath("../../config")
		viper.AddConfigPath("../../")
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
	}

	viper.AutomaticEnv()

	viper.SetDefault("generation.questions_per_chapter", 5)
	viper.SetDefault("generation.options_per_question", 4)
	viper.SetDefault("generation.transcript_max_words", 500)
	viper.SetDefault("generation.default_unit_count", 4)
	viper.SetDefault("analysis.threshold_percent", 75.0)
	viper.SetDefault("analysis.cache_ttl", 15*time.Minute)
	viper.SetDefault("transcript.timeout", 20*time.Second)

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := &Config{
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  viper.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: viper.GetDuration("server.write_timeout") * time.Second,
		},
		DB: DBConfig{
			Host:     viper.GetString("db.host"),
			Port:     viper.GetInt("db.port"),
			User:     viper.GetString("db.user"),
			Password: viper.GetString("db.password"),
			DBName:   viper.GetString("db.name"),
		},
		Redis: RedisConfig{
			Address:  viper.GetString("redis.address"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
		},
		Logger: LoggerConfig{
			Level: viper.GetString("logger.level"),
			Env:   viper.GetString("logger.env"),
		},
		Auth: AuthConfig{
			JWTSecret: viper.GetString("auth.jwt_secret"),
		},
		LLM: LLMConfig{
			Provider: viper.GetString("llm.provider"),
			OpenAI: OpenAIConfig{
				APIKey: viper.GetString("llm.openai.api_key"),
				Model:  viper.GetString("llm.openai.model"),
			},
			Ollama: OllamaConfig{
				ServerURL: viper.GetString("llm.ollama.server_url"),
				Model:     viper.GetString("llm.ollama.model"),
			},
			GoogleAI: GoogleAIConfig{
				APIKey: viper.GetString("llm.googleai.api_key"),
				Model:  viper.GetString("llm.googleai.model"),
			},
		},
		YouTube: YouTubeConfig{
			APIKey: viper.GetString("youtube.api_key"),
		},
		Transcript: TranscriptConfig{
			BaseURL: viper.GetString("transcript.base_url"),
			Timeout: viper.GetDuration("transcript.timeout"),
		},
		Generation: GenerationConfig{
			QuestionsPerChapter: viper.GetInt("generation.questions_per_chapter"),
			OptionsPerQuestion:  viper.GetInt("generation.options_per_question"),
			TranscriptMaxWords:  viper.GetInt("generation.transcript_max_words"),
			DefaultUnitCount:    viper.GetInt("generation.default_unit_count"),
		},
		Analysis: AnalysisConfig{
			ThresholdPercent: viper.GetFloat64("analysis.threshold_percent"),
			CacheTTL:         viper.GetDuration("analysis.cache_ttl"),
		},
	}

	// Override with environment variables if set
	if host := os.Getenv("DB_HOST"); host != "" {
		config.DB.Host = host
	}
	if user := os.Getenv("DB_USER"); user != "" {
		config.DB.User = user
	}
	if password := os.Getenv("DB_PASSWORD"); password != "" {
		config.DB.Password = password
	}
	if dbname := os.Getenv("DB_NAME"); dbname != "" {
		config.DB.DBName = dbname
	}
	if redisAddress := os.Getenv("REDIS_ADDRESS"); redisAddress != "" {
		config.Redis.Address = redisAddress
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		config.Redis.Password = redisPassword
	}
	if openAIKey := os.Getenv("OPENAI_API_KEY"); openAIKey != "" {
		config.LLM.OpenAI.APIKey = openAIKey
	}
	if googleAIKey := os.Getenv("GOOGLE_API_KEY"); googleAIKey != "" {
		config.LLM.GoogleAI.APIKey = googleAIKey
	}
	if youtubeKey := os.Getenv("YOUTUBE_API_KEY"); youtubeKey != "" {
		config.YouTube.APIKey = youtubeKey
	}
	if jwtSecret := os.Getenv("JWT_SECRET"); jwtSecret != "" {
		config.Auth.JWTSecret = jwtSecret
	}

	return config, nil
}

func (c *Config) GetDSN() string {
	// Oracle DSN format: user/password@host:port/service
	return fmt.Sprintf("oracle://%s:%s@%s:%d/%s",
		c.DB.User,
		c.DB.Password,
		c.DB.Host,
		c.DB.Port,
		c.DB.DBName,
	)
}

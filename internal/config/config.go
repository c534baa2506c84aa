package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App               App               `mapstructure:",squash"`
	Server            Server            `mapstructure:",squash"`
	Database          Database          `mapstructure:",squash"`
	Auth              Auth              `mapstructure:",squash"`
	Cache             Cache             `mapstructure:",squash"`
	CacheInvalidation CacheInvalidation `mapstructure:",squash"`
	Forecast          Forecast          `mapstructure:",squash"`
}

type Server struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"server_read_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"server_shutdown_timeout"`
	AllowedOrigins  []string      `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN          string        `mapstructure:"-"`
	Driver       string        `mapstructure:"database_driver"`
	Password     string        `mapstructure:"database_password"`
	URL          string        `mapstructure:"database_url"`
	User         string        `mapstructure:"database_user"`
	QueryTimeout time.Duration `mapstructure:"database_query_timeout"`
	MaxOpenConns int           `mapstructure:"database_max_open_conns"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Timezone string `mapstructure:"app_timezone"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
	Issuer string `mapstructure:"auth_issuer"`
}

type Cache struct {
	Enabled   bool          `mapstructure:"cache_enabled"`
	RedisURL  string        `mapstructure:"cache_redis_url"`
	TTL       time.Duration `mapstructure:"cache_ttl"`
	KeyPrefix string        `mapstructure:"cache_key_prefix"`
}

type CacheInvalidation struct {
	CronSchedule  string `mapstructure:"cache_invalidation_cron"`
	Enabled       bool   `mapstructure:"cache_invalidation_enabled"`
	MaxConcurrent int    `mapstructure:"cache_invalidation_max_concurrent"`
}

type Forecast struct {
	PessimisticMultiplier     float64 `mapstructure:"forecast_pessimistic_multiplier"`
	RealisticMultiplier       float64 `mapstructure:"forecast_realistic_multiplier"`
	OptimisticMultiplier      float64 `mapstructure:"forecast_optimistic_multiplier"`
	MediumConfidenceThreshold int     `mapstructure:"forecast_medium_confidence_threshold"`
	HighConfidenceThreshold   int     `mapstructure:"forecast_high_confidence_threshold"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("SERVER_READ_TIMEOUT", "15s")
	viper.SetDefault("SERVER_SHUTDOWN_TIMEOUT", "10s")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/crm?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_QUERY_TIMEOUT", "10s")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)

	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("AUTH_ISSUER", "")

	viper.SetDefault("CACHE_ENABLED", false)
	viper.SetDefault("CACHE_REDIS_URL", "redis://localhost:6379/0")
	viper.SetDefault("CACHE_TTL", "5m")
	viper.SetDefault("CACHE_KEY_PREFIX", "analytics")

	// Invalidação do cache de resultados
	viper.SetDefault("CACHE_INVALIDATION_CRON", "* * * * *") // A cada minuto
	viper.SetDefault("CACHE_INVALIDATION_ENABLED", false)
	viper.SetDefault("CACHE_INVALIDATION_MAX_CONCURRENT", 4)

	// Política de previsão de receita
	viper.SetDefault("FORECAST_PESSIMISTIC_MULTIPLIER", 0.7)
	viper.SetDefault("FORECAST_REALISTIC_MULTIPLIER", 1.0)
	viper.SetDefault("FORECAST_OPTIMISTIC_MULTIPLIER", 1.3)
	viper.SetDefault("FORECAST_MEDIUM_CONFIDENCE_THRESHOLD", 5)
	viper.SetDefault("FORECAST_HIGH_CONFIDENCE_THRESHOLD", 20)

	viper.SetDefault("APP_TIMEZONE", "UTC")
	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Validate rejeita combinações que impediriam o serviço de responder corretamente
func (c *Config) Validate() error {
	if c.Auth.Secret == "" {
		return fmt.Errorf("AUTH_SECRET é obrigatório")
	}

	if c.Forecast.MediumConfidenceThreshold > c.Forecast.HighConfidenceThreshold {
		return fmt.Errorf("FORECAST_MEDIUM_CONFIDENCE_THRESHOLD (%d) maior que FORECAST_HIGH_CONFIDENCE_THRESHOLD (%d)",
			c.Forecast.MediumConfidenceThreshold, c.Forecast.HighConfidenceThreshold)
	}

	if c.Cache.Enabled && c.Cache.TTL <= 0 {
		return fmt.Errorf("CACHE_TTL deve ser positivo quando o cache está habilitado")
	}

	if _, err := c.App.Location(); err != nil {
		return fmt.Errorf("APP_TIMEZONE inválido: %w", err)
	}

	return nil
}

// Location devolve o fuso usado para os cálculos de calendário
func (a App) Location() (*time.Location, error) {
	if a.Timezone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(a.Timezone)
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Database      Database      `mapstructure:",squash"`
	Auth          Auth          `mapstructure:",squash"`
	DetectionSync DetectionSync `mapstructure:",squash"`
	IndicatorSync IndicatorSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Auth struct {
	Secret               string `mapstructure:"auth_secret"`
	OperatorEmail        string `mapstructure:"auth_operator_email"`
	OperatorPasswordHash string `mapstructure:"auth_operator_password_hash"`
	TokenTTLHours        int    `mapstructure:"auth_token_ttl_hours"`
}

// DetectionSync configura a fase de detecção e fusão de promoções.
type DetectionSync struct {
	CronSchedule      string  `mapstructure:"detection_sync_cron"`
	WindowSize        int     `mapstructure:"detection_window_size"`
	Threshold         float64 `mapstructure:"detection_threshold"`
	LookbackDays      int     `mapstructure:"detection_lookback_days"`
	MaxConcurrentJobs int     `mapstructure:"detection_max_concurrent_jobs"`
	Enabled           bool    `mapstructure:"detection_sync_enabled"`
}

// IndicatorSync configura a fase de cálculo de indicadores por promoção.
type IndicatorSync struct {
	CronSchedule      string `mapstructure:"indicator_sync_cron"`
	MaxConcurrentJobs int    `mapstructure:"indicator_max_concurrent_jobs"`
	PostPromotionDays int    `mapstructure:"indicator_post_promotion_days"`
	Enabled           bool   `mapstructure:"indicator_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/promopredictor")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("AUTH_OPERATOR_EMAIL", "operador@promopredictor.local")
	viper.SetDefault("AUTH_OPERATOR_PASSWORD_HASH", "")
	viper.SetDefault("AUTH_TOKEN_TTL_HOURS", 12)

	// Defaults da detecção de promoções
	viper.SetDefault("DETECTION_SYNC_CRON", "0 3 * * *") // Todos os dias às 3h da manhã
	viper.SetDefault("DETECTION_WINDOW_SIZE", 2)         // Janela de comparação de preços
	viper.SetDefault("DETECTION_THRESHOLD", -0.05)       // Queda mínima de 5%
	viper.SetDefault("DETECTION_LOOKBACK_DAYS", 365)     // Histórico carregado por produto
	viper.SetDefault("DETECTION_MAX_CONCURRENT_JOBS", 4) // Produtos processados em paralelo
	viper.SetDefault("DETECTION_SYNC_ENABLED", false)

	// Defaults do cálculo de indicadores
	viper.SetDefault("INDICATOR_SYNC_CRON", "0 5 * * *") // Todos os dias às 5h da manhã
	viper.SetDefault("INDICATOR_MAX_CONCURRENT_JOBS", 4) // Promoções processadas em paralelo
	viper.SetDefault("INDICATOR_POST_PROMOTION_DAYS", 7) // Janela de volume pós-promoção
	viper.SetDefault("INDICATOR_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

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

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}

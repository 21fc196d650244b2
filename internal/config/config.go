package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App       App       `mapstructure:",squash"`
	Server    Server    `mapstructure:",squash"`
	Account   Account   `mapstructure:",squash"`
	Sheets    Sheets    `mapstructure:",squash"`
	SheetSync SheetSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Account struct {
	// Rótulo da conta dos feeds; os exports publicados são de conta única
	Name string `mapstructure:"account_name"`
}

type Sheets struct {
	GoogleAdsURL        string `mapstructure:"sheets_google_ads_url"`
	MetaAdsURL          string `mapstructure:"sheets_meta_ads_url"`
	FetchTimeoutSeconds int    `mapstructure:"sheets_fetch_timeout_seconds"`
}

type SheetSync struct {
	CronSchedule string `mapstructure:"sheet_sync_cron"`
	Enabled      bool   `mapstructure:"sheet_sync_enabled"`
	SyncOnStart  bool   `mapstructure:"sheet_sync_on_start"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("ACCOUNT_NAME", "AmorSaúde Montes Claros")

	viper.SetDefault("SHEETS_GOOGLE_ADS_URL", "")
	viper.SetDefault("SHEETS_META_ADS_URL", "")
	viper.SetDefault("SHEETS_FETCH_TIMEOUT_SECONDS", 30)

	viper.SetDefault("SHEET_SYNC_CRON", "*/30 * * * *") // A cada 30 minutos
	viper.SetDefault("SHEET_SYNC_ENABLED", true)
	viper.SetDefault("SHEET_SYNC_ON_START", true) // Primeira ingestão no boot

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

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
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

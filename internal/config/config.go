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
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Auth           Auth           `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	Redis          Redis          `mapstructure:",squash"`
	Instagram      Instagram      `mapstructure:",squash"`
	TikTok         TikTok         `mapstructure:",squash"`
	YouTube        YouTube        `mapstructure:",squash"`
	Platforms      Platforms      `mapstructure:",squash"`
	AWS            AWS            `mapstructure:",squash"`
	Reports        Reports        `mapstructure:",squash"`
	MetricsSync    MetricsSync    `mapstructure:",squash"`
	ReportSchedule ReportSchedule `mapstructure:",squash"`
}

type App struct {
	Env       string `mapstructure:"app_env"`
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	Enabled        bool     `mapstructure:"server_enabled"`
	AllowedOrigins []string `mapstructure:"server_allowed_origins"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`

	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	MaxIdleConns    int           `mapstructure:"database_max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"database_conn_max_lifetime"`
}

type Redis struct {
	Addr     string `mapstructure:"redis_addr"`
	Password string `mapstructure:"redis_password"`
	DB       int    `mapstructure:"redis_db"`
}

func (r Redis) Enabled() bool {
	return r.Addr != ""
}

type Instagram struct {
	GraphURL string `mapstructure:"instagram_graph_url"`
}

type TikTok struct {
	APIURL string `mapstructure:"tiktok_api_url"`
}

type YouTube struct {
	APIURL string `mapstructure:"youtube_api_url"`
	APIKey string `mapstructure:"youtube_api_key"`
}

func (y YouTube) Enabled() bool {
	return y.APIKey != ""
}

type Platforms struct {
	RequestTimeoutSeconds int `mapstructure:"platform_request_timeout_seconds"`
}

func (p Platforms) RequestTimeout() time.Duration {
	return time.Duration(p.RequestTimeoutSeconds) * time.Second
}

type AWS struct {
	Region          string `mapstructure:"aws_region"`
	AccessKeyID     string `mapstructure:"aws_access_key_id"`
	SecretAccessKey string `mapstructure:"aws_secret_access_key"`
}

type Reports struct {
	Bucket        string `mapstructure:"reports_bucket"`
	PublicBaseURL string `mapstructure:"reports_public_base_url"`
	EmailFrom     string `mapstructure:"reports_email_from"`
	EmailFromName string `mapstructure:"reports_email_from_name"`
	DelaySeconds  int    `mapstructure:"reports_delay_seconds"`
}

func (r Reports) UploadEnabled() bool {
	return r.Bucket != ""
}

func (r Reports) EmailEnabled() bool {
	return r.EmailFrom != ""
}

type MetricsSync struct {
	CronSchedule      string `mapstructure:"metrics_sync_cron"`
	Enabled           bool   `mapstructure:"metrics_sync_enabled"`
	BatchSize         int    `mapstructure:"metrics_sync_batch_size"`
	BatchDelaySeconds int    `mapstructure:"metrics_sync_batch_delay_seconds"`
	FreshnessHours    int    `mapstructure:"metrics_sync_freshness_hours"`
}

type ReportSchedule struct {
	MonthlyCron string `mapstructure:"monthly_reports_cron"`
	WeeklyCron  string `mapstructure:"weekly_reports_cron"`
	Enabled     bool   `mapstructure:"reports_schedule_enabled"`
}

func SetDefaults() {
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "text")

	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("SERVER_ENABLED", false)
	viper.SetDefault("SERVER_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("AUTH_SECRET", "")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/creators?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 20)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")

	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)

	viper.SetDefault("INSTAGRAM_GRAPH_URL", "https://graph.instagram.com")
	viper.SetDefault("TIKTOK_API_URL", "https://open.tiktokapis.com/v2")
	viper.SetDefault("YOUTUBE_API_URL", "https://www.googleapis.com/youtube/v3")
	viper.SetDefault("YOUTUBE_API_KEY", "")
	viper.SetDefault("PLATFORM_REQUEST_TIMEOUT_SECONDS", 20)

	viper.SetDefault("AWS_REGION", "us-east-1")
	viper.SetDefault("AWS_ACCESS_KEY_ID", "")
	viper.SetDefault("AWS_SECRET_ACCESS_KEY", "")

	viper.SetDefault("REPORTS_BUCKET", "")
	viper.SetDefault("REPORTS_PUBLIC_BASE_URL", "")
	viper.SetDefault("REPORTS_EMAIL_FROM", "")
	viper.SetDefault("REPORTS_EMAIL_FROM_NAME", "Creator Analytics")
	viper.SetDefault("REPORTS_DELAY_SECONDS", 1) // 1 segundo entre criadores

	// Defaults para sincronização de métricas
	viper.SetDefault("METRICS_SYNC_CRON", "0 */6 * * *")    // A cada 6 horas
	viper.SetDefault("METRICS_SYNC_ENABLED", true)          // Habilitar sincronização agendada
	viper.SetDefault("METRICS_SYNC_BATCH_SIZE", 10)         // 10 criadores por lote
	viper.SetDefault("METRICS_SYNC_BATCH_DELAY_SECONDS", 2) // 2 segundos entre lotes
	viper.SetDefault("METRICS_SYNC_FRESHNESS_HOURS", 6)     // Conexões sincronizadas há menos de 6h são puladas

	// Defaults para relatórios agendados
	viper.SetDefault("MONTHLY_REPORTS_CRON", "0 6 1 * *") // Dia 1 de cada mês às 6h
	viper.SetDefault("WEEKLY_REPORTS_CRON", "0 8 * * 1")  // Toda segunda-feira às 8h
	viper.SetDefault("REPORTS_SCHEDULE_ENABLED", true)
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("config: using environment loaded by godotenv: ", err)
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
		logrus.Warn("config: could not resolve working directory: ", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Debug("config: loaded .env from ", location)
			return
		}
	}

	logrus.Debug("config: no .env file found, using process environment")
}

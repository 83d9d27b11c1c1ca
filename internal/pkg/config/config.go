package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/piresc/nebengdinas/internal/pkg/models"
	"github.com/spf13/viper"
)

// InitConfig loads the env file in local mode and builds the configuration
// from the environment.
func InitConfig(configPath string) *models.Config {
	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	if v.GetString("APP_ENV") == "local" {
		if err := godotenv.Load(configPath); err != nil {
			log.Println("error loading config from file", err)
		}
	}

	return loadConfig(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "local")
	v.SetDefault("APP_NAME", "nebengdinas")
	v.SetDefault("APP_DEBUG", true)
	v.SetDefault("APP_TIMEZONE", "Asia/Jakarta")
	v.SetDefault("APP_BASE_URL", "http://localhost:8080")

	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("SERVER_READ_TIMEOUT", 15)
	v.SetDefault("SERVER_WRITE_TIMEOUT", 15)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 30)

	v.SetDefault("DB_DRIVER", "pgx")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 20)
	v.SetDefault("DB_IDLE_CONNS", 5)

	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_POOL_SIZE", 10)

	v.SetDefault("NATS_URL", "nats://localhost:4222")

	v.SetDefault("JWT_EXPIRATION", 60)
	v.SetDefault("JWT_ISSUER", "nebengdinas")
	v.SetDefault("APPROVAL_TOKEN_ISSUER", "nebengdinas-approval")

	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("SMTP_TIMEOUT", "10s")

	v.SetDefault("APPROVAL_URGENT_WINDOW", "24h")
	v.SetDefault("APPROVAL_URGENT_TIMEOUT", "4h")
	v.SetDefault("APPROVAL_STANDARD_TIMEOUT", "48h")

	v.SetDefault("OPTIMIZATION_MAX_WAIT_MINUTES", 30)
	v.SetDefault("OPTIMIZATION_MIN_SAVINGS_PERCENT", 15.0)
	v.SetDefault("OPTIMIZATION_RATE_CAR4_PER_KM", 4500.0)
	v.SetDefault("OPTIMIZATION_RATE_CAR7_PER_KM", 6500.0)
	v.SetDefault("OPTIMIZATION_RATE_VAN16_PER_KM", 11000.0)

	v.SetDefault("SUGGESTION_PROVIDER", models.SuggestionProviderNone)
	v.SetDefault("SUGGESTION_GENAI_MODEL", "gemini-2.0-flash")
	v.SetDefault("SUGGESTION_TIMEOUT", "20s")

	v.SetDefault("DIRECTORY_CACHE_TTL", "10m")

	v.SetDefault("NEW_RELIC_ENABLED", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE_PATH", "")
}

func loadConfig(v *viper.Viper) *models.Config {
	configs := &models.Config{}

	configs.App.Name = v.GetString("APP_NAME")
	configs.App.Environment = v.GetString("APP_ENV")
	configs.App.Debug = v.GetBool("APP_DEBUG")
	configs.App.Version = v.GetString("APP_VERSION")
	configs.App.BaseURL = strings.TrimRight(v.GetString("APP_BASE_URL"), "/")
	configs.App.TimeZone = v.GetString("APP_TIMEZONE")

	configs.Server.Host = v.GetString("SERVER_HOST")
	configs.Server.Port = v.GetInt("SERVER_PORT")
	configs.Server.ReadTimeout = v.GetInt("SERVER_READ_TIMEOUT")
	configs.Server.WriteTimeout = v.GetInt("SERVER_WRITE_TIMEOUT")
	configs.Server.ShutdownTimeout = v.GetInt("SERVER_SHUTDOWN_TIMEOUT")

	configs.Database.Driver = v.GetString("DB_DRIVER")
	configs.Database.Host = v.GetString("DB_HOST")
	configs.Database.Port = v.GetInt("DB_PORT")
	configs.Database.Username = v.GetString("DB_USERNAME")
	configs.Database.Password = v.GetString("DB_PASSWORD")
	configs.Database.Database = v.GetString("DB_DATABASE")
	configs.Database.SSLMode = v.GetString("DB_SSL_MODE")
	configs.Database.MaxConns = v.GetInt("DB_MAX_CONNS")
	configs.Database.IdleConns = v.GetInt("DB_IDLE_CONNS")

	configs.Redis.Host = v.GetString("REDIS_HOST")
	configs.Redis.Port = v.GetInt("REDIS_PORT")
	configs.Redis.Password = v.GetString("REDIS_PASSWORD")
	configs.Redis.DB = v.GetInt("REDIS_DB")
	configs.Redis.PoolSize = v.GetInt("REDIS_POOL_SIZE")

	configs.NATS.URL = v.GetString("NATS_URL")

	configs.JWT.Secret = v.GetString("JWT_SECRET")
	configs.JWT.Expiration = v.GetInt("JWT_EXPIRATION")
	configs.JWT.Issuer = v.GetString("JWT_ISSUER")

	configs.ApprovalToken.Secret = v.GetString("APPROVAL_TOKEN_SECRET")
	configs.ApprovalToken.Issuer = v.GetString("APPROVAL_TOKEN_ISSUER")
	configs.ApprovalToken.LinkURL = strings.TrimRight(v.GetString("APPROVAL_LINK_URL"), "/")
	if configs.ApprovalToken.LinkURL == "" {
		configs.ApprovalToken.LinkURL = configs.App.BaseURL + "/api/v1/approvals"
	}

	configs.SMTP.Host = v.GetString("SMTP_HOST")
	configs.SMTP.Port = v.GetInt("SMTP_PORT")
	configs.SMTP.Username = v.GetString("SMTP_USERNAME")
	configs.SMTP.Password = v.GetString("SMTP_PASSWORD")
	configs.SMTP.From = v.GetString("SMTP_FROM")
	configs.SMTP.AdminEmails = splitList(v.GetString("SMTP_ADMIN_EMAILS"))
	configs.SMTP.Timeout = v.GetDuration("SMTP_TIMEOUT")

	configs.Approval.UrgentWindow = v.GetDuration("APPROVAL_URGENT_WINDOW")
	configs.Approval.UrgentTimeout = v.GetDuration("APPROVAL_URGENT_TIMEOUT")
	configs.Approval.StandardTimeout = v.GetDuration("APPROVAL_STANDARD_TIMEOUT")

	configs.Optimization.MaxWaitMinutes = v.GetInt("OPTIMIZATION_MAX_WAIT_MINUTES")
	configs.Optimization.MinSavingsPercent = v.GetFloat64("OPTIMIZATION_MIN_SAVINGS_PERCENT")
	configs.Optimization.RateCar4PerKm = v.GetFloat64("OPTIMIZATION_RATE_CAR4_PER_KM")
	configs.Optimization.RateCar7PerKm = v.GetFloat64("OPTIMIZATION_RATE_CAR7_PER_KM")
	configs.Optimization.RateVan16PerKm = v.GetFloat64("OPTIMIZATION_RATE_VAN16_PER_KM")

	configs.Suggestion.Provider = v.GetString("SUGGESTION_PROVIDER")
	configs.Suggestion.GenAIAPIKey = v.GetString("SUGGESTION_GENAI_API_KEY")
	configs.Suggestion.GenAIModel = v.GetString("SUGGESTION_GENAI_MODEL")
	configs.Suggestion.HTTPURL = v.GetString("SUGGESTION_HTTP_URL")
	configs.Suggestion.HTTPAPIKey = v.GetString("SUGGESTION_HTTP_API_KEY")
	configs.Suggestion.Timeout = v.GetDuration("SUGGESTION_TIMEOUT")

	configs.Directory.CacheTTL = v.GetDuration("DIRECTORY_CACHE_TTL")

	configs.NewRelic.LicenseKey = v.GetString("NEW_RELIC_LICENSE_KEY")
	configs.NewRelic.AppName = v.GetString("NEW_RELIC_APP_NAME")
	configs.NewRelic.Enabled = v.GetBool("NEW_RELIC_ENABLED")
	configs.NewRelic.LogsEnabled = v.GetBool("NEW_RELIC_LOGS_ENABLED")
	configs.NewRelic.ForwardLogs = v.GetBool("NEW_RELIC_FORWARD_LOGS")

	configs.Logger.Level = v.GetString("LOG_LEVEL")
	configs.Logger.FilePath = v.GetString("LOG_FILE_PATH")

	return configs
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

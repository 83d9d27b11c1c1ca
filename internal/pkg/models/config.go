package models

import "time"

// Config represents application configuration
type Config struct {
	App           AppConfig
	Server        ServerConfig
	Database      DatabaseConfig
	Redis         RedisConfig
	NATS          NATSConfig
	JWT           JWTConfig
	ApprovalToken ApprovalTokenConfig
	SMTP          SMTPConfig
	Approval      ApprovalConfig
	Optimization  OptimizationConfig
	Suggestion    SuggestionConfig
	Directory     DirectoryConfig
	NewRelic      NewRelicConfig
	Logger        LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
	BaseURL     string
	TimeZone    string
}

// Location resolves the configured time zone, falling back to UTC
func (a AppConfig) Location() *time.Location {
	if a.TimeZone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(a.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains bearer identity token configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// ApprovalTokenConfig configures the signed manager approval links
type ApprovalTokenConfig struct {
	Secret  string
	Issuer  string
	LinkURL string // public base URL the approval links point at
}

// SMTPConfig configures outbound email
type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	From        string
	AdminEmails []string
	Timeout     time.Duration
}

// ApprovalConfig holds the approval workflow windows
type ApprovalConfig struct {
	UrgentWindow    time.Duration
	UrgentTimeout   time.Duration
	StandardTimeout time.Duration
}

// OptimizationConfig holds consolidation thresholds and per-km rates
type OptimizationConfig struct {
	MaxWaitMinutes    int
	MinSavingsPercent float64
	RateCar4PerKm     float64
	RateCar7PerKm     float64
	RateVan16PerKm    float64
}

// RateFor returns the per-km rate for a vehicle tier
func (o OptimizationConfig) RateFor(v VehicleType) float64 {
	switch v {
	case VehicleCar4:
		return o.RateCar4PerKm
	case VehicleCar7:
		return o.RateCar7PerKm
	case VehicleVan16:
		return o.RateVan16PerKm
	}
	return 0
}

// Suggestion providers
const (
	SuggestionProviderNone  = "none"
	SuggestionProviderGenAI = "genai"
	SuggestionProviderHTTP  = "http"
)

// SuggestionConfig configures the optional external suggestion source
type SuggestionConfig struct {
	Provider    string
	GenAIAPIKey string
	GenAIModel  string
	HTTPURL     string
	HTTPAPIKey  string
	Timeout     time.Duration
}

// DirectoryConfig configures the employee directory cache
type DirectoryConfig struct {
	CacheTTL time.Duration
}

// NewRelicConfig contains New Relic agent configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	LogsEnabled bool
	ForwardLogs bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

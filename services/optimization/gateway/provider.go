package gateway

import (
	"context"

	"github.com/piresc/nebengdinas/internal/pkg/circuitbreaker"
	httpclient "github.com/piresc/nebengdinas/internal/pkg/http"
	"github.com/piresc/nebengdinas/internal/pkg/logger"
	"github.com/piresc/nebengdinas/internal/pkg/models"
	"github.com/piresc/nebengdinas/internal/pkg/retry"
	"github.com/piresc/nebengdinas/services/optimization/engine"
)

// NewSuggester builds the configured external grouping source. A nil
// result means the engine only uses its own heuristic; a misconfigured
// provider is logged and disabled rather than failing startup.
func NewSuggester(ctx context.Context, cfg models.SuggestionConfig, retrier *retry.Retrier, breakers *circuitbreaker.Manager, zapLogger *logger.ZapLogger) engine.Suggester {
	switch cfg.Provider {
	case models.SuggestionProviderGenAI:
		s, err := NewGenAISuggester(ctx, cfg)
		if err != nil {
			logger.Warn("GenAI suggestions disabled", logger.Err(err))
			return nil
		}
		return s
	case models.SuggestionProviderHTTP:
		if cfg.HTTPURL == "" {
			logger.Warn("HTTP suggestions disabled, no URL configured")
			return nil
		}
		client := httpclient.NewClient(httpclient.Config{
			BaseURL: cfg.HTTPURL,
			APIKey:  cfg.HTTPAPIKey,
			Timeout: cfg.Timeout,
			Breaker: circuitbreaker.SuggestionSource,
		}, retrier, breakers, zapLogger)
		return NewHTTPSuggester(client)
	case "", models.SuggestionProviderNone:
		return nil
	default:
		logger.Warn("Unknown suggestion provider, suggestions disabled", logger.String("provider", cfg.Provider))
		return nil
	}
}

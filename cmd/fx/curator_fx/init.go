package curator_fx

import (
	"fmt"
	"strings"

	"go.uber.org/fx"
	"roam/internal/config"
	"roam/pkg/logging"
	"roam/pkg/utils"
)

var Module = fx.Provide(ProvideCuratorClient)

// ProvideCuratorClient builds the configured model client and wraps it with
// timeout, retry and circuit breaking.
func ProvideCuratorClient(cfg *config.Config, breaker utils.BreakerOptions) (utils.CuratorClientInterface, error) {
	provider := strings.ToLower(cfg.Curator.Provider)

	var apiKey, model string
	switch provider {
	case "openai":
		apiKey, model = cfg.Curator.OpenAIAPIKey, cfg.Curator.OpenAIModel
	case "gemini":
		apiKey, model = cfg.Curator.GeminiAPIKey, cfg.Curator.GeminiModel
	}

	logging.Info().Str("provider", provider).Str("model", model).Msg("Initializing curator client")

	client, err := utils.NewCuratorClient(provider, apiKey, model)
	if err != nil {
		return nil, fmt.Errorf("failed to create curator client: %w", err)
	}

	return utils.NewResilientCurator(client, utils.RetryOptions{
		AttemptTimeout: cfg.Curator.Timeout,
		MaxRetries:     uint64(cfg.Curator.MaxRetries),
	}, breaker), nil
}

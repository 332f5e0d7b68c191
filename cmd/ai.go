package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/talentsift/cv-distiller/internal/ai/gemini"
	"github.com/talentsift/cv-distiller/internal/logger"
	"github.com/talentsift/cv-distiller/internal/pipeline"
	"github.com/talentsift/cv-distiller/internal/secrets"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// newExtractor builds the LLM extraction adapter from the configuration.
// The gemini api key is resolved from a key file first, then from the
// GEMINI_API_KEY environment variable.
func newExtractor(ctx context.Context, config *Config, log *zap.Logger) (*gemini.Extractor, error) {
	aiCfg := config.AI
	if aiCfg == nil {
		aiCfg = &AIConfig{}
	}

	provider := strings.TrimSpace(strings.ToLower(aiCfg.Provider))
	if provider != "" && provider != "gemini" {
		return nil, fmt.Errorf("unsupported ai provider: %s", aiCfg.Provider)
	}

	gemCfg := aiCfg.Gemini
	if gemCfg == nil {
		gemCfg = &GeminiConfig{}
	}

	keyFile := strings.TrimSpace(gemCfg.APIKeyFile)
	if keyFile == "" {
		keyFile = strings.TrimSpace(viper.GetString("ai.gemini.api-key-file"))
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name: "gemini api key",
		File: keyFile,
		Env:  "GEMINI_API_KEY",
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key-file, GEMINI_API_KEY_FILE or GEMINI_API_KEY)", err)
	}

	generator, err := gemini.NewGenerator(ctx, apiKey, gemCfg.Model)
	if err != nil {
		return nil, err
	}

	extractorLogger := logger.WithCommonFields(log, "gemini", generator.Model())

	return gemini.NewExtractor(generator, extractorLogger, gemCfg.MaxLogLength), nil
}

func llmTimeout(config *Config) time.Duration {
	if config != nil && config.AI != nil && config.AI.TimeoutSeconds > 0 {
		return time.Duration(config.AI.TimeoutSeconds) * time.Second
	}

	return pipeline.DefaultTimeout
}

func submissionFields(id string) []zap.Field {
	return logger.StringFields(logger.StringField{Key: logger.FieldSubmission, Value: id})
}

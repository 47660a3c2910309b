package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	anthropicsdk "github.com/anthropics/anthropic-sdk-go"

	"github.com/hupe1980/tourmesh/logging"
	"github.com/hupe1980/tourmesh/model"
	"github.com/hupe1980/tourmesh/model/anthropic"
	"github.com/hupe1980/tourmesh/model/openai"
)

// newLogger builds the process logger from the persistent flags.
func newLogger(cmd *cobra.Command) (logging.Logger, error) {
	levelStr, _ := cmd.Flags().GetString("log-level")
	formatStr, _ := cmd.Flags().GetString("log-format")

	var level logging.LogLevel
	switch strings.ToLower(levelStr) {
	case "debug":
		level = logging.LevelDebug
	case "info":
		level = logging.LevelInfo
	case "warn":
		level = logging.LevelWarn
	case "error":
		level = logging.LevelError
	default:
		return nil, fmt.Errorf("unknown log level %q", levelStr)
	}

	var format logging.Format
	switch strings.ToLower(formatStr) {
	case "text":
		format = logging.FormatText
	case "json":
		format = logging.FormatJSON
	default:
		return nil, fmt.Errorf("unknown log format %q", formatStr)
	}

	return logging.NewSlogLogger(logging.Config{
		Level:  level,
		Format: format,
		Output: os.Stderr,
	}), nil
}

// newModel builds the generation model from the persistent flags. A
// missing API key for the selected provider is a startup failure, not
// something to discover mid-conversation.
func newModel(cmd *cobra.Command) (model.Model, error) {
	provider, _ := cmd.Flags().GetString("provider")
	name, _ := cmd.Flags().GetString("model")

	switch strings.ToLower(provider) {
	case "anthropic":
		if os.Getenv("ANTHROPIC_API_KEY") == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable is required for provider %q", provider)
		}
		return anthropic.NewModel(func(o *anthropic.Options) {
			if name != "" {
				o.Model = anthropicsdk.Model(name)
			}
		}), nil

	case "openai":
		if os.Getenv("OPENAI_API_KEY") == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable is required for provider %q", provider)
		}
		return openai.NewModel(func(o *openai.Options) {
			if name != "" {
				o.Model = name
			}
		}), nil

	case "mock":
		// Offline mode for demos and smoke tests.
		if name == "" {
			name = "mock"
		}
		return model.NewMockModel(name, "mock"), nil

	default:
		return nil, fmt.Errorf("unknown provider %q (expected anthropic, openai or mock)", provider)
	}
}

// Command orient generates job-site orientation sheets and first-aid
// guidance from a position fix.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"

	"github.com/lumar-safety/orient/internal/adapters/driven/ai"
	"github.com/lumar-safety/orient/internal/adapters/driven/config/file"
	"github.com/lumar-safety/orient/internal/adapters/driven/storage/memory"
	"github.com/lumar-safety/orient/internal/adapters/driving/cli"
	"github.com/lumar-safety/orient/internal/core/services"
	"github.com/lumar-safety/orient/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Local .env files are a development convenience; absence is fine.
	_ = godotenv.Load()

	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("open config store: %w", err)
	}
	promptStore, err := file.NewPromptStore("")
	if err != nil {
		return fmt.Errorf("open prompt store: %w", err)
	}

	settingsService := services.NewSettingsService(configStore)
	settings := settingsService.Get()

	svcs := cli.Services{
		Settings:       settingsService,
		ValidateModels: ai.ValidateModelConfig,
		StartPromptWatcher: func() (io.Closer, error) {
			return file.WatchPrompts(promptStore)
		},
	}

	// Without a credential only settings and version are usable; the
	// commands themselves explain what is missing.
	if settings.Model.IsConfigured() {
		models, err := ai.CreateModels(&settings.Model)
		if err != nil {
			return fmt.Errorf("create models: %w", err)
		}
		defer models.Close()

		resolver := services.NewLocationContextService(models.Resolve, promptStore)
		position := ai.CreatePositionSource(settings)

		svcs.Reports = services.NewReportService(resolver, position)
		svcs.Extractor = services.NewAddressExtractionService(models.Resolve, promptStore)
		svcs.Chat = services.NewFirstAidService(models.Chat, promptStore, memory.NewSessionStore())
		svcs.Position = position
	} else {
		logger.Debug("no API key configured, model-backed commands disabled")
	}

	cli.SetServices(svcs)
	return cli.Execute()
}

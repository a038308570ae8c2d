// Package cli implements the orient command line interface. Commands are
// thin shells over the driving ports; service wiring happens in main and is
// injected through SetServices.
package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/lumar-safety/orient/internal/core/domain"
	"github.com/lumar-safety/orient/internal/core/ports/driven"
	"github.com/lumar-safety/orient/internal/core/ports/driving"
	"github.com/lumar-safety/orient/internal/core/services"
	"github.com/lumar-safety/orient/internal/logger"
)

// version is the build version, overridable via ldflags.
var version = "0.1.0"

// Injected services. Commands error with "not configured" when a required
// service is missing, so partial wiring (no API key yet) still allows
// settings and version to run.
var (
	reportService   driving.ReportGenerator
	extractService  driving.AddressExtractor
	chatService     driving.FirstAidChat
	settingsService *services.SettingsService
	positionSource  driven.PositionSource

	// validateModels pings the configured model, set by main to avoid a
	// provider dependency in this package.
	validateModels func(*domain.ModelSettings) error

	// startPromptWatcher begins live prompt reloading for long-running
	// commands. Nil when prompt files are not in use.
	startPromptWatcher func() (io.Closer, error)
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "orient",
	Short: "Job-site orientation sheets and first-aid guidance",
	Long: `Orient resolves a position fix into an emergency orientation sheet:
verified address, nearest hospital, surroundings, rescue chain and
emergency numbers - ready to read out on a 112/144 call.

Also provides structured address extraction from free text and an
interactive first-aid chat.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Services bundles everything the commands need.
type Services struct {
	Reports   driving.ReportGenerator
	Extractor driving.AddressExtractor
	Chat      driving.FirstAidChat
	Settings  *services.SettingsService
	Position  driven.PositionSource

	ValidateModels     func(*domain.ModelSettings) error
	StartPromptWatcher func() (io.Closer, error)
}

// SetServices injects the wired services into the command tree.
func SetServices(s Services) {
	reportService = s.Reports
	extractService = s.Extractor
	chatService = s.Chat
	settingsService = s.Settings
	positionSource = s.Position
	validateModels = s.ValidateModels
	startPromptWatcher = s.StartPromptWatcher
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

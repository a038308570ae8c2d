package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/lumar-safety/orient/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the model credential, sheet language, position
source and serve address.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsKeyCmd = &cobra.Command{
	Use:   "key",
	Short: "Set the Gemini API key",
	Long: `Stores the Gemini API key. The key is read without echo.

The ORIENT_API_KEY and GEMINI_API_KEY environment variables override the
stored key and are never written to disk.`,
	RunE: runSettingsKey,
}

var settingsLanguageCmd = &cobra.Command{
	Use:   "language [code]",
	Short: "Set the default language",
	Long: `Sets the default language for sheets and chat.

Supported: de (Deutsch), en (English), ro (Română), hr (Hrvatski),
sr (Srpski), bs (Bosanski).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSettingsLanguage,
}

var settingsGeoCmd = &cobra.Command{
	Use:   "geo",
	Short: "Configure the position source",
	Long: `Configures how positions are fixed: via the Google Geolocation API
(shares the model credential) or a surveyed static site position.`,
	RunE: runSettingsGeo,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsKeyCmd)
	settingsCmd.AddCommand(settingsLanguageCmd)
	settingsCmd.AddCommand(settingsGeoCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings := settingsService.Get()

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Model]")
	if settings.Model.APIKey != "" {
		cmd.Printf("  API Key: %s\n", maskAPIKey(settings.Model.APIKey))
	} else {
		cmd.Printf("  API Key: (not set)\n")
	}
	cmd.Printf("  Resolve model: %s\n", settings.Model.ResolveModel)
	cmd.Printf("  Chat model: %s\n", settings.Model.ChatModel)
	cmd.Println()

	cmd.Println("[Position]")
	if settings.Geo.UseGeolocationAPI {
		cmd.Printf("  Source: Google Geolocation API\n")
	} else if settings.Geo.HasStaticPosition() {
		cmd.Printf("  Source: static (%.6f, %.6f)\n", settings.Geo.StaticLatitude, settings.Geo.StaticLongitude)
	} else {
		cmd.Printf("  Source: (none)\n")
	}
	cmd.Println()

	cmd.Printf("Language: %s\n", settings.Language.Description())
	cmd.Printf("Serve address: %s\n", settings.ListenAddr)
	cmd.Println()

	if !settings.Model.IsConfigured() {
		cmd.Println("No API key configured. Run 'orient settings key' to set one.")
	}
	return nil
}

func runSettingsKey(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	cmd.Print("Enter API key: ")
	key := readPassword()
	cmd.Println()
	if key == "" {
		return errors.New("API key must not be empty")
	}

	if validateModels != nil {
		cmd.Print("Validating key... ")
		settings := settingsService.Get()
		settings.Model.APIKey = key
		if err := validateModels(&settings.Model); err != nil {
			cmd.Printf("FAILED: %v\n", err)
			return fmt.Errorf("key validation failed: %w", err)
		}
		cmd.Println("OK")
	}

	if err := settingsService.SetAPIKey(key); err != nil {
		return fmt.Errorf("failed to store API key: %w", err)
	}
	cmd.Println("API key stored.")
	return nil
}

func runSettingsLanguage(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	var lang domain.Language
	if len(args) == 1 {
		parsed, err := domain.ParseLanguage(args[0])
		if err != nil {
			return fmt.Errorf("unsupported language %q (supported: de, en, ro, hr, sr, bs)", args[0])
		}
		lang = parsed
	} else {
		reader := bufio.NewReader(os.Stdin)
		languages := domain.Languages()
		cmd.Println("Select Language")
		cmd.Println("---------------")
		for i, l := range languages {
			cmd.Printf("  %d. %s\n", i+1, l.Description())
		}
		cmd.Print("\nEnter choice [1]: ")
		input := readLine(reader)
		idx := parseChoice(input, len(languages), 1)
		lang = languages[idx-1]
	}

	settings := settingsService.Get()
	settings.Language = lang
	if err := settingsService.Save(settings); err != nil {
		return fmt.Errorf("failed to save language: %w", err)
	}
	cmd.Printf("Language set to: %s\n", lang.Description())
	return nil
}

func runSettingsGeo(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	reader := bufio.NewReader(os.Stdin)
	settings := settingsService.Get()

	cmd.Println("Position Source")
	cmd.Println("---------------")
	cmd.Println("  1. Google Geolocation API (uses the model credential)")
	cmd.Println("  2. Static site position")
	cmd.Print("\nEnter choice [1]: ")
	input := readLine(reader)
	choice := parseChoice(input, 2, 1)

	if choice == 1 {
		settings.Geo.UseGeolocationAPI = true
	} else {
		settings.Geo.UseGeolocationAPI = false

		cmd.Print("Latitude: ")
		lat, err := strconv.ParseFloat(readLine(reader), 64)
		if err != nil {
			return fmt.Errorf("invalid latitude: %w", err)
		}
		cmd.Print("Longitude: ")
		lng, err := strconv.ParseFloat(readLine(reader), 64)
		if err != nil {
			return fmt.Errorf("invalid longitude: %w", err)
		}
		settings.Geo.StaticLatitude = lat
		settings.Geo.StaticLongitude = lng
	}

	if err := settingsService.Save(settings); err != nil {
		return fmt.Errorf("failed to save position settings: %w", err)
	}
	cmd.Println("Position source configured.")
	return nil
}

// Helper functions.

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}

//nolint:errcheck // CLI helper, error ignored for UX
func readPassword() string {
	// Read without echo when attached to a terminal.
	if term.IsTerminal(int(os.Stdin.Fd())) {
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err == nil {
			return string(password)
		}
	}
	// Fallback to regular input
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}

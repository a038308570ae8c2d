package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lumar-safety/orient/internal/core/domain"
	"github.com/lumar-safety/orient/internal/core/ports/driving"
)

var (
	reportLat      float64
	reportLng      float64
	reportAccuracy float64
	reportAddress  string
	reportLanguage string
	reportJSON     bool
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate an orientation sheet for the current position",
	Long: `Generates the full orientation sheet: verified address, nearest
hospital, surroundings description, rescue chain and emergency numbers.

Without --lat/--lng the configured position source is asked for a fix.
With --address the sheet is built for a manually supplied address and a
position failure falls back to the default coordinate instead of aborting.`,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().Float64Var(&reportLat, "lat", 0, "latitude of a known position")
	reportCmd.Flags().Float64Var(&reportLng, "lng", 0, "longitude of a known position")
	reportCmd.Flags().Float64Var(&reportAccuracy, "accuracy", 0, "accuracy of the known position in meters")
	reportCmd.Flags().StringVar(&reportAddress, "address", "", "manually supplied address")
	reportCmd.Flags().StringVarP(&reportLanguage, "language", "l", "", "sheet language (de, en, ro, hr, sr, bs)")
	reportCmd.Flags().BoolVar(&reportJSON, "json", false, "output the report as JSON")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, _ []string) error {
	if reportService == nil {
		return errors.New("report service not configured, set an API key first (orient settings key)")
	}

	lang, err := resolveLanguage(reportLanguage)
	if err != nil {
		return err
	}

	params := driving.ReportParams{
		ManualAddress: reportAddress,
		Language:      lang,
	}
	if cmd.Flags().Changed("lat") || cmd.Flags().Changed("lng") {
		params.Coordinate = &domain.Coordinate{
			Latitude:       reportLat,
			Longitude:      reportLng,
			AccuracyMeters: reportAccuracy,
		}
	}

	report, err := reportService.Generate(cmd.Context(), params)
	if err != nil {
		var geoErr *domain.GeoError
		if errors.As(err, &geoErr) {
			return fmt.Errorf("position fix failed (%s): %w", geoErr.Kind, err)
		}
		return fmt.Errorf("report generation failed: %w", err)
	}

	if reportJSON {
		return outputReportJSON(cmd, report)
	}
	outputReportSheet(cmd, report)
	return nil
}

func outputReportJSON(cmd *cobra.Command, report *domain.OrientationReport) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputReportSheet(cmd *cobra.Command, report *domain.OrientationReport) {
	cmd.Println("Orientation Sheet")
	cmd.Println("=================")
	cmd.Println()

	cmd.Printf("Address:   %s\n", report.Context.Address)
	if report.ManualAddress != "" {
		cmd.Printf("           (manually supplied)\n")
	}
	cmd.Printf("Area:      %s\n", report.Context.Description)
	if report.Context.MedicalFacility != "" {
		cmd.Printf("Hospital:  %s\n", report.Context.MedicalFacility)
	}
	cmd.Println()

	cmd.Printf("%s", report.Coordinate.GPSString())
	if report.Coordinate.AccuracyMeters > 0 {
		cmd.Printf(" (±%.0f m, %s)", report.Coordinate.AccuracyMeters, report.Accuracy)
	}
	cmd.Println()
	cmd.Printf("Map:       %s\n", report.MapURL)
	cmd.Printf("Hospitals: %s\n", report.HospitalMapURL)
	cmd.Println()

	cmd.Println("Rescue chain:")
	for _, step := range report.RescueChain {
		cmd.Printf("  %d. %s %s - %s\n", step.ID, step.Icon, step.Title, step.Description)
	}
	cmd.Println()
	cmd.Printf("Emergency numbers: %s\n", strings.Join(report.EmergencyNumbers, ", "))
	cmd.Println()
	cmd.Println("Share text:")
	cmd.Printf("  %s\n", report.ShareText())
}

// resolveLanguage parses the flag value, falling back to the configured
// language when the flag was not given.
func resolveLanguage(flagValue string) (domain.Language, error) {
	if flagValue != "" {
		lang, err := domain.ParseLanguage(flagValue)
		if err != nil {
			return "", fmt.Errorf("unsupported language %q (supported: de, en, ro, hr, sr, bs)", flagValue)
		}
		return lang, nil
	}
	if settingsService != nil {
		return settingsService.Get().Language, nil
	}
	return domain.DefaultLanguage, nil
}

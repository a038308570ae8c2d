package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lumar-safety/orient/internal/core/domain"
	"github.com/lumar-safety/orient/internal/core/ports/driven"
)

var locateTimeout time.Duration

var locateCmd = &cobra.Command{
	Use:   "locate",
	Short: "Request a position fix from the configured source",
	Long: `Requests a single position fix and prints the coordinate with its
accuracy rating. Useful to check the position configuration before
relying on it on site.`,
	RunE: runLocate,
}

func init() {
	locateCmd.Flags().DurationVar(&locateTimeout, "timeout", 20*time.Second, "deadline for the fix")
	rootCmd.AddCommand(locateCmd)
}

func runLocate(cmd *cobra.Command, _ []string) error {
	if positionSource == nil {
		return errors.New("no position source configured, enable the geolocation API or set a static position (orient settings geo)")
	}

	opts := driven.DefaultLocateOptions()
	opts.Timeout = locateTimeout

	coord, err := positionSource.Locate(cmd.Context(), opts)
	if err != nil {
		var geoErr *domain.GeoError
		if errors.As(err, &geoErr) {
			return fmt.Errorf("position fix failed (%s): %w", geoErr.Kind, err)
		}
		return fmt.Errorf("position fix failed: %w", err)
	}

	cmd.Printf("Source:   %s\n", positionSource.Name())
	cmd.Printf("%s\n", coord.GPSString())
	if coord.AccuracyMeters > 0 {
		cmd.Printf("Accuracy: ±%.0f m (%s)\n", coord.AccuracyMeters, coord.Rating())
	} else {
		cmd.Printf("Accuracy: not reported\n")
	}
	cmd.Printf("Map:      %s\n", coord.MapsSearchURL())
	return nil
}

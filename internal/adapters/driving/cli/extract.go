package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var extractJSON bool

var extractCmd = &cobra.Command{
	Use:   "extract [text]",
	Short: "Extract a structured address from free text",
	Long: `Pulls a structured postal address out of free-form text, for example
a site briefing or a message from the foreman.

Extraction never fails hard: when no address can be found the result is
empty with low confidence.`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().BoolVar(&extractJSON, "json", false, "output the extraction as JSON")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	if extractService == nil {
		return errors.New("extraction service not configured, set an API key first (orient settings key)")
	}

	result := extractService.Extract(cmd.Context(), args[0])

	if extractJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal extraction: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if !result.HasAddress() {
		cmd.Println("No address found.")
		if result.Notes != "" {
			cmd.Printf("  %s\n", result.Notes)
		}
		return nil
	}

	cmd.Printf("Address:    %s\n", result.DisplayAddress())
	cmd.Printf("Confidence: %s\n", result.Confidence)
	if result.Notes != "" {
		cmd.Printf("Notes:      %s\n", result.Notes)
	}
	return nil
}

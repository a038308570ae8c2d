package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/lumar-safety/orient/internal/adapters/driving/tui"
)

var chatLanguage string

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start the interactive first-aid chat",
	Long: `Opens the interactive first-aid assistant in the terminal.

The assistant gives step-by-step guidance for the described situation and
keeps pointing at the emergency numbers (112, 144). It supports photo
context: type /photo <path> to attach an image to the next message.

Controls:
  Enter    - Send message
  Esc      - Discard pending photo / input
  Ctrl+C   - Quit`,
	RunE: runChat,
}

func init() {
	chatCmd.Flags().StringVarP(&chatLanguage, "language", "l", "", "chat language (de, en, ro, hr, sr, bs)")
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, _ []string) error {
	if chatService == nil {
		return errors.New("chat service not configured, set an API key first (orient settings key)")
	}

	lang, err := resolveLanguage(chatLanguage)
	if err != nil {
		return err
	}

	// Panic recovery so a TUI crash still prints a usable stack.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in chat UI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	// Long-running mode: pick up prompt edits without a restart.
	if startPromptWatcher != nil {
		if watcher, err := startPromptWatcher(); err == nil {
			defer watcher.Close()
		}
	}

	app, err := tui.NewApp(&tui.Ports{Chat: chatService, Language: lang})
	if err != nil {
		return fmt.Errorf("failed to create chat UI: %w", err)
	}
	app.WithContext(cmd.Context())

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("chat UI error: %w", err)
	}
	return nil
}

package file

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/lumar-safety/orient/internal/core/ports/driven"
)

// Ensure PromptStore implements the interface.
var _ driven.PromptStore = (*PromptStore)(nil)

// PromptStore loads model prompts from user-editable files on disk.
// Prompts are loaded from a configurable directory with fallback to embedded defaults.
//
// The store uses lazy initialisation - files are only created when first accessed,
// not in the constructor. This makes testing easier and avoids unexpected I/O.
type PromptStore struct {
	mu        sync.RWMutex
	promptDir string
	cache     map[string]string
	initOnce  sync.Once
	initErr   error
}

// defaultPrompts contains embedded default prompts.
// These are used when user files don't exist and as the initial content for new files.
// The pipeline services carry the same texts as their own fallback, so a broken
// prompt directory never takes a feature down.
//
//nolint:lll // Prompt content is intentionally long and should not be wrapped.
var defaultPrompts = map[string]string{
	driven.PromptLocationContext: `Ich befinde mich an den Koordinaten: %v, %v.

Nutze das Google Maps Tool, um:
1. Die exakte Adresse für diese Koordinaten zu finden.
2. Das nächstgelegene Krankenhaus (Spital) zu finden. Erfasse unbedingt den NAMEN, die STRASSE, die HAUSNUMMER, die PLZ und den ORT.

Antworte strikt in folgendem Format (kein Markdown, keine Einleitung):
Zeile 1: [Exakte Adresse aus Google Maps] (Straße, Hausnummer, PLZ Stadt)
Zeile 2: [Name des KH], [Straße + Nr], [PLZ + Ort]
Zeile 3: [Kurze Beschreibung der Umgebung] (z.B. Waldgebiet, Industriezone, Autobahn)

Antworte in %s.`,

	driven.PromptLocationContextManual: `Die bekannte Einsatzadresse lautet: %s.
Die ungefähren Koordinaten sind: %v, %v.

Nutze das Google Maps Tool, um:
1. Das nächstgelegene Krankenhaus (Spital) zur Einsatzadresse zu finden. Erfasse unbedingt den NAMEN, die STRASSE, die HAUSNUMMER, die PLZ und den ORT.
2. Die Umgebung der Einsatzadresse kurz zu beschreiben.

Antworte strikt in folgendem Format (kein Markdown, keine Einleitung):
Zeile 1: [Die bekannte Einsatzadresse, unverändert]
Zeile 2: [Name des KH], [Straße + Nr], [PLZ + Ort]
Zeile 3: [Kurze Beschreibung der Umgebung] (z.B. Waldgebiet, Industriezone, Autobahn)

Antworte in %s.`,

	driven.PromptAddressExtraction: `Du bist ein Extraktionssystem für Postadressen.
Extrahiere aus dem Text des Nutzers eine Einsatzadresse.

Regeln:
1. Erfinde NIEMALS Werte, die nicht im Text stehen.
2. Gibt es mehrere Adressen, bevorzuge die als Einsatzort, Standort oder Baustelle bezeichnete Adresse gegenüber Firmen- oder Rechnungsadressen.
3. Ist die Adresse mehrdeutig oder nicht vorhanden, setze alle Adressfelder auf null und confidence auf "low".
4. sourceText enthält die Textstelle, aus der die Adresse stammt.
5. notes enthält Hinweise zur Extraktion, sonst null.`,

	driven.PromptFirstAidSystem: `Du bist ein professioneller Erste-Hilfe-Assistent.
Deine Aufgabe ist es, in Notfällen Ruhe zu bewahren und präzise, lebensrettende Anweisungen zu geben.

Regeln:
1. Priorisiere IMMER den Notruf 112 oder 144. Erinnere den Nutzer aktiv daran.
2. Gib klare, schrittweise Anweisungen (z.B. für HLW, stabile Seitenlage, Blutstillung).
3. Wenn ein Bild gesendet wird, analysiere es auf Verletzungen oder Gefahren und gib spezifisches Feedback.
4. Antworte immer in der Sprache: %s.
5. Sei kurz, prägnant und direkt.
6. Vermeide unnötige Einleitungen.`,
}

// NewPromptStore creates a new file-based prompt store.
// If promptDir is empty, defaults to ~/.orient/prompts/.
//
// The constructor does not perform any I/O - directory creation and
// file writes happen lazily on first Load() call.
func NewPromptStore(promptDir string) (*PromptStore, error) {
	if promptDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home directory: %w", err)
		}
		promptDir = filepath.Join(home, ".orient", "prompts")
	}

	return &PromptStore{
		promptDir: promptDir,
		cache:     make(map[string]string),
	}, nil
}

// Load returns the prompt template for the given name.
// On first call, initialises the prompt directory and creates default files.
// Returns cached value if available, otherwise loads from file.
// Falls back to embedded default if file doesn't exist.
func (s *PromptStore) Load(name string) (string, error) {
	// Ensure directory and defaults exist (lazy init)
	s.initOnce.Do(s.initialise)
	if s.initErr != nil {
		// Fall back to embedded defaults if init failed
		if prompt, ok := defaultPrompts[name]; ok {
			return prompt, nil
		}
		return "", fmt.Errorf("prompt store init failed: %w", s.initErr)
	}

	// Check cache first (read lock)
	s.mu.RLock()
	if prompt, ok := s.cache[name]; ok {
		s.mu.RUnlock()
		return prompt, nil
	}
	s.mu.RUnlock()

	// Load from file (no lock held during I/O)
	prompt, err := s.loadFromFile(name)
	if err != nil {
		// Fall back to embedded default
		if defaultPrompt, ok := defaultPrompts[name]; ok {
			return defaultPrompt, nil
		}
		return "", fmt.Errorf("load prompt %q: %w", name, err)
	}

	// Cache the result (write lock)
	// Use double-check pattern to avoid overwriting concurrent loads
	s.mu.Lock()
	if _, ok := s.cache[name]; !ok {
		s.cache[name] = prompt
	} else {
		// Another goroutine loaded it first, use their value
		prompt = s.cache[name]
	}
	s.mu.Unlock()

	return prompt, nil
}

// Reload clears the prompt cache, forcing fresh loads from disk.
func (s *PromptStore) Reload() {
	s.mu.Lock()
	s.cache = make(map[string]string)
	s.mu.Unlock()
}

// Dir returns the prompt directory path.
func (s *PromptStore) Dir() string {
	return s.promptDir
}

// initialise creates the prompt directory and default files.
// Called once via sync.Once on first Load().
func (s *PromptStore) initialise() {
	// Create directory
	if err := os.MkdirAll(s.promptDir, 0700); err != nil {
		s.initErr = fmt.Errorf("create prompt directory: %w", err)
		return
	}

	// Create default prompt files (only if they don't exist)
	for name, content := range defaultPrompts {
		path := filepath.Join(s.promptDir, name+".txt")
		if _, err := os.Stat(path); os.IsNotExist(err) {
			if err := os.WriteFile(path, []byte(content), 0600); err != nil {
				s.initErr = fmt.Errorf("create default prompt %q: %w", name, err)
				return
			}
		}
	}

	// Create README
	if err := s.createReadme(); err != nil {
		s.initErr = err
	}
}

// loadFromFile reads a prompt from disk.
func (s *PromptStore) loadFromFile(name string) (string, error) {
	path := filepath.Join(s.promptDir, name+".txt")
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// createReadme writes a README file explaining the prompts directory.
func (s *PromptStore) createReadme() error {
	path := filepath.Join(s.promptDir, "README.md")
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		return nil // Already exists or stat error (ignore)
	}

	content := `# Orient Prompts

This directory contains customisable prompts used by orient's model features.

## Files

- ` + "`location_context.txt`" + ` - Grounded address/hospital/environment resolution
- ` + "`location_context_manual.txt`" + ` - Resolution with a known site address
- ` + "`address_extraction.txt`" + ` - Structured address extraction contract
- ` + "`first_aid_system.txt`" + ` - System prompt for the first-aid chat

## Customisation

Edit any file to customise model behaviour. Changes take effect on the next
command or after restarting the server.

## Format Placeholders

Some prompts use Go fmt placeholders:
- ` + "`%s`" + ` - String (e.g., the site address or answer language)
- ` + "`%v`" + ` - Number (e.g., latitude and longitude)

Ensure customised prompts maintain placeholders in the correct positions.
`
	return os.WriteFile(path, []byte(content), 0600)
}

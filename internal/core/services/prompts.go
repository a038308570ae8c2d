package services

import (
	"fmt"

	"github.com/lumar-safety/orient/internal/core/domain"
	"github.com/lumar-safety/orient/internal/core/ports/driven"
)

// Default prompt templates. The prompts are authored in German, the
// application's primary working language; the target answer language is
// injected per request. A configured PromptStore overrides these.
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

// loadPrompt loads a template from the store, falling back to the embedded
// default if no store is configured or the load fails.
func loadPrompt(store driven.PromptStore, name string) string {
	fallback := defaultPrompts[name]
	if store == nil {
		return fallback
	}
	prompt, err := store.Load(name)
	if err != nil || prompt == "" {
		return fallback
	}
	return prompt
}

// locationPrompt renders the grounded three-line resolution prompt.
func locationPrompt(store driven.PromptStore, coord domain.Coordinate, lang domain.Language, manualAddress string) string {
	if manualAddress != "" {
		tpl := loadPrompt(store, driven.PromptLocationContextManual)
		return fmt.Sprintf(tpl, manualAddress, coord.Latitude, coord.Longitude, lang.PromptName())
	}
	tpl := loadPrompt(store, driven.PromptLocationContext)
	return fmt.Sprintf(tpl, coord.Latitude, coord.Longitude, lang.PromptName())
}

// firstAidSystemPrompt renders the chat system instruction.
func firstAidSystemPrompt(store driven.PromptStore, lang domain.Language) string {
	tpl := loadPrompt(store, driven.PromptFirstAidSystem)
	return fmt.Sprintf(tpl, lang.PromptName())
}

// extractionSchema is the response schema for structured address
// extraction: six nullable strings, a required confidence literal, and
// nullable notes.
func extractionSchema() *driven.Schema {
	nullableString := func(desc string) *driven.Schema {
		return &driven.Schema{Type: "string", Nullable: true, Description: desc}
	}
	return &driven.Schema{
		Type: "object",
		Properties: map[string]*driven.Schema{
			"street":      nullableString("Straßenname ohne Hausnummer"),
			"houseNumber": nullableString("Hausnummer inklusive Zusätzen"),
			"postalCode":  nullableString("Postleitzahl"),
			"city":        nullableString("Ort oder Stadt"),
			"country":     nullableString("Land, falls genannt"),
			"sourceText":  nullableString("Textstelle, aus der die Adresse stammt"),
			"confidence": {
				Type: "string",
				Enum: []string{"high", "medium", "low"},
			},
			"notes": nullableString("Hinweise zur Extraktion"),
		},
		Required: []string{"confidence"},
	}
}

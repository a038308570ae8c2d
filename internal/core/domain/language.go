package domain

// Language is a closed set of locale codes supported by the application.
// It is selected once per session and threaded into every model call to pick
// the system-prompt and answer language.
type Language string

// Supported languages.
const (
	LanguageGerman   Language = "de"
	LanguageEnglish  Language = "en"
	LanguageRomanian Language = "ro"
	LanguageCroatian Language = "hr"
	LanguageSerbian  Language = "sr"
	LanguageBosnian  Language = "bs"
)

// DefaultLanguage is used when no language was selected.
const DefaultLanguage = LanguageGerman

// Languages lists every supported language in presentation order.
func Languages() []Language {
	return []Language{
		LanguageGerman,
		LanguageEnglish,
		LanguageRomanian,
		LanguageCroatian,
		LanguageSerbian,
		LanguageBosnian,
	}
}

// IsValid returns true if the language code is recognised.
func (l Language) IsValid() bool {
	switch l {
	case LanguageGerman, LanguageEnglish, LanguageRomanian,
		LanguageCroatian, LanguageSerbian, LanguageBosnian:
		return true
	default:
		return false
	}
}

// String returns the locale code.
func (l Language) String() string {
	return string(l)
}

// PromptName returns the language name used inside model prompts.
// The prompts themselves are written in German, so the names are German.
func (l Language) PromptName() string {
	switch l {
	case LanguageGerman:
		return "Deutsch"
	case LanguageEnglish:
		return "Englisch"
	case LanguageRomanian:
		return "Rumänisch"
	case LanguageCroatian:
		return "Kroatisch"
	case LanguageSerbian:
		return "Serbisch"
	case LanguageBosnian:
		return "Bosnisch"
	default:
		return "Deutsch"
	}
}

// Description returns a human-readable name for settings listings.
func (l Language) Description() string {
	switch l {
	case LanguageGerman:
		return "Deutsch (German)"
	case LanguageEnglish:
		return "English"
	case LanguageRomanian:
		return "Română (Romanian)"
	case LanguageCroatian:
		return "Hrvatski (Croatian)"
	case LanguageSerbian:
		return "Srpski (Serbian)"
	case LanguageBosnian:
		return "Bosanski (Bosnian)"
	default:
		return "Unknown"
	}
}

// ParseLanguage validates a locale code, falling back to the default for
// empty input and rejecting anything outside the supported set.
func ParseLanguage(code string) (Language, error) {
	if code == "" {
		return DefaultLanguage, nil
	}
	l := Language(code)
	if !l.IsValid() {
		return "", ErrUnsupportedLanguage
	}
	return l, nil
}

package services

import "github.com/lumar-safety/orient/internal/core/domain"

// Localized fixed strings used inside the pipeline. Presentation-layer
// string tables live with their consumers; these are only the texts the
// core itself must produce (fallbacks, safety messages, rescue chain).

// fallbackDescriptions is the static description used when resolution
// degrades.
var fallbackDescriptions = map[domain.Language]string{
	domain.LanguageGerman:   "Standortdaten konnten nicht vollständig geladen werden.",
	domain.LanguageEnglish:  "Location data could not be fully loaded.",
	domain.LanguageRomanian: "Datele de localizare nu au putut fi încărcate complet.",
	domain.LanguageCroatian: "Podaci o lokaciji nisu mogli biti u potpunosti učitani.",
	domain.LanguageSerbian:  "Podaci o lokaciji nisu mogli biti potpuno učitani.",
	domain.LanguageBosnian:  "Podaci o lokaciji nisu mogli biti potpuno učitani.",
}

// FallbackDescription returns the localized degraded-context description.
func FallbackDescription(lang domain.Language) string {
	return localized(fallbackDescriptions, lang)
}

// safetyMessages is the fixed assistant turn appended when a chat call
// fails. The conversation continues afterwards.
var safetyMessages = map[domain.Language]string{
	domain.LanguageGerman:   "Verbindungsfehler. Im Zweifel IMMER Notruf 112 wählen!",
	domain.LanguageEnglish:  "Connection error. When in doubt ALWAYS call 112!",
	domain.LanguageRomanian: "Eroare de conexiune. Dacă aveți dubii, sunați ÎNTOTDEAUNA la 112!",
	domain.LanguageCroatian: "Greška u vezi. U sumnji UVIJEK nazovite 112!",
	domain.LanguageSerbian:  "Greška u vezi. U sumnji UVEK pozovite 112!",
	domain.LanguageBosnian:  "Greška u vezi. U sumnji UVIJEK nazovite 112!",
}

// SafetyMessage returns the localized in-conversation safety text.
func SafetyMessage(lang domain.Language) string {
	return localized(safetyMessages, lang)
}

// imageInstructions is substituted when a photo arrives without text.
var imageInstructions = map[domain.Language]string{
	domain.LanguageGerman:   "Analysiere dieses Bild für Erste Hilfe Maßnahmen.",
	domain.LanguageEnglish:  "Analyse this image for first aid measures.",
	domain.LanguageRomanian: "Analizați această imagine pentru măsuri de prim ajutor.",
	domain.LanguageCroatian: "Analiziraj ovu sliku za mjere prve pomoći.",
	domain.LanguageSerbian:  "Analiziraj ovu sliku za mere prve pomoći.",
	domain.LanguageBosnian:  "Analiziraj ovu sliku za mjere prve pomoći.",
}

// DefaultImageInstruction returns the localized analyse-this-image text.
func DefaultImageInstruction(lang domain.Language) string {
	return localized(imageInstructions, lang)
}

// chatGreetings opens every first-aid conversation.
var chatGreetings = map[domain.Language]string{
	domain.LanguageGerman:   "Ich bin dein Erste-Hilfe-Assistent. Was ist passiert? Du kannst mir auch ein Foto der Situation senden.",
	domain.LanguageEnglish:  "I am your first aid assistant. What happened? You can also send me a photo of the situation.",
	domain.LanguageRomanian: "Sunt asistentul tău de prim ajutor. Ce s-a întâmplat? Îmi poți trimite și o fotografie a situației.",
	domain.LanguageCroatian: "Ja sam tvoj asistent prve pomoći. Što se dogodilo? Možeš mi poslati i fotografiju situacije.",
	domain.LanguageSerbian:  "Ja sam tvoj asistent prve pomoći. Šta se dogodilo? Možeš mi poslati i fotografiju situacije.",
	domain.LanguageBosnian:  "Ja sam tvoj asistent prve pomoći. Šta se dogodilo? Možeš mi poslati i fotografiju situacije.",
}

// ChatGreeting returns the localized opening assistant message.
func ChatGreeting(lang domain.Language) string {
	return localized(chatGreetings, lang)
}

// emergencyReminders is the assistant text used when the provider returned
// an empty answer.
var emergencyReminders = map[domain.Language]string{
	domain.LanguageGerman:   "Bitte rufe sofort 112 an.",
	domain.LanguageEnglish:  "Please call 112 immediately.",
	domain.LanguageRomanian: "Vă rugăm să sunați imediat la 112.",
	domain.LanguageCroatian: "Odmah nazovite 112.",
	domain.LanguageSerbian:  "Odmah pozovite 112.",
	domain.LanguageBosnian:  "Odmah nazovite 112.",
}

// EmergencyReminder returns the localized call-112 reminder.
func EmergencyReminder(lang domain.Language) string {
	return localized(emergencyReminders, lang)
}

// geoErrorMessages maps every position failure class to a localized,
// retryable user-facing message.
var geoErrorMessages = map[domain.Language]map[domain.GeoErrorKind]string{
	domain.LanguageGerman: {
		domain.GeoPermissionDenied:    "Bitte erlauben Sie den Zugriff auf Ihren Standort.",
		domain.GeoPositionUnavailable: "Position nicht verfügbar (Kein GPS Signal).",
		domain.GeoTimeout:             "Zeitüberschreitung bei der Ortung. Bitte versuchen Sie es erneut (im Freien).",
		domain.GeoUnsupported:         "Geolokalisierung wird von diesem Gerät nicht unterstützt.",
	},
	domain.LanguageEnglish: {
		domain.GeoPermissionDenied:    "Please allow access to your location.",
		domain.GeoPositionUnavailable: "Position unavailable (no GPS signal).",
		domain.GeoTimeout:             "Timed out while locating. Please try again (outdoors).",
		domain.GeoUnsupported:         "Geolocation is not supported on this device.",
	},
	domain.LanguageRomanian: {
		domain.GeoPermissionDenied:    "Vă rugăm să permiteți accesul la locația dvs.",
		domain.GeoPositionUnavailable: "Poziție indisponibilă (fără semnal GPS).",
		domain.GeoTimeout:             "Timpul de localizare a expirat. Încercați din nou (în aer liber).",
		domain.GeoUnsupported:         "Geolocalizarea nu este suportată pe acest dispozitiv.",
	},
	domain.LanguageCroatian: {
		domain.GeoPermissionDenied:    "Molimo dopustite pristup svojoj lokaciji.",
		domain.GeoPositionUnavailable: "Pozicija nije dostupna (nema GPS signala).",
		domain.GeoTimeout:             "Isteklo je vrijeme lociranja. Pokušajte ponovno (na otvorenom).",
		domain.GeoUnsupported:         "Geolokacija nije podržana na ovom uređaju.",
	},
	domain.LanguageSerbian: {
		domain.GeoPermissionDenied:    "Molimo dozvolite pristup svojoj lokaciji.",
		domain.GeoPositionUnavailable: "Pozicija nije dostupna (nema GPS signala).",
		domain.GeoTimeout:             "Isteklo je vreme lociranja. Pokušajte ponovo (na otvorenom).",
		domain.GeoUnsupported:         "Geolokacija nije podržana na ovom uređaju.",
	},
	domain.LanguageBosnian: {
		domain.GeoPermissionDenied:    "Molimo dozvolite pristup svojoj lokaciji.",
		domain.GeoPositionUnavailable: "Pozicija nije dostupna (nema GPS signala).",
		domain.GeoTimeout:             "Isteklo je vrijeme lociranja. Pokušajte ponovo (na otvorenom).",
		domain.GeoUnsupported:         "Geolokacija nije podržana na ovom uređaju.",
	},
}

// GeoErrorMessage maps a position failure to its localized message.
func GeoErrorMessage(lang domain.Language, kind domain.GeoErrorKind) string {
	table, ok := geoErrorMessages[lang]
	if !ok {
		table = geoErrorMessages[domain.DefaultLanguage]
	}
	if msg, ok := table[kind]; ok {
		return msg
	}
	return geoErrorMessages[domain.DefaultLanguage][domain.GeoPositionUnavailable]
}

// rescueChains holds the static five-step checklist per language:
// secure scene, emergency call, first aid, rescue service, hospital.
var rescueChains = map[domain.Language][]domain.RescueStep{
	domain.LanguageGerman: {
		{ID: 1, Title: "Sofortmaßnahmen", Description: "Unfallstelle absichern. Selbstschutz beachten. Verletzte aus Gefahrenzone bringen.", Icon: "shield"},
		{ID: 2, Title: "Notruf", Description: "112 oder 144 wählen. Wo? Was? Wie viele? Wer? Warten auf Rückfragen.", Icon: "phone"},
		{ID: 3, Title: "Erste Hilfe", Description: "Blutungen stillen. Schockbekämpfung. Stabile Seitenlage. Wiederbelebung.", Icon: "medkit"},
		{ID: 4, Title: "Rettungsdienst", Description: "Rettungskräfte einweisen. Zufahrt freihalten. Tragehilfe leisten.", Icon: "ambulance"},
		{ID: 5, Title: "Krankenhaus", Description: "Übergabe an Ärzte. Weitere medizinische Versorgung.", Icon: "hospital"},
	},
	domain.LanguageEnglish: {
		{ID: 1, Title: "Immediate Measures", Description: "Secure the scene. Ensure self-protection. Move injured from danger zone.", Icon: "shield"},
		{ID: 2, Title: "Emergency Call", Description: "Dial 112. Where? What? How many? Who? Wait for instructions.", Icon: "phone"},
		{ID: 3, Title: "First Aid", Description: "Stop bleeding. Treat shock. Recovery position. CPR if needed.", Icon: "medkit"},
		{ID: 4, Title: "Rescue Service", Description: "Guide ambulance. Keep access clear. Assist crew if asked.", Icon: "ambulance"},
		{ID: 5, Title: "Hospital", Description: "Handover to doctors. Further medical treatment.", Icon: "hospital"},
	},
	domain.LanguageRomanian: {
		{ID: 1, Title: "Măsuri Imediate", Description: "Securizați locul. Protecție personală. Scoateți răniții din pericol.", Icon: "shield"},
		{ID: 2, Title: "Apel de Urgență", Description: "Sunați la 112. Unde? Ce? Câți? Cine? Așteptați instrucțiuni.", Icon: "phone"},
		{ID: 3, Title: "Primul Ajutor", Description: "Opriți sângerarea. Poziție de siguranță. Resuscitare dacă este necesar.", Icon: "medkit"},
		{ID: 4, Title: "Serviciul de Salvare", Description: "Ghidați ambulanța. Eliberați accesul. Ajutați echipajul.", Icon: "ambulance"},
		{ID: 5, Title: "Spital", Description: "Predare către medici. Tratament medical ulterior.", Icon: "hospital"},
	},
	domain.LanguageCroatian: {
		{ID: 1, Title: "Hitne Mjere", Description: "Osigurajte mjesto. Pazite na sebe. Maknite ozlijeđene iz opasnosti.", Icon: "shield"},
		{ID: 2, Title: "Hitni Poziv", Description: "Nazovite 112. Gdje? Što? Koliko? Tko? Čekajte upute.", Icon: "phone"},
		{ID: 3, Title: "Prva Pomoć", Description: "Zaustavite krvarenje. Bočni položaj. Oživljavanje ako treba.", Icon: "medkit"},
		{ID: 4, Title: "Hitna Služba", Description: "Dočekajte hitnu. Osigurajte prilaz. Pomozite timu.", Icon: "ambulance"},
		{ID: 5, Title: "Bolnica", Description: "Predaja liječnicima. Daljnje liječenje.", Icon: "hospital"},
	},
	domain.LanguageSerbian: {
		{ID: 1, Title: "Hitne Mere", Description: "Obezbedite mesto. Lična zaštita. Sklonite povređene od opasnosti.", Icon: "shield"},
		{ID: 2, Title: "Hitni Poziv", Description: "Pozovite 112. Gde? Šta? Koliko? Ko? Sačekajte uputstva.", Icon: "phone"},
		{ID: 3, Title: "Prva Pomoć", Description: "Zaustavite krvarenje. Bočni položaj. Reanimacija po potrebi.", Icon: "medkit"},
		{ID: 4, Title: "Hitna Služba", Description: "Sačekajte hitnu. Oslobodite prilaz. Pomozite ekipi.", Icon: "ambulance"},
		{ID: 5, Title: "Bolnica", Description: "Predaja lekarima. Dalje lečenje.", Icon: "hospital"},
	},
	domain.LanguageBosnian: {
		{ID: 1, Title: "Hitne Mjere", Description: "Osigurajte mjesto. Lična zaštita. Sklonite povrijeđene.", Icon: "shield"},
		{ID: 2, Title: "Hitni Poziv", Description: "Nazovite 112. Gdje? Šta? Koliko? Ko? Čekajte instrukcije.", Icon: "phone"},
		{ID: 3, Title: "Prva Pomoć", Description: "Zaustavite krvarenje. Bočni položaj. Reanimacija ako treba.", Icon: "medkit"},
		{ID: 4, Title: "Hitna Služba", Description: "Dočekajte hitnu. Osigurajte prilaz. Pomozite timu.", Icon: "ambulance"},
		{ID: 5, Title: "Bolnica", Description: "Predaja ljekarima. Daljnje liječenje.", Icon: "hospital"},
	},
}

// RescueChain returns the localized five-step checklist. The returned slice
// is a copy; callers may not mutate the tables.
func RescueChain(lang domain.Language) []domain.RescueStep {
	steps, ok := rescueChains[lang]
	if !ok {
		steps = rescueChains[domain.DefaultLanguage]
	}
	out := make([]domain.RescueStep, len(steps))
	copy(out, steps)
	return out
}

func localized(table map[domain.Language]string, lang domain.Language) string {
	if s, ok := table[lang]; ok {
		return s
	}
	return table[domain.DefaultLanguage]
}

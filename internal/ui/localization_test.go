package ui

import "testing"

func TestLocalization_DefaultsToEnglish(t *testing.T) {
	l := NewLocalization()

	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Expected default language en, got %s", l.GetCurrentLanguage())
	}
	if l.GetText(KeyPlayingFrom) != "Playing from" {
		t.Errorf("Unexpected text: %s", l.GetText(KeyPlayingFrom))
	}
}

func TestLocalization_SetLanguage(t *testing.T) {
	l := NewLocalization()

	l.SetLanguage("es")
	if l.GetText(KeyRetry) != "Reintentar" {
		t.Errorf("Expected Spanish retry text, got %s", l.GetText(KeyRetry))
	}

	l.SetLanguage("xx")
	if l.GetCurrentLanguage() != "es" {
		t.Errorf("Unknown language should keep es, got %s", l.GetCurrentLanguage())
	}

	l.SetLanguage("system")
	if l.GetCurrentLanguage() != "en" {
		t.Errorf("System language should resolve to en, got %s", l.GetCurrentLanguage())
	}
}

func TestLocalization_UnknownKeyReturnsKey(t *testing.T) {
	l := NewLocalization()
	if got := l.GetText("no_such_key"); got != "no_such_key" {
		t.Errorf("Expected key fallback, got %s", got)
	}
}

func TestLocalization_EveryLanguageIsComplete(t *testing.T) {
	l := NewLocalization()
	english := l.texts["en"]

	for code := range l.GetAvailableLanguages() {
		texts, ok := l.texts[code]
		if !ok {
			t.Errorf("Language %s has no texts", code)
			continue
		}
		for key := range english {
			if texts[key] == "" {
				t.Errorf("Language %s is missing %s", code, key)
			}
		}
	}
}

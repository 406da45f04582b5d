package i18n

import (
	"testing"
	"testing/fstest"
)

func mustEmbeddedManager(t *testing.T, defaultLanguage string) *Manager {
	t.Helper()
	manager, err := NewEmbeddedManager(defaultLanguage)
	if err != nil {
		t.Fatalf("NewEmbeddedManager() unexpected error: %v", err)
	}
	return manager
}

func TestNewEmbeddedManagerDefaults(t *testing.T) {
	manager := mustEmbeddedManager(t, "")
	if manager.DefaultLanguage() != LangPT {
		t.Fatalf("expected default %q, got %q", LangPT, manager.DefaultLanguage())
	}

	manager = mustEmbeddedManager(t, "en-US")
	if manager.DefaultLanguage() != LangEN {
		t.Fatalf("expected default %q, got %q", LangEN, manager.DefaultLanguage())
	}

	manager = mustEmbeddedManager(t, "de")
	if manager.DefaultLanguage() != LangPT {
		t.Fatalf("expected unsupported default to fall back to %q, got %q", LangPT, manager.DefaultLanguage())
	}

	languages := manager.SupportedLanguages()
	if len(languages) != 2 || languages[0] != LangEN || languages[1] != LangPT {
		t.Fatalf("unexpected supported languages %#v", languages)
	}
}

func TestNewManagerRequiresPortugueseAndEnglish(t *testing.T) {
	onlyEnglish := fstest.MapFS{
		"en.json": &fstest.MapFile{Data: []byte(`{"a":"b"}`)},
	}
	if _, err := NewManager(LangPT, onlyEnglish); err == nil {
		t.Fatal("expected missing pt locale to fail")
	}

	emptyLocale := fstest.MapFS{
		"pt.json": &fstest.MapFile{Data: []byte(`{}`)},
		"en.json": &fstest.MapFile{Data: []byte(`{"a":"b"}`)},
	}
	if _, err := NewManager(LangPT, emptyLocale); err == nil {
		t.Fatal("expected empty locale to fail")
	}

	broken := fstest.MapFS{
		"pt.json": &fstest.MapFile{Data: []byte(`{`)},
		"en.json": &fstest.MapFile{Data: []byte(`{"a":"b"}`)},
	}
	if _, err := NewManager(LangPT, broken); err == nil {
		t.Fatal("expected malformed locale to fail")
	}

	if _, err := NewManager(LangPT, fstest.MapFS{}); err == nil {
		t.Fatal("expected empty locales dir to fail")
	}
}

func TestDetectFromAcceptLanguage(t *testing.T) {
	manager := mustEmbeddedManager(t, LangPT)

	tests := []struct {
		header string
		want   string
	}{
		{header: "", want: LangPT},
		{header: "en-GB,en;q=0.9", want: LangEN},
		{header: "fr-FR, pt_BR;q=0.8", want: LangPT},
		{header: "de, fr", want: LangPT},
		{header: " , EN", want: LangEN},
	}
	for _, testCase := range tests {
		if got := manager.DetectFromAcceptLanguage(testCase.header); got != testCase.want {
			t.Fatalf("DetectFromAcceptLanguage(%q) = %q, want %q", testCase.header, got, testCase.want)
		}
	}
}

func TestTranslateFallsBackToDefaultThenKey(t *testing.T) {
	locales := fstest.MapFS{
		"pt.json": &fstest.MapFile{Data: []byte(`{"greeting":"Olá","only.pt":"só pt","format":"%d pontos"}`)},
		"en.json": &fstest.MapFile{Data: []byte(`{"greeting":"Hello","format":"%d points"}`)},
	}
	manager, err := NewManager(LangPT, locales)
	if err != nil {
		t.Fatalf("NewManager() unexpected error: %v", err)
	}

	if got := manager.Translate(LangEN, "greeting"); got != "Hello" {
		t.Fatalf("expected english greeting, got %q", got)
	}
	if got := manager.Translate(LangEN, "only.pt"); got != "só pt" {
		t.Fatalf("expected default language fallback, got %q", got)
	}
	if got := manager.Translate(LangEN, "missing.key"); got != "missing.key" {
		t.Fatalf("expected key fallback, got %q", got)
	}
	if got := manager.Translatef("en-US", "format", 12); got != "12 points" {
		t.Fatalf("expected formatted english text, got %q", got)
	}
}

func TestEmbeddedFeedbackKeysResolve(t *testing.T) {
	manager := mustEmbeddedManager(t, LangPT)
	for _, key := range []string{
		"feedback.excellent.label",
		"feedback.excellent.message",
		"feedback.medium.label",
		"feedback.medium.message",
		"feedback.low.label",
		"feedback.low.message",
	} {
		for _, language := range manager.SupportedLanguages() {
			if got := manager.Translate(language, key); got == key {
				t.Fatalf("expected %s translation for %s", language, key)
			}
		}
	}
	if got := manager.Translate(LangPT, "feedback.medium.message"); got != "Muito bem! Continue assim!" {
		t.Fatalf("unexpected pt medium message %q", got)
	}
}

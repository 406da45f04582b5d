// Package i18n serves the pt and en message catalogs used for API errors and
// mission feedback.
package i18n

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

const (
	LangPT = "pt"
	LangEN = "en"
)

var requiredLanguages = []string{LangPT, LangEN}

//go:embed locales/*.json
var embeddedLocales embed.FS

// Manager holds one catalog per language. Catalogs are merged over the
// default language at load time so lookups never chain.
type Manager struct {
	defaultLanguage string
	catalogs        map[string]map[string]string
}

func NewEmbeddedManager(defaultLanguage string) (*Manager, error) {
	locales, err := fs.Sub(embeddedLocales, "locales")
	if err != nil {
		return nil, fmt.Errorf("open embedded locales: %w", err)
	}
	return NewManager(defaultLanguage, locales)
}

// NewManager reads every <lang>.json at the root of locales.
func NewManager(defaultLanguage string, locales fs.FS) (*Manager, error) {
	raw, err := readCatalogs(locales)
	if err != nil {
		return nil, err
	}
	for _, required := range requiredLanguages {
		if _, ok := raw[required]; !ok {
			return nil, fmt.Errorf("required locale %q missing", required)
		}
	}

	fallback := LangPT
	if base := baseLanguage(defaultLanguage); base != "" {
		if _, ok := raw[base]; ok {
			fallback = base
		}
	}

	catalogs := make(map[string]map[string]string, len(raw))
	for lang, messages := range raw {
		merged := maps.Clone(raw[fallback])
		maps.Copy(merged, messages)
		catalogs[lang] = merged
	}
	return &Manager{defaultLanguage: fallback, catalogs: catalogs}, nil
}

func readCatalogs(locales fs.FS) (map[string]map[string]string, error) {
	names, err := fs.Glob(locales, "*.json")
	if err != nil {
		return nil, fmt.Errorf("list locales: %w", err)
	}
	if len(names) == 0 {
		return nil, errors.New("no locales found")
	}

	catalogs := make(map[string]map[string]string, len(names))
	for _, name := range names {
		lang := strings.ToLower(strings.TrimSuffix(name, ".json"))
		content, err := fs.ReadFile(locales, name)
		if err != nil {
			return nil, fmt.Errorf("read locale %s: %w", lang, err)
		}
		messages := make(map[string]string)
		if err := json.Unmarshal(content, &messages); err != nil {
			return nil, fmt.Errorf("parse locale %s: %w", lang, err)
		}
		if len(messages) == 0 {
			return nil, fmt.Errorf("locale %s is empty", lang)
		}
		catalogs[lang] = messages
	}
	return catalogs, nil
}

func (manager *Manager) DefaultLanguage() string {
	return manager.defaultLanguage
}

// SupportedLanguages is sorted.
func (manager *Manager) SupportedLanguages() []string {
	return slices.Sorted(maps.Keys(manager.catalogs))
}

// NormalizeLanguage maps a tag such as "en-US" or "pt_BR" onto a loaded
// language, or the default when nothing matches.
func (manager *Manager) NormalizeLanguage(raw string) string {
	if lang, ok := manager.lookup(raw); ok {
		return lang
	}
	return manager.defaultLanguage
}

// DetectFromAcceptLanguage picks the highest weighted supported language.
// Equal weights keep header order.
func (manager *Manager) DetectFromAcceptLanguage(header string) string {
	type candidate struct {
		tag    string
		weight float64
	}

	candidates := make([]candidate, 0)
	for _, part := range strings.Split(header, ",") {
		tag, params, _ := strings.Cut(strings.TrimSpace(part), ";")
		if tag == "" {
			continue
		}
		weight := 1.0
		if value, found := strings.CutPrefix(strings.TrimSpace(params), "q="); found {
			if parsed, err := strconv.ParseFloat(value, 64); err == nil {
				weight = parsed
			}
		}
		if weight <= 0 {
			continue
		}
		candidates = append(candidates, candidate{tag: tag, weight: weight})
	}
	slices.SortStableFunc(candidates, func(a, b candidate) int {
		switch {
		case a.weight > b.weight:
			return -1
		case a.weight < b.weight:
			return 1
		}
		return 0
	})

	for _, entry := range candidates {
		if lang, ok := manager.lookup(entry.tag); ok {
			return lang
		}
	}
	return manager.defaultLanguage
}

func (manager *Manager) Messages(lang string) map[string]string {
	return maps.Clone(manager.catalogs[manager.NormalizeLanguage(lang)])
}

// Translate returns key itself when no catalog has a non-blank value.
func (manager *Manager) Translate(lang string, key string) string {
	value := manager.catalogs[manager.NormalizeLanguage(lang)][key]
	if strings.TrimSpace(value) == "" {
		return key
	}
	return value
}

func (manager *Manager) Translatef(lang string, key string, args ...any) string {
	return fmt.Sprintf(manager.Translate(lang, key), args...)
}

func (manager *Manager) lookup(raw string) (string, bool) {
	base := baseLanguage(raw)
	if base == "" {
		return "", false
	}
	_, ok := manager.catalogs[base]
	return base, ok
}

func baseLanguage(raw string) string {
	tag, err := language.Parse(strings.TrimSpace(raw))
	if err != nil {
		return ""
	}
	base, _ := tag.Base()
	return base.String()
}

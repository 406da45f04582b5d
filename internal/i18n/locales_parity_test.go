package i18n

import (
	"encoding/json"
	"maps"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func embeddedCatalog(t *testing.T, lang string) map[string]string {
	t.Helper()

	content, err := embeddedLocales.ReadFile("locales/" + lang + ".json")
	require.NoError(t, err)
	catalog := make(map[string]string)
	require.NoError(t, json.Unmarshal(content, &catalog))
	require.NotEmpty(t, catalog)
	return catalog
}

func TestEmbeddedCatalogsShareKeys(t *testing.T) {
	pt := embeddedCatalog(t, LangPT)
	en := embeddedCatalog(t, LangEN)

	assert.Equal(t, slices.Sorted(maps.Keys(pt)), slices.Sorted(maps.Keys(en)))
}

func TestEmbeddedCatalogsHaveNoBlankValues(t *testing.T) {
	for _, lang := range requiredLanguages {
		for key, value := range embeddedCatalog(t, lang) {
			assert.NotEmptyf(t, strings.TrimSpace(value), "%s: blank value for %s", lang, key)
		}
	}
}

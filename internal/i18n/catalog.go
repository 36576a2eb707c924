// Package i18n serves the console's Arabic and English UI strings.
package i18n

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/tidwall/gjson"
)

const (
	English = "en"
	Arabic  = "ar"

	// DefaultLanguage is used when a key is missing in the requested language.
	DefaultLanguage = English
)

//go:embed locales/*.json
var locales embed.FS

// Catalog maps a language to its nested key-path string table. It is
// read-only after Load and safe for concurrent use.
type Catalog struct {
	tables map[string]string
}

// Load parses every embedded locale file.
func Load() (*Catalog, error) {
	entries, err := locales.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("failed to read locales: %w", err)
	}

	tables := make(map[string]string, len(entries))
	for _, e := range entries {
		raw, err := locales.ReadFile(path.Join("locales", e.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read locale %s: %w", e.Name(), err)
		}
		if !gjson.ValidBytes(raw) {
			return nil, fmt.Errorf("locale %s is not valid JSON", e.Name())
		}
		tables[strings.TrimSuffix(e.Name(), ".json")] = string(raw)
	}
	return &Catalog{tables: tables}, nil
}

// MustLoad is Load for program start-up.
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

// Languages lists the loaded language codes in sorted order.
func (c *Catalog) Languages() []string {
	langs := make([]string, 0, len(c.tables))
	for lang := range c.tables {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// Lookup returns the string at key, a dotted path such as
// "wizard.steps.basic", and whether it exists in lang.
func (c *Catalog) Lookup(lang, key string) (string, bool) {
	table, ok := c.tables[lang]
	if !ok {
		return "", false
	}
	res := gjson.Get(table, key)
	if !res.Exists() || res.Type != gjson.String {
		return "", false
	}
	return res.String(), true
}

// T translates key into lang, falling back to DefaultLanguage and then to
// the key itself so a missing string is visible rather than blank.
func (c *Catalog) T(lang, key string) string {
	if s, ok := c.Lookup(lang, key); ok {
		return s
	}
	if s, ok := c.Lookup(DefaultLanguage, key); ok {
		return s
	}
	return key
}

// Direction is the text direction for lang.
func Direction(lang string) string {
	if lang == Arabic {
		return "rtl"
	}
	return "ltr"
}

package services

import (
	"sort"

	"github.com/jacksonlee411/ojs-migrate/modules/journal/domain/legacy"
)

// Settings maps locale -> setting name -> value.
type Settings map[string]map[string]string

// ReshapeSettings groups legacy rows by locale. Rows without a locale belong to
// primaryLocale; a repeated (locale, name) pair keeps the last value.
func ReshapeSettings(rows []legacy.Setting, primaryLocale string) Settings {
	out := Settings{}
	for _, row := range rows {
		locale := row.Locale
		if locale == "" {
			locale = primaryLocale
		}
		fields, ok := out[locale]
		if !ok {
			fields = map[string]string{}
			out[locale] = fields
		}
		fields[row.Name] = row.Value
	}
	return out
}

// Get reports the raw value and whether the setting exists at all.
func (s Settings) Get(locale, name string) (string, bool) {
	fields, ok := s[locale]
	if !ok {
		return "", false
	}
	v, ok := fields[name]
	return v, ok
}

// Has reports whether the setting exists with a non-empty value. "0" counts as a value.
func (s Settings) Has(locale, name string) bool {
	v, ok := s.Get(locale, name)
	return ok && v != ""
}

// ValueOr returns the setting, or fallback when it is absent or empty.
func (s Settings) ValueOr(locale, name, fallback string) string {
	if v, ok := s.Get(locale, name); ok && v != "" {
		return v
	}
	return fallback
}

// Locales returns every locale in sorted order.
func (s Settings) Locales() []string {
	out := make([]string, 0, len(s))
	for locale := range s {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}

// localeCode truncates a legacy locale such as "en_US" to its two-letter language code.
func localeCode(locale string) string {
	if len(locale) > 2 {
		return locale[:2]
	}
	return locale
}

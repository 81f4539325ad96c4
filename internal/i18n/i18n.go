// Package i18n holds the UI dictionaries. Lookups fall back to Korean and
// then to the key itself, so a missing entry never renders blank.
package i18n

import (
	"fmt"
	"time"
)

// Default is the fallback language.
const Default = "ko"

// Supported lists the languages with a dictionary.
var Supported = []string{"ko", "en", "vi"}

var dictionaries = map[string]map[string]string{
	"ko": ko,
	"en": en,
	"vi": vi,
}

// Translator resolves keys for one language.
type Translator struct {
	lang string
}

// For returns the translator for lang. Unsupported languages use Default.
func For(lang string) Translator {
	if _, ok := dictionaries[lang]; !ok {
		lang = Default
	}
	return Translator{lang: lang}
}

func (t Translator) Lang() string { return t.lang }

// T looks key up in the active language, then Korean, then returns key.
func (t Translator) T(key string) string {
	if s, ok := dictionaries[t.lang][key]; ok {
		return s
	}
	if s, ok := ko[key]; ok {
		return s
	}
	return key
}

// F is T followed by fmt.Sprintf.
func (t Translator) F(key string, args ...interface{}) string {
	return fmt.Sprintf(t.T(key), args...)
}

var dateLayouts = map[string]string{
	"ko": "2006년 1월 2일 15:04",
	"en": "Jan 2, 2006 15:04",
	"vi": "02/01/2006 15:04",
}

// FormatDate renders t in the language's conventional layout.
func (t Translator) FormatDate(ts time.Time) string {
	return ts.Format(dateLayouts[t.lang])
}

// Risk returns the localized label of a backend risk level. Unknown levels
// are shown as received.
func (t Translator) Risk(level string) string {
	key := "risk." + level
	if s := t.T(key); s != key {
		return s
	}
	return level
}

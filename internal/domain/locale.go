package domain

// Locale identifies one of the site's supported languages. The set is closed
// and immutable at runtime; exactly one locale is the default.
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleES Locale = "es"
)

// DefaultLocale is selected whenever the client's language preference does
// not match a supported locale.
const DefaultLocale = LocaleEN

var locales = [...]Locale{LocaleEN, LocaleES}

// Locales returns the supported locales, default first.
func Locales() []Locale {
	out := make([]Locale, len(locales))
	copy(out, locales[:])
	return out
}

// ParseLocale reports whether s names a supported locale.
func ParseLocale(s string) (Locale, bool) {
	for _, l := range locales {
		if string(l) == s {
			return l, true
		}
	}
	return "", false
}

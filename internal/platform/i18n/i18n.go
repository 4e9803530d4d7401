// Package i18n resolves user language preferences to message printers and
// help-directory suffixes.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

var supportedTags = []language.Tag{
	language.AmericanEnglish,
	language.MustParse("pt-BR"),
}

var tagMatcher = language.NewMatcher(supportedTags)

// messages is the shared catalog. Keys missing from a translation fall back
// to the default language rather than rendering as raw keys.
var messages = catalog.NewBuilder(catalog.Fallback(language.AmericanEnglish))

// Default returns the default language tag.
func Default() language.Tag {
	return language.AmericanEnglish
}

// Supported returns the list of supported language tags.
func Supported() []language.Tag {
	tags := make([]language.Tag, len(supportedTags))
	copy(tags, supportedTags)
	return tags
}

// Match resolves a user language preference to the best supported tag.
// Empty or unparsable preferences resolve to the default.
func Match(pref string) language.Tag {
	pref = strings.TrimSpace(pref)
	if pref == "" {
		return Default()
	}
	parsed, err := language.Parse(pref)
	if err != nil {
		return Default()
	}
	tag, _, _ := tagMatcher.Match(parsed)
	return tag
}

// Printer returns a message printer for the supplied preference.
func Printer(pref string) *message.Printer {
	return message.NewPrinter(Match(pref), message.Catalog(messages))
}

// DirSuffix maps a language preference to the per-language help directory
// name. The default language resolves to no suffix.
func DirSuffix(pref string) string {
	tag := Match(pref)
	if tag == Default() {
		return ""
	}
	base, _ := tag.Base()
	if base.String() == "en" {
		return ""
	}
	return tag.String()
}

// Package i18n registers the console copy of the race with x/text/message.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	PromptKey   = "race.prompt"
	StandingKey = "race.standing"
	WinnerKey   = "race.winner"
)

var supportedTags = []language.Tag{
	language.Korean,
	language.English,
}

var tagMatcher = language.NewMatcher(supportedTags)

// Default returns the default language tag.
func Default() language.Tag {
	return language.Korean
}

// ResolveTag maps a locale string to a supported tag, falling back to Default.
func ResolveTag(locale string) language.Tag {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return Default()
	}
	parsed, err := language.Parse(locale)
	if err != nil {
		return Default()
	}
	_, idx, conf := tagMatcher.Match(parsed)
	if conf == language.No {
		return Default()
	}
	return supportedTags[idx]
}

// NewPrinter returns a message printer for locale.
func NewPrinter(locale string) *message.Printer {
	return message.NewPrinter(ResolveTag(locale))
}

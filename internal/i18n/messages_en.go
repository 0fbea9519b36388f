package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	message.SetString(lang, PromptKey, "Enter the names of the cars to race (comma separated).")
	message.SetString(lang, StandingKey, "%s : %s")
	message.SetString(lang, WinnerKey, "%s won the race.")
}

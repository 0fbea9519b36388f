package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.Korean

	message.SetString(lang, PromptKey, "경주할 자동차 이름을 입력하세요(이름은 쉼표(,)를 기준으로 구분).")
	message.SetString(lang, StandingKey, "%s : %s")
	message.SetString(lang, WinnerKey, "%s가 최종 우승했습니다.")
}

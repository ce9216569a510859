package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalize(t *testing.T) {
	en := NewLocalizer("en")
	assert.Equal(t, "No Case", Localize(en, "TooltipNoCase", "fallback"))
	assert.Equal(t, "fallback", Localize(en, "NotAMessage", "fallback"))

	zh := NewLocalizer("zh-CN")
	assert.Equal(t, "无病例", Localize(zh, "TooltipNoCase", "No Case"))

	assert.Equal(t, "fallback", Localize(nil, "TooltipNoCase", "fallback"))
}

func TestLanguageTag(t *testing.T) {
	base, _ := LanguageTag("zh-CN").Base()
	assert.Equal(t, "zh", base.String())

	base, _ = LanguageTag("fr").Base()
	assert.Equal(t, "en", base.String())
}

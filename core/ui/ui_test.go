package ui_test

import (
	"testing"

	"data-studio/core/ui"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Locale(t *testing.T) {
	tests := []struct {
		locale string
		want   string
		title  string
	}{
		{"", "zh-CN", "数据分析平台"},
		{"zh-CN", "zh-CN", "数据分析平台"},
		{"zh", "zh-CN", "数据分析平台"},
		{"en", "en", "Data Studio"},
		{"en-GB", "en", "Data Studio"},
		{"de-DE", "zh-CN", "数据分析平台"},
		{"fr", "zh-CN", "数据分析平台"},
		{"ja-JP", "zh-CN", "数据分析平台"},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			lib, err := ui.New(ui.Config{Locale: tt.locale})
			require.NoError(t, err)
			assert.Equal(t, tt.want, lib.Lang())
			assert.Equal(t, tt.title, lib.T("app.title"))
		})
	}
}

func TestNew_InvalidLocale(t *testing.T) {
	_, err := ui.New(ui.Config{Locale: "not a tag!"})
	assert.ErrorContains(t, err, "invalid locale")
}

func TestT_MissingKey(t *testing.T) {
	lib, err := ui.New(ui.Config{Locale: "en"})
	require.NoError(t, err)
	assert.Equal(t, "no.such.key", lib.T("no.such.key"))
}

package ui

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Config selects the locale of the UI library.
type Config struct {
	// Locale is a BCP 47 tag such as zh-CN or en-US.
	Locale string
}

var (
	zhCN = language.MustParse("zh-CN")
	en   = language.English

	// supported is ordered; the first entry is the fallback.
	supported = []language.Tag{zhCN, en}
	matcher   = language.NewMatcher(supported)
)

// Library carries the active locale and its message catalog.
type Library struct {
	tag      language.Tag
	messages map[string]string
}

// New builds the library for cfg.Locale. Unknown locales fall back to zh-CN;
// a malformed tag is an error.
func New(cfg Config) (*Library, error) {
	requested := zhCN
	if s := strings.TrimSpace(cfg.Locale); s != "" {
		tag, err := language.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("invalid locale %q: %w", cfg.Locale, err)
		}
		requested = tag
	}

	_, idx, conf := matcher.Match(requested)
	if conf == language.No {
		idx = 0
	}
	tag := supported[idx]
	return &Library{tag: tag, messages: catalogs[tag.String()]}, nil
}

// Locale returns the matched locale tag.
func (l *Library) Locale() language.Tag {
	return l.tag
}

// Lang returns the matched locale as a string, e.g. "zh-CN".
func (l *Library) Lang() string {
	return l.tag.String()
}

// T translates key. Keys missing from the catalog translate to themselves.
func (l *Library) T(key string) string {
	if msg, ok := l.messages[key]; ok {
		return msg
	}
	return key
}

// Package i18n holds the message catalog for recipeld issue codes.
package i18n

import (
	"strings"
	"sync"
)

// Translator retrieves localized messages for Issue codes. data fills
// {placeholders} in the message; missing entries are left as written.
type Translator interface {
	Message(code string, data map[string]string) string
}

var catalogs = map[string]map[string]string{
	"en": {
		"invalid_type":   "invalid type",
		"required":       "required property missing",
		"duplicate_key":  "duplicate key",
		"invalid_format": "invalid format",
		"union_no_match": "value matches none of the accepted shapes",
		"parse_error":    "parse error",
		"truncated":      "truncated",
	},
	"ja": {
		"invalid_type":   "型が不正です",
		"required":       "必須プロパティが不足しています",
		"duplicate_key":  "キーが重複しています",
		"invalid_format": "形式が不正です",
		"union_no_match": "いずれの形状にも一致しません",
		"parse_error":    "解析エラー",
		"truncated":      "打ち切られました",
	},
}

// Catalog is a Translator backed by one of the built-in message tables.
// Unknown codes echo the code itself.
type Catalog struct{ lang string }

// NewCatalog returns the catalog for lang, falling back to English.
func NewCatalog(lang string) Catalog {
	if _, ok := catalogs[lang]; !ok {
		lang = "en"
	}
	return Catalog{lang: lang}
}

// Lang reports the catalog language.
func (c Catalog) Lang() string { return c.lang }

func (c Catalog) Message(code string, data map[string]string) string {
	msg, ok := catalogs[c.lang][code]
	if !ok {
		return code
	}
	for k, v := range data {
		msg = strings.ReplaceAll(msg, "{"+k+"}", v)
	}
	return msg
}

var (
	mu      sync.RWMutex
	current Translator = NewCatalog("en")
)

// SetLanguage switches to a built-in catalog ("en" or "ja").
func SetLanguage(lang string) { SetTranslator(NewCatalog(lang)) }

// SetTranslator replaces the active Translator. nil restores English.
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = NewCatalog("en")
	}
	mu.Lock()
	current = tr
	mu.Unlock()
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string {
	mu.RLock()
	tr := current
	mu.RUnlock()
	return tr.Message(code, data)
}

package message

import (
	"context"
	"strings"
)

type Language string

const (
	English    Language = "en"
	Vietnamese Language = "vi"
)

type languageKey struct{}

// WithLanguage attaches the caller's language to ctx. Message lookups read it
// from there instead of any process-wide setting.
func WithLanguage(ctx context.Context, lang Language) context.Context {
	return context.WithValue(ctx, languageKey{}, lang)
}

// LanguageFrom returns the language carried by ctx, English when absent.
func LanguageFrom(ctx context.Context) Language {
	if ctx == nil {
		return English
	}
	if lang, ok := ctx.Value(languageKey{}).(Language); ok && lang != "" {
		return lang
	}
	return English
}

// ParseLanguage maps an Accept-Language style value to a supported language.
func ParseLanguage(value string) Language {
	primary := strings.TrimSpace(strings.SplitN(value, ",", 2)[0])
	primary = strings.ToLower(strings.SplitN(primary, ";", 2)[0])
	if primary == "vi" || strings.HasPrefix(primary, "vi-") {
		return Vietnamese
	}
	return English
}

package message

import (
	"context"
	"time"

	"elibrary-be/internal/dto"
	"elibrary-be/internal/pkg/logger"
	"elibrary-be/internal/repository/unitofwork"
)

// Provider resolves a result code to user-facing text in the language carried
// by ctx. It never fails: a broken lookup degrades to the built-in text and
// finally to the code itself.
type Provider interface {
	Message(ctx context.Context, code dto.ResultCode, args ...string) string
}

// Cache stores resolved texts keyed by language and code.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string, ttl time.Duration)
	Delete(ctx context.Context, keys ...string)
}

// CacheKeys lists every cache key under which the text of code may be stored.
func CacheKeys(code string) []string {
	return []string{cacheKey(English, dto.ResultCode(code)), cacheKey(Vietnamese, dto.ResultCode(code))}
}

func cacheKey(lang Language, code dto.ResultCode) string {
	return string(lang) + ":" + string(code)
}

// missingTTL bounds how long a code without a catalog row keeps answering
// with its built-in text.
const missingTTL = time.Minute

type catalogProvider struct {
	uowFactory unitofwork.RepositoryFactory
	cache      Cache
	ttl        time.Duration
	logger     logger.ILogger
}

func NewCatalogProvider(uowFactory unitofwork.RepositoryFactory, cache Cache, ttl time.Duration, log logger.ILogger) Provider {
	return &catalogProvider{
		uowFactory: uowFactory,
		cache:      cache,
		ttl:        ttl,
		logger:     log,
	}
}

func (p *catalogProvider) Message(ctx context.Context, code dto.ResultCode, args ...string) string {
	return Format(p.lookup(ctx, code), args...)
}

func (p *catalogProvider) lookup(ctx context.Context, code dto.ResultCode) string {
	lang := LanguageFrom(ctx)
	key := cacheKey(lang, code)

	if p.cache != nil {
		if text, ok := p.cache.Get(ctx, key); ok {
			return text
		}
	}

	uow := p.uowFactory.NewUnitOfWork(ctx)
	msg, err := uow.SystemMessageRepository().GetById(ctx, string(code))
	if err != nil {
		p.logger.Warn("MESSAGE", "Message lookup failed, using built-in text", map[string]interface{}{
			"code":  string(code),
			"error": err,
		})
		return Fallback(code, lang)
	}
	var text string
	if msg != nil {
		text = Text{English: msg.EnglishText, Vietnamese: msg.VietnameseText}.In(lang)
	}
	if text == "" {
		text = Fallback(code, lang)
		p.store(ctx, key, text, missingTTL)
		return text
	}
	p.store(ctx, key, text, p.ttl)
	return text
}

func (p *catalogProvider) store(ctx context.Context, key, text string, ttl time.Duration) {
	if p.cache == nil {
		return
	}
	if p.ttl > 0 && p.ttl < ttl {
		ttl = p.ttl
	}
	p.cache.Set(ctx, key, text, ttl)
}

// Fallback returns the built-in text for code, or the code itself.
func Fallback(code dto.ResultCode, lang Language) string {
	if t, ok := Defaults[code]; ok {
		return t.In(lang)
	}
	return string(code)
}

// StaticProvider answers from Defaults only.
type StaticProvider struct{}

func (StaticProvider) Message(ctx context.Context, code dto.ResultCode, args ...string) string {
	return Format(Fallback(code, LanguageFrom(ctx)), args...)
}

package middleware

import (
	"attachment-hub-backend/lib/cache"
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

type cachedPage struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// PageCache serves successful GET responses from the shared cache for ttl.
// The key includes the session subject so per-user pages never leak.
func PageCache(store cache.Provider, ttl time.Duration) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if ctx.Method() != fiber.MethodGet || store == nil {
			return ctx.Next()
		}
		key := pageCacheKey(ctx)
		if raw, found, err := store.Get(ctx.UserContext(), key); err == nil && found {
			page := cachedPage{}
			if err = json.Unmarshal(raw, &page); err == nil {
				ctx.Set(fiber.HeaderContentType, page.ContentType)
				ctx.Set("X-Cache", "HIT")
				return ctx.Status(page.Status).Send(page.Body)
			}
		}
		if err := ctx.Next(); err != nil {
			return err
		}
		if ctx.Response().StatusCode() != fiber.StatusOK {
			return nil
		}
		page := cachedPage{
			Status:      fiber.StatusOK,
			ContentType: string(ctx.Response().Header.ContentType()),
			Body:        append([]byte(nil), ctx.Response().Body()...),
		}
		raw, err := json.Marshal(page)
		if err != nil {
			return nil
		}
		if err = store.Set(ctx.UserContext(), key, raw, ttl); err != nil {
			log.WithError(err).Warn("page cache store failed")
		}
		return nil
	}
}

func pageCacheKey(ctx *fiber.Ctx) string {
	return "page:" + GetUserName(ctx) + ":" + GetUserID(ctx) + ":" + ctx.OriginalURL()
}

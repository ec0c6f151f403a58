package session

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kiraxlabs/kirax/pkg/catalog"
	"github.com/kiraxlabs/kirax/pkg/chat"
)

// CookieName carries the session id between the browser and the service.
const CookieName = "kirax_session"

const localsKey = "session"

// NewMiddleware returns a Fiber middleware that binds each request to its
// browser session. A missing or stale cookie starts a fresh session whose
// model defaults to the preferred entry of the current catalog.
func NewMiddleware(store *chat.Store, loader *catalog.Loader, apiKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if id := c.Cookies(CookieName); id != "" {
			if sess, ok := store.Get(id); ok {
				c.Locals(localsKey, sess)
				return c.Next()
			}
		}
		models := loader.Load(c.Context(), apiKey)
		var model string
		if len(models) > 0 {
			model = models[catalog.DefaultIndex(models)]
		}
		sess := store.Create(model)
		c.Cookie(&fiber.Cookie{
			Name:     CookieName,
			Value:    sess.ID,
			HTTPOnly: true,
			SameSite: "Lax",
		})
		c.Locals(localsKey, sess)
		return c.Next()
	}
}

// FromCtx returns the session the middleware bound to the request.
func FromCtx(c *fiber.Ctx) *chat.Session {
	sess, _ := c.Locals(localsKey).(*chat.Session)
	return sess
}

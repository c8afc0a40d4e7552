package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jkoopman/lexcursus/internal/pkg/session"
	"github.com/jkoopman/lexcursus/internal/pkg/usercontext"
)

// UserContextMiddleware materializes the identity claims stored in the session
// into a per-request UserContext. Identity itself comes from the external
// OIDC provider; we only consume the subject and email claims it issued.
func UserContextMiddleware(c *fiber.Ctx) error {
	// Goth keeps its own session store on /auth/* routes; don't interfere.
	if strings.HasPrefix(c.Path(), "/auth/") {
		return c.Next()
	}

	sess, err := session.GetSessionStore().Get(c)
	if err != nil {
		c.Locals("USER_CONTEXT", usercontext.UserContext{IsLoggedIn: false})
		c.Locals(usercontext.KeyFromProtected, false)
		return c.Next()
	}

	userID, _ := sess.Get(usercontext.KeyUserID).(string)
	if userID == "" {
		c.Locals("USER_CONTEXT", usercontext.UserContext{IsLoggedIn: false})
		c.Locals(usercontext.KeyFromProtected, false)
		return c.Next()
	}

	email, _ := sess.Get(usercontext.KeyUserEmail).(string)
	name, _ := sess.Get(usercontext.KeyUserName).(string)

	c.Locals("USER_CONTEXT", usercontext.UserContext{
		UserID:     userID,
		Email:      email,
		Name:       name,
		IsLoggedIn: true,
	})
	c.Locals(usercontext.KeyFromProtected, true)
	c.Locals(usercontext.KeyUserID, userID)

	return c.Next()
}

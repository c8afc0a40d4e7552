package controllers

import (
	"github.com/gofiber/fiber/v2"
	gothfiber "github.com/shareed2k/goth_fiber"
	"github.com/sujit-baniya/flash"

	"github.com/jkoopman/lexcursus/internal/pkg/session"
	"github.com/jkoopman/lexcursus/internal/pkg/usercontext"
)

// HandleOAuthCallback completes the provider flow and stores the identity
// claims in the session. The provider's user id is the opaque subject used
// everywhere else; no local user record is kept.
func HandleOAuthCallback(c *fiber.Ctx) error {
	u, err := gothfiber.CompleteUserAuth(c)
	if err != nil {
		return flash.WithError(c, fiber.Map{"type": "error", "message": "Inloggen is mislukt"}).Redirect("/")
	}

	sess, err := session.GetSessionStore().Get(c)
	if err != nil {
		return flash.WithError(c, fiber.Map{"type": "error", "message": "Sessie kon niet worden geladen"}).Redirect("/")
	}
	sess.Set(usercontext.KeyUserID, u.UserID)
	sess.Set(usercontext.KeyUserEmail, u.Email)
	sess.Set(usercontext.KeyUserName, firstNonEmpty(u.Name, u.NickName, u.Email))
	if err := sess.Save(); err != nil {
		return flash.WithError(c, fiber.Map{"type": "error", "message": "Sessie kon niet worden opgeslagen"}).Redirect("/")
	}

	return c.Redirect("/", fiber.StatusSeeOther)
}

// HandleLogout clears the session and the provider login state.
func HandleLogout(c *fiber.Ctx) error {
	_ = gothfiber.Logout(c)
	if sess, err := session.GetSessionStore().Get(c); err == nil {
		_ = sess.Destroy()
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

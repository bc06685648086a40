package handlers

import (
	"job-board/internal/models"
	"job-board/internal/service"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// render wraps c.HTML so every template sees the current user and any
// pending flash message.
func render(c *gin.Context, status int, tmpl string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	if uVal, ok := c.Get("CurrentUser"); ok {
		if u, ok := uVal.(models.User); ok {
			data["CurrentUser"] = u
			data["CurrentUsername"] = u.Username
			data["CurrentUserRole"] = u.Role
		}
	}

	if kind, msg, ok := popFlash(c); ok {
		data["Flash"] = msg
		data["FlashKind"] = kind
	}

	c.HTML(status, tmpl, data)
}

// flash survives exactly one redirect: set before redirecting, popped by the
// next render.
func setFlash(c *gin.Context, kind, msg string) {
	sess := sessions.Default(c)
	sess.Set("flash", msg)
	sess.Set("flash_kind", kind)
	_ = sess.Save()
}

func popFlash(c *gin.Context) (kind, msg string, ok bool) {
	sess := sessions.Default(c)
	msg, has := sess.Get("flash").(string)
	if !has || msg == "" {
		return "", "", false
	}
	kind, _ = sess.Get("flash_kind").(string)
	sess.Delete("flash")
	sess.Delete("flash_kind")
	_ = sess.Save()
	return kind, msg, true
}

// currentActor turns the session claims into the explicit identity the
// service layer expects.
func currentActor(c *gin.Context) (service.Actor, bool) {
	sess := sessions.Default(c)
	uid, ok := sess.Get("user_id").(uint)
	if !ok || uid == 0 {
		return service.Actor{}, false
	}
	roleStr, _ := sess.Get("role").(string)
	return service.Actor{UserID: uid, Role: models.UserRole(roleStr)}, true
}

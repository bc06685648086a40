package handlers

import (
	"net/http"
	"net/mail"
	"strings"

	"job-board/internal/database"
	"job-board/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

func ShowSignup(c *gin.Context) {
	render(c, http.StatusOK, "signup.html", nil)
}

type signupForm struct {
	Username string `form:"username"`
	Email    string `form:"email"`
	Password string `form:"password"`
	Role     string `form:"role"`
}

func Signup(c *gin.Context) {
	var form signupForm
	if err := c.ShouldBind(&form); err != nil {
		setFlash(c, "error", "Invalid form data")
		c.Redirect(http.StatusFound, "/signup")
		return
	}

	form.Username = strings.TrimSpace(form.Username)
	form.Email = strings.ToLower(strings.TrimSpace(form.Email))

	if len(form.Username) < 3 || len(form.Password) < 6 {
		setFlash(c, "error", "Username must be at least 3 characters and password at least 6")
		c.Redirect(http.StatusFound, "/signup")
		return
	}
	if _, err := mail.ParseAddress(form.Email); err != nil {
		setFlash(c, "error", "Invalid email address")
		c.Redirect(http.StatusFound, "/signup")
		return
	}

	role := models.UserRole(strings.ToLower(form.Role))
	if !models.ValidRole(role) {
		setFlash(c, "error", "Invalid role")
		c.Redirect(http.StatusFound, "/signup")
		return
	}

	var count int64
	database.DB.Model(&models.User{}).
		Where("email = ?", form.Email).
		Count(&count)
	if count > 0 {
		setFlash(c, "error", "User already exists")
		c.Redirect(http.StatusFound, "/signup")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(form.Password), bcrypt.DefaultCost)
	if err != nil {
		setFlash(c, "error", "Could not create account")
		c.Redirect(http.StatusFound, "/signup")
		return
	}

	user := models.User{
		Username:     form.Username,
		Email:        form.Email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		setFlash(c, "error", "Could not create account")
		c.Redirect(http.StatusFound, "/signup")
		return
	}

	database.CreateAuditLog(database.DB, user.ID, "user", user.ID, "create", "Signed up as "+string(user.Role))

	setFlash(c, "success", "Account created successfully")
	c.Redirect(http.StatusFound, "/login")
}

func ShowLogin(c *gin.Context) {
	render(c, http.StatusOK, "login.html", nil)
}

type loginForm struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

func Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		setFlash(c, "error", "Invalid form data")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	email := strings.ToLower(strings.TrimSpace(form.Email))

	var user models.User
	if err := database.DB.Where("email = ?", email).First(&user).Error; err != nil {
		setFlash(c, "error", "Invalid credentials")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(form.Password)); err != nil {
		setFlash(c, "error", "Invalid credentials")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	// reset first so nothing from a previous identity survives
	sess := sessions.Default(c)
	sess.Clear()
	sess.Set("user_id", user.ID)
	sess.Set("role", string(user.Role))
	sess.Set("username", user.Username)
	_ = sess.Save()

	if user.Role == models.RoleRecruiter {
		c.Redirect(http.StatusFound, "/recruiter/dashboard")
		return
	}
	c.Redirect(http.StatusFound, "/seeker/dashboard")
}

func Logout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	_ = sess.Save()
	c.Redirect(http.StatusFound, "/login")
}

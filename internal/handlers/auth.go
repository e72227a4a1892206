package handlers

import (
	"net/http"
	"strings"

	"prospeo/internal/database"
	"prospeo/internal/middleware"
	"prospeo/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type registerForm struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Company  string `json:"company"`
}

func Register(c *gin.Context) {
	var form registerForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "données invalides"})
		return
	}

	form.Email = strings.ToLower(strings.TrimSpace(form.Email))
	if !strings.Contains(form.Email, "@") || len(form.Password) < 6 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email invalide ou mot de passe trop court"})
		return
	}

	var existing models.User
	if err := database.DB.Where("email = ?", form.Email).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "un compte existe déjà pour cet email"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(form.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "erreur interne"})
		return
	}

	// Sign-up always produces a client; the admin account is seeded
	// from config only.
	user := models.User{
		Email:        form.Email,
		PasswordHash: string(hash),
		FullName:     strings.TrimSpace(form.FullName),
		Company:      strings.TrimSpace(form.Company),
		Role:         models.RoleClient,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "erreur lors de la création du compte"})
		return
	}

	database.CreateAuditLog(user.ID, "user", user.ID, "create", "Compte créé: "+user.Email)

	sess := sessions.Default(c)
	sess.Set("user_id", user.ID)
	sess.Set("role", string(user.Role))
	_ = sess.Save()

	c.JSON(http.StatusCreated, gin.H{"user": user, "is_admin": user.IsAdmin()})
}

type loginForm struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "données invalides"})
		return
	}

	var user models.User
	email := strings.ToLower(strings.TrimSpace(form.Email))
	if err := database.DB.Where("email = ?", email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "email ou mot de passe incorrect"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(form.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "email ou mot de passe incorrect"})
		return
	}

	sess := sessions.Default(c)
	sess.Set("user_id", user.ID)
	sess.Set("role", string(user.Role))
	_ = sess.Save()

	c.JSON(http.StatusOK, gin.H{"user": user, "is_admin": user.IsAdmin()})
}

func Logout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	_ = sess.Save()
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Session reports the current identity, mirroring what the auth
// provider pushes to the client on every auth-state change.
func Session(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"user": nil, "is_admin": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user, "is_admin": user.IsAdmin()})
}

package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/knsalim/paanshop-api/configs"
	"github.com/knsalim/paanshop-api/models"
	"github.com/knsalim/paanshop-api/store"
)

type loginRequest struct {
	IDToken string `json:"idToken" binding:"required"`
	Name    string `json:"name"`
	Mobile  string `json:"mobile"`
}

// LoginHandler verifies a Firebase ID token, fetches or creates the
// users/{uid} profile document, and issues a session JWT carrying the
// profile's role. Name and mobile in the request seed a profile on first
// login (the mobile signup screen collects them).
func LoginHandler(st store.Store, verifier Verifier, cfg configs.Config, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}

		identity, err := verifier.Verify(c.Request.Context(), req.IDToken)
		if err != nil {
			log.WithError(err).Warn("ID token verification failed")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or revoked ID token"})
			return
		}

		user, err := loadOrCreateProfile(c, st, identity, req)
		if err != nil {
			log.WithError(err).Error("failed to load user profile")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user profile"})
			return
		}

		role := user.Role
		if cfg.SuperAdminEmail != "" && identity.Email == cfg.SuperAdminEmail {
			role = models.RoleAdmin
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Login successful",
			"user":    user,
			"token":   issueJWT(identity.UID, identity.Email, role, user.Name),
		})
	}
}

func loadOrCreateProfile(c *gin.Context, st store.Store, identity Identity, req loginRequest) (models.User, error) {
	ctx := c.Request.Context()

	data, err := st.Get(ctx, store.UserPath(identity.UID))
	if err == nil {
		return models.UserFromDoc(identity.UID, data), nil
	}
	if err != store.ErrNotFound {
		return models.User{}, err
	}

	name := req.Name
	if name == "" {
		name = identity.Name
	}
	user := models.User{
		ID:        identity.UID,
		Name:      name,
		Email:     identity.Email,
		Mobile:    req.Mobile,
		Role:      "",
		CreatedAt: time.Now(),
	}
	if err := st.Set(ctx, store.UserPath(identity.UID), user.Doc()); err != nil {
		return models.User{}, err
	}
	return user, nil
}

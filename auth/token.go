package auth

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// issueJWT generates the session token handed back to the client after a
// successful login. The role claim is what the admin middleware gates on.
func issueJWT(userID, email, role, name string) string {
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"role":    role,
		"name":    name,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		return ""
	}
	return signedToken
}

package auth

import "github.com/gin-gonic/gin"

const principalKey = "principal"

// Principal is the signed-in identity plus its role claim. Every call site
// gets it through PrincipalFrom and must handle the signed-out case
// explicitly; there is no half-populated user object floating around.
type Principal struct {
	ID   string
	Role string
}

func (p Principal) IsAdmin() bool {
	return p.Role == "admin"
}

// SetPrincipal is called by the token middleware once a request's token has
// been validated.
func SetPrincipal(c *gin.Context, p Principal) {
	c.Set(principalKey, p)
}

// PrincipalFrom returns the request's principal, or ok=false when the
// request is effectively signed out.
func PrincipalFrom(c *gin.Context) (Principal, bool) {
	v, exists := c.Get(principalKey)
	if !exists {
		return Principal{}, false
	}
	p, ok := v.(Principal)
	if !ok || p.ID == "" {
		return Principal{}, false
	}
	return p, true
}

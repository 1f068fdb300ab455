package middlewares

import (
	"MediClinica/sessions"
	"MediClinica/utils"
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// contextKey defines a custom context key type to store the identity in the
// request context.
type contextKey string

const identityKey contextKey = "identity"

// SessionAuth resolves the session cookie to an authenticated identity. The
// cookie carries a sealed opaque token; the identity itself lives in the
// injected store, so logout revokes it server-side.
type SessionAuth struct {
	store  sessions.Store
	sealer *utils.TokenSealer
}

func NewSessionAuth(store sessions.Store, sealer *utils.TokenSealer) *SessionAuth {
	return &SessionAuth{store: store, sealer: sealer}
}

// Resolve returns the identity behind the request's session cookie, or nil
// when there is no cookie, the cookie cannot be opened, or the session is
// gone from the store.
func (a *SessionAuth) Resolve(c *gin.Context) *sessions.Identity {
	sealed, err := c.Cookie(utils.SessionCookieName)
	if err != nil {
		return nil
	}

	token, err := a.sealer.Open(sealed)
	if err != nil {
		return nil
	}

	identity, err := a.store.Get(c.Request.Context(), token)
	if err != nil {
		log.Printf("Failed to resolve session: %v", err)
		return nil
	}
	return identity
}

// RequireAPI rejects unauthenticated API requests with a 401 JSON body and
// attaches the identity to the request context otherwise.
func (a *SessionAuth) RequireAPI() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := a.Resolve(c)
		if identity == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No autorizado"})
			c.Abort()
			return
		}

		attachIdentity(c, identity)
		c.Next()
	}
}

// RequirePage redirects unauthenticated page requests to the login page.
func (a *SessionAuth) RequirePage() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := a.Resolve(c)
		if identity == nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		attachIdentity(c, identity)
		c.Next()
	}
}

func attachIdentity(c *gin.Context, identity *sessions.Identity) {
	ctx := context.WithValue(c.Request.Context(), identityKey, identity)
	c.Request = c.Request.WithContext(ctx)
}

// ExtractIdentityFromContext retrieves the authenticated identity placed in
// the context by RequireAPI or RequirePage.
func ExtractIdentityFromContext(ctx context.Context) (*sessions.Identity, error) {
	identity, ok := ctx.Value(identityKey).(*sessions.Identity)
	if !ok {
		return nil, errors.New("identity not found in context")
	}
	return identity, nil
}

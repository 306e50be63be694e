package httpadapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"unipact/internal/config/configs"
	"unipact/internal/core/domain"
)

var errUnauthenticated = errors.New("missing or invalid bearer token")

// claims is the token payload issued by the identity service. Subject is the
// user id; admins may omit profile_id.
type claims struct {
	Role      domain.Role `json:"role"`
	ProfileID string      `json:"profile_id,omitempty"`
	jwt.RegisteredClaims
}

// Authenticator verifies HS256 bearer tokens and turns them into callers.
type Authenticator struct {
	secret []byte
	issuer string
	leeway time.Duration
}

func NewAuthenticator(cfg configs.Auth) *Authenticator {
	return &Authenticator{
		secret: []byte(cfg.JWTSecret),
		issuer: cfg.Issuer,
		leeway: cfg.Leeway,
	}
}

// Issue signs a token for caller. The service itself never logs anyone in;
// Issue exists for tests and local tooling.
func (a *Authenticator) Issue(caller domain.Caller, ttl time.Duration) (string, error) {
	now := time.Now()
	c := claims{
		Role: caller.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   caller.UserID.String(),
			Issuer:    a.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	if caller.ProfileID != uuid.Nil {
		c.ProfileID = caller.ProfileID.String()
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(a.secret)
}

// Verify parses a raw token into a caller.
func (a *Authenticator) Verify(raw string) (domain.Caller, error) {
	var c claims
	keyFunc := func(*jwt.Token) (any, error) { return a.secret, nil }
	_, err := jwt.ParseWithClaims(raw, &c, keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(a.issuer),
		jwt.WithLeeway(a.leeway),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return domain.Caller{}, err
	}

	userID, err := uuid.Parse(c.Subject)
	if err != nil {
		return domain.Caller{}, fmt.Errorf("subject: %w", err)
	}
	caller := domain.Caller{UserID: userID, Role: c.Role}
	switch c.Role {
	case domain.RoleCompany, domain.RoleClub:
		if caller.ProfileID, err = uuid.Parse(c.ProfileID); err != nil {
			return domain.Caller{}, fmt.Errorf("profile_id: %w", err)
		}
	case domain.RoleAdmin:
	default:
		return domain.Caller{}, fmt.Errorf("unknown role %q", c.Role)
	}
	return caller, nil
}

type callerKey struct{}

// Middleware rejects requests without a valid bearer token and stores the
// caller in the request context.
func (a *Authenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || raw == "" {
			writeMessage(w, http.StatusUnauthorized, errUnauthenticated.Error())
			return
		}
		caller, err := a.Verify(strings.TrimSpace(raw))
		if err != nil {
			writeMessage(w, http.StatusUnauthorized, errUnauthenticated.Error())
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), callerKey{}, caller)))
	})
}

// callerFrom returns the caller stored by Middleware.
func callerFrom(ctx context.Context) domain.Caller {
	caller, _ := ctx.Value(callerKey{}).(domain.Caller)
	return caller
}

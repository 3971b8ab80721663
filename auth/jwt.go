package auth

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/testmaster-app/testmaster/config"
	"github.com/testmaster-app/testmaster/logging"
	"github.com/testmaster-app/testmaster/utils"
)

const (
	issuer   = "testmaster-auth"
	audience = "testmaster-web"

	// contextKey is where the middleware stores the parsed *jwt.Token.
	contextKey = "user"
	// rejectedKey is set when a request carried a token that failed validation.
	rejectedKey = "auth_token_rejected"
)

type Claims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

// GenerateToken issues a signed token for a user. The landing page never
// logs anyone in; this exists for the admin CLI and tests.
func GenerateToken(email, name string) (string, error) {
	if err := utils.ValidateDisplayName(name); err != nil {
		return "", fmt.Errorf("invalid name: %w", err)
	}

	cfg := config.GetConfig()
	now := time.Now()

	claims := &Claims{
		Email: email,
		Name:  name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(cfg.Security.JWTExpiryHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    issuer,
			Audience:  []string{audience},
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.Security.JWTSecret))
}

// ParseToken validates a token string and returns its claims.
func ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, new(Claims), keyFunc,
		jwt.WithIssuer(issuer),
		jwt.WithAudience(audience),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	return token.Claims.(*Claims), nil
}

func keyFunc(*jwt.Token) (interface{}, error) {
	return []byte(config.GetConfig().Security.JWTSecret), nil
}

// OptionalJWTMiddleware reads a token from the Authorization header or the
// configured cookie when one is present. Requests without a token, or with
// a token that fails validation, continue as anonymous.
func OptionalJWTMiddleware() echo.MiddlewareFunc {
	cookie := config.GetConfig().Security.TokenCookie

	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  contextKey,
		TokenLookup: "header:Authorization:Bearer ,cookie:" + cookie,
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			return jwt.ParseWithClaims(auth, new(Claims), keyFunc,
				jwt.WithIssuer(issuer),
				jwt.WithAudience(audience),
				jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			)
		},
		ContinueOnIgnoredError: true,
		ErrorHandler: func(c echo.Context, err error) error {
			if hasCredential(c.Request(), cookie) {
				c.Set(rejectedKey, true)
				logging.DebugLogger.Printf("Ignoring invalid token on %s: %v", c.Request().URL.Path, err)
			}
			return nil
		},
	})
}

// hasCredential reports whether the request carried a token at all. The
// scheme is matched case-insensitively, as the header extractor does.
func hasCredential(r *http.Request, cookie string) bool {
	const scheme = "Bearer "
	if h := r.Header.Get(echo.HeaderAuthorization); len(h) > len(scheme) && strings.EqualFold(h[:len(scheme)], scheme) {
		return true
	}
	_, err := r.Cookie(cookie)
	return err == nil
}

// StateFromContext builds the auth snapshot for the current request.
func StateFromContext(c echo.Context) State {
	token, ok := c.Get(contextKey).(*jwt.Token)
	if !ok || token == nil || !token.Valid {
		return Anonymous
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return Anonymous
	}
	return State{
		IsAuthenticated: true,
		User:            &User{DisplayName: utils.SanitizeDisplayName(claims.Name), Email: claims.Email},
	}
}

// TokenRejected reports whether the request presented a token that was not
// accepted.
func TokenRejected(c echo.Context) bool {
	rejected, _ := c.Get(rejectedKey).(bool)
	return rejected
}

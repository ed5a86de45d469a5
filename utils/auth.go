package utils

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/jeil-marcom/site_end/models"
)

// TokenManager issues and verifies the signed session tokens used by the
// moderation dashboard. Constructed once at startup and injected wherever
// tokens are handled, so tests can run with their own secret.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager creates a TokenManager signing with secret, issuing tokens
// valid for ttl.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// GenerateToken signs a token carrying the user's identity and role claims.
func (tm *TokenManager) GenerateToken(user models.AdminUser) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":    user.ID.Hex(),
		"email": user.Email,
		"role":  user.Role,
		"iat":   now.Unix(),
		"exp":   now.Add(tm.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(tm.secret)
	if err != nil {
		Logger.Error().Err(err).Msg("failed to sign token")
		return "", err
	}

	return tokenString, nil
}

// ParseToken verifies tokenString and returns its claims. Expired tokens
// surface as an error wrapping jwt.ErrTokenExpired so callers can report
// expiry distinctly.
func (tm *TokenManager) ParseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return tm.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}

// HashPassword hashes a password for storage.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether password matches the stored hash.
func VerifyPassword(password, hashedPassword string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}

// LoginUser is the identity attached to a request by the auth middleware.
type LoginUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// UserFromContext extracts the authenticated identity set by the auth
// middleware. Returns an error when the request carries no identity.
func UserFromContext(c *gin.Context) (*LoginUser, error) {
	value, exists := c.Get("user")
	if !exists {
		return nil, fmt.Errorf("no authenticated user on request")
	}

	claims, ok := value.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("unexpected claims type %T", value)
	}

	id, _ := claims["id"].(string)
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)
	if id == "" || role == "" {
		return nil, fmt.Errorf("token claims missing identity fields")
	}

	return &LoginUser{ID: id, Email: email, Role: role}, nil
}

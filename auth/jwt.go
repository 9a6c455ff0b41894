package auth

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Jayant71/shopscale/models"
)

const defaultTokenExpiryMinutes = 30

// Claims is the payload carried by every access token: the principal's id
// and role, plus the standard expiry fields.
type Claims struct {
	UserID uint        `json:"id"`
	Role   models.Role `json:"role"`
	jwt.RegisteredClaims
}

// secretKey returns the signing key from JWT_SECRET. main refuses to start
// without it; the fallback only exists so tests run without env setup.
func secretKey() []byte {
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		return []byte(secret)
	}
	return []byte("test-signing-key")
}

func tokenExpiry() time.Duration {
	if v := os.Getenv("TOKEN_EXPIRY_MINUTES"); v != "" {
		if minutes, err := strconv.Atoi(v); err == nil && minutes > 0 {
			return time.Duration(minutes) * time.Minute
		}
	}
	return defaultTokenExpiryMinutes * time.Minute
}

// GenerateToken issues a signed HS256 access token for the given principal.
func GenerateToken(userID uint, role models.Role) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenExpiry())),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// ParseToken validates a token string and returns its claims.
func ParseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

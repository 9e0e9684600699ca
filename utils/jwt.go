package utils

import (
	"errors"
	"time"

	"pitchbook/config"

	"github.com/golang-jwt/jwt"
)

// Identity is the subject extracted from a verified token. The booking
// core treats an absent identity as an anonymous guest.
type Identity struct {
	Subject string
	Name    string
	Email   string
	Role    string
}

func secretKey() []byte {
	secret := config.AppConfig.JWTSecret
	if secret == "" {
		secret = "pitchbook-dev"
	}
	return []byte(secret)
}

// GenerateToken creates a signed JWT for the given subject.
// The token expires after the specified duration.
func GenerateToken(subject, name, email, role string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":   subject,
		"name":  name,
		"email": email,
		"role":  role,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// ValidateToken parses and validates a token string.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
}

// ExtractIdentityFromToken returns the identity carried by a valid token.
func ExtractIdentityFromToken(tokenString string) (Identity, error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return Identity{}, err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return Identity{}, errors.New("invalid token claims")
	}
	id := Identity{}
	if sub, ok := claims["sub"].(string); ok {
		id.Subject = sub
	}
	if name, ok := claims["name"].(string); ok {
		id.Name = name
	}
	if email, ok := claims["email"].(string); ok {
		id.Email = email
	}
	if role, ok := claims["role"].(string); ok {
		id.Role = role
	}
	if id.Subject == "" {
		return Identity{}, errors.New("token missing subject")
	}
	return id, nil
}

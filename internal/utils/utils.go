package utils

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/zerocycle/zerocycle-admin-backend/internal/config"
)

// GenerateJWT generates a signed token for an admin session.
func GenerateJWT(adminID, email string, cfg *config.Config) (string, error) {
	claims := jwt.MapClaims{
		"sub":   adminID,
		"email": email,
		"exp":   time.Now().Add(time.Second * time.Duration(cfg.JWT.ExpiresIn)).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWT.Secret))
}

// ValidateJWT validates a token and returns its claims.
func ValidateJWT(tokenString string, cfg *config.Config) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(cfg.JWT.Secret), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}

// phonePattern is the loose international-number shape accepted by the
// registration and notification forms: optional leading +, then only digits,
// spaces and hyphens.
var phonePattern = regexp.MustCompile(`^\+?[0-9][0-9\s-]*$`)

var nonDigits = regexp.MustCompile(`[^0-9]`)

// ValidPhoneNumber reports whether the value looks like an international
// phone number: optional leading +, digits with spaces/hyphens allowed,
// 10 to 15 digits in total.
func ValidPhoneNumber(phone string) bool {
	phone = strings.TrimSpace(phone)
	if !phonePattern.MatchString(phone) {
		return false
	}
	n := len(DigitsOnly(phone))
	return n >= 10 && n <= 15
}

// DigitsOnly strips everything but digits, the form wa.me expects.
func DigitsOnly(phone string) string {
	return nonDigits.ReplaceAllString(phone, "")
}

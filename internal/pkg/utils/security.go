package utils

import (
	"clinic-console-service/internal/pkg/constvars"
	"clinic-console-service/internal/pkg/exceptions"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// BackendClaims are the claims the console reads from a backend access token.
type BackendClaims struct {
	UserType  int
	UserID    string
	ClinicID  string
	Email     string
	ExpiresAt time.Time
}

func GenerateJWT(sessionID, secret string, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		constvars.ConsoleClaimSessionID: sessionID,
		"exp":                           time.Now().Add(ttl).Unix(),
	})

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", exceptions.ErrTokenGenerate(err)
	}

	return tokenString, nil
}

func ParseJWT(tokenString, secret string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%s: %v", constvars.ErrDevAuthSigningMethod, token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", exceptions.ErrTokenInvalidOrExpired(err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		if sessionID, ok := claims[constvars.ConsoleClaimSessionID].(string); ok && sessionID != "" {
			return sessionID, nil
		}
	}

	return "", exceptions.ErrTokenInvalidOrExpired(errors.New(constvars.ErrDevAuthTokenInvalid))
}

// DecodeBackendClaims reads the claims of a backend access token without
// verifying it. The console never holds the backend signing key; it only needs
// the user type and ids to route the session.
func DecodeBackendClaims(accessToken string) (*BackendClaims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(accessToken, claims); err != nil {
		return nil, exceptions.ErrParseBackendToken(err)
	}

	result := &BackendClaims{
		UserType: claimInt(claims[constvars.BackendClaimUserType]),
		UserID:   claimString(claims[constvars.BackendClaimUserID]),
		ClinicID: claimString(claims[constvars.BackendClaimClinicID]),
		Email:    claimString(claims[constvars.BackendClaimEmail]),
	}
	if result.UserID == "" {
		result.UserID = claimString(claims[constvars.BackendClaimSubject])
	}
	if exp, ok := claims["exp"].(float64); ok {
		result.ExpiresAt = time.Unix(int64(exp), 0)
	}
	return result, nil
}

func claimString(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatInt(int64(v), 10)
	default:
		return ""
	}
}

func claimInt(value interface{}) int {
	switch v := value.(type) {
	case float64:
		return int(v)
	case string:
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return 0
		}
		return parsed
	default:
		return 0
	}
}

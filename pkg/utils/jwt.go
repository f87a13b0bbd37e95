package utils

import (
	"errors"
	"math"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

const PID_CLAIM = "pid"

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrInvalidPID   = errors.New("token carries no valid pid")
)

func DecodeJWT(token string, secret []byte) (jwt.MapClaims, error) {
	parsedToken, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}

	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	if !ok || !parsedToken.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

func EncodeJWT(claims jwt.MapClaims, secret []byte) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// PIDFromClaims accepts the pid as a JSON number or a decimal string.
func PIDFromClaims(claims jwt.MapClaims) (uint32, error) {
	switch pid := claims[PID_CLAIM].(type) {
	case float64:
		if pid < 0 || pid > math.MaxUint32 || pid != math.Trunc(pid) {
			return 0, ErrInvalidPID
		}
		return uint32(pid), nil
	case string:
		parsed, err := strconv.ParseUint(pid, 10, 32)
		if err != nil {
			return 0, ErrInvalidPID
		}
		return uint32(parsed), nil
	default:
		return 0, ErrInvalidPID
	}
}

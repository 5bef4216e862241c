package utils

import (
	"errors"
	"fmt"
	"time"
	"ufsbd-cms-server/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

const (
	tokenIssuer    = "ufsbd-cms-server"
	loginTokenType = "login"
)

// LoginClaims 登录会话，只携带身份；角色每次请求从数据库读取
type LoginClaims struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Type  string `json:"type"`
	jwt.RegisteredClaims
}

func getSecret() []byte {
	return []byte(config.Get().JWT.Secret)
}

func GenerateLoginToken(id, email string, duration time.Duration) (string, error) {
	claims := LoginClaims{
		ID:    id,
		Email: email,
		Type:  loginTokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(duration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    tokenIssuer,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(getSecret())
}

func ParseLoginToken(tokenString string) (*LoginClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &LoginClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return getSecret(), nil
	}, jwt.WithIssuer(tokenIssuer))
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*LoginClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.Type != loginTokenType || claims.ID == "" {
		return nil, errors.New("invalid token type")
	}
	return claims, nil
}

package auth

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims do token (RBAC simples por perfil)
type Claims struct {
	UserID uint   `json:"userId"`
	Perfil string `json:"perfil"`
	jwt.RegisteredClaims
}

// Tempo de vida do access token
const AccessTTL = 8 * time.Hour

func segredo() ([]byte, error) {
	s := os.Getenv("AUTH_SECRET")
	if s == "" {
		return nil, errors.New("AUTH_SECRET não configurado")
	}
	return []byte(s), nil
}

// GerarToken emite um JWT HS256 com sub, exp, iat e jti
func GerarToken(userID uint, perfil string) (string, error) {
	chave, err := segredo()
	if err != nil {
		return "", err
	}

	now := time.Now()
	claims := &Claims{
		UserID: userID,
		Perfil: perfil,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprint(userID),
			ExpiresAt: jwt.NewNumericDate(now.Add(AccessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        fmt.Sprintf("%d-%d", userID, now.UnixNano()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(chave)
}

// ParseAndValidate valida assinatura e expiração
func ParseAndValidate(tokenStr string) (*Claims, error) {
	chave, err := segredo()
	if err != nil {
		return nil, err
	}

	parser := jwt.NewParser(jwt.WithValidMethods([]string{"HS256"}))
	tok, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return chave, nil
	})
	if err != nil {
		return nil, err
	}
	if !tok.Valid {
		return nil, errors.New("token inválido")
	}

	c, ok := tok.Claims.(*Claims)
	if !ok {
		return nil, errors.New("claims inválidas")
	}
	if c.ExpiresAt == nil || time.Now().After(c.ExpiresAt.Time) {
		return nil, errors.New("token expirado")
	}
	return c, nil
}

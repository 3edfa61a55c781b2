// Package jwt emite y valida los tokens de sesión (acceso y refresco).
//
// Los tokens son stateless: no se guardan en el servidor y no existe lista de
// revocación. El logout solo borra las cookies del cliente; un token robado
// sigue siendo válido hasta su expiración natural. Es un riesgo aceptado del
// diseño, no un bug.
package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Kind distingue el tipo de token. Un token de refresco nunca puede usarse
// donde se espera uno de acceso (y viceversa): Parse verifica el tag.
type Kind string

const (
	KindAccess  Kind = "access"
	KindRefresh Kind = "refresh"
)

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
// Role, Name y Email son una "foto" del usuario al momento de emitir el token:
// cambios posteriores en la DB no se propagan hasta un refresh o re-login.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Role   string `json:"role"` // "employer" | "employee"
	Name   string `json:"name"`
	Email  string `json:"email"`
	Kind   Kind   `json:"kind"` // "access" | "refresh"
}

// Identity datos del usuario que se embeben en el token.
type Identity struct {
	UserID string
	Role   string
	Name   string
	Email  string
}

// Generate genera un token JWT firmado (HS256) del tipo indicado con vida ttl.
func Generate(secret, issuer string, kind Kind, ttl time.Duration, id Identity) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   id.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID: id.UserID,
		Role:   id.Role,
		Name:   id.Name,
		Email:  id.Email,
		Kind:   kind,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida firma, expiración y tipo de token, y devuelve los claims.
// Retorna error si el token es inválido, expirado, de otro tipo o con firma incorrecta.
func Parse(secret, tokenString string, expected Kind) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	if claims.Kind != expected {
		return nil, fmt.Errorf("tipo de token inesperado: %q", claims.Kind)
	}
	return claims, nil
}

package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims claims estándar más los campos que añade el proveedor de identidad.
// El cliente no posee el secreto de firma, así que los tokens se inspeccionan
// sin verificar: la validez real la decide el backend en cada petición.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
}

// Inspect decodifica un access token sin verificar la firma y devuelve sus
// claims. Retorna error si el token está malformado.
func Inspect(tokenString string) (*Claims, error) {
	parser := jwt.NewParser()
	claims := &Claims{}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf("jwt: token malformado: %w", err)
	}
	return claims, nil
}

// ExpiresWithin indica si el token expira dentro del margen dado (o ya
// expiró). Un token sin claim exp nunca se considera próximo a expirar.
func ExpiresWithin(tokenString string, margin time.Duration) bool {
	claims, err := Inspect(tokenString)
	if err != nil || claims.ExpiresAt == nil {
		return false
	}
	return time.Now().Add(margin).After(claims.ExpiresAt.Time)
}

// Subject devuelve el claim sub (id de la identidad), vacío si no se puede
// decodificar.
func Subject(tokenString string) string {
	claims, err := Inspect(tokenString)
	if err != nil {
		return ""
	}
	return claims.Subject
}

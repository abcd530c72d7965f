// Package session gives the operator identity an explicit lifecycle: login
// creates a session, logout destroys it, expiry is handled by Redis TTL.
// Tokens are HS256 JWTs whose liveness is always checked against the store,
// so logout revokes immediately regardless of the token's own expiry.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"ventaslive/internal/identity"
)

var ErrSesionInvalida = errors.New("sesión inválida o expirada")

// Claims embedded in every session token.
type Claims struct {
	SesionID string `json:"sesion_id"`
	Rol      string `json:"rol"`
	jwt.RegisteredClaims
}

type Store struct {
	rdb    *redis.Client
	secret []byte
	ttl    time.Duration
}

func NewStore(rdb *redis.Client, secret string, ttl time.Duration) *Store {
	return &Store{rdb: rdb, secret: []byte(secret), ttl: ttl}
}

func clave(sesionID string) string { return "sesion:" + sesionID }

// Crear persists the profile under a fresh session id and returns the signed
// token for it.
func (s *Store) Crear(ctx context.Context, perfil *identity.Perfil) (string, error) {
	sesionID := uuid.NewString()

	cuerpo, err := json.Marshal(perfil)
	if err != nil {
		return "", err
	}
	if err := s.rdb.Set(ctx, clave(sesionID), cuerpo, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("guardar sesión: %w", err)
	}

	ahora := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		SesionID: sesionID,
		Rol:      perfil.Rol,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   perfil.ID.String(),
			IssuedAt:  jwt.NewNumericDate(ahora),
			ExpiresAt: jwt.NewNumericDate(ahora.Add(s.ttl)),
		},
	})
	return token.SignedString(s.secret)
}

// Validar parses the token and confirms the session still exists in the
// store. Returns the profile saved at login.
func (s *Store) Validar(ctx context.Context, tokenStr string) (*identity.Perfil, error) {
	claims, err := s.parsear(tokenStr)
	if err != nil {
		return nil, ErrSesionInvalida
	}

	cuerpo, err := s.rdb.Get(ctx, clave(claims.SesionID)).Bytes()
	if err != nil {
		return nil, ErrSesionInvalida
	}
	var perfil identity.Perfil
	if err := json.Unmarshal(cuerpo, &perfil); err != nil {
		return nil, ErrSesionInvalida
	}
	return &perfil, nil
}

// Cerrar destroys the session; the token becomes useless even before its
// JWT expiry.
func (s *Store) Cerrar(ctx context.Context, tokenStr string) error {
	claims, err := s.parsear(tokenStr)
	if err != nil {
		return ErrSesionInvalida
	}
	return s.rdb.Del(ctx, clave(claims.SesionID)).Err()
}

func (s *Store) parsear(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrSesionInvalida
	}
	return claims, nil
}

// Package auth issues and validates the HS256 tokens carrying the caller's
// identity and role claims, and exposes the gin middleware that turns them
// into an access.Principal for the request.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/yurivfernandes1/condoflow-backend/internal/condo/access"
	"github.com/yurivfernandes1/condoflow-backend/internal/condo/models"
)

const defaultTokenTTL = 24 * time.Hour

// GenerateToken signs a token holding everything the middleware needs to
// rebuild the Principal without touching the database.
func GenerateToken(user *models.User, secret string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   user.ID.String(),
		"exp":   now.Add(defaultTokenTTL).Unix(),
		"iat":   now.Unix(),
		"roles": rolesToStrings(user.Roles),
		"staff": user.Staff,
	}
	if user.CondominioID != nil {
		claims["condominio_id"] = user.CondominioID.String()
	}
	if user.UnidadeID != nil {
		claims["unidade_id"] = user.UnidadeID.String()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken validates the signature and expiry and rebuilds the Principal.
func ParseToken(tokenString, secret string) (access.Principal, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return access.Principal{}, err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return access.Principal{}, fmt.Errorf("invalid token")
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return access.Principal{}, fmt.Errorf("missing subject: %w", err)
	}
	userID, err := uuid.Parse(sub)
	if err != nil {
		return access.Principal{}, fmt.Errorf("invalid subject: %w", err)
	}

	p := access.Principal{UserID: userID}
	if staff, ok := claims["staff"].(bool); ok {
		p.Staff = staff
	}
	if rawRoles, ok := claims["roles"].([]interface{}); ok {
		for _, r := range rawRoles {
			if s, ok := r.(string); ok {
				p.Roles = append(p.Roles, models.Role(s))
			}
		}
	}
	if id, ok := parseUUIDClaim(claims, "condominio_id"); ok {
		p.CondominioID = &id
	}
	if id, ok := parseUUIDClaim(claims, "unidade_id"); ok {
		p.UnidadeID = &id
	}
	return p, nil
}

func parseUUIDClaim(claims jwt.MapClaims, key string) (uuid.UUID, bool) {
	raw, ok := claims[key].(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func rolesToStrings(roles []models.Role) []string {
	out := make([]string, len(roles))
	for i, r := range roles {
		out[i] = string(r)
	}
	return out
}

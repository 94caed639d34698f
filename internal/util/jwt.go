package util

import (
	"course_backend/internal/model"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const principalKey = "principal"

type Claims struct {
	AccountID uint              `json:"id"`
	Kind      model.AccountKind `json:"userType"`
	Email     string            `json:"email"`
	jwt.RegisteredClaims
}

func (c *Claims) Principal() model.Principal {
	return model.Principal{ID: c.AccountID, Kind: c.Kind, Email: c.Email}
}

func GenerateJWT(p model.Principal, secret string, expiration time.Duration) (string, *Claims, error) {
	now := time.Now()
	claims := &Claims{
		AccountID: p.ID,
		Kind:      p.Kind,
		Email:     p.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", nil, err
	}
	return signed, claims, nil
}

func ParseJWT(tokenString, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	if !claims.Kind.Valid() {
		return nil, errors.New("invalid account kind")
	}
	return claims, nil
}

func SetClaims(c *gin.Context, claims *Claims) {
	c.Set(principalKey, claims)
}

func GetClaimsFromContext(c *gin.Context) *Claims {
	v, exists := c.Get(principalKey)
	if !exists {
		return nil
	}
	claims, ok := v.(*Claims)
	if !ok {
		return nil
	}
	return claims
}

// GetPrincipal 控制器从这里取出调用方，再显式传给服务层
func GetPrincipal(c *gin.Context) (model.Principal, bool) {
	claims := GetClaimsFromContext(c)
	if claims == nil {
		return model.Principal{}, false
	}
	return claims.Principal(), true
}

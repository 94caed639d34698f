package middleware

import (
	"context"
	"course_backend/internal/model"
	"course_backend/internal/util"
	"course_backend/pkg/logger"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RevocationChecker 由 service.AuthService 实现
type RevocationChecker interface {
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

func AuthMiddleware(secret string, revoked RevocationChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if tokenString == "" {
			tokenString = c.Query("token")
		}

		if tokenString == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := util.ParseJWT(tokenString, secret)
		if err != nil {
			logger.Log.Debug("JWT解析错误", zap.Error(err))
			util.Unauthorized(c)
			c.Abort()
			return
		}

		if revoked != nil {
			isRevoked, err := revoked.IsRevoked(c.Request.Context(), claims.ID)
			if err != nil {
				// 黑名单不可用时放行，令牌本身仍然有效
				logger.Log.Warn("Token denylist unavailable", zap.Error(err))
			} else if isRevoked {
				util.Unauthorized(c)
				c.Abort()
				return
			}
		}

		util.SetClaims(c, claims)
		c.Next()
	}
}

func RoleMiddleware(kinds ...model.AccountKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := util.GetPrincipal(c)
		if !ok {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		for _, kind := range kinds {
			if principal.Kind == kind {
				c.Next()
				return
			}
		}

		util.Forbidden(c)
		c.Abort()
	}
}

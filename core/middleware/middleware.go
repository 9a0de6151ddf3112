package middleware

import (
	"strings"

	"roomboard/core/constants"
	"roomboard/core/controller"
	"roomboard/core/errors"
	"roomboard/core/logger"
	"roomboard/core/utils"

	"github.com/labstack/echo/v4"
)

type Middleware struct {
	base controller.BaseController
}

func NewMiddleware() *Middleware {
	return &Middleware{base: controller.NewBaseController()}
}

// AuthMiddleware guards administrator routes with a Bearer JWT.
func (m *Middleware) AuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return m.base.Unauthorized(errors.ErrMissingAuthorizationHeader, "Missing Authorization header")
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return m.base.Unauthorized(errors.ErrInvalidTokenFormat, "Authorization header must be a Bearer token")
			}

			claims, err := utils.ParseToken(parts[1])
			if err != nil {
				logger.Warn("Middleware:AuthMiddleware:ParseToken", "error", err)
				return m.base.Unauthorized(errors.ErrTokenExpired, "Invalid or expired token")
			}

			c.Set(constants.ContextTokenData, claims)
			return next(c)
		}
	}
}

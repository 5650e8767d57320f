package authgate

import (
	"errors"
	"net/http"
	"strings"

	"github.com/kmdeleon/ordering_service/internal/logging"
	"github.com/labstack/echo/v4"
)

type Gate struct {
	Client *Client
}

func NewGate(client *Client) *Gate {
	return &Gate{Client: client}
}

// Require validates the bearer token upstream and admits the request only when
// the returned role is in the allowed set. Authorization is checked even when
// authentication succeeded.
func (g *Gate) Require(roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c.Request())
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}

			ctx := c.Request().Context()
			l := logging.FromContext(ctx)

			id, err := g.Client.CurrentUser(ctx, token)
			if err != nil {
				var statusErr *StatusError
				switch {
				case errors.As(err, &statusErr):
					l.Warn("auth_failed", "status", statusErr.Code, "error", err)
					return echo.NewHTTPError(statusErr.Code, "authentication failed")
				case errors.Is(err, ErrUnavailable):
					l.Error("auth_unavailable", "status", 503, "error", err)
					return echo.NewHTTPError(http.StatusServiceUnavailable, "auth service unavailable")
				default:
					l.Error("auth_failed", "status", 500, "error", err)
					return echo.NewHTTPError(http.StatusInternalServerError, "authentication failed")
				}
			}

			if _, ok := allowed[id.Role]; !ok {
				l.Warn("access_denied", "status", 403, "role", id.Role)
				return echo.NewHTTPError(http.StatusForbidden, "access denied")
			}

			c.Set("username", id.Username)
			c.Set("role", id.Role)

			return next(c)
		}
	}
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get(echo.HeaderAuthorization)
	const prefix = "Bearer "
	if len(h) > len(prefix) && strings.EqualFold(h[:len(prefix)], prefix) {
		return h[len(prefix):]
	}
	return ""
}

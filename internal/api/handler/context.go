package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pawcare/vetmarket/internal/core/domain"
)

// ctxIdentity extracts the auth claims injected by the Auth middleware and
// performs a fast-fail check before any service call: a non-empty user id
// proves the middleware ran.
func ctxIdentity(c echo.Context) (userID, role string, err error) {
	userID, _ = c.Get("user_id").(string)
	if userID == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	role, _ = c.Get("role").(string)
	return userID, role, nil
}

// ctxVetID returns the authenticated caller's vet profile id. Vet-only
// routes need a token minted after the profile was created; without the
// claim the JWT is structurally valid but operationally unusable.
func ctxVetID(c echo.Context) (string, error) {
	role, _ := c.Get("role").(string)
	if role != domain.RoleVet {
		return "", echo.NewHTTPError(http.StatusForbidden, "vet role required")
	}
	vetID, _ := c.Get("vet_id").(string)
	if vetID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "token missing vet identity")
	}
	return vetID, nil
}

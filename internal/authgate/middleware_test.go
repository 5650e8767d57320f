package authgate

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIdentityServer(t *testing.T, role string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer good-token" {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{
			"username": "maria",
			"userRole": role,
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func invokeGate(t *testing.T, gate *Gate, token string, roles ...string) (*httptest.ResponseRecorder, echo.Context, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/info/1", nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	err := gate.Require(roles...)(next)(c)
	return rec, c, err
}

func httpErrorCode(t *testing.T, err error) int {
	t.Helper()
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	return he.Code
}

func TestGate_MissingToken(t *testing.T) {
	srv := newIdentityServer(t, "user")
	gate := NewGate(NewClient(srv.URL + "/"))

	_, _, err := invokeGate(t, gate, "", "user", "admin", "staff")
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, httpErrorCode(t, err))
}

func TestGate_UpstreamRejectionPassesStatusThrough(t *testing.T) {
	srv := newIdentityServer(t, "user")
	gate := NewGate(NewClient(srv.URL + "/"))

	_, _, err := invokeGate(t, gate, "bad-token", "user", "admin", "staff")
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, httpErrorCode(t, err))
}

func TestGate_RoleNotAllowed(t *testing.T) {
	srv := newIdentityServer(t, "rider")
	gate := NewGate(NewClient(srv.URL + "/"))

	// token is valid, role is not in the allowed set
	_, _, err := invokeGate(t, gate, "good-token", "admin", "staff")
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, httpErrorCode(t, err))
}

func TestGate_ServiceUnavailable(t *testing.T) {
	srv := newIdentityServer(t, "user")
	srv.Close()
	gate := NewGate(NewClient(srv.URL + "/"))

	_, _, err := invokeGate(t, gate, "good-token", "user", "admin", "staff")
	require.Error(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, httpErrorCode(t, err))
}

func TestGate_AllowedRoleSetsUserContext(t *testing.T) {
	srv := newIdentityServer(t, "staff")
	gate := NewGate(NewClient(srv.URL + "/"))

	rec, c, err := invokeGate(t, gate, "good-token", "user", "admin", "staff")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "maria", c.Get("username"))
	assert.Equal(t, "staff", c.Get("role"))
}

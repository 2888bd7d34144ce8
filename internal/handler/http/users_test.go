package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mzhalilov/go-user-registry/internal/store"
	"github.com/mzhalilov/go-user-registry/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// serveRequest routes the request through the full router so that path
// parameters are resolved the same way they are in production.
func serveRequest(t *testing.T, h *Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

// ─────────────────────────────────────────────
// listUsers
// ─────────────────────────────────────────────

// TestListUsers_Empty verifies that an empty store yields 404 with the
// User not found message.
func TestListUsers_Empty(t *testing.T) {
	users := &mockUserService{
		listFn: func(_ context.Context) ([]models.User, error) {
			return nil, nil
		},
	}

	h := newHandlerWith(t, &mockAuthService{}, users)
	rec := serveRequest(t, h, http.MethodGet, "/users")

	require.Equal(t, http.StatusNotFound, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, models.MessageUserNotFound, resp.Message)
}

// TestListUsers_WithUsers verifies that stored users come back as public
// profiles, in order, without id or password.
func TestListUsers_WithUsers(t *testing.T) {
	users := &mockUserService{
		listFn: func(_ context.Context) ([]models.User, error) {
			return []models.User{
				{ID: 1, FullName: "A B", Email: "a@b.com", Password: "Secret1!", DOB: "1990-01-01"},
				{ID: 2, FullName: "C D", Email: "c@d.com", Password: "Secret2!", Bio: "hi", DOB: "1991-02-02"},
			}, nil
		},
	}

	h := newHandlerWith(t, &mockAuthService{}, users)
	rec := serveRequest(t, h, http.MethodGet, "/users")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Message string           `json:"message"`
		Data    []map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, models.MessageSuccess, resp.Message)
	require.Len(t, resp.Data, 2)

	first := resp.Data[0]
	assert.Equal(t, "A B", first["fullName"])
	assert.Equal(t, "a@b.com", first["email"])
	assert.Equal(t, "", first["bio"])
	assert.Equal(t, "1990-01-01", first["dob"])
	assert.NotContains(t, first, "id")
	assert.NotContains(t, first, "password")

	assert.Equal(t, "c@d.com", resp.Data[1]["email"])
}

// TestListUsers_ServiceError verifies that a failing service maps to 500.
func TestListUsers_ServiceError(t *testing.T) {
	users := &mockUserService{
		listFn: func(_ context.Context) ([]models.User, error) {
			return nil, assert.AnError
		},
	}

	h := newHandlerWith(t, &mockAuthService{}, users)
	rec := serveRequest(t, h, http.MethodGet, "/users")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ─────────────────────────────────────────────
// getUserByID
// ─────────────────────────────────────────────

// TestGetUserByID_Success verifies that a stored user comes back as a public
// profile.
func TestGetUserByID_Success(t *testing.T) {
	users := &mockUserService{
		getByIDFn: func(_ context.Context, id int64) (models.User, error) {
			require.Equal(t, int64(1), id)
			return models.User{ID: 1, FullName: "A B", Email: "a@b.com", Password: "Secret1!", DOB: "1990-01-01"}, nil
		},
	}

	h := newHandlerWith(t, &mockAuthService{}, users)
	rec := serveRequest(t, h, http.MethodGet, "/users/1")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Message string         `json:"message"`
		Data    map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, models.MessageSuccess, resp.Message)
	assert.Equal(t, "a@b.com", resp.Data["email"])
	assert.NotContains(t, resp.Data, "id")
	assert.NotContains(t, resp.Data, "password")
}

// TestGetUserByID_NotFound verifies that a missing id yields 404.
func TestGetUserByID_NotFound(t *testing.T) {
	users := &mockUserService{
		getByIDFn: func(_ context.Context, _ int64) (models.User, error) {
			return models.User{}, store.ErrUserNotFound
		},
	}

	h := newHandlerWith(t, &mockAuthService{}, users)
	rec := serveRequest(t, h, http.MethodGet, "/users/999")

	require.Equal(t, http.StatusNotFound, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, models.MessageUserNotFound, resp.Message)
}

// TestGetUserByID_NonNumeric verifies that a non-digit identifier yields 400
// with the userId detail, before any store lookup.
func TestGetUserByID_NonNumeric(t *testing.T) {
	users := &mockUserService{
		getByIDFn: func(_ context.Context, _ int64) (models.User, error) {
			t.Fatal("store lookup must not happen for a non-numeric id")
			return models.User{}, nil
		},
	}

	h := newHandlerWith(t, &mockAuthService{}, users)

	for _, target := range []string{"/users/abc", "/users/12x", "/users/-1"} {
		rec := serveRequest(t, h, http.MethodGet, target)

		require.Equal(t, http.StatusBadRequest, rec.Code, "target %s", target)
		assert.JSONEq(t, `{"message":"Validation Error","detail":{"userId":"must be numeric"}}`, rec.Body.String())
	}
}

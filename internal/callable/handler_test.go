package callable

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(proc Procedure, identity *Identity) *gin.Engine {
	r := gin.New()
	r.POST("/call", func(c *gin.Context) {
		if identity != nil {
			SetIdentity(c, identity)
		}
		Handler(proc)(c)
	})
	return r
}

func call(t *testing.T, r *gin.Engine, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(http.MethodPost, "/call", reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var envelope map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return w, envelope
}

func TestHandlerSuccess(t *testing.T) {
	var gotPayload map[string]any
	proc := func(_ context.Context, identity *Identity, payload map[string]any) (any, error) {
		gotPayload = payload
		return map[string]any{"id": "x1"}, nil
	}

	r := newTestRouter(proc, &Identity{Subject: "u1"})
	w, envelope := call(t, r, `{"name":"dune"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, envelope["success"])
	assert.Equal(t, map[string]any{"name": "dune"}, gotPayload)

	data, ok := envelope["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "x1", data["id"])
}

func TestHandlerEmptyBodyBindsEmptyPayload(t *testing.T) {
	var gotPayload map[string]any
	proc := func(_ context.Context, _ *Identity, payload map[string]any) (any, error) {
		gotPayload = payload
		return nil, nil
	}

	r := newTestRouter(proc, nil)
	w, _ := call(t, r, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotNil(t, gotPayload)
	assert.Empty(t, gotPayload)
}

func TestHandlerAnonymousIdentityIsNil(t *testing.T) {
	var gotIdentity *Identity
	proc := func(_ context.Context, identity *Identity, _ map[string]any) (any, error) {
		gotIdentity = identity
		return nil, Unauthenticated("You must be signed in to use this feature")
	}

	r := newTestRouter(proc, nil)
	w, envelope := call(t, r, `{}`)

	assert.Nil(t, gotIdentity)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, false, envelope["success"])
}

func TestHandlerErrorEnvelope(t *testing.T) {
	proc := func(_ context.Context, _ *Identity, _ map[string]any) (any, error) {
		return nil, AlreadyExists("This author already exists")
	}

	r := newTestRouter(proc, &Identity{Subject: "u1"})
	w, envelope := call(t, r, `{}`)

	assert.Equal(t, http.StatusConflict, w.Code)

	errBody, ok := envelope["error"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, string(KindAlreadyExists), errBody["code"])
	assert.Equal(t, "This author already exists", errBody["message"])
}

func TestHandlerInternalErrorIsOpaque(t *testing.T) {
	proc := func(_ context.Context, _ *Identity, _ map[string]any) (any, error) {
		return nil, Internal(errors.New("pgx: connection refused"))
	}

	r := newTestRouter(proc, &Identity{Subject: "u1"})
	w, envelope := call(t, r, `{}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	errBody, ok := envelope["error"].(map[string]any)
	require.True(t, ok)
	assert.NotContains(t, errBody["message"], "pgx")
}

func TestHandlerRejectsNonObjectBody(t *testing.T) {
	proc := func(_ context.Context, _ *Identity, _ map[string]any) (any, error) {
		t.Fatal("procedure must not run")
		return nil, nil
	}

	r := newTestRouter(proc, nil)
	w, _ := call(t, r, `["not","an","object"]`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

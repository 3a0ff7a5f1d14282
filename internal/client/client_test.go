package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"testing"

	"creativehub/internal/domain/entity"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorded struct {
	method string
	path   string
	query  url.Values
	auth   string
	body   map[string]any
}

func newTestClient(t *testing.T, status int, reply string, seen *[]recorded) (*Client, *Session) {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := recorded{method: r.Method, path: r.URL.Path, query: r.URL.Query(), auth: r.Header.Get("Authorization")}
		if raw, _ := io.ReadAll(r.Body); len(raw) > 0 {
			_ = json.Unmarshal(raw, &rec.body)
		}
		*seen = append(*seen, rec)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(reply))
	}))
	t.Cleanup(srv.Close)

	session := NewSession(filepath.Join(t.TempDir(), "token"))
	c, err := New(srv.URL+"/", session)
	require.NoError(t, err)

	return c, session
}

func TestNew_RejectsRelativeBase(t *testing.T) {
	_, err := New("localhost:5000", nil)
	assert.Error(t, err)
}

func TestResourceClient_ListSendsFiltersAndToken(t *testing.T) {
	var seen []recorded
	c, session := newTestClient(t, http.StatusOK, `{"success":true,"data":[{"_id":"p1","title":"Poster"}]}`, &seen)
	require.NoError(t, session.Set("tok"))

	items, err := NewResource[entity.Product](c, "graphics").List(context.Background(), url.Values{"status": {"draft"}})
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, "Poster", items[0].Title)
	require.Len(t, seen, 1)
	assert.Equal(t, http.MethodGet, seen[0].method)
	assert.Equal(t, "/api/graphics", seen[0].path)
	assert.Equal(t, "draft", seen[0].query.Get("status"))
	assert.Equal(t, "Bearer tok", seen[0].auth)
}

func TestResourceClient_AnonymousRequestHasNoAuthHeader(t *testing.T) {
	var seen []recorded
	c, _ := newTestClient(t, http.StatusOK, `{"success":true,"data":[]}`, &seen)

	items, err := NewResource[entity.Category](c, "categories").List(context.Background(), nil)
	require.NoError(t, err)

	assert.Empty(t, items)
	assert.Empty(t, seen[0].auth)
}

func TestResourceClient_Verbs(t *testing.T) {
	tests := []struct {
		name       string
		call       func(r *ResourceClient[entity.Certificate]) error
		wantMethod string
		wantPath   string
	}{
		{
			name: "get",
			call: func(r *ResourceClient[entity.Certificate]) error {
				_, err := r.Get(context.Background(), "c1")
				return err
			},
			wantMethod: http.MethodGet,
			wantPath:   "/api/certificates/c1",
		},
		{
			name: "create",
			call: func(r *ResourceClient[entity.Certificate]) error {
				_, err := r.Create(context.Background(), map[string]any{"studentName": "Ana"})
				return err
			},
			wantMethod: http.MethodPost,
			wantPath:   "/api/certificates",
		},
		{
			name: "update uses patch",
			call: func(r *ResourceClient[entity.Certificate]) error {
				_, err := r.Update(context.Background(), "c1", map[string]any{"studentName": "Ana"})
				return err
			},
			wantMethod: http.MethodPatch,
			wantPath:   "/api/certificates/c1",
		},
		{
			name: "remove",
			call: func(r *ResourceClient[entity.Certificate]) error {
				return r.Remove(context.Background(), "c1")
			},
			wantMethod: http.MethodDelete,
			wantPath:   "/api/certificates/c1",
		},
		{
			name: "transition",
			call: func(r *ResourceClient[entity.Certificate]) error {
				_, err := r.Transition(context.Background(), "c1", "revoke")
				return err
			},
			wantMethod: http.MethodPatch,
			wantPath:   "/api/certificates/c1/revoke",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen []recorded
			c, _ := newTestClient(t, http.StatusOK, `{"success":true,"data":{"_id":"c1"}}`, &seen)

			require.NoError(t, tt.call(NewResource[entity.Certificate](c, "certificates")))
			require.Len(t, seen, 1)
			assert.Equal(t, tt.wantMethod, seen[0].method)
			assert.Equal(t, tt.wantPath, seen[0].path)
		})
	}
}

func TestResourceClient_ListNested(t *testing.T) {
	var seen []recorded
	c, _ := newTestClient(t, http.StatusOK, `{"success":true,"data":[{"_id":"m1","order":1}]}`, &seen)

	modules, err := NewResource[entity.Module](c, "modules").ListNested(context.Background(), "course", "c9")
	require.NoError(t, err)

	assert.Len(t, modules, 1)
	assert.Equal(t, "/api/modules/course/c9", seen[0].path)
}

func TestDo_ErrorEnvelopes(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		reply       string
		wantStatus  int
		wantMessage string
		wantCode    string
	}{
		{
			name:        "server message is surfaced",
			status:      http.StatusNotFound,
			reply:       `{"success":false,"message":"Product not found","error":{"code":"NOT_FOUND"}}`,
			wantStatus:  http.StatusNotFound,
			wantMessage: "Product not found",
			wantCode:    "NOT_FOUND",
		},
		{
			name:        "success false with 200",
			status:      http.StatusOK,
			reply:       `{"success":false,"message":"nope"}`,
			wantStatus:  http.StatusOK,
			wantMessage: "nope",
		},
		{
			name:        "missing message falls back to status text",
			status:      http.StatusForbidden,
			reply:       `{"success":false}`,
			wantStatus:  http.StatusForbidden,
			wantMessage: "Forbidden",
		},
		{
			name:        "non json error body",
			status:      http.StatusBadGateway,
			reply:       `<html>bad gateway</html>`,
			wantStatus:  http.StatusBadGateway,
			wantMessage: "Bad Gateway",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen []recorded
			c, _ := newTestClient(t, tt.status, tt.reply, &seen)

			_, err := NewResource[entity.Product](c, "graphics").Get(context.Background(), "p1")

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.wantStatus, apiErr.Status)
			assert.Equal(t, tt.wantMessage, apiErr.Message)
			assert.Equal(t, tt.wantCode, apiErr.Code)
			assert.True(t, IsStatus(err, tt.wantStatus))
			assert.Equal(t, tt.wantMessage, Message(err, "fallback"))
		})
	}
}

func TestDo_TransportFailure(t *testing.T) {
	c, err := New("http://127.0.0.1:1", nil)
	require.NoError(t, err)

	_, err = NewResource[entity.Product](c, "graphics").List(context.Background(), nil)

	require.Error(t, err)
	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
	assert.Equal(t, "Failed to load", Message(err, "Failed to load"))
}

func TestLogin_StoresToken(t *testing.T) {
	var seen []recorded
	c, session := newTestClient(t, http.StatusOK, `{"success":true,"data":{"token":"jwt-1","user":{"_id":"u1","role":"admin"}}}`, &seen)

	out, err := c.Login(context.Background(), "a@b.co", "secret")
	require.NoError(t, err)

	assert.Equal(t, "jwt-1", out.Token)
	assert.Equal(t, entity.RoleAdmin, out.User.Role)
	assert.Equal(t, "jwt-1", session.Token())
	assert.Equal(t, "a@b.co", seen[0].body["email"])

	require.NoError(t, c.Logout())
	assert.Empty(t, session.Token())
}

func TestSaveFeatureFlags_SinglePatch(t *testing.T) {
	var seen []recorded
	c, _ := newTestClient(t, http.StatusOK, `{"success":true,"data":{"lms":{"courses":false}}}`, &seen)

	saved, err := c.SaveFeatureFlags(context.Background(), entity.FeatureFlags{"lms": {"courses": false}})
	require.NoError(t, err)

	assert.False(t, saved.Enabled("lms", "courses"))
	require.Len(t, seen, 1)
	assert.Equal(t, http.MethodPatch, seen[0].method)
	assert.Equal(t, "/api/settings/modules", seen[0].path)
}

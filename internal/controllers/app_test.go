package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"blogbase/internal/apperr"
	"blogbase/internal/middleware"
	"blogbase/internal/routes"
	"blogbase/internal/services"
)

// testEnv wires the real routes, middleware and error boundary against the
// in-memory stores, so these tests cover the full request path short of Mongo.
type testEnv struct {
	app   *fiber.App
	users *memUserStore
	posts *memPostStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	users := newMemUserStore()
	posts := newMemPostStore()
	auth := &services.AuthService{Users: users, Secret: "test-secret", TTL: time.Hour}

	app := fiber.New(fiber.Config{ErrorHandler: apperr.Handler})
	routes.SetupAuth(app, auth, users)
	app.Use(middleware.RequireSession(auth, users))
	routes.SetupRoutesPost(app, posts, users)
	routes.CommentRoutes(app, posts)
	routes.LikeRoutes(app, posts, nil)
	routes.TagRoutes(app, posts)

	return &testEnv{app: app, users: users, posts: posts}
}

func (e *testEnv) do(t *testing.T, method, path, session string, body any) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if session != "" {
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: session})
	}

	resp, err := e.app.Test(req, 5000)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	return resp, raw
}

func decode[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(raw, &out), "body: %s", raw)
	return out
}

func errMessage(t *testing.T, raw []byte) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(raw, &body), "body: %s", raw)
	return body.Message
}

const testPassword = "Sup3r$ecret"

func mustOID(t *testing.T, hex string) bson.ObjectID {
	t.Helper()
	oid, err := bson.ObjectIDFromHex(hex)
	require.NoError(t, err)
	return oid
}

func (e *testEnv) signup(t *testing.T, name, email string) {
	t.Helper()
	resp, raw := e.do(t, http.MethodPost, "/auth/signup", "", map[string]any{
		"name":     name,
		"email":    email,
		"password": testPassword,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, "body: %s", raw)
}

// login returns the session cookie value issued for the account.
func (e *testEnv) login(t *testing.T, email string) string {
	t.Helper()
	resp, raw := e.do(t, http.MethodPost, "/auth/login", "", map[string]any{
		"email":    email,
		"password": testPassword,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, "body: %s", raw)

	for _, c := range resp.Cookies() {
		if c.Name == middleware.SessionCookie && c.Value != "" {
			return c.Value
		}
	}
	t.Fatal("login response did not set a session cookie")
	return ""
}

type postBody struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Author struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	} `json:"author"`
	Tags      []string `json:"tags"`
	LikeCount int      `json:"likeCount"`
}

func (e *testEnv) createPost(t *testing.T, session, title, content string, tags ...string) postBody {
	t.Helper()
	resp, raw := e.do(t, http.MethodPost, "/posts", session, map[string]any{
		"title":   title,
		"content": content,
		"tags":    tags,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, "body: %s", raw)
	return decode[postBody](t, raw)
}

package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/anonto42/second-brain/backend/internal/auth"
	"github.com/anonto42/second-brain/backend/internal/middleware"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServer wires handlers, middleware and routes the way
// internal/router does, backed by the in-memory fakes.
func newTestServer() *echo.Echo {
	e := newEcho()
	tokens := auth.NewTokenService("e2e-secret")

	users := newFakeUserRepo()
	contents := newFakeContentRepo()
	links := newFakeShareLinkRepo()

	public := e.Group("/api/v1")
	NewAuthHandler(users, tokens).RegisterAuthRoutes(public)

	brainHandler := NewBrainHandler(links, contents, users)
	brainHandler.RegisterPublicRoutes(public)

	api := e.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddleware(tokens))
	NewContentHandler(contents).RegisterContentRoutes(api)
	brainHandler.RegisterShareRoutes(api)

	return e
}

func do(e *echo.Echo, method, target, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestEndToEndShareScenario(t *testing.T) {
	e := newTestServer()

	// Signup.
	rec := do(e, http.MethodPost, "/api/v1/signup", "", `{"username":"alice","password":"secret123"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var signup struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &signup))
	require.NotEmpty(t, signup.Token)

	// Signin with the wrong password is rejected.
	rec = do(e, http.MethodPost, "/api/v1/signin", "", `{"username":"alice","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Content endpoints are gated.
	rec = do(e, http.MethodGet, "/api/v1/content", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Save a link.
	rec = do(e, http.MethodPost, "/api/v1/content", signup.Token, `{"title":"Paper","link":"http://x.com/a"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	// Publish the share link.
	rec = do(e, http.MethodPost, "/api/v1/brain/share", signup.Token, `{"share":true}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var shared struct {
		Link string `json:"link"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &shared))
	require.True(t, strings.HasPrefix(shared.Link, "/api/v1/brain/"))
	require.Len(t, strings.TrimPrefix(shared.Link, "/api/v1/brain/"), 10)

	// Anonymous visitor resolves it.
	rec = do(e, http.MethodGet, shared.Link, "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var resolved struct {
		Contents []struct {
			Title string `json:"title"`
		} `json:"contents"`
		User struct {
			Username string `json:"username"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resolved))
	assert.Equal(t, "alice", resolved.User.Username)
	require.Len(t, resolved.Contents, 1)
	assert.Equal(t, "Paper", resolved.Contents[0].Title)

	// Revoke.
	rec = do(e, http.MethodPost, "/api/v1/brain/share", signup.Token, `{"share":false}`)
	require.Equal(t, http.StatusOK, rec.Code)

	// The old link is dead.
	rec = do(e, http.MethodGet, shared.Link, "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestEndToEndContentRoundTrip(t *testing.T) {
	e := newTestServer()

	rec := do(e, http.MethodPost, "/api/v1/signup", "", `{"username":"bob","password":"hunter22"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var signup struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &signup))

	rec = do(e, http.MethodPost, "/api/v1/content", signup.Token, `{"title":"Video","link":"https://youtube.com/watch?v=1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created struct {
		Content struct {
			ID string `json:"id"`
		} `json:"content"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = do(e, http.MethodGet, "/api/v1/content", signup.Token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var listed []json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed, 1)

	rec = do(e, http.MethodDelete, "/api/v1/content", signup.Token, `{"contentId":"`+created.Content.ID+`"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(e, http.MethodGet, "/api/v1/content", signup.Token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

package controller

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	glog "github.com/Laisky/go-utils/v6/log"
	"github.com/gin-gonic/gin"
	jwtLib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/Laisky/laisky-portfolio-api/library/jwt"
)

// newTestController builds a controller with no service behind it. Every
// test below must be rejected before the handler touches the service;
// reaching it would panic and fail the test.
func newTestController(t *testing.T) *Portfolio {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger, err := glog.NewConsoleWithName("test", glog.LevelInfo)
	require.NoError(t, err)

	j, err := jwt.New([]byte("test-secret"))
	require.NoError(t, err)

	return New(logger, nil, j)
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	r := gin.New()
	newTestController(t).RegisterRoutes(r, true)
	return r
}

func TestAdminRoutesRejectMissingSession(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	cases := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/blogs"},
		{http.MethodPut, "/api/blogs/507f1f77bcf86cd799439011"},
		{http.MethodDelete, "/api/blogs/507f1f77bcf86cd799439011"},
		{http.MethodPost, "/api/projects"},
		{http.MethodPut, "/api/projects/507f1f77bcf86cd799439011"},
		{http.MethodDelete, "/api/projects/507f1f77bcf86cd799439011"},
		{http.MethodPost, "/api/case-studies"},
		{http.MethodPost, "/api/technologies"},
		{http.MethodPost, "/api/gallery"},
		{http.MethodPost, "/api/our-story"},
		{http.MethodPost, "/api/success-stories"},
		{http.MethodPost, "/api/resume"},
		{http.MethodPut, "/api/resume"},
		{http.MethodGet, "/api/contact"},
		{http.MethodPut, "/api/contact/507f1f77bcf86cd799439011"},
		{http.MethodDelete, "/api/contact/507f1f77bcf86cd799439011"},
		{http.MethodGet, "/api/admin/blogs/507f1f77bcf86cd799439011"},
		{http.MethodGet, "/api/admin/stats"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(tc.method, tc.path, strings.NewReader("{}"))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, http.StatusUnauthorized, w.Code)
			require.JSONEq(t, `{"error": "Unauthorized"}`, w.Body.String())
		})
	}
}

func TestAdminRoutesRejectBadToken(t *testing.T) {
	t.Parallel()

	gin.SetMode(gin.TestMode)
	c := newTestController(t)

	r := gin.New()
	c.RegisterRoutes(r, false)

	now := time.Now()
	signed := func(role string, ttl time.Duration) string {
		token, err := c.jwt.Sign(&jwt.UserClaims{
			RegisteredClaims: jwtLib.RegisteredClaims{
				Subject:   "507f1f77bcf86cd799439011",
				Issuer:    "test",
				IssuedAt:  jwtLib.NewNumericDate(now),
				ExpiresAt: jwtLib.NewNumericDate(now.Add(ttl)),
			},
			Email: "someone@example.com",
			Role:  role,
		})
		require.NoError(t, err)
		return token
	}

	cases := []struct {
		name   string
		header string
		cookie string
	}{
		{name: "garbage bearer", header: "Bearer not-a-token"},
		{name: "garbage cookie", cookie: "still-not-a-token"},
		{name: "expired admin", header: "Bearer " + signed(jwt.RoleAdmin, -time.Minute)},
		{name: "valid non-admin", header: "Bearer " + signed("user", time.Hour)},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: sessionCookie, Value: tc.cookie})
			}

			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			require.Equal(t, http.StatusUnauthorized, w.Code)
			require.JSONEq(t, `{"error": "Unauthorized"}`, w.Body.String())
		})
	}
}

func TestMalformedIDRejectedBeforePersistence(t *testing.T) {
	t.Parallel()

	c := newTestController(t)

	handlers := map[string]gin.HandlerFunc{
		"blog update":    c.UpdateBlog,
		"blog delete":    c.DeleteBlog,
		"project read":   c.GetProjectByID,
		"contact update": c.UpdateContact,
		"gallery delete": c.DeleteGallery,
	}

	for name, handler := range handlers {
		handler := handler
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			w := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(w)
			ctx.Request = httptest.NewRequest(http.MethodPut, "/", strings.NewReader("{}"))
			ctx.Params = gin.Params{{Key: "id", Value: "not-a-hex-id"}}

			handler(ctx)

			require.Equal(t, http.StatusBadRequest, w.Code)
			require.JSONEq(t, `{"error": "Invalid ID format"}`, w.Body.String())
		})
	}
}

func TestMalformedBodyRejected(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	// public contact endpoint rejects a non-JSON body before any
	// persistence access
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader("not json at all"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.JSONEq(t, `{"error": "Invalid request body"}`, w.Body.String())

	// same for the login endpoint
	req = httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSessionTokenExtraction(t *testing.T) {
	t.Parallel()

	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	require.Empty(t, sessionToken(ctx))

	ctx, _ = gin.CreateTestContext(httptest.NewRecorder())
	ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	ctx.Request.Header.Set("Authorization", "Bearer abc123")
	require.Equal(t, "abc123", sessionToken(ctx))

	ctx, _ = gin.CreateTestContext(httptest.NewRecorder())
	ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	ctx.Request.Header.Set("Authorization", "Basic abc123")
	require.Empty(t, sessionToken(ctx))

	// cookie wins over the header
	ctx, _ = gin.CreateTestContext(httptest.NewRecorder())
	ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	ctx.Request.AddCookie(&http.Cookie{Name: sessionCookie, Value: "from-cookie"})
	ctx.Request.Header.Set("Authorization", "Bearer from-header")
	require.Equal(t, "from-cookie", sessionToken(ctx))
}

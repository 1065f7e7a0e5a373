package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freightflow/config"
	"freightflow/internal/middleware"
	"freightflow/internal/store"
	"freightflow/internal/utils"
)

var testAuth = config.AuthConfig{
	JWTSecret:  "test-secret",
	CookieName: "ff_session",
	SessionTTL: time.Hour,
}

// degradedRouter mirrors the server's public/protected split with no database
// and no redis behind it. The dashboard must stay up in exactly this state.
func degradedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	s := store.New(nil, "")

	authHandler := NewAuthHTTPHandler(s, testAuth)
	quoteHandler := NewQuoteHTTPHandler(s)
	dispatchHandler := NewDispatchHTTPHandler(s)
	carrierHandler := NewCarrierHTTPHandler(s, nil)
	companyHandler := NewCompanyHTTPHandler(s)
	accessorialHandler := NewAccessorialHTTPHandler(s, nil)
	systemHandler := NewSystemHTTPHandler(s, nil)

	r := gin.New()

	public := r.Group("/api/v1")
	public.Use(middleware.OptionalSession(testAuth))
	public.GET("/quotes", quoteHandler.ListQuotes)
	public.GET("/quotes/:id", quoteHandler.GetQuote)
	public.GET("/dispatches", dispatchHandler.ListDispatches)
	public.GET("/carriers", carrierHandler.ListCarriers)
	public.GET("/companies", companyHandler.ListCompanies)
	public.GET("/accessorials", accessorialHandler.ListAccessorials)
	public.GET("/auth/me", authHandler.Me)
	public.POST("/auth/logout", authHandler.Logout)

	protected := r.Group("/api/v1")
	protected.Use(middleware.SessionAuth(testAuth))
	protected.POST("/quotes", quoteHandler.CreateQuote)
	protected.PUT("/quotes/:id", quoteHandler.UpdateQuote)
	protected.POST("/companies", companyHandler.CreateCompany)
	protected.GET("/system/ailogs", systemHandler.ListAILogs)

	r.GET("/health", systemHandler.Health)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path, body string, cookie string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: testAuth.CookieName, Value: cookie})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sessionToken(t *testing.T) string {
	t.Helper()
	token, _, err := utils.GenerateSessionToken([]byte(testAuth.JWTSecret), 7, "open-7", "user", time.Hour)
	require.NoError(t, err)
	return token
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestPublicReadsStayUpWithoutDatabase(t *testing.T) {
	r := degradedRouter()

	for _, path := range []string{
		"/api/v1/quotes",
		"/api/v1/dispatches",
		"/api/v1/carriers",
		"/api/v1/companies",
		"/api/v1/accessorials",
	} {
		t.Run(path, func(t *testing.T) {
			w := doRequest(t, r, http.MethodGet, path, "", "")
			assert.Equal(t, http.StatusOK, w.Code)

			body := decodeResponse(t, w)
			assert.Equal(t, true, body["success"])
			data, ok := body["data"].([]interface{})
			require.True(t, ok, "data should be a JSON array, got %T", body["data"])
			assert.Empty(t, data)
		})
	}
}

func TestGetQuoteAbsenceIsNullNotError(t *testing.T) {
	r := degradedRouter()

	w := doRequest(t, r, http.MethodGet, "/api/v1/quotes/99", "", "")
	assert.Equal(t, http.StatusOK, w.Code)

	body := decodeResponse(t, w)
	assert.Equal(t, true, body["success"])
	assert.NotContains(t, body, "data")
}

func TestWritesRequireSession(t *testing.T) {
	r := degradedRouter()

	t.Run("no cookie", func(t *testing.T) {
		w := doRequest(t, r, http.MethodPost, "/api/v1/quotes", `{}`, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		body := decodeResponse(t, w)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "Authentication required", body["message"])
	})

	t.Run("garbage cookie", func(t *testing.T) {
		w := doRequest(t, r, http.MethodPost, "/api/v1/quotes", `{}`, "not-a-jwt")
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		body := decodeResponse(t, w)
		assert.Equal(t, "Invalid or expired session", body["message"])
	})
}

func TestUpdateQuoteRoute(t *testing.T) {
	r := degradedRouter()

	t.Run("requires session", func(t *testing.T) {
		w := doRequest(t, r, http.MethodPut, "/api/v1/quotes/3", `{"notes":"x"}`, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing quote is a bad request", func(t *testing.T) {
		w := doRequest(t, r, http.MethodPut, "/api/v1/quotes/3", `{"notes":"x"}`, sessionToken(t))
		assert.Equal(t, http.StatusBadRequest, w.Code)

		body := decodeResponse(t, w)
		assert.Equal(t, "Quote not found", body["message"])
	})
}

func TestCreateCompanyFailsClosedWithoutDatabase(t *testing.T) {
	r := degradedRouter()

	payload := `{"name":"Acme Imports","type":"shipper"}`
	w := doRequest(t, r, http.MethodPost, "/api/v1/companies", payload, sessionToken(t))
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	body := decodeResponse(t, w)
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["message"], "database not available")
}

func TestCreateCompanyRejectsUnknownType(t *testing.T) {
	r := degradedRouter()

	payload := `{"name":"Acme Imports","type":"warehouse"}`
	w := doRequest(t, r, http.MethodPost, "/api/v1/companies", payload, sessionToken(t))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateDispatchErrorStatus(t *testing.T) {
	badRequests := []error{
		errors.New("quote 9 not found"),
		errors.New("driver 5 not found"),
		errors.New("carrier 2 not found"),
		errors.New("quote 9 is draft, only accepted quotes can be dispatched"),
		errors.New("quote 9 already has a dispatch"),
	}
	for _, err := range badRequests {
		assert.Equal(t, http.StatusBadRequest, createDispatchErrorStatus(err), err.Error())
	}

	assert.Equal(t, http.StatusInternalServerError, createDispatchErrorStatus(errors.New("connection reset")))
}

func TestHealthReportsDegraded(t *testing.T) {
	r := degradedRouter()

	w := doRequest(t, r, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusPartialContent, w.Code)

	body := decodeResponse(t, w)
	assert.Equal(t, "degraded", body["status"])

	services, ok := body["unavailable_services"].([]interface{})
	require.True(t, ok)
	assert.ElementsMatch(t, []interface{}{"database", "redis"}, services)
}

func TestMe(t *testing.T) {
	r := degradedRouter()

	t.Run("anonymous gets null data", func(t *testing.T) {
		w := doRequest(t, r, http.MethodGet, "/api/v1/auth/me", "", "")
		assert.Equal(t, http.StatusOK, w.Code)

		body := decodeResponse(t, w)
		assert.Equal(t, true, body["success"])
		assert.NotContains(t, body, "data")
	})

	t.Run("session without backing user gets null data", func(t *testing.T) {
		w := doRequest(t, r, http.MethodGet, "/api/v1/auth/me", "", sessionToken(t))
		assert.Equal(t, http.StatusOK, w.Code)

		body := decodeResponse(t, w)
		assert.NotContains(t, body, "data")
	})
}

func TestLogoutClearsCookie(t *testing.T) {
	r := degradedRouter()

	w := doRequest(t, r, http.MethodPost, "/api/v1/auth/logout", "", sessionToken(t))
	assert.Equal(t, http.StatusOK, w.Code)

	setCookie := w.Header().Get("Set-Cookie")
	assert.Contains(t, setCookie, testAuth.CookieName+"=")
	assert.Contains(t, setCookie, "Max-Age=0")
}

func TestListAILogsRequiresSession(t *testing.T) {
	r := degradedRouter()

	w := doRequest(t, r, http.MethodGet, "/api/v1/system/ailogs", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	t.Run("empty with session", func(t *testing.T) {
		w := doRequest(t, r, http.MethodGet, "/api/v1/system/ailogs", "", sessionToken(t))
		assert.Equal(t, http.StatusOK, w.Code)

		body := decodeResponse(t, w)
		data, ok := body["data"].([]interface{})
		require.True(t, ok)
		assert.Empty(t, data)
	})
}

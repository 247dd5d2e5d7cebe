package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samarthpatel2005/portfolio/internal/content"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testRouter(t *testing.T, logs *bytes.Buffer) *gin.Engine {
	t.Helper()
	logger := zerolog.Nop()
	if logs != nil {
		logger = zerolog.New(logs)
	}
	r, err := newRouter(Config{StaticDir: t.TempDir() + "/missing"}, logger, "salt")
	require.NoError(t, err)
	return r
}

func get(r http.Handler, target string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHome_RendersContent(t *testing.T) {
	w := get(testRouter(t, nil), "/", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, "Samarth Patel")
	assert.Contains(t, body, `href="#tech-stack"`)
	assert.Contains(t, body, "Cloud &amp; DevOps")
	assert.Contains(t, body, "from-orange-500 to-red-500")
	assert.Contains(t, body, "Progressive Web Apps")
	assert.Contains(t, body, `action="https://formspree.io/f/xrblwpzl"`)
	assert.Contains(t, body, "https://www.linkedin.com/in/samarth-patel-051757283/")
}

func TestHome_MailtoFallback(t *testing.T) {
	tmpl, err := loadTemplates()
	require.NoError(t, err)

	snap := content.Load()
	snap.Site.FormEndpoint = ""

	var buf bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&buf, "index.html", snap))
	assert.Contains(t, buf.String(), `href="mailto:samarthpatel2706@gmail.com"`)
	assert.NotContains(t, buf.String(), "<form")
}

func TestAPI_JSON(t *testing.T) {
	r := testRouter(t, nil)

	t.Run("content", func(t *testing.T) {
		w := get(r, "/api/content", nil)
		require.Equal(t, http.StatusOK, w.Code)
		var got content.Snapshot
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, content.Load(), got)
	})

	t.Run("site keeps authoring keys", func(t *testing.T) {
		w := get(r, "/api/site", nil)
		require.Equal(t, http.StatusOK, w.Code)
		var got map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "https://formspree.io/f/xrblwpzl", got["formEndpoint"])
		assert.Equal(t, "https://samarthpatel.me", got["domain"])
	})

	t.Run("navigation", func(t *testing.T) {
		w := get(r, "/api/navigation", nil)
		var got []content.NavItem
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, content.Navigation(), got)
	})

	t.Run("tech list and keyed", func(t *testing.T) {
		var list []content.TechCategory
		require.NoError(t, json.Unmarshal(get(r, "/api/tech", nil).Body.Bytes(), &list))
		assert.Equal(t, content.TechCategories(), list)

		var keyed map[string]content.TechCategory
		require.NoError(t, json.Unmarshal(get(r, "/api/tech?by=key", nil).Body.Bytes(), &keyed))
		assert.Equal(t, content.TechCategoryMap(), keyed)
	})

	t.Run("tech category", func(t *testing.T) {
		w := get(r, "/api/tech/backend", nil)
		require.Equal(t, http.StatusOK, w.Code)
		var got content.TechCategory
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "Backend", got.Name)
		assert.Equal(t, "FastAPI", got.Technologies[3].Name)
	})

	t.Run("unknown tech category", func(t *testing.T) {
		w := get(r, "/api/tech/mobile", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "unknown tech category: mobile")
	})

	t.Run("expertise and social", func(t *testing.T) {
		var areas []content.ExpertiseArea
		require.NoError(t, json.Unmarshal(get(r, "/api/expertise", nil).Body.Bytes(), &areas))
		assert.Equal(t, content.ExpertiseAreas(), areas)

		var links []content.SocialLink
		require.NoError(t, json.Unmarshal(get(r, "/api/social", nil).Body.Bytes(), &links))
		assert.Equal(t, content.SocialLinks(), links)
	})
}

func TestAPI_YAML(t *testing.T) {
	w := get(testRouter(t, nil), "/api/navigation?format=yaml", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "yaml")
	assert.Contains(t, w.Body.String(), "label: Tech Stack")
	assert.Contains(t, w.Body.String(), "#tech-stack")

	w = get(testRouter(t, nil), "/api/tech/nope?format=yaml", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "yaml")
	assert.Contains(t, w.Body.String(), "error:")
	assert.Contains(t, w.Body.String(), "unknown tech category: nope")
	assert.NotContains(t, w.Body.String(), "{")
}

func TestHealthz(t *testing.T) {
	w := get(testRouter(t, nil), "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestRequestLogger(t *testing.T) {
	var logs bytes.Buffer
	r := testRouter(t, &logs)

	get(r, "/api/site", nil)
	var entry map[string]any
	require.NoError(t, json.Unmarshal(logs.Bytes(), &entry))
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/api/site", entry["path"])
	assert.EqualValues(t, 200, entry["status"])
	assert.Equal(t, hashIP("192.0.2.1", "salt"), entry["client"])

	logs.Reset()
	get(r, "/api/tech/nope", http.Header{"Dnt": {"1"}})
	entry = nil
	require.NoError(t, json.Unmarshal(logs.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.NotContains(t, entry, "client")

	logs.Reset()
	get(r, "/healthz", nil)
	assert.Zero(t, logs.Len())

	logs.Reset()
	get(r, "/healthzz", nil)
	entry = nil
	require.NoError(t, json.Unmarshal(logs.Bytes(), &entry))
	assert.Equal(t, "/healthzz", entry["path"])
	assert.EqualValues(t, 404, entry["status"])
}

func TestHashIP(t *testing.T) {
	a := hashIP("203.0.113.7", "s1")
	assert.Len(t, a, 16)
	assert.Equal(t, a, hashIP("203.0.113.7", "s1"))
	assert.NotEqual(t, a, hashIP("203.0.113.7", "s2"))

	salt, err := newSalt()
	require.NoError(t, err)
	assert.Len(t, salt, 64)
}

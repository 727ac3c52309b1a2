package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/matryer/is"
)

func TestHealthEndpointRespondsWithNoContent(t *testing.T) {
	is := is.New(t)
	r := New("test-service")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))

	is.Equal(w.Code, http.StatusNoContent)
}

func TestRootRedirectsToViewer(t *testing.T) {
	is := is.New(t)
	r := New("test-service")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

	is.Equal(w.Code, http.StatusFound)
	is.Equal(w.Header().Get("Location"), "/datastore_viewer")
}

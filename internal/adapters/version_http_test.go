package adapters

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docswitch/internal/types"
)

const sampleManifest = `[
  {"version": "0.1", "title": "0.1", "aliases": []},
  {"version": "1.0", "title": "1.0", "aliases": ["latest"]}
]`

func TestVersionHTTPAdapterListVersions(t *testing.T) {
	var requestedPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestedPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleManifest))
	}))
	defer server.Close()

	adapter := NewVersionHTTPAdapter("", "", 5, 1, 10)
	versions, err := adapter.ListVersions(t.Context(), server.URL+"/project/")
	require.NoError(t, err)

	assert.Equal(t, "/project/versions.json", requestedPath)
	expected := []types.Version{
		{Version: "0.1", Title: "0.1", Aliases: []string{}},
		{Version: "1.0", Title: "1.0", Aliases: []string{"latest"}},
	}
	if diff := cmp.Diff(expected, versions); diff != "" {
		t.Fatalf("versions mismatch (-want +got):\n%s", diff)
	}
}

func TestVersionHTTPAdapterBasicAuth(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || user != "reader" || pass != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	adapter := NewVersionHTTPAdapter("reader", "secret", 5, 1, 10)
	_, err := adapter.ListVersions(t.Context(), server.URL)
	require.NoError(t, err)
}

func TestVersionHTTPAdapterNotFound(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	adapter := NewVersionHTTPAdapter("", "", 5, 1, 10)
	_, err := adapter.ListVersions(t.Context(), server.URL)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}

func TestVersionHTTPAdapterRetriesServerErrors(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	adapter := NewVersionHTTPAdapter("", "", 5, 3, 10)
	_, err := adapter.ListVersions(t.Context(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
}

func TestVersionHTTPAdapterInvalidManifest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not": "a list"}`))
	}))
	defer server.Close()

	adapter := NewVersionHTTPAdapter("", "", 5, 1, 10)
	_, err := adapter.ListVersions(t.Context(), server.URL)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestVersionHTTPAdapterEmptySiteBase(t *testing.T) {
	adapter := NewVersionHTTPAdapter("", "", 5, 1, 10)
	_, err := adapter.ListVersions(t.Context(), "  ")
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

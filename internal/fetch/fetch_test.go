package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURL_Success(t *testing.T) {
	// Create test server
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("<html><body><h1>Test</h1></body></html>"))
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, server.URL, result.URL)
	assert.Contains(t, result.HTML, "<h1>Test</h1>")
	assert.Equal(t, http.StatusOK, result.StatusCode)
}

func TestURL_InvalidURL(t *testing.T) {
	_, err := URL(context.Background(), "not-a-valid-url", nil)
	require.Error(t, err)

	var fetchErr *Error
	assert.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, err.Error(), "invalid URL")
}

func TestURL_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)
	require.Error(t, err)
	assert.NotNil(t, result) // Result is returned even on error
	assert.Equal(t, http.StatusNotFound, result.StatusCode)

	var fetchErr *Error
	assert.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, err.Error(), "404")
}

func TestExtractMainText_JobPostingSelectors(t *testing.T) {
	html := `
	<html>
		<body>
			<div class="sidebar">Sidebar junk</div>
			<div class="job-description">
				<h2>Requirements</h2>
				<p>5 years experience in Go</p>
			</div>
		</body>
	</html>`

	text, err := ExtractMainText(html, JobPostingSelectors())
	require.NoError(t, err)
	assert.Contains(t, text, "Requirements")
	assert.Contains(t, text, "5 years experience")
	assert.NotContains(t, text, "Sidebar junk")
}

func TestExtractMainText_FallbackToBody(t *testing.T) {
	html := `
	<html>
		<body>
			<div>Some content here.</div>
		</body>
	</html>`

	text, err := ExtractMainText(html, JobPostingSelectors())
	require.NoError(t, err)
	assert.Contains(t, text, "Some content here")
}

func TestExtractMainText_NoiseSelectors(t *testing.T) {
	html := `
	<html>
		<body>
			<main>
				<p>Build distributed systems with us.</p>
				<form class="application-form">Apply now</form>
			</main>
		</body>
	</html>`

	text, err := ExtractMainText(html, JobPostingSelectors(), "form")
	require.NoError(t, err)
	assert.Contains(t, text, "distributed systems")
	assert.NotContains(t, text, "Apply now")
}

func TestJobPostingSelectors(t *testing.T) {
	selectors := JobPostingSelectors()
	assert.Contains(t, selectors, ".job-description")
	assert.Contains(t, selectors, "#job-content")
}

func TestFromURL_StaticFetch(t *testing.T) {
	body := `<html><body><main>
		<h2>Senior Backend Engineer</h2>
		<p>` + strings.Repeat("We build resilient payment infrastructure in Go. ", 5) + `</p>
		<p>Required: Go, PostgreSQL, Kubernetes.</p>
	</main></body></html>`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(body))
	}))
	defer server.Close()

	text, err := FromURL(context.Background(), server.URL, false, false)
	require.NoError(t, err)
	assert.Contains(t, text, "Senior Backend Engineer")
	assert.Contains(t, text, "Required: Go, PostgreSQL, Kubernetes.")
}

func TestFromURL_TooLittleText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html><body><main>stub</main></body></html>"))
	}))
	defer server.Close()

	_, err := FromURL(context.Background(), server.URL, false, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too little text")
}

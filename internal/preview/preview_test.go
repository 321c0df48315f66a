package preview

import (
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/require"

	"github.com/diamondcougar10/Webineer/internal/projectfile"
	"github.com/diamondcougar10/Webineer/internal/site"
)

func newTestServer(t *testing.T) (*Server, string) {
	t.Helper()
	dir := t.TempDir()
	project := site.NewProject("Preview Site")
	projectPath := filepath.Join(dir, "preview"+projectfile.Extension)
	require.NoError(t, projectfile.Save(projectPath, project))

	outputDir := filepath.Join(dir, "out")
	return New(projectPath, "", outputDir, 0, 50*time.Millisecond), projectPath
}

func TestRebuildProducesOutput(t *testing.T) {
	server, _ := newTestServer(t)
	require.NoError(t, server.rebuild())

	ts := httptest.NewServer(server.handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/index.html")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), "Preview Site")
}

func TestRebuildPicksUpChanges(t *testing.T) {
	server, projectPath := newTestServer(t)
	require.NoError(t, server.rebuild())

	project, err := projectfile.Load(projectPath)
	require.NoError(t, err)
	project.AddPage("Changelog")
	require.NoError(t, projectfile.Save(projectPath, project))
	require.NoError(t, server.rebuild())

	ts := httptest.NewServer(server.handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/changelog.html")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRebuildFailsOnMissingProject(t *testing.T) {
	server := New(filepath.Join(t.TempDir(), "gone.siteproj"), "", t.TempDir(), 0, time.Millisecond)
	require.Error(t, server.rebuild())
}

func TestMetricsEndpoint(t *testing.T) {
	server, _ := newTestServer(t)
	require.NoError(t, server.rebuild())

	ts := httptest.NewServer(server.handler())
	defer ts.Close()

	// A page request increments the request counter.
	resp, err := http.Get(ts.URL + "/index.html")
	require.NoError(t, err)
	_ = resp.Body.Close()

	resp, err = http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	text := string(body)
	require.Contains(t, text, `webineer_preview_renders_total{result="success"} 1`)
	require.True(t, strings.Contains(text, "webineer_preview_requests_total 1"))
}

func TestIsProjectEvent(t *testing.T) {
	server, projectPath := newTestServer(t)

	cases := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"write to project file", fsnotify.Event{Name: projectPath, Op: fsnotify.Write}, true},
		{"atomic replace", fsnotify.Event{Name: projectPath, Op: fsnotify.Create}, true},
		{"rename", fsnotify.Event{Name: projectPath, Op: fsnotify.Rename}, true},
		{"chmod only", fsnotify.Event{Name: projectPath, Op: fsnotify.Chmod}, false},
		{"other file", fsnotify.Event{Name: filepath.Join(filepath.Dir(projectPath), "notes.txt"), Op: fsnotify.Write}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, server.isProjectEvent(tc.event))
		})
	}
}

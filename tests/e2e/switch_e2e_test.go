package e2e

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"docswitch/tests/testutil"
)

func TestSwitchCommandE2E(t *testing.T) {
	pages := map[string]string{}
	server := testutil.ServeDocsSite(t, pages)
	siteBase := server.URL + "/docs/"

	pages["/docs/versions.json"] = `[
		{"version": "2.0", "title": "2.0", "aliases": ["latest"]},
		{"version": "1.0", "title": "1.0", "aliases": []}
	]`
	pages["/docs/2.0/sitemap.xml"] = fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url><loc>%s2.0/</loc></url>
  <url><loc>%s2.0/setup/</loc></url>
</urlset>`, siteBase, siteBase)

	root := testutil.RepoRoot(t)
	stateDir := t.TempDir()

	out := runCLI(t, root, stateDir,
		"switch",
		"--site", siteBase,
		"--location", siteBase+"1.0/setup/#step-2",
		"--target", "latest",
	)
	require.Equal(t, siteBase+"2.0/setup/#step-2", strings.TrimSpace(out))

	out = runCLI(t, root, stateDir,
		"switch",
		"--site", siteBase,
		"--location", siteBase+"1.0/changelog/",
		"--target", "latest",
	)
	require.Contains(t, out, siteBase+"2.0/")
	require.Contains(t, out, "falling back to version root")
}

func TestVersionsCommandE2E(t *testing.T) {
	pages := map[string]string{}
	server := testutil.ServeDocsSite(t, pages)
	siteBase := server.URL + "/docs/"

	pages["/docs/versions.json"] = `[
		{"version": "2.0", "title": "2.0", "aliases": ["latest"]},
		{"version": "1.0", "title": "1.0", "aliases": []}
	]`

	root := testutil.RepoRoot(t)
	out := runCLI(t, root, t.TempDir(),
		"versions",
		"--site", siteBase,
		"--sorted",
	)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	require.Contains(t, lines[0], "2.0 [latest] *")
	require.Contains(t, lines[0], siteBase+"2.0/")
	require.Contains(t, lines[1], "1.0")
}

func runCLI(t *testing.T, root string, stateDir string, args ...string) string {
	t.Helper()
	cliArgs := append([]string{"run", "./cmd/docswitch"}, args...)
	cliArgs = append(cliArgs, "--banner-state", filepath.Join(stateDir, "banner-state.yml"))
	cmd := exec.Command("go", cliArgs...)
	cmd.Dir = root
	cmd.Env = append(os.Environ(), "GO111MODULE=on")
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, string(out))
	return string(out)
}

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type harness struct {
	env    map[string]string
	opened []string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	return &harness{env: map[string]string{
		"HOME":            t.TempDir(),
		"XDG_CONFIG_HOME": t.TempDir(),
	}}
}

func (h *harness) execute(args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer
	d := deps{
		environ: func() []string {
			out := make([]string, 0, len(h.env))
			for k, v := range h.env {
				out = append(out, k+"="+v)
			}
			return out
		},
		stderr: &stderr,
		open: func(path string) error {
			h.opened = append(h.opened, path)
			return nil
		},
	}
	cmd := newRootCmdWith(d)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--no-progress"}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func pluginTree(t *testing.T) string {
	t.Helper()
	root := filepath.Join(t.TempDir(), "my-plugin")
	writeFile(t, root, "my-plugin.php", "<?php\nadd_action('init', 'my_func');\nadd_filter('the_content', 'cb'); do_action('loaded');\n")
	writeFile(t, root, "inc/shortcodes.php", "<?php\nadd_shortcode('gallery', 'render');\n")
	return root
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}

func TestRoot_CSVReport(t *testing.T) {
	h := newHarness(t)
	root := pluginTree(t)
	out := filepath.Join(t.TempDir(), "hooks.csv")

	stdout, _, err := h.execute(root, "--format", "csv", "-o", out)
	require.NoError(t, err)

	lines := readLines(t, out)
	require.Len(t, lines, 5)
	assert.Equal(t, "project_name,category,function,function_type,hook_name,file_path,line_number,original_line,highlighted_line", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "my-plugin,shortcode,add_shortcode,"), lines[1])
	assert.Contains(t, stdout, "Analysis complete for my-plugin!")
	assert.Contains(t, stdout, "Results saved to: "+out)
	assert.Contains(t, stdout, "Found 4 total occurrences:")
	assert.Empty(t, h.opened)
}

func TestRoot_CategoryFilterAppliesToReportAndSummary(t *testing.T) {
	h := newHarness(t)
	root := pluginTree(t)
	out := filepath.Join(t.TempDir(), "hooks.md")

	stdout, _, err := h.execute(root, "--category", "Filter", "-o", out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "### Filters")
	assert.NotContains(t, string(data), "### Actions")
	assert.Contains(t, stdout, "Found 1 total occurrences:")
	assert.NotContains(t, stdout, "Actions (")
}

func TestRoot_UnreadableFileIsSkipped(t *testing.T) {
	h := newHarness(t)
	root := filepath.Join(t.TempDir(), "site")
	writeFile(t, root, "a.php", "do_action('\xff');\n")
	writeFile(t, root, "b.php", "add_action('init', 'my_func');\n")
	out := filepath.Join(t.TempDir(), "site.csv")

	stdout, stderr, err := h.execute(root, "--format", "csv", "-o", out, "-v")
	require.NoError(t, err)

	lines := readLines(t, out)
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "add_action")
	assert.Contains(t, stdout, "Skipped 1 unreadable file(s)")
	assert.Contains(t, stderr, "[DEBUG]")
	assert.Contains(t, stderr, "a.php")
}

func TestRoot_InvalidSettingsWriteNothing(t *testing.T) {
	root := pluginTree(t)
	cases := map[string][]string{
		"category": {"--category", "widget"},
		"format":   {"--format", "xlsx"},
		"jobs":     {"--jobs", "500"},
		"color":    {"--color", "sometimes"},
	}
	for name, extra := range cases {
		t.Run(name, func(t *testing.T) {
			h := newHarness(t)
			out := filepath.Join(t.TempDir(), "never.md")
			_, _, err := h.execute(append([]string{root, "-o", out}, extra...)...)
			require.Error(t, err)
			_, statErr := os.Stat(out)
			assert.ErrorIs(t, statErr, os.ErrNotExist)
		})
	}
}

func TestRoot_UnwritableOutput(t *testing.T) {
	root := pluginTree(t)
	h := newHarness(t)
	out := filepath.Join(t.TempDir(), "report.md")
	writeFile(t, out, "keep.txt", "occupied")

	stdout, _, err := h.execute(root, "-o", out)
	require.Error(t, err)
	assert.ErrorContains(t, err, "write report")
	assert.NotContains(t, stdout, "Analysis complete")
	info, statErr := os.Stat(out)
	require.NoError(t, statErr)
	assert.True(t, info.IsDir())
	assert.Empty(t, h.opened)
}

func TestRoot_MissingRoot(t *testing.T) {
	h := newHarness(t)
	_, _, err := h.execute(filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRoot_DefaultOutputName(t *testing.T) {
	h := newHarness(t)
	root := pluginTree(t)
	work := t.TempDir()
	t.Chdir(work)

	stdout, _, err := h.execute(root)
	require.NoError(t, err)

	want := "my-plugin-analysis.md"
	data, err := os.ReadFile(filepath.Join(work, want))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "# my-plugin\n\n## WordPress Hooks Analysis\n"))
	assert.Contains(t, stdout, "Results saved to: "+want)
}

func TestRoot_SettingsPrecedence(t *testing.T) {
	h := newHarness(t)
	root := pluginTree(t)
	writeFile(t, root, ".hookspot.yaml", "format: csv\nsummary: table\n")
	out := filepath.Join(t.TempDir(), "report.out")

	stdout, _, err := h.execute(root, "-o", out)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(readLines(t, out)[0], "project_name,"), "config file selects csv")
	assert.Contains(t, strings.ToUpper(stdout), "TOTAL")

	h.env["HOOKSPOT_FORMAT"] = "ndjson"
	_, _, err = h.execute(root, "-o", out)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(readLines(t, out)[0], "{"), "environment overrides config file")

	_, _, err = h.execute(root, "-o", out, "--format", "md")
	require.NoError(t, err)
	assert.Equal(t, "# my-plugin", readLines(t, out)[0], "flag overrides environment")
}

func TestRoot_ExplicitConfigFromEnvironment(t *testing.T) {
	h := newHarness(t)
	root := pluginTree(t)
	cfg := filepath.Join(t.TempDir(), "ci.toml")
	writeFile(t, filepath.Dir(cfg), "ci.toml", "[scan]\ncategory = \"shortcode\"\n")
	h.env["HOOKSPOT_CONFIG"] = cfg
	out := filepath.Join(t.TempDir(), "r.csv")

	_, _, err := h.execute(root, "--format", "csv", "-o", out)
	require.NoError(t, err)
	lines := readLines(t, out)
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "add_shortcode")
}

func TestRoot_BadEnvironmentValue(t *testing.T) {
	h := newHarness(t)
	h.env["HOOKSPOT_JOBS"] = "lots"
	_, _, err := h.execute(pluginTree(t))
	assert.ErrorContains(t, err, "HOOKSPOT_JOBS")
}

func TestRoot_ParallelMatchesSequential(t *testing.T) {
	h := newHarness(t)
	root := pluginTree(t)
	dir := t.TempDir()
	seq := filepath.Join(dir, "seq.csv")
	par := filepath.Join(dir, "par.csv")

	_, _, err := h.execute(root, "--format", "csv", "-o", seq)
	require.NoError(t, err)
	_, _, err = h.execute(root, "--format", "csv", "-o", par, "-j", "0")
	require.NoError(t, err)
	assert.Equal(t, readLines(t, seq), readLines(t, par))
}

func TestRoot_ColorAndOpen(t *testing.T) {
	h := newHarness(t)
	root := pluginTree(t)
	out := filepath.Join(t.TempDir(), "r.md")

	stdout, _, err := h.execute(root, "-o", out, "--color", "always", "--open")
	require.NoError(t, err)
	assert.Contains(t, stdout, "\x1b[")
	assert.Equal(t, []string{out}, h.opened)

	stdout, _, err = h.execute(root, "-o", out)
	require.NoError(t, err)
	assert.NotContains(t, stdout, "\x1b[")
}

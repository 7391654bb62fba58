package engine

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phyten/hookspot/internal/catalog"
)

type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Debugf(format string, args ...any) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

func writeFile(t *testing.T, root, rel, content string) string {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newTree(t *testing.T) string {
	t.Helper()
	root := filepath.Join(t.TempDir(), "my-plugin")
	writeFile(t, root, "plugin.php", "<?php\nadd_action('init', 'boot');\nadd_filter('the_content', 'cb'); do_action('loaded');\n")
	writeFile(t, root, "inc/shortcodes.php", "<?php\nadd_shortcode('gallery', 'render');\n")
	writeFile(t, root, "inc/plain.php", "<?php\necho 'no hooks here';\n")
	writeFile(t, root, "readme.txt", "add_action('ignored', 'cb');\n")
	writeFile(t, root, "vendor/lib/lib.php", "do_action('vendored');\n")
	return root
}

func TestRun_CollectsMatchesInWalkOrder(t *testing.T) {
	root := newTree(t)

	res, err := Run(context.Background(), catalog.Default(), Options{Root: root})
	require.NoError(t, err)

	assert.Equal(t, "my-plugin", res.Project)
	assert.Equal(t, 4, res.FilesScanned)
	require.Equal(t, 5, res.Total)
	require.Len(t, res.Matches, 5)

	// inc/ sorts before plugin.php, vendor/ after it.
	assert.Equal(t, "add_shortcode", res.Matches[0].Function)
	assert.Equal(t, filepath.Join(root, "inc", "shortcodes.php"), res.Matches[0].File)
	assert.Equal(t, "add_action", res.Matches[1].Function)
	assert.Equal(t, 2, res.Matches[1].Line)
	assert.Equal(t, "do_action", res.Matches[2].Function)
	assert.Equal(t, "add_filter", res.Matches[3].Function)
	assert.Equal(t, res.Matches[2].Line, res.Matches[3].Line)
	assert.Equal(t, "vendored", res.Matches[4].HookName)
}

func TestRun_ParallelMatchesSequential(t *testing.T) {
	root := newTree(t)
	for i := 0; i < 20; i++ {
		writeFile(t, root, fmt.Sprintf("gen/f%02d.php", i), fmt.Sprintf("do_action('gen_%d');\n", i))
	}

	seq, err := Run(context.Background(), catalog.Default(), Options{Root: root, Jobs: 1})
	require.NoError(t, err)
	par, err := Run(context.Background(), catalog.Default(), Options{Root: root, Jobs: 8})
	require.NoError(t, err)

	assert.Equal(t, seq.Matches, par.Matches)
	assert.Equal(t, seq.FilesScanned, par.FilesScanned)
}

func TestRun_CategoryFilter(t *testing.T) {
	root := newTree(t)

	res, err := Run(context.Background(), catalog.Default(), Options{Root: root, Category: "Filter"})
	require.NoError(t, err)
	require.Equal(t, 1, res.Total)
	assert.Equal(t, catalog.Filter, res.Matches[0].Category)

	_, err = Run(context.Background(), catalog.Default(), Options{Root: root, Category: "widget"})
	assert.ErrorIs(t, err, catalog.ErrUnknownCategory)
}

func TestRun_Excludes(t *testing.T) {
	root := newTree(t)

	res, err := Run(context.Background(), catalog.Default(), Options{Root: root, ExcludeTypical: true})
	require.NoError(t, err)
	assert.Equal(t, 4, res.Total)
	for _, m := range res.Matches {
		assert.NotContains(t, m.File, "vendor")
	}

	res, err = Run(context.Background(), catalog.Default(), Options{Root: root, Excludes: []string{"inc"}})
	require.NoError(t, err)
	assert.Equal(t, 4, res.Total)
	assert.Equal(t, 2, res.FilesScanned)
}

func TestRun_Extensions(t *testing.T) {
	root := newTree(t)
	writeFile(t, root, "legacy/old.INC", "remove_action('wp_head', 'x');\n")

	res, err := Run(context.Background(), catalog.Default(), Options{Root: root, Extensions: []string{".inc"}})
	require.NoError(t, err)
	require.Equal(t, 1, res.Total)
	assert.Equal(t, "remove_action", res.Matches[0].Function)
}

func TestRun_UnreadableFileIsSkipped(t *testing.T) {
	root := filepath.Join(t.TempDir(), "site")
	writeFile(t, root, "a_broken.php", "do_action('\xff\xfe');\n")
	writeFile(t, root, "b_valid.php", "add_action('init', 'my_func');\n")
	logger := &recordingLogger{}

	res, err := Run(context.Background(), catalog.Default(), Options{Root: root, Logger: logger})
	require.NoError(t, err)
	require.Equal(t, 1, res.Total)
	assert.Equal(t, "init", res.Matches[0].HookName)
	require.Len(t, res.Skipped, 1)
	assert.Equal(t, filepath.Join(root, "a_broken.php"), res.Skipped[0].File)
	require.Len(t, logger.lines, 1)
	assert.Contains(t, logger.lines[0], "a_broken.php")
}

func TestRun_FollowsFileSymlinks(t *testing.T) {
	outside := t.TempDir()
	target := writeFile(t, outside, "shared/hooks.php", "do_action('shared_loaded');\n")
	root := filepath.Join(t.TempDir(), "site")
	writeFile(t, root, "main.php", "add_action('init', 'boot');\n")
	if err := os.Symlink(target, filepath.Join(root, "linked.php")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
	require.NoError(t, os.Symlink(filepath.Join(outside, "shared"), filepath.Join(root, "linked_dir")))
	require.NoError(t, os.Symlink(filepath.Join(outside, "gone.php"), filepath.Join(root, "dangling.php")))

	res, err := Run(context.Background(), catalog.Default(), Options{Root: root})
	require.NoError(t, err)
	assert.Equal(t, 2, res.FilesScanned)
	require.Equal(t, 2, res.Total)
	assert.Equal(t, "shared_loaded", res.Matches[0].HookName)
	assert.Equal(t, filepath.Join(root, "linked.php"), res.Matches[0].File)
	assert.Equal(t, "init", res.Matches[1].HookName)
	require.Len(t, res.Skipped, 1)
	assert.Equal(t, filepath.Join(root, "dangling.php"), res.Skipped[0].File)
}

func TestRun_EmptyFilesContributeNothing(t *testing.T) {
	root := filepath.Join(t.TempDir(), "empty")
	writeFile(t, root, "one.php", "")
	writeFile(t, root, "two.php", "<?php echo 1;")

	res, err := Run(context.Background(), catalog.Default(), Options{Root: root})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Total)
	assert.Empty(t, res.Matches)
	assert.Equal(t, 2, res.FilesScanned)
}

func TestRun_RootErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := Run(context.Background(), catalog.Default(), Options{Root: filepath.Join(dir, "missing")})
	assert.ErrorIs(t, err, os.ErrNotExist)

	file := writeFile(t, dir, "file.php", "")
	_, err = Run(context.Background(), catalog.Default(), Options{Root: file})
	assert.ErrorContains(t, err, "not a directory")
}

func TestRun_CancelledContext(t *testing.T) {
	root := newTree(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, catalog.Default(), Options{Root: root})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestProjectName(t *testing.T) {
	assert.Equal(t, "plugin", ProjectName("/srv/www/plugin"))
	assert.Equal(t, "plugin", ProjectName("/srv/www/plugin/"))
	assert.Equal(t, "hookspot", ProjectName("/"))
}

func TestHasExtension(t *testing.T) {
	assert.True(t, HasExtension("a/b.PHP", []string{".php"}))
	assert.False(t, HasExtension("a/b.php.txt", []string{".php"}))
	assert.False(t, HasExtension("Makefile", []string{".php"}))
}

func TestIsExcluded(t *testing.T) {
	assert.True(t, isExcluded("vendor", []string{"vendor"}))
	assert.True(t, isExcluded("a/node_modules", []string{"node_modules/"}))
	assert.True(t, isExcluded("tests/fixture.php", []string{"tests/*.php"}))
	assert.False(t, isExcluded("src/main.php", []string{"tests/*"}))
	assert.False(t, isExcluded("src/main.php", nil))
}

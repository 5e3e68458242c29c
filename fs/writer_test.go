package fs_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/fwojciec/urlinfo"
	"github.com/fwojciec/urlinfo/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_ImplementsInterface(t *testing.T) {
	t.Parallel()

	var _ urlinfo.ReportWriter = &fs.Writer{}
}

func TestNewWriter(t *testing.T) {
	t.Parallel()

	t.Run("defaults to html/scraped.txt", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "html/scraped.txt", fs.NewWriter("").Path())
	})

	t.Run("keeps configured path", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "/tmp/report.txt", fs.NewWriter("/tmp/report.txt").Path())
	})
}

func TestWriter_WriteReport(t *testing.T) {
	t.Parallel()

	t.Run("writes content and creates parent directories", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "html", "scraped.txt")
		w := fs.NewWriter(path)

		err := w.WriteReport(context.Background(), "--- SOURCE URL ---\nhttps://example.com\n")

		require.NoError(t, err)
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "--- SOURCE URL ---\nhttps://example.com\n", string(content))
	})

	t.Run("replaces previous report instead of appending", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "scraped.txt")
		require.NoError(t, os.WriteFile(path, []byte("a much longer stale report body"), 0644))
		w := fs.NewWriter(path)

		err := w.WriteReport(context.Background(), "fresh")

		require.NoError(t, err)
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "fresh", string(content))
	})

	t.Run("tolerates missing previous report", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "never-written.txt")

		err := fs.NewWriter(path).WriteReport(context.Background(), "content")

		require.NoError(t, err)
	})

	t.Run("returns EPERSIST when the path cannot be written", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		blocker := filepath.Join(dir, "blocker")
		require.NoError(t, os.WriteFile(blocker, []byte("file, not a directory"), 0644))

		err := fs.NewWriter(filepath.Join(blocker, "scraped.txt")).WriteReport(context.Background(), "content")

		require.Error(t, err)
		assert.Equal(t, urlinfo.EPERSIST, urlinfo.ErrorCode(err))
	})

	t.Run("serializes concurrent writers to the same path", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "scraped.txt")

		var wg sync.WaitGroup
		errs := make(chan error, 20)
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				content := strings.Repeat(fmt.Sprintf("writer-%02d\n", i), 100)
				errs <- fs.NewWriter(path).WriteReport(context.Background(), content)
			}(i)
		}
		wg.Wait()
		close(errs)

		for err := range errs {
			require.NoError(t, err)
		}

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSuffix(string(content), "\n"), "\n")
		require.Len(t, lines, 100)
		for _, line := range lines {
			assert.Equal(t, lines[0], line, "report must come from a single writer")
		}
	})
}

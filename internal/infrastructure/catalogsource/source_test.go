package catalogsource

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/yuzvak/nhh-storefront/internal/domain/pricing"
	"github.com/yuzvak/nhh-storefront/internal/pkg/logger"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func page(names ...string) string {
	html := `<html><body><div class="hw-product-panel" id="hw-prod-tools_hand_tools">`
	for _, n := range names {
		html += `<div class="hw-product-item"><span class="hw-product-name">` + n +
			`</span><button class="hw-product-cta">Add</button></div>`
	}
	return html + `</div></body></html>`
}

func writePage(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hardware.html")
	writePage(t, path, page("Claw Hammer", "Lump Hammer"))

	s := NewFileSource(path, pricing.DefaultTable(), logger.NewNop())
	assert.Equal(t, 0, s.Catalog().Len())

	require.NoError(t, s.Reload())
	assert.Equal(t, 2, s.Catalog().Len())

	_, ok := s.Catalog().Lookup("Claw Hammer")
	assert.True(t, ok)
}

func TestReloadFailureKeepsCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hardware.html")
	writePage(t, path, page("Claw Hammer"))

	s := NewFileSource(path, pricing.DefaultTable(), logger.NewNop())
	require.NoError(t, s.Reload())

	require.NoError(t, os.Remove(path))
	assert.Error(t, s.Reload())
	assert.Equal(t, 1, s.Catalog().Len())
}

func TestWatchPicksUpChanges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hardware.html")
	writePage(t, path, page("Claw Hammer"))

	s := NewFileSource(path, pricing.DefaultTable(), logger.NewNop())
	require.NoError(t, s.Reload())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Watch(ctx) }()
	defer func() {
		cancel()
		require.NoError(t, <-done)
	}()

	// give the watcher time to register
	time.Sleep(100 * time.Millisecond)
	writePage(t, path, page("Claw Hammer", "Lump Hammer", "Sledge Hammer"))

	assert.Eventually(t, func() bool {
		return s.Catalog().Len() == 3
	}, 5*time.Second, 50*time.Millisecond)
}

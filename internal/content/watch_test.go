package content

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reload struct {
	p   *Portfolio
	err error
}

func startWatch(t *testing.T, path string) <-chan reload {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	got := make(chan reload, 4)
	done := make(chan struct{})
	go func() {
		defer close(done)
		err := Watch(ctx, path, 20*time.Millisecond, func(p *Portfolio, err error) {
			got <- reload{p, err}
		})
		assert.NoError(t, err)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
	// Let the watcher register before the test writes.
	time.Sleep(50 * time.Millisecond)
	return got
}

func waitReload(t *testing.T, ch <-chan reload) reload {
	t.Helper()
	select {
	case r := <-ch:
		return r
	case <-time.After(5 * time.Second):
		t.Fatal("no reload")
		return reload{}
	}
}

func TestWatch_ReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "folio.yaml")
	require.NoError(t, os.WriteFile(path, []byte("profile:\n  name: First\n"), 0o644))
	ch := startWatch(t, path)

	require.NoError(t, os.WriteFile(path, []byte("profile:\n  name: Second\n"), 0o644))
	r := waitReload(t, ch)
	require.NoError(t, r.err)
	assert.Equal(t, "Second", r.p.Profile.Name)
}

func TestWatch_ReportsInvalidContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "folio.yaml")
	require.NoError(t, os.WriteFile(path, []byte("profile:\n  name: First\n"), 0o644))
	ch := startWatch(t, path)

	require.NoError(t, os.WriteFile(path, []byte("profile:\n  name: \"\"\n"), 0o644))
	r := waitReload(t, ch)
	assert.Error(t, r.err)
	assert.Nil(t, r.p)
}

func TestWatch_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "folio.yaml")
	require.NoError(t, os.WriteFile(path, []byte("profile:\n  name: First\n"), 0o644))
	ch := startWatch(t, path)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x"), 0o644))
	select {
	case r := <-ch:
		t.Fatalf("unexpected reload: %+v", r)
	case <-time.After(200 * time.Millisecond):
	}
}

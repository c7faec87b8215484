package cache

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/wordhunt/pkg/observability"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}
	if _, hit, _ = c.Get(ctx, "key"); hit {
		t.Error("NullCache should not store data")
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()

	if _, hit, err := c.Get(ctx, "missing"); hit || err != nil {
		t.Errorf("Get(missing) = %v, %v, want miss", hit, err)
	}

	if err := c.Set(ctx, "k", []byte("<svg/>"), time.Hour); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	data, hit, err := c.Get(ctx, "k")
	if err != nil || !hit {
		t.Fatalf("Get(k) = %v, %v, want hit", hit, err)
	}
	if string(data) != "<svg/>" {
		t.Errorf("Get(k) = %q, want %q", data, "<svg/>")
	}

	if err := c.Delete(ctx, "k"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
	if err := c.Delete(ctx, "k"); err != nil {
		t.Errorf("second Delete error: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("Get after Delete should miss")
	}
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())

	if err := c.Set(ctx, "short", []byte("x"), time.Millisecond); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	time.Sleep(10 * time.Millisecond)
	if _, hit, _ := c.Get(ctx, "short"); hit {
		t.Error("expired entry should miss")
	}
	if _, err := os.Stat(c.path("short")); !os.IsNotExist(err) {
		t.Error("expired entry file should be removed")
	}

	if err := c.Set(ctx, "forever", []byte("y"), 0); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "forever"); !hit {
		t.Error("zero ttl entry should not expire")
	}
}

func TestFileCacheCorruptEntry(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())
	path := c.path("bad")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, hit, err := c.Get(ctx, "bad"); hit || err != nil {
		t.Errorf("Get(bad) = %v, %v, want silent miss", hit, err)
	}
}

func TestFileCacheClear(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())
	for _, k := range []string{"a", "b", "c"} {
		if err := c.Set(ctx, k, []byte(k), time.Hour); err != nil {
			t.Fatal(err)
		}
	}
	n, err := c.Clear()
	if err != nil {
		t.Fatalf("Clear error: %v", err)
	}
	if n != 3 {
		t.Errorf("Clear() = %d, want 3", n)
	}
	entries, _ := os.ReadDir(c.Dir())
	if len(entries) != 0 {
		t.Errorf("cache dir has %d entries after Clear, want 0", len(entries))
	}
}

func TestFileCacheClearKeepsForeignFiles(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	foreign := []string{
		"notes.txt",
		filepath.Join("project", "main.go"),
		filepath.Join("ab", "readme.json"),
	}
	for _, name := range foreign {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("keep"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	c, _ := NewFileCache(dir)
	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Fatal(err)
	}
	entry := c.path("key")

	n, err := c.Clear()
	if err != nil {
		t.Fatalf("Clear error: %v", err)
	}
	if n != 1 {
		t.Errorf("Clear() = %d, want 1", n)
	}
	for _, name := range foreign {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("%s should survive Clear: %v", name, err)
		}
	}
	if _, err := os.Stat(entry); !os.IsNotExist(err) {
		t.Errorf("entry %s should be removed, stat err = %v", entry, err)
	}
	if shard := filepath.Dir(entry); filepath.Base(shard) != "ab" {
		if _, err := os.Stat(shard); !os.IsNotExist(err) {
			t.Errorf("empty shard %s should be removed", shard)
		}
	}
}

func TestFileCacheClearKeepsLookalikeFiles(t *testing.T) {
	dir := t.TempDir()
	c, _ := NewFileCache(dir)
	path := c.path("key")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(`{"name": "not an entry"}`), 0644); err != nil {
		t.Fatal(err)
	}

	n, err := c.Clear()
	if err != nil || n != 0 {
		t.Errorf("Clear() = %d, %v, want 0, nil", n, err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("file without entry fields should survive Clear: %v", err)
	}
}

func TestFileCacheClearMissingDir(t *testing.T) {
	c := &FileCache{dir: filepath.Join(t.TempDir(), "gone")}
	if n, err := c.Clear(); n != 0 || err != nil {
		t.Errorf("Clear() = %d, %v, want 0, nil", n, err)
	}
}

func TestFetch(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())

	calls := 0
	compute := func() ([]byte, error) {
		calls++
		return []byte("rendered"), nil
	}

	data, hit, err := Fetch(ctx, c, "key", time.Hour, compute)
	if err != nil || hit || string(data) != "rendered" {
		t.Fatalf("first Fetch = %q, %v, %v", data, hit, err)
	}
	data, hit, err = Fetch(ctx, c, "key", time.Hour, compute)
	if err != nil || !hit || string(data) != "rendered" {
		t.Fatalf("second Fetch = %q, %v, %v", data, hit, err)
	}
	if calls != 1 {
		t.Errorf("compute called %d times, want 1", calls)
	}

	boom := errors.New("boom")
	if _, _, err := Fetch(ctx, NewNullCache(), "key", time.Hour, func() ([]byte, error) { return nil, boom }); !errors.Is(err, boom) {
		t.Errorf("Fetch error = %v, want boom", err)
	}
}

func TestLoadMiss(t *testing.T) {
	if _, err := Load(context.Background(), NewNullCache(), "k"); !errors.Is(err, ErrCacheMiss) {
		t.Errorf("Load error = %v, want ErrCacheMiss", err)
	}
}

func TestHash(t *testing.T) {
	h1 := Hash([]byte("hello"))
	if h1 != Hash([]byte("hello")) {
		t.Error("Hash should be deterministic")
	}
	if h1 == Hash([]byte("world")) {
		t.Error("Different inputs should produce different hashes")
	}
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
	if HashStrings([]string{"ab", "cd"}) != Hash([]byte("ab\ncd\n")) {
		t.Error("HashStrings should hash newline-terminated lines")
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	k1 := k.RenderKey("grid", "abc", RenderKeyOpts{Format: "svg"})
	k2 := k.RenderKey("grid", "abc", RenderKeyOpts{Format: "dot"})
	k3 := k.RenderKey("trie", "abc", RenderKeyOpts{Format: "svg"})
	if k1 == k2 || k1 == k3 {
		t.Errorf("keys should differ: %s %s %s", k1, k2, k3)
	}
	if !strings.HasPrefix(k1, "render:grid:") {
		t.Errorf("RenderKey = %s, want render:grid: prefix", k1)
	}
	if k1 != k.RenderKey("grid", "abc", RenderKeyOpts{Format: "svg"}) {
		t.Error("RenderKey should be deterministic")
	}
}

func TestScopedKeyer(t *testing.T) {
	scoped := NewScopedKeyer(nil, "wordhunt:dev:")
	key := scoped.RenderKey("grid", "abc", RenderKeyOpts{Format: "svg"})
	want := "wordhunt:dev:" + NewDefaultKeyer().RenderKey("grid", "abc", RenderKeyOpts{Format: "svg"})
	if key != want {
		t.Errorf("RenderKey = %s, want %s", key, want)
	}
	if p := scoped.(*ScopedKeyer).Prefix(); p != "wordhunt:dev:" {
		t.Errorf("Prefix() = %q", p)
	}
}

func TestRetryableError(t *testing.T) {
	if Retryable(nil) != nil {
		t.Error("Retryable(nil) should return nil")
	}
	err := Retryable(ErrNetwork)
	if !IsRetryable(err) {
		t.Error("IsRetryable should return true for wrapped error")
	}
	if !errors.Is(err, ErrNetwork) {
		t.Error("Retryable should unwrap to the original error")
	}
	if IsRetryable(ErrCacheMiss) {
		t.Error("IsRetryable should return false for unwrapped error")
	}
}

func TestRetryWithBackoff(t *testing.T) {
	old := retryDelay
	retryDelay = time.Millisecond
	defer func() { retryDelay = old }()

	ctx := context.Background()

	calls := 0
	err := RetryWithBackoff(ctx, func() error {
		calls++
		return ErrCacheMiss
	})
	if err != ErrCacheMiss || calls != 1 {
		t.Errorf("non-retryable: err = %v, calls = %d", err, calls)
	}

	calls = 0
	err = RetryWithBackoff(ctx, func() error {
		calls++
		if calls < 2 {
			return Retryable(ErrNetwork)
		}
		return nil
	})
	if err != nil || calls != 2 {
		t.Errorf("retry once: err = %v, calls = %d", err, calls)
	}

	calls = 0
	err = RetryWithBackoff(ctx, func() error {
		calls++
		return Retryable(ErrNetwork)
	})
	if !IsRetryable(err) || calls != 3 {
		t.Errorf("exhausted: err = %v, calls = %d", err, calls)
	}
}

func TestRetryWithBackoffContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := RetryWithBackoff(ctx, func() error {
		return Retryable(ErrNetwork)
	})
	if err != context.Canceled {
		t.Errorf("Should return context error: %v", err)
	}
}

type countingHooks struct {
	observability.NoopCacheHooks
	hits, misses, sets, bytes int
}

func (h *countingHooks) OnCacheHit(context.Context, string)  { h.hits++ }
func (h *countingHooks) OnCacheMiss(context.Context, string) { h.misses++ }
func (h *countingHooks) OnCacheSet(_ context.Context, _ string, size int) {
	h.sets++
	h.bytes += size
}

func TestInstrument(t *testing.T) {
	hooks := &countingHooks{}
	observability.SetCacheHooks(hooks)
	defer observability.Reset()

	ctx := context.Background()
	fc, _ := NewFileCache(t.TempDir())
	c := Instrument(fc, "render")

	_, _, _ = c.Get(ctx, "k")
	_ = c.Set(ctx, "k", []byte("abcd"), time.Hour)
	_, _, _ = c.Get(ctx, "k")

	if hooks.hits != 1 || hooks.misses != 1 || hooks.sets != 1 || hooks.bytes != 4 {
		t.Errorf("hooks = %+v, want 1 hit, 1 miss, 1 set of 4 bytes", *hooks)
	}
}

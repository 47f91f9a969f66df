package assets

import (
	"context"
	"testing"
	"testing/fstest"
)

func testSource() fstest.MapFS {
	return fstest.MapFS{
		"app.a1b2.css":    {Data: []byte("body{}")},
		"client.c3d4.js":  {Data: []byte("//js")},
		"favicon.ico":     {Data: []byte{0x00}},
		"unreferenced.js": {Data: []byte("//never cached")},
	}
}

func testManifest() *Manifest {
	return NewManifest(map[string]string{
		"app.css":     "app.a1b2.css",
		"client.js":   "client.c3d4.js",
		"favicon.ico": "favicon.ico",
	})
}

func TestManifestResolve(t *testing.T) {
	m := testManifest()

	if got := m.Resolve("app.css"); got != "app.a1b2.css" {
		t.Errorf("got %q, want app.a1b2.css", got)
	}
	if got := m.Resolve("other.txt"); got != "other.txt" {
		t.Errorf("unknown names resolve to themselves, got %q", got)
	}
	if !m.Has("client.js") || m.Has("nope") {
		t.Error("Has mismatch")
	}
	if m.Len() != 3 {
		t.Errorf("len = %d, want 3", m.Len())
	}
}

func TestInstallAndFetch(t *testing.T) {
	c := NewCache("v1", testSource(), testManifest())

	if err := c.Install(context.Background()); err != nil {
		t.Fatalf("install: %v", err)
	}

	data, ctype, err := c.Fetch("app.css")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if string(data) != "body{}" {
		t.Errorf("data = %q", data)
	}
	if ctype != "text/css; charset=utf-8" {
		t.Errorf("content type = %q", ctype)
	}

	// Fetch by resolved path works too.
	if _, _, err := c.Fetch("client.c3d4.js"); err != nil {
		t.Errorf("fetch by path: %v", err)
	}
}

func TestFetchOutsideManifest(t *testing.T) {
	c := NewCache("v1", testSource(), testManifest())
	c.Install(context.Background())

	// Present in the source tree but never installed.
	if _, _, err := c.Fetch("unreferenced.js"); err == nil {
		t.Error("uninstalled asset must not be fetchable")
	}
}

func TestInstallFailsOnMissingAsset(t *testing.T) {
	manifest := NewManifest(map[string]string{
		"app.css": "app.a1b2.css",
		"gone.js": "gone.js",
	})
	c := NewCache("v1", testSource(), manifest)

	if err := c.Install(context.Background()); err == nil {
		t.Fatal("install with a missing asset must fail")
	}
	// The partial cache must not serve.
	if _, _, err := c.Fetch("app.css"); err == nil {
		t.Error("failed install must not leave a fetchable cache")
	}
}

func TestActivatePurgesStaleCaches(t *testing.T) {
	c := NewCache("v2", testSource(), testManifest())
	c.adoptStale("v1", map[string][]byte{"old.css": []byte("x")})

	c.Install(context.Background())
	if got := len(c.CacheNames()); got != 2 {
		t.Fatalf("caches before activate = %d, want 2", got)
	}

	if err := c.Activate(context.Background()); err != nil {
		t.Fatalf("activate: %v", err)
	}
	names := c.CacheNames()
	if len(names) != 1 || names[0] != "liftlog-v2" {
		t.Errorf("caches after activate = %v, want [liftlog-v2]", names)
	}
}

func TestInstallHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewCache("v1", testSource(), testManifest())
	if err := c.Install(ctx); err == nil {
		t.Error("install with canceled context must fail")
	}
}

func TestContentTypes(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"a.css", "text/css; charset=utf-8"},
		{"a.js", "text/javascript; charset=utf-8"},
		{"a.json", "application/json"},
		{"a.svg", "image/svg+xml"},
		{"a.bin", "application/octet-stream"},
	}
	for _, tt := range tests {
		if got := contentType(tt.path); got != tt.want {
			t.Errorf("contentType(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

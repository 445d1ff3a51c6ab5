package server

import (
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/toastate/icongen/internal/tlogger"
	"github.com/toastate/icongen/pkg/config"
)

const arrowLeft = `<svg xmlns="http://www.w3.org/2000/svg" width="24" height="24" viewBox="0 0 24 24"><path fill="black" d="M15 18l-6-6 6-6z"/></svg>`

func newTestServer(t *testing.T) *Server {
	t.Helper()
	tlogger.SetOutput(io.Discard)

	icons := t.TempDir()
	dir := filepath.Join(icons, "filled")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "arrow-left.svg"), []byte(arrowLeft), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	s := NewServer(icons, t.TempDir(), "0", config.DefaultConfiguration())
	if err := s.generator.Generate(); err != nil {
		t.Fatalf("generate: %v", err)
	}
	return s
}

func get(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestSVGWithColor(t *testing.T) {
	s := newTestServer(t)

	rec := get(t, s, "/icons/filled/arrow-left.svg?color=red&size=48")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Fatalf("unexpected content type %q", ct)
	}
	body := rec.Body.String()
	for _, want := range []string{`width="48"`, `height="48"`, `fill="red"`, `stroke="red"`} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected %s in\n%s", want, body)
		}
	}
	if strings.Contains(body, "black") {
		t.Fatalf("source color leaked into\n%s", body)
	}
}

func TestSVGDefaults(t *testing.T) {
	s := newTestServer(t)

	body := get(t, s, "/icons/filled/arrow-left.svg").Body.String()
	if !strings.Contains(body, `width="24"`) || !strings.Contains(body, `fill="currentColor"`) {
		t.Fatalf("unexpected default rendering\n%s", body)
	}
}

func TestUnknownIcon(t *testing.T) {
	s := newTestServer(t)

	for _, target := range []string{
		"/icons/filled/bell.svg",
		"/icons/light/arrow-left.svg",
		"/icons/nope/arrow-left.png",
	} {
		if rec := get(t, s, target); rec.Code != http.StatusNotFound {
			t.Fatalf("%s: expected 404, got %d", target, rec.Code)
		}
	}
}

func TestInvalidParameters(t *testing.T) {
	s := newTestServer(t)

	for _, target := range []string{
		"/icons/filled/arrow-left.svg?size=0",
		"/icons/filled/arrow-left.svg?size=big",
		"/icons/filled/arrow-left.svg?size=4096",
		`/icons/filled/arrow-left.svg?color=%22%3E%3Cscript%3E`,
	} {
		if rec := get(t, s, target); rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", target, rec.Code)
		}
	}
}

func TestPNG(t *testing.T) {
	s := newTestServer(t)

	rec := get(t, s, "/icons/filled/arrow-left.png?color=red&size=32")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Fatalf("unexpected content type %q", ct)
	}
	img, err := png.Decode(rec.Body)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 32 || b.Dy() != 32 {
		t.Fatalf("unexpected bounds %v", b)
	}
}

func TestGallery(t *testing.T) {
	s := newTestServer(t)

	rec := get(t, s, "/?color=blue")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "/icons/filled/arrow-left.svg?color=blue") {
		t.Fatalf("gallery misses the icon\n%s", body)
	}
	if !strings.Contains(body, "<code>ArrowLeft</code>") {
		t.Fatalf("gallery misses the component name\n%s", body)
	}
}

func TestNotGeneratedYet(t *testing.T) {
	tlogger.SetOutput(io.Discard)
	s := NewServer(t.TempDir(), t.TempDir(), "0", config.DefaultConfiguration())

	if rec := get(t, s, "/icons/filled/arrow-left.svg"); rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}

func TestBroker(t *testing.T) {
	b := newBroker()
	go b.Start()
	defer b.Stop()

	first, second := b.Subscribe(), b.Subscribe()
	b.Publish("reload")

	for _, ch := range []chan interface{}{first, second} {
		select {
		case msg := <-ch:
			if msg != "reload" {
				t.Fatalf("unexpected message %v", msg)
			}
		case <-time.After(5 * time.Second):
			t.Fatal("subscriber got nothing")
		}
	}
}

func TestLiveReload(t *testing.T) {
	s := newTestServer(t)
	ts := httptest.NewServer(s.Router())
	defer ts.Close()

	c, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(ts.URL, "http")+"/__internal/livereload", nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer c.Close()

	// the handler subscribes after the upgrade, publish until it is listening
	done := make(chan struct{})
	defer close(done)
	go func() {
		ticker := time.NewTicker(50 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				s.TriggerReload()
			}
		}
	}()

	c.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, msg, err := c.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(msg) != "reload" {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestLiveReloadClientGone(t *testing.T) {
	s := newTestServer(t)
	ts := httptest.NewServer(s.Router())
	defer ts.Close()

	waitSubscribers := func(want int) {
		t.Helper()
		deadline := time.Now().Add(5 * time.Second)
		for s.reloadBroker.Subscribers() != want {
			if time.Now().After(deadline) {
				t.Fatalf("expected %d subscribers, got %d", want, s.reloadBroker.Subscribers())
			}
			time.Sleep(20 * time.Millisecond)
		}
	}

	c, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(ts.URL, "http")+"/__internal/livereload", nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	waitSubscribers(1)

	c.Close()
	waitSubscribers(0)
}

package server

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/asif-cs/portfolio/internal/content"
	"github.com/asif-cs/portfolio/internal/db"
	"github.com/asif-cs/portfolio/internal/interact"
	"github.com/asif-cs/portfolio/internal/prefs"
)

var sessionRe = regexp.MustCompile(`data-live="/ws\?session=([0-9a-f-]+)"`)

func loadGraph(t *testing.T) *content.Graph {
	t.Helper()
	g, err := content.Load("../content/testdata/portfolio.json")
	if err != nil {
		t.Fatalf("loading fixture: %v", err)
	}
	return g
}

func newTestServer(t *testing.T, cfg Config) (*Server, *db.DB) {
	t.Helper()
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	srv := New(cfg, database, loadGraph(t), nil)
	t.Cleanup(func() {
		srv.Shutdown(context.Background())
		database.Close()
	})
	return srv, database
}

// openPage loads the page through client and returns its html and session id.
func openPage(t *testing.T, client *http.Client, base string, header http.Header) (string, string) {
	t.Helper()
	req, _ := http.NewRequest("GET", base+"/", nil)
	for k, v := range header {
		req.Header[k] = v
	}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("GET /: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET / status %d", resp.StatusCode)
	}
	m := sessionRe.FindStringSubmatch(string(body))
	if m == nil {
		t.Fatal("page has no live session attribute")
	}
	return string(body), m[1]
}

func dial(t *testing.T, base, session string) *websocket.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(base, "http") + "/ws?session=" + session
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("websocket dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func sendEvent(t *testing.T, conn *websocket.Conn, typ string, data any) {
	t.Helper()
	raw, _ := json.Marshal(data)
	if err := conn.WriteJSON(inbound{Type: typ, Data: raw}); err != nil {
		t.Fatalf("write: %v", err)
	}
}

// readUntil reads messages until match accepts one.
func readUntil(t *testing.T, conn *websocket.Conn, match func(outbound) bool) outbound {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	for {
		var msg outbound
		if err := conn.ReadJSON(&msg); err != nil {
			t.Fatalf("read: %v", err)
		}
		if match(msg) {
			return msg
		}
	}
}

func patchFor(msg outbound, id string) (map[string]string, bool) {
	for _, p := range msg.Patches {
		if p.ID == id {
			return p.Attrs, true
		}
	}
	return nil, false
}

func TestHealthCheck(t *testing.T) {
	srv, _ := newTestServer(t, Config{})

	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status 'ok', got %v", body["status"])
	}
	if body["sessions"] != float64(0) {
		t.Errorf("expected 0 sessions, got %v", body["sessions"])
	}
}

func TestCORSHeaders(t *testing.T) {
	srv, _ := newTestServer(t, Config{AllowAll: true})

	req := httptest.NewRequest("OPTIONS", "/healthz", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("expected CORS Allow-Origin header")
	}
}

func TestPageIssuesClientCookie(t *testing.T) {
	srv, database := newTestServer(t, Config{})

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	cookies := w.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != clientCookie {
		t.Fatalf("expected client cookie, got %v", cookies)
	}

	var n int
	if err := database.QueryRow(`SELECT COUNT(*) FROM clients WHERE id = ?`, cookies[0].Value).Scan(&n); err != nil {
		t.Fatalf("query: %v", err)
	}
	if n != 1 {
		t.Errorf("client row count = %d, want 1", n)
	}

	body := w.Body.String()
	for _, want := range []string{`href="/style.css"`, `src="/script.js"`, `data-theme="light"`} {
		if !strings.Contains(body, want) {
			t.Errorf("page missing %q", want)
		}
	}

	// A returning client keeps its id.
	req = httptest.NewRequest("GET", "/", nil)
	req.AddCookie(cookies[0])
	w = httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	if len(w.Result().Cookies()) != 0 {
		t.Error("returning client should not be issued a new cookie")
	}
}

func TestPageFollowsColorSchemeHint(t *testing.T) {
	srv, _ := newTestServer(t, Config{})

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(colorSchemeHint, "dark")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if !strings.Contains(w.Body.String(), `data-theme="dark"`) {
		t.Error("expected dark theme from client hint")
	}
	if w.Header().Get("Accept-CH") != colorSchemeHint {
		t.Errorf("Accept-CH = %q", w.Header().Get("Accept-CH"))
	}
}

func TestStaticFiles(t *testing.T) {
	assets := t.TempDir()
	if err := os.MkdirAll(filepath.Join(assets, "images"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(assets, "images", "me.jpg"), []byte("jpeg"), 0o644); err != nil {
		t.Fatal(err)
	}
	srv, _ := newTestServer(t, Config{AssetsDir: assets})

	for path, want := range map[string]string{
		"/style.css":      "text/css",
		"/script.js":      "text/javascript",
		"/portfolio.json": "application/json",
		"/images/me.jpg":  "image/jpeg",
	} {
		w := httptest.NewRecorder()
		srv.Router().ServeHTTP(w, httptest.NewRequest("GET", path, nil))
		if w.Code != http.StatusOK {
			t.Errorf("%s: status %d", path, w.Code)
			continue
		}
		if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, want) {
			t.Errorf("%s: Content-Type %q, want %q", path, ct, want)
		}
	}
}

func TestWebSocketDrivesEngine(t *testing.T) {
	srv, database := newTestServer(t, Config{})
	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	jar, _ := cookiejar.New(nil)
	client := &http.Client{Jar: jar}
	_, session := openPage(t, client, ts.URL, nil)

	conn := dial(t, ts.URL, session)
	sendEvent(t, conn, "click", interact.Click{Target: "theme-toggle"})

	msg := readUntil(t, conn, func(m outbound) bool {
		_, ok := patchFor(m, "page-body")
		return m.Type == "update" && ok
	})
	attrs, _ := patchFor(msg, "page-body")
	if attrs["data-theme"] != "dark" {
		t.Errorf("data-theme = %q, want dark", attrs["data-theme"])
	}
	if srv.Sessions() != 1 {
		t.Errorf("Sessions() = %d, want 1", srv.Sessions())
	}

	// The choice is persisted for this client.
	u, _ := url.Parse(ts.URL)
	clientID := jar.Cookies(u)[0].Value
	v, ok, err := prefs.NewSQLiteStore(database).ForClient(clientID).Get(context.Background(), prefs.ThemeKey)
	if err != nil || !ok || v != "dark" {
		t.Errorf("stored theme = %q, %v, %v", v, ok, err)
	}

	// And applies to the next page view.
	html, _ := openPage(t, client, ts.URL, nil)
	if !strings.Contains(html, `data-theme="dark"`) {
		t.Error("persisted theme not applied on reload")
	}
}

func TestWebSocketEffects(t *testing.T) {
	srv, _ := newTestServer(t, Config{})
	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	_, session := openPage(t, ts.Client(), ts.URL, nil)
	conn := dial(t, ts.URL, session)

	sendEvent(t, conn, "submit", interact.Submit{Form: "contact-form", Fields: map[string]string{"message": "hi there"}})
	msg := readUntil(t, conn, func(m outbound) bool { return len(m.Effects) > 0 })
	fx := msg.Effects[0]
	if fx.Type != "navigate" || fx.URL != "mailto:rana@example.com?subject=Inquiry%20from%20Portfolio&body=hi%20there" {
		t.Errorf("effect = %+v", fx)
	}
	cleared := false
	for _, p := range msg.Patches {
		if p.ID == "contact-message" && p.HTML != nil && *p.HTML == "" {
			cleared = true
		}
	}
	if !cleared {
		t.Errorf("submit did not clear the message field: %+v", msg.Patches)
	}

	sendEvent(t, conn, "garbage", nil)
	sendEvent(t, conn, "click", interact.Click{Target: "back-to-top"})
	msg = readUntil(t, conn, func(m outbound) bool { return len(m.Effects) > 0 })
	if msg.Effects[0].Type != "scroll" || msg.Effects[0].Top != 0 || !msg.Effects[0].Smooth {
		t.Errorf("effect = %+v", msg.Effects[0])
	}
}

func TestWebSocketRejectsUnknownSession(t *testing.T) {
	srv, _ := newTestServer(t, Config{})
	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws?session=nope"
	_, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err == nil {
		t.Fatal("expected dial to fail")
	}
	if resp == nil || resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404, got %v", resp)
	}
}

func TestWebSocketSessionIsSingleUse(t *testing.T) {
	srv, _ := newTestServer(t, Config{})
	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	_, session := openPage(t, ts.Client(), ts.URL, nil)
	dial(t, ts.URL, session)

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws?session=" + session
	if _, _, err := websocket.DefaultDialer.Dial(wsURL, nil); err == nil {
		t.Fatal("second connection to the same session should fail")
	}
}

func TestSetGraphBroadcastsReload(t *testing.T) {
	srv, _ := newTestServer(t, Config{})
	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	_, session := openPage(t, ts.Client(), ts.URL, nil)
	conn := dial(t, ts.URL, session)

	// Wait until the session is live before changing content.
	sendEvent(t, conn, "click", interact.Click{Target: "hamburger"})
	readUntil(t, conn, func(m outbound) bool { _, ok := patchFor(m, "hamburger"); return ok })

	g := loadGraph(t)
	g.PersonalInfo.Name = "Someone Else"
	srv.SetGraph(g)

	readUntil(t, conn, func(m outbound) bool { return m.Type == "reload" })
	if srv.Graph().PersonalInfo.Name != "Someone Else" {
		t.Error("graph not replaced")
	}
}

func TestUnclaimedSessionsExpire(t *testing.T) {
	srv, _ := newTestServer(t, Config{SessionTTL: 50 * time.Millisecond})

	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, httptest.NewRequest("GET", "/", nil))
	m := sessionRe.FindStringSubmatch(w.Body.String())
	if m == nil {
		t.Fatal("no session id")
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if _, ok := srv.pending.Get(m[1]); !ok {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Error("pending session was not discarded")
}

func TestServeShutsDownOnCancel(t *testing.T) {
	srv, _ := newTestServer(t, Config{})
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	resp.Body.Close()

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}

func TestWatchReloadsContent(t *testing.T) {
	dir := t.TempDir()
	contentFile := filepath.Join(dir, "portfolio.json")
	if err := content.Save(contentFile, loadGraph(t)); err != nil {
		t.Fatal(err)
	}

	srv, _ := newTestServer(t, Config{ContentFile: contentFile, Watch: true})
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go srv.Serve(ctx, ln)

	base := "http://" + ln.Addr().String()
	var session string
	for i := 0; i < 50; i++ {
		if resp, err := http.Get(base + "/healthz"); err == nil {
			resp.Body.Close()
			break
		}
		time.Sleep(20 * time.Millisecond)
	}
	_, session = openPage(t, http.DefaultClient, base, nil)
	conn := dial(t, base, session)
	sendEvent(t, conn, "click", interact.Click{Target: "hamburger"})
	readUntil(t, conn, func(m outbound) bool { _, ok := patchFor(m, "hamburger"); return ok })

	g := loadGraph(t)
	g.PersonalInfo.Name = "Edited Name"
	if err := content.Save(contentFile, g); err != nil {
		t.Fatal(err)
	}

	readUntil(t, conn, func(m outbound) bool { return m.Type == "reload" })
	if got := srv.Graph().PersonalInfo.Name; got != "Edited Name" {
		t.Errorf("name after reload = %q", got)
	}
}

func TestDecodeEvent(t *testing.T) {
	tests := []struct {
		msg  string
		want interact.Event
	}{
		{`{"type":"click","data":{"target":"a","focused":"b"}}`, interact.Click{Target: "a", Focused: "b"}},
		{`{"type":"key","data":{"key":"Escape"}}`, interact.Key{Key: "Escape"}},
		{`{"type":"scroll","data":{"y":120.5}}`, interact.Scroll{Y: 120.5}},
		{`{"type":"focus","data":{"target":"x"}}`, interact.Focus{Target: "x"}},
	}
	for _, tt := range tests {
		got, err := decodeEvent([]byte(tt.msg))
		if err != nil {
			t.Errorf("decodeEvent(%s): %v", tt.msg, err)
			continue
		}
		if got != tt.want {
			t.Errorf("decodeEvent(%s) = %#v, want %#v", tt.msg, got, tt.want)
		}
	}

	ev, err := decodeEvent([]byte(`{"type":"resize","data":{"width":800,"height":600,"layout":[{"id":"about","top":0,"height":400}]}}`))
	if err != nil {
		t.Fatalf("resize: %v", err)
	}
	r := ev.(interact.Resize)
	if r.Width != 800 || len(r.Layout) != 1 || r.Layout[0].ID != "about" {
		t.Errorf("resize = %+v", r)
	}

	for _, bad := range []string{`not json`, `{"type":"hover"}`, `{"type":"click","data":"oops"}`} {
		if _, err := decodeEvent([]byte(bad)); err == nil {
			t.Errorf("decodeEvent(%s) should fail", bad)
		}
	}
}

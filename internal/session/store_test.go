package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/veralin/go-mood-tunes/internal/mood"
)

func TestStoreCreateGet(t *testing.T) {
	store := NewStore()

	session := store.Create()
	if session.ID == "" {
		t.Fatal("Create() returned session with empty ID")
	}
	if session.State.FinalMood != mood.Unknown {
		t.Errorf("new session mood = %q, want unknown", session.State.FinalMood)
	}
	if session.State.Video != nil {
		t.Error("new session has non-nil video result")
	}
	if session.State.LastInput != "" {
		t.Errorf("new session LastInput = %q, want empty", session.State.LastInput)
	}

	got := store.Get(session.ID)
	if got != session {
		t.Error("Get() did not return the created session")
	}
}

func TestStoreGetMissing(t *testing.T) {
	store := NewStore()
	if got := store.Get("nonexistent"); got != nil {
		t.Errorf("Get(missing) = %v, want nil", got)
	}
}

func TestStoreExpiry(t *testing.T) {
	store := NewStore()

	current := time.Now()
	store.now = func() time.Time { return current }

	session := store.Create()

	current = current.Add(DefaultTTL + time.Minute)

	if got := store.Get(session.ID); got != nil {
		t.Error("Get() returned expired session")
	}
}

func TestStoreDelete(t *testing.T) {
	store := NewStore()
	session := store.Create()

	store.Delete(session.ID)

	if got := store.Get(session.ID); got != nil {
		t.Error("Get() returned deleted session")
	}
}

func TestStoreEnsure(t *testing.T) {
	store := NewStore()

	// No cookie: a new session is created and its cookie set.
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	session := store.Ensure(w, r)
	if session == nil {
		t.Fatal("Ensure() returned nil session")
	}

	cookies := w.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != cookieName {
		t.Fatalf("Ensure() set cookies = %v, want one %s cookie", cookies, cookieName)
	}
	if cookies[0].Value != session.ID {
		t.Errorf("cookie value = %q, want session ID %q", cookies[0].Value, session.ID)
	}

	// With the cookie: the same session comes back.
	r2 := httptest.NewRequest(http.MethodGet, "/", nil)
	r2.AddCookie(cookies[0])

	w2 := httptest.NewRecorder()
	again := store.Ensure(w2, r2)
	if again != session {
		t.Error("Ensure() with cookie did not return existing session")
	}
	if len(w2.Result().Cookies()) != 0 {
		t.Error("Ensure() reset cookie for existing session")
	}
}

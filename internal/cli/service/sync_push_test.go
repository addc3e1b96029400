package service

import (
	fsrepo "OutfitLab/internal/cli/repo/fs"
	"OutfitLab/internal/config"
	"OutfitLab/internal/outfit"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestPushSave_SendsOutfitAndRecordsSyncTime(t *testing.T) {
	withTempConfig(t)
	_ = (fsrepo.AuthFSStore{}).Save("tok-push")
	_ = (fsrepo.AuthFSStore{}).SaveLogin("alice")

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/api/outfits/save") {
			t.Fatalf("path: %s", r.URL.Path)
		}
		var req map[string]any
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req["upload_id"] != "u1" {
			t.Fatalf("upload_id: %v", req["upload_id"])
		}
		if req["outfit"] == nil {
			t.Fatalf("outfit missing")
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"created":true}`))
	}))
	defer ts.Close()

	combo := outfit.Combination{ID: "u1-combo-1", UploadID: "u1", Style: outfit.StyleCasual}
	if err := PushSave(&config.Config{ServerURL: ts.URL}, combo, "u1", nil); err != nil {
		t.Fatalf("push save: %v", err)
	}
	if ts, err := fsrepo.LoadLastSyncAt("alice"); err != nil || ts == "" {
		t.Fatalf("last_sync_at not recorded: %v", err)
	}
}

func TestPushUnsave_SendsOutfitID(t *testing.T) {
	withTempConfig(t)
	_ = (fsrepo.AuthFSStore{}).Save("tok-push")
	_ = (fsrepo.AuthFSStore{}).SaveLogin("alice")

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/api/outfits/unsave") {
			t.Fatalf("path: %s", r.URL.Path)
		}
		var req map[string]any
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req["upload_id"] != "u1" || req["outfit_id"] != "u1-combo-2" {
			t.Fatalf("payload: %#v", req)
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"removed":true}`))
	}))
	defer ts.Close()

	if err := PushUnsave(&config.Config{ServerURL: ts.URL}, "u1", "u1-combo-2"); err != nil {
		t.Fatalf("push unsave: %v", err)
	}
}

func TestPush_Errors(t *testing.T) {
	withTempConfig(t)

	// нет токена
	combo := outfit.Combination{ID: "c1"}
	if err := PushSave(&config.Config{ServerURL: "http://example.invalid"}, combo, "u1", nil); err == nil {
		t.Fatalf("expected error without token")
	}

	_ = (fsrepo.AuthFSStore{}).Save("tok")

	// нет сервера
	if err := PushSave(nil, combo, "u1", nil); err == nil {
		t.Fatalf("expected error for nil config")
	}

	// non-2xx
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	}))
	defer ts.Close()
	if err := PushSave(&config.Config{ServerURL: ts.URL}, combo, "u1", nil); err == nil {
		t.Fatalf("expected error for 401")
	}
}

func TestFSAuth_ContextAndLogout(t *testing.T) {
	withTempConfig(t)
	a := NewFSAuth()

	if _, err := a.CurrentUser(); err == nil {
		t.Fatalf("expected error before login")
	}
	if err := a.EstablishContext("carol"); err != nil {
		t.Fatalf("establish: %v", err)
	}
	login, err := a.CurrentUser()
	if err != nil || login != "carol" {
		t.Fatalf("current user: %q err=%v", login, err)
	}

	_ = (fsrepo.AuthFSStore{}).Save("tok-logout")
	if err := a.Logout(); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := (fsrepo.AuthFSStore{}).Load(); err == nil {
		t.Fatalf("token must be gone after logout")
	}
	// повторный logout — no-op
	if err := a.Logout(); err != nil {
		t.Fatalf("second logout: %v", err)
	}
}

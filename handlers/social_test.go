package handlers

import (
	"database/sql/driver"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/landtekbiz/treetek-backend/models"
)

func TestTogglePublishFlipsOnlyThatColumn(t *testing.T) {
	postID := uuid.New()
	created := time.Date(2026, time.August, 1, 12, 0, 0, 0, time.UTC)

	var execSQL string
	var execArgs []driver.NamedValue
	conn := &stubConn{
		query: func(q string, _ []driver.NamedValue) (driver.Rows, error) {
			return &stubRows{
				columns: []string{"id", "platform", "url", "caption", "is_published", "created_at"},
				values: [][]driver.Value{{
					postID.String(), "instagram", "https://instagram.com/p/abc", "Oak takedown", false, created,
				}},
			}, nil
		},
		exec: func(q string, args []driver.NamedValue) (driver.Result, error) {
			execSQL = q
			execArgs = args
			return driver.RowsAffected(1), nil
		},
	}

	h := &SocialHandler{db: openStubDB(t, conn)}
	r := httptest.NewRequest("PATCH", "/api/v1/admin/social/"+postID.String()+"/publish", nil)
	r = mux.SetURLVars(r, map[string]string{"id": postID.String()})
	w := httptest.NewRecorder()
	h.TogglePublish(w, r)

	if w.Code != 200 {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	if !strings.Contains(execSQL, `"is_published"`) {
		t.Errorf("update does not set is_published: %s", execSQL)
	}
	for _, col := range []string{`"platform"`, `"url"`, `"caption"`, `"created_at"`} {
		if strings.Contains(execSQL, col) {
			t.Errorf("update touches %s, want is_published only: %s", col, execSQL)
		}
	}
	if len(execArgs) != 2 {
		t.Fatalf("update args = %v, want flipped value + id", execArgs)
	}
	if execArgs[0].Value != true {
		t.Errorf("update value = %v, want true (flip of false)", execArgs[0].Value)
	}
	if execArgs[1].Value != postID.String() {
		t.Errorf("update keyed by %v, want %s", execArgs[1].Value, postID)
	}

	var resp models.SocialPost
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if !resp.IsPublished {
		t.Error("response still shows is_published=false")
	}
	if resp.ID != postID || resp.Platform != "instagram" || resp.Caption != "Oak takedown" {
		t.Errorf("response altered other fields: %+v", resp)
	}
}

func TestTogglePublishUnknownRecord(t *testing.T) {
	h := &SocialHandler{db: openStubDB(t, &stubConn{
		query: func(string, []driver.NamedValue) (driver.Rows, error) {
			return &stubRows{columns: []string{"id"}}, nil
		},
	})}

	r := httptest.NewRequest("PATCH", "/api/v1/admin/social/missing/publish", nil)
	r = mux.SetURLVars(r, map[string]string{"id": uuid.New().String()})
	w := httptest.NewRecorder()
	h.TogglePublish(w, r)

	if w.Code != 404 {
		t.Errorf("status = %d, want 404 for an unknown id", w.Code)
	}
}

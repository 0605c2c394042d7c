package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
)

func attachment(name string) Attachment {
	return Attachment{Filename: name, ContentType: "image/jpeg", Data: []byte("fake-jpeg")}
}

func TestAddPhotosCap(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	form := NewQuoteForm(server.URL, "")
	for i := 0; i < MaxPhotos; i++ {
		if err := form.AddPhotos(attachment("a.jpg")); err != nil {
			t.Fatalf("AddPhotos(%d) = %v, want nil", i, err)
		}
	}

	if err := form.AddPhotos(attachment("extra.jpg")); err != ErrTooManyPhotos {
		t.Fatalf("AddPhotos beyond cap = %v, want ErrTooManyPhotos", err)
	}
	if got := len(form.Photos()); got != MaxPhotos {
		t.Errorf("photo count after rejected add = %d, want %d", got, MaxPhotos)
	}
	if form.ErrorMessage() == "" {
		t.Error("expected a local error message after rejected add")
	}
	if n := atomic.LoadInt32(&hits); n != 0 {
		t.Errorf("rejected add hit the endpoint %d times, want 0", n)
	}
}

func TestAddPhotosBatchOverCapLeavesListUnchanged(t *testing.T) {
	form := NewQuoteForm("http://localhost", "")
	if err := form.AddPhotos(attachment("1.jpg"), attachment("2.jpg"), attachment("3.jpg")); err != nil {
		t.Fatalf("AddPhotos = %v", err)
	}

	batch := []Attachment{attachment("4.jpg"), attachment("5.jpg"), attachment("6.jpg")}
	if err := form.AddPhotos(batch...); err != ErrTooManyPhotos {
		t.Fatalf("AddPhotos = %v, want ErrTooManyPhotos", err)
	}
	if got := len(form.Photos()); got != 3 {
		t.Errorf("photo count = %d, want 3 (batch must not be partially applied)", got)
	}
}

func TestRemovePhoto(t *testing.T) {
	form := NewQuoteForm("http://localhost", "")
	form.AddPhotos(attachment("a.jpg"), attachment("b.jpg"), attachment("c.jpg"))

	form.RemovePhoto(1)
	photos := form.Photos()
	if len(photos) != 2 {
		t.Fatalf("photo count = %d, want 2", len(photos))
	}
	if photos[0].Filename != "a.jpg" || photos[1].Filename != "c.jpg" {
		t.Errorf("remaining photos = %q, %q, want a.jpg, c.jpg", photos[0].Filename, photos[1].Filename)
	}

	// out of range is a no-op
	form.RemovePhoto(-1)
	form.RemovePhoto(10)
	if got := len(form.Photos()); got != 2 {
		t.Errorf("photo count after out-of-range removes = %d, want 2", got)
	}
}

func TestPrefillService(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"recognized service", "service=Stump+Grinding", "Stump Grinding"},
		{"unrecognized service", "service=Lawn+Mowing", ""},
		{"missing parameter", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			if err != nil {
				t.Fatal(err)
			}
			form := NewQuoteForm("http://localhost", "")
			form.PrefillService(values)
			if form.ServiceType != tt.want {
				t.Errorf("ServiceType = %q, want %q", form.ServiceType, tt.want)
			}
		})
	}
}

func TestSubmitSuccess(t *testing.T) {
	var gotAuth string
	var gotName, gotUrgency string
	var gotPhotos int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if err := r.ParseMultipartForm(10 << 20); err != nil {
			t.Errorf("server could not parse multipart body: %v", err)
		}
		gotName = r.FormValue("name")
		gotUrgency = r.FormValue("urgency")
		gotPhotos = len(r.MultipartForm.File["photos"])
		w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	form := NewQuoteForm(server.URL, "pk_test_123")
	form.Name = "Jane Doe"
	form.Phone = "555-0100"
	form.Email = "jane@example.com"
	form.ServiceType = "Stump Grinding"
	form.Urgency = "Emergency"
	form.Description = "Large stump in backyard"
	form.AddPhotos(attachment("one.jpg"), attachment("two.jpg"))

	if err := form.Submit(context.Background()); err != nil {
		t.Fatalf("Submit = %v", err)
	}

	if form.Status() != StatusSuccess {
		t.Errorf("status = %q, want %q", form.Status(), StatusSuccess)
	}
	if gotAuth != "Bearer pk_test_123" {
		t.Errorf("Authorization = %q, want bearer publishable key", gotAuth)
	}
	if gotName != "Jane Doe" {
		t.Errorf("submitted name = %q, want Jane Doe", gotName)
	}
	if gotUrgency != "Emergency" {
		t.Errorf("submitted urgency = %q, want Emergency", gotUrgency)
	}
	if gotPhotos != 2 {
		t.Errorf("submitted photo parts = %d, want 2", gotPhotos)
	}

	// success clears the draft
	if form.Name != "" || form.Description != "" || len(form.Photos()) != 0 {
		t.Error("draft not cleared after successful submit")
	}
	if form.Urgency != "Normal" {
		t.Errorf("urgency after reset = %q, want Normal", form.Urgency)
	}
}

func TestSubmitServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"Failed to process request"}`, http.StatusInternalServerError)
	}))
	defer server.Close()

	form := NewQuoteForm(server.URL, "")
	form.Name = "Jane Doe"

	if err := form.Submit(context.Background()); err == nil {
		t.Fatal("Submit = nil, want error on 500")
	}
	if form.Status() != StatusError {
		t.Errorf("status = %q, want %q", form.Status(), StatusError)
	}
	if form.ErrorMessage() != RetryMessage {
		t.Errorf("error message = %q, want retry message", form.ErrorMessage())
	}
	if form.Name != "Jane Doe" {
		t.Error("draft must be kept after a failed submit")
	}
}

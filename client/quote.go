// Package client implements the quote form's submission side: a mutable
// draft of the request fields plus queued photo attachments, posted to the
// quote endpoint as one multipart request.
package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"time"

	"github.com/landtekbiz/treetek-backend/models"
)

// MaxPhotos is the attachment cap, enforced here and nowhere else.
const MaxPhotos = 5

// ErrTooManyPhotos rejects an add that would push the queue past MaxPhotos.
var ErrTooManyPhotos = errors.New("maximum 5 photos allowed")

// RetryMessage is shown when a submission fails for any reason.
const RetryMessage = "Failed to submit request. Please try again or call us directly."

type Status string

const (
	StatusIdle       Status = "idle"
	StatusSubmitting Status = "submitting"
	StatusSuccess    Status = "success"
	StatusError      Status = "error"
)

// Attachment is one photo queued for upload.
type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

// QuoteForm holds the draft. The zero draft has urgency Normal; a successful
// submit clears everything back to that state.
type QuoteForm struct {
	Name          string
	Phone         string
	Email         string
	Address       string
	City          string
	Zip           string
	ServiceType   string
	Urgency       string
	PreferredDate string
	Description   string

	photos []Attachment
	status Status
	errMsg string

	endpoint string
	apiKey   string
	client   *http.Client
}

// NewQuoteForm builds a draft bound to the quote endpoint. publishableKey is
// the static bearer credential the site ships with; empty omits the header.
func NewQuoteForm(endpoint, publishableKey string) *QuoteForm {
	return &QuoteForm{
		Urgency:  models.UrgencyNormal,
		status:   StatusIdle,
		endpoint: endpoint,
		apiKey:   publishableKey,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

func (f *QuoteForm) Status() Status       { return f.status }
func (f *QuoteForm) ErrorMessage() string { return f.errMsg }

// Photos returns a copy of the queued attachments.
func (f *QuoteForm) Photos() []Attachment {
	out := make([]Attachment, len(f.photos))
	copy(out, f.photos)
	return out
}

// AddPhotos queues attachments. If accepting the batch would exceed the cap
// the queue is left unchanged and a local error is surfaced; nothing is
// submitted.
func (f *QuoteForm) AddPhotos(files ...Attachment) error {
	if len(f.photos)+len(files) > MaxPhotos {
		f.errMsg = "Maximum 5 photos allowed"
		return ErrTooManyPhotos
	}
	f.photos = append(f.photos, files...)
	f.errMsg = ""
	return nil
}

// RemovePhoto drops the attachment at position i; out-of-range is a no-op.
func (f *QuoteForm) RemovePhoto(i int) {
	if i < 0 || i >= len(f.photos) {
		return
	}
	f.photos = append(f.photos[:i], f.photos[i+1:]...)
}

// PrefillService sets the service type from a recognized `service` query
// value. Unrecognized values leave the field blank.
func (f *QuoteForm) PrefillService(values url.Values) {
	service := values.Get("service")
	for _, s := range models.ServiceTypes {
		if s == service {
			f.ServiceType = service
			return
		}
	}
}

// Submit posts the draft. Success clears the draft; any failure moves the
// form to the error state with a retry message. There is no automatic retry.
func (f *QuoteForm) Submit(ctx context.Context) error {
	f.status = StatusSubmitting
	f.errMsg = ""

	body, contentType, err := f.encode()
	if err != nil {
		return f.fail(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.endpoint, body)
	if err != nil {
		return f.fail(err)
	}
	req.Header.Set("Content-Type", contentType)
	if f.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+f.apiKey)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return f.fail(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return f.fail(fmt.Errorf("quote submit: unexpected status %d", resp.StatusCode))
	}

	f.reset()
	f.status = StatusSuccess
	return nil
}

func (f *QuoteForm) fail(err error) error {
	f.status = StatusError
	f.errMsg = RetryMessage
	return err
}

func (f *QuoteForm) encode() (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fields := map[string]string{
		"name":           f.Name,
		"phone":          f.Phone,
		"email":          f.Email,
		"address":        f.Address,
		"city":           f.City,
		"zip":            f.Zip,
		"service_type":   f.ServiceType,
		"urgency":        f.Urgency,
		"preferred_date": f.PreferredDate,
		"description":    f.Description,
	}
	for name, value := range fields {
		if err := mw.WriteField(name, value); err != nil {
			return nil, "", err
		}
	}

	for _, photo := range f.photos {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition",
			fmt.Sprintf(`form-data; name="photos"; filename=%q`, photo.Filename))
		if photo.ContentType != "" {
			header.Set("Content-Type", photo.ContentType)
		}
		part, err := mw.CreatePart(header)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(photo.Data); err != nil {
			return nil, "", err
		}
	}

	if err := mw.Close(); err != nil {
		return nil, "", err
	}
	return &buf, mw.FormDataContentType(), nil
}

func (f *QuoteForm) reset() {
	f.Name = ""
	f.Phone = ""
	f.Email = ""
	f.Address = ""
	f.City = ""
	f.Zip = ""
	f.ServiceType = ""
	f.Urgency = models.UrgencyNormal
	f.PreferredDate = ""
	f.Description = ""
	f.photos = nil
}

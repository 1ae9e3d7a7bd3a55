package nats

import (
	"testing"
	"time"
)

func TestDecodeUploadEvent(t *testing.T) {
	event, err := decodeUploadEvent([]byte(`{"document_id":"doc-1","published_at":"2026-08-31T10:00:00Z"}`))
	if err != nil {
		t.Fatalf("decodeUploadEvent() error = %v", err)
	}
	if event.DocumentID != "doc-1" {
		t.Errorf("document id = %q, want doc-1", event.DocumentID)
	}
	if event.PublishedAt.IsZero() || !event.PublishedAt.Equal(time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)) {
		t.Errorf("published at = %v", event.PublishedAt)
	}
}

func TestDecodeUploadEventRejectsBadPayloads(t *testing.T) {
	for _, payload := range []string{"", "doc-1", "{}", `{"document_id":"  "}`} {
		if _, err := decodeUploadEvent([]byte(payload)); err == nil {
			t.Errorf("decodeUploadEvent(%q) expected error", payload)
		}
	}
}

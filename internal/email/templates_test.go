package email

import (
	"strings"
	"testing"

	"tracker-grpc/internal/models"
)

func TestRenderEventTemplate(t *testing.T) {
	s := &EmailSenderService{}

	body, err := s.renderEventTemplate(models.EventMessage{
		Username: "alice",
		Type:     "check",
		Kind:     "task",
		Label:    "buy milk",
		Link:     "https://example.com",
	})
	if err != nil {
		t.Fatalf("renderEventTemplate: %v", err)
	}

	for _, want := range []string{"alice", "buy milk", "completed the", "https://example.com"} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q:\n%s", want, body)
		}
	}
}

func TestRenderEscapesLabel(t *testing.T) {
	s := &EmailSenderService{}

	body, err := s.renderEventTemplate(models.EventMessage{
		Username: "alice",
		Type:     "create",
		Kind:     "project",
		Label:    "<script>alert(1)</script>",
	})
	if err != nil {
		t.Fatalf("renderEventTemplate: %v", err)
	}

	if strings.Contains(body, "<script>") {
		t.Error("label not escaped")
	}
}

func TestEventSubjects(t *testing.T) {
	tests := []struct {
		eventType string
		kind      string
		want      string
	}{
		{"create", "task", "New task added"},
		{"delete", "project", "Project deleted"},
		{"check", "task", "Task completed"},
		{"uncheck", "task", "Task reopened"},
		{"private", "project", "Project made private"},
		{"public", "task", "Task made public"},
		{"unknown", "task", "Task updated"},
	}

	for _, tt := range tests {
		got := eventSubject(models.EventMessage{Type: tt.eventType, Kind: tt.kind})
		if got != tt.want {
			t.Errorf("eventSubject(%s, %s) = %q, want %q", tt.eventType, tt.kind, got, tt.want)
		}
	}
}

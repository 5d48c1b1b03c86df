package core

import (
	"strings"
	"testing"

	"github.com/sothon-blip/lark-line-ticket/internal/model"
)

func TestRenderTicketAllFields(t *testing.T) {
	text := RenderTicket(&model.TicketEvent{
		ID:         "T-1",
		Date:       "2024-01-01 10:00",
		Title:      "Printer down",
		Symptom:    "Paper jam",
		Branch:     "HQ",
		BranchCode: "001",
		Phone:      "02-000-0000",
		Status:     "open",
	})

	for _, want := range []string{"T-1", "2024-01-01 10:00", "Printer down", "Paper jam", "HQ", "001", "02-000-0000", "open"} {
		if !strings.Contains(text, want) {
			t.Errorf("rendered text missing %q:\n%s", want, text)
		}
	}
}

func TestRenderTicketMissingFieldsKeepLines(t *testing.T) {
	text := RenderTicket(&model.TicketEvent{ID: "T-2"})

	// Every labeled line appears, missing values render as the dash.
	lines := strings.Split(text, "\n")
	labels := []string{"Ticket ID", "Date", "Title", "Symptom", "Branch", "Branch Code", "Phone", "Status"}
	for _, label := range labels {
		if !strings.Contains(text, label) {
			t.Errorf("rendered text missing line for %q:\n%s", label, text)
		}
	}
	if got := strings.Count(text, ": -"); got != len(labels)-1 {
		t.Errorf("placeholder count = %d, want %d:\n%s", got, len(labels)-1, text)
	}
	// Blocks are separated by blank lines.
	blank := 0
	for _, l := range lines {
		if l == "" {
			blank++
		}
	}
	if blank != 2 {
		t.Errorf("blank separator lines = %d, want 2:\n%s", blank, text)
	}
}

func TestRenderTicketDeterministic(t *testing.T) {
	ev := &model.TicketEvent{ID: "T-3", Title: "x", Status: "open"}
	if RenderTicket(ev) != RenderTicket(ev) {
		t.Error("rendering the same event twice produced different text")
	}
}

func TestRenderDailyReport(t *testing.T) {
	text := RenderDailyReport(&model.DailyReportEvent{
		Time:            "09:00",
		PendingCount:    3,
		InProgressCount: 1,
	})
	for _, want := range []string{"09:00", "3", "1"} {
		if !strings.Contains(text, want) {
			t.Errorf("rendered report missing %q:\n%s", want, text)
		}
	}
}

func TestRenderChatAckDirect(t *testing.T) {
	text := RenderChatAck(&model.ChatMessageEvent{UserID: "U1"}, "Alice")
	if !strings.Contains(text, "Alice") || !strings.Contains(text, "U1") {
		t.Errorf("ack missing name or user id:\n%s", text)
	}
	if strings.Contains(text, "Group ID") {
		t.Errorf("group line must not appear for a direct chat:\n%s", text)
	}
}

func TestRenderChatAckGroup(t *testing.T) {
	text := RenderChatAck(&model.ChatMessageEvent{UserID: "U1", GroupID: "G1"}, "Alice")
	if !strings.Contains(text, "Group ID") || !strings.Contains(text, "G1") {
		t.Errorf("group line missing:\n%s", text)
	}
}

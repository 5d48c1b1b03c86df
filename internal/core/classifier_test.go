package core

import (
	"testing"

	"github.com/sothon-blip/lark-line-ticket/internal/model"
)

func testMarkers() Markers {
	return Markers{
		TicketExact:    []string{"ticket"},
		TicketPrefixes: []string{"Ticket-"},
	}
}

func classifyOne(t *testing.T, body string) model.Event {
	t.Helper()
	events := Classify([]byte(body), testMarkers())
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	return events[0]
}

func TestClassifyVerification(t *testing.T) {
	ev := classifyOne(t, `{"type":"url_verification","challenge":"C-123"}`)
	if ev.Kind != model.KindVerification {
		t.Fatalf("kind = %s, want verification", ev.Kind)
	}
	if ev.Verification.Challenge != "C-123" {
		t.Errorf("challenge = %q, want C-123", ev.Verification.Challenge)
	}
}

func TestClassifyVerificationWithoutChallenge(t *testing.T) {
	// The verification marker alone is not enough; without a challenge
	// there is nothing to echo and the payload is unrecognized.
	ev := classifyOne(t, `{"type":"url_verification"}`)
	if ev.Kind != model.KindUnknown {
		t.Errorf("kind = %s, want unknown", ev.Kind)
	}
}

func TestClassifyChatEnvelopeFanOut(t *testing.T) {
	body := `{"events":[
		{"replyToken":"R1","source":{"type":"user","userId":"U1"},"message":{"type":"text","text":"hello"}},
		{"replyToken":"R2","source":{"type":"group","userId":"U2","groupId":"G2"},"message":{"type":"text","text":"hi"}}
	]}`
	events := Classify([]byte(body), testMarkers())
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	for _, ev := range events {
		if ev.Kind != model.KindChatMessage {
			t.Fatalf("kind = %s, want chat_message", ev.Kind)
		}
	}
	first := events[0].Chat
	if first.UserID != "U1" || first.ReplyToken != "R1" || first.Text != "hello" {
		t.Errorf("unexpected first chat event: %+v", first)
	}
	second := events[1].Chat
	if second.GroupID != "G2" || second.SourceType != "group" {
		t.Errorf("unexpected second chat event: %+v", second)
	}
}

func TestClassifyDailyReport(t *testing.T) {
	ev := classifyOne(t, `{"type":"daily_report","time":"09:00","pending_count":3,"inprogress_count":1,"line_group_id":"G1"}`)
	if ev.Kind != model.KindDailyReport {
		t.Fatalf("kind = %s, want daily_report", ev.Kind)
	}
	r := ev.DailyReport
	if r.Time != "09:00" || r.PendingCount != 3 || r.InProgressCount != 1 {
		t.Errorf("unexpected report fields: %+v", r)
	}
	if r.TargetGroupID != "G1" {
		t.Errorf("target group = %q, want G1", r.TargetGroupID)
	}
}

func TestClassifyTicketMarkers(t *testing.T) {
	cases := []struct {
		typ  string
		want model.EventKind
	}{
		{"ticket", model.KindTicket},
		{"Ticket-Printer", model.KindTicket},
		{"Ticket-", model.KindTicket},
		{"tickets", model.KindUnknown},
		{"daily", model.KindUnknown},
		{"", model.KindUnknown},
	}
	for _, tc := range cases {
		ev := classifyOne(t, `{"type":"`+tc.typ+`"}`)
		if ev.Kind != tc.want {
			t.Errorf("type %q: kind = %s, want %s", tc.typ, ev.Kind, tc.want)
		}
	}
}

func TestClassifyTicketDiscreteFields(t *testing.T) {
	ev := classifyOne(t, `{"type":"ticket","ticket_id":"T-9","ticket_date":"2024-03-01",
		"title":"Printer down","symptom":"Paper jam","branch":"HQ","branch_code":"001",
		"phone":"02-000-0000","status":"open","line_user_id":"U9"}`)
	tk := ev.Ticket
	if tk.ID != "T-9" || tk.Date != "2024-03-01" {
		t.Errorf("id/date = %q/%q", tk.ID, tk.Date)
	}
	if tk.Title != "Printer down" || tk.Symptom != "Paper jam" {
		t.Errorf("title/symptom = %q/%q", tk.Title, tk.Symptom)
	}
	if tk.TargetUserID != "U9" {
		t.Errorf("target user = %q, want U9", tk.TargetUserID)
	}
}

func TestClassifyTicketCompositeFields(t *testing.T) {
	ev := classifyOne(t, `{"type":"ticket","ticket_id":"T-1/2024-01-01 10:00",
		"title":"Printer down/Paper jam","branch":"HQ/001"}`)
	tk := ev.Ticket
	if tk.ID != "T-1" {
		t.Errorf("id = %q, want T-1", tk.ID)
	}
	if tk.Date != "2024-01-01 10:00" {
		t.Errorf("date = %q, want 2024-01-01 10:00", tk.Date)
	}
	if tk.Title != "Printer down" || tk.Symptom != "Paper jam" {
		t.Errorf("title/symptom = %q/%q", tk.Title, tk.Symptom)
	}
	if tk.Branch != "HQ" || tk.BranchCode != "001" {
		t.Errorf("branch/code = %q/%q", tk.Branch, tk.BranchCode)
	}
}

func TestClassifyCompositeIgnoredWhenDiscretePresent(t *testing.T) {
	// A discrete date wins; the slash in ticket_id is then literal.
	ev := classifyOne(t, `{"type":"ticket","ticket_id":"T-1/extra","ticket_date":"2024-02-02"}`)
	tk := ev.Ticket
	if tk.ID != "T-1/extra" || tk.Date != "2024-02-02" {
		t.Errorf("id/date = %q/%q", tk.ID, tk.Date)
	}
}

func TestClassifyMalformedBody(t *testing.T) {
	ev := classifyOne(t, `not json at all`)
	if ev.Kind != model.KindUnknown {
		t.Errorf("kind = %s, want unknown", ev.Kind)
	}
}

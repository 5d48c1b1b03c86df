package core

import (
	"encoding/json"
	"strings"

	"github.com/sothon-blip/lark-line-ticket/internal/model"
)

const (
	verificationMarker = "url_verification"
	dailyReportMarker  = "daily_report"

	// Delimiter used by source systems that pack two values into one
	// field, e.g. "T-1/2024-01-01 10:00" or "title/symptom".
	compositeDelimiter = "/"
)

// Markers is the set of recognized ticket "type" strings. Source
// systems disagree on the exact values, so the set comes from config.
type Markers struct {
	TicketExact    []string
	TicketPrefixes []string
}

// chatEnvelope is the LINE webhook envelope: a batch of discrete
// message events.
type chatEnvelope struct {
	Events []chatEnvelopeEvent `json:"events"`
}

type chatEnvelopeEvent struct {
	Type       string `json:"type"`
	ReplyToken string `json:"replyToken"`
	Source     struct {
		Type    string `json:"type"`
		UserID  string `json:"userId"`
		GroupID string `json:"groupId"`
	} `json:"source"`
	Message struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"message"`
}

// automationPayload is the flat shape posted by the automation
// platform. It is the union of every field any source variant sends;
// composite fields are split during normalization below.
type automationPayload struct {
	Type      string `json:"type"`
	Challenge string `json:"challenge"`

	TicketID   string `json:"ticket_id"`
	TicketDate string `json:"ticket_date"`
	Title      string `json:"title"`
	Symptom    string `json:"symptom"`
	Branch     string `json:"branch"`
	BranchCode string `json:"branch_code"`
	Phone      string `json:"phone"`
	Status     string `json:"status"`

	Time            string `json:"time"`
	PendingCount    int    `json:"pending_count"`
	InProgressCount int    `json:"inprogress_count"`

	LineUserID  string `json:"line_user_id"`
	LineGroupID string `json:"line_group_id"`
}

// Classify converts a raw inbound body into classified events. It is
// the single point where untyped input becomes the tagged union; all
// field-presence checks live here.
//
// Priority: verification challenge, then the LINE chat envelope (one
// event per contained message), then the daily-report marker, then the
// ticket marker family, then unknown.
func Classify(body []byte, markers Markers) []model.Event {
	var flat automationPayload
	flatOK := json.Unmarshal(body, &flat) == nil

	if flatOK && flat.Type == verificationMarker && flat.Challenge != "" {
		return []model.Event{{
			Kind:         model.KindVerification,
			Verification: &model.VerificationEvent{Challenge: flat.Challenge},
		}}
	}

	var envelope chatEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil && len(envelope.Events) > 0 {
		events := make([]model.Event, 0, len(envelope.Events))
		for _, e := range envelope.Events {
			events = append(events, model.Event{
				Kind: model.KindChatMessage,
				Chat: &model.ChatMessageEvent{
					UserID:     e.Source.UserID,
					GroupID:    e.Source.GroupID,
					Text:       e.Message.Text,
					ReplyToken: e.ReplyToken,
					SourceType: e.Source.Type,
				},
			})
		}
		return events
	}

	if flatOK && flat.Type == dailyReportMarker {
		return []model.Event{{
			Kind: model.KindDailyReport,
			DailyReport: &model.DailyReportEvent{
				Time:            flat.Time,
				PendingCount:    flat.PendingCount,
				InProgressCount: flat.InProgressCount,
				TargetUserID:    flat.LineUserID,
				TargetGroupID:   flat.LineGroupID,
			},
		}}
	}

	if flatOK && markers.matchesTicket(flat.Type) {
		return []model.Event{{
			Kind:   model.KindTicket,
			Ticket: normalizeTicket(&flat),
		}}
	}

	return []model.Event{{Kind: model.KindUnknown}}
}

func (m Markers) matchesTicket(typ string) bool {
	if typ == "" {
		return false
	}
	for _, exact := range m.TicketExact {
		if typ == exact {
			return true
		}
	}
	for _, prefix := range m.TicketPrefixes {
		if strings.HasPrefix(typ, prefix) {
			return true
		}
	}
	return false
}

// normalizeTicket splits the composite fields some source variants
// send ("id/date", "title/symptom", "branch/code") into their discrete
// parts. A composite is only consulted when the discrete counterpart
// is absent, so payloads that already send discrete fields pass
// through untouched.
func normalizeTicket(p *automationPayload) *model.TicketEvent {
	t := &model.TicketEvent{
		ID:            p.TicketID,
		Date:          p.TicketDate,
		Title:         p.Title,
		Symptom:       p.Symptom,
		Branch:        p.Branch,
		BranchCode:    p.BranchCode,
		Phone:         p.Phone,
		Status:        p.Status,
		TargetUserID:  p.LineUserID,
		TargetGroupID: p.LineGroupID,
	}

	t.ID, t.Date = splitComposite(t.ID, t.Date)
	t.Title, t.Symptom = splitComposite(t.Title, t.Symptom)
	t.Branch, t.BranchCode = splitComposite(t.Branch, t.BranchCode)

	return t
}

// splitComposite splits "first/second" out of first when second is
// absent. The delimiter splits once, left to right, so values like
// "2024-01-01 10:00" survive inside the second component.
func splitComposite(first, second string) (string, string) {
	if second != "" || !strings.Contains(first, compositeDelimiter) {
		return first, second
	}
	parts := strings.SplitN(first, compositeDelimiter, 2)
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
}

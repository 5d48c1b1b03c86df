package model

// EventKind tags the variants of Event.
type EventKind string

const (
	KindVerification EventKind = "verification"
	KindChatMessage  EventKind = "chat_message"
	KindTicket       EventKind = "ticket"
	KindDailyReport  EventKind = "daily_report"
	KindUnknown      EventKind = "unknown"
)

// Event is the tagged union every inbound payload is converted into.
// Exactly one variant pointer is non-nil for a classified event; all
// field-presence checks happen during classification, nowhere else.
type Event struct {
	Kind         EventKind
	Verification *VerificationEvent
	Chat         *ChatMessageEvent
	Ticket       *TicketEvent
	DailyReport  *DailyReportEvent
}

// VerificationEvent carries the endpoint-ownership handshake token.
// It is echoed back to the caller and never dispatched onward.
type VerificationEvent struct {
	Challenge string
}

// ChatMessageEvent is one user message out of a LINE webhook envelope.
type ChatMessageEvent struct {
	UserID     string
	GroupID    string // empty for 1:1 chats
	Text       string
	ReplyToken string
	SourceType string // "user" or "group"
}

// TicketEvent is a ticket notification from the automation platform,
// already normalized (composite "a/b" fields split).
type TicketEvent struct {
	ID            string
	Date          string
	Title         string
	Symptom       string
	Branch        string
	BranchCode    string
	Phone         string
	Status        string
	TargetUserID  string
	TargetGroupID string
}

// DailyReportEvent is the scheduled workload summary.
type DailyReportEvent struct {
	Time            string
	PendingCount    int
	InProgressCount int
	TargetUserID    string
	TargetGroupID   string
}

// DeliveryTarget is an opaque recipient identifier, either a LINE user
// id or a group id. Resolution is string presence, not type validation.
type DeliveryTarget string

// RenderedNotification is the (target, text) pair handed to the
// dispatcher. ReplyToken, when set, switches delivery to reply mode.
type RenderedNotification struct {
	Target     DeliveryTarget
	ReplyToken string
	Text       string
}

// UserProfile is the subset of a LINE profile the relay cares about.
type UserProfile struct {
	DisplayName string `json:"displayName"`
}

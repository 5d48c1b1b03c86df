package core

import (
	"strings"

	"github.com/sothon-blip/lark-line-ticket/internal/model"
)

// ResolveTarget derives the single outbound delivery target for an
// event. Precedence, first non-blank wins: explicit user id, explicit
// group id, chat source user id, chat source group id, configured
// default recipient. Returns false when no candidate resolves, in
// which case the event is undeliverable.
func ResolveTarget(ev model.Event, defaultRecipient string) (model.DeliveryTarget, bool) {
	var candidates []string

	switch ev.Kind {
	case model.KindTicket:
		candidates = []string{ev.Ticket.TargetUserID, ev.Ticket.TargetGroupID}
	case model.KindDailyReport:
		candidates = []string{ev.DailyReport.TargetUserID, ev.DailyReport.TargetGroupID}
	case model.KindChatMessage:
		candidates = []string{ev.Chat.UserID, ev.Chat.GroupID}
	default:
		return "", false
	}

	candidates = append(candidates, defaultRecipient)
	for _, c := range candidates {
		if c = strings.TrimSpace(c); c != "" {
			return model.DeliveryTarget(c), true
		}
	}
	return "", false
}

package core

import (
	"fmt"
	"strings"

	"github.com/sothon-blip/lark-line-ticket/internal/model"
)

// placeholder substitutes a missing field value; the labeled line is
// always emitted so every notification of a kind has the same shape.
const placeholder = "-"

// RenderTicket formats a ticket notification. Pure: identical events
// render to identical text.
func RenderTicket(t *model.TicketEvent) string {
	var b strings.Builder
	b.WriteString("🎫 New Ticket\n")
	b.WriteString("🆔 Ticket ID : " + orDash(t.ID) + "\n")
	b.WriteString("📅 Date : " + orDash(t.Date) + "\n")
	b.WriteString("\n")
	b.WriteString("📌 Title : " + orDash(t.Title) + "\n")
	b.WriteString("📝 Symptom : " + orDash(t.Symptom) + "\n")
	b.WriteString("\n")
	b.WriteString("🏢 Branch : " + orDash(t.Branch) + "\n")
	b.WriteString("🔢 Branch Code : " + orDash(t.BranchCode) + "\n")
	b.WriteString("📞 Phone : " + orDash(t.Phone) + "\n")
	b.WriteString("📊 Status : " + orDash(t.Status))
	return b.String()
}

// RenderDailyReport formats the scheduled workload summary.
func RenderDailyReport(r *model.DailyReportEvent) string {
	var b strings.Builder
	b.WriteString("📊 Daily Report\n")
	b.WriteString("🕘 Time : " + orDash(r.Time) + "\n")
	b.WriteString(fmt.Sprintf("⏳ Pending : %d\n", r.PendingCount))
	b.WriteString(fmt.Sprintf("🔧 In Progress : %d", r.InProgressCount))
	return b.String()
}

// RenderChatAck formats the acknowledgement sent back to a chat
// sender. The group-id line appears only in group context.
func RenderChatAck(c *model.ChatMessageEvent, displayName string) string {
	text := "👤 User Name LINE : " + orDash(displayName) + "\n" +
		"🆔 User ID : " + orDash(c.UserID)
	if c.GroupID != "" {
		text += "\n👥 Group ID : " + c.GroupID
	}
	return text
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return placeholder
	}
	return s
}

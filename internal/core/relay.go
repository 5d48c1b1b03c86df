package core

import (
	"context"

	"go.uber.org/zap"

	"github.com/sothon-blip/lark-line-ticket/config"
	"github.com/sothon-blip/lark-line-ticket/internal/metrics"
	"github.com/sothon-blip/lark-line-ticket/internal/model"
)

// fallbackDisplayName substitutes a sender name when the profile
// lookup fails for any reason.
const fallbackDisplayName = "Unknown"

// Relay is the classify → resolve → render → dispatch pipeline. It
// holds no per-request state; every event is constructed, processed
// and discarded within one inbound request.
type Relay struct {
	dispatcher *Dispatcher
	profiles   ProfileFetcher
	cfg        config.RelayConfig
	markers    Markers
	logger     *zap.Logger
}

func NewRelay(dispatcher *Dispatcher, profiles ProfileFetcher, cfg config.RelayConfig, logger *zap.Logger) *Relay {
	return &Relay{
		dispatcher: dispatcher,
		profiles:   profiles,
		cfg:        cfg,
		markers: Markers{
			TicketExact:    cfg.TicketMarkerList(),
			TicketPrefixes: cfg.TicketPrefixList(),
		},
		logger: logger,
	}
}

// Classify converts a raw inbound body using the configured marker
// sets. The HTTP adapter calls this before acknowledging so it can
// echo verification challenges synchronously.
func (r *Relay) Classify(body []byte) []model.Event {
	events := Classify(body, r.markers)
	for _, ev := range events {
		metrics.EventsReceivedTotal.WithLabelValues(string(ev.Kind)).Inc()
	}
	return events
}

// Process runs each event through the pipeline. Nothing in here is
// allowed to surface an error: the inbound caller has already been
// acknowledged, so every failure becomes a logged outcome.
func (r *Relay) Process(ctx context.Context, events []model.Event) {
	for i := range events {
		r.processEvent(ctx, events[i])
	}
}

func (r *Relay) processEvent(ctx context.Context, ev model.Event) {
	switch ev.Kind {
	case model.KindVerification:
		// Echoed by the HTTP adapter, never dispatched onward.
		return
	case model.KindUnknown:
		metrics.EventsDroppedTotal.WithLabelValues("unknown_kind").Inc()
		r.logger.Warn("Unrecognized payload, dropping")
		return
	}

	target, ok := ResolveTarget(ev, r.cfg.DefaultRecipient)
	if !ok {
		metrics.EventsDroppedTotal.WithLabelValues("no_target").Inc()
		r.logger.Warn("No delivery target resolved, dropping",
			zap.String("kind", string(ev.Kind)))
		return
	}

	notification := &model.RenderedNotification{Target: target}
	switch ev.Kind {
	case model.KindTicket:
		notification.Text = RenderTicket(ev.Ticket)
	case model.KindDailyReport:
		notification.Text = RenderDailyReport(ev.DailyReport)
	case model.KindChatMessage:
		chat := ev.Chat
		r.logger.Info("Chat message received",
			zap.String("user_id", chat.UserID),
			zap.String("group_id", chat.GroupID),
			zap.String("text", chat.Text))
		notification.Text = RenderChatAck(chat, r.displayName(ctx, chat))
		notification.ReplyToken = chat.ReplyToken
	}

	// Outcome already logged and counted by the dispatcher.
	_ = r.dispatcher.Dispatch(ctx, notification)
}

// displayName fetches the sender's profile for 1:1 chats. Group
// senders and lookup failures get the fixed placeholder; a failed
// lookup never blocks the reply.
func (r *Relay) displayName(ctx context.Context, chat *model.ChatMessageEvent) string {
	if chat.GroupID != "" || chat.UserID == "" {
		return fallbackDisplayName
	}
	profile, err := r.profiles.GetProfile(ctx, chat.UserID)
	if err != nil {
		metrics.ProfileLookupFailedTotal.Inc()
		r.logger.Warn("Cannot fetch profile",
			zap.String("user_id", chat.UserID),
			zap.Error(err))
		return fallbackDisplayName
	}
	return profile.DisplayName
}

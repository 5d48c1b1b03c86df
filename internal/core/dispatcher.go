package core

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/sothon-blip/lark-line-ticket/internal/metrics"
	"github.com/sothon-blip/lark-line-ticket/internal/model"
)

// Sender is the external send-message capability. Push addresses a
// recipient directly; Reply consumes a single-use token tied to one
// inbound conversation turn and must happen within the platform's
// reply-validity window.
type Sender interface {
	Push(ctx context.Context, to string, text string) error
	Reply(ctx context.Context, replyToken string, text string) error
}

// ProfileFetcher looks up a sender's display name.
type ProfileFetcher interface {
	GetProfile(ctx context.Context, userID string) (*model.UserProfile, error)
}

const (
	ModePush  = "push"
	ModeReply = "reply"
)

// DeliveryError is the recorded outcome of a failed send. Delivery
// failures never escape the dispatcher as anything else: the inbound
// caller was acknowledged long before, so the contract here is
// log-and-move-on, at most one attempt per event.
type DeliveryError struct {
	Mode   string
	Target string
	Err    error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("%s to %s failed: %v", e.Mode, e.Target, e.Err)
}

func (e *DeliveryError) Unwrap() error { return e.Err }

// Dispatcher sends rendered notifications through a Sender, choosing
// reply mode when the notification carries a reply token and push mode
// otherwise.
type Dispatcher struct {
	sender Sender
	logger *zap.Logger
}

func NewDispatcher(sender Sender, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{sender: sender, logger: logger}
}

// Dispatch performs exactly one outbound send. A nil return means the
// platform accepted the message.
func (d *Dispatcher) Dispatch(ctx context.Context, n *model.RenderedNotification) *DeliveryError {
	mode := ModePush
	target := string(n.Target)
	if n.ReplyToken != "" {
		mode = ModeReply
		target = n.ReplyToken
	}

	var err error
	if mode == ModeReply {
		err = d.sender.Reply(ctx, n.ReplyToken, n.Text)
	} else {
		err = d.sender.Push(ctx, target, n.Text)
	}

	if err != nil {
		metrics.DispatchFailedTotal.WithLabelValues(mode).Inc()
		d.logger.Error("Dispatch failed",
			zap.String("mode", mode),
			zap.String("target", target),
			zap.Error(err))
		return &DeliveryError{Mode: mode, Target: target, Err: err}
	}

	metrics.DispatchSentTotal.WithLabelValues(mode).Inc()
	d.logger.Info("Notification delivered",
		zap.String("mode", mode),
		zap.String("target", target))
	return nil
}

package rest

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/sothon-blip/lark-line-ticket/internal/core"
	"github.com/sothon-blip/lark-line-ticket/internal/model"
)

// Adapter exposes the inbound webhook surface. Handlers acknowledge
// the caller first and run the pipeline in a goroutine, so the
// platform's retry/timeout behavior is decoupled from outbound
// latency. The one exception is the verification handshake, whose
// response body must carry the echoed challenge.
type Adapter struct {
	Relay  *core.Relay
	Logger *zap.Logger
	Port   string
}

func NewAdapter(port string, relay *core.Relay, logger *zap.Logger) *Adapter {
	return &Adapter{
		Relay:  relay,
		Logger: logger,
		Port:   port,
	}
}

func (a *Adapter) Start(ctx context.Context) error {
	r := a.Router()
	a.Logger.Info("Starting webhook server", zap.String("port", a.Port))
	return r.Run(":" + a.Port)
}

// Router builds the gin engine; separate from Start so tests can
// drive it with httptest.
func (a *Adapter) Router() *gin.Engine {
	r := gin.Default()

	r.POST("/webhook/chat", a.handleChat)
	r.POST("/webhook/automation", a.handleAutomation)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func (a *Adapter) handleChat(c *gin.Context) {
	events, logger := a.receive(c, "chat")

	// Trivial ack, sent before dispatch work starts.
	c.JSON(http.StatusOK, gin.H{})

	a.process(events, logger)
}

func (a *Adapter) handleAutomation(c *gin.Context) {
	events, logger := a.receive(c, "automation")

	// The verification handshake is the one synchronous path: the
	// response body must echo the challenge, and nothing is dispatched.
	if len(events) == 1 && events[0].Kind == model.KindVerification {
		c.JSON(http.StatusOK, gin.H{"challenge": events[0].Verification.Challenge})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})

	a.process(events, logger)
}

// receive reads and classifies the body. A read failure yields no
// events; the caller still gets its 200 ack, matching the contract
// that nothing past receipt surfaces to the webhook origin.
func (a *Adapter) receive(c *gin.Context, endpoint string) ([]model.Event, *zap.Logger) {
	logger := a.Logger.With(
		zap.String("request_id", uuid.NewString()),
		zap.String("endpoint", endpoint))

	body, err := c.GetRawData()
	if err != nil {
		logger.Warn("Failed to read webhook body", zap.Error(err))
		return nil, logger
	}

	events := a.Relay.Classify(body)
	logger.Info("Webhook received", zap.Int("events", len(events)))
	return events, logger
}

func (a *Adapter) process(events []model.Event, logger *zap.Logger) {
	if len(events) == 0 {
		return
	}
	// Detached from the request context: the inbound call is already
	// answered by the time these sends run.
	go func() {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("Relay pipeline panic", zap.Any("panic", r))
			}
		}()
		a.Relay.Process(context.Background(), events)
	}()
}

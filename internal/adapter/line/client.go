package line

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/sothon-blip/lark-line-ticket/config"
	"github.com/sothon-blip/lark-line-ticket/internal/model"
)

// Client talks to the LINE Messaging API: push and reply sends plus
// profile lookup. It implements core.Sender and core.ProfileFetcher.
type Client struct {
	http   *resty.Client
	config config.LineConfig
}

type textMessage struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type pushRequest struct {
	To       string        `json:"to"`
	Messages []textMessage `json:"messages"`
}

type replyRequest struct {
	ReplyToken string        `json:"replyToken"`
	Messages   []textMessage `json:"messages"`
}

func NewClient(cfg config.LineConfig) *Client {
	return &Client{
		http:   resty.New(),
		config: cfg,
	}
}

// Push sends a server-initiated message addressed directly to a user
// or group id.
func (c *Client) Push(ctx context.Context, to string, text string) error {
	reqBody := pushRequest{
		To:       to,
		Messages: []textMessage{{Type: "text", Text: text}},
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+c.config.ChannelToken).
		SetHeader("Content-Type", "application/json").
		SetBody(reqBody).
		Post(c.config.APIBase + "/v2/bot/message/push")

	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("LINE push error: %s", resp.String())
	}
	return nil
}

// Reply answers one inbound conversation turn using its single-use
// reply token. The token expires shortly after the originating event,
// so callers reply promptly and never reuse a token.
func (c *Client) Reply(ctx context.Context, replyToken string, text string) error {
	reqBody := replyRequest{
		ReplyToken: replyToken,
		Messages:   []textMessage{{Type: "text", Text: text}},
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+c.config.ChannelToken).
		SetHeader("Content-Type", "application/json").
		SetBody(reqBody).
		Post(c.config.APIBase + "/v2/bot/message/reply")

	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("LINE reply error: %s", resp.String())
	}
	return nil
}

// GetProfile fetches a user's display name. Not cached; the relay
// refetches on every 1:1 chat event.
func (c *Client) GetProfile(ctx context.Context, userID string) (*model.UserProfile, error) {
	var profile model.UserProfile

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+c.config.ChannelToken).
		SetResult(&profile).
		Get(c.config.APIBase + "/v2/bot/profile/" + userID)

	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("LINE profile error: %s", resp.String())
	}
	if profile.DisplayName == "" {
		return nil, fmt.Errorf("LINE profile response missing displayName")
	}
	return &profile, nil
}

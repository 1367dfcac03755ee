// Package line wraps the LINE Messaging API SDK behind the two operations the
// service needs: verifying and parsing webhook callbacks, and sending replies.
package line

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/line/line-bot-sdk-go/v8/linebot/messaging_api"
	"github.com/line/line-bot-sdk-go/v8/linebot/webhook"
)

// SignatureHeader carries the HMAC-SHA256 signature of the callback body.
const SignatureHeader = "X-Line-Signature"

// ErrInvalidSignature is returned when the callback signature does not match the body.
var ErrInvalidSignature = webhook.ErrInvalidSignature

// Client verifies callbacks with the channel secret and replies with the channel access token.
type Client struct {
	channelSecret string
	api           *messaging_api.MessagingApiAPI
}

// New creates a Client. Options are passed to the Messaging API client.
func New(channelSecret, channelAccessToken string, opts ...messaging_api.MessagingApiAPIOption) (*Client, error) {
	if channelSecret == "" {
		return nil, fmt.Errorf("channel secret is required")
	}
	if channelAccessToken == "" {
		return nil, fmt.Errorf("channel access token is required")
	}
	api, err := messaging_api.NewMessagingApiAPI(channelAccessToken, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create messaging api client: %w", err)
	}
	return &Client{
		channelSecret: channelSecret,
		api:           api,
	}, nil
}

// ParseCallback verifies signature against body and decodes the callback.
func (c *Client) ParseCallback(signature string, body []byte) (*webhook.CallbackRequest, error) {
	if !webhook.ValidateSignature(c.channelSecret, signature, body) {
		return nil, ErrInvalidSignature
	}
	var cb webhook.CallbackRequest
	if err := json.Unmarshal(body, &cb); err != nil {
		return nil, fmt.Errorf("failed to decode callback: %w", err)
	}
	return &cb, nil
}

// Reply sends messages to the conversation identified by the one-time replyToken.
func (c *Client) Reply(ctx context.Context, replyToken string, messages []messaging_api.MessageInterface) error {
	resp, _, err := c.api.WithContext(ctx).ReplyMessageWithHttpInfo(&messaging_api.ReplyMessageRequest{
		ReplyToken: replyToken,
		Messages:   messages,
	})
	if err != nil {
		if resp != nil {
			return fmt.Errorf("reply failed (request id %s): %w", resp.Header.Get("X-Line-Request-Id"), err)
		}
		return fmt.Errorf("reply failed: %w", err)
	}
	return nil
}

// SourceUserID returns the user who triggered an event, or "" when the source
// does not expose one.
func SourceUserID(src webhook.SourceInterface) string {
	switch s := src.(type) {
	case webhook.UserSource:
		return s.UserId
	case webhook.GroupSource:
		return s.UserId
	case webhook.RoomSource:
		return s.UserId
	default:
		return ""
	}
}

// SourceKey identifies the sender of an event for storage. It is the user ID when
// the platform exposes one, otherwise the group or room ID with a "group:" or
// "room:" prefix. It returns "" only for unknown sources.
func SourceKey(src webhook.SourceInterface) string {
	if userID := SourceUserID(src); userID != "" {
		return userID
	}
	switch s := src.(type) {
	case webhook.GroupSource:
		if s.GroupId != "" {
			return "group:" + s.GroupId
		}
	case webhook.RoomSource:
		if s.RoomId != "" {
			return "room:" + s.RoomId
		}
	}
	return ""
}

package callback

import (
	"context"
	"errors"
	"fmt"

	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/gofiber/fiber/v2"
	"github.com/line/line-bot-sdk-go/v8/linebot/messaging_api"
	"github.com/line/line-bot-sdk-go/v8/linebot/webhook"
	"github.com/porchman/notification-api/internal/clients/line"
	"github.com/porchman/notification-api/internal/dispatch"
	"github.com/porchman/notification-api/internal/metrics"
	"github.com/rs/zerolog"
)

type Platform interface {
	ParseCallback(signature string, body []byte) (*webhook.CallbackRequest, error)
	Reply(ctx context.Context, replyToken string, messages []messaging_api.MessageInterface) error
}

type Dispatcher interface {
	Dispatch(ctx context.Context, userID, text string) (dispatch.Reply, error)
}

type EventCache interface {
	MarkHandled(eventID string) bool
	Forget(eventID string)
}

// CallbackController receives LINE webhook callbacks and answers text messages.
type CallbackController struct {
	platform   Platform
	dispatcher Dispatcher
	events     EventCache
}

// NewCallbackController creates a new CallbackController.
func NewCallbackController(platform Platform, dispatcher Dispatcher, events EventCache) *CallbackController {
	return &CallbackController{
		platform:   platform,
		dispatcher: dispatcher,
		events:     events,
	}
}

// HandleCallback godoc
// @Summary      LINE webhook
// @Description  Receives LINE Messaging API webhook events. The body must be signed with the channel secret.
// @Tags         LINE
// @Accept       json
// @Produce      plain
// @Param        X-Line-Signature  header  string  true  "Base64 HMAC-SHA256 of the body"
// @Success      200  {string}  string  "OK"
// @Failure      400  "Missing or invalid signature"
// @Router       /callback [post]
func (cc *CallbackController) HandleCallback(c *fiber.Ctx) error {
	signature := c.Get(line.SignatureHeader)
	if signature == "" {
		return richerrors.Error{
			ExternalMsg: "Missing signature",
			Code:        fiber.StatusBadRequest,
		}
	}

	cb, err := cc.platform.ParseCallback(signature, c.Body())
	if err != nil {
		msg := "Invalid callback payload"
		if errors.Is(err, line.ErrInvalidSignature) {
			msg = "Invalid signature"
		}
		return richerrors.Error{
			ExternalMsg: msg,
			Err:         err,
			Code:        fiber.StatusBadRequest,
		}
	}

	for _, event := range cb.Events {
		cc.handleEvent(c.UserContext(), event)
	}

	return c.SendString("OK")
}

func (cc *CallbackController) handleEvent(ctx context.Context, event webhook.EventInterface) {
	logger := zerolog.Ctx(ctx)

	msgEvent, ok := event.(webhook.MessageEvent)
	if !ok {
		logger.Debug().Str("eventType", fmt.Sprintf("%T", event)).Msg("ignoring non-message event")
		return
	}
	text, ok := msgEvent.Message.(webhook.TextMessageContent)
	if !ok {
		logger.Debug().Str("messageType", fmt.Sprintf("%T", msgEvent.Message)).Msg("ignoring non-text message")
		return
	}

	eventLogger := logger.With().Str("webhookEventId", msgEvent.WebhookEventId).Logger()
	if !cc.events.MarkHandled(msgEvent.WebhookEventId) {
		eventLogger.Info().Msg("skipping already handled event")
		return
	}

	reply, err := cc.dispatcher.Dispatch(ctx, line.SourceKey(msgEvent.Source), text.Text)
	metrics.WebhookEvents.WithLabelValues(reply.Action.String()).Inc()
	if err != nil {
		eventLogger.Error().Err(err).Str("action", reply.Action.String()).Msg("failed to handle message")
		reply.Image = nil
		reply.Text = dispatch.ErrorMessage
	}

	err = cc.platform.Reply(ctx, msgEvent.ReplyToken, replyMessages(reply))
	metrics.Replies.WithLabelValues(metrics.Result(err)).Inc()
	if err != nil {
		eventLogger.Error().Err(err).Str("action", reply.Action.String()).Msg("failed to send reply")
		cc.events.Forget(msgEvent.WebhookEventId)
	}
}

// replyMessages converts a dispatch reply into platform messages. The image, when
// present, goes first since a reply token can only be used once.
func replyMessages(reply dispatch.Reply) []messaging_api.MessageInterface {
	messages := make([]messaging_api.MessageInterface, 0, 2)
	if reply.Image != nil {
		messages = append(messages, messaging_api.ImageMessage{
			OriginalContentUrl: reply.Image.OriginalURL,
			PreviewImageUrl:    reply.Image.PreviewURL,
		})
	}
	return append(messages, messaging_api.TextMessage{Text: reply.Text})
}

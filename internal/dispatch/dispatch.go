// Package dispatch decides how the bot answers a text message.
package dispatch

import (
	"context"
	"fmt"

	"github.com/porchman/notification-api/internal/services/trackingrepo"
)

const (
	// PromptMessage asks the user to enter a tracking number.
	PromptMessage = "追跡番号を入力してください．"
	// StatusMessage accompanies the status photo.
	StatusMessage = "最近の写真を表示します．"
	// DefaultMessage is the greeting sent for unrecognised messages.
	DefaultMessage = "お客様がお望みなら、いつでもお荷物を受け取ります。\n宅配便代理受け取りサービス、ポーチマンです。"
	// ErrorMessage is sent when a request could not be completed.
	ErrorMessage = "エラーが発生しました．しばらくしてから再度お試しください．"
)

// RegisteredMessage confirms a stored tracking number.
func RegisteredMessage(number string) string {
	return "追跡番号(" + number + ")を登録しました．"
}

type Storage interface {
	UpsertTracking(ctx context.Context, userID, number string) (trackingrepo.Record, error)
	DownloadBlob(ctx context.Context, blobName, destinationPath string) error
}

// ImageRef points at an image the platform fetches itself.
type ImageRef struct {
	OriginalURL string
	PreviewURL  string
}

// Reply is what the bot answers with. Image is set only for ActionStatus and is
// sent before Text.
type Reply struct {
	Action Action
	Text   string
	Image  *ImageRef
}

// Config holds the fixed inputs of the status action.
type Config struct {
	// StatusBlobName is the blob holding the latest status photo.
	StatusBlobName string
	// StatusImagePath is where the photo is written so it can be served.
	StatusImagePath string
	// StatusImage is sent back to the user.
	StatusImage ImageRef
}

type Dispatcher struct {
	storage Storage
	cfg     Config
}

func NewDispatcher(storage Storage, cfg Config) *Dispatcher {
	if cfg.StatusImage.PreviewURL == "" {
		cfg.StatusImage.PreviewURL = cfg.StatusImage.OriginalURL
	}
	return &Dispatcher{
		storage: storage,
		cfg:     cfg,
	}
}

// Dispatch classifies text sent by userID, performs the storage side effect of the
// action and returns the reply. The returned Reply always has its Action set, even
// when an error is returned.
func (d *Dispatcher) Dispatch(ctx context.Context, userID, text string) (Reply, error) {
	action := Classify(text)
	switch action {
	case ActionRegister:
		if _, err := d.storage.UpsertTracking(ctx, userID, text); err != nil {
			return Reply{Action: action}, fmt.Errorf("failed to register tracking number: %w", err)
		}
		return Reply{Action: action, Text: RegisteredMessage(text)}, nil

	case ActionPrompt:
		return Reply{Action: action, Text: PromptMessage}, nil

	case ActionStatus:
		if err := d.storage.DownloadBlob(ctx, d.cfg.StatusBlobName, d.cfg.StatusImagePath); err != nil {
			return Reply{Action: action}, fmt.Errorf("failed to fetch status image: %w", err)
		}
		image := d.cfg.StatusImage
		return Reply{Action: action, Text: StatusMessage, Image: &image}, nil

	default:
		return Reply{Action: ActionDefault, Text: DefaultMessage}, nil
	}
}

package notifier

import (
	"context"
	"errors"

	"github.com/porchman/notification-api/internal/services/trackingrepo"
)

// Notifier is told about every stored registration.
type Notifier interface {
	Notify(ctx context.Context, rec trackingrepo.Record) error
}

// Multi fans a registration out to every notifier and joins their errors.
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, rec trackingrepo.Record) error {
	var errs []error
	for _, n := range m {
		if err := n.Notify(ctx, rec); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

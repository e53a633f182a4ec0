package notify

import "context"

// ReservationEvent is the payload published when a reservation is created or
// changes state. Consumers key off the routing key for the event kind.
type ReservationEvent struct {
	ReservationID string `json:"reservation_id"`
	AssetID       string `json:"asset_id"`
	UserID        string `json:"user_id"`
	Status        string `json:"status"`
	Price         int64  `json:"price,omitempty"`
	StartsAt      string `json:"starts_at,omitempty"`
	EndsAt        string `json:"ends_at,omitempty"`
}

type Notifier interface {
	ReservationCreated(ctx context.Context, event ReservationEvent) error
	ReservationStatusChanged(ctx context.Context, event ReservationEvent) error
}

// NopNotifier discards all events. Used when no broker is configured.
type NopNotifier struct{}

func NewNopNotifier() Notifier {
	return NopNotifier{}
}

func (NopNotifier) ReservationCreated(ctx context.Context, event ReservationEvent) error {
	return nil
}

func (NopNotifier) ReservationStatusChanged(ctx context.Context, event ReservationEvent) error {
	return nil
}

package contracts

import "context"

// CitaEvent is published after every successful agenda mutation for the
// notification pipeline to consume.
type CitaEvent struct {
	ID         string `json:"id"`
	CitaID     string `json:"cita_id"`
	Accion     string `json:"accion"`
	Estado     string `json:"estado,omitempty"`
	Motivo     string `json:"motivo,omitempty"`
	ScreenID   string `json:"screen_id,omitempty"`
	OccurredAt string `json:"occurred_at"`
}

// CitaEventPublisher delivers CitaEvents to the broker. Implementations must
// be safe for fire-and-forget use: a failed publish is the caller's to log,
// never to propagate into a workflow result.
type CitaEventPublisher interface {
	Publish(ctx context.Context, event *CitaEvent) error
}

package mailer

import (
	"context"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/heartmarshall/clientforge-backend/internal/adapter/broker"
)

var mailsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "clientforge_mails_total",
	Help: "Auth e-mails handled by kind and result.",
}, []string{"kind", "result"})

// maxEventAge drops events whose links have most likely expired.
const maxEventAge = 24 * time.Hour

// Handler renders and sends mail events. It satisfies broker.MailHandler.
type Handler struct {
	sender Sender
	log    *slog.Logger
	now    func() time.Time
}

// NewHandler creates a Handler.
func NewHandler(sender Sender, logger *slog.Logger) *Handler {
	return &Handler{sender: sender, log: logger.With("component", "mailer"), now: time.Now}
}

// Handle processes one event. Stale events are dropped without error so the
// broker acks them.
func (h *Handler) Handle(ctx context.Context, ev broker.MailEvent) error {
	if !ev.CreatedAt.IsZero() && h.now().Sub(ev.CreatedAt) > maxEventAge {
		h.log.WarnContext(ctx, "dropping stale mail event",
			slog.String("kind", string(ev.Kind)),
			slog.Time("created_at", ev.CreatedAt))
		mailsTotal.WithLabelValues(string(ev.Kind), "stale").Inc()
		return nil
	}

	msg, err := Render(ev)
	if err != nil {
		mailsTotal.WithLabelValues(string(ev.Kind), "invalid").Inc()
		return err
	}

	if err := h.sender.Send(ctx, msg); err != nil {
		mailsTotal.WithLabelValues(string(ev.Kind), "error").Inc()
		return err
	}

	mailsTotal.WithLabelValues(string(ev.Kind), "sent").Inc()
	h.log.InfoContext(ctx, "mail sent", slog.String("kind", string(ev.Kind)))
	return nil
}

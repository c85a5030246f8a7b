package product

import (
	"fmt"

	"github.com/yungbote/orderdesk-backend/internal/domain/events"
	"github.com/yungbote/orderdesk-backend/internal/platform/logger"
)

// SendEmailWhenCreatedHandler stands in for the catalog notification
// mail; it records the send.
type SendEmailWhenCreatedHandler struct {
	log *logger.Logger
}

func NewSendEmailWhenCreatedHandler(log *logger.Logger) *SendEmailWhenCreatedHandler {
	return &SendEmailWhenCreatedHandler{log: log.With("handler", "SendEmailWhenProductCreated")}
}

func (h *SendEmailWhenCreatedHandler) Handle(event events.Event) error {
	p, ok := event.Payload().(CreatedPayload)
	if !ok {
		return fmt.Errorf("unexpected payload %T for %s", event.Payload(), event.Name())
	}
	h.log.Info("sending email for new product",
		"product_id", p.ProductID,
		"name", p.Name,
		"price", p.Price,
	)
	return nil
}

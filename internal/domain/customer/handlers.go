package customer

import (
	"fmt"

	"github.com/yungbote/orderdesk-backend/internal/domain/events"
	"github.com/yungbote/orderdesk-backend/internal/platform/logger"
)

// LogWhenCreatedHandler records every new customer.
type LogWhenCreatedHandler struct {
	log *logger.Logger
}

func NewLogWhenCreatedHandler(log *logger.Logger) *LogWhenCreatedHandler {
	return &LogWhenCreatedHandler{log: log.With("handler", "LogWhenCustomerCreated")}
}

func (h *LogWhenCreatedHandler) Handle(event events.Event) error {
	p, ok := event.Payload().(CreatedPayload)
	if !ok {
		return fmt.Errorf("unexpected payload %T for %s", event.Payload(), event.Name())
	}
	h.log.Info("customer created", "customer_id", p.CustomerID, "name", p.Name)
	return nil
}

// SendWelcomeWhenCreatedHandler is the second consumer of the created
// event; it stands in for the outbound welcome message.
type SendWelcomeWhenCreatedHandler struct {
	log *logger.Logger
}

func NewSendWelcomeWhenCreatedHandler(log *logger.Logger) *SendWelcomeWhenCreatedHandler {
	return &SendWelcomeWhenCreatedHandler{log: log.With("handler", "SendWelcomeWhenCustomerCreated")}
}

func (h *SendWelcomeWhenCreatedHandler) Handle(event events.Event) error {
	p, ok := event.Payload().(CreatedPayload)
	if !ok {
		return fmt.Errorf("unexpected payload %T for %s", event.Payload(), event.Name())
	}
	h.log.Info("sending welcome message", "customer_id", p.CustomerID, "name", p.Name)
	return nil
}

// LogWhenAddressChangedHandler records address changes with the new
// address rendered in full.
type LogWhenAddressChangedHandler struct {
	log *logger.Logger
}

func NewLogWhenAddressChangedHandler(log *logger.Logger) *LogWhenAddressChangedHandler {
	return &LogWhenAddressChangedHandler{log: log.With("handler", "LogWhenCustomerAddressChanged")}
}

func (h *LogWhenAddressChangedHandler) Handle(event events.Event) error {
	p, ok := event.Payload().(AddressChangedPayload)
	if !ok {
		return fmt.Errorf("unexpected payload %T for %s", event.Payload(), event.Name())
	}
	h.log.Info("customer address changed",
		"customer_id", p.CustomerID,
		"name", p.Name,
		"address", p.Address.String(),
	)
	return nil
}

package customer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/orderdesk-backend/internal/domain/events"
	"github.com/yungbote/orderdesk-backend/internal/platform/logger"
)

func TestHandlers_AcceptTheirPayloads(t *testing.T) {
	log := logger.NewNop()
	c, err := New("c1", "John")
	require.NoError(t, err)
	require.NoError(t, c.ChangeAddress(mustAddress(t)))

	assert.NoError(t, NewLogWhenCreatedHandler(log).Handle(NewCreatedEvent(c)))
	assert.NoError(t, NewSendWelcomeWhenCreatedHandler(log).Handle(NewCreatedEvent(c)))
	assert.NoError(t, NewLogWhenAddressChangedHandler(log).Handle(NewAddressChangedEvent(c)))
}

func TestHandlers_RejectForeignPayloads(t *testing.T) {
	log := logger.NewNop()
	foreign := events.NewBase(EventCreated, struct{ X int }{X: 1})

	assert.Error(t, NewLogWhenCreatedHandler(log).Handle(foreign))
	assert.Error(t, NewSendWelcomeWhenCreatedHandler(log).Handle(foreign))
	assert.Error(t, NewLogWhenAddressChangedHandler(log).Handle(foreign))
}

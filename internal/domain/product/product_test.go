package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/orderdesk-backend/internal/domain/aggregates"
	"github.com/yungbote/orderdesk-backend/internal/platform/logger"
)

func TestNew(t *testing.T) {
	p, err := New("p1", "Keyboard", 49.90)
	require.NoError(t, err)

	assert.Equal(t, "p1", p.ID())
	assert.Equal(t, "Keyboard", p.Name())
	assert.Equal(t, 49.90, p.Price())
}

func TestNew_Rejections(t *testing.T) {
	cases := []struct {
		name  string
		id    string
		pname string
		price float64
	}{
		{"empty id", "", "Keyboard", 10},
		{"empty name", "p1", "", 10},
		{"negative price", "p1", "Keyboard", -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.id, tc.pname, tc.price)
			require.Error(t, err)
			assert.True(t, aggregates.IsValidation(err))
		})
	}
}

func TestNew_ZeroPriceAllowed(t *testing.T) {
	p, err := New("p1", "Sample", 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, p.Price())
}

func TestProduct_ChangePrice(t *testing.T) {
	p, err := New("p1", "Keyboard", 49.90)
	require.NoError(t, err)

	require.NoError(t, p.ChangePrice(59.90))
	assert.Equal(t, 59.90, p.Price())

	err = p.ChangePrice(-0.01)
	require.Error(t, err)
	assert.True(t, aggregates.IsValidation(err))
	assert.Equal(t, 59.90, p.Price())
}

func TestProduct_ChangeName(t *testing.T) {
	p, err := New("p1", "Keyboard", 49.90)
	require.NoError(t, err)

	require.NoError(t, p.ChangeName("Mechanical Keyboard"))
	assert.Equal(t, "Mechanical Keyboard", p.Name())

	require.Error(t, p.ChangeName(" "))
	assert.Equal(t, "Mechanical Keyboard", p.Name())
}

func TestSendEmailWhenCreatedHandler(t *testing.T) {
	log := logger.NewNop()
	p, err := New("p1", "Keyboard", 49.90)
	require.NoError(t, err)

	h := NewSendEmailWhenCreatedHandler(log)
	assert.NoError(t, h.Handle(NewCreatedEvent(p)))

	ev := NewCreatedEvent(p)
	assert.Equal(t, EventCreated, ev.Name())
	payload, ok := ev.Payload().(CreatedPayload)
	require.True(t, ok)
	assert.Equal(t, "p1", payload.ProductID)
	assert.Equal(t, 49.90, payload.Price)
}

package customer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/orderdesk-backend/internal/domain/aggregates"
)

func mustAddress(t *testing.T) Address {
	t.Helper()
	addr, err := NewAddress("Main Street", 123, "13330-250", "Springfield")
	require.NoError(t, err)
	return addr
}

func TestNew(t *testing.T) {
	c, err := New("c1", "John")
	require.NoError(t, err)

	assert.Equal(t, "c1", c.ID())
	assert.Equal(t, "John", c.Name())
	assert.False(t, c.Active())
	assert.False(t, c.HasAddress())
	assert.Equal(t, 0, c.RewardPoints())
}

func TestNew_Rejections(t *testing.T) {
	_, err := New("", "John")
	require.Error(t, err)
	assert.True(t, aggregates.IsValidation(err))

	_, err = New("c1", "  ")
	require.Error(t, err)
	assert.True(t, aggregates.IsValidation(err))
}

func TestCustomer_ChangeName(t *testing.T) {
	c, err := New("c1", "John")
	require.NoError(t, err)

	require.NoError(t, c.ChangeName("Jane"))
	assert.Equal(t, "Jane", c.Name())

	err = c.ChangeName("")
	require.Error(t, err)
	assert.True(t, aggregates.IsValidation(err))
	assert.Equal(t, "Jane", c.Name())
}

func TestCustomer_ChangeAddress(t *testing.T) {
	c, err := New("c1", "John")
	require.NoError(t, err)

	addr := mustAddress(t)
	require.NoError(t, c.ChangeAddress(addr))
	assert.True(t, c.HasAddress())
	assert.True(t, c.Address().Equal(addr))

	err = c.ChangeAddress(Address{})
	require.Error(t, err)
	assert.True(t, aggregates.IsValidation(err))
	assert.True(t, c.Address().Equal(addr))
}

func TestCustomer_ActivateRequiresAddress(t *testing.T) {
	c, err := New("c1", "John")
	require.NoError(t, err)

	err = c.Activate()
	require.Error(t, err)
	assert.True(t, aggregates.IsInvalidState(err))
	assert.False(t, c.Active())

	require.NoError(t, c.ChangeAddress(mustAddress(t)))
	require.NoError(t, c.Activate())
	assert.True(t, c.Active())

	c.Deactivate()
	assert.False(t, c.Active())
}

func TestCustomer_AddRewardPoints(t *testing.T) {
	c, err := New("c1", "John")
	require.NoError(t, err)

	require.NoError(t, c.AddRewardPoints(10))
	require.NoError(t, c.AddRewardPoints(10))
	assert.Equal(t, 20, c.RewardPoints())

	err = c.AddRewardPoints(0)
	require.Error(t, err)
	assert.True(t, aggregates.IsValidation(err))

	err = c.AddRewardPoints(-5)
	require.Error(t, err)
	assert.True(t, aggregates.IsValidation(err))

	assert.Equal(t, 20, c.RewardPoints())
}

func TestRestore(t *testing.T) {
	addr := mustAddress(t)
	c := Restore("c1", "John", addr, true, 42)

	assert.Equal(t, "c1", c.ID())
	assert.Equal(t, "John", c.Name())
	assert.True(t, c.Active())
	assert.Equal(t, 42, c.RewardPoints())
	assert.True(t, c.Address().Equal(addr))
}

package order_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustAgentID(t *testing.T, s string) kernel.AgentID {
	t.Helper()
	id, err := kernel.NewAgentID(s)
	require.NoError(t, err)
	return id
}

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should create order in Preparing status", func(t *testing.T) {
		id := kernel.NewUUID()
		createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

		o, err := order.NewOrder(id, createdAt)

		require.NoError(t, err)
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, order.Preparing, o.Status())
		assert.Nil(t, o.AssignedAgent())
		assert.Nil(t, o.DeliveredAt())
		assert.Equal(t, createdAt, o.CreatedAt())
		require.NoError(t, o.Validate())
	})

	t.Run("should reject invalid ID", func(t *testing.T) {
		_, err := order.NewOrder(kernel.UUID{}, time.Now())

		require.Error(t, err)
	})

	t.Run("should reject zero created time", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), time.Time{})

		require.Error(t, err)
	})
}

func TestRestoreOrder(t *testing.T) {
	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("should restore an assigned order", func(t *testing.T) {
		id := kernel.NewUUID()
		agentID := mustAgentID(t, "agent-1")

		o, err := order.RestoreOrder(id, &agentID, order.OnRoute, nil, createdAt)

		require.NoError(t, err)
		assert.Equal(t, order.OnRoute, o.Status())
		assert.True(t, o.IsAssignedTo(agentID))
	})

	t.Run("should restore a delivered order with timestamp", func(t *testing.T) {
		agentID := mustAgentID(t, "agent-1")
		deliveredAt := createdAt.Add(45 * time.Minute)

		o, err := order.RestoreOrder(kernel.NewUUID(), &agentID, order.Delivered, &deliveredAt, createdAt)

		require.NoError(t, err)
		require.NotNil(t, o.DeliveredAt())
		assert.Equal(t, deliveredAt, *o.DeliveredAt())
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewUUID(), nil, order.Unknown, nil, createdAt)

		require.Error(t, err)
	})

	t.Run("should reject delivered order without timestamp", func(t *testing.T) {
		agentID := mustAgentID(t, "agent-1")

		_, err := order.RestoreOrder(kernel.NewUUID(), &agentID, order.Delivered, nil, createdAt)

		require.ErrorIs(t, err, order.ErrDeliveredAtInconsistent)
	})

	t.Run("should reject timestamp on undelivered order", func(t *testing.T) {
		deliveredAt := createdAt.Add(time.Hour)

		_, err := order.RestoreOrder(kernel.NewUUID(), nil, order.Preparing, &deliveredAt, createdAt)

		require.ErrorIs(t, err, order.ErrDeliveredAtInconsistent)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var o order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("nil order fails validation", func(t *testing.T) {
		var o *order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_AssignAgent(t *testing.T) {
	t.Run("should assign an agent", func(t *testing.T) {
		o := newTestOrder(t)
		agentID := mustAgentID(t, "agent-1")

		require.NoError(t, o.AssignAgent(agentID))

		assert.True(t, o.IsAssignedTo(agentID))
	})

	t.Run("should allow reassignment before delivery", func(t *testing.T) {
		o := newTestOrder(t)
		first := mustAgentID(t, "agent-1")
		second := mustAgentID(t, "agent-2")

		require.NoError(t, o.AssignAgent(first))
		require.NoError(t, o.AssignAgent(second))

		assert.False(t, o.IsAssignedTo(first))
		assert.True(t, o.IsAssignedTo(second))
	})

	t.Run("should reject zero-value agent ID", func(t *testing.T) {
		o := newTestOrder(t)

		require.Error(t, o.AssignAgent(kernel.AgentID{}))
	})

	t.Run("should reject reassignment of a delivered order", func(t *testing.T) {
		o := newTestOrder(t)
		agentID := mustAgentID(t, "agent-1")
		require.NoError(t, o.AssignAgent(agentID))
		require.NoError(t, o.Advance(order.OnRoute, time.Now()))
		require.NoError(t, o.Advance(order.Delivered, time.Now()))

		err := o.AssignAgent(mustAgentID(t, "agent-2"))

		require.Error(t, err)
		assert.True(t, o.IsAssignedTo(agentID))
	})
}

func TestOrder_IsAssignedTo(t *testing.T) {
	t.Run("unassigned order matches no agent", func(t *testing.T) {
		o := newTestOrder(t)

		assert.False(t, o.IsAssignedTo(mustAgentID(t, "agent-1")))
	})

	t.Run("assigned order matches only its agent", func(t *testing.T) {
		o := newTestOrder(t)
		agentID := mustAgentID(t, "agent-1")
		require.NoError(t, o.AssignAgent(agentID))

		assert.True(t, o.IsAssignedTo(agentID))
		assert.False(t, o.IsAssignedTo(mustAgentID(t, "agent-2")))
	})
}

func TestOrder_Advance(t *testing.T) {
	now := time.Date(2025, 6, 1, 13, 30, 0, 0, time.UTC)

	t.Run("Preparing to OnRoute does not set DeliveredAt", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.Advance(order.OnRoute, now))

		assert.Equal(t, order.OnRoute, o.Status())
		assert.Nil(t, o.DeliveredAt())
	})

	t.Run("OnRoute to Delivered sets DeliveredAt to the processing time", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Advance(order.OnRoute, now))

		require.NoError(t, o.Advance(order.Delivered, now.Add(20*time.Minute)))

		assert.Equal(t, order.Delivered, o.Status())
		require.NotNil(t, o.DeliveredAt())
		assert.Equal(t, now.Add(20*time.Minute), *o.DeliveredAt())
	})

	t.Run("skip transition leaves the order unchanged", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.Advance(order.Delivered, now)

		require.Error(t, err)
		assert.Equal(t, order.Preparing, o.Status())
		assert.Nil(t, o.DeliveredAt())
	})

	t.Run("no transition leaves Delivered", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Advance(order.OnRoute, now))
		require.NoError(t, o.Advance(order.Delivered, now))
		deliveredAt := *o.DeliveredAt()

		for _, requested := range []order.Status{order.Preparing, order.OnRoute, order.Delivered} {
			require.Error(t, o.Advance(requested, now.Add(time.Hour)))
		}

		assert.Equal(t, order.Delivered, o.Status())
		assert.Equal(t, deliveredAt, *o.DeliveredAt())
	})
}

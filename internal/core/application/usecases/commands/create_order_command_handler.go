package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/clock"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Creates and persists new order entities in Preparing status, optionally
// assigned to a delivery agent from the start.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, clock.SystemClock{})
//	cmd, _ := NewCreateOrderCommand(kernel.NewUUID(), &agentID)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      clock.Clock
}

// NewCreateOrderCommandHandler creates a handler for order creation.
// Requires an OrderUoWFactory for transactional persistence and a clock
// for stamping the creation time.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, clk clock.Clock) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clk,
	}
}

// Handle processes the order creation command.
// Creates a new order entity and persists it within a transaction.
// Automatically rolls back on any error to prevent partial data.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderEntity, err := order.NewOrder(cmd.OrderID(), h.clock.Now())
	if err != nil {
		return err
	}

	if agentID := cmd.AgentID(); agentID != nil {
		if err = orderEntity.AssignAgent(*agentID); err != nil {
			return err
		}
	}

	orderRepo := uow.OrderRepository()
	if err = orderRepo.Add(ctx, orderEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

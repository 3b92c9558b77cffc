package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/clock"
	"fulfillment/internal/pkg/errs"
)

// Failure messages reported by the status-update workflow. These are part of
// the API contract and mirror what callers have always received.
const (
	msgOrderNotFound      = "Order not found"
	msgAgentNotAuthorized = "Delivery man is not authorized to update this order"
	msgPersistFailed      = "Failed to update order status"
)

// UpdateOrderStatusResponse is the structured result of a status-update
// attempt. Every attempt, success or failure, yields one of these: Success
// and Message describe the outcome, CurrentStatus carries the order's status
// when known (the new status on success), and UpdatedAt records when the
// attempt was processed.
type UpdateOrderStatusResponse struct {
	Success       bool
	Message       string
	OrderID       kernel.UUID
	CurrentStatus order.Status
	UpdatedAt     time.Time
}

// UpdateOrderStatusCommandHandler orchestrates the order status transition
// workflow: authorization, transition validation, mutation, and persistence.
//
// The whole window runs inside one unit-of-work transaction with the order
// row locked, so two concurrent updates of the same order serialize at the
// database and cannot both validate against the same observed status.
//
// Faults never escape Handle; every outcome is reported as an
// UpdateOrderStatusResponse.
//
// Example:
//
//	handler := NewUpdateOrderStatusCommandHandler(uowFactory, auditSink, clk)
//	result := handler.Handle(ctx, cmd)
//	if !result.Success {
//	    log.Printf("update rejected: %s", result.Message)
//	}
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	validator  services.TransitionValidator
	auditSink  ports.AuditSink
	clock      clock.Clock
}

// NewUpdateOrderStatusCommandHandler creates a handler for status-update operations.
// Requires an OrderUoWFactory for the transactional window, an AuditSink for
// optional agent location reports (use ports.NopAuditSink to discard them),
// and a Clock for processing timestamps.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	auditSink ports.AuditSink,
	clk clock.Clock,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		validator:  services.NewTransitionValidator(),
		auditSink:  auditSink,
		clock:      clk,
	}
}

// Handle processes the status-update command.
//
// Steps, short-circuiting on the first failure:
//  1. Fetch the order inside a transaction with its row locked. A missing
//     order reports "Order not found".
//  2. Authorization: a requester who is not the order's assigned agent is
//     rejected without touching any state.
//  3. Validation: the requested status must be the immediate successor of the
//     current status; the failure carries the validator's reason and the
//     observed current status.
//  4. Mutation and commit: the status (and DeliveredAt on the final
//     transition) persist atomically. A failed write reports
//     "Failed to update order status" without retry.
//  5. After commit, a supplied agent location goes to the audit sink,
//     best-effort.
//
// Any unexpected fault is converted into a failure response embedding the
// fault description; it never propagates to the caller.
func (h UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderStatusCommand,
) UpdateOrderStatusResponse {
	now := h.clock.Now()

	if err := cmd.Validate(); err != nil {
		return h.failure(cmd, now, err.Error(), order.Unknown)
	}

	resp, err := h.handle(ctx, cmd, now)
	if err != nil {
		return h.failure(cmd, now, fmt.Sprintf("An error occurred: %s", err), order.Unknown)
	}
	return resp
}

func (h UpdateOrderStatusCommandHandler) handle(
	ctx context.Context,
	cmd UpdateOrderStatusCommand,
	now time.Time,
) (UpdateOrderStatusResponse, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return UpdateOrderStatusResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return h.failure(cmd, now, msgOrderNotFound, order.Unknown), nil
	}
	if err != nil {
		return UpdateOrderStatusResponse{}, err
	}

	if !aggregate.IsAssignedTo(cmd.AgentID()) {
		return h.failure(cmd, now, msgAgentNotAuthorized, order.Unknown), nil
	}

	verdict := h.validator.Validate(aggregate, cmd.NewStatus())
	if !verdict.IsValid {
		return h.failure(cmd, now, verdict.Reason, verdict.CurrentStatus), nil
	}

	if err = aggregate.Advance(cmd.NewStatus(), now); err != nil {
		return h.failure(cmd, now, err.Error(), aggregate.Status()), nil
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return h.failure(cmd, now, msgPersistFailed, order.Unknown), nil
	}

	if err = uow.Commit(ctx); err != nil {
		return h.failure(cmd, now, msgPersistFailed, order.Unknown), nil
	}

	// Committed. Location reports are telemetry only and never fail the update.
	if loc := cmd.Location(); loc != nil {
		_ = h.auditSink.RecordAgentLocation(ctx, cmd.OrderID(), cmd.AgentID(), *loc, now)
	}

	return UpdateOrderStatusResponse{
		Success:       true,
		Message:       fmt.Sprintf("Order status successfully updated to %s", cmd.NewStatus()),
		OrderID:       cmd.OrderID(),
		CurrentStatus: cmd.NewStatus(),
		UpdatedAt:     now,
	}, nil
}

func (h UpdateOrderStatusCommandHandler) failure(
	cmd UpdateOrderStatusCommand,
	now time.Time,
	message string,
	currentStatus order.Status,
) UpdateOrderStatusResponse {
	return UpdateOrderStatusResponse{
		Success:       false,
		Message:       message,
		OrderID:       cmd.OrderID(),
		CurrentStatus: currentStatus,
		UpdatedAt:     now,
	}
}

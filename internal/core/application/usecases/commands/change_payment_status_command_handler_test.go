package commands_test

import (
	"testing"
	"time"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/order"
	"parceltrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestChangePaymentStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	createdAt := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)
	now := createdAt.Add(3 * time.Hour)

	stored := restoredOrderFixture(t, createdAt)
	historyBefore := len(stored.StatusHistory())

	cmd, err := commands.NewChangePaymentStatusCommand(stored.ID(), order.PaymentRefunded, "txn_refund_77")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		repo.On("Update", mock.Anything, stored).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangePaymentStatusCommandHandler(factory, fixedClock{now: now})
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, order.PaymentRefunded, updated.PaymentStatus())
	assert.Equal(t, "txn_refund_77", updated.TransactionID())
	assert.Equal(t, now, updated.UpdatedAt())
	// Payment changes never show up in the delivery timeline.
	assert.Len(t, updated.StatusHistory(), historyBefore)

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestChangePaymentStatusCommandHandler_Handle_KeepsStoredTransactionID(t *testing.T) {
	ctx := t.Context()
	createdAt := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

	stored := restoredOrderFixture(t, createdAt)
	storedTxn := stored.TransactionID()
	require.NotEmpty(t, storedTxn)

	cmd, err := commands.NewChangePaymentStatusCommand(stored.ID(), order.PaymentPartiallyPaid, "")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		repo.On("Update", mock.Anything, stored).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangePaymentStatusCommandHandler(factory, fixedClock{now: createdAt.Add(time.Hour)})
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, order.PaymentPartiallyPaid, updated.PaymentStatus())
	assert.Equal(t, storedTxn, updated.TransactionID())
}

func TestChangePaymentStatusCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.ChangePaymentStatusCommand{} // not constructed properly
	factory := new(MockOrderUoWFactory)
	h := commands.NewChangePaymentStatusCommandHandler(factory, fixedClock{now: time.Now()})
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}

func TestChangePaymentStatusCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	missingID := kernel.NewUUID()
	cmd, err := commands.NewChangePaymentStatusCommand(missingID, order.PaymentPaid, "")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, missingID).
			Return(nil, errs.NewObjectNotFoundError("orderID", missingID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangePaymentStatusCommandHandler(factory, fixedClock{now: time.Now()})
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	repo.AssertNotCalled(t, "Update")
}

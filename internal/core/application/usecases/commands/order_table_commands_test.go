package commands_test

import (
	"testing"

	"kitchenpos/internal/core/application/usecases/commands"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/ordertable"
	"kitchenpos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderTableCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderTableCommand("9번")
	require.NoError(t, err)

	tableRepo := new(MockOrderTableRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderTableRepository").Return(tableRepo).Once(),
		tableRepo.On("Add", ctx, mock.MatchedBy(func(tbl *ordertable.OrderTable) bool {
			return tbl.Name().Value() == "9번" && !tbl.IsOccupied() && tbl.NumberOfGuests().Value() == 0
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	id, err := commands.NewCreateOrderTableCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	require.NoError(t, id.Validate())
	tableRepo.AssertExpectations(t)
}

func TestChangeOrderTableCommandHandler_Sit(t *testing.T) {
	ctx := t.Context()
	tbl := table(t, false)
	cmd, err := commands.NewSitOrderTableCommand(tbl.ID())
	require.NoError(t, err)

	tableRepo := new(MockOrderTableRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderTableRepository").Return(tableRepo).Once(),
		tableRepo.On("Get", ctx, tbl.ID()).Return(tbl, nil).Once(),
		tableRepo.On("Update", ctx, tbl).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	require.NoError(t, commands.NewChangeOrderTableCommandHandler(factory).Handle(ctx, cmd))
	assert.True(t, tbl.IsOccupied())
}

func TestChangeOrderTableCommandHandler_Clear(t *testing.T) {
	tests := []struct {
		name        string
		uncompleted int64
		wantErr     error
	}{
		{"no uncompleted orders", 0, nil},
		{"uncompleted orders remain", 2, errs.ErrIllegalState},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctx := t.Context()
			tbl := table(t, true)
			cmd, err := commands.NewClearOrderTableCommand(tbl.ID())
			require.NoError(t, err)

			tableRepo := new(MockOrderTableRepository)
			orderRepo := new(MockEatInOrderRepository)
			uow := new(MockUoW)
			factory := new(MockUoWFactory)

			factory.On("Create").Return(uow).Once()
			uow.On("Begin", ctx).Return(nil).Once()
			uow.On("OrderTableRepository").Return(tableRepo).Once()
			uow.On("EatInOrderRepository").Return(orderRepo).Once()
			tableRepo.On("Get", ctx, tbl.ID()).Return(tbl, nil).Once()
			orderRepo.On("CountUncompletedByOrderTable", ctx, tbl.ID()).Return(tc.uncompleted, nil).Once()
			uow.On("Rollback", ctx).Return(nil).Once()
			if tc.wantErr == nil {
				tableRepo.On("Update", ctx, tbl).Return(nil).Once()
				uow.On("Commit", ctx).Return(nil).Once()
			}

			err = commands.NewChangeOrderTableCommandHandler(factory).Handle(ctx, cmd)

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.True(t, tbl.IsOccupied())
				return
			}
			require.NoError(t, err)
			assert.False(t, tbl.IsOccupied())
			assert.Equal(t, 0, tbl.NumberOfGuests().Value())
		})
	}
}

func TestChangeOrderTableCommandHandler_ChangeNumberOfGuests(t *testing.T) {
	four, err := ordertable.NewNumberOfGuests(4)
	require.NoError(t, err)

	t.Run("occupied table", func(t *testing.T) {
		ctx := t.Context()
		tbl := table(t, true)
		cmd, err := commands.NewChangeNumberOfGuestsCommand(tbl.ID(), four)
		require.NoError(t, err)

		tableRepo := new(MockOrderTableRepository)
		uow := new(MockUoW)
		factory := new(MockUoWFactory)

		factory.On("Create").Return(uow).Once()
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("OrderTableRepository").Return(tableRepo).Once()
		tableRepo.On("Get", ctx, tbl.ID()).Return(tbl, nil).Once()
		tableRepo.On("Update", ctx, tbl).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		require.NoError(t, commands.NewChangeOrderTableCommandHandler(factory).Handle(ctx, cmd))
		assert.Equal(t, 4, tbl.NumberOfGuests().Value())
	})

	t.Run("empty table", func(t *testing.T) {
		ctx := t.Context()
		tbl := table(t, false)
		cmd, err := commands.NewChangeNumberOfGuestsCommand(tbl.ID(), four)
		require.NoError(t, err)

		tableRepo := new(MockOrderTableRepository)
		uow := new(MockUoW)
		factory := new(MockUoWFactory)

		factory.On("Create").Return(uow).Once()
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("OrderTableRepository").Return(tableRepo).Once()
		tableRepo.On("Get", ctx, tbl.ID()).Return(tbl, nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		err = commands.NewChangeOrderTableCommandHandler(factory).Handle(ctx, cmd)
		require.ErrorIs(t, err, errs.ErrIllegalState)
	})

	t.Run("missing number of guests", func(t *testing.T) {
		_, err := commands.NewChangeNumberOfGuestsCommand(kernel.NewUUID(), ordertable.NumberOfGuests{})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

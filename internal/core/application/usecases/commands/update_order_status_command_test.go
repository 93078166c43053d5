package commands_test

import (
	"testing"

	"foodrescue/internal/core/application/usecases/commands"
	"foodrescue/internal/core/domain/model/kernel"
	"foodrescue/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateOrderStatusCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	actorID := kernel.NewUUID()

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, actorID, order.Confirmed)

	require.NoError(t, err)
	assert.True(t, cmd.OrderID().IsEqual(orderID))
	assert.True(t, cmd.ActorID().IsEqual(actorID))
	assert.Equal(t, order.Confirmed, cmd.TargetStatus())
	require.NoError(t, cmd.Validate())
}

func TestNewUpdateOrderStatusCommand_AllTargets(t *testing.T) {
	for _, target := range []order.Status{order.Confirmed, order.PickedUp, order.Cancelled} {
		t.Run(target.String(), func(t *testing.T) {
			cmd, err := commands.NewUpdateOrderStatusCommand(
				kernel.NewUUID(), kernel.NewUUID(), target)

			require.NoError(t, err)
			assert.Equal(t, target, cmd.TargetStatus())
		})
	}
}

func TestNewUpdateOrderStatusCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewUpdateOrderStatusCommand(
		kernel.UUID{}, kernel.NewUUID(), order.Confirmed)

	require.Error(t, err)
}

func TestNewUpdateOrderStatusCommand_InvalidActorID(t *testing.T) {
	_, err := commands.NewUpdateOrderStatusCommand(
		kernel.NewUUID(), kernel.UUID{}, order.Confirmed)

	require.Error(t, err)
}

func TestNewUpdateOrderStatusCommand_UnknownStatus(t *testing.T) {
	_, err := commands.NewUpdateOrderStatusCommand(
		kernel.NewUUID(), kernel.NewUUID(), order.Unknown)

	require.Error(t, err)
}

func TestUpdateOrderStatusCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.UpdateOrderStatusCommand

	err := cmd.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrUpdateOrderStatusCommandIsNotConstructed)
}

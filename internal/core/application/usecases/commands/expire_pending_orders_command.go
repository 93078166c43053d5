package commands

import (
	"errors"

	"foodrescue/internal/pkg/guard"
)

var ErrExpirePendingOrdersCommandIsNotConstructed = errors.New(
	"ExpirePendingOrdersCommand must be created via NewExpirePendingOrdersCommand constructor",
)

// ExpirePendingOrdersCommand triggers the batch cancellation of pending orders
// whose pickup window has fully elapsed. Their reserved units go back on sale.
//
// Example:
//
//	cmd := NewExpirePendingOrdersCommand()
//	handler := NewExpirePendingOrdersCommandHandler(uowFactory)
//
//	// Run periodically from a scheduler
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("Expiry sweep failed: %v", err)
//	}
type ExpirePendingOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewExpirePendingOrdersCommand creates a command to sweep stale pending orders.
// This is a parameterless command that processes all expired reservations.
func NewExpirePendingOrdersCommand() ExpirePendingOrdersCommand {
	command := ExpirePendingOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
// Returns ErrExpirePendingOrdersCommandIsNotConstructed if validation fails.
func (c *ExpirePendingOrdersCommand) Validate() error {
	return c.guard.Validate(ErrExpirePendingOrdersCommandIsNotConstructed)
}

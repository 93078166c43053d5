package services_test

import (
	"testing"

	"foodrescue/internal/core/domain/model/account"
	"foodrescue/internal/core/domain/model/kernel"
	"foodrescue/internal/core/domain/services"
	"foodrescue/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

func actorWithRole(t *testing.T, role account.Role) account.Actor {
	t.Helper()

	actor, err := account.NewActor(kernel.NewUUID(), role)
	require.NoError(t, err)
	return actor
}

func TestAccessPolicy_Authorize_ViewOrder(t *testing.T) {
	policy := services.NewAccessPolicy()

	t.Run("order owner may view", func(t *testing.T) {
		actor := actorWithRole(t, account.Customer)

		err := policy.Authorize(actor, services.Relationship{IsOrderOwner: true}, services.ViewOrder)

		require.NoError(t, err)
	})

	t.Run("admin may view any order", func(t *testing.T) {
		actor := actorWithRole(t, account.Admin)

		err := policy.Authorize(actor, services.Relationship{}, services.ViewOrder)

		require.NoError(t, err)
	})

	t.Run("unrelated customer is forbidden", func(t *testing.T) {
		actor := actorWithRole(t, account.Customer)

		err := policy.Authorize(actor, services.Relationship{}, services.ViewOrder)

		require.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("worker role alone does not grant view", func(t *testing.T) {
		actor := actorWithRole(t, account.Worker)

		err := policy.Authorize(actor, services.Relationship{IsActiveWorker: true}, services.ViewOrder)

		require.ErrorIs(t, err, errs.ErrForbidden)
	})
}

func TestAccessPolicy_Authorize_ViewBusinessOrders(t *testing.T) {
	policy := services.NewAccessPolicy()

	t.Run("business owner may view", func(t *testing.T) {
		actor := actorWithRole(t, account.BusinessOwner)

		err := policy.Authorize(actor,
			services.Relationship{IsBusinessOwner: true}, services.ViewBusinessOrders)

		require.NoError(t, err)
	})

	t.Run("active worker may view", func(t *testing.T) {
		actor := actorWithRole(t, account.Worker)

		err := policy.Authorize(actor,
			services.Relationship{IsActiveWorker: true}, services.ViewBusinessOrders)

		require.NoError(t, err)
	})

	t.Run("unrelated actor is forbidden", func(t *testing.T) {
		actor := actorWithRole(t, account.BusinessOwner)

		err := policy.Authorize(actor, services.Relationship{}, services.ViewBusinessOrders)

		require.ErrorIs(t, err, errs.ErrForbidden)
	})
}

func TestAccessPolicy_Authorize_CreateOrder(t *testing.T) {
	policy := services.NewAccessPolicy()

	t.Run("any authenticated role may place an order", func(t *testing.T) {
		roles := []account.Role{
			account.Customer, account.BusinessOwner, account.Worker, account.Admin,
		}

		for _, role := range roles {
			actor := actorWithRole(t, role)

			require.NoError(t,
				policy.Authorize(actor, services.Relationship{}, services.CreateOrder),
				role.String())
		}
	})

	t.Run("unconstructed actor still fails", func(t *testing.T) {
		var actor account.Actor

		err := policy.Authorize(actor, services.Relationship{}, services.CreateOrder)

		require.Error(t, err)
	})
}

func TestAccessPolicy_Authorize_ConfirmOrder(t *testing.T) {
	policy := services.NewAccessPolicy()

	t.Run("confirmation is broadly permitted", func(t *testing.T) {
		cases := []struct {
			name  string
			actor account.Actor
			rel   services.Relationship
		}{
			{"order owner", actorWithRole(t, account.Customer), services.Relationship{IsOrderOwner: true}},
			{"business owner", actorWithRole(t, account.BusinessOwner), services.Relationship{IsBusinessOwner: true}},
			{"active worker", actorWithRole(t, account.Worker), services.Relationship{IsActiveWorker: true}},
			{"admin", actorWithRole(t, account.Admin), services.Relationship{}},
		}

		for _, tc := range cases {
			require.NoError(t, policy.Authorize(tc.actor, tc.rel, services.ConfirmOrder), tc.name)
		}
	})

	t.Run("unrelated actor is forbidden", func(t *testing.T) {
		actor := actorWithRole(t, account.Customer)

		err := policy.Authorize(actor, services.Relationship{}, services.ConfirmOrder)

		require.ErrorIs(t, err, errs.ErrForbidden)
	})
}

func TestAccessPolicy_Authorize_CancelOrder(t *testing.T) {
	policy := services.NewAccessPolicy()

	t.Run("order owner may cancel", func(t *testing.T) {
		actor := actorWithRole(t, account.Customer)

		err := policy.Authorize(actor, services.Relationship{IsOrderOwner: true}, services.CancelOrder)

		require.NoError(t, err)
	})

	t.Run("admin may cancel", func(t *testing.T) {
		actor := actorWithRole(t, account.Admin)

		err := policy.Authorize(actor, services.Relationship{}, services.CancelOrder)

		require.NoError(t, err)
	})

	t.Run("business owner may not cancel a customer's order", func(t *testing.T) {
		actor := actorWithRole(t, account.BusinessOwner)

		err := policy.Authorize(actor, services.Relationship{IsBusinessOwner: true}, services.CancelOrder)

		require.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("worker may not cancel", func(t *testing.T) {
		actor := actorWithRole(t, account.Worker)

		err := policy.Authorize(actor, services.Relationship{IsActiveWorker: true}, services.CancelOrder)

		require.ErrorIs(t, err, errs.ErrForbidden)
	})
}

func TestAccessPolicy_Authorize_PickUpOrder(t *testing.T) {
	policy := services.NewAccessPolicy()

	t.Run("active worker of the business may pick up", func(t *testing.T) {
		actor := actorWithRole(t, account.Worker)

		err := policy.Authorize(actor, services.Relationship{IsActiveWorker: true}, services.PickUpOrder)

		require.NoError(t, err)
	})

	t.Run("order owner may not pick up", func(t *testing.T) {
		actor := actorWithRole(t, account.Customer)

		err := policy.Authorize(actor, services.Relationship{IsOrderOwner: true}, services.PickUpOrder)

		require.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("even admin may not pick up", func(t *testing.T) {
		actor := actorWithRole(t, account.Admin)

		err := policy.Authorize(actor, services.Relationship{}, services.PickUpOrder)

		require.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("worker role without membership is forbidden", func(t *testing.T) {
		actor := actorWithRole(t, account.Worker)

		err := policy.Authorize(actor, services.Relationship{}, services.PickUpOrder)

		require.ErrorIs(t, err, errs.ErrForbidden)
	})
}

func TestAccessPolicy_Authorize_Validation(t *testing.T) {
	policy := services.NewAccessPolicy()

	t.Run("unconstructed actor fails", func(t *testing.T) {
		var actor account.Actor

		err := policy.Authorize(actor, services.Relationship{}, services.ViewOrder)

		require.Error(t, err)
	})

	t.Run("unknown action is forbidden", func(t *testing.T) {
		actor := actorWithRole(t, account.Admin)

		err := policy.Authorize(actor, services.Relationship{}, services.UnknownAction)

		require.ErrorIs(t, err, errs.ErrForbidden)
	})
}

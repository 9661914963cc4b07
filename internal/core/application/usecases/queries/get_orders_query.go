package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrGetOrdersQueryIsNotConstructed = errors.New(
		"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
	)
	ErrRoleHasNoOrderList = errors.New("role has no order list")
)

// GetOrdersQuery retrieves the order history for one party: a customer's
// orders, a restaurant's incoming orders, or a driver's deliveries, depending
// on the role.
type GetOrdersQuery struct {
	partyID kernel.UUID
	role    kernel.Role

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query for a party's order list. Admins have no
// personal order list and are rejected here.
func NewGetOrdersQuery(partyID kernel.UUID, role kernel.Role) (GetOrdersQuery, error) {
	if err := errors.Join(partyID.Validate(), role.Validate()); err != nil {
		return GetOrdersQuery{}, err
	}

	if role == kernel.RoleAdmin {
		return GetOrdersQuery{}, ErrRoleHasNoOrderList
	}

	return GetOrdersQuery{
		partyID: partyID,
		role:    role,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// PartyID returns whose orders are requested.
func (q GetOrdersQuery) PartyID() kernel.UUID { return q.partyID }

// Role returns which relationship to the order the party has.
func (q GetOrdersQuery) Role() kernel.Role { return q.role }

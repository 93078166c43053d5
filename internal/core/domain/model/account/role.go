// Package account holds the identity value objects the order core consumes
// from the identity subsystem: the actor making a request and their role.
// Authentication itself (JWT issuance, sessions) lives outside this service;
// the core only needs to know who is acting and in what capacity.
package account

import (
	"fmt"

	"foodrescue/internal/pkg/errs"
)

// Role represents the capacity in which a user interacts with the marketplace.
// Roles alone are not enough for authorization decisions; the access policy
// also evaluates the actor's relationship to the specific order and business.
type Role int

const (
	// UnknownRole represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	UnknownRole Role = iota

	// Customer places orders for surplus-food packages.
	Customer

	// BusinessOwner manages a business and the packages it lists.
	BusinessOwner

	// Worker handles pickups for a specific business.
	Worker

	// Admin has unrestricted access for support and moderation.
	Admin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole:   "Unknown",
		Customer:      "Customer",
		BusinessOwner: "BusinessOwner",
		Worker:        "Worker",
		Admin:         "Admin",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // UnknownRole is intentionally excluded as it's invalid
	return map[Role]string{
		Customer:      "Customer",
		BusinessOwner: "BusinessOwner",
		Worker:        "Worker",
		Admin:         "Admin",
	}
}

// RoleFromString parses a role from its persisted string representation.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause(
		"role is invalid", fmt.Errorf("%q is not a valid role", s))
}

// Validate checks if the Role value is valid.
// Valid roles are: Customer, BusinessOwner, Worker, Admin.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"role is invalid", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the human-readable name of the role.
// Implements the fmt.Stringer interface and is safe to call on any Role value.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}

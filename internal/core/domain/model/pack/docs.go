// Package pack contains the Package aggregate: a business's surplus-food
// offer with a discounted price, limited quantity, and a fixed pickup window.
//
// The aggregate validates the preconditions of a reservation (active flag,
// pickup window, requested quantity), but the stock counter itself is only
// mutated through the repository's atomic reserve/release operations so that
// concurrent reservations can never oversell. Packages are created and edited
// by the business-management subsystem; this core treats them as inventory.
package pack

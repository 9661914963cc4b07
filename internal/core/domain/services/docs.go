// Package services provides domain services that orchestrate business
// operations across multiple aggregates. It implements workflows that don't
// naturally belong to a single aggregate root, such as matching a pending
// order with the best available driver.
package services

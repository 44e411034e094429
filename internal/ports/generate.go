// Package ports holds the interfaces the dashboard core depends on. Adapters
// implement them; internal/mocks carries generated testify mocks.
//
//go:generate mockery
package ports

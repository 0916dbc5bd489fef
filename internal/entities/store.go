// Package entities contains core business entities.
package entities

// Store is a retail location issues may reference. Codes are numeric
// in practice but kept as strings; uniqueness is exact string match.
type Store struct {
	Code string
	Name string
}

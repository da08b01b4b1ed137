// Package credentials persists the single credential pair of the local
// user. The pair is always written and cleared as a unit.
package credentials

// Package postgreswrapper provides database wrapper utilities for testing
// the ledger store across all supported adapter types.
package postgreswrapper

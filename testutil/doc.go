// Package testutil provides shared helpers for tests, such as a fixed clock
// and a logging spy.
package testutil

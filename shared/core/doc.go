// Package core holds the pure building blocks shared by the feature
// packages: the DecisionResult type that models the outcome of a business
// decision without side effects.
//
// Nothing in this package touches storage, clocks, or logging; the Decide
// functions of the command features return DecisionResults and the handlers
// translate them into conditional writes.
package core

// Package shell holds the infrastructure helpers shared by the feature
// packages: the retry loop with exponential backoff for concurrency
// conflicts, and the HandlerResult metadata the command handlers return
// alongside their business outcome.
package shell

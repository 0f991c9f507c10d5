// Package authenticateuser implements credential verification for the
// caller-facing surface. Passwords are stored as bcrypt hashes; a missing
// account and a wrong password are indistinguishable to the caller.
package authenticateuser

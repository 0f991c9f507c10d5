// Package addbook implements the catalog use case of adding a book. The
// metadata is opaque to the lending core; a freshly added book starts out
// available.
package addbook

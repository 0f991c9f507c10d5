// Package updatebook implements the catalog use case of editing a book's
// metadata. Title, author, and genre are opaque to the lending core; the
// availability flag is never touched here.
package updatebook

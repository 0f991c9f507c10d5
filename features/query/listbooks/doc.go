// Package listbooks implements the read-side use case of listing the catalog
// with each book's availability flag.
package listbooks

// Package sqlite provides the site persistence adapter backed by SQLite.
package sqlite

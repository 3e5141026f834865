// Package queries contains read operations against the remote store. Queries
// never mutate; each Handle call re-fetches from the store, which is the
// single source of truth. Filter predicates are pushed down to the store as
// query parameters so result sets stay bounded.
package queries

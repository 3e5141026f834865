// Package commands contains business operations that mutate state in the
// remote store. Each operation is a command object validated at construction
// plus a handler that performs the remote calls.
//
// Handlers fail fast: every validation happens before the first mutation, so
// a rejected command leaves no partial writes. There is no transaction
// spanning multiple remote calls; a failure between calls is surfaced to the
// caller as is.
package commands

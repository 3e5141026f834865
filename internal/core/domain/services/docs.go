// Package services contains domain services that do not belong to a single
// aggregate. Its sole resident is the CommandInterpreter, the dispatcher that
// maps a closed grammar of free-text phrasings onto room-level operations.
package services

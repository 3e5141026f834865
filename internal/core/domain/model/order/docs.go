// Package order contains the room-service order aggregate and its status enum.
//
// An order references a booking and a room, carries its line items with prices
// copied from the menu at creation time, and moves through the statuses
// pending, preparing, delivered and cancelled. The delivery timestamp is bound
// to the delivered status: it is set exactly when an order is marked delivered
// and cleared on any other status update.
//
// The aggregate holds no durable state of its own; every instance is either a
// Draft about to be inserted into the remote store or a record restored from
// it.
package order

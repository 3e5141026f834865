// Package housekeeping contains the housekeeping schedule aggregate and its
// status enum.
//
// A schedule ties a room to a scheduled cleaning date and moves through the
// statuses scheduled, in_progress, completed and skipped. The completion
// timestamp is bound to the completed status.
//
// The room-level cleanliness path used by the command interpreter writes the
// states "cleaned" and "dirty" directly to the remote store. Those states sit
// outside the schedule status enum and are deliberately not validated against
// it; RoomCleaned and RoomDirty name them.
package housekeeping

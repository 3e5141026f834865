package services

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"concierge/internal/core/domain/model/housekeeping"
	"concierge/internal/pkg/errs"
)

// Actions is the set of room-level operations the interpreter can dispatch
// to. Implementations translate each call into lifecycle commands against the
// remote store and report how many rows were affected where that is
// meaningful.
type Actions interface {
	// SetRoomCleanliness marks a room cleaned or dirty.
	SetRoomCleanliness(ctx context.Context, roomID int, state string) (int, error)

	// PlaceServiceOrder creates a minimal pending order of the named type.
	PlaceServiceOrder(ctx context.Context, roomID int, serviceType string) error

	// CompleteRoomService closes the room's pending orders.
	CompleteRoomService(ctx context.Context, roomID int) (int, error)
}

// Result is the outcome of interpreting one line of input. An unmatched line
// is a valid outcome, not an error: Recognized is false and Message lists the
// example phrasings.
type Result struct {
	Recognized bool
	Message    string
}

// rule binds one pattern of the closed grammar to the action it dispatches.
// The extractor receives the submatches of the pattern applied to the
// lowercased input.
type rule struct {
	pattern *regexp.Regexp
	apply   func(ctx context.Context, matches []string, actions Actions) (string, error)
}

// CommandInterpreter matches free text against an ordered, fixed list of
// phrasings and dispatches the first match. The grammar is closed: there is
// no language model on this path, and the rules are constructed so that no
// input can match more than one of them. Ordering still decides formally —
// first match wins.
//
// Recognized phrasings:
//
//	room 101 is cleaned
//	mark room 203 as dirty
//	order dinner for room 305
//	complete room service for 102
//
// Room ids are plain digit extractions; whether the room exists is not
// checked, so an update for an unknown room matches zero rows at the remote
// store.
type CommandInterpreter struct {
	actions Actions
	rules   []rule
}

var (
	roomCleanedPattern     = regexp.MustCompile(`(?:room\s+)?(\d+)\s+(?:is\s+)?cleaned`)
	roomDirtyPattern       = regexp.MustCompile(`mark\s+(?:room\s+)?(\d+)\s+(?:as\s+)?dirty`)
	roomServicePattern     = regexp.MustCompile(`order\s+(\w+)\s+for\s+(?:room\s+)?(\d+)`)
	completeServicePattern = regexp.MustCompile(`complete\s+room\s+service\s+for\s+(?:room\s+)?(\d+)`)
)

// ExamplePhrasings returns one example per rule, in dispatch order.
func ExamplePhrasings() []string {
	return []string{
		"room 101 is cleaned",
		"mark room 203 as dirty",
		"order dinner for room 305",
		"complete room service for 102",
	}
}

// NewCommandInterpreter creates an interpreter dispatching to the given
// actions.
func NewCommandInterpreter(actions Actions) (*CommandInterpreter, error) {
	if actions == nil {
		return nil, errs.NewValueIsRequiredError("actions")
	}

	return &CommandInterpreter{
		actions: actions,
		rules: []rule{
			{
				pattern: roomCleanedPattern,
				apply: func(ctx context.Context, matches []string, a Actions) (string, error) {
					roomID, err := roomNumber(matches[1])
					if err != nil {
						return "", err
					}
					if _, err := a.SetRoomCleanliness(ctx, roomID, housekeeping.RoomCleaned); err != nil {
						return "", err
					}
					return fmt.Sprintf("Room %d status updated to cleaned", roomID), nil
				},
			},
			{
				pattern: roomDirtyPattern,
				apply: func(ctx context.Context, matches []string, a Actions) (string, error) {
					roomID, err := roomNumber(matches[1])
					if err != nil {
						return "", err
					}
					if _, err := a.SetRoomCleanliness(ctx, roomID, housekeeping.RoomDirty); err != nil {
						return "", err
					}
					return fmt.Sprintf("Room %d status updated to dirty", roomID), nil
				},
			},
			{
				pattern: roomServicePattern,
				apply: func(ctx context.Context, matches []string, a Actions) (string, error) {
					serviceType := matches[1]
					roomID, err := roomNumber(matches[2])
					if err != nil {
						return "", err
					}
					if err := a.PlaceServiceOrder(ctx, roomID, serviceType); err != nil {
						return "", err
					}
					return fmt.Sprintf("Room service order (%s) created for room %d", serviceType, roomID), nil
				},
			},
			{
				pattern: completeServicePattern,
				apply: func(ctx context.Context, matches []string, a Actions) (string, error) {
					roomID, err := roomNumber(matches[1])
					if err != nil {
						return "", err
					}
					if _, err := a.CompleteRoomService(ctx, roomID); err != nil {
						return "", err
					}
					return fmt.Sprintf("Room service completed for room %d", roomID), nil
				},
			},
		},
	}, nil
}

// Interpret lowercases the input, tries the rules in order and dispatches the
// first match. A line matching no rule yields an unrecognized Result listing
// the example phrasings; action failures are returned as errors with an empty
// Result.
func (i *CommandInterpreter) Interpret(ctx context.Context, input string) (Result, error) {
	normalized := strings.ToLower(strings.TrimSpace(input))

	for _, r := range i.rules {
		matches := r.pattern.FindStringSubmatch(normalized)
		if matches == nil {
			continue
		}

		message, err := r.apply(ctx, matches, i.actions)
		if err != nil {
			return Result{}, err
		}

		return Result{Recognized: true, Message: message}, nil
	}

	var b strings.Builder
	b.WriteString("I don't understand that command. Try something like:")
	for _, example := range ExamplePhrasings() {
		b.WriteString("\n- ")
		b.WriteString(example)
	}

	return Result{Recognized: false, Message: b.String()}, nil
}

// roomNumber converts a digit-only submatch. The patterns only ever capture
// digit sequences, but a sequence can still overflow int, so absurdly long
// room numbers are rejected instead of dispatched.
func roomNumber(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("room number", err)
	}
	return n, nil
}

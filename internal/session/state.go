// Package session holds per-user interactive state and the cookie-backed
// in-memory store that owns it.
package session

import "github.com/veralin/go-mood-tunes/internal/mood"

// InputMethod is the way the user last shared their mood.
type InputMethod string

const (
	// InputTyped means the user typed free text.
	InputTyped InputMethod = "text"
	// InputDropdown means the user picked from the fixed list.
	InputDropdown InputMethod = "select"
)

// VideoResult is the outcome of the most recent video lookup for the
// session's current mood. Found=false records an explicit empty search
// result; that is different from never having searched, which is a nil
// *VideoResult on the State.
type VideoResult struct {
	Found    bool
	Title    string
	URL      string
	EmbedURL string
}

// State is the mutable record for one user session.
//
// FinalMood and LastInput are written only by mood resolution; Video is
// written only by the recommendation service. Video, when non-nil, always
// corresponds to a lookup performed for the current FinalMood.
type State struct {
	FinalMood mood.Mood
	LastInput string // last text submitted for classification, "" if none
	Video     *VideoResult
	Method    InputMethod
}

// NewState returns the session state defaults: unknown mood, no input,
// no video lookup yet.
func NewState() State {
	return State{
		FinalMood: mood.Unknown,
		Method:    InputTyped,
	}
}

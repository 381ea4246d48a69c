// Package recommend implements mood resolution and the video
// recommendation cache that sit between user input and the external
// classifier and search services.
package recommend

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/veralin/go-mood-tunes/internal/mood"
	"github.com/veralin/go-mood-tunes/internal/session"
)

// Classifier produces an emotion label for free text.
type Classifier interface {
	Classify(ctx context.Context, text string) (string, error)
}

// Resolution is the outcome of resolving one user input event.
type Resolution struct {
	Mood    mood.Mood
	Changed bool
	Warning string // user-visible transient warning, "" if none
}

// Resolver turns user input into a canonical mood on the session state.
type Resolver struct {
	classifier Classifier
}

// NewResolver creates a mood resolver backed by the given classifier.
func NewResolver(c Classifier) *Resolver {
	return &Resolver{classifier: c}
}

// ResolveText resolves a free-text submission. The classifier is called
// only when text differs from the session's last submitted input; a
// repeat of the exact same string is served from session state. Failures
// never propagate: the mood is left unchanged and a warning is returned.
// The input is always recorded as LastInput, so a failing string does not
// trigger repeated calls within the session.
func (r *Resolver) ResolveText(ctx context.Context, st *session.State, text string) Resolution {
	if text == "" || text == st.LastInput {
		return Resolution{Mood: st.FinalMood, Changed: false}
	}

	label, err := r.classifier.Classify(ctx, text)
	st.LastInput = text
	if err != nil {
		return Resolution{Mood: st.FinalMood, Changed: false, Warning: classifyWarning(err)}
	}

	m, ok := mood.Parse(label)
	if !ok || m == mood.Unknown {
		return Resolution{
			Mood:    st.FinalMood,
			Changed: false,
			Warning: "Couldn't make sense of that one. Try rephrasing?",
		}
	}

	changed := m != st.FinalMood
	st.FinalMood = m
	return Resolution{Mood: m, Changed: changed}
}

// ResolveSelection resolves an explicit dropdown selection. This path
// never calls the classifier. Selections outside the fixed list are an
// input error, not a transient failure.
func (r *Resolver) ResolveSelection(st *session.State, selection string) (Resolution, error) {
	m, ok := mood.Parse(selection)
	if !ok || m == mood.Unknown {
		return Resolution{}, fmt.Errorf("invalid mood selection %q", selection)
	}

	changed := m != st.FinalMood
	st.FinalMood = m
	return Resolution{Mood: m, Changed: changed}, nil
}

func classifyWarning(err error) string {
	if isTimeout(err) {
		return "Mood analysis timed out. Please try again."
	}
	return "Couldn't analyze your mood right now. Please try again."
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// Package mood defines the emotion vocabulary shared by the classifier,
// recommendation, and presentation layers.
package mood

import "strings"

// Mood is a canonical emotion label. Values are always lower-case.
type Mood string

// The fixed set of moods the application understands.
const (
	Joy      Mood = "joy"
	Sadness  Mood = "sadness"
	Anger    Mood = "anger"
	Surprise Mood = "surprise"
	Fear     Mood = "fear"
	Disgust  Mood = "disgust"
	Neutral  Mood = "neutral"
	Unknown  Mood = "unknown"
)

// Selectable lists the moods offered in the dropdown, in display order.
// Unknown is the zero state, never a choice.
var Selectable = []Mood{Joy, Sadness, Anger, Surprise, Fear, Disgust, Neutral}

var valid = map[Mood]bool{
	Joy:      true,
	Sadness:  true,
	Anger:    true,
	Surprise: true,
	Fear:     true,
	Disgust:  true,
	Neutral:  true,
	Unknown:  true,
}

// Parse lower-cases s and reports whether it names a known mood.
func Parse(s string) (Mood, bool) {
	m := Mood(strings.ToLower(strings.TrimSpace(s)))
	return m, valid[m]
}

// String implements fmt.Stringer.
func (m Mood) String() string {
	return string(m)
}

// Title returns the mood with its first letter capitalized, for headlines.
func (m Mood) Title() string {
	if m == "" {
		return ""
	}
	return strings.ToUpper(string(m[:1])) + string(m[1:])
}

var emojis = map[Mood]string{
	Joy:      "😄",
	Sadness:  "😢",
	Anger:    "😡",
	Surprise: "😲",
	Fear:     "😨",
	Disgust:  "🤢",
	Neutral:  "😐",
	Unknown:  "❓",
}

// Emoji returns the emoji shown next to the mood headline.
func (m Mood) Emoji() string {
	return emojis[m]
}

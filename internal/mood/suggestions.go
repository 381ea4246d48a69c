package mood

// Picker selects an index in [0, n). Production code passes a real
// random source; tests pass a deterministic one.
type Picker interface {
	Intn(n int) int
}

// suggestions holds the encouragement messages shown under the detected
// mood. One is picked at random per render.
var suggestions = map[Mood][]string{
	Joy: {
		"Enjoy your day and spread the positivity! 🌟",
		"Keep smiling and live life to your fullest!",
		"You're awesome, keep up the good work!",
	},
	Sadness: {
		"Take care! Things will get better 💛",
		"Sending virtual hugs, things will always get better",
		"You're not alone in this! Don't give up!",
	},
	Anger: {
		"Take a deep breath. You got this. 💨",
		"Step away and reset.",
		"Channel your energy positively!",
	},
	Fear: {
		"You are stronger than you think.",
		"Breathe. Face it one step at a time.",
		"Courage starts with showing up.",
	},
	Surprise: {
		"Life is full of surprises!",
		"Embrace the unexpected!",
		"Wow, that was unexpected!",
	},
	Disgust: {
		"It's okay to feel that way sometimes.",
		"Try to focus on the positive aspects.",
		"Take a moment to breathe and reset.",
	},
	Neutral: {
		"It's okay to have mixed feelings.",
		"Take a moment to reflect on your day.",
		"Sometimes it's good to just be present.",
	},
	Unknown: {
		"Tell me more about how you're feeling.",
	},
}

// Suggestion returns an encouragement message for the mood, chosen by
// the picker. Unrecognized moods fall back to the Unknown set.
func Suggestion(m Mood, pick Picker) string {
	msgs, ok := suggestions[m]
	if !ok || len(msgs) == 0 {
		msgs = suggestions[Unknown]
	}
	return msgs[pick.Intn(len(msgs))]
}

// Package emotion classifies text into a closed set of emotion labels.
package emotion

import "strings"

// Label is a detected emotion. The set is closed; anything a backend
// returns outside it is normalized to Neutral before leaving this package.
type Label string

const (
	Joy      Label = "joy"
	Anger    Label = "anger"
	Sadness  Label = "sadness"
	Fear     Label = "fear"
	Love     Label = "love"
	Surprise Label = "surprise"
	Disgust  Label = "disgust"
	Neutral  Label = "neutral"
)

var emojis = map[Label]string{
	Joy:      "😃",
	Anger:    "😡",
	Sadness:  "😢",
	Fear:     "😨",
	Love:     "😍",
	Surprise: "😲",
	Disgust:  "🤢",
	Neutral:  "😐",
}

// Normalize maps an arbitrary backend label to a member of the closed set.
// Unknown labels degrade to Neutral, never error.
func Normalize(raw string) Label {
	l := Label(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := emojis[l]; ok {
		return l
	}
	return Neutral
}

// Emoji returns the display glyph for the label, with the neutral
// face as the default arm.
func (l Label) Emoji() string {
	if e, ok := emojis[l]; ok {
		return e
	}
	return emojis[Neutral]
}

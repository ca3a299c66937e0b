package models

// EmotionLabels is the fixed label set produced by the expression
// classifier, in the order used for tie-breaking.
var EmotionLabels = []string{
	"neutral", "happy", "sad", "angry", "fearful", "disgusted", "surprised",
}

// Expressions is the probability distribution returned by the expression
// classifier for a single detected face.
type Expressions struct {
	Neutral   float64 `json:"neutral"`
	Happy     float64 `json:"happy"`
	Sad       float64 `json:"sad"`
	Angry     float64 `json:"angry"`
	Fearful   float64 `json:"fearful"`
	Disgusted float64 `json:"disgusted"`
	Surprised float64 `json:"surprised"`
}

// Scores returns the distribution in EmotionLabels order.
func (e Expressions) Scores() []float64 {
	return []float64{
		e.Neutral, e.Happy, e.Sad, e.Angry, e.Fearful, e.Disgusted, e.Surprised,
	}
}

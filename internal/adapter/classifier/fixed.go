package classifier

import (
	"context"

	"github.com/ArijitMandal123/Hackathon-Proj-sbh/internal/app"
)

// Fixed always predicts the same label.
type Fixed struct {
	label app.Difficulty
}

var _ app.DifficultyModel = Fixed{}

// NewFixed creates Fixed model for given label.
func NewFixed(label app.Difficulty) Fixed {
	return Fixed{label: label}
}

// Predict returns the configured label.
func (f Fixed) Predict(context.Context, string) (app.Difficulty, error) {
	return f.label, nil
}

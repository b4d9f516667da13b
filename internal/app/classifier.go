package app

import (
	"context"

	"github.com/sirupsen/logrus"
)

// DifficultyModel predicts difficulty label for README text.
//go:generate mockgen -destination mock/model.go -package mock github.com/ArijitMandal123/Hackathon-Proj-sbh/internal/app DifficultyModel
type DifficultyModel interface {
	Predict(ctx context.Context, text string) (Difficulty, error)
}

// Classifier maps README text to one of easy, medium or hard.
//
// Model failures are never returned to the caller. They are logged and
// DifficultyMedium is returned instead.
type Classifier struct {
	model DifficultyModel
	l     logrus.FieldLogger
}

// NewClassifier creates new Classifier instance.
func NewClassifier(model DifficultyModel, l logrus.FieldLogger) *Classifier {
	return &Classifier{
		model: model,
		l:     l,
	}
}

// Classify returns difficulty label for given README text.
func (c *Classifier) Classify(ctx context.Context, readme string) Difficulty {
	d, err := c.model.Predict(ctx, readme)
	if err != nil {
		c.l.Errorf("classifying repository difficulty: %v", err)
		return DifficultyMedium
	}
	if _, ok := ParseDifficulty(string(d)); !ok {
		c.l.Errorf("classifying repository difficulty: unexpected label %q", d)
		return DifficultyMedium
	}

	return d
}

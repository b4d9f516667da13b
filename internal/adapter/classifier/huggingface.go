package classifier

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ArijitMandal123/Hackathon-Proj-sbh/internal/app"
	jsoniter "github.com/json-iterator/go"
)

// DefaultZeroShotModel is the checkpoint used for zero-shot difficulty classification.
const DefaultZeroShotModel = "facebook/bart-large-mnli"

var candidateLabels = []string{
	string(app.DifficultyEasy),
	string(app.DifficultyMedium),
	string(app.DifficultyHard),
}

// HuggingFace classifies text with a zero-shot model served by the Hugging Face inference api.
type HuggingFace struct {
	doer    HTTPDoer
	address string
	model   string
	token   string
}

var _ app.DifficultyModel = &HuggingFace{}

// NewHuggingFace creates new HuggingFace model. Token is optional.
func NewHuggingFace(doer HTTPDoer, address string, model string, token string) *HuggingFace {
	if model == "" {
		model = DefaultZeroShotModel
	}
	return &HuggingFace{
		doer:    doer,
		address: strings.TrimSuffix(address, "/"),
		model:   model,
		token:   token,
	}
}

type zeroShotRequest struct {
	Inputs     string             `json:"inputs"`
	Parameters zeroShotParameters `json:"parameters"`
}

type zeroShotParameters struct {
	CandidateLabels []string `json:"candidate_labels"`
}

type zeroShotResponse struct {
	Labels []string  `json:"labels"`
	Scores []float64 `json:"scores"`
}

type labelScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Predict returns the candidate label with the highest score.
func (h *HuggingFace) Predict(ctx context.Context, text string) (app.Difficulty, error) {
	input := PrepareText(text)
	if input == "" {
		return "", errEmptyInput
	}

	headers := map[string]string{}
	if h.token != "" {
		headers["Authorization"] = "Bearer " + h.token
	}

	var raw jsoniter.RawMessage
	err := postJSON(ctx, h.doer, h.address+"/models/"+h.model, headers, zeroShotRequest{
		Inputs: input,
		Parameters: zeroShotParameters{
			CandidateLabels: candidateLabels,
		},
	}, &raw)
	if err != nil {
		return "", fmt.Errorf("calling inference api: %w", err)
	}

	scores, err := parseZeroShot(raw)
	if err != nil {
		return "", err
	}

	best := -1
	for i, s := range scores {
		if best < 0 || s.Score > scores[best].Score {
			best = i
		}
	}
	if best < 0 {
		return "", errors.New("inference api returned no labels")
	}

	d, ok := app.ParseDifficulty(scores[best].Label)
	if !ok {
		return "", fmt.Errorf("unexpected label %q", scores[best].Label)
	}

	return d, nil
}

// parseZeroShot accepts both the legacy {labels, scores} object
// and the newer list of {label, score} pairs.
func parseZeroShot(raw []byte) ([]labelScore, error) {
	var obj zeroShotResponse
	if err := json.Unmarshal(raw, &obj); err == nil {
		if len(obj.Labels) != len(obj.Scores) {
			return nil, fmt.Errorf("inference api returned %d labels and %d scores", len(obj.Labels), len(obj.Scores))
		}
		scores := make([]labelScore, 0, len(obj.Labels))
		for i := range obj.Labels {
			scores = append(scores, labelScore{Label: obj.Labels[i], Score: obj.Scores[i]})
		}
		return scores, nil
	}

	var list []labelScore
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("unmarshalling zero-shot response: %w", err)
	}
	return list, nil
}

package classifier

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ArijitMandal123/Hackathon-Proj-sbh/internal/app"
)

const openRouterSystemPrompt = `You rate how difficult a software project is to build, based on its README.
Answer with exactly one word: easy, medium or hard.`

// OpenRouter classifies text by asking a chat completion model for a single label.
type OpenRouter struct {
	doer    HTTPDoer
	address string
	model   string
	apiKey  string
}

var _ app.DifficultyModel = &OpenRouter{}

// NewOpenRouter creates new OpenRouter model.
func NewOpenRouter(doer HTTPDoer, address string, model string, apiKey string) *OpenRouter {
	return &OpenRouter{
		doer:    doer,
		address: strings.TrimSuffix(address, "/"),
		model:   model,
		apiKey:  apiKey,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Predict asks the model for a label and parses the first word of its answer.
func (o *OpenRouter) Predict(ctx context.Context, text string) (app.Difficulty, error) {
	input := PrepareText(text)
	if input == "" {
		return "", errEmptyInput
	}

	var resp chatResponse
	err := postJSON(ctx, o.doer, o.address+"/chat/completions", map[string]string{
		"Authorization": "Bearer " + o.apiKey,
	}, chatRequest{
		Model: o.model,
		Messages: []chatMessage{
			{Role: "system", Content: openRouterSystemPrompt},
			{Role: "user", Content: input},
		},
	}, &resp)
	if err != nil {
		return "", fmt.Errorf("calling chat completions: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no response from llm")
	}

	return parseLabel(resp.Choices[0].Message.Content)
}

func parseLabel(answer string) (app.Difficulty, error) {
	words := strings.FieldsFunc(strings.ToLower(answer), func(r rune) bool {
		return r < 'a' || r > 'z'
	})
	if len(words) == 0 {
		return "", errors.New("empty answer")
	}

	d, ok := app.ParseDifficulty(words[0])
	if !ok {
		return "", fmt.Errorf("unexpected answer %q", answer)
	}
	return d, nil
}

package sentiment

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	ollama "github.com/jmorganca/ollama/api"
)

const polarityPrompt = `Rate the overall sentiment of the following text as a single number between -1 and 1, where -1 is strongly negative, 0 is neutral and 1 is strongly positive. Reply with the number only, no explanation.

Text: %s`

// OllamaScorer asks a local Ollama model for a polarity score.
type OllamaScorer struct {
	model   string
	client  *ollama.Client
	timeout time.Duration
}

// NewOllamaScorer builds a scorer against the Ollama host from the
// environment (OLLAMA_HOST, default localhost).
func NewOllamaScorer(model string, timeout time.Duration) (*OllamaScorer, error) {
	client, err := ollama.ClientFromEnvironment()
	if err != nil {
		return nil, err
	}
	return &OllamaScorer{
		model:   model,
		client:  client,
		timeout: timeout,
	}, nil
}

// Heartbeat reports whether the inference server is reachable.
func (s *OllamaScorer) Heartbeat(ctx context.Context) error {
	return s.client.Heartbeat(ctx)
}

func (s *OllamaScorer) Score(ctx context.Context, text string) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var response strings.Builder
	err := s.client.Generate(ctx, &ollama.GenerateRequest{
		Model:  s.model,
		Prompt: fmt.Sprintf(polarityPrompt, text),
		Options: map[string]interface{}{
			"temperature": 0.0,
		},
	}, func(res ollama.GenerateResponse) error {
		response.WriteString(res.Response)
		return nil
	})
	if err != nil {
		return 0, err
	}

	return parsePolarity(response.String())
}

var (
	thinkBlockRe = regexp.MustCompile(`(?s)<think>.*?</think>`)
	polarityRe   = regexp.MustCompile(`-?\d+(?:\.\d+)?`)
)

// parsePolarity extracts the first numeric token from a model response and
// clamps it to [-1, 1]. Reasoning models wrap their deliberation in think
// blocks, which are stripped first.
func parsePolarity(raw string) (float64, error) {
	cleaned := strings.TrimSpace(thinkBlockRe.ReplaceAllString(raw, ""))

	match := polarityRe.FindString(cleaned)
	if match == "" {
		return 0, fmt.Errorf("no polarity value in model response %q", raw)
	}

	value, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, fmt.Errorf("unparseable polarity %q: %w", match, err)
	}

	if value > 1 {
		value = 1
	}
	if value < -1 {
		value = -1
	}
	return value, nil
}

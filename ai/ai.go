// Package ai is an optional natural-language front end onto the
// encoder/button mapper: it translates a free-text request into the
// same six-slot encoder deltas a human would dial in by hand, scoped to
// whichever input mode is currently active.
package ai

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/microgroove/sequencer/input"
)

const systemPromptTemplate = `You are a performance assistant for Microgroove, a hardware MIDI step sequencer. The musician is currently in %s mode, which exposes six encoders:

%s

Given a plain-language request, decide how far to turn each encoder this poll. Respond with EXACTLY two lines:

Line 1: six tokens separated by single spaces, one per encoder in order. Each token is either "-" (leave that encoder alone) or a signed integer in the range -8 to 8.
Line 2: a short, one-sentence explanation of what you did.

Do not add any other text. Examples of a valid line 1: "- 3 - - - -1" or "- - - - - -".`

// Client wraps the Claude API client for one-shot delta suggestions.
type Client struct {
	client anthropic.Client
}

// New creates a Client using the given API key.
func New(apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("ANTHROPIC_API_KEY not set")
	}
	return &Client{client: anthropic.NewClient(option.WithAPIKey(apiKey))}, nil
}

// NewFromEnv creates a Client using the ANTHROPIC_API_KEY environment
// variable.
func NewFromEnv() (*Client, error) {
	return New(os.Getenv("ANTHROPIC_API_KEY"))
}

// SlotLabels names what each of the six encoders does in a given input
// mode, for prompting purposes. An empty label marks a reserved,
// currently-inert slot.
type SlotLabels [6]string

func (labels SlotLabels) describe() string {
	var b strings.Builder
	for i, label := range labels {
		if label == "" {
			fmt.Fprintf(&b, "  encoder %d: reserved, no effect\n", i)
			continue
		}
		fmt.Fprintf(&b, "  encoder %d: %s\n", i, label)
	}
	return strings.TrimRight(b.String(), "\n")
}

// Describe asks Claude how to turn the six encoders of the given mode
// to satisfy a free-text request, returning the suggested deltas and
// the model's one-sentence explanation.
func (c *Client) Describe(ctx context.Context, mode input.Mode, labels SlotLabels, request string) (input.EncoderDeltas, string, error) {
	var deltas input.EncoderDeltas

	systemPrompt := fmt.Sprintf(systemPromptTemplate, mode, labels.describe())

	message, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.ModelClaude3_5HaikuLatest,
		MaxTokens: 128,
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(request)),
		},
	})
	if err != nil {
		return deltas, "", fmt.Errorf("claude API error: %w", err)
	}

	var responseText string
	for _, block := range message.Content {
		if b, ok := block.AsAny().(anthropic.TextBlock); ok {
			responseText += b.Text
		}
	}

	deltas, explanation, err := parseResponse(responseText)
	if err != nil {
		return deltas, "", fmt.Errorf("ai: could not parse model response %q: %w", responseText, err)
	}
	return deltas, explanation, nil
}

func parseResponse(text string) (input.EncoderDeltas, string, error) {
	var deltas input.EncoderDeltas

	lines := strings.SplitN(strings.TrimSpace(text), "\n", 2)
	tokens := strings.Fields(lines[0])
	if len(tokens) != 6 {
		return deltas, "", fmt.Errorf("expected 6 encoder tokens, got %d", len(tokens))
	}

	for i, tok := range tokens {
		if tok == "-" {
			continue
		}
		n, err := strconv.Atoi(tok)
		if err != nil {
			return deltas, "", fmt.Errorf("encoder %d: %q is not \"-\" or an integer", i, tok)
		}
		if n < -8 || n > 8 {
			return deltas, "", fmt.Errorf("encoder %d: delta %d out of range [-8, 8]", i, n)
		}
		v := int8(n)
		deltas[i] = &v
	}

	explanation := ""
	if len(lines) > 1 {
		explanation = strings.TrimSpace(lines[1])
	}
	return deltas, explanation, nil
}

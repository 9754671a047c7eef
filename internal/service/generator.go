package service

import (
	"context"
	"time"

	"compogen/internal/entity"
)

// GenerationMetadata describes a generated component for the client.
type GenerationMetadata struct {
	ComponentType   string   `json:"componentType"`
	Dependencies    []string `json:"dependencies"`
	EstimatedTokens int      `json:"estimatedTokens"`
	Prompt          string   `json:"prompt"`
}

type GenerateResult struct {
	JSX      string             `json:"jsx"`
	CSS      string             `json:"css"`
	Metadata GenerationMetadata `json:"metadata"`
}

type ChatReply struct {
	Role      entity.ChatRole `json:"role"`
	Content   string          `json:"content"`
	Timestamp time.Time       `json:"timestamp"`
}

type RefineResult struct {
	JSX     string   `json:"jsx"`
	CSS     string   `json:"css"`
	Changes []string `json:"changes"`
}

// Generator produces React component code from text prompts.
type Generator interface {
	GenerateComponent(ctx context.Context, prompt string, promptContext string) (*GenerateResult, error)
	Chat(ctx context.Context, message string, history []entity.ChatMessage) (*ChatReply, error)
	RefineCode(ctx context.Context, current entity.GeneratedCode, instructions string) (*RefineResult, error)
}

// AIService fronts an optional hosted generator with a deterministic mock.
// Any upstream failure degrades to the mock rather than surfacing an error,
// keeping the user flow unblocked.
type AIService struct {
	upstream Generator
	mock     *MockGenerator
}

// NewAIService builds the service. upstream may be nil, in which case every
// call is served by the mock.
func NewAIService(upstream Generator, clock Clock) *AIService {
	return &AIService{
		upstream: upstream,
		mock:     NewMockGenerator(clock),
	}
}

func (s *AIService) Generate(ctx context.Context, prompt string, promptContext string) *GenerateResult {
	if s.upstream != nil {
		if result, err := s.upstream.GenerateComponent(ctx, prompt, promptContext); err == nil {
			return result
		}
	}
	result, _ := s.mock.GenerateComponent(ctx, prompt, promptContext)
	return result
}

func (s *AIService) Chat(ctx context.Context, message string, history []entity.ChatMessage) *ChatReply {
	if s.upstream != nil {
		if reply, err := s.upstream.Chat(ctx, message, history); err == nil {
			return reply
		}
	}
	reply, _ := s.mock.Chat(ctx, message, history)
	return reply
}

func (s *AIService) Refine(ctx context.Context, current entity.GeneratedCode, instructions string) *RefineResult {
	if s.upstream != nil {
		if result, err := s.upstream.RefineCode(ctx, current, instructions); err == nil {
			return result
		}
	}
	result, _ := s.mock.RefineCode(ctx, current, instructions)
	return result
}

package assist

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"

	"github.com/scantoserve/scantoserve/internal/catalog"
)

const (
	RoleUser  = "user"
	RoleModel = "model"
)

// FallbackReply is surfaced when the language model is unreachable.
const FallbackReply = "Sorry, I encountered an error. Please try again later."

// ChatMessage is one turn of the assistant conversation.
type ChatMessage struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// Responder produces a reply to a message given the prior conversation.
// No state is retained between calls beyond what is passed in history.
type Responder interface {
	Respond(ctx context.Context, message string, history []ChatMessage) (string, error)
}

// LLMResponder answers through a language model, primed with the
// restaurant's menu.
type LLMResponder struct {
	llm         llms.Model
	instruction string
}

func NewLLMResponder(llm llms.Model, cat *catalog.Catalog) *LLMResponder {
	return &LLMResponder{
		llm:         llm,
		instruction: systemInstruction(cat),
	}
}

func (r *LLMResponder) Respond(ctx context.Context, message string, history []ChatMessage) (string, error) {
	prompt := buildPrompt(r.instruction, message, history)

	reply, err := llms.GenerateFromSinglePrompt(ctx, r.llm, prompt)
	if err != nil {
		return "", fmt.Errorf("cannot generate chat reply: %w", err)
	}
	if strings.TrimSpace(reply) == "" {
		return "", fmt.Errorf("model returned an empty reply")
	}
	return reply, nil
}

// StaticResponder answers with a fixed message. Used when no model is
// configured.
type StaticResponder struct {
	Reply string
}

func (r StaticResponder) Respond(ctx context.Context, message string, history []ChatMessage) (string, error) {
	return r.Reply, nil
}

func systemInstruction(cat *catalog.Catalog) string {
	restaurant := cat.Restaurant()
	items := cat.Items()
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Name
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You are a friendly and helpful food ordering assistant for a restaurant called %q.\n", restaurant.Name)
	b.WriteString("Help users find items on the menu, make recommendations, and answer questions about the restaurant.\n")
	fmt.Fprintf(&b, "The menu includes: %s.\n", strings.Join(names, ", "))
	b.WriteString("Keep your answers concise and appetizing.")
	return b.String()
}

func buildPrompt(instruction, message string, history []ChatMessage) string {
	var b strings.Builder
	b.WriteString(instruction)
	b.WriteString("\n\nChat History:\n")
	for _, msg := range history {
		role := "Assistant"
		if msg.Role == RoleUser {
			role = "User"
		}
		fmt.Fprintf(&b, "%s: %s\n", role, msg.Text)
	}
	fmt.Fprintf(&b, "\nUser: %s\nAssistant:", message)
	return b.String()
}

package rag

import (
	"context"
	"fmt"
	"strings"

	"neobook/services/knowledge"

	ai "neobook/services/intelligence"
)

// Placeholders substituted when a context section is empty. The literal
// strings are part of the prompting contract.
const (
	NoConversationPlaceholder = "No previous conversation."
	NoDocumentsPlaceholder    = "No documents uploaded."
)

const answerPrompt = `You are an AI Booking Assistant. Use the following context and conversation history to answer the user's question.
If the answer is not in the context, say you don't know, but try to be helpful.

Conversation History:
%s

Knowledge Base Context:
%s

Current Question: %s

Answer:`

// AnswerEngine answers free-text questions by fusing retrieved chunks with
// conversation history through the gateway.
type AnswerEngine struct {
	Knowledge knowledge.KnowledgeService
	Gateway   ai.Gateway
	TopK      int
}

func NewAnswerEngine(kb knowledge.KnowledgeService, gateway ai.Gateway, topK int) *AnswerEngine {
	if topK <= 0 {
		topK = 3
	}
	return &AnswerEngine{Knowledge: kb, Gateway: gateway, TopK: topK}
}

// Answer retrieves the nearest chunks, composes a single prompt and returns
// the model's response verbatim.
func (e *AnswerEngine) Answer(ctx context.Context, query, conversationContext string) (string, error) {
	chunks, err := e.Knowledge.Search(ctx, query, e.TopK)
	if err != nil {
		return "", fmt.Errorf("retrieve context: %w", err)
	}

	docContext := NoDocumentsPlaceholder
	if len(chunks) > 0 {
		texts := make([]string, len(chunks))
		for i, chunk := range chunks {
			texts[i] = chunk.Text
		}
		docContext = strings.Join(texts, "\n\n")
	}

	if conversationContext == "" {
		conversationContext = NoConversationPlaceholder
	}

	prompt := fmt.Sprintf(answerPrompt, conversationContext, docContext, query)
	return e.Gateway.Complete(ctx, prompt)
}

package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/kiraxlabs/kirax/pkg/llm"
	"github.com/kiraxlabs/kirax/pkg/persona"
	"github.com/kiraxlabs/kirax/pkg/plan"
)

// maxDocumentChars is the hard cutoff applied to uploaded-file context when
// the system message is built. First N characters, no trimming to a word or
// sentence boundary.
const maxDocumentChars = 15_000

// Service orchestrates one conversation turn against the chat model.
type Service struct {
	llm llm.ChatModel
}

func NewService(model llm.ChatModel) *Service {
	return &Service{llm: model}
}

// HandleTurn appends the user message to the session history, sends the full
// history behind a freshly built system message, and appends the assistant
// reply. On failure the user entry stays in the history, nothing else is
// added, and the error is returned for the handler to surface. One attempt,
// no retry.
func (s *Service) HandleTurn(ctx context.Context, sess *Session, userText string) (llm.Message, error) {
	sess.Messages = append(sess.Messages, llm.Message{Role: llm.RoleUser, Content: userText})

	system, err := BuildSystemMessage(sess)
	if err != nil {
		return llm.Message{}, err
	}
	payload := make([]llm.Message, 0, len(sess.Messages)+1)
	payload = append(payload, llm.Message{Role: llm.RoleSystem, Content: system})
	payload = append(payload, sess.Messages...)

	reply, err := s.llm.Complete(ctx, sess.Model, payload)
	if err != nil {
		return llm.Message{}, err
	}
	msg := llm.Message{Role: llm.RoleAssistant, Content: reply}
	sess.Messages = append(sess.Messages, msg)
	return msg, nil
}

// BuildSystemMessage synthesizes the system prompt for the session's current
// plan, specialist and document context. It is rebuilt on every turn and
// never stored in the history.
func BuildSystemMessage(sess *Session) (string, error) {
	p, err := plan.Get(sess.Plan)
	if err != nil {
		return "", err
	}
	sp, err := persona.Get(sess.Persona)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Plano atual do usuário: %s.\n", p.Name)
	fmt.Fprintf(&sb, "Descrição do plano: %s.\n\n", p.Audience)
	sb.WriteString(sp.Prompt)
	if sess.DocumentText != "" {
		text := sess.DocumentText
		if runes := []rune(text); len(runes) > maxDocumentChars {
			text = string(runes[:maxDocumentChars])
		}
		sb.WriteString("\n\n[DADOS DO ARQUIVO]:\n")
		sb.WriteString(text)
	}
	return sb.String(), nil
}

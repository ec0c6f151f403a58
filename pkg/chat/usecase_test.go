package chat

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiraxlabs/kirax/pkg/llm"
)

type fakeModel struct {
	reply        string
	err          error
	lastModel    string
	lastMessages []llm.Message
}

func (f *fakeModel) Complete(ctx context.Context, model string, messages []llm.Message) (string, error) {
	f.lastModel = model
	f.lastMessages = append([]llm.Message(nil), messages...)
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func newSession() *Session {
	return &Session{
		ID:      "test",
		Plan:    "Starter",
		Persona: "Pesquisa Geral",
		Model:   "openai/gpt-4o-mini",
	}
}

func TestHandleTurnAppendsUserAndAssistant(t *testing.T) {
	model := &fakeModel{reply: "Oi! Como posso ajudar?"}
	svc := NewService(model)
	sess := newSession()

	reply, err := svc.HandleTurn(context.Background(), sess, "Olá")
	require.NoError(t, err)

	assert.Equal(t, llm.Message{Role: llm.RoleAssistant, Content: "Oi! Como posso ajudar?"}, reply)
	require.Len(t, sess.Messages, 2)
	assert.Equal(t, llm.Message{Role: llm.RoleUser, Content: "Olá"}, sess.Messages[0])
	assert.Equal(t, reply, sess.Messages[1])
}

func TestHandleTurnFailureKeepsUserEntryOnly(t *testing.T) {
	model := &fakeModel{err: &llm.StatusError{Code: 402}}
	svc := NewService(model)
	sess := newSession()

	_, err := svc.HandleTurn(context.Background(), sess, "Olá")

	var statusErr *llm.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 402, statusErr.Code)
	require.Len(t, sess.Messages, 1)
	assert.Equal(t, llm.RoleUser, sess.Messages[0].Role)
}

func TestHandleTurnHistoryGrowsByTwoPerTurn(t *testing.T) {
	model := &fakeModel{reply: "ok"}
	svc := NewService(model)
	sess := newSession()

	for i := 0; i < 3; i++ {
		_, err := svc.HandleTurn(context.Background(), sess, "mensagem")
		require.NoError(t, err)
	}
	require.Len(t, sess.Messages, 6)
	for i, msg := range sess.Messages {
		if i%2 == 0 {
			assert.Equal(t, llm.RoleUser, msg.Role)
		} else {
			assert.Equal(t, llm.RoleAssistant, msg.Role)
		}
	}

	// A failed turn adds only the user entry.
	model.err = errors.New("connection reset")
	_, err := svc.HandleTurn(context.Background(), sess, "mensagem")
	require.Error(t, err)
	assert.Len(t, sess.Messages, 7)
}

func TestHandleTurnSendsSystemMessageFirst(t *testing.T) {
	model := &fakeModel{reply: "ok"}
	svc := NewService(model)
	sess := newSession()

	_, err := svc.HandleTurn(context.Background(), sess, "Olá")
	require.NoError(t, err)

	assert.Equal(t, "openai/gpt-4o-mini", model.lastModel)
	require.Len(t, model.lastMessages, 2)
	assert.Equal(t, llm.RoleSystem, model.lastMessages[0].Role)
	assert.True(t, strings.HasPrefix(model.lastMessages[0].Content, "Plano atual do usuário: Starter.\n"))
	assert.Equal(t, llm.RoleUser, model.lastMessages[1].Role)

	// The system message is synthesized per turn, never stored.
	for _, msg := range sess.Messages {
		assert.NotEqual(t, llm.RoleSystem, msg.Role)
	}
}

func TestBuildSystemMessageLayout(t *testing.T) {
	sess := newSession()
	system, err := BuildSystemMessage(sess)
	require.NoError(t, err)

	assert.Equal(t,
		"Plano atual do usuário: Starter.\n"+
			"Descrição do plano: Profissionais, infoprodutores e pequenos negócios.\n\n"+
			"Você é o Kirax Research, um assistente geral de pesquisa e explicações claras. Ajude o usuário em qualquer assunto com linguagem simples e objetiva.",
		system)
}

func TestBuildSystemMessageIncludesDocumentContext(t *testing.T) {
	sess := newSession()
	sess.DocumentText = "conteúdo do arquivo"

	system, err := BuildSystemMessage(sess)
	require.NoError(t, err)

	assert.Contains(t, system, "\n\n[DADOS DO ARQUIVO]:\nconteúdo do arquivo")
}

func TestBuildSystemMessageTruncatesDocumentContext(t *testing.T) {
	sess := newSession()
	sess.DocumentText = strings.Repeat("a", maxDocumentChars+500)

	system, err := BuildSystemMessage(sess)
	require.NoError(t, err)

	marker := "[DADOS DO ARQUIVO]:\n"
	idx := strings.Index(system, marker)
	require.GreaterOrEqual(t, idx, 0)
	embedded := system[idx+len(marker):]
	assert.Len(t, embedded, maxDocumentChars)
	assert.Equal(t, strings.Repeat("a", maxDocumentChars), embedded)
}

func TestBuildSystemMessageTruncatesByCharacters(t *testing.T) {
	// "ã" is two bytes in UTF-8: the cutoff counts characters, not bytes.
	sess := newSession()
	sess.DocumentText = strings.Repeat("ã", maxDocumentChars+5000)

	system, err := BuildSystemMessage(sess)
	require.NoError(t, err)

	marker := "[DADOS DO ARQUIVO]:\n"
	idx := strings.Index(system, marker)
	require.GreaterOrEqual(t, idx, 0)
	embedded := system[idx+len(marker):]
	assert.Equal(t, maxDocumentChars, len([]rune(embedded)))
	assert.Equal(t, strings.Repeat("ã", maxDocumentChars), embedded)
}

func TestBuildSystemMessageShortDocumentKeptWhole(t *testing.T) {
	sess := newSession()
	sess.DocumentText = strings.Repeat("b", 100)

	system, err := BuildSystemMessage(sess)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(system, strings.Repeat("b", 100)))
}

func TestBuildSystemMessageUnknownPlan(t *testing.T) {
	sess := newSession()
	sess.Plan = "Platinum"

	_, err := BuildSystemMessage(sess)
	assert.Error(t, err)
}

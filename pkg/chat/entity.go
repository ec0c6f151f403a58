package chat

import (
	"github.com/kiraxlabs/kirax/pkg/llm"
)

// Session holds the mutable state of one browser session. It lives only in
// memory: created on first interaction, discarded on reset or process exit.
// Messages is append-only and ordered; the system message sent upstream is
// synthesized fresh on every turn and never stored here.
type Session struct {
	ID           string
	Plan         string
	Persona      string
	Model        string
	ShowPlans    bool
	DocumentText string
	Messages     []llm.Message
}

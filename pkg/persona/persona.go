package persona

import (
	"errors"
	"fmt"
)

// ErrUnknownPersona reports a lookup outside the fixed specialist set.
var ErrUnknownPersona = errors.New("unknown persona")

// Persona is a fixed system-prompt preset ("especialista") that shapes the
// assistant's behavior for the session.
type Persona struct {
	Name   string `json:"name"`
	Prompt string `json:"-"`
}

// DefaultName is the specialist a new session starts with.
const DefaultName = "Pesquisa Geral"

var registry = []Persona{
	{Name: "Pesquisa Geral", Prompt: "Você é o Kirax Research, um assistente geral de pesquisa e explicações claras. Ajude o usuário em qualquer assunto com linguagem simples e objetiva."},
	{Name: "Estrategista de Vendas", Prompt: "Você é o Kirax Sales, focado em conversão e fechamento de negócios."},
	{Name: "Analista Jurídico", Prompt: "Você é o Kirax Legal, especialista em análise técnica de contratos."},
	{Name: "Copywriter Senior", Prompt: "Você é um mestre da persuasão. Crie textos que vendem imediatamente."},
	{Name: "Gestor de Tráfego", Prompt: "Especialista em escala de anúncios e otimização de ROI."},
	{Name: "Analista de PDF", Prompt: "Sua função é extrair informações e responder dúvidas sobre o arquivo enviado."},
	{Name: "Dev Helper", Prompt: "Auxiliar em programação, depuração e arquitetura de sistemas."},
}

// Get returns the specialist for a name within the fixed set.
func Get(name string) (Persona, error) {
	for _, p := range registry {
		if p.Name == name {
			return p, nil
		}
	}
	return Persona{}, fmt.Errorf("%w: %q", ErrUnknownPersona, name)
}

// Names returns the specialist names in display order.
func Names() []string {
	out := make([]string, len(registry))
	for i, p := range registry {
		out[i] = p.Name
	}
	return out
}

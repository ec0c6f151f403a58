package plan

import (
	"errors"
	"fmt"
)

// ErrUnknownPlan reports a lookup outside the fixed plan set. Selection is
// always constrained to Names() by the HTTP layer, so hitting it means a bug
// in the caller.
var ErrUnknownPlan = errors.New("unknown plan")

// Plan is a fixed subscription tier. Attributes are descriptive copy only;
// nothing here is enforced.
type Plan struct {
	Name     string `json:"name"`
	Price    string `json:"price"`
	Audience string `json:"audience"`
	Limits   string `json:"limits"`
	Benefits string `json:"benefits"`
}

// DefaultName is the plan a new session starts on.
const DefaultName = "Starter"

var registry = []Plan{
	{
		Name:     "Free",
		Price:    "R$ 0 (teste 1–2 dias)",
		Audience: "Novo usuário testando a Kirax.IA antes de assinar.",
		Limits:   "- Acesso por até 2 dias após cadastro\n- Limite reduzido de mensagens\n- Uso apenas para testes",
		Benefits: "- Experiência completa de teste\n- Acesso aos principais especialistas Kirax\n- Ideal para validar se o produto serve para o negócio",
	},
	{
		Name:     "Starter",
		Price:    "R$ 49,90 / mês",
		Audience: "Profissionais, infoprodutores e pequenos negócios.",
		Limits:   "- Volume de mensagens adequado para uso diário\n- Upload de múltiplos PDFs\n- Acesso a modelos mais avançados (conforme saldo no OpenRouter)",
		Benefits: "- Todos os especialistas Kirax\n- Histórico estendido\n- Priorização moderada no suporte",
	},
	{
		Name:     "Enterprise",
		Price:    "R$ 149,90 / mês",
		Audience: "Empresas e times que precisam de volume maior, SLA e integrações.",
		Limits:   "- Limites sob contrato\n- Acesso dedicado à infraestrutura",
		Benefits: "- Onboarding dedicado\n- Treinamento de equipe\n- Integração com sistemas internos\n- Suporte com SLA",
	},
}

// Get returns the plan record for a name within the fixed set.
func Get(name string) (Plan, error) {
	for _, p := range registry {
		if p.Name == name {
			return p, nil
		}
	}
	return Plan{}, fmt.Errorf("%w: %q", ErrUnknownPlan, name)
}

// Names returns the plan names in display order.
func Names() []string {
	out := make([]string, len(registry))
	for i, p := range registry {
		out[i] = p.Name
	}
	return out
}

// All returns the plan records in display order.
func All() []Plan {
	out := make([]Plan, len(registry))
	copy(out, registry)
	return out
}

package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/kiraxlabs/kirax/api/http/presenter"
	"github.com/kiraxlabs/kirax/pkg/chat"
	"github.com/kiraxlabs/kirax/pkg/llm"
	"github.com/kiraxlabs/kirax/pkg/persona"
	"github.com/kiraxlabs/kirax/pkg/plan"
	"github.com/kiraxlabs/kirax/pkg/session"
)

// SessionHandler manages the per-browser session state: current plan,
// specialist, model, plans toggle and transcript.
type SessionHandler struct {
	store *chat.Store
}

func NewSessionHandler(store *chat.Store) *SessionHandler {
	return &SessionHandler{store: store}
}

type sessionView struct {
	ID          string        `json:"id"`
	Plan        string        `json:"plan"`
	Persona     string        `json:"persona"`
	Model       string        `json:"model"`
	ShowPlans   bool          `json:"showPlans"`
	HasDocument bool          `json:"hasDocument"`
	Summary     string        `json:"summary"`
	Messages    []llm.Message `json:"messages"`
}

func viewOf(sess *chat.Session) sessionView {
	model := sess.Model
	if model == "" {
		model = "indisponível"
	}
	return sessionView{
		ID:          sess.ID,
		Plan:        sess.Plan,
		Persona:     sess.Persona,
		Model:       sess.Model,
		ShowPlans:   sess.ShowPlans,
		HasDocument: sess.DocumentText != "",
		Summary:     fmt.Sprintf("Plano: %s | Modelo: %s | Especialista: %s", sess.Plan, model, sess.Persona),
		Messages:    sess.Messages,
	}
}

// Get devolve o estado da sessão atual, criando-a se necessário.
// @Summary Estado da sessão
// @Tags    Sessão
// @Produce json
// @Success 200 {object} sessionView
// @Router  /session [get]
func (h *SessionHandler) Get(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, viewOf(session.FromCtx(c)))
}

// Reset encerra a sessão atual; a próxima interação começa do zero.
// @Summary Encerrar sessão
// @Tags    Sessão
// @Produce json
// @Success 200 {object} map[string]string
// @Router  /session [delete]
func (h *SessionHandler) Reset(c *fiber.Ctx) error {
	sess := session.FromCtx(c)
	h.store.Delete(sess.ID)
	c.ClearCookie(session.CookieName)
	return presenter.JSON(c, http.StatusOK, fiber.Map{"status": "reset"})
}

type selectRequest struct {
	Name string `json:"name"`
}

// SetModel seleciona o modelo de IA da sessão.
// @Summary Selecionar modelo
// @Tags    Sessão
// @Accept  json
// @Produce json
// @Param   input body selectRequest true "Identificador do modelo"
// @Success 200 {object} sessionView
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /session/model [put]
func (h *SessionHandler) SetModel(c *fiber.Ctx) error {
	var req selectRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "JSON inválido")
	}
	if strings.TrimSpace(req.Name) == "" {
		return presenter.Error(c, http.StatusBadRequest, "modelo é obrigatório")
	}
	sess := session.FromCtx(c)
	sess.Model = req.Name
	return presenter.JSON(c, http.StatusOK, viewOf(sess))
}

// SetPersona seleciona o especialista ativo.
// @Summary Selecionar especialista
// @Tags    Sessão
// @Accept  json
// @Produce json
// @Param   input body selectRequest true "Nome do especialista"
// @Success 200 {object} sessionView
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /session/persona [put]
func (h *SessionHandler) SetPersona(c *fiber.Ctx) error {
	var req selectRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "JSON inválido")
	}
	if _, err := persona.Get(req.Name); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "especialista desconhecido")
	}
	sess := session.FromCtx(c)
	sess.Persona = req.Name
	return presenter.JSON(c, http.StatusOK, viewOf(sess))
}

// SetPlan seleciona o plano de assinatura da sessão.
// @Summary Selecionar plano
// @Tags    Sessão
// @Accept  json
// @Produce json
// @Param   input body selectRequest true "Nome do plano"
// @Success 200 {object} sessionView
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /session/plan [put]
func (h *SessionHandler) SetPlan(c *fiber.Ctx) error {
	var req selectRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "JSON inválido")
	}
	if _, err := plan.Get(req.Name); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "plano desconhecido")
	}
	sess := session.FromCtx(c)
	sess.Plan = req.Name
	return presenter.JSON(c, http.StatusOK, viewOf(sess))
}

// TogglePlans alterna a exibição do comparativo de planos.
// @Summary Alternar exibição de planos
// @Tags    Sessão
// @Produce json
// @Success 200 {object} sessionView
// @Router  /session/plans/toggle [post]
func (h *SessionHandler) TogglePlans(c *fiber.Ctx) error {
	sess := session.FromCtx(c)
	sess.ShowPlans = !sess.ShowPlans
	return presenter.JSON(c, http.StatusOK, viewOf(sess))
}

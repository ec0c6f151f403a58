package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/kiraxlabs/kirax/api/http/presenter"
	"github.com/kiraxlabs/kirax/pkg/persona"
)

// PersonaHandler serves the fixed specialist presets.
type PersonaHandler struct{}

func NewPersonaHandler() *PersonaHandler { return &PersonaHandler{} }

// List devolve os especialistas disponíveis.
// @Summary Especialistas Kirax
// @Description Retorna os sete especialistas fixos selecionáveis para a conversa.
// @Tags    Especialistas
// @Produce json
// @Success 200 {array} string
// @Router  /personas [get]
func (h *PersonaHandler) List(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, persona.Names())
}

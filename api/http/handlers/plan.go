package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/kiraxlabs/kirax/api/http/presenter"
	"github.com/kiraxlabs/kirax/pkg/plan"
)

// PlanHandler serves the static subscription-plan comparison.
type PlanHandler struct{}

func NewPlanHandler() *PlanHandler { return &PlanHandler{} }

// List devolve os planos de assinatura.
// @Summary Planos de assinatura
// @Description Retorna os três planos fixos (Free, Starter, Enterprise) com preço, público, limites e benefícios.
// @Tags    Planos
// @Produce json
// @Success 200 {array} plan.Plan
// @Router  /plans [get]
func (h *PlanHandler) List(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, plan.All())
}

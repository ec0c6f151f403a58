package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/kiraxlabs/kirax/api/http/presenter"
	"github.com/kiraxlabs/kirax/pkg/catalog"
)

// CatalogHandler exposes the model catalog for the selection control.
type CatalogHandler struct {
	loader *catalog.Loader
	apiKey string
}

func NewCatalogHandler(loader *catalog.Loader, apiKey string) *CatalogHandler {
	return &CatalogHandler{loader: loader, apiKey: apiKey}
}

type modelsResponse struct {
	Models []string `json:"models"`
	// DefaultIndex is -1 when the catalog is empty (nothing to select).
	DefaultIndex int `json:"defaultIndex"`
}

// Models lista os modelos disponíveis no OpenRouter.
// @Summary Modelos de IA disponíveis
// @Description Lista os identificadores de modelos e o índice do modelo padrão (GPT-4 quando disponível). Em caso de falha no provedor, retorna a lista padrão.
// @Tags    Catálogo
// @Produce json
// @Success 200 {object} modelsResponse
// @Router  /models [get]
func (h *CatalogHandler) Models(c *fiber.Ctx) error {
	models := h.loader.Load(c.Context(), h.apiKey)
	resp := modelsResponse{Models: models, DefaultIndex: -1}
	if len(models) > 0 {
		resp.DefaultIndex = catalog.DefaultIndex(models)
	}
	return presenter.JSON(c, http.StatusOK, resp)
}

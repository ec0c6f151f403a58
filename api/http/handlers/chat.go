package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/kiraxlabs/kirax/api/http/presenter"
	"github.com/kiraxlabs/kirax/pkg/chat"
	"github.com/kiraxlabs/kirax/pkg/llm"
	"github.com/kiraxlabs/kirax/pkg/session"
)

// ChatHandler runs conversation turns.
type ChatHandler struct {
	svc *chat.Service
}

func NewChatHandler(svc *chat.Service) *ChatHandler { return &ChatHandler{svc: svc} }

type turnRequest struct {
	Content string `json:"content"`
}

type turnResponse struct {
	Reply    llm.Message   `json:"reply"`
	Messages []llm.Message `json:"messages"`
}

// Send executa um turno de conversa com o especialista ativo.
// @Summary Enviar mensagem
// @Description Acrescenta a mensagem do usuário ao histórico, consulta o modelo selecionado e devolve a resposta do assistente. Em caso de falha o histórico mantém apenas a mensagem do usuário.
// @Tags    Conversa
// @Accept  json
// @Produce json
// @Param   input body turnRequest true "Mensagem do usuário"
// @Success 200 {object} turnResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 502 {object} presenter.ErrorResponse
// @Router  /session/messages [post]
func (h *ChatHandler) Send(c *fiber.Ctx) error {
	var req turnRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "JSON inválido")
	}
	if strings.TrimSpace(req.Content) == "" {
		return presenter.Error(c, http.StatusBadRequest, "mensagem é obrigatória")
	}
	sess := session.FromCtx(c)
	if sess.Model == "" {
		return presenter.Error(c, http.StatusBadRequest, "Nenhum modelo foi encontrado no OpenRouter.")
	}

	reply, err := h.svc.HandleTurn(c.Context(), sess, req.Content)
	if err != nil {
		var statusErr *llm.StatusError
		if errors.As(err, &statusErr) {
			return presenter.Error(c, http.StatusBadGateway,
				fmt.Sprintf("Erro %d: Verifique o saldo ou a chave no OpenRouter.", statusErr.Code))
		}
		return presenter.Error(c, http.StatusBadGateway, "Falha Crítica: Sistema Temporariamente Indisponível.")
	}
	return presenter.JSON(c, http.StatusOK, turnResponse{Reply: reply, Messages: sess.Messages})
}

package handlers

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/kiraxlabs/kirax/api/http/presenter"
	"github.com/kiraxlabs/kirax/pkg/document"
	"github.com/kiraxlabs/kirax/pkg/session"
)

// DocumentHandler feeds an uploaded PDF into the session's context.
type DocumentHandler struct {
	// Limit uploaded file size read into memory (bytes)
	maxBytes int64
}

func NewDocumentHandler(maxBytes int64) *DocumentHandler {
	return &DocumentHandler{maxBytes: maxBytes}
}

// Upload integra um PDF ao contexto da conversa.
// @Summary Enviar PDF de contexto
// @Description Extrai o texto de todas as páginas do PDF e o disponibiliza como contexto nas próximas mensagens. Um novo envio substitui o anterior.
// @Tags    Conversa
// @Accept  multipart/form-data
// @Produce json
// @Param   file formData file true "Arquivo PDF"
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /session/document [post]
func (h *DocumentHandler) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil || fh == nil {
		return presenter.Error(c, http.StatusBadRequest, "arquivo PDF é obrigatório")
	}
	if strings.ToLower(filepath.Ext(fh.Filename)) != ".pdf" {
		return presenter.Error(c, http.StatusBadRequest, "formato não suportado: apenas PDF")
	}
	file, err := fh.Open()
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "falha ao abrir o arquivo enviado")
	}
	defer file.Close()

	data, err := readAtMost(file, h.maxBytes)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	text, err := document.ExtractText(data)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "não foi possível ler o PDF enviado")
	}

	sess := session.FromCtx(c)
	sess.DocumentText = text
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"message":  "Dados do PDF integrados ao contexto.",
		"filename": fh.Filename,
		"chars":    len(text),
	})
}

func readAtMost(f multipart.File, max int64) ([]byte, error) {
	limited := io.LimitReader(f, max+1)
	b, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("falha ao ler o arquivo: %w", err)
	}
	if int64(len(b)) > max {
		return nil, fmt.Errorf("arquivo muito grande: limite de %d bytes", max)
	}
	return b, nil
}

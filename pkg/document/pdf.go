package document

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	pdf "github.com/ledongthuc/pdf"
)

// ErrMalformedDocument reports bytes that do not form a parseable PDF.
var ErrMalformedDocument = errors.New("malformed pdf document")

// ExtractText parses the byte stream as a PDF and returns the text of every
// page, in document order, concatenated without separators. Extraction
// fidelity is whatever the parser yields; no OCR, no layout reconstruction.
func ExtractText(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("%w: page %d: %v", ErrMalformedDocument, i, err)
		}
		sb.WriteString(text)
	}
	return sb.String(), nil
}

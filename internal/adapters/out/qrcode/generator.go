// Package qrcode renders PNG QR codes for order tables.
package qrcode

import (
	"strings"

	"kitchenpos/internal/core/ports"
	"kitchenpos/internal/pkg/errs"

	"github.com/skip2/go-qrcode"
)

const defaultSize = 256

var _ ports.QRCodeGenerator = Generator{}

type Generator struct {
	size int
}

func NewGenerator(size int) Generator {
	if size <= 0 {
		size = defaultSize
	}
	return Generator{size: size}
}

func (g Generator) Generate(content string) ([]byte, error) {
	if strings.TrimSpace(content) == "" {
		return nil, errs.NewValueIsRequiredError("content")
	}
	return qrcode.Encode(content, qrcode.Medium, g.size)
}

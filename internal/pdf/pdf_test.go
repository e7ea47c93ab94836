package pdf

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/etimad/showroom-backend/config"
)

func TestNew_Disabled(t *testing.T) {
	p, err := New(config.PDFConfig{Enabled: false, BrowserBin: "/usr/bin/chromium"})

	assert.ErrorIs(t, err, ErrDisabled)
	assert.Nil(t, p)
}

func TestNilPrinter(t *testing.T) {
	var p *Printer

	_, err := p.Print(context.Background(), []byte("<html></html>"))
	assert.ErrorIs(t, err, ErrDisabled)
	assert.NoError(t, p.Close())
}

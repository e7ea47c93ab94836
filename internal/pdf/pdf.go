// Package pdf prints rendered documents to PDF through headless Chromium.
package pdf

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/etimad/showroom-backend/config"
	"github.com/etimad/showroom-backend/pkg/logger"
)

var ErrDisabled = errors.New("pdf output is disabled")

// A4 in inches
const (
	a4Width  = 8.27
	a4Height = 11.69
)

type Printer struct {
	mu      sync.Mutex
	browser *rod.Browser
}

// New launches the browser. It returns ErrDisabled unless PDF output is enabled.
func New(cfg config.PDFConfig) (*Printer, error) {
	if !cfg.Enabled {
		return nil, ErrDisabled
	}

	l := launcher.New().Headless(true).Leakless(false)
	if cfg.BrowserBin != "" {
		l = l.Bin(cfg.BrowserBin)
	}
	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to browser: %w", err)
	}

	logger.Info("PDF printer ready", map[string]interface{}{
		"control_url": u,
	})
	return &Printer{browser: browser}, nil
}

// Print loads html into a fresh tab and prints it on A4 with backgrounds
func (p *Printer) Print(ctx context.Context, html []byte) ([]byte, error) {
	if p == nil {
		return nil, ErrDisabled
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	page, err := p.browser.Context(ctx).Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("failed to open page: %w", err)
	}
	defer page.Close()

	if err := page.SetDocumentContent(string(html)); err != nil {
		return nil, fmt.Errorf("failed to load document: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("failed to wait for document: %w", err)
	}

	width, height := a4Width, a4Height
	stream, err := page.PDF(&proto.PagePrintToPDF{
		PrintBackground: true,
		PaperWidth:      &width,
		PaperHeight:     &height,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to print document: %w", err)
	}

	out, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read pdf stream: %w", err)
	}
	return out, nil
}

func (p *Printer) Close() error {
	if p == nil {
		return nil
	}
	return p.browser.Close()
}

// Package server exposes the contents of a fixed root directory over HTTP
// until the context is cancelled.
package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/solarhand/solarhand/internal/config"
)

const (
	shutdownTimeout = 5 * time.Second
	bannerWidth     = 62
)

// Server serves static files from the configured root directory.
type Server struct {
	cfg     config.Config
	handler http.Handler
}

// New assembles a server over fsys, confined to cfg.Root. Pass nil to
// serve the OS filesystem; tests inject an afero.MemMapFs.
func New(cfg config.Config, fsys afero.Fs) *Server {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	root := afero.NewBasePathFs(afero.NewReadOnlyFs(fsys), cfg.Root)
	fileServer := http.FileServer(afero.NewHttpFs(root).Dir("/"))

	return &Server{
		cfg:     cfg,
		handler: withRequestLog(withContentTypes(ContentTypes(), fileServer)),
	}
}

// Handler returns the assembled request handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run prints the banner, opens the browser, binds the listener and serves
// until ctx is cancelled. A bind failure is returned so the caller can
// exit non-zero; an interrupt-triggered shutdown prints the farewell and
// returns nil.
func (s *Server) Run(ctx context.Context) error {
	s.printBanner()
	openBrowser(s.cfg.URL())

	listener, err := net.Listen("tcp", s.cfg.Addr())
	if err != nil {
		return fmt.Errorf("failed to bind %s: %w", s.cfg.Addr(), err)
	}

	httpServer := &http.Server{Handler: s.handler}

	// Shutdown handler - watches for context cancellation
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Errorf("HTTP server shutdown error: %v", err)
		}
	}()

	if err := httpServer.Serve(listener); err != http.ErrServerClosed {
		return err
	}

	s.printFarewell()
	return nil
}

func (s *Server) printBanner() {
	line := func(text string) {
		fmt.Printf("║  %-*s║\n", bannerWidth-2, text)
	}
	fmt.Println()
	fmt.Println("╔" + strings.Repeat("═", bannerWidth) + "╗")
	line("🌌 " + s.cfg.Title)
	fmt.Println("╠" + strings.Repeat("═", bannerWidth) + "╣")
	line("")
	line("Server running at: " + s.cfg.URL())
	line("")
	line("Opening in your default browser...")
	line("")
	line("Press Ctrl+C to stop the server")
	line("")
	fmt.Println("╚" + strings.Repeat("═", bannerWidth) + "╝")
	fmt.Println()
}

func (s *Server) printFarewell() {
	fmt.Println("\n👋 Server stopped. Thanks for exploring the solar system!")
}

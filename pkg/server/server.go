package server

import (
	"github.com/toastate/icongen/internal/server"
	"github.com/toastate/icongen/pkg/config"
)

type Server interface {
	Start(withWatcher bool) error
}

// NewServer returns the preview gallery server. A nil conf uses config.Config.
func NewServer(iconsDir, outDir, port string, conf *config.Configuration) Server {
	return server.NewServer(iconsDir, outDir, port, conf)
}

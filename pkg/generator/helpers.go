package generator

import (
	"os"
	"path/filepath"
	"regexp"

	"github.com/toastate/icongen/internal/tlogger"
)

var windowCRregexp = regexp.MustCompile(`\r?\n`)

func replaceWindowsCarriageReturn(b []byte) []byte {
	return windowCRregexp.ReplaceAll(b, []byte("\n"))
}

// writeFile writes data to the slash separated path rel under the output folder.
func (g *Generator) writeFile(rel string, data []byte) error {
	path := filepath.Join(g.outDir, filepath.FromSlash(rel))

	err := os.MkdirAll(filepath.Dir(path), 0755)
	if err != nil {
		tlogger.Error("msg", "Failed to create folder", "path", filepath.Dir(path), "err", err)
		return err
	}

	err = os.WriteFile(path, data, 0644)
	if err != nil {
		tlogger.Error("msg", "output file creation", "file", path, "err", err)
		return err
	}

	g.filesWritten++
	g.bytesWritten += int64(len(data))
	tlogger.Info("msg", "Generated", "file", path)
	return nil
}

package assets

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"ebiten-pong/config"
)

// ErrFontDecode is returned when a font file exists but cannot be parsed
var ErrFontDecode = errors.New("failed to decode font")

// ResourceDir returns the directory game resources are loaded from: the
// resources folder next to the executable when there is one, otherwise the
// resources folder in the working directory.
func ResourceDir() string {
	exe, err := os.Executable()
	if err != nil {
		return filepath.Join(".", config.ResourceDirName)
	}
	return resolveResourceDir(filepath.Dir(exe))
}

func resolveResourceDir(exeDir string) string {
	candidate := filepath.Join(exeDir, config.ResourceDirName)
	if info, err := os.Stat(candidate); err == nil && info.IsDir() {
		return candidate
	}
	return filepath.Join(".", config.ResourceDirName)
}

// LoadFontSource loads the named font from fsys. A missing or unreadable file
// wraps the fs error; a file that does not parse wraps ErrFontDecode.
func LoadFontSource(fsys fs.FS, name string) (*text.GoTextFaceSource, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read font %s: %w", name, err)
	}

	source, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrFontDecode, name, err)
	}
	return source, nil
}

// LoadScoreFont loads the score font from the resource directory
func LoadScoreFont() (*text.GoTextFaceSource, error) {
	dir := ResourceDir()
	log.Printf("Loading resources from %s", dir)
	return LoadFontSource(os.DirFS(dir), config.FontFile)
}

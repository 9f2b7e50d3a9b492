package ebitenhost

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	sprint "github.com/phanxgames/strawberrysprint"
)

var imageKeys = []string{sprint.ImageBackground, sprint.ImageKitty, sprint.ImageBerry}

// LoadImages loads <key>.png for each scene image key from dir. Missing
// files are skipped and drawn as shapes. An empty dir loads nothing.
func LoadImages(dir string) (map[string]*ebiten.Image, error) {
	images := make(map[string]*ebiten.Image)
	if dir == "" {
		return images, nil
	}
	for _, key := range imageKeys {
		path := filepath.Join(dir, key+".png")
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		img, _, err := ebitenutil.NewImageFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("load image %s: %w", path, err)
		}
		images[key] = img
	}
	return images, nil
}

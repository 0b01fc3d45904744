package resources

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sync"

	"fyne.io/fyne/v2"
)

const (
	imageDir = "img/"
	logoDir  = "logo/"
)

//go:embed sounds/*.wav img/*.png logo/*.png
var assetFS embed.FS

var resourceCache sync.Map

// Asset returns the raw bytes of a bundled file such as "sounds/rain.wav".
func Asset(name string) ([]byte, error) {
	cleaned := path.Clean(name)
	data, err := assetFS.ReadFile(cleaned)
	if err != nil {
		return nil, fmt.Errorf("load asset %s: %w", cleaned, err)
	}
	return data, nil
}

// HasAsset reports whether name is bundled.
func HasAsset(name string) bool {
	_, err := fs.Stat(assetFS, path.Clean(name))
	return err == nil
}

// Image returns a Fyne resource for a bundled image. Both "bg1.png" and
// "img/bg1.png" are accepted.
func Image(name string) (fyne.Resource, error) {
	if !HasAsset(name) {
		name = imageDir + name
	}
	return loadResource(name)
}

// MustImage returns a Fyne resource or panics on error.
func MustImage(name string) fyne.Resource {
	resource, err := Image(name)
	if err != nil {
		panic(err)
	}
	return resource
}

// MustLogo returns the application icon resource or panics on error.
func MustLogo(fileName string) fyne.Resource {
	resource, err := loadResource(logoDir + fileName)
	if err != nil {
		panic(err)
	}
	return resource
}

func loadResource(name string) (fyne.Resource, error) {
	if cached, ok := resourceCache.Load(name); ok {
		return cached.(fyne.Resource), nil
	}

	data, err := Asset(name)
	if err != nil {
		return nil, err
	}

	resource := fyne.NewStaticResource(path.Base(name), data)
	resourceCache.Store(name, resource)
	return resource, nil
}

package assets

import (
	"fmt"
	"os"
	"path/filepath"
)

// FilesystemLoader loads assets from a directory tree mirroring the
// embedded layout:
//
//	<base>/styles/<name>.css
//	<base>/templates/<name>.html
type FilesystemLoader struct {
	base string
}

// NewFilesystemLoader creates a FilesystemLoader rooted at base.
// Returns ErrInvalidBasePath if base is not an existing directory.
func NewFilesystemLoader(base string) (*FilesystemLoader, error) {
	info, err := os.Stat(base)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBasePath, base)
	}
	return &FilesystemLoader{base: base}, nil
}

// LoadStyle loads a CSS style from <base>/styles/<name>.css.
func (f *FilesystemLoader) LoadStyle(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	path := filepath.Join(f.base, "styles", name+".css")
	content, err := os.ReadFile(path) // #nosec G304 -- name validated above
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %q", ErrStyleNotFound, name)
		}
		return "", fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	return string(content), nil
}

// LoadTemplate loads an HTML template from <base>/templates/<name>.html.
func (f *FilesystemLoader) LoadTemplate(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	path := filepath.Join(f.base, "templates", name+".html")
	content, err := os.ReadFile(path) // #nosec G304 -- name validated above
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
		}
		return "", fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	return string(content), nil
}

// Compile-time interface check.
var _ AssetLoader = (*FilesystemLoader)(nil)

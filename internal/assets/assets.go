package assets

import (
	"crypto/sha256"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-chi/chi/v5"
)

// Web facing prefix on assets in static folder
const AssetPrefix string = "/assets/"

var ErrAssetNotFound = errors.New("assets: asset not found")

//go:embed static
var embedded embed.FS

// Assets serves a static file tree under AssetPrefix. File hashes are
// computed once by Load, paths are cache busted with them.
type Assets struct {
	fsys   fs.FS
	hashes map[string]string // Trimmed path to hex sha256
}

// Load hashes every file in the embedded static folder.
func Load() (*Assets, error) {
	sub, err := fs.Sub(embedded, "static")
	if err != nil {
		return nil, err
	}
	return LoadFS(sub)
}

// LoadFS hashes every file in fsys.
func LoadFS(fsys fs.FS) (*Assets, error) {
	hashes := make(map[string]string)

	err := doublestar.GlobWalk(fsys, "**/*.*", func(p string, d fs.DirEntry) error {
		if d.IsDir() {
			return nil
		}

		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}
		hashes[p] = fmt.Sprintf("%x", sha256.Sum256(data))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &Assets{fsys: fsys, hashes: hashes}, nil
}

// HashedPath takes the web facing path of an asset and returns the hashed path to the asset.
// Example: /assets/base.css returns /assets/base.80b2c87c....css
func (a *Assets) HashedPath(webPath string) (string, error) {
	trimmedPath := strings.TrimPrefix(webPath, AssetPrefix)
	hash, ok := a.hashes[trimmedPath]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrAssetNotFound, webPath)
	}

	ext := path.Ext(trimmedPath)
	return AssetPrefix + strings.TrimSuffix(trimmedPath, ext) + "." + hash + ext, nil
}

// ReadFile returns the contents of the asset at webPath.
func (a *Assets) ReadFile(webPath string) ([]byte, error) {
	trimmedPath := strings.TrimPrefix(webPath, AssetPrefix)
	if _, ok := a.hashes[trimmedPath]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrAssetNotFound, webPath)
	}
	return fs.ReadFile(a.fsys, trimmedPath)
}

func (a *Assets) Handler(r chi.Router) {
	staticHandler := http.FileServer(http.FS(a.fsys))

	r.Group(func(r chi.Router) {
		r.Use(permCache) // Perma cache all static assets, paths are cache busted
		r.Use(versionedAssets)
		r.Get(AssetPrefix+"*", http.StripPrefix(AssetPrefix, staticHandler).ServeHTTP)
	})
}

func permCache(h http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "max-age=31536000")
		h.ServeHTTP(w, r)
	}

	return http.HandlerFunc(fn)
}

// versionedAssets is Middleware that strips the version from an asset.
// Only the file name is inspected, dots in directories are left alone.
// Example: v1.2/styles.80b2c87c0b9a5af9.css forwards as v1.2/styles.css
func versionedAssets(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		dir, file := path.Split(r.URL.Path)
		sections := strings.Split(file, ".")
		if len(sections) != 3 {
			next.ServeHTTP(w, r)
			return
		}

		r.URL.Path = dir + sections[0] + "." + sections[2]
		next.ServeHTTP(w, r)
	})
}

// Package static embeds the landing page's browser assets.
package static

import (
	"embed"
	"io/fs"
)

//go:embed assets
var assets embed.FS

// Assets returns the asset tree rooted so that "mount.js" resolves to
// assets/mount.js.
func Assets() fs.FS {
	sub, err := fs.Sub(assets, "assets")
	if err != nil {
		panic(err)
	}
	return sub
}

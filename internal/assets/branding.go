// Package assets loads the branding images embedded into rendered
// invoices. Loading happens once in the owning process; the resulting
// Branding value is read-only and safe to share across requests.
package assets

import (
	"encoding/base64"
	"log/slog"
	"os"
	"path/filepath"
)

// Fixed branding file names, resolved relative to the assets directory.
const (
	LogoFile      = "extended logo plus.png"
	WatermarkFile = "extended logo.png"
)

// Branding carries the optional logo and watermark as data URIs ready for
// inline embedding. An empty field means that asset was not available and
// the document renders that region empty.
type Branding struct {
	Logo      string
	Watermark string
}

// HasLogo reports whether a logo image was loaded.
func (b Branding) HasLogo() bool { return b.Logo != "" }

// HasWatermark reports whether a watermark image was loaded.
func (b Branding) HasWatermark() bool { return b.Watermark != "" }

// Load reads the two branding images from dir. A missing or unreadable
// file is not an error; it is logged informationally and the slot stays
// empty.
func Load(dir string) Branding {
	return Branding{
		Logo:      loadDataURI(filepath.Join(dir, LogoFile)),
		Watermark: loadDataURI(filepath.Join(dir, WatermarkFile)),
	}
}

func loadDataURI(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		slog.Info("branding asset unavailable", "path", path, "error", err)
		return ""
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(data)
}

package assets

import (
	"path/filepath"
	"strings"
)

// Kind classifies an asset by what the page does with it.
type Kind string

const (
	KindImage    Kind = "image"
	KindVideo    Kind = "video"
	KindDocument Kind = "document"
	KindFont     Kind = "font"
	KindOther    Kind = "other"
)

// extensionToKind maps file extensions to asset kinds.
var extensionToKind = map[string]Kind{
	// Images
	".png":  KindImage,
	".jpg":  KindImage,
	".jpeg": KindImage,
	".gif":  KindImage,
	".webp": KindImage,
	".avif": KindImage,
	".svg":  KindImage,
	".ico":  KindImage,
	// Video
	".mp4":  KindVideo,
	".webm": KindVideo,
	".ogv":  KindVideo,
	".mov":  KindVideo,
	// Documents
	".pdf": KindDocument,
	".txt": KindDocument,
	// Fonts
	".woff":  KindFont,
	".woff2": KindFont,
	".ttf":   KindFont,
	".otf":   KindFont,
}

// DetectKind returns the asset kind for a filename based on its extension.
func DetectKind(filename string) Kind {
	ext := strings.ToLower(filepath.Ext(filename))
	if kind, ok := extensionToKind[ext]; ok {
		return kind
	}
	return KindOther
}

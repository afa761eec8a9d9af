package variant

import "strings"

const (
	thumbnailSuffix = "-thumb"
	mediumSuffix    = "-medium"
)

// Keys holds the storage keys derived from an original key. Large (and full)
// reuse the original key verbatim; the original IS the large variant.
type Keys struct {
	Thumbnail string `json:"thumbnail"`
	Medium    string `json:"medium"`
	Large     string `json:"large"`
}

// DeriveKeys computes the variant keys for an original key by inserting a
// suffix before the file extension. Keys without an extension get the suffix
// appended directly. Pure string transform: no I/O, same input always yields
// the same output.
func DeriveKeys(originalKey string) Keys {
	dot := strings.LastIndex(originalKey, ".")
	if dot == -1 {
		return Keys{
			Thumbnail: originalKey + thumbnailSuffix,
			Medium:    originalKey + mediumSuffix,
			Large:     originalKey,
		}
	}

	base := originalKey[:dot]
	ext := originalKey[dot:]
	return Keys{
		Thumbnail: base + thumbnailSuffix + ext,
		Medium:    base + mediumSuffix + ext,
		Large:     originalKey,
	}
}

// All returns the three keys in order: thumbnail, medium, large. Large is the
// original key verbatim. Used by deletion to remove the whole blob family.
func (k Keys) All() []string {
	return []string{k.Thumbnail, k.Medium, k.Large}
}

package variant

import (
	"fmt"
	"strings"
)

// Resolver builds public URLs for variant keys from static configuration
// alone. It performs no I/O and does not check that the blobs exist: a photo
// whose pipeline never ran resolves to dangling URLs, which surface as a
// broken image at render time rather than as an error here.
type Resolver struct {
	baseURL string
}

// NewResolver selects the public URL scheme once: CDN-fronted when cdnDomain
// is set, direct-to-bucket otherwise. The two are never mixed per-key.
func NewResolver(bucket, region, cdnDomain string) Resolver {
	if cdnDomain != "" {
		return Resolver{baseURL: "https://" + cdnDomain + "/"}
	}
	return Resolver{baseURL: fmt.Sprintf("https://%s.s3.%s.amazonaws.com/", bucket, region)}
}

// SrcSetEntry is one (url, width-descriptor) pair.
type SrcSetEntry struct {
	URL   string `json:"url"`
	Width int    `json:"width"`
}

func (e SrcSetEntry) String() string {
	return fmt.Sprintf("%s %dw", e.URL, e.Width)
}

// URLSet is the full public URL family for one original key. Full points at
// the same blob as Large since neither carries a suffix.
type URLSet struct {
	Thumbnail string        `json:"thumbnail"`
	Medium    string        `json:"medium"`
	Large     string        `json:"large"`
	Full      string        `json:"full"`
	SrcSet    []SrcSetEntry `json:"srcset"`
}

// SrcSetAttr renders the srcset in the HTML attribute form
// "url1 400w, url2 1200w, url3 1920w".
func (u URLSet) SrcSetAttr() string {
	parts := make([]string, 0, len(u.SrcSet))
	for _, e := range u.SrcSet {
		parts = append(parts, e.String())
	}
	return strings.Join(parts, ", ")
}

// ResolveURLs derives the variant keys for baseKey and maps them onto the
// configured public base URL. It shares DeriveKeys with the pipeline, so the
// two can never disagree about where a variant lives.
func (r Resolver) ResolveURLs(baseKey string) URLSet {
	keys := DeriveKeys(baseKey)

	thumbURL := r.baseURL + keys.Thumbnail
	mediumURL := r.baseURL + keys.Medium
	largeURL := r.baseURL + keys.Large

	return URLSet{
		Thumbnail: thumbURL,
		Medium:    mediumURL,
		Large:     largeURL,
		Full:      largeURL,
		SrcSet: []SrcSetEntry{
			{URL: thumbURL, Width: Thumbnail.Width},
			{URL: mediumURL, Width: Medium.Width},
			{URL: largeURL, Width: Large.Width},
		},
	}
}

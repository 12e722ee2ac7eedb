package content

import (
	"fmt"
	"regexp"

	"clubsite/models"
)

// PlaceholderImage is served when an image reference is absent or cannot be
// resolved to an asset URL.
const PlaceholderImage = "/images/placeholder.svg"

// Asset references look like "image-<assetID>-<width>x<height>-<format>".
var imageRefPattern = regexp.MustCompile(`^image-([A-Za-z0-9]+)-(\d+x\d+)-([a-z0-9]+)$`)

// ImageURL resolves an opaque image reference to a CDN URL, constrained to
// the requested pixel width when width > 0. It never returns a broken URL: a
// nil or unparseable reference yields the local placeholder.
func (c *Client) ImageURL(ref *models.ImageRef, width int) string {
	if ref == nil {
		return PlaceholderImage
	}

	m := imageRefPattern.FindStringSubmatch(ref.Asset.Ref)
	if m == nil {
		return PlaceholderImage
	}

	u := fmt.Sprintf("https://cdn.sanity.io/images/%s/%s/%s-%s.%s", c.projectID, c.dataset, m[1], m[2], m[3])
	if width > 0 {
		u = fmt.Sprintf("%s?w=%d&fit=max", u, width)
	}
	return u
}

package models

// RawAlbum is a gallery album document as returned by the albums query, with
// the cover image asset already dereferenced by the query projection.
type RawAlbum struct {
	ID          string      `json:"_id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	PublishedAt string      `json:"publishedAt"`
	Featured    bool        `json:"featured"`
	CoverImage  *ImageAsset `json:"coverImage"`
}

// RawPhoto is a gallery photo document with its album back-reference and
// image asset dereferenced.
type RawPhoto struct {
	ID          string      `json:"_id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Album       *AlbumRef   `json:"album"`
	Image       *ImageAsset `json:"image"`
}

type AlbumRef struct {
	ID    string `json:"_id"`
	Title string `json:"title"`
}

// ImageAsset is a dereferenced image asset projection.
type ImageAsset struct {
	ID  string `json:"_id"`
	URL string `json:"url"`
}

// GalleryAlbum is the joined album shape served to the gallery page. Photos
// holds only photos whose back-reference matched this album; PhotoCount is
// always len(Photos), never a value trusted from the content source.
type GalleryAlbum struct {
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	CoverImageURL string         `json:"coverImageUrl,omitempty"`
	PhotoCount    int            `json:"photoCount"`
	Photos        []GalleryPhoto `json:"photos"`
}

type GalleryPhoto struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Caption  string `json:"caption"`
	ImageURL string `json:"imageUrl"`
	AlbumID  string `json:"albumId"`
}

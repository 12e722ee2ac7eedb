package services

import (
	"context"
	"encoding/json"
	"log"

	"clubsite/content"
	"clubsite/models"
)

type GalleryService struct {
	content *content.Client
}

func NewGalleryService(contentClient *content.Client) *GalleryService {
	return &GalleryService{content: contentClient}
}

// AlbumsWithPhotos fetches albums and photos as two independent queries and
// joins them client-side on the photo's album back-reference. It never
// returns an error: any failure degrades to an empty (or photo-less) result
// and the caller presents the empty state.
func (s *GalleryService) AlbumsWithPhotos(ctx context.Context) []models.GalleryAlbum {
	if err := s.content.Ping(ctx); err != nil {
		log.Printf("Gallery fetch skipped, connectivity test failed: %v", err)
		return []models.GalleryAlbum{}
	}

	rawAlbums, err := s.content.Query(ctx, "gallery_albums", content.QueryAlbums, nil)
	if err != nil {
		log.Printf("Gallery albums query failed: %v", err)
		return []models.GalleryAlbum{}
	}

	var albums []models.RawAlbum
	if err := json.Unmarshal(rawAlbums, &albums); err != nil {
		log.Printf("Gallery albums decode failed: %v", err)
		return []models.GalleryAlbum{}
	}
	if len(albums) == 0 {
		return []models.GalleryAlbum{}
	}

	// Albums still load when the photo query fails; they just come back
	// empty.
	var photos []models.RawPhoto
	if rawPhotos, err := s.content.Query(ctx, "gallery_photos", content.QueryPhotos, nil); err != nil {
		log.Printf("Gallery photos query failed: %v", err)
	} else if err := json.Unmarshal(rawPhotos, &photos); err != nil {
		log.Printf("Gallery photos decode failed: %v", err)
	}

	return joinAlbums(albums, photos)
}

// joinAlbums matches photos to albums by back-reference id. Photos whose
// reference matches no album are dropped; the photo count is derived from
// the join, never trusted from the source.
func joinAlbums(albums []models.RawAlbum, photos []models.RawPhoto) []models.GalleryAlbum {
	byAlbum := make(map[string][]models.GalleryPhoto)
	for _, p := range photos {
		if p.Album == nil || p.Album.ID == "" {
			continue
		}
		photo := models.GalleryPhoto{
			ID:      p.ID,
			Title:   p.Title,
			Caption: p.Description,
			AlbumID: p.Album.ID,
		}
		if p.Image != nil {
			photo.ImageURL = p.Image.URL
		}
		byAlbum[p.Album.ID] = append(byAlbum[p.Album.ID], photo)
	}

	joined := make([]models.GalleryAlbum, 0, len(albums))
	for _, a := range albums {
		album := models.GalleryAlbum{
			ID:          a.ID,
			Title:       a.Title,
			Description: a.Description,
			Photos:      byAlbum[a.ID],
		}
		if album.Photos == nil {
			album.Photos = []models.GalleryPhoto{}
		}
		album.PhotoCount = len(album.Photos)
		if a.CoverImage != nil {
			album.CoverImageURL = a.CoverImage.URL
		}
		joined = append(joined, album)
	}
	return joined
}

package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clubsite/content"
)

const twoAlbums = `[
  {"_id": "album-a", "title": "Club Championship", "description": "Finals day", "coverImage": {"_id": "img-1", "url": "https://cdn.example/a.jpg"}},
  {"_id": "album-b", "title": "Social Night"}
]`

// Five photos: three reference album A, two album B.
const fivePhotos = `[
  {"_id": "p1", "title": "First end", "album": {"_id": "album-a"}, "image": {"_id": "i1", "url": "https://cdn.example/p1.jpg"}},
  {"_id": "p2", "album": {"_id": "album-a"}},
  {"_id": "p3", "description": "The jack", "album": {"_id": "album-a"}},
  {"_id": "p4", "album": {"_id": "album-b"}},
  {"_id": "p5", "album": {"_id": "album-b"}}
]`

func TestGallery_JoinsPhotosToAlbums(t *testing.T) {
	client := newTestContentClient(t, contentResponses(map[string]string{
		content.QueryProbe:  `[]`,
		content.QueryAlbums: twoAlbums,
		content.QueryPhotos: fivePhotos,
	}))
	svc := NewGalleryService(client)

	albums := svc.AlbumsWithPhotos(context.Background())

	require.Len(t, albums, 2)
	assert.Equal(t, 3, albums[0].PhotoCount)
	assert.Len(t, albums[0].Photos, 3)
	assert.Equal(t, 2, albums[1].PhotoCount)
	assert.Len(t, albums[1].Photos, 2)

	assert.Equal(t, "https://cdn.example/a.jpg", albums[0].CoverImageURL)
	assert.Equal(t, "The jack", albums[0].Photos[2].Caption)
}

func TestGallery_OrphanPhotosDroppedWithoutError(t *testing.T) {
	photos := `[
  {"_id": "p1", "album": {"_id": "album-a"}},
  {"_id": "orphan-1", "album": {"_id": "no-such-album"}},
  {"_id": "orphan-2"},
  {"_id": "orphan-3", "album": {}}
]`
	client := newTestContentClient(t, contentResponses(map[string]string{
		content.QueryProbe:  `[]`,
		content.QueryAlbums: twoAlbums,
		content.QueryPhotos: photos,
	}))
	svc := NewGalleryService(client)

	albums := svc.AlbumsWithPhotos(context.Background())

	require.Len(t, albums, 2)
	assert.Equal(t, 1, albums[0].PhotoCount)
	assert.Equal(t, 0, albums[1].PhotoCount)
	// Orphans appear under no album.
	for _, album := range albums {
		for _, photo := range album.Photos {
			assert.NotContains(t, photo.ID, "orphan")
		}
	}
}

func TestGallery_ConnectivityFailureYieldsEmptyList(t *testing.T) {
	client := newTestContentClient(t, failingContent())
	svc := NewGalleryService(client)

	albums := svc.AlbumsWithPhotos(context.Background())

	assert.NotNil(t, albums)
	assert.Empty(t, albums)
}

func TestGallery_PhotoQueryFailureStillReturnsAlbums(t *testing.T) {
	// Albums query succeeds, photos query is unknown and fails.
	client := newTestContentClient(t, contentResponses(map[string]string{
		content.QueryProbe:  `[]`,
		content.QueryAlbums: twoAlbums,
	}))
	svc := NewGalleryService(client)

	albums := svc.AlbumsWithPhotos(context.Background())

	require.Len(t, albums, 2)
	for _, album := range albums {
		assert.Equal(t, 0, album.PhotoCount)
		assert.NotNil(t, album.Photos)
	}
}

func TestGallery_NoAlbums(t *testing.T) {
	client := newTestContentClient(t, contentResponses(map[string]string{
		content.QueryProbe:  `[]`,
		content.QueryAlbums: `[]`,
	}))
	svc := NewGalleryService(client)

	albums := svc.AlbumsWithPhotos(context.Background())

	assert.NotNil(t, albums)
	assert.Empty(t, albums)
}

func TestJoinAlbums_PhotoCountDerivedFromJoin(t *testing.T) {
	albums := joinAlbums(nil, nil)
	assert.Empty(t, albums)
}

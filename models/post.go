package models

// Post is a news/blog post document.
type Post struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Slug        Slug      `json:"slug"`
	Author      string    `json:"author"`
	MainImage   *ImageRef `json:"mainImage"`
	PublishedAt string    `json:"publishedAt"`
	Excerpt     string    `json:"excerpt"`
	Content     string    `json:"content"`
}

package content

// Named queries against the content source. Field projections follow the
// document schemas: event, post, galleryAlbum and galleryPhoto.
const (
	QueryEvents = `*[_type == "event"] | order(startDate asc) {
  _id,
  title,
  slug,
  eventType,
  startDate,
  endDate,
  location,
  description,
  image,
  isFeatured,
  registrationUrl,
  registrationRequired
}`

	QueryFeaturedEvents = `*[_type == "event" && isFeatured == true] | order(startDate asc) {
  _id,
  title,
  slug,
  eventType,
  startDate,
  endDate,
  location,
  description,
  image,
  registrationUrl,
  registrationRequired
}`

	QueryEventBySlug = `*[_type == "event" && slug.current == $slug][0]{
  _id,
  title,
  slug,
  eventType,
  startDate,
  endDate,
  location,
  description,
  image,
  isFeatured,
  registrationUrl,
  registrationRequired
}`

	QueryEventByID = `*[_type == "event" && _id == $id][0]{
  _id,
  title,
  slug,
  eventType,
  startDate,
  endDate,
  location,
  description,
  image,
  isFeatured,
  registrationUrl,
  registrationRequired
}`

	QueryPosts = `*[_type == "post"] | order(publishedAt desc) {
  _id,
  title,
  slug,
  author,
  mainImage,
  publishedAt,
  excerpt,
  content
}`

	// Albums and photos are fetched as two independent queries and joined
	// client-side. A single nested query proved unreliable against the
	// source, and the split keeps albums loadable when the photo query
	// fails.
	QueryAlbums = `*[_type == "galleryAlbum"] | order(publishedAt desc) {
  _id,
  title,
  description,
  publishedAt,
  featured,
  "coverImage": coverImage.asset->{
    _id,
    url
  }
}`

	QueryPhotos = `*[_type == "galleryPhoto"] {
  _id,
  title,
  description,
  "album": album->{ _id, title },
  "image": image.asset->{
    _id,
    url
  }
}`

	QueryProbe = `*[_type == "galleryAlbum"][0...1]`
)

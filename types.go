package pressfront

// MapConfig is the content of the map points file.
type MapConfig struct {
	Title  string     `yaml:"title"`
	Center [2]float64 `yaml:"center"` // lat, lng
	Zoom   int        `yaml:"zoom"`
	Points []MapPoint `yaml:"points"`
}

// MapPoint is a place on the map linked to a post.
type MapPoint struct {
	ID          int     `yaml:"id"`
	Title       string  `yaml:"title"`
	Lat         float64 `yaml:"lat"`
	Lng         float64 `yaml:"lng"`
	PostSlug    string  `yaml:"post_slug"`
	PostTitle   string  `yaml:"post_title"`
	PostExcerpt string  `yaml:"post_excerpt"`
}

package tmdb

// Person is the provider's person detail, with combined credits appended.
type Person struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Gender       int     `json:"gender"` // 0 not set, 1 female, 2 male, 3 non-binary
	Birthday     *string `json:"birthday"`
	Deathday     *string `json:"deathday"`
	PlaceOfBirth *string `json:"place_of_birth"`
	Biography    string  `json:"biography"`
	ProfilePath  *string `json:"profile_path"`
	KnownFor     string  `json:"known_for_department"`
	Popularity   float64 `json:"popularity"`

	CombinedCredits *Credits `json:"combined_credits,omitempty"`
}

type Credits struct {
	Cast []Credit `json:"cast"`
}

// Credit is one cast entry. Movies carry Title and ReleaseDate, TV entries Name and FirstAirDate.
type Credit struct {
	ID           int64   `json:"id"`
	MediaType    string  `json:"media_type"`
	Title        string  `json:"title"`
	Name         string  `json:"name"`
	Character    string  `json:"character"`
	ReleaseDate  string  `json:"release_date"`
	FirstAirDate string  `json:"first_air_date"`
	PosterPath   *string `json:"poster_path"`
}

// Profile is the presentation view of a person: details plus film credits with image URLs.
type Profile struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Biography    string  `json:"biography"`
	Birthday     *string `json:"birthday"`
	ProfileImage string  `json:"profile_image"`
	Movies       []Movie `json:"movies"`
}

type Movie struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Character   string `json:"character"`
	ReleaseDate string `json:"release_date"`
	Poster      string `json:"poster"`
}

package model

// Actor is the read shape of an actor row.
// Country carries the joined country name; the foreign key stays internal.
type Actor struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Gender  string `json:"gender"`
	DOB     string `json:"dob"`
	Country string `json:"country"`
}

// Country is the lookup entity referenced by actor.country_id.
type Country struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// NewActor is what the store inserts. CountryID must already be resolved.
type NewActor struct {
	Name      string
	Gender    string
	DOB       string
	CountryID int64
}

// ActorChanges is a partial update: nil fields are left untouched.
type ActorChanges struct {
	Name      *string
	Gender    *string
	DOB       *string
	CountryID *int64
}

// IsEmpty reports whether the change set would touch no column.
func (c ActorChanges) IsEmpty() bool {
	return c.Name == nil && c.Gender == nil && c.DOB == nil && c.CountryID == nil
}

const (
	GenderMale      = "Male"
	GenderFemale    = "Female"
	GenderNonBinary = "Non-binary"
	GenderUnknown   = "Unknown"

	// UnknownCountry is seeded by the migrations so imports without a birthplace resolve.
	UnknownCountry = "Unknown"

	DateLayout = "2006-01-02"
)

var Genders = []string{GenderMale, GenderFemale, GenderNonBinary, GenderUnknown}

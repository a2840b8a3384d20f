package tmdb

import (
	"strings"

	"actor-catalog/internal/domains/actor/model"
)

const (
	profileImageSize = "original"
	posterImageSize  = "w500"
)

// MapToActor converts a provider person into actor input. It is pure:
// gender 2 is Male, 1 is Female, anything else Unknown; dob is the birthday
// or absent; country is the last comma segment of the birthplace or Unknown.
func MapToActor(p Person) model.ActorInput {
	in := model.ActorInput{
		Name:    model.StringPtr(p.Name),
		Gender:  model.StringPtr(mapGender(p.Gender)),
		Country: model.StringPtr(countryFromBirthplace(p.PlaceOfBirth)),
	}
	if p.Birthday != nil && strings.TrimSpace(*p.Birthday) != "" {
		in.DOB = model.StringPtr(*p.Birthday)
	}
	return in
}

func mapGender(code int) string {
	switch code {
	case 2:
		return model.GenderMale
	case 1:
		return model.GenderFemale
	default:
		return model.GenderUnknown
	}
}

func countryFromBirthplace(place *string) string {
	if place == nil {
		return model.UnknownCountry
	}
	parts := strings.Split(*place, ",")
	if country := strings.TrimSpace(parts[len(parts)-1]); country != "" {
		return country
	}
	return model.UnknownCountry
}

// BuildProfile assembles the presentation view. TV credits are left out.
func BuildProfile(p Person, imageBaseURL string) Profile {
	profile := Profile{
		ID:           p.ID,
		Name:         p.Name,
		Biography:    p.Biography,
		Birthday:     p.Birthday,
		ProfileImage: imageURL(imageBaseURL, profileImageSize, p.ProfilePath),
		Movies:       []Movie{},
	}

	if p.CombinedCredits == nil {
		return profile
	}
	for _, c := range p.CombinedCredits.Cast {
		if c.MediaType == "tv" {
			continue
		}
		title := c.Title
		if title == "" {
			title = c.Name
		}
		profile.Movies = append(profile.Movies, Movie{
			ID:          c.ID,
			Title:       title,
			Character:   c.Character,
			ReleaseDate: c.ReleaseDate,
			Poster:      imageURL(imageBaseURL, posterImageSize, c.PosterPath),
		})
	}
	return profile
}

// imageURL is empty when the provider has no image.
func imageURL(base, size string, path *string) string {
	if path == nil || *path == "" {
		return ""
	}
	return strings.TrimRight(base, "/") + "/" + size + *path
}

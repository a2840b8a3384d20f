package model

import (
	"errors"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Constants for validation
const (
	MaxNameLength    = 255
	MaxCountryLength = 100

	DefaultPage    = 1
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// inputFields is the declared order used when reporting missing fields.
var inputFields = []string{"name", "gender", "dob", "country"}

// ActorInput - POST /v1/actors, PUT /v1/actors/:id, and mapped TMDB imports.
// Pointer fields distinguish "absent" from "empty" for partial updates.
type ActorInput struct {
	Name    *string `json:"name"`
	Gender  *string `json:"gender"`
	DOB     *string `json:"dob"`
	Country *string `json:"country"`
}

// Normalize trims supplied values and canonicalizes the gender label.
func (in *ActorInput) Normalize() {
	trim := func(p *string) {
		if p != nil {
			*p = strings.TrimSpace(*p)
		}
	}
	trim(in.Name)
	trim(in.Gender)
	trim(in.DOB)
	trim(in.Country)

	if in.Gender != nil {
		*in.Gender = CanonicalGender(*in.Gender)
	}
}

// CanonicalGender maps a label case-insensitively onto one of Genders.
// Unrecognized input is returned unchanged so validation can reject it.
func CanonicalGender(label string) string {
	for _, g := range Genders {
		if strings.EqualFold(label, g) {
			return g
		}
	}
	return label
}

// ValidateCreate requires every field.
func (in ActorInput) ValidateCreate() error {
	return toValidationError(validation.ValidateStruct(&in,
		validation.Field(&in.Name, validation.Required, validation.RuneLength(1, MaxNameLength)),
		validation.Field(&in.Gender, validation.Required, genderRule()),
		validation.Field(&in.DOB, validation.Required, dobRule()),
		validation.Field(&in.Country, validation.Required, validation.RuneLength(1, MaxCountryLength)),
	))
}

// ValidateUpdate checks only the supplied fields; supplied fields may not be blank.
func (in ActorInput) ValidateUpdate() error {
	return toValidationError(validation.ValidateStruct(&in,
		validation.Field(&in.Name, validation.NilOrNotEmpty, validation.RuneLength(1, MaxNameLength)),
		validation.Field(&in.Gender, validation.NilOrNotEmpty, genderRule()),
		validation.Field(&in.DOB, validation.NilOrNotEmpty, dobRule()),
		validation.Field(&in.Country, validation.NilOrNotEmpty, validation.RuneLength(1, MaxCountryLength)),
	))
}

func genderRule() validation.Rule {
	allowed := make([]interface{}, len(Genders))
	for i, g := range Genders {
		allowed[i] = g
	}
	return validation.In(allowed...).Error("must be one of " + strings.Join(Genders, ", "))
}

func dobRule() validation.Rule {
	return validation.Date(DateLayout).
		Max(time.Now()).
		Error("must be a date in YYYY-MM-DD format").
		RangeError("must not be in the future")
}

// toValidationError folds ozzo field errors into a ValidationError.
func toValidationError(err error) error {
	if err == nil {
		return nil
	}

	var fieldErrs validation.Errors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	ve := &ValidationError{}
	for _, field := range inputFields {
		fieldErr, ok := fieldErrs[field]
		if !ok || fieldErr == nil {
			continue
		}

		var coded validation.Error
		if errors.As(fieldErr, &coded) && coded.Code() == validation.ErrRequired.Code() {
			ve.Missing = append(ve.Missing, field)
			continue
		}
		if ve.Invalid == nil {
			ve.Invalid = make(map[string]string)
		}
		ve.Invalid[field] = fieldErr.Error()
	}

	if len(ve.Missing) == 0 && len(ve.Invalid) == 0 {
		return nil
	}
	return ve
}

// ToNewActor converts validated create input into a store insert.
func (in ActorInput) ToNewActor(countryID int64) NewActor {
	return NewActor{
		Name:      deref(in.Name),
		Gender:    deref(in.Gender),
		DOB:       deref(in.DOB),
		CountryID: countryID,
	}
}

// ToChanges converts validated update input; countryID is nil unless a country was supplied.
func (in ActorInput) ToChanges(countryID *int64) ActorChanges {
	return ActorChanges{
		Name:      in.Name,
		Gender:    in.Gender,
		DOB:       in.DOB,
		CountryID: countryID,
	}
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// ActorPage - GET /v1/actors?page=&per_page=
type ActorPage struct {
	Actors     []Actor `json:"actors"`
	Total      int     `json:"total"`
	Page       int     `json:"page"`
	PerPage    int     `json:"per_page"`
	TotalPages int     `json:"total_pages"`
}

// Paginate slices the full actor list into one page.
// Out-of-range pages come back empty with the totals intact.
func Paginate(all []Actor, page, perPage int) ActorPage {
	if page < 1 {
		page = DefaultPage
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}

	total := len(all)
	start := total
	if page-1 <= total/perPage {
		start = min((page-1)*perPage, total)
	}
	end := min(start+perPage, total)

	actors := make([]Actor, end-start)
	copy(actors, all[start:end])

	return ActorPage{
		Actors:     actors,
		Total:      total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: (total + perPage - 1) / perPage,
	}
}

// StringPtr is a small helper for building inputs.
func StringPtr(s string) *string {
	return &s
}

package entity

import (
	errs "github.com/amirhossein-jamali/cupcakes/internal/domain/error"
)

// DefaultImage is stored whenever a cupcake is created without an image
const DefaultImage = "https://tinyurl.com/demo-cupcake"

// Cupcake represents the single resource exposed by the API
type Cupcake struct {
	ID     uint64  // Assigned by the persistence layer on creation
	Flavor string
	Size   string
	Rating float64
	Image  string // Never empty once stored, falls back to DefaultImage
}

// NewCupcake builds a cupcake ready to be persisted.
// Required values are pointers so that an absent field can be told apart from a zero value.
func NewCupcake(flavor, size *string, rating *float64, image *string) (*Cupcake, error) {
	if flavor == nil {
		return nil, errs.NewMissingFieldError("flavor")
	}
	if size == nil {
		return nil, errs.NewMissingFieldError("size")
	}
	if rating == nil {
		return nil, errs.NewMissingFieldError("rating")
	}

	cupcake := &Cupcake{
		Flavor: *flavor,
		Size:   *size,
		Rating: *rating,
		Image:  DefaultImage,
	}
	if image != nil {
		cupcake.Image = imageOrDefault(*image)
	}

	return cupcake, nil
}

// imageOrDefault keeps the stored image column non-empty
func imageOrDefault(image string) string {
	if image == "" {
		return DefaultImage
	}
	return image
}

// CupcakeUpdate holds the fields of a partial update.
// A nil field leaves the stored value untouched.
type CupcakeUpdate struct {
	Flavor *string
	Size   *string
	Rating *float64
	Image  *string
}

// IsEmpty reports whether the update would change nothing
func (u CupcakeUpdate) IsEmpty() bool {
	return u.Flavor == nil && u.Size == nil && u.Rating == nil && u.Image == nil
}

// Fields returns the names of the fields set on the update, for logging
func (u CupcakeUpdate) Fields() []string {
	fields := make([]string, 0, 4)
	if u.Flavor != nil {
		fields = append(fields, "flavor")
	}
	if u.Size != nil {
		fields = append(fields, "size")
	}
	if u.Rating != nil {
		fields = append(fields, "rating")
	}
	if u.Image != nil {
		fields = append(fields, "image")
	}
	return fields
}

// Apply overwrites the fields present in the update. An empty image resets it to DefaultImage.
func (c *Cupcake) Apply(update CupcakeUpdate) {
	if update.Flavor != nil {
		c.Flavor = *update.Flavor
	}
	if update.Size != nil {
		c.Size = *update.Size
	}
	if update.Rating != nil {
		c.Rating = *update.Rating
	}
	if update.Image != nil {
		c.Image = imageOrDefault(*update.Image)
	}
}

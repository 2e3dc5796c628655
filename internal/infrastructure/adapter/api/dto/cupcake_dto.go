package dto

import (
	"github.com/amirhossein-jamali/cupcakes/internal/domain/entity"
	"github.com/amirhossein-jamali/cupcakes/internal/domain/port/usecase"
)

// CreateCupcakeRequest represents the body of POST /api/cupcakes.
// Fields are pointers so an absent key can be told apart from a zero value.
type CreateCupcakeRequest struct {
	Flavor *string  `json:"flavor"`
	Size   *string  `json:"size"`
	Rating *float64 `json:"rating"`
	Image  *string  `json:"image"`
}

// ToInput converts the request into the use case input
func (r CreateCupcakeRequest) ToInput() usecase.CreateCupcakeInput {
	return usecase.CreateCupcakeInput{
		Flavor: r.Flavor,
		Size:   r.Size,
		Rating: r.Rating,
		Image:  r.Image,
	}
}

// UpdateCupcakeRequest represents the body of PATCH /api/cupcakes/:id.
// A nil field, absent or JSON null, leaves the stored value unchanged.
type UpdateCupcakeRequest struct {
	Flavor *string  `json:"flavor"`
	Size   *string  `json:"size"`
	Rating *float64 `json:"rating"`
	Image  *string  `json:"image"`
}

// ToUpdate converts the request into a partial update
func (r UpdateCupcakeRequest) ToUpdate() entity.CupcakeUpdate {
	return entity.CupcakeUpdate{
		Flavor: r.Flavor,
		Size:   r.Size,
		Rating: r.Rating,
		Image:  r.Image,
	}
}

// CupcakeResponse is the public representation of a cupcake
type CupcakeResponse struct {
	ID     uint64  `json:"id"`
	Flavor string  `json:"flavor"`
	Size   string  `json:"size"`
	Rating float64 `json:"rating"`
	Image  string  `json:"image"`
}

// NewCupcakeResponse maps an entity to its public representation
func NewCupcakeResponse(c *entity.Cupcake) CupcakeResponse {
	return CupcakeResponse{
		ID:     c.ID,
		Flavor: c.Flavor,
		Size:   c.Size,
		Rating: c.Rating,
		Image:  c.Image,
	}
}

// CupcakeEnvelope wraps a single cupcake
type CupcakeEnvelope struct {
	Cupcake CupcakeResponse `json:"cupcake"`
}

// CupcakeListResponse wraps every cupcake
type CupcakeListResponse struct {
	Cupcakes []CupcakeResponse `json:"cupcakes"`
}

// NewCupcakeListResponse maps entities to the list response; the slice is never nil
func NewCupcakeListResponse(cupcakes []*entity.Cupcake) CupcakeListResponse {
	responses := make([]CupcakeResponse, 0, len(cupcakes))
	for _, c := range cupcakes {
		responses = append(responses, NewCupcakeResponse(c))
	}
	return CupcakeListResponse{Cupcakes: responses}
}

// MessageResponse carries a plain confirmation message
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse reports service health
type HealthResponse struct {
	Status string `json:"status"`
}

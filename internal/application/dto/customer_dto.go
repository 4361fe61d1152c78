package dto

import "github.com/jhoicas/Facturas-api/internal/domain/entity"

// CustomerResponse cliente para el selector del formulario.
type CustomerResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	ImageURL string `json:"image_url,omitempty"`
}

// ToCustomerList convierte las entidades a respuesta.
func ToCustomerList(customers []entity.Customer) []CustomerResponse {
	out := make([]CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, CustomerResponse{
			ID:       c.ID,
			Name:     c.Name,
			Email:    c.Email,
			ImageURL: c.ImageURL,
		})
	}
	return out
}

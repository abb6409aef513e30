package dto

import "github.com/BruksfildServices01/home-listing/internal/models"

type RealtorDTO struct {
	ID    uint   `json:"id,omitempty"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type ImageDTO struct {
	URL string `json:"url"`
}

type HomeDTO struct {
	ID                uint                `json:"id"`
	Address           string              `json:"address"`
	City              string              `json:"city"`
	Price             float64             `json:"price"`
	LandSize          float64             `json:"landSize"`
	PropertyType      models.PropertyType `json:"propertyType"`
	NumberOfBedrooms  int                 `json:"numberOfBedrooms"`
	NumberOfBathrooms float64             `json:"numberOfBathrooms"`
	RealtorID         uint                `json:"realtorId"`

	// Image is set on listings, Images and Realtor on the detail view.
	Image   *string     `json:"image,omitempty"`
	Images  []ImageDTO  `json:"images,omitempty"`
	Realtor *RealtorDTO `json:"realtor,omitempty"`
}

func NewHomeDTO(h *models.Home) HomeDTO {
	return HomeDTO{
		ID:                h.ID,
		Address:           h.Address,
		City:              h.City,
		Price:             h.Price,
		LandSize:          h.LandSize,
		PropertyType:      h.PropertyType,
		NumberOfBedrooms:  h.NumberOfBedrooms,
		NumberOfBathrooms: h.NumberOfBathrooms,
		RealtorID:         h.RealtorID,
	}
}

// NewHomeListItem surfaces the first image only.
func NewHomeListItem(h *models.Home) HomeDTO {
	out := NewHomeDTO(h)

	image := ""
	if len(h.Images) > 0 {
		image = h.Images[0].URL
	}
	out.Image = &image
	return out
}

func NewHomeDetail(h *models.Home) HomeDTO {
	out := NewHomeDTO(h)

	out.Images = make([]ImageDTO, 0, len(h.Images))
	for _, img := range h.Images {
		out.Images = append(out.Images, ImageDTO{URL: img.URL})
	}

	out.Realtor = &RealtorDTO{
		Name:  h.Realtor.Name,
		Email: h.Realtor.Email,
		Phone: h.Realtor.Phone,
	}
	return out
}

func NewRealtorDTO(u *models.User) RealtorDTO {
	return RealtorDTO{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Phone: u.Phone,
	}
}

package home

import "github.com/BruksfildServices01/home-listing/internal/models"

// Filter narrows a listing query. Zero values mean "no constraint".
type Filter struct {
	City         string
	MinPrice     *float64
	MaxPrice     *float64
	PropertyType models.PropertyType
}

// Changes carries a partial update; nil fields are left untouched.
type Changes struct {
	Address           *string
	City              *string
	Price             *float64
	LandSize          *float64
	PropertyType      *models.PropertyType
	NumberOfBedrooms  *int
	NumberOfBathrooms *float64
}

// Columns maps the supplied fields to their column names.
func (c Changes) Columns() map[string]any {
	cols := map[string]any{}

	if c.Address != nil {
		cols["address"] = *c.Address
	}
	if c.City != nil {
		cols["city"] = *c.City
	}
	if c.Price != nil {
		cols["price"] = *c.Price
	}
	if c.LandSize != nil {
		cols["land_size"] = *c.LandSize
	}
	if c.PropertyType != nil {
		cols["property_type"] = *c.PropertyType
	}
	if c.NumberOfBedrooms != nil {
		cols["number_of_bedrooms"] = *c.NumberOfBedrooms
	}
	if c.NumberOfBathrooms != nil {
		cols["number_of_bathrooms"] = *c.NumberOfBathrooms
	}

	return cols
}

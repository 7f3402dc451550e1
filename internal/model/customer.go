package model

import "time"

// CustomerDTO is the wire representation of a customer.
type CustomerDTO struct {
	ID               string    `json:"id,omitempty"`
	Name             string    `json:"name" validate:"notblank,max=255"`
	CreatedDate      time.Time `json:"createdDate,omitzero"`
	LastModifiedDate time.Time `json:"lastModifiedDate,omitzero"`
}

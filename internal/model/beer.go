package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// BeerDTO is the wire representation of a beer. The id is store-assigned and
// ignored on inbound create payloads; timestamps are always store-assigned.
type BeerDTO struct {
	ID               string           `json:"id,omitempty"`
	Name             string           `json:"name" validate:"notblank,min=3,max=255"`
	Style            string           `json:"style,omitempty" validate:"omitempty,min=1,max=255"`
	UPC              string           `json:"upc,omitempty" validate:"omitempty,max=25"`
	QuantityOnHand   *int32           `json:"quantityOnHand,omitempty"`
	Price            *decimal.Decimal `json:"price,omitempty"`
	CreatedDate      time.Time        `json:"createdDate,omitzero"`
	LastModifiedDate time.Time        `json:"lastModifiedDate,omitzero"`
}

package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Beer is the persisted form of a beer record in the beer collection
type Beer struct {
	ID               primitive.ObjectID    `bson:"_id,omitempty"`
	Name             string                `bson:"name"`
	Style            string                `bson:"style,omitempty"`
	UPC              string                `bson:"upc,omitempty"`
	QuantityOnHand   *int32                `bson:"quantityOnHand,omitempty"`
	Price            *primitive.Decimal128 `bson:"price,omitempty"`
	CreatedDate      time.Time             `bson:"createdDate"`
	LastModifiedDate time.Time             `bson:"lastModifiedDate"`
}

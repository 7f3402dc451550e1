package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Customer is the persisted form of a customer record in the customer collection
type Customer struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	Name             string             `bson:"name"`
	CreatedDate      time.Time          `bson:"createdDate"`
	LastModifiedDate time.Time          `bson:"lastModifiedDate"`
}

package mapper

import (
	"brewhouse/internal/domain"
	"brewhouse/internal/model"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ToBeerDTO converts a persisted beer into its wire representation.
func ToBeerDTO(beer domain.Beer) model.BeerDTO {
	dto := model.BeerDTO{
		Name:             beer.Name,
		Style:            beer.Style,
		UPC:              beer.UPC,
		QuantityOnHand:   beer.QuantityOnHand,
		CreatedDate:      beer.CreatedDate,
		LastModifiedDate: beer.LastModifiedDate,
	}
	if !beer.ID.IsZero() {
		dto.ID = beer.ID.Hex()
	}
	dto.Price = DecimalFromStore(beer.Price)
	return dto
}

// ToBeer converts an inbound beer DTO into its persisted form. The identifier
// and timestamps are store-assigned and never taken from the DTO.
func ToBeer(dto model.BeerDTO) domain.Beer {
	return domain.Beer{
		Name:           dto.Name,
		Style:          dto.Style,
		UPC:            dto.UPC,
		QuantityOnHand: dto.QuantityOnHand,
		Price:          DecimalToStore(dto.Price),
	}
}

// DecimalToStore converts a decimal price to its Decimal128 persisted form.
// String form round-trips exactly for any value a DTO can carry.
func DecimalToStore(d *decimal.Decimal) *primitive.Decimal128 {
	if d == nil {
		return nil
	}
	d128, err := primitive.ParseDecimal128(d.String())
	if err != nil {
		return nil
	}
	return &d128
}

// DecimalFromStore converts a persisted Decimal128 price back to a decimal.
func DecimalFromStore(d128 *primitive.Decimal128) *decimal.Decimal {
	if d128 == nil {
		return nil
	}
	d, err := decimal.NewFromString(d128.String())
	if err != nil {
		return nil
	}
	return &d
}

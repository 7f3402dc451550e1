package mapper

import (
	"brewhouse/internal/domain"
	"brewhouse/internal/model"
)

// ToCustomerDTO converts a persisted customer into its wire representation.
func ToCustomerDTO(customer domain.Customer) model.CustomerDTO {
	dto := model.CustomerDTO{
		Name:             customer.Name,
		CreatedDate:      customer.CreatedDate,
		LastModifiedDate: customer.LastModifiedDate,
	}
	if !customer.ID.IsZero() {
		dto.ID = customer.ID.Hex()
	}
	return dto
}

// ToCustomer converts an inbound customer DTO into its persisted form.
func ToCustomer(dto model.CustomerDTO) domain.Customer {
	return domain.Customer{
		Name: dto.Name,
	}
}

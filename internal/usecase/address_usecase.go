package usecase

import (
	"context"

	"contacts/internal/domain/entity"
)

// AddressInput carries every mutable address field. It is used for both create and full update.
type AddressInput struct {
	Street     string `json:"street" validate:"max=100"`
	City       string `json:"city" validate:"max=100"`
	Province   string `json:"province" validate:"max=100"`
	Country    string `json:"country" validate:"required,max=100"`
	PostalCode string `json:"postalCode" validate:"max=10"`
}

// AddressOutput is the public view of an address.
type AddressOutput struct {
	ID         string `json:"id"`
	Street     string `json:"street"`
	City       string `json:"city"`
	Province   string `json:"province"`
	Country    string `json:"country"`
	PostalCode string `json:"postalCode"`
}

// AddressUsecase manages the addresses of a contact owned by the given user.
type AddressUsecase interface {
	Create(ctx context.Context, user *entity.User, contactID string, input *AddressInput) (*AddressOutput, error)
	Get(ctx context.Context, user *entity.User, contactID, addressID string) (*AddressOutput, error)
	Update(ctx context.Context, user *entity.User, contactID, addressID string, input *AddressInput) (*AddressOutput, error)
	Delete(ctx context.Context, user *entity.User, contactID, addressID string) error
	List(ctx context.Context, user *entity.User, contactID string) ([]*AddressOutput, error)
}

// ToAddressOutput maps an address entity to its public view.
func ToAddressOutput(address *entity.Address) *AddressOutput {
	return &AddressOutput{
		ID:         address.ID,
		Street:     address.Street,
		City:       address.City,
		Province:   address.Province,
		Country:    address.Country,
		PostalCode: address.PostalCode,
	}
}

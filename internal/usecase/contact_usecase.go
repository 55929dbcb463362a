package usecase

import (
	"context"

	"contacts/internal/domain/entity"
)

// CreateContactInput defines a new contact. ID is optional and generated when empty.
type CreateContactInput struct {
	ID        string `json:"id" validate:"omitempty,max=100"`
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"max=100"`
	Email     string `json:"email" validate:"omitempty,email,max=100"`
	Phone     string `json:"phone" validate:"max=100"`
}

// UpdateContactInput replaces every mutable field of a contact.
type UpdateContactInput struct {
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"max=100"`
	Email     string `json:"email" validate:"omitempty,email,max=100"`
	Phone     string `json:"phone" validate:"max=100"`
}

// SearchContactInput holds the search filters and paging. Nil Page and Size take defaults.
type SearchContactInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Page  *int   `json:"page" validate:"omitempty,min=0"`
	Size  *int   `json:"size" validate:"omitempty,min=1"`
}

// ContactOutput is the public view of a contact.
type ContactOutput struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// PagingOutput describes the page returned by a search.
type PagingOutput struct {
	CurrentPage int `json:"currentPage"`
	TotalPage   int `json:"totalPage"`
	Size        int `json:"size"`
}

// ContactPage is one page of search results.
type ContactPage struct {
	Items  []*ContactOutput
	Paging PagingOutput
}

// ContactUsecase manages the caller's contacts. Every operation is scoped to the given user.
type ContactUsecase interface {
	Create(ctx context.Context, user *entity.User, input *CreateContactInput) (*ContactOutput, error)
	Get(ctx context.Context, user *entity.User, contactID string) (*ContactOutput, error)
	Update(ctx context.Context, user *entity.User, contactID string, input *UpdateContactInput) (*ContactOutput, error)
	Delete(ctx context.Context, user *entity.User, contactID string) error
	Search(ctx context.Context, user *entity.User, input *SearchContactInput) (*ContactPage, error)
	QRCode(ctx context.Context, user *entity.User, contactID string) ([]byte, error)
}

// ToContactOutput maps a contact entity to its public view.
func ToContactOutput(contact *entity.Contact) *ContactOutput {
	return &ContactOutput{
		ID:        contact.ID,
		FirstName: contact.FirstName,
		LastName:  contact.LastName,
		Email:     contact.Email,
		Phone:     contact.Phone,
	}
}

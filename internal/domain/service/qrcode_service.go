package service

import "contacts/internal/domain/entity"

// QRCodeService renders contacts as scannable QR codes.
type QRCodeService interface {
	// GenerateContactQR encodes the contact as a vCard and returns the PNG image.
	GenerateContactQR(contact *entity.Contact) ([]byte, error)
}

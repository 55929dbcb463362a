package qrcode

import (
	"strings"

	"contacts/config"
	"contacts/internal/domain/entity"
	"contacts/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size := 256
	levelName := ""
	if cfg != nil && cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		levelName = cfg.QRCode.ErrorCorrectionLevel
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: recoveryLevel(levelName),
	}
}

func recoveryLevel(name string) qrcode.RecoveryLevel {
	switch strings.ToUpper(name) {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateContactQR encodes the contact as a vCard 3.0 card and renders it as PNG.
func (s *qrcodeService) GenerateContactQR(contact *entity.Contact) ([]byte, error) {
	if contact == nil {
		return nil, errors.New("contact is nil")
	}

	qrCode, err := qrcode.New(buildVCard(contact), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// buildVCard renders the vCard 3.0 text, lines separated by CRLF.
func buildVCard(contact *entity.Contact) string {
	lines := []string{
		"BEGIN:VCARD",
		"VERSION:3.0",
		"N:" + escapeVCard(contact.LastName) + ";" + escapeVCard(contact.FirstName) + ";;;",
		"FN:" + escapeVCard(strings.TrimSpace(contact.FirstName+" "+contact.LastName)),
	}
	if contact.Email != "" {
		lines = append(lines, "EMAIL;TYPE=INTERNET:"+escapeVCard(contact.Email))
	}
	if contact.Phone != "" {
		lines = append(lines, "TEL;TYPE=CELL:"+escapeVCard(contact.Phone))
	}
	lines = append(lines, "UID:"+escapeVCard(contact.ID), "END:VCARD")

	return strings.Join(lines, "\r\n")
}

var vcardEscaper = strings.NewReplacer(
	`\`, `\\`,
	`;`, `\;`,
	`,`, `\,`,
	"\r\n", `\n`,
	"\n", `\n`,
)

func escapeVCard(value string) string {
	return vcardEscaper.Replace(value)
}

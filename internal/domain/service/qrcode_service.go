package service

// QRCodeService defines the interface for QR code generation
type QRCodeService interface {
	// GenerateProfileQR renders a PNG QR code that encodes the public profile URL
	GenerateProfileQR(profileURL string) ([]byte, error)
}

package bookings

import (
	qrcode "github.com/skip2/go-qrcode"
)

// GenerateETicket renders the confirmation code as a QR PNG. The code
// alone is enough for the airport desk to resolve the booking through
// the anonymous confirmation lookup.
func GenerateETicket(confirmationID string) ([]byte, error) {
	return qrcode.Encode(confirmationID, qrcode.Medium, 256)
}

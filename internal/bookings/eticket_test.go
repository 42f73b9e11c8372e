package bookings

import (
	"bytes"
	"testing"
)

func TestGenerateETicket(t *testing.T) {
	qr, err := GenerateETicket("AB12CD34")
	if err != nil {
		t.Fatalf("Failed to generate e-ticket: %v", err)
	}
	if len(qr) == 0 {
		t.Error("Generated e-ticket is empty")
	}

	// PNG signature check; the payload is handed to clients as an image.
	if !bytes.HasPrefix(qr, []byte("\x89PNG")) {
		t.Error("Expected a PNG payload")
	}
}

func TestGenerateETicketDistinctCodes(t *testing.T) {
	first, err := GenerateETicket("AB12CD34")
	if err != nil {
		t.Fatalf("Failed to generate first e-ticket: %v", err)
	}
	second, err := GenerateETicket("ZZ99YY88")
	if err != nil {
		t.Fatalf("Failed to generate second e-ticket: %v", err)
	}
	if bytes.Equal(first, second) {
		t.Error("Different confirmation codes produced identical QR images")
	}
}

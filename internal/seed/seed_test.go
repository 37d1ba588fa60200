package seed

import (
	"testing"

	"bus-booking/internal/data/entity"
)

func TestFillContactFields(t *testing.T) {
	content := "Green Line Paribahan\n" +
		"Official Address: 9/2 Outer Circular Road, Dhaka\n" +
		"Contact Information: +880 1711-123456\n" +
		"Email us at info@greenline.com.bd anytime\n" +
		"Privacy Policy / Terms Link: https://greenline.example/privacy\n"

	provider := &entity.BusProvider{Name: "Green Line"}
	fillContactFields(provider, content)

	if provider.OfficialAddress != "9/2 Outer Circular Road, Dhaka" {
		t.Errorf("address = %q", provider.OfficialAddress)
	}
	if provider.ContactInfo != "+880 1711-123456" {
		t.Errorf("contact = %q", provider.ContactInfo)
	}
	if provider.Email != "info@greenline.com.bd" {
		t.Errorf("email = %q", provider.Email)
	}
	if provider.Website != "https://greenline.example/privacy" {
		t.Errorf("website = %q", provider.Website)
	}
}

func TestPairBaseFare(t *testing.T) {
	if fare := pairBaseFare("Dhaka", "Chattogram"); fare != 600 {
		t.Errorf("Dhaka-Chattogram = %v, want 600", fare)
	}
	// Reverse direction resolves through the same entry.
	if fare := pairBaseFare("Chattogram", "Dhaka"); fare != 600 {
		t.Errorf("Chattogram-Dhaka = %v, want 600", fare)
	}
	if fare := pairBaseFare("Bogra", "Jessore"); fare != 400 {
		t.Errorf("unknown pair = %v, want default 400", fare)
	}
}

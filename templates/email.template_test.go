package templates

import (
	"strings"
	"testing"
	"time"
)

func TestPasswordResetTmpl(t *testing.T) {
	validTill := time.Date(2024, time.March, 14, 15, 9, 26, 0, time.UTC)

	emailHTML, err := Email{}.PasswordResetTmpl("Vinuka", "483920", validTill)
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{
		"483920",
		"Dear Vinuka",
		"Password Reset OTP",
		"March 14 2024, 3:09:26 pm",
		"expires in 10 minutes",
	} {
		if !strings.Contains(emailHTML, want) {
			t.Fatalf("expected the email to contain %q", want)
		}
	}
}

func TestVerificationTmpl(t *testing.T) {
	validTill := time.Date(2024, time.March, 14, 15, 9, 26, 0, time.UTC)

	emailHTML, err := Email{}.VerificationTmpl("193847", validTill)
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{
		"193847",
		"Email Verification OTP",
		"March 14 2024, 3:09:26 pm",
	} {
		if !strings.Contains(emailHTML, want) {
			t.Fatalf("expected the email to contain %q", want)
		}
	}
}

func TestContactTmpl(t *testing.T) {
	emailHTML, err := Email{}.ContactTmpl(
		"Vinuka",
		"donor@thelifesavers.in",
		"+94771234567",
		"Donation camp",
		"How do I host a donation camp in my area?",
	)
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{
		"Vinuka",
		"donor@thelifesavers.in",
		"+94771234567",
		"Donation camp",
		"How do I host a donation camp in my area?",
	} {
		if !strings.Contains(emailHTML, want) {
			t.Fatalf("expected the email to contain %q", want)
		}
	}
}

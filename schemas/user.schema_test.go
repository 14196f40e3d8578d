package schemas

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/thelifesavers/backend/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestFilterUser(t *testing.T) {
	id := primitive.NewObjectID()
	reviewID := primitive.NewObjectID()

	user := models.User{
		ID:                   id,
		FirstName:            "Vinuka",
		LastName:             "Thejana",
		Email:                "donor@thelifesavers.in",
		Password:             "$2a$12$secret-hash",
		MobileNumber:         "+94771234567",
		DOB:                  time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC),
		BloodGroup:           "O-",
		Availability:         true,
		ResetPasswordOtp:     "483920",
		ResetPasswordExpires: time.Now(),
		ReviewID:             &reviewID,
	}

	filtered := FilterUser(user)
	if filtered.ID != id.Hex() {
		t.Fatalf("expected the id %s, got %s", id.Hex(), filtered.ID)
	}
	if filtered.ReviewID != reviewID.Hex() {
		t.Fatalf("expected the review id %s, got %s", reviewID.Hex(), filtered.ReviewID)
	}

	// neither the password hash nor the reset otp may ever reach a client
	body, err := json.Marshal(filtered)
	if err != nil {
		t.Fatal(err)
	}
	for _, secret := range []string{"secret-hash", "483920", "password", "resetPasswordOtp"} {
		if strings.Contains(string(body), secret) {
			t.Fatalf("the response leaked %q", secret)
		}
	}
}

func TestFilterUserWithoutReview(t *testing.T) {
	filtered := FilterUser(models.User{
		ID:    primitive.NewObjectID(),
		Email: "donor@thelifesavers.in",
	})
	if filtered.ReviewID != "" {
		t.Fatalf("expected an empty review id, got %s", filtered.ReviewID)
	}

	body, err := json.Marshal(filtered)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(body), "reviewId") {
		t.Fatal("an empty review id must be omitted from the response")
	}
}

func TestFilterUsers(t *testing.T) {
	filtered := FilterUsers(nil)
	if filtered == nil {
		t.Fatal("expected an empty slice, got nil")
	}
	if len(filtered) != 0 {
		t.Fatalf("expected no users, got %d", len(filtered))
	}
}

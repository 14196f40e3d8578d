package validate

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

func TestIsMobile(t *testing.T) {
	args := []struct {
		mobile string
		valid  bool
	}{
		{mobile: "+94771234567", valid: true},
		{mobile: "94771234567", valid: true},
		{mobile: "+919876543210", valid: true},
		{mobile: "", valid: false},
		{mobile: "+0771234567", valid: false},
		{mobile: "077-123-4567", valid: false},
		{mobile: "not a number", valid: false},
		{mobile: "+947712345678901234", valid: false},
	}

	for _, arg := range args {
		if got := IsMobile(arg.mobile); got != arg.valid {
			t.Fatalf("IsMobile(%q) = %v, expected %v", arg.mobile, got, arg.valid)
		}
	}
}

func TestPassword(t *testing.T) {
	validate := validator.New()
	err := validate.RegisterValidation("validate_password", Password)
	if err != nil {
		t.Fatal(err)
	}

	type payload struct {
		Password string `validate:"validate_password"`
	}

	args := []struct {
		password string
		valid    bool
	}{
		{password: "N0t-e@sy-t0-Guess", valid: true},
		{password: "password", valid: false},
		{password: "123456", valid: false},
		{password: "aaaaaaaaaaaa", valid: false},
	}

	for _, arg := range args {
		err = validate.Struct(payload{Password: arg.password})
		if (err == nil) != arg.valid {
			t.Fatalf("password %q : expected valid=%v, got err=%v", arg.password, arg.valid, err)
		}
	}
}

func TestImage(t *testing.T) {
	validate := validator.New()
	err := validate.RegisterValidation("validate_image", Image)
	if err != nil {
		t.Fatal(err)
	}

	type payload struct {
		Image string `validate:"validate_image"`
	}

	args := []struct {
		image string
		valid bool
	}{
		{image: "", valid: true},
		{image: "https://cdn.thelifesavers.in/avatars/1.png", valid: true},
		{image: "http://example.com/photo.jpg", valid: true},
		{image: "data:image/png;base64,iVBORw0KGgoAAAANSUhEUg==", valid: true},
		{image: "data:image/jpeg;base64,/9j/4AAQSkZJRg==", valid: true},
		{image: "data:image/svg+xml;base64,PHN2Zz4=", valid: false},
		{image: "ftp://example.com/photo.jpg", valid: false},
		{image: "just some text", valid: false},
	}

	for _, arg := range args {
		err = validate.Struct(payload{Image: arg.image})
		if (err == nil) != arg.valid {
			t.Fatalf("image %q : expected valid=%v, got err=%v", arg.image, arg.valid, err)
		}
	}
}

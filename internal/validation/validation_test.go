package validation

import "testing"

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{name: "valid email", email: "test@example.com", wantErr: false},
		{name: "valid email with subdomain", email: "user@mail.example.com", wantErr: false},
		{name: "valid email with plus", email: "user+tag@example.com", wantErr: false},
		{name: "missing @", email: "testexample.com", wantErr: true},
		{name: "missing domain", email: "test@", wantErr: true},
		{name: "missing local part", email: "@example.com", wantErr: true},
		{name: "empty string", email: "", wantErr: true},
		{name: "spaces in email", email: "test @example.com", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateEmail(%q) error = %v, wantErr %v", tt.email, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "valid password", password: "longenough", wantErr: false},
		{name: "exactly 8 characters", password: "12345678", wantErr: false},
		{name: "too short", password: "short", wantErr: true},
		{name: "empty", password: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePassword(%q) error = %v, wantErr %v", tt.password, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		name    string
		phone   string
		wantErr bool
	}{
		{name: "local number", phone: "0412 345 678", wantErr: false},
		{name: "international number", phone: "+61 412 345 678", wantErr: false},
		{name: "with parens", phone: "(02) 9876 5432", wantErr: false},
		{name: "letters", phone: "not a phone", wantErr: true},
		{name: "too short", phone: "123", wantErr: true},
		{name: "empty", phone: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePhone(tt.phone)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePhone(%q) error = %v, wantErr %v", tt.phone, err, tt.wantErr)
			}
		})
	}
}

func TestValidateRequired(t *testing.T) {
	if err := ValidateRequired("rejectionReason", "too many absences"); err != nil {
		t.Errorf("ValidateRequired() unexpected error: %v", err)
	}
	if err := ValidateRequired("rejectionReason", "   "); err == nil {
		t.Error("ValidateRequired() should reject whitespace-only values")
	}
}

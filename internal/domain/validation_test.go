package domain

import "testing"

func TestValidateAmount(t *testing.T) {
	tests := []struct {
		name    string
		amount  float64
		wantErr bool
	}{
		{"valid", 2500.00, false},
		{"valid with cents", 100.25, false},
		{"smallest", 0.01, false},
		{"maximum", 999999999.99, false},
		// Nine-digit amounts whose cents are not exactly representable in
		// float64; the rule is about written decimal places, not bit patterns.
		{"large with cents", 291573447.91, false},
		{"large with cents 2", 648276332.93, false},
		{"large with cents 3", 169448086.11, false},
		{"large with trailing zero cent", 537097850.30, false},
		{"zero", 0, true},
		{"negative", -10, true},
		{"over maximum", 1000000000.00, true},
		{"three decimals", 10.001, true},
		{"large three decimals", 123456789.015, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAmount(tt.amount)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAmount(%v) error = %v, wantErr %v", tt.amount, err, tt.wantErr)
			}
		})
	}
}

func TestValidateCurrency(t *testing.T) {
	for _, valid := range []string{"USD", "EUR", "GBP", "ZAR", "JPY"} {
		if err := ValidateCurrency(valid); err != nil {
			t.Errorf("ValidateCurrency(%q) unexpected error: %v", valid, err)
		}
	}
	for _, invalid := range []string{"usd", "RUB", "", "USDT"} {
		if err := ValidateCurrency(invalid); err == nil {
			t.Errorf("ValidateCurrency(%q) expected error", invalid)
		}
	}
}

func TestValidatePayeeAccount(t *testing.T) {
	tests := []struct {
		name    string
		account string
		wantErr bool
	}{
		{"uk iban", "GB29NWBK60161331926819", false},
		{"minimum length", "DE0012345678901", false},
		{"too short", "GB29NWBK", true},
		{"lowercase", "gb29nwbk60161331926819", true},
		{"special chars", "GB29-NWBK-6016-1331", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePayeeAccount(tt.account)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePayeeAccount(%q) error = %v, wantErr %v", tt.account, err, tt.wantErr)
			}
		})
	}
}

func TestValidateSwiftCode(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantErr bool
	}{
		{"eight chars", "NWBKGB2L", false},
		{"eleven chars", "NWBKGB2LXXX", false},
		{"too short", "NWBKGB", true},
		{"digits in bank code", "NW1KGB2L", true},
		{"nine chars", "NWBKGB2LX", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSwiftCode(tt.code)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSwiftCode(%q) error = %v, wantErr %v", tt.code, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePayeeName(t *testing.T) {
	if err := ValidatePayeeName("Jane Doe"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	for _, invalid := range []string{"J", "Jane123", "Jane@Doe", ""} {
		if err := ValidatePayeeName(invalid); err == nil {
			t.Errorf("ValidatePayeeName(%q) expected error", invalid)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"valid", "Str0ng!Pass", false},
		{"no uppercase", "str0ng!pass", true},
		{"no digit", "Strong!Pass", true},
		{"no special", "Str0ngPass", true},
		{"too short", "S0!a", true},
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

func TestValidationErrorReportsField(t *testing.T) {
	err := ValidateCurrency("XXX")
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Field != "currency" {
		t.Errorf("expected field currency, got %s", err.Field)
	}
}

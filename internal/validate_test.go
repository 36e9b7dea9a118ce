package internal

import "testing"

func TestValidateCode(t *testing.T) {
	if err := ValidateCode("print('hi')", 0); err != nil {
		t.Errorf("disabled guard rejected code: %v", err)
	}
	if err := ValidateCode("print('hi')", 100); err != nil {
		t.Errorf("small code rejected: %v", err)
	}
	if err := ValidateCode("print('hi')", 4); err == nil {
		t.Error("oversized code accepted")
	}
}

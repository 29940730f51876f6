package adapters

import (
	"strings"
	"sync"
	"testing"

	"github.com/ecommerce/backend/internal/domain/valueobject"
)

func TestPasswordValidator_Validate(t *testing.T) {
	tests := []struct {
		name           string
		password       string
		confirm        string
		expectedPassed bool
		expectedReason valueobject.FailureReason
	}{
		{
			name:           "valid password with confirmation",
			password:       "12#Fourfiv3sixSEVEN",
			confirm:        "12#Fourfiv3sixSEVEN",
			expectedPassed: true,
		},
		{
			name:           "valid password with many specials",
			password:       "(*&&7898adlkfBEND)",
			confirm:        "(*&&7898adlkfBEND)",
			expectedPassed: true,
		},
		{
			name:           "exactly at every threshold",
			password:       "12ABcdef!x",
			confirm:        "12ABcdef!x",
			expectedPassed: true,
		},
		{
			name:           "empty password",
			password:       "",
			confirm:        "",
			expectedReason: valueobject.ReasonMinLength,
		},
		{
			name:           "too short",
			password:       "tOo*sh0t",
			confirm:        "tOo*sh0t",
			expectedReason: valueobject.ReasonMinLength,
		},
		{
			name:           "nine characters one below threshold",
			password:       "12ABcdef!",
			confirm:        "12ABcdef!",
			expectedReason: valueobject.ReasonMinLength,
		},
		{
			name:           "no digits",
			password:       "EveryThing@#$%",
			confirm:        "EveryThing@#$%",
			expectedReason: valueobject.ReasonMinDigits,
		},
		{
			name:           "single digit is not enough",
			password:       "thisisalllower*4",
			confirm:        "thisisalllower*4",
			expectedReason: valueobject.ReasonMinDigits,
		},
		{
			name:           "only digits reports uppercase next",
			password:       "123123123123",
			confirm:        "123123123123",
			expectedReason: valueobject.ReasonMinUppercase,
		},
		{
			name:           "one uppercase",
			password:       "thisislower*42A",
			confirm:        "thisislower*42A",
			expectedReason: valueobject.ReasonMinUppercase,
		},
		{
			name:           "no lowercase",
			password:       "ASEVDIR3(A)32",
			confirm:        "ASEVDIR3(A)32",
			expectedReason: valueobject.ReasonMinLowercase,
		},
		{
			name:           "three lowercase",
			password:       "ASEVDIR3(abc)32",
			confirm:        "ASEVDIR3(abc)32",
			expectedReason: valueobject.ReasonMinLowercase,
		},
		{
			name:           "no special character",
			password:       "ASEVDIR3asdfA32",
			confirm:        "ASEVDIR3asdfA32",
			expectedReason: valueobject.ReasonMinSpecialChars,
		},
		{
			name:           "whitespace is not special",
			password:       "AB12cdef gh",
			confirm:        "AB12cdef gh",
			expectedReason: valueobject.ReasonMinSpecialChars,
		},
		{
			name:           "confirmation differs",
			password:       "*AVeryFin33Password",
			confirm:        "thisisdi$4Bff3rent",
			expectedReason: valueobject.ReasonNoMatch,
		},
		{
			name:           "confirmation differs only by case",
			password:       "12#Fourfiv3sixSEVEN",
			confirm:        "12#fourfiv3sixSEVEN",
			expectedReason: valueobject.ReasonNoMatch,
		},
	}

	validator := NewPasswordValidator()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validator.Validate(tt.password, tt.confirm)

			if result.Passed != tt.expectedPassed {
				t.Fatalf("expected passed=%v, got %+v", tt.expectedPassed, result)
			}
			if result.Reason != tt.expectedReason {
				t.Errorf("expected reason %q, got %q", tt.expectedReason, result.Reason)
			}
		})
	}
}

func TestPasswordValidator_ShortPasswordAlwaysReportsLength(t *testing.T) {
	validator := NewPasswordValidator()

	for _, p := range []string{"a", "AA", "12", "!!!!", "aB3$", "Aa1!Aa1!Aa"[:9], "ÄÖÜäöüß1!"} {
		result := validator.Validate(p, p)
		if result.Reason != valueobject.ReasonMinLength {
			t.Errorf("password %q: expected MIN_LENGTH, got %+v", p, result)
		}
	}
}

func TestPasswordValidator_CountsUnicodeCharacters(t *testing.T) {
	validator := NewPasswordValidator()

	// Ten characters but more than ten bytes.
	password := "ÄÖäöüß12!x"
	result := validator.Validate(password, password)
	if !result.Passed {
		t.Errorf("expected non-ASCII letters to count toward length and case rules, got %+v", result)
	}

	// Non-ASCII digits are not decimal digits for the policy.
	password = "ABcdef١٢!xyz"
	result = validator.Validate(password, password)
	if result.Reason != valueobject.ReasonMinDigits {
		t.Errorf("expected MIN_DIGITS for Arabic-Indic digits, got %+v", result)
	}
}

func TestPasswordValidator_EverySpecialCharacterCounts(t *testing.T) {
	validator := NewPasswordValidator()

	for _, special := range valueobject.PasswordSpecialChars {
		password := "AB12cdefgh" + string(special)
		result := validator.Validate(password, password)
		if !result.Passed {
			t.Errorf("special %q: expected pass, got %+v", special, result)
		}
	}
}

func TestPasswordValidator_IsIdempotentAndConcurrent(t *testing.T) {
	validator := NewPasswordValidator()
	inputs := []string{"tOo*sh0t", "EveryThing@#$%", "12#Fourfiv3sixSEVEN", strings.Repeat("a", 20)}

	expected := make([]valueobject.PasswordPolicyResult, len(inputs))
	for i, p := range inputs {
		expected[i] = validator.Validate(p, p)
	}

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, p := range inputs {
				if got := validator.Validate(p, p); got != expected[i] {
					t.Errorf("password %q: expected %+v, got %+v", p, expected[i], got)
				}
			}
		}()
	}
	wg.Wait()
}

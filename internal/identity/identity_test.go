package identity

import (
	"PhotoVault/internal/apperr"
	"testing"
)

func newTestExtractor() *Extractor {
	return NewExtractor([]string{"admin", "manager"}, "customer")
}

func TestFromClaims(t *testing.T) {
	ext := newTestExtractor()

	ident, err := ext.FromClaims("u1", "u1@test.com", "customer")
	if err != nil {
		t.Fatalf("FromClaims failed: %v", err)
	}
	if ident.SubjectID != "u1" || ident.Email != "u1@test.com" || ident.Role != "customer" {
		t.Fatalf("unexpected identity: %+v", ident)
	}
}

func TestFromClaimsDefaultRole(t *testing.T) {
	ext := newTestExtractor()

	ident, err := ext.FromClaims("u1", "u1@test.com", "")
	if err != nil {
		t.Fatalf("FromClaims failed: %v", err)
	}
	if ident.Role != "customer" {
		t.Fatalf("expect default role customer, got %q", ident.Role)
	}
	if ext.IsElevated(ident) {
		t.Fatal("default role must not be elevated")
	}
}

func TestFromClaimsMissingClaims(t *testing.T) {
	ext := newTestExtractor()

	if _, err := ext.FromClaims("", "u1@test.com", ""); !apperr.IsKind(err, apperr.Authorization) {
		t.Fatalf("expect authorization error for missing subject, got %v", err)
	}
	if _, err := ext.FromClaims("u1", "", ""); !apperr.IsKind(err, apperr.Authorization) {
		t.Fatalf("expect authorization error for missing email, got %v", err)
	}
}

func TestIsElevatedCaseInsensitive(t *testing.T) {
	ext := newTestExtractor()

	cases := []struct {
		role     string
		elevated bool
	}{
		{"admin", true},
		{"Admin", true},
		{"MANAGER", true},
		{"customer", false},
		{"Customer", false},
		{"auditor", false},
	}
	for _, tc := range cases {
		ident, err := ext.FromClaims("u1", "u1@test.com", tc.role)
		if err != nil {
			t.Fatalf("FromClaims(%q) failed: %v", tc.role, err)
		}
		if got := ext.IsElevated(ident); got != tc.elevated {
			t.Fatalf("IsElevated(%q) = %v, expect %v", tc.role, got, tc.elevated)
		}
	}
}

func TestConfigurableElevatedRoles(t *testing.T) {
	ext := NewExtractor([]string{"superuser"}, "customer")

	ident, _ := ext.FromClaims("u1", "u1@test.com", "SuperUser")
	if !ext.IsElevated(ident) {
		t.Fatal("configured role should be elevated")
	}
	ident, _ = ext.FromClaims("u1", "u1@test.com", "admin")
	if ext.IsElevated(ident) {
		t.Fatal("admin is not in the configured elevated set")
	}
}

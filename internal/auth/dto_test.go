package auth

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/carnamarket/backend/api/validators"
)

func TestRegisterRequestBindsFrontendPayload(t *testing.T) {
	body := `{"email":"a@b.com","password":"Str0ng!Pass","firstName":"Jan","lastName":"Peeters"}`
	req := httptest.NewRequest("POST", "/api/auth/register", strings.NewReader(body))

	var dst RegisterRequest
	if err := validators.DecodeJSONBody(req, &dst); err != nil {
		t.Fatalf("decode register payload: %v", err)
	}
	if dst.Email != "a@b.com" {
		t.Fatalf("unexpected email %q", dst.Email)
	}
	if dst.FirstName != "Jan" || dst.LastName != "Peeters" {
		t.Fatalf("name fields not bound: %q %q", dst.FirstName, dst.LastName)
	}
	if dst.Phone != nil || dst.CarnivalGroupID != nil {
		t.Fatal("optional fields should stay nil when absent")
	}
}

func TestRegisterRequestBindsOptionalFields(t *testing.T) {
	body := `{"email":"a@b.com","password":"Str0ng!Pass","firstName":"Jan","lastName":"Peeters",` +
		`"postalCode":"9300","carnivalGroupId":"3b0c8f8e-54a1-4a8e-9a64-111111111111"}`
	req := httptest.NewRequest("POST", "/api/auth/register", strings.NewReader(body))

	var dst RegisterRequest
	if err := validators.DecodeJSONBody(req, &dst); err != nil {
		t.Fatalf("decode register payload: %v", err)
	}
	if dst.PostalCode == nil || *dst.PostalCode != "9300" {
		t.Fatalf("postal code not bound: %v", dst.PostalCode)
	}
	if dst.CarnivalGroupID == nil {
		t.Fatal("carnival group id not bound")
	}
}

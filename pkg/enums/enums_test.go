package enums

import "testing"

func TestProductConditionParsing(t *testing.T) {
	for _, raw := range []string{"new", "like-new", "good", "fair", "needs-repair"} {
		cond, err := ParseProductCondition(raw)
		if err != nil {
			t.Fatalf("expected %q to parse: %v", raw, err)
		}
		if !cond.IsValid() {
			t.Fatalf("parsed condition %q should be valid", cond)
		}
	}

	if _, err := ParseProductCondition("mint"); err == nil {
		t.Fatal("expected unknown condition to fail")
	}
	if ProductCondition("broken").IsValid() {
		t.Fatal("unknown condition should not be valid")
	}
}

func TestOrderStatusParsing(t *testing.T) {
	for _, raw := range []string{"pending", "paid", "shipped", "delivered", "cancelled", "refunded"} {
		status, err := ParseOrderStatus(raw)
		if err != nil {
			t.Fatalf("expected %q to parse: %v", raw, err)
		}
		if !status.IsValid() {
			t.Fatalf("parsed status %q should be valid", status)
		}
	}

	if _, err := ParseOrderStatus("archived"); err == nil {
		t.Fatal("expected unknown status to fail")
	}
}

func TestPaymentMethodParsing(t *testing.T) {
	for _, raw := range []string{"bancontact", "visa", "mastercard", "paypal"} {
		method, err := ParsePaymentMethod(raw)
		if err != nil {
			t.Fatalf("expected %q to parse: %v", raw, err)
		}
		if !method.IsValid() {
			t.Fatalf("parsed method %q should be valid", method)
		}
	}

	if _, err := ParsePaymentMethod("ideal"); err == nil {
		t.Fatal("expected unknown method to fail")
	}
}

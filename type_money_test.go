package compound

import "testing"

func TestMoneyString(t *testing.T) {
	testCases := []struct {
		money Money
		want  string
	}{
		{M(10000, "USD"), "$10,000.00"},
		{M(9900.5, "USD"), "$9,900.50"},
		{M(1234.56, "EUR"), "€1.234,56"},
	}
	for _, tc := range testCases {
		if got := tc.money.String(); got != tc.want {
			t.Errorf("String() = %q want %q", got, tc.want)
		}
	}
}

func TestMoneyMul(t *testing.T) {
	got := M(10000, "USD").Mul(1.1)
	if want := M(11000, "USD"); !got.Equal(want) {
		t.Errorf("Mul(1.1) = %v want %v", got, want)
	}
	if got := M(100, "USD").Mul(1); !got.Equal(M(100, "USD")) {
		t.Errorf("Mul(1) changed the value: %v", got)
	}
}

func TestMoneyEqual(t *testing.T) {
	if !M(10, "USD").Equal(M(10.0, "USD")) {
		t.Errorf("integer and float constructors should compare equal")
	}
	if M(10, "USD").Equal(M(10, "EUR")) {
		t.Errorf("different currencies should not compare equal")
	}
}

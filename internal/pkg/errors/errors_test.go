package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestClassOf(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want Class
	}{
		{
			name: "transient error",
			err:  Transient("STORE_UNAVAILABLE", "ledger store down", errors.New("dial tcp")),
			want: ClassTransient,
		},
		{
			name: "poison error",
			err:  Poison("UNSUPPORTED_VERSION", "no decoder for version 0.9", nil),
			want: ClassPoison,
		},
		{
			name: "policy violation",
			err:  PolicyViolation("MEMBERSHIP_DENIED", "no cached membership"),
			want: ClassPolicyViolation,
		},
		{
			name: "wrapped consumer error keeps class",
			err:  fmt.Errorf("handle member.added: %w", Poison("BAD_PAYLOAD", "truncated json", nil)),
			want: ClassPoison,
		},
		{
			name: "plain error defaults to transient",
			err:  errors.New("context deadline exceeded"),
			want: ClassTransient,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClassOf(tc.err); got != tc.want {
				t.Fatalf("ClassOf() = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Transient("BUS_UNAVAILABLE", "publish failed", cause)

	if !errors.Is(err, cause) {
		t.Fatalf("expected errors.Is to find the wrapped cause")
	}

	ce, ok := AsConsumerError(fmt.Errorf("outer: %w", err))
	if !ok {
		t.Fatalf("expected AsConsumerError to unwrap")
	}
	if ce.Code != "BUS_UNAVAILABLE" {
		t.Fatalf("code mismatch: got %s", ce.Code)
	}
}

func TestIsHelpers(t *testing.T) {
	if !IsPoison(Poison("X", "x", nil)) {
		t.Fatal("IsPoison false for poison error")
	}
	if !IsTransient(errors.New("anything")) {
		t.Fatal("IsTransient false for unclassified error")
	}
	if IsPolicyViolation(Transient("X", "x", nil)) {
		t.Fatal("IsPolicyViolation true for transient error")
	}
}

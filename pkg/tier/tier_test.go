package tier

import "testing"

func TestTier_Byte(t *testing.T) {
	tests := []struct {
		tier Tier
		want byte
	}{
		{Unknown, '?'},
		{Guest, '%'},
		{User, '$'},
		{System, '@'},
		{Absolute, '#'},
		{Tier(99), '?'}, // out of range values render as unknown
	}
	for _, tt := range tests {
		if got := tt.tier.Byte(); got != tt.want {
			t.Errorf("Tier(%d).Byte() = %q, want %q", tt.tier, got, tt.want)
		}
	}
}

func TestTier_String(t *testing.T) {
	tests := []struct {
		tier Tier
		want string
	}{
		{Unknown, "unknown"},
		{Guest, "guest"},
		{User, "user"},
		{System, "system"},
		{Absolute, "absolute"},
	}
	for _, tt := range tests {
		if got := tt.tier.String(); got != tt.want {
			t.Errorf("Tier(%d).String() = %q, want %q", tt.tier, got, tt.want)
		}
	}
}

func TestFromByte_RoundTrip(t *testing.T) {
	for _, tier := range []Tier{Unknown, Guest, User, System, Absolute} {
		got, ok := FromByte(tier.Byte())
		if !ok {
			t.Fatalf("FromByte(%q) not recognized", tier.Byte())
		}
		if got != tier {
			t.Errorf("FromByte(%q) = %v, want %v", tier.Byte(), got, tier)
		}
	}

	if _, ok := FromByte('x'); ok {
		t.Error("FromByte('x') should not be recognized")
	}
}

func TestTier_Ordering(t *testing.T) {
	// Tiers compare by ascending privilege.
	if !(Guest < User && User < System && System < Absolute) {
		t.Error("tiers are not ordered by ascending privilege")
	}
	if Unknown >= Guest {
		t.Error("Unknown should order below every real tier")
	}
}

package colr

import "testing"

func TestColorIndexIsForeground(t *testing.T) {
	tests := []struct {
		name string
		c    ColorIndex
		want bool
	}{
		{name: "palette entry 0", c: ColorIndex{Index: 0, Alpha: 1}, want: false},
		{name: "ordinary entry", c: ColorIndex{Index: 42, Alpha: 1}, want: false},
		{name: "last real entry", c: ColorIndex{Index: 0xFFFE, Alpha: 1}, want: false},
		{name: "foreground", c: ColorIndex{Index: ForegroundPalette, Alpha: 1}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.IsForeground(); got != tt.want {
				t.Errorf("IsForeground() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExtendModeString(t *testing.T) {
	tests := []struct {
		mode ExtendMode
		want string
	}{
		{ExtendPad, "Pad"},
		{ExtendRepeat, "Repeat"},
		{ExtendReflect, "Reflect"},
		{ExtendMode(3), "Unknown"},
		{ExtendMode(255), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("ExtendMode(%d).String() = %q, want %q", tt.mode, got, tt.want)
		}
	}
}

func TestCompositeModeString(t *testing.T) {
	tests := []struct {
		mode CompositeMode
		want string
	}{
		{CompositeClear, "Clear"},
		{CompositeSrcOver, "SrcOver"},
		{CompositePlus, "Plus"},
		{CompositeScreen, "Screen"},
		{CompositeMultiply, "Multiply"},
		{CompositeHSLLuminosity, "HSLLuminosity"},
		{CompositeMode(28), "Unknown"},
		{CompositeMode(255), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("CompositeMode(%d).String() = %q, want %q", tt.mode, got, tt.want)
		}
	}

	// Every defined mode has a display name.
	for m := CompositeClear; m <= CompositeHSLLuminosity; m++ {
		if m.String() == "Unknown" {
			t.Errorf("CompositeMode(%d).String() = Unknown, want a name", m)
		}
	}
}

package values

import "testing"

func TestCoerceToInt(t *testing.T) {
	tests := []struct {
		token   string
		want    int64
		wantErr bool
	}{
		{"42", 42, false},
		{"0x2A", 42, false},
		{"0xFF", 255, false},
		{"-5", -5, false},
		{"not-a-number", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			v, err := CoerceTo(tt.token, KindInt)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.token)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			iv, ok := v.(Int)
			if !ok {
				t.Fatalf("expected Int, got %T", v)
			}
			if iv.Val != tt.want {
				t.Errorf("got %d, want %d", iv.Val, tt.want)
			}
		})
	}
}

func TestCoerceToBool(t *testing.T) {
	tests := []struct {
		token string
		want  bool
	}{
		{"true", true},
		{"TRUE", true},
		{"false", false},
	}
	for _, tt := range tests {
		v, err := CoerceTo(tt.token, KindBool)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v.(Bool).Val != tt.want {
			t.Errorf("%q: got %v, want %v", tt.token, v, tt.want)
		}
	}

	if _, err := CoerceTo("maybe", KindBool); err == nil {
		t.Fatal("expected error for non-boolean token")
	}
}

func TestCoerceToSerialOverflow(t *testing.T) {
	if _, err := CoerceTo("0x1FFFFFFFF", KindSerial); err == nil {
		t.Fatal("expected overflow error for serial wider than 32 bits")
	}
}

func TestStrIsLowercased(t *testing.T) {
	s := NewStr("NorthEast")
	if s.String() != "northeast" {
		t.Errorf("got %q, want lowercased", s.String())
	}
}

package util

import "testing"

func TestParsePositiveUint(t *testing.T) {
	tests := []struct {
		in      string
		want    uint
		wantErr bool
	}{
		{in: "1", want: 1},
		{in: "42", want: 42},
		{in: "abc", wantErr: true},
		{in: "", wantErr: true},
		{in: "0", wantErr: true},
		{in: "-1", wantErr: true},
		{in: "1.5", wantErr: true},
		{in: " 7", wantErr: true},
		{in: "999999999999999999999", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParsePositiveUint(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParsePositiveUint(%q) = %d, want error", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePositiveUint(%q) error: %v", tc.in, err)
			}
			if got != tc.want {
				t.Fatalf("ParsePositiveUint(%q) = %d, want %d", tc.in, got, tc.want)
			}
		})
	}
}

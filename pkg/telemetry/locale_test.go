// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package telemetry

import "testing"

func TestNewLocale(t *testing.T) {
	tests := []struct {
		code    string
		wantErr bool
	}{
		{"en", false},
		{"fr", false},
		{"de", false},
		{"EN", true},
		{"e", true},
		{"eng", true},
		{"12", true},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			l, err := NewLocale(tt.code)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.code)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error for %q: %v", tt.code, err)
			}
			if l.String() != tt.code {
				t.Errorf("round trip: got %q, want %q", l.String(), tt.code)
			}
		})
	}
}

func TestDefaultLocale(t *testing.T) {
	if DefaultLocale.String() != "en" {
		t.Errorf("DefaultLocale should be \"en\", got %q", DefaultLocale.String())
	}
}

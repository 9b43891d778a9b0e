package main

import (
	"slices"
	"testing"
)

func Test_parseValues(t *testing.T) {
	type testCase struct {
		name    string
		s       string
		want    []int
		wantErr bool
	}
	tests := []testCase{
		{"test-1", "5,8,1", []int{5, 8, 1}, false},
		{"test-2", " 5, -8 ,", []int{5, -8}, false},
		{"test-3", "*2\r\n:5\r\n$1\r\n8\r\n", []int{5, 8}, false},
		{"test-4", "5,x", nil, true},
		{"test-5", "*2\r\n:5\r\n", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseValues(tt.s)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseValues() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("parseValues() = %v, want %v", got, tt.want)
			}
		})
	}
}

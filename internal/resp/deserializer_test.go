package resp

import (
	"slices"
	"testing"
)

func Test_eatBulkString(t *testing.T) {
	type testCase struct {
		name string
		data []byte
		c    int
		want int
	}
	tests := []testCase{
		{"test-1", []byte("$0\r\n\r\n"), 0, 6},
		{"test-2", []byte("$2\r\n42\r\n"), 0, 8},
		{"test-3", []byte("$2\r\n42\r\nthere"), 0, 8},
		{"test-4", []byte("$0\r\n4\r\nthere"), 0, 0},
		{"test-5", []byte("$2\r\n4242\r\nthere"), 0, 0},
		{"test-6", []byte("$55\r\n42\r\nthere"), 0, 0},
		{"test-7", []byte("$\r\n42\r\n"), 0, 0},
		{"test-8", []byte("2\r\n42\r\n"), 0, 0},
		{"test-9", []byte("$a\r\n42\r\n"), 0, 0},
		{"test-10", []byte("$2\r\n42there"), 0, 0},
		{"test-11", []byte("random$2\r\n42\r\n"), 6, 8},
		{"test-12", []byte("random"), 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := eatBulkString(tt.data, tt.c); got != tt.want {
				t.Errorf("eatBulkString() = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_eatInt(t *testing.T) {
	type testCase struct {
		name string
		data []byte
		want int
	}
	tests := []testCase{
		{"test-1", []byte(":0\r\n"), 4},
		{"test-2", []byte(":-23\r\n:1\r\n"), 6},
		{"test-3", []byte(":\r\n"), 0},
		{"test-4", []byte(":x\r\n"), 0},
		{"test-5", []byte(":12"), 0},
		{"test-6", []byte("$1\r\n1\r\n"), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := eatInt(tt.data, 0); got != tt.want {
				t.Errorf("eatInt() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseIntArray(t *testing.T) {
	type testCase struct {
		name    string
		data    string
		want    []int
		wantErr bool
	}
	tests := []testCase{
		{"integers", "*3\r\n:5\r\n:8\r\n:-1\r\n", []int{5, 8, -1}, false},
		{"bulk-strings", "*2\r\n$1\r\n5\r\n$2\r\n23\r\n", []int{5, 23}, false},
		{"mixed", "*2\r\n:5\r\n$2\r\n10\r\n", []int{5, 10}, false},
		{"empty", "*0\r\n", []int{}, false},
		{"short", "*3\r\n:5\r\n:8\r\n", nil, true},
		{"not-integer", "*1\r\n$3\r\nfoo\r\n", nil, true},
		{"not-array", ":5\r\n", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseIntArray([]byte(tt.data))
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseIntArray() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("ParseIntArray() = %v, want %v", got, tt.want)
			}
		})
	}
}

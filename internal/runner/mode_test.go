package runner

import "testing"

func TestParseMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want Mode
	}{
		{name: "no args", args: nil, want: ModeSequential},
		{name: "async", args: []string{"async"}, want: ModeConcurrent},
		{name: "async with extras", args: []string{"async", "ignored"}, want: ModeConcurrent},
		{name: "uppercase", args: []string{"ASYNC"}, want: ModeSequential},
		{name: "flag form", args: []string{"--async"}, want: ModeSequential},
		{name: "unknown", args: []string{"fast"}, want: ModeSequential},
		{name: "async second", args: []string{"x", "async"}, want: ModeSequential},
		{name: "empty string", args: []string{""}, want: ModeSequential},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ParseMode(tt.args); got != tt.want {
				t.Errorf("ParseMode(%q) = %v, want %v", tt.args, got, tt.want)
			}
		})
	}
}

func TestMode_String(t *testing.T) {
	t.Parallel()

	if got := ModeSequential.String(); got != "sequential" {
		t.Errorf("ModeSequential.String() = %q", got)
	}
	if got := ModeConcurrent.String(); got != "concurrent" {
		t.Errorf("ModeConcurrent.String() = %q", got)
	}
}

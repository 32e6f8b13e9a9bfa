package utils

import "testing"

func TestShortName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"arn:aws:iam::123456789012:policy/ReadOnly", "ReadOnly"},
		{"arn:aws:iam::aws:policy/job-function/ViewOnlyAccess", "ViewOnlyAccess"},
		{"plain-string", "plain-string"},
		{"single/segment", "segment"},
		{"", ""},
	}

	for _, tt := range tests {
		got := ShortName(tt.input)
		if got != tt.want {
			t.Errorf("ShortName(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestIsAWSManaged(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"arn:aws:iam::aws:policy/AdministratorAccess", true},
		{"arn:aws:iam::aws:policy/job-function/ViewOnlyAccess", true},
		{"arn:aws:iam::123456789012:policy/ReadOnly", false},
		{"", false},
	}

	for _, tt := range tests {
		got := IsAWSManaged(tt.input)
		if got != tt.want {
			t.Errorf("IsAWSManaged(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

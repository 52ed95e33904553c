package platform

import (
	"errors"
	"slices"
	"testing"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		goos    string
		want    Platform
		wantErr error
	}{
		{"linux", Linux, nil},
		{"windows", Windows, nil},
		{"darwin", "", ErrUnsupported},
		{"freebsd", "", ErrUnsupported},
		{"Linux", "", ErrUnsupported},
		{"", "", ErrUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			got, err := Detect(tt.goos)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Detect(%q) error = %v, want %v", tt.goos, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Detect(%q) = %q, want %q", tt.goos, got, tt.want)
			}
		})
	}
}

func TestList(t *testing.T) {
	want := []string{"win32", "linux"}
	if got := List(); !slices.Equal(got, want) {
		t.Errorf("List() = %v, want %v", got, want)
	}
}

func TestExeSuffix(t *testing.T) {
	if got := Windows.ExeSuffix(); got != ".exe" {
		t.Errorf("Windows.ExeSuffix() = %q, want .exe", got)
	}
	if got := Linux.ExeSuffix(); got != "" {
		t.Errorf("Linux.ExeSuffix() = %q, want empty", got)
	}
}

func TestSoftwareRendering(t *testing.T) {
	if !Linux.SoftwareRendering() {
		t.Error("Linux.SoftwareRendering() = false, want true")
	}
	if Windows.SoftwareRendering() {
		t.Error("Windows.SoftwareRendering() = true, want false")
	}
}

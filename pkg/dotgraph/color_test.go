package dotgraph

import (
	"regexp"
	"testing"

	"github.com/matzehuels/forestmerge/pkg/errors"
)

var colorRe = regexp.MustCompile(`^#[0-9a-f]{1,6}$`)

func TestRegionToColor(t *testing.T) {
	tests := []struct {
		region string
		want   string
	}{
		{"ff0000", "#ff0000"},
		{"FF0000", "#ff0000"},
		{"0x00ff00", "#ff00"},
		{"ff", "#ff"},
		{"0", "#0"},
		{"ffffffff", "#ffffff"},
		{"1000000ff", "#ff"},
		{"deadbeefcafe1234", "#fe1234"},
		{"123456789abcdef0123456789abcdef", "#abcdef"},
		{"-1", "#ffffff"},
		{" abc ", "#abc"},
		{"ff_00", "#ff00"},
		{"f_f_0_0_0_0", "#ff0000"},
		{"0x_ff", "#ff"},
		{"0xff_ff", "#ffff"},
	}

	for _, tt := range tests {
		t.Run(tt.region, func(t *testing.T) {
			got, err := RegionToColor(tt.region)
			if err != nil {
				t.Fatalf("RegionToColor(%q) error = %v", tt.region, err)
			}
			if got != tt.want {
				t.Errorf("RegionToColor(%q) = %q, want %q", tt.region, got, tt.want)
			}
			if !colorRe.MatchString(got) {
				t.Errorf("RegionToColor(%q) = %q, not a short hex color", tt.region, got)
			}
		})
	}
}

func TestRegionToColorStable(t *testing.T) {
	a, _ := RegionToColor("a1b2c3d4")
	b, _ := RegionToColor("a1b2c3d4")
	if a != b {
		t.Errorf("RegionToColor not deterministic: %q != %q", a, b)
	}
}

func TestRegionToColorInvalid(t *testing.T) {
	for _, region := range []string{"", "xyz", "0x", "12g4", "--1", "+-1", "_ff", "ff_", "ff__00", "0x__ff", "_", "0x_"} {
		t.Run(region, func(t *testing.T) {
			_, err := RegionToColor(region)
			if !errors.Is(err, errors.ErrCodeInvalidRegion) {
				t.Errorf("RegionToColor(%q) error = %v, want %v", region, err, errors.ErrCodeInvalidRegion)
			}
		})
	}
}

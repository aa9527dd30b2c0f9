package pairing

import "testing"

func TestDeriveKey(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"IMG_1.JPG", "IMG_1"},
		{"IMG_1-edited.JPG", "IMG_1"},
		{"IMG_1.JPG.json", "IMG_1"},
		{"IMG_1.json", "IMG_1"},
		{"IMG_1.JPG.JSON", "IMG_1"},
		{"holiday.heic", "holiday"},
		{"holiday-edited.heic", "holiday"},
		{"holiday.heic.json", "holiday"},
		{"clip.mp4", "clip"},
		{"clip.mp4.json", "clip"},
		{"no_extension", "no_extension"},
		{"dotted.name.png", "dotted.name"},
		{"dotted.name.png.json", "dotted.name"},
	}

	for _, tc := range cases {
		if got := DeriveKey(tc.name); got != tc.want {
			t.Errorf("DeriveKey(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestDeriveKeyCollapsesVariants(t *testing.T) {
	original := DeriveKey("IMG_1.JPG")
	edited := DeriveKey("IMG_1-edited.JPG")
	meta := DeriveKey("IMG_1.JPG.json")

	if original != edited || original != meta {
		t.Fatalf("variants did not collapse: %q, %q, %q", original, edited, meta)
	}
}

package variant

import "testing"

func TestDeriveKeys_ExtensionPreserved(t *testing.T) {
	keys := DeriveKeys("gallery/street/img.jpg")

	if keys.Thumbnail != "gallery/street/img-thumb.jpg" {
		t.Errorf("thumbnail: got %q", keys.Thumbnail)
	}
	if keys.Medium != "gallery/street/img-medium.jpg" {
		t.Errorf("medium: got %q", keys.Medium)
	}
	if keys.Large != "gallery/street/img.jpg" {
		t.Errorf("large: got %q", keys.Large)
	}
}

func TestDeriveKeys_NoExtensionFallback(t *testing.T) {
	keys := DeriveKeys("gallery/street/imgnoext")

	if keys.Thumbnail != "gallery/street/imgnoext-thumb" {
		t.Errorf("thumbnail: got %q", keys.Thumbnail)
	}
	if keys.Medium != "gallery/street/imgnoext-medium" {
		t.Errorf("medium: got %q", keys.Medium)
	}
	if keys.Large != "gallery/street/imgnoext" {
		t.Errorf("large: got %q", keys.Large)
	}
}

func TestDeriveKeys_Deterministic(t *testing.T) {
	first := DeriveKeys("gallery/nature/forest.jpeg")
	second := DeriveKeys("gallery/nature/forest.jpeg")

	if first != second {
		t.Errorf("expected identical results, got %+v and %+v", first, second)
	}
}

func TestDeriveKeys_MultipleDots(t *testing.T) {
	keys := DeriveKeys("gallery/street/img.v2.jpg")

	if keys.Thumbnail != "gallery/street/img.v2-thumb.jpg" {
		t.Errorf("thumbnail: got %q", keys.Thumbnail)
	}
	if keys.Medium != "gallery/street/img.v2-medium.jpg" {
		t.Errorf("medium: got %q", keys.Medium)
	}
}

func TestKeys_All(t *testing.T) {
	keys := DeriveKeys("gallery/street/img.jpg")
	all := keys.All()

	if len(all) != 3 {
		t.Fatalf("expected 3 keys, got %d", len(all))
	}
	want := []string{"gallery/street/img-thumb.jpg", "gallery/street/img-medium.jpg", "gallery/street/img.jpg"}
	for i, k := range want {
		if all[i] != k {
			t.Errorf("All()[%d]: got %q, want %q", i, all[i], k)
		}
	}
}

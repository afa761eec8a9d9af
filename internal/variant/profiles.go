package variant

// FitMode controls the resize semantics of a profile.
type FitMode string

const (
	// FitCover scales up the smaller dimension and crops the overflow on the
	// other axis, centered, so the output exactly fills Width×Height.
	FitCover FitMode = "cover"
	// FitInside scales to fit within Width preserving aspect ratio, and never
	// enlarges a source smaller than the target.
	FitInside FitMode = "inside"
)

// SizeProfile is a named target-dimensions + quality + fit configuration.
type SizeProfile struct {
	Name    string
	Width   int
	Height  int // 0 means unconstrained
	Quality int
	Fit     FitMode
}

// The catalog below is the single source of truth for every consumer:
// the optimise pipeline, the URL resolver, the deletion logic and the
// backlog command all import these values. Any drift between consumers
// breaks the key-derivation contract.
var (
	Thumbnail = SizeProfile{Name: "thumbnail", Width: 400, Height: 400, Quality: 75, Fit: FitCover}
	Medium    = SizeProfile{Name: "medium", Width: 1200, Quality: 80, Fit: FitInside}
	Large     = SizeProfile{Name: "large", Width: 1920, Quality: 85, Fit: FitInside}
	Full      = SizeProfile{Name: "full", Width: 2400, Quality: 85, Fit: FitInside}
)

// Profiles returns the full catalog in display order.
func Profiles() []SizeProfile {
	return []SizeProfile{Thumbnail, Medium, Large, Full}
}

// ProfileByName looks a profile up by its catalog name.
func ProfileByName(name string) (SizeProfile, bool) {
	for _, p := range Profiles() {
		if p.Name == name {
			return p, true
		}
	}
	return SizeProfile{}, false
}

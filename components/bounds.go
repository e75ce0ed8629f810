package components

import "github.com/yohamta/donburi"

// BoundsData is the playable area of one world (singleton) and the spot a
// power-up falls back to when no free one is found.
type BoundsData struct {
	Left, Top, Right, Bottom float64
	FallbackX, FallbackY     float64
}

// Width returns the arena width
func (b BoundsData) Width() float64 { return b.Right - b.Left }

// Height returns the arena height
func (b BoundsData) Height() float64 { return b.Bottom - b.Top }

var Bounds = donburi.NewComponentType[BoundsData]()

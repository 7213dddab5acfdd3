package tags

import "github.com/yohamta/donburi"

var (
	// RadialPlayer marks a local player with a radial menu session.
	RadialPlayer = donburi.NewTag().SetName("RadialPlayer")
)

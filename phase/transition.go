package phase

// TransitionInfo describes one frame's position relative to the blend zones.
// It is derived per frame and never persisted.
type TransitionInfo struct {
	InTransition bool
	// Blend is the position inside the zone, in [0,1).
	Blend   float64
	Current Phase
	Next    Phase
	// HasNext is false outside zones; Next is meaningless then.
	HasNext bool
}

// Detect checks whether progress falls inside a blend zone of the given
// width. Zones sit immediately before each internal boundary (Ascension,
// Radiance and Descent starts) as [boundary-width, boundary); there is no
// zone before Awakening's start or after Descent's end. The three zones are
// scanned in order and the first match wins; zones must not overlap, which
// holds whenever width is smaller than every phase span (validated at config
// construction, not here).
func (t Table) Detect(progress, width float64) TransitionInfo {
	if width > 0 {
		for _, next := range [3]Phase{Ascension, Radiance, Descent} {
			boundary := t.Start(next)
			zoneStart := boundary - width
			if progress >= zoneStart && progress < boundary {
				return TransitionInfo{
					InTransition: true,
					Blend:        (progress - zoneStart) / width,
					Current:      next - 1,
					Next:         next,
					HasNext:      true,
				}
			}
		}
	}
	current, _ := t.Classify(progress)
	return TransitionInfo{Current: current}
}

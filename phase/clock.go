package phase

// Progress converts a frame index into loop-safe normalized progress.
//
// The divisor is totalFrames-1 so frame 0 maps to exactly 0.0 and the last
// frame to exactly 1.0. The state at virtual progress 1.0 equals frame 0 of
// the next cycle and is never rendered twice, which is what closes the loop
// without a repeated or jumping frame. Changing the divisor breaks the seam.
func Progress(frameIndex, totalFrames int) float64 {
	if totalFrames <= 1 {
		return 0
	}
	p := float64(frameIndex) / float64(totalFrames-1)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

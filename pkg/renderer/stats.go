package renderer

import "time"

// RenderStats contains statistics about one render call
type RenderStats struct {
	TotalPixels      int           // Total number of pixels rendered
	TotalSamples     int           // Total number of camera rays traced
	NonFiniteSamples int           // Samples discarded as black because they were NaN or Inf
	Workers          int           // Number of column ranges rendered in parallel
	Elapsed          time.Duration // Wall time from start to join
}

// add merges the counters of one worker into s
func (s *RenderStats) add(other RenderStats) {
	s.TotalPixels += other.TotalPixels
	s.TotalSamples += other.TotalSamples
	s.NonFiniteSamples += other.NonFiniteSamples
}

// AverageSamples returns the mean number of samples per pixel
func (s RenderStats) AverageSamples() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.TotalSamples) / float64(s.TotalPixels)
}

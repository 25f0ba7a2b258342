// Package diag collects frame-rate statistics for the diagnostics overlay.
package diag

import (
	"fmt"
	"math"
)

// FrameStats accumulates instantaneous frame-rate samples.
// The zero value is ready to use.
type FrameStats struct {
	current float64
	count   int
	sum     float64
	sumSq   float64
	min     float64 // smallest positive sample; 0 until one arrives
	max     float64
	avg     float64
}

// Add records a sample. Non-finite samples only update the current
// reading. Zero and negative samples count toward every statistic except
// the minimum.
func (f *FrameStats) Add(sample float64) {
	f.current = sample
	if math.IsNaN(sample) || math.IsInf(sample, 0) {
		return
	}

	f.count++
	f.sum += sample
	f.sumSq += sample * sample
	if f.count == 1 || sample > f.max {
		f.max = sample
	}
	if sample > 0 && (f.min == 0 || sample < f.min) {
		f.min = sample
	}
	f.avg += (sample - f.avg) / float64(f.count)
}

// Reset discards every sample.
func (f *FrameStats) Reset() {
	*f = FrameStats{}
}

// Count returns the number of finite samples recorded.
func (f *FrameStats) Count() int { return f.count }

// Current returns the last sample, rounded. ok is false when that sample
// was not finite or none has been recorded.
func (f *FrameStats) Current() (value float64, ok bool) {
	if f.count == 0 || math.IsNaN(f.current) || math.IsInf(f.current, 0) {
		return 0, false
	}
	return round2(f.current), true
}

// Min returns the smallest positive sample.
func (f *FrameStats) Min() float64 { return round2(f.min) }

// Max returns the largest sample.
func (f *FrameStats) Max() float64 { return round2(f.max) }

// Avg returns the running mean.
func (f *FrameStats) Avg() float64 { return round2(f.avg) }

// Variance returns the population variance of the samples.
func (f *FrameStats) Variance() float64 {
	if f.count == 0 {
		return 0
	}
	n := float64(f.count)
	v := (f.sumSq - f.sum*f.sum/n) / n
	if v < 0 {
		v = 0 // rounding noise on constant input
	}
	return round2(v)
}

// Lines renders the overlay text, one statistic per line.
func (f *FrameStats) Lines() []string {
	cur := "--"
	if v, ok := f.Current(); ok {
		cur = fmt.Sprintf("%.2f", v)
	}
	return []string{
		"fps " + cur,
		fmt.Sprintf("min %.2f", f.Min()),
		fmt.Sprintf("max %.2f", f.Max()),
		fmt.Sprintf("avg %.2f", f.Avg()),
		fmt.Sprintf("var %.2f", f.Variance()),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

package renderer

import "sync"

// Progress counts completed rows across all workers of a render.
// Every worker increments it once per row, so Total is height * workers.
type Progress struct {
	mu       sync.Mutex
	current  int
	total    int
	finished bool

	// OnUpdate, when set, is called with the new count after every increment.
	// It runs with the lock held and must not call back into Progress.
	OnUpdate func(current, total int)
}

// NewProgress creates a progress counter bounded by total
func NewProgress(total int) *Progress {
	return &Progress{total: total}
}

// Increment advances the counter by one row, never past Total
func (p *Progress) Increment() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.current < p.total {
		p.current++
	}
	if p.OnUpdate != nil {
		p.OnUpdate(p.current, p.total)
	}
}

// Current returns the number of completed rows
func (p *Progress) Current() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

// Total returns the maximum value of the counter
func (p *Progress) Total() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.total
}

// Finish marks the render as complete
func (p *Progress) Finish() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.finished = true
}

// reset clears the counter for a new render
func (p *Progress) reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.current = 0
	p.finished = false
}

// Finished reports whether Finish has been called
func (p *Progress) Finished() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.finished
}

package visual

import (
	"image"
	"math/rand"
	"sync"
	"time"

	"AuraFM/model"
)

// blendRate is the fraction of the remaining current→target gap covered per
// tick. Exponential chase: the transition never overshoots and never jumps.
const blendRate = 0.03

// FrameFunc receives the rendered frame after every tick. The image is reused
// across ticks — encode or copy before returning.
type FrameFunc func(*image.RGBA)

// Visualizer owns the animation state machine. It is uninitialized until the
// first SetTrack, which seeds the features, spawns particles and starts the
// loop; later SetTrack calls only retarget and respawn. Stop tears the loop
// down; a new SetTrack starts it again.
type Visualizer struct {
	mu       sync.Mutex
	surface  *Surface
	rng      Rand
	interval time.Duration
	onFrame  FrameFunc

	current   Features
	target    Features
	particles []Particle
	elapsed   float64
	seeded    bool

	running bool
	stop    chan struct{}
	done    chan struct{}
}

// Option configures a Visualizer at construction time.
type Option func(*Visualizer)

// WithRand injects the randomness source; tests pass a deterministic one.
func WithRand(rng Rand) Option {
	return func(v *Visualizer) { v.rng = rng }
}

// WithFrameRate sets the loop cadence in frames per second.
func WithFrameRate(fps int) Option {
	return func(v *Visualizer) {
		if fps > 0 {
			v.interval = time.Second / time.Duration(fps)
		}
	}
}

// WithFrameFunc sets the per-tick frame sink.
func WithFrameFunc(fn FrameFunc) Option {
	return func(v *Visualizer) { v.onFrame = fn }
}

// New builds a stopped visualizer bound to a fresh surface.
func New(width, height int, opts ...Option) *Visualizer {
	v := &Visualizer{
		surface:  NewSurface(width, height),
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		interval: time.Second / 30,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// SetTrack makes t the animation target. The first call seeds current equal to
// target; later calls leave current wherever it is so it cross-fades instead
// of jump-cutting. Particles are regenerated wholesale against the new target
// either way.
func (v *Visualizer) SetTrack(t *model.Track) {
	v.mu.Lock()
	f := FromTrack(t)
	v.target = f
	if !v.seeded {
		v.current = f
		v.seeded = true
	}
	w, h := v.surface.Size()
	v.particles = spawnParticles(v.rng, float64(w), float64(h), f)

	start := !v.running
	var stop, done chan struct{}
	if start {
		v.running = true
		v.stop = make(chan struct{})
		v.done = make(chan struct{})
		stop, done = v.stop, v.done
	}
	v.mu.Unlock()

	if start {
		go v.loop(stop, done)
	}
}

// Stop cancels the loop and waits for the in-flight tick to finish, so no
// frame is emitted after it returns. Idempotent: stopping a stopped
// visualizer is a no-op.
func (v *Visualizer) Stop() {
	v.mu.Lock()
	if !v.running {
		v.mu.Unlock()
		return
	}
	v.running = false
	close(v.stop)
	done := v.done
	v.mu.Unlock()
	<-done
}

// Resize re-allocates the surface after an external layout change. The next
// tick draws at the new dimensions.
func (v *Visualizer) Resize(width, height int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.surface = NewSurface(width, height)
}

// Running reports whether the loop is active.
func (v *Visualizer) Running() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.running
}

// CurrentFeatures returns the animated feature record.
func (v *Visualizer) CurrentFeatures() Features {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.current
}

// TargetFeatures returns the most recently requested feature record.
func (v *Visualizer) TargetFeatures() Features {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.target
}

// ParticleCount returns the size of the live population.
func (v *Visualizer) ParticleCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.particles)
}

// Snapshot returns a copy of the latest frame, safe to keep after the next
// tick overwrites the surface.
func (v *Visualizer) Snapshot() *image.RGBA {
	v.mu.Lock()
	defer v.mu.Unlock()
	src := v.surface.Image()
	dst := image.NewRGBA(src.Bounds())
	copy(dst.Pix, src.Pix)
	return dst
}

// Tick advances the simulation by dt seconds and redraws. It is the loop
// body, exported so a deterministic driver can step the animation manually.
func (v *Visualizer) Tick(dt float64) *image.RGBA {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.elapsed += dt
	v.current.blendToward(v.target, blendRate)
	w, h := v.surface.Size()
	for i := range v.particles {
		v.particles[i].step(v.rng, v.current, float64(w), float64(h))
	}
	renderFrame(v.surface, v.current, v.particles, v.elapsed)
	return v.surface.Image()
}

// loop runs one tick per interval until stop closes. Ticks never overlap:
// this goroutine is the only caller once the loop owns the cadence.
func (v *Visualizer) loop(stop, done chan struct{}) {
	defer close(done)
	ticker := time.NewTicker(v.interval)
	defer ticker.Stop()
	dt := v.interval.Seconds()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			frame := v.Tick(dt)
			if v.onFrame != nil {
				v.onFrame(frame)
			}
		}
	}
}

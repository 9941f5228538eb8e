package visual

import "math"

// Rand is the randomness source behind particle spawning and jitter. math/rand
// satisfies it in production; tests inject a deterministic sequence.
type Rand interface {
	Float64() float64
}

// Particle motion tuning.
const (
	particleBaseCount  = 80
	particleDanceCount = 180 // extra population at full danceability
	particleJitter     = 0.15
	particleMaxSpeed   = 4.0
)

// Particle is one simulated visual entity. Shape class and life are fixed at
// spawn; only position, velocity and phase evolve afterwards.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Size    float64
	Phase   float64
	Life    float64 // [0,1], fixed color offset for this particle
	Organic bool
}

// particleCount derives the population size from danceability.
func particleCount(f Features) int {
	return int(math.Floor(particleBaseCount + f.Danceability*particleDanceCount))
}

// spawnParticles regenerates the whole population against a target feature
// set. Organic membership is rolled per particle against acousticness.
func spawnParticles(rng Rand, w, h float64, target Features) []Particle {
	particles := make([]Particle, particleCount(target))
	base := 0.4 + target.Energy*1.8
	for i := range particles {
		angle := rng.Float64() * 2 * math.Pi
		speed := base * (0.3 + rng.Float64()*0.7)
		particles[i] = Particle{
			X:       rng.Float64() * w,
			Y:       rng.Float64() * h,
			VX:      math.Cos(angle) * speed,
			VY:      math.Sin(angle) * speed,
			Size:    1.5 + rng.Float64()*4.5,
			Phase:   rng.Float64() * 2 * math.Pi,
			Life:    rng.Float64(),
			Organic: rng.Float64() < target.Acousticness,
		}
	}
	return particles
}

// step advances one particle by one tick: small velocity jitter, motion scaled
// by the current energy, phase advance scaled by tempo, and a toroidal wrap at
// the surface edges.
func (p *Particle) step(rng Rand, cur Features, w, h float64) {
	p.VX += (rng.Float64() - 0.5) * particleJitter
	p.VY += (rng.Float64() - 0.5) * particleJitter
	if speed := math.Hypot(p.VX, p.VY); speed > particleMaxSpeed {
		scale := particleMaxSpeed / speed
		p.VX *= scale
		p.VY *= scale
	}

	mobility := 0.4 + cur.Energy*1.6
	p.X += p.VX * mobility
	p.Y += p.VY * mobility
	p.Phase += 0.02 + cur.TempoNorm*0.06

	margin := p.Size
	switch {
	case p.X < -margin:
		p.X += w + 2*margin
	case p.X > w+margin:
		p.X -= w + 2*margin
	}
	switch {
	case p.Y < -margin:
		p.Y += h + 2*margin
	case p.Y > h+margin:
		p.Y -= h + 2*margin
	}
}

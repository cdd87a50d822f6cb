package worldgen

import (
	"math"

	"github.com/ojrac/opensimplex-go"
)

// NoiseField samples a smooth 2D field with values in [0, 1)
type NoiseField interface {
	Eval(x, y float64) float64
}

// ValueNoise is hash based value noise with smoothstep bilinear
// interpolation between lattice points. Seed shifts the lattice so a seed of
// 0 reproduces the unshifted field.
type ValueNoise struct {
	ox, oy float64
}

// NewValueNoise returns a value noise field for seed
func NewValueNoise(seed int64) *ValueNoise {
	s := seed % 100003
	return &ValueNoise{
		ox: float64(s) * 17.0,
		oy: float64(s) * 31.0,
	}
}

func hash2(x, y float64) float64 {
	n := math.Sin(x*12.9898+y*78.233) * 43758.5453123
	return n - math.Floor(n)
}

func smoothstep(a, b, t float64) float64 {
	return a + (b-a)*t*t*(3-2*t)
}

// Eval implements NoiseField
func (v *ValueNoise) Eval(x, y float64) float64 {
	x += v.ox
	y += v.oy
	ix := math.Floor(x)
	iy := math.Floor(y)
	fx := x - ix
	fy := y - iy

	a := hash2(ix, iy)
	b := hash2(ix+1, iy)
	c := hash2(ix, iy+1)
	d := hash2(ix+1, iy+1)

	return smoothstep(smoothstep(a, b, fx), smoothstep(c, d, fx), fy)
}

// SimplexNoise layers octaves of opensimplex normalized noise
type SimplexNoise struct {
	noise       opensimplex.Noise
	octaves     int
	persistence float64
}

// NewSimplexNoise returns a three octave simplex field for seed
func NewSimplexNoise(seed int64) *SimplexNoise {
	return &SimplexNoise{
		noise:       opensimplex.NewNormalized(seed),
		octaves:     3,
		persistence: 0.5,
	}
}

// Eval implements NoiseField
func (s *SimplexNoise) Eval(x, y float64) float64 {
	total, amplitude, maxVal, frequency := 0.0, 1.0, 0.0, 1.0
	for i := 0; i < s.octaves; i++ {
		total += s.noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= s.persistence
		frequency *= 2
	}
	v := total / maxVal
	if v >= 1 {
		return math.Nextafter(1, 0)
	}
	if v < 0 {
		return 0
	}
	return v
}

// NoiseKind names a NoiseField implementation
type NoiseKind string

// Noise kinds
const (
	NoiseValue   NoiseKind = "value"
	NoiseSimplex NoiseKind = "simplex"
)

// NewNoise builds the field for kind, defaulting to value noise
func NewNoise(kind NoiseKind, seed int64) NoiseField {
	if kind == NoiseSimplex {
		return NewSimplexNoise(seed)
	}
	return NewValueNoise(seed)
}

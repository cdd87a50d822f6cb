package worldgen

//go:generate mockgen -destination=mock/mock_generator.go -package=worldgenmock github.com/KirkDiggler/rpg-tactics/internal/worldgen Generator

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/rpg-tactics/internal/entities"
	"github.com/KirkDiggler/rpg-tactics/internal/errors"
	"github.com/KirkDiggler/rpg-tactics/internal/pkg/logger"
	"github.com/KirkDiggler/rpg-tactics/internal/pkg/random"
)

// Map defaults
const (
	DefaultWidth  = 20
	DefaultHeight = 15

	noiseScale     = 0.12
	moistureOffset = 150.0
	tempOffset     = 300.0
)

// SpawnHex is where a new party starts. It is always safe ground.
var SpawnHex = entities.Hex{Q: 5, R: 5}

// Generator builds the two aligned overworld maps
type Generator interface {
	Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error)
}

// GenerateInput is the request for Generate. Zero sizes use the defaults and
// a zero EncounterRateMod means 1.
type GenerateInput struct {
	Width            int
	Height           int
	EncounterRateMod float64
}

// GenerateOutput holds both worlds addressed by the same (q, r)
type GenerateOutput struct {
	Normal *entities.HexMap
	Shadow *entities.HexMap
}

// Map returns the world for d
func (o *GenerateOutput) Map(d entities.Dimension) *entities.HexMap {
	if d == entities.DimensionShadow {
		return o.Shadow
	}
	return o.Normal
}

// Config configures the generator
type Config struct {
	// Noise shapes the terrain. Same noise, same geography.
	Noise NoiseField
	// Random drives points of interest, weather, portals and encounters
	Random random.Source
}

// Validate checks the config
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Noise == nil {
		vb.RequiredField("Noise")
	}
	if c.Random == nil {
		vb.RequiredField("Random")
	}
	return vb.Build()
}

type generator struct {
	noise NoiseField
	rng   random.Source
	log   *logrus.Entry
}

// NewGenerator creates a Generator
func NewGenerator(cfg *Config) (Generator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &generator{
		noise: cfg.Noise,
		rng:   cfg.Random,
		log:   logger.Component("worldgen"),
	}, nil
}

// Sample returns elevation, moisture and temperature at (q, r). Moisture and
// temperature read the same field at shifted coordinates.
func Sample(n NoiseField, q, r int) (e, m, t float64) {
	fq, fr := float64(q), float64(r)
	e = n.Eval(fq*noiseScale, fr*noiseScale)
	m = n.Eval((fq+moistureOffset)*noiseScale, (fr+moistureOffset)*noiseScale)
	t = n.Eval((fq+tempOffset)*noiseScale, (fr+tempOffset)*noiseScale)
	return e, m, t
}

func (g *generator) Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	width, height := input.Width, input.Height
	if width == 0 {
		width = DefaultWidth
	}
	if height == 0 {
		height = DefaultHeight
	}
	vb := errors.NewValidationBuilder()
	errors.ValidatePositive("Width", width, vb)
	errors.ValidatePositive("Height", height, vb)
	if input.EncounterRateMod < 0 {
		vb.Field("EncounterRateMod", "must not be negative")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}
	rateMod := input.EncounterRateMod
	if rateMod == 0 {
		rateMod = 1
	}

	normal := &entities.HexMap{Width: width, Height: height, Cells: make([]entities.HexCell, 0, width*height)}
	shadow := &entities.HexMap{Width: width, Height: height, Cells: make([]entities.HexCell, 0, width*height)}
	portals := 0

	for r := 0; r < height; r++ {
		if err := ctx.Err(); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeCanceled, "generation canceled")
		}
		for q := 0; q < width; q++ {
			e, m, t := Sample(g.noise, q, r)
			c := ApplyPOI(Classify(e, m, t), g.rng.Float64())

			if q == SpawnHex.Q && r == SpawnHex.R {
				c = Classification{Normal: entities.TerrainGrass, Shadow: entities.TerrainCaveFloor}
			}

			weather := NormalWeather(c.Normal, m, t, g.rng.Float64())
			hasPortal := random.Chance(g.rng, 1-PortalRate) && PortalAllowed(c)
			normalEncounter := random.Chance(g.rng, 1-NormalEncounterRate*rateMod) && NormalEncounterAllowed(c.Normal)
			shadowEncounter := random.Chance(g.rng, 1-ShadowEncounterRate*rateMod) && ShadowEncounterAllowed(c.Shadow)
			if hasPortal {
				portals++
			}

			normal.Cells = append(normal.Cells, entities.HexCell{
				Q:            q,
				R:            r,
				Terrain:      c.Normal,
				Weather:      weather,
				HasPortal:    hasPortal,
				HasEncounter: normalEncounter,
			})
			shadow.Cells = append(shadow.Cells, entities.HexCell{
				Q:            q,
				R:            r,
				Terrain:      c.Shadow,
				Weather:      ShadowWeather(c.Shadow),
				HasPortal:    hasPortal,
				HasEncounter: shadowEncounter,
			})
		}
	}

	g.log.WithFields(logrus.Fields{
		"width":   width,
		"height":  height,
		"portals": portals,
	}).Debug("generated dual world")

	return &GenerateOutput{Normal: normal, Shadow: shadow}, nil
}

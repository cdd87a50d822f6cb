// Package external wraps the dnd5e SRD API used to enrich the spell catalog
package external

//go:generate mockgen -destination=mock/mock_client.go -package=externalmock github.com/KirkDiggler/rpg-tactics/internal/clients/external Client

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	"github.com/fadedpez/dnd5e-api/entities"

	"github.com/KirkDiggler/rpg-tactics/internal/errors"
)

// DefaultBaseURL is the public SRD endpoint
const DefaultBaseURL = "https://www.dnd5eapi.co/api/2014/"

// SpellData is the SRD view of a spell
type SpellData struct {
	Key         string
	Name        string
	Level       int
	School      string
	CastingTime string
	Range       string
	Duration    string
	Description string
}

// Client defines the interface for external API interactions
type Client interface {
	// GetSpellData fetches spell information by SRD key (e.g. "fire-bolt")
	GetSpellData(ctx context.Context, key string) (*SpellData, error)
}

type client struct {
	dnd5eClient dnd5e.Interface
}

// Config contains configuration options for the external client.
type Config struct {
	// BaseURL for the D&D 5e API (optional, defaults to DefaultBaseURL)
	BaseURL string
	// HTTPTimeout for API requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// CacheTTL for the cached client (optional, defaults to 24 hours)
	CacheTTL time.Duration
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = 24 * time.Hour
	}
	return nil
}

// New creates a new external client with the given configuration.
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	baseClient, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client:  httpClient,
		BaseURL: cfg.BaseURL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create D&D 5e API client")
	}

	return &client{
		dnd5eClient: dnd5e.NewCachedClient(baseClient, cfg.CacheTTL),
	}, nil
}

func (c *client) GetSpellData(_ context.Context, key string) (*SpellData, error) {
	if key == "" {
		return nil, errors.InvalidArgument("spell key is required")
	}

	spell, err := c.dnd5eClient.GetSpell(key)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, fmt.Sprintf("failed to get spell %s", key))
	}
	if spell == nil {
		return nil, errors.NotFoundf("spell %s not found", key)
	}

	data := &SpellData{
		Key:         spell.Key,
		Name:        spell.Name,
		Level:       spell.SpellLevel,
		CastingTime: spell.CastingTime,
		Range:       spell.Range,
		Duration:    spell.Duration,
		Description: buildSpellDescription(spell),
	}
	if spell.SpellSchool != nil {
		data.School = spell.SpellSchool.Name
	}
	return data, nil
}

// buildSpellDescription summarizes the fields the SRD exposes
func buildSpellDescription(spell *entities.Spell) string {
	levelStr := "Cantrip"
	if spell.SpellLevel > 0 {
		levelStr = fmt.Sprintf("Level %d", spell.SpellLevel)
	}
	schoolName := "Unknown School"
	if spell.SpellSchool != nil {
		schoolName = spell.SpellSchool.Name
	}

	parts := []string{fmt.Sprintf("%s %s spell", levelStr, schoolName)}
	if spell.CastingTime != "" {
		parts = append(parts, fmt.Sprintf("Casting Time: %s", spell.CastingTime))
	}
	if spell.Range != "" {
		parts = append(parts, fmt.Sprintf("Range: %s", spell.Range))
	}
	if spell.Duration != "" {
		parts = append(parts, fmt.Sprintf("Duration: %s", spell.Duration))
	}

	var properties []string
	if spell.Ritual {
		properties = append(properties, "Ritual")
	}
	if spell.Concentration {
		properties = append(properties, "Concentration")
	}
	if len(properties) > 0 {
		parts = append(parts, fmt.Sprintf("Properties: %s", strings.Join(properties, ", ")))
	}

	if spell.SpellDamage != nil && spell.SpellDamage.SpellDamageType != nil {
		parts = append(parts, fmt.Sprintf("Damage Type: %s", spell.SpellDamage.SpellDamageType.Name))
	}

	return strings.Join(parts, ". ")
}

// Package catalog holds the static game content the setup engine reads:
// expansions, setup cards, story cards, the step-content registry and the
// house-rule sections of the optional-rules step.
package catalog

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/nstehr/shiny/model"
)

//go:embed data/*.yaml
var embedded embed.FS

// ErrSetupCardNotFound is returned when a setup card id is not in the catalog.
var ErrSetupCardNotFound = errors.New("setup card not found")

// Catalog is immutable once loaded and safe for concurrent readers.
type Catalog struct {
	Expansions []model.Expansion
	SetupCards []model.SetupCard
	Stories    []model.StoryCard
	Steps      []model.StepContent
	Sections   []model.OptionSection

	expansionIdx map[string]int
	cardIdx      map[string]int
	stepIdx      map[string]int
}

type expansionsFile struct {
	Expansions []model.Expansion `yaml:"expansions"`
}

type setupCardsFile struct {
	SetupCards []model.SetupCard `yaml:"setupCards"`
}

type storiesFile struct {
	Stories []model.StoryCard `yaml:"stories"`
}

type stepsFile struct {
	Steps []model.StepContent `yaml:"steps"`
}

type sectionsFile struct {
	Sections []model.OptionSection `yaml:"sections"`
}

// Load reads every catalog table from fsys, which must contain a data/
// directory laid out like the embedded one.
func Load(fsys fs.FS) (*Catalog, error) {
	var (
		ex   expansionsFile
		sc   setupCardsFile
		st   storiesFile
		sp   stepsFile
		osec sectionsFile
	)
	files := []struct {
		name string
		dst  any
	}{
		{"data/expansions.yaml", &ex},
		{"data/setup_cards.yaml", &sc},
		{"data/stories.yaml", &st},
		{"data/steps.yaml", &sp},
		{"data/option_sections.yaml", &osec},
	}
	for _, f := range files {
		if err := decodeFile(fsys, f.name, f.dst); err != nil {
			return nil, err
		}
	}

	c := &Catalog{
		Expansions: ex.Expansions,
		SetupCards: sc.SetupCards,
		Stories:    st.Stories,
		Steps:      sp.Steps,
		Sections:   osec.Sections,
	}
	c.stamp()
	c.index()
	return c, nil
}

func decodeFile(fsys fs.FS, name string, dst any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

// stamp fills provenance on every fragment from the entity that owns it.
func (c *Catalog) stamp() {
	for i := range c.Expansions {
		e := &c.Expansions[i]
		e.Rules = model.StampAll(e.Rules, model.Provenance{Source: model.SourceExpansion, SourceName: e.Label})
	}
	for i := range c.SetupCards {
		sc := &c.SetupCards[i]
		sc.Rules = model.StampAll(sc.Rules, model.Provenance{Source: model.SourceSetupCard, SourceName: sc.Label})
	}
	for i := range c.Stories {
		s := &c.Stories[i]
		s.Rules = model.StampAll(s.Rules, model.Provenance{Source: model.SourceStory, SourceName: s.Title})
	}
}

func (c *Catalog) index() {
	c.expansionIdx = make(map[string]int, len(c.Expansions))
	for i, e := range c.Expansions {
		if _, dup := c.expansionIdx[e.ID]; !dup {
			c.expansionIdx[e.ID] = i
		}
	}
	c.cardIdx = make(map[string]int, len(c.SetupCards))
	for i, sc := range c.SetupCards {
		if _, dup := c.cardIdx[sc.ID]; !dup {
			c.cardIdx[sc.ID] = i
		}
	}
	c.stepIdx = make(map[string]int, len(c.Steps))
	for i, s := range c.Steps {
		if _, dup := c.stepIdx[s.ID]; !dup {
			c.stepIdx[s.ID] = i
		}
	}
}

var (
	defaultOnce sync.Once
	defaultCat  *Catalog
	defaultErr  error
)

// Default returns the embedded catalog. It panics if the embedded data does
// not decode, since that is a build defect rather than a runtime condition.
func Default() *Catalog {
	defaultOnce.Do(func() {
		defaultCat, defaultErr = Load(embedded)
	})
	if defaultErr != nil {
		panic(fmt.Sprintf("catalog: embedded data: %v", defaultErr))
	}
	return defaultCat
}

func (c *Catalog) Expansion(id string) (model.Expansion, bool) {
	i, ok := c.expansionIdx[id]
	if !ok {
		return model.Expansion{}, false
	}
	return c.Expansions[i], true
}

// SetupCard looks up a setup card by id.
func (c *Catalog) SetupCard(id string) (model.SetupCard, error) {
	i, ok := c.cardIdx[id]
	if !ok {
		return model.SetupCard{}, fmt.Errorf("%w: %q", ErrSetupCardNotFound, id)
	}
	return c.SetupCards[i], nil
}

// HasSetupCard reports whether id names a setup card.
func (c *Catalog) HasSetupCard(id string) bool {
	_, ok := c.cardIdx[id]
	return ok
}

// Story returns the story at index i. NoStory and out-of-range indexes
// report false.
func (c *Catalog) Story(i int) (model.StoryCard, bool) {
	if i < 0 || i >= len(c.Stories) {
		return model.StoryCard{}, false
	}
	return c.Stories[i], true
}

// StoryIndex finds a story by title.
func (c *Catalog) StoryIndex(title string) int {
	for i, s := range c.Stories {
		if s.Title == title {
			return i
		}
	}
	return model.NoStory
}

func (c *Catalog) StepContent(id string) (model.StepContent, bool) {
	i, ok := c.stepIdx[id]
	if !ok {
		return model.StepContent{}, false
	}
	return c.Steps[i], true
}

// DefaultExpansions returns the activation map seeded at session start.
func (c *Catalog) DefaultExpansions() map[string]bool {
	out := make(map[string]bool)
	for _, e := range c.Expansions {
		if e.DefaultActive && !e.Hidden {
			out[e.ID] = true
		}
	}
	return out
}

// ActiveExpansions returns the expansions enabled in active, in catalog
// order.
func (c *Catalog) ActiveExpansions(active map[string]bool) []model.Expansion {
	var out []model.Expansion
	for _, e := range c.Expansions {
		if active[e.ID] {
			out = append(out, e)
		}
	}
	return out
}

// SupplyHeavyActive counts active expansions that ship extra supply cards.
func (c *Catalog) SupplyHeavyActive(active map[string]bool) int {
	n := 0
	for _, e := range c.Expansions {
		if e.SupplyHeavy && active[e.ID] {
			n++
		}
	}
	return n
}

// CardAvailable reports whether a setup card's requirements are met by the
// active expansions and the player count.
func CardAvailable(card model.SetupCard, gs model.GameState) bool {
	if card.RequiredExpansion != "" && !gs.ExpansionActive(card.RequiredExpansion) {
		return false
	}
	if card.Mode == model.SetupCardSoloOnly && !gs.IsSolo() {
		return false
	}
	return true
}

// StoryAvailable reports whether a story can be chosen for gs.
func StoryAvailable(s model.StoryCard, gs model.GameState) bool {
	for _, req := range s.Requirements() {
		if !gs.ExpansionActive(req) {
			return false
		}
	}
	if s.Solo && !gs.IsSolo() {
		return false
	}
	return s.AllowsPlayers(gs.PlayerCount)
}

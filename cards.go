package tableau

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// CardID identifies a card in the database.
type CardID string

// NoCard is the identity of a card that has not been assigned one.
const NoCard CardID = ""

// CardType discriminates sound cards from power cards.
type CardType uint8

const (
	SoundCard CardType = iota
	PowerCard
)

// CardData is one database entry. Sound cards carry a phonetic feature code
// and the sound-change conversions the card can undergo; the UI renders
// these as opaque formatted text.
type CardData struct {
	ID     CardID
	Type   CardType
	Name   string
	Center string

	// Consonant selects the feature-code letters: P/M (place, manner)
	// for consonants, F/H (frontness, height) for vowels.
	Consonant bool
	Place     int
	Manner    int

	// Count is the number of copies in the deck.
	Count int

	// Converts lists the sound changes this card supports, each a group
	// of cards it may become.
	Converts [][]CardID
}

// Code returns the card's phonetic feature code, e.g. "P1M2" or "F3H1".
func (d *CardData) Code() string {
	if d.Consonant {
		return fmt.Sprintf("P%dM%d", d.Place, d.Manner)
	}
	return fmt.Sprintf("F%dH%d", d.Place, d.Manner)
}

// ConversionLines renders the conversion groups as display text, one
// "→ a, b" line per group.
func (d *CardData) ConversionLines() string {
	lines := make([]string, 0, len(d.Converts))
	for _, group := range d.Converts {
		centers := make([]string, 0, len(group))
		for _, id := range group {
			if target, ok := LookupCard(id); ok {
				centers = append(centers, target.Center)
			}
		}
		lines = append(lines, "→ "+strings.Join(centers, ", "))
	}
	return strings.Join(lines, "\n")
}

// LookupCard returns the database entry for id.
func LookupCard(id CardID) (*CardData, bool) {
	d, ok := cardDatabase[id]
	return d, ok
}

// CardCount returns the number of cards in the database.
func CardCount() int { return len(cardDatabase) }

//go:embed cards.toml
var cardsTOML []byte

var cardDatabase = loadCardDatabase()

type cardFile struct {
	Cards []cardEntry `toml:"card"`
}

type cardEntry struct {
	ID        string     `toml:"id"`
	Kind      string     `toml:"kind"`
	Name      string     `toml:"name"`
	Center    string     `toml:"center"`
	Consonant bool       `toml:"consonant"`
	Place     int        `toml:"place"`
	Manner    int        `toml:"manner"`
	Count     int        `toml:"count"`
	Converts  [][]string `toml:"converts"`
}

// loadCardDatabase parses the embedded card table. The table ships with the
// binary, so a parse failure is a build defect, not a runtime condition.
func loadCardDatabase() map[CardID]*CardData {
	var f cardFile
	if err := toml.Unmarshal(cardsTOML, &f); err != nil {
		panic(fmt.Errorf("tableau: invalid embedded card database: %w", err))
	}

	db := make(map[CardID]*CardData, len(f.Cards))
	for _, e := range f.Cards {
		if e.ID == "" {
			panic("tableau: card database entry without an id")
		}
		id := CardID(e.ID)
		if _, dup := db[id]; dup {
			panic(fmt.Sprintf("tableau: duplicate card id %q", e.ID))
		}

		d := &CardData{
			ID:        id,
			Name:      e.Name,
			Center:    e.Center,
			Consonant: e.Consonant,
			Place:     e.Place,
			Manner:    e.Manner,
			Count:     e.Count,
		}
		switch e.Kind {
		case "", "sound":
			d.Type = SoundCard
		case "power":
			d.Type = PowerCard
		default:
			panic(fmt.Sprintf("tableau: card %q has unknown kind %q", e.ID, e.Kind))
		}
		for _, group := range e.Converts {
			ids := make([]CardID, len(group))
			for i, s := range group {
				ids[i] = CardID(s)
			}
			d.Converts = append(d.Converts, ids)
		}
		db[id] = d
	}
	return db
}

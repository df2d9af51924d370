package web

import (
	"os"

	"github.com/peterkuimelis/skirmish/internal/game"
)

// DeckInfo is the JSON representation of a deck for the /api/decks endpoint.
type DeckInfo struct {
	Number int      `json:"number"`
	Name   string   `json:"name"`
	Size   int      `json:"size"`
	Cards  []string `json:"cards"`
}

// listDecks describes the decks in path, or the built-in pair when path is
// empty.
func listDecks(path string) ([]DeckInfo, error) {
	if path == "" {
		return []DeckInfo{
			deckInfo(1, "Default Human", game.HumanDeckList),
			deckInfo(2, "Default AI", game.AIDeckList),
		}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	df, err := game.ParseDeckData(data)
	if err != nil {
		return nil, err
	}

	var decks []DeckInfo
	for i, d := range df.Decks {
		var names []string
		for _, c := range d.Cards {
			count := c.Count
			if count == 0 {
				count = 1
			}
			for j := 0; j < count; j++ {
				names = append(names, c.Name)
			}
		}
		decks = append(decks, deckInfo(i+1, d.Name, names))
	}
	return decks, nil
}

func deckInfo(n int, name string, cards []string) DeckInfo {
	di := DeckInfo{Number: n, Name: name, Size: len(cards)}
	// Unique card names for display
	seen := make(map[string]bool)
	for _, c := range cards {
		if !seen[c] {
			di.Cards = append(di.Cards, c)
			seen[c] = true
		}
	}
	return di
}

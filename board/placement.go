package board

import (
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Spot is one (rank, file, owner) entry of a placement.
type Spot struct {
	Rank  int
	File  int
	Owner Player
}

// Group places pieces of one kind.
type Group struct {
	Kind  Kind
	Spots []Spot
}

// Placement maps a single-letter tag to the pieces it places. Tags are only
// labels; the Kind in each Group decides what is constructed.
type Placement map[byte]Group

// canonicalTags fixes roster order for the usual tags so that construction is
// deterministic despite map iteration order.
const canonicalTags = "KQRBNPp"

func (pl Placement) tags() []byte {
	keys := maps.Keys(pl)
	slices.Sort(keys)
	out := make([]byte, 0, len(keys))
	for i := 0; i < len(canonicalTags); i++ {
		if _, ok := pl[canonicalTags[i]]; ok {
			out = append(out, canonicalTags[i])
		}
	}
	for _, k := range keys {
		if strings.IndexByte(canonicalTags, k) < 0 {
			out = append(out, k)
		}
	}
	return out
}

// DefaultPlacement returns a fresh copy of the standard starting layout.
func DefaultPlacement() Placement {
	pl := Placement{
		'K': {King, []Spot{{0, 4, Player0}, {7, 4, Player1}}},
		'Q': {Queen, []Spot{{0, 3, Player0}, {7, 3, Player1}}},
		'R': {Rook, []Spot{{0, 0, Player0}, {0, 7, Player0}, {7, 0, Player1}, {7, 7, Player1}}},
		'B': {Bishop, []Spot{{0, 2, Player0}, {0, 5, Player0}, {7, 2, Player1}, {7, 5, Player1}}},
		'N': {Knight, []Spot{{0, 1, Player0}, {0, 6, Player0}, {7, 1, Player1}, {7, 6, Player1}}},
	}
	pawns0 := Group{Kind: Pawn0}
	pawns1 := Group{Kind: Pawn1}
	for f := 0; f < Size; f++ {
		pawns0.Spots = append(pawns0.Spots, Spot{1, f, Player0})
		pawns1.Spots = append(pawns1.Spots, Spot{6, f, Player1})
	}
	pl['P'] = pawns0
	pl['p'] = pawns1
	return pl
}

// Placement derives a placement specification from the grid, scanning rank 0
// to 7 and file 0 to 7. Feeding it back to NewBoard rebuilds the same pieces.
func (b *Board) Placement() Placement {
	pl := Placement{}
	for r := 0; r < Size; r++ {
		for f := 0; f < Size; f++ {
			p := b.grid[r][f]
			if p.Empty() {
				continue
			}
			tag := p.Kind.letter()
			if p.Kind == Pawn1 {
				tag = 'p'
			}
			g := pl[tag]
			g.Kind = p.Kind
			g.Spots = append(g.Spots, Spot{r, f, p.Owner})
			pl[tag] = g
		}
	}
	return pl
}

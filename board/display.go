package board

import "strings"

const rankRule = "\n───┼───┼───┼───┼───┼───┼───┼───\n"

// String renders the grid from rank 8 down to rank 1 using FEN letters.
func (b *Board) String() string {
	lines := make([]string, 0, Size)
	cells := make([]string, Size)
	for r := Size - 1; r >= 0; r-- {
		for f := 0; f < Size; f++ {
			p := b.grid[r][f]
			if p.Empty() {
				cells[f] = " "
			} else {
				cells[f] = string(p.Symbol())
			}
		}
		lines = append(lines, " "+strings.Join(cells, " │ "))
	}
	return strings.Join(lines, rankRule)
}

// Plane channels returned by Planes.
const (
	PlanePieces = iota
	PlaneDiagonal
	PlaneOrthogonal
	PlaneKnights
	PlaneKings
	PlaneHalfmove
	NumPlanes
)

// Planes encodes the position as stacked 8x8 channels indexed [channel][rank][file].
// Piece channels hold +1 for Player0 and -1 for Player1; the last channel is
// the halfmove clock divided by the stalemate threshold.
func (b *Board) Planes() [NumPlanes][Size][Size]float32 {
	var planes [NumPlanes][Size][Size]float32
	for r := 0; r < Size; r++ {
		for f := 0; f < Size; f++ {
			p := b.grid[r][f]
			if !p.Empty() {
				marker := float32(1)
				if p.Owner == Player1 {
					marker = -1
				}
				planes[PlanePieces][r][f] = marker
				switch p.Kind {
				case Bishop:
					planes[PlaneDiagonal][r][f] = marker
				case Rook:
					planes[PlaneOrthogonal][r][f] = marker
				case Queen:
					planes[PlaneDiagonal][r][f] = marker
					planes[PlaneOrthogonal][r][f] = marker
				case Knight:
					planes[PlaneKnights][r][f] = marker
				case King:
					planes[PlaneKings][r][f] = marker
				}
			}
			if b.threshold > 0 {
				planes[PlaneHalfmove][r][f] = float32(b.halfmove) / float32(b.threshold)
			}
		}
	}
	return planes
}

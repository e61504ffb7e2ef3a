package board

import "math/rand"

// Zobrist keys per kind, owner and square, plus side to move and clocks.
var zobristPiece [King + 1][2][Size * Size]uint64
var zobristSide uint64
var zobristHalfmove [256]uint64

const (
	fullmoveMix  = 0x9E3779B97F4A7C15
	thresholdMix = 0xC2B2AE3D27D4EB4F
)

func init() {
	initZobrist()
}

func initZobrist() {
	// Fixed seed keeps hashes stable across runs.
	rnd := rand.New(rand.NewSource(0xC0DE))
	for k := range zobristPiece {
		for o := range zobristPiece[k] {
			for sq := range zobristPiece[k][o] {
				zobristPiece[k][o][sq] = rnd.Uint64()
			}
		}
	}
	zobristSide = rnd.Uint64()
	for i := range zobristHalfmove {
		zobristHalfmove[i] = rnd.Uint64()
	}
}

// Hash returns a Zobrist key over pieces, side to move, both clocks and the
// stalemate threshold. Boards with equal FEN strings and thresholds always
// hash equally.
func (b *Board) Hash() uint64 {
	var key uint64
	for p := Player0; p <= Player1; p++ {
		for _, sq := range b.roster[p] {
			key ^= zobristPiece[b.at(sq).Kind][p][sq.Rank*Size+sq.File]
		}
	}
	if b.turn == Player1 {
		key ^= zobristSide
	}
	key ^= zobristHalfmove[b.halfmove&0xFF]
	key ^= uint64(b.fullmove) * fullmoveMix
	key ^= uint64(b.threshold+1) * thresholdMix
	return key
}

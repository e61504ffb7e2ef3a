package board

// Perft counts the leaf nodes of the legal move tree to the given depth. The
// halfmove threshold is ignored so that counts match conventional perft.
func Perft(b *Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	succ := b.Successors(true)
	if depth == 1 {
		return uint64(len(succ))
	}
	var nodes uint64
	for _, s := range succ {
		nodes += Perft(s.Board, depth-1)
	}
	return nodes
}

// PerftDivide returns the perft count below each root move.
func PerftDivide(b *Board, depth int) map[Move]uint64 {
	out := make(map[Move]uint64)
	if depth <= 0 {
		return out
	}
	for _, s := range b.Successors(true) {
		out[s.Move] = Perft(s.Board, depth-1)
	}
	return out
}

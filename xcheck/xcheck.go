// Package xcheck compares the board package against independent rules
// engines. Positions are handed over with castling and en passant disabled
// and the clocks reset, since neither rule exists in board and the oracles
// know nothing of the halfmove threshold.
package xcheck

import (
	"fmt"
	"sort"
	"strings"

	goosemg "github.com/Oliverans/GooseEngineMG/goosemg"
	"github.com/dylhunn/dragontoothmg"
	"github.com/notnil/chess"

	"github.com/turnip314/chess-alts/board"
)

// Status is the terminal state of a position.
type Status uint8

const (
	Ongoing Status = iota
	Checkmate
	Stalemate
)

func (s Status) String() string {
	switch s {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	}
	return "ongoing"
}

// oracleFEN rewrites b's FEN with cleared clocks so every oracle accepts it.
func oracleFEN(b *board.Board) string {
	fields := strings.Fields(b.FEN())
	return fmt.Sprintf("%s %s - - 0 1", fields[0], fields[1])
}

func fromIndex(i uint8) board.Square { return board.Sq(int(i/8), int(i%8)) }

// sortMoves orders moves by source then destination square.
func sortMoves(moves []board.Move) {
	sort.Slice(moves, func(i, j int) bool { return moveLess(moves[i], moves[j]) })
}

func moveLess(a, b board.Move) bool {
	ka := [4]int{a.From.Rank, a.From.File, a.To.Rank, a.To.File}
	kb := [4]int{b.From.Rank, b.From.File, b.To.Rank, b.To.File}
	for i := range ka {
		if ka[i] != kb[i] {
			return ka[i] < kb[i]
		}
	}
	return false
}

// LegalMoves returns the legal moves of b according to dragontoothmg,
// sorted. Under-promotions are dropped since board only promotes to a queen.
func LegalMoves(b *board.Board) []board.Move {
	dt := dragontoothmg.ParseFen(oracleFEN(b))
	var out []board.Move
	for _, m := range dt.GenerateLegalMoves() {
		if p := m.Promote(); p != dragontoothmg.Nothing && p != dragontoothmg.Queen {
			continue
		}
		out = append(out, board.Move{From: fromIndex(m.From()), To: fromIndex(m.To())})
	}
	sortMoves(out)
	return out
}

// InCheck reports whether the side to move is in check according to
// GooseEngineMG.
func InCheck(b *board.Board) (bool, error) {
	gb, err := goosemg.ParseFEN(oracleFEN(b))
	if err != nil {
		return false, fmt.Errorf("goosemg: %w", err)
	}
	side := goosemg.White
	if b.Turn() == board.Player1 {
		side = goosemg.Black
	}
	return gb.InCheck(side), nil
}

// StatusOf classifies b according to notnil/chess.
func StatusOf(b *board.Board) (Status, error) {
	opt, err := chess.FEN(oracleFEN(b))
	if err != nil {
		return Ongoing, fmt.Errorf("notnil/chess: %w", err)
	}
	switch chess.NewGame(opt).Position().Status() {
	case chess.Checkmate:
		return Checkmate, nil
	case chess.Stalemate:
		return Stalemate, nil
	}
	return Ongoing, nil
}

// NotnilMoves returns the legal moves of b according to notnil/chess, sorted
// and with under-promotions dropped.
func NotnilMoves(b *board.Board) ([]board.Move, error) {
	opt, err := chess.FEN(oracleFEN(b))
	if err != nil {
		return nil, fmt.Errorf("notnil/chess: %w", err)
	}
	var out []board.Move
	for _, m := range chess.NewGame(opt).ValidMoves() {
		if p := m.Promo(); p != chess.NoPieceType && p != chess.Queen {
			continue
		}
		out = append(out, board.Move{From: fromIndex(uint8(m.S1())), To: fromIndex(uint8(m.S2()))})
	}
	sortMoves(out)
	return out, nil
}

// boardStatus classifies b with board's own rules, ignoring the halfmove
// threshold.
func boardStatus(b *board.Board) Status {
	if b.HasLegalMove(true) {
		return Ongoing
	}
	if b.InCheck() {
		return Checkmate
	}
	return Stalemate
}

package xcheck

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/turnip314/chess-alts/board"
)

// MismatchError describes a position on which board and an oracle disagree.
type MismatchError struct {
	FEN    string
	Oracle string
	Detail string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s disagrees on %s: %s", e.Oracle, e.FEN, e.Detail)
}

// Verify checks the legal moves, check flag and terminal status of b against
// every oracle and returns the first disagreement.
func Verify(b *board.Board) error {
	mismatch := func(oracle, format string, args ...any) error {
		return &MismatchError{FEN: b.FEN(), Oracle: oracle, Detail: fmt.Sprintf(format, args...)}
	}

	ours := b.LegalMoves(true)
	sortMoves(ours)
	if theirs := LegalMoves(b); !slices.Equal(ours, theirs) {
		return mismatch("dragontoothmg", "moves %s vs %s", moveList(ours), moveList(theirs))
	}

	inCheck, err := InCheck(b)
	if err != nil {
		return err
	}
	if inCheck != b.InCheck() {
		return mismatch("goosemg", "in check %v vs %v", b.InCheck(), inCheck)
	}

	status, err := StatusOf(b)
	if err != nil {
		return err
	}
	if own := boardStatus(b); own != status {
		return mismatch("notnil/chess", "status %s vs %s", own, status)
	}
	return nil
}

// VerifyTree runs Verify on b and every position reachable from it within
// depth plies, ignoring the halfmove threshold. It returns the number of
// positions checked.
func VerifyTree(b *board.Board, depth int) (int, error) {
	if err := Verify(b); err != nil {
		return 1, err
	}
	checked := 1
	if depth <= 0 {
		return checked, nil
	}
	for _, s := range b.Successors(true) {
		n, err := VerifyTree(s.Board, depth-1)
		checked += n
		if err != nil {
			return checked, fmt.Errorf("after %s: %w", s.Move, err)
		}
	}
	return checked, nil
}

func moveList(moves []board.Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

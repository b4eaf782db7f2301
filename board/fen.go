package board

import (
	"errors"
	"strconv"
	"strings"

	"github.com/corvidchess/corvid/attacks"
	"github.com/corvidchess/corvid/bitboard"
	"github.com/corvidchess/corvid/eval"
	"github.com/corvidchess/corvid/piece"
	"github.com/corvidchess/corvid/zobrist"
)

// StartFEN is the standard initial chess position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseError is the closed enumeration of FEN parsing failures (spec.md §6).
type ParseError string

// Error implements the error interface.
func (e ParseError) Error() string { return string(e) }

const (
	ErrMissingPosition        ParseError = "fen: missing position field"
	ErrInvalidPiece           ParseError = "fen: invalid piece character"
	ErrMissingKing            ParseError = "fen: missing king"
	ErrMultipleKings          ParseError = "fen: multiple kings for one color"
	ErrTouchingKings          ParseError = "fen: kings stand adjacent"
	ErrPawnOnPromotionRank    ParseError = "fen: pawn on rank 1 or 8"
	ErrInvalidDigit           ParseError = "fen: invalid empty-square digit"
	ErrMissingSideToMove      ParseError = "fen: missing side to move"
	ErrInvalidSideToMove      ParseError = "fen: side to move is not w or b"
	ErrMissingCastling        ParseError = "fen: missing castling field"
	ErrMissingEnPassant       ParseError = "fen: missing en passant field"
	ErrInvalidEnPassant       ParseError = "fen: invalid en passant square"
	ErrMissingHalfMoveClock   ParseError = "fen: missing halfmove clock"
	ErrInvalidHalfMoveClock   ParseError = "fen: invalid halfmove clock"
	ErrMissingFullMoveCounter ParseError = "fen: missing fullmove counter"
	ErrInvalidFullMoveCounter ParseError = "fen: invalid fullmove counter"
	ErrTooManyChecks          ParseError = "fen: side to move is in triple check"
)

// ParseFEN parses a six-field FEN string into a fresh Board. All
// incremental accumulators (Zobrist keys, PSQT sums, phase) are computed
// from scratch since there is no prior Board to update incrementally.
func ParseFEN(fen string) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) == 0 {
		return nil, ErrMissingPosition
	}

	b := &Board{}
	for i := range b.mailbox {
		b.mailbox[i] = piece.None
	}

	if err := b.parsePlacement(fields[0]); err != nil {
		return nil, err
	}

	whiteKing := b.Pieces[piece.WhiteKing]
	blackKing := b.Pieces[piece.BlackKing]
	if whiteKing == 0 || blackKing == 0 {
		return nil, ErrMissingKing
	}
	if whiteKing.MoreThanOne() || blackKing.MoreThanOne() {
		return nil, ErrMultipleKings
	}
	if attacks.King[whiteKing.LSB()].Overlaps(blackKing) {
		return nil, ErrTouchingKings
	}

	if len(fields) < 2 {
		return nil, ErrMissingSideToMove
	}
	switch fields[1] {
	case "w":
		b.SideToMove = piece.White
	case "b":
		b.SideToMove = piece.Black
	default:
		return nil, ErrInvalidSideToMove
	}

	if len(fields) < 3 {
		return nil, ErrMissingCastling
	}
	if fields[2] != "-" {
		for i := 0; i < len(fields[2]); i++ {
			switch fields[2][i] {
			case 'K':
				b.Castling |= WhiteShort
			case 'Q':
				b.Castling |= WhiteLong
			case 'k':
				b.Castling |= BlackShort
			case 'q':
				b.Castling |= BlackLong
			}
		}
	}

	if len(fields) < 4 {
		return nil, ErrMissingEnPassant
	}
	if fields[3] == "-" {
		b.EPTarget = bitboard.NoSquare
	} else {
		sq := bitboard.SquareFromName(fields[3])
		if sq == bitboard.NoSquare {
			return nil, ErrInvalidEnPassant
		}
		b.EPTarget = sq
	}

	if len(fields) < 5 {
		return nil, ErrMissingHalfMoveClock
	}
	hm, err := strconv.Atoi(fields[4])
	if err != nil || hm < 0 {
		return nil, ErrInvalidHalfMoveClock
	}
	b.HalfmoveClock = hm

	if len(fields) < 6 {
		return nil, ErrMissingFullMoveCounter
	}
	fm, err := strconv.Atoi(fields[5])
	if err != nil || fm < 1 {
		return nil, ErrInvalidFullMoveCounter
	}
	b.FullmoveCount = fm

	kingSq := whiteKing.LSB()
	if b.SideToMove == piece.Black {
		kingSq = blackKing.LSB()
	}
	if checksOn(b, kingSq, piece.Opposite(b.SideToMove)) >= 3 {
		return nil, ErrTooManyChecks
	}

	b.recomputeAccumulators()

	return b, nil
}

// checksOn counts how many pieces of attacker belonging to b are
// delivering check to kingSq. Used only for the FEN sanity check above;
// the move generator has its own, faster check-detection path.
func checksOn(b *Board, kingSq bitboard.Square, attacker piece.Color) int {
	enemyPawn := piece.Make(attacker, piece.Pawn)
	defender := piece.Opposite(attacker)
	cnt := attacks.Pawn[defender][kingSq].Intersect(b.Pieces[enemyPawn]).Count()
	cnt += attacks.Knight[kingSq].Intersect(b.Pieces[piece.Make(attacker, piece.Knight)]).Count()
	cnt += attacks.Bishop(kingSq, b.Occ).Intersect(b.Pieces[piece.Make(attacker, piece.Bishop)]).Count()
	cnt += attacks.Rook(kingSq, b.Occ).Intersect(b.Pieces[piece.Make(attacker, piece.Rook)]).Count()
	cnt += attacks.Queen(kingSq, b.Occ).Intersect(b.Pieces[piece.Make(attacker, piece.Queen)]).Count()
	return cnt
}

func (b *Board) parsePlacement(placement string) error {
	rank, file := 7, 0
	for i := 0; i < len(placement); i++ {
		c := placement[i]
		switch {
		case c == '/':
			if file != 8 {
				return ErrInvalidDigit
			}
			rank--
			file = 0
		case c >= '1' && c <= '8':
			file += int(c - '0')
			if file > 8 {
				return ErrInvalidDigit
			}
		default:
			p := piece.FromSymbol(c)
			if p == piece.None {
				return ErrInvalidPiece
			}
			if file > 7 || rank < 0 {
				return ErrInvalidDigit
			}
			sq := bitboard.SquareFromCoords(file, rank)
			if p == piece.WhitePawn && sq.Rank() == 7 || p == piece.BlackPawn && sq.Rank() == 0 {
				return ErrPawnOnPromotionRank
			}
			b.Pieces[p] |= sq.Bit()
			b.ColorBB[p.Color()] |= sq.Bit()
			b.Occ |= sq.Bit()
			b.mailbox[sq] = p
			file++
		}
	}
	if file != 8 {
		return ErrInvalidDigit
	}
	return nil
}

// recomputeAccumulators derives Key, PawnKey, MinorKey, MG, EG, and Phase
// from the piece placement. Used only at FEN-parse time; every other
// mutation path (MakeMove/UnmakeMove) keeps them incrementally in sync.
func (b *Board) recomputeAccumulators() {
	b.MG, b.EG, b.Phase = 0, 0, 0
	for p := piece.Piece(0); p < piece.NumPieces; p++ {
		bb := b.Pieces[p]
		for bb != 0 {
			sq := bitboard.PopLSB(&bb)
			mg, eg := eval.PieceValue(p, int(sq))
			b.MG += mg
			b.EG += eg
			b.Phase += eval.PhaseWeight(p.Type())
		}
	}
	b.Key = zobrist.FromScratch(b.PieceAt, b.Castling, b.EPTarget, b.SideToMove)
	b.PawnKey = zobrist.FromScratchSub(b.PieceAt, zobrist.IsPawn)
	b.MinorKey = zobrist.FromScratchSub(b.PieceAt, zobrist.IsMinor)
}

// ToFEN serialises the board back into a FEN string. Round-trips exactly
// for any position produced by ParseFEN (spec.md §8 FEN round-trip
// invariant).
func (b *Board) ToFEN() string {
	var s strings.Builder
	s.Grow(64)

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			sq := bitboard.SquareFromCoords(file, rank)
			p := b.mailbox[sq]
			if p == piece.None {
				empty++
				continue
			}
			if empty > 0 {
				s.WriteByte('0' + byte(empty))
				empty = 0
			}
			s.WriteByte(piece.Symbols[p])
		}
		if empty > 0 {
			s.WriteByte('0' + byte(empty))
		}
		if rank != 0 {
			s.WriteByte('/')
		}
	}

	if b.SideToMove == piece.White {
		s.WriteString(" w ")
	} else {
		s.WriteString(" b ")
	}

	if b.Castling == 0 {
		s.WriteByte('-')
	} else {
		if b.Castling&WhiteShort != 0 {
			s.WriteByte('K')
		}
		if b.Castling&WhiteLong != 0 {
			s.WriteByte('Q')
		}
		if b.Castling&BlackShort != 0 {
			s.WriteByte('k')
		}
		if b.Castling&BlackLong != 0 {
			s.WriteByte('q')
		}
	}

	s.WriteByte(' ')
	if b.EPTarget == bitboard.NoSquare {
		s.WriteByte('-')
	} else {
		s.WriteString(b.EPTarget.String())
	}

	s.WriteByte(' ')
	s.WriteString(strconv.Itoa(b.HalfmoveClock))
	s.WriteByte(' ')
	s.WriteString(strconv.Itoa(b.FullmoveCount))

	return s.String()
}

// IsParseError reports whether err is one of the typed FEN parse errors.
func IsParseError(err error) bool {
	var pe ParseError
	return errors.As(err, &pe)
}

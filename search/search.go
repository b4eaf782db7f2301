package search

import (
	"github.com/corvidchess/corvid/board"
	"github.com/corvidchess/corvid/eval"
	"github.com/corvidchess/corvid/move"
	"github.com/corvidchess/corvid/movegen"
	"github.com/corvidchess/corvid/piece"
	"github.com/corvidchess/corvid/timeman"
)

// Info is emitted once per completed (or aborted) iterative-deepening
// iteration so the UCI layer can print "info depth ... pv ...".
type Info struct {
	Depth    int
	SelDepth int
	Score    eval.CP
	Nodes    uint64
	PV       []move.Encoded
}

// Searcher owns everything that persists across the lifetime of one
// engine process: the transposition table and the move-ordering history
// tables. A fresh Searcher is only needed for a fresh engine instance;
// Run resets the per-search counters and limits and advances the TT's
// search generation at the start of every search.
type Searcher struct {
	TT     *TT
	Params Params
	Time   *timeman.Manager

	hist *history
	pv   pvTable

	nodes      uint64
	nodeLimit  uint64
	depthLimit int
	seldepth   int

	keys []uint64

	searchMoves map[move.Encoded]bool

	onInfo func(Info)
}

// NewSearcher builds a Searcher around an existing TT (so UCI's "Hash"
// option and the table survive across searches within one game).
func NewSearcher(tt *TT, tm *timeman.Manager) *Searcher {
	return &Searcher{TT: tt, Params: DefaultParams(), Time: tm, hist: newHistory()}
}

// Limits bundles the root-search configuration that timeman.Limits
// doesn't already own: depth/node/mate caps and a restricted root move
// list (UCI "go searchmoves").
type Limits struct {
	Time         timeman.Limits
	Depth        int
	Nodes        uint64
	MateDistance int // "go mate N": stop once a mate in N moves is proved
	SearchMoves  []move.Encoded
}

// Run performs iterative deepening from root until the time manager or a
// depth/node limit says stop, calling onInfo after every completed
// iteration and returning the final result.
func (s *Searcher) Run(root *board.Board, keyHistory []uint64, limits Limits, onInfo func(Info)) Info {
	s.nodes = 0
	s.seldepth = 0
	s.depthLimit = limits.Depth
	s.nodeLimit = limits.Nodes
	s.onInfo = onInfo
	s.keys = append(append([]uint64{}, keyHistory...), root.Key)
	s.TT.NewSearch()

	if len(limits.SearchMoves) > 0 {
		s.searchMoves = make(map[move.Encoded]bool, len(limits.SearchMoves))
		for _, m := range limits.SearchMoves {
			s.searchMoves[m] = true
		}
	} else {
		s.searchMoves = nil
	}

	var last Info
	score := staticEval(root, s.hist)
	maxDepth := limits.Depth
	if maxDepth <= 0 || maxDepth > MaxPly-1 {
		maxDepth = MaxPly - 1
	}

	for depth := 1; depth <= maxDepth; depth++ {
		if s.Time.HardStopIterativeDeepening(depth, s.nodes, s.nodeLimit, limits.Depth) {
			break
		}

		s.pv.clear(0)
		iterScore, aborted := s.aspirate(root, depth, score)
		if aborted && depth > 1 {
			break
		}
		score = iterScore

		pv := append([]move.Encoded{}, s.pv.moves()...)
		if len(pv) == 0 {
			pv = []move.Encoded{s.rootFallback(root)}
		}
		last = Info{Depth: depth, SelDepth: s.seldepth, Score: score, Nodes: s.nodes, PV: pv}
		if onInfo != nil {
			onInfo(last)
		}
		if len(pv) > 0 {
			s.Time.NotifyIteration(uint16(pv[0]), int32(score))
		}
		mateProved := limits.MateDistance > 0 && IsMateScore(score) && MateIn(score) <= limits.MateDistance
		if s.Time.SoftStop(s.nodes, s.nodeLimit, mateProved) {
			break
		}
		if s.Time.Stopped() {
			break
		}
	}
	return last
}

// aspirate runs one iteration with a narrow window around the previous
// iteration's score, widening and re-searching on failure — the usual
// aspiration-window dance, skipped entirely for very shallow depths
// where the overhead isn't worth it.
func (s *Searcher) aspirate(root *board.Board, depth int, prevScore eval.CP) (eval.CP, bool) {
	if depth < 4 {
		score := s.negamax(root, depth, 0, -Infinity, Infinity, true, false)
		return score, s.Time.Stopped()
	}

	window := s.Params.AspirationWindow
	alpha := clampScore(prevScore - window)
	beta := clampScore(prevScore + window)

	for {
		score := s.negamax(root, depth, 0, alpha, beta, true, false)
		if s.Time.Stopped() {
			return score, true
		}
		if score <= alpha {
			alpha = clampScore(alpha - window)
			window *= 2
			continue
		}
		if score >= beta {
			beta = clampScore(beta + window)
			window *= 2
			continue
		}
		return score, false
	}
}

func clampScore(s eval.CP) eval.CP {
	if s > Infinity {
		return Infinity
	}
	if s < -Infinity {
		return -Infinity
	}
	return s
}

func (s *Searcher) rootFallback(root *board.Board) move.Encoded {
	var list move.List
	movegen.Generate(root, false, &list)
	if list.Len == 0 {
		return move.None16
	}
	return list.Moves[0]
}

// staticEval reads the board's incrementally maintained PSQT sums and
// blends them, then nudges the result by whatever correction history has
// learned about this pawn/minor structure.
func staticEval(b *board.Board, h *history) eval.CP {
	e := eval.Blend(b.MG, b.EG, b.Phase, b.SideToMove)
	if h != nil {
		e += h.correctionDelta(b.SideToMove, b.PawnKey, b.MinorKey)
	}
	return e
}

func isInsufficientMaterial(b *board.Board) bool {
	pawnsRooksQueens := b.Pieces[piece.WhitePawn] | b.Pieces[piece.BlackPawn] |
		b.Pieces[piece.WhiteRook] | b.Pieces[piece.BlackRook] |
		b.Pieces[piece.WhiteQueen] | b.Pieces[piece.BlackQueen]
	if pawnsRooksQueens != 0 {
		return false
	}
	minors := (b.Pieces[piece.WhiteKnight] | b.Pieces[piece.WhiteBishop] |
		b.Pieces[piece.BlackKnight] | b.Pieces[piece.BlackBishop])
	return minors.Count() <= 1
}

func (s *Searcher) isRepetition(b *board.Board) bool {
	n := len(s.keys)
	if n < 5 {
		return false
	}
	limit := b.HalfmoveClock
	if limit > n-1 {
		limit = n - 1
	}
	key := s.keys[n-1]
	for i := 4; i <= limit; i += 2 {
		if s.keys[n-1-i] == key {
			return true
		}
	}
	return false
}

func (s *Searcher) pushKey(k uint64) { s.keys = append(s.keys, k) }
func (s *Searcher) popKey()          { s.keys = s.keys[:len(s.keys)-1] }

// negamax searches one node to the given depth and returns a score from
// the side-to-move's perspective, updating s.pv whenever a move raises
// alpha. ply counts plies from the root (for mate-distance scoring, the
// PV table, and killer-move slots); depth counts plies still to search
// and can go negative inside check extensions, which the quiescence
// handoff below catches.
func (s *Searcher) negamax(b *board.Board, depth, ply int, alpha, beta eval.CP, pvNode, cutNode bool) eval.CP {
	s.pv.clear(ply)
	if ply > s.seldepth {
		s.seldepth = ply
	}

	if ply > 0 {
		if s.isRepetition(b) || b.HalfmoveClock >= 100 || isInsufficientMaterial(b) {
			return DrawScore
		}
		// Mate-distance pruning: a mate found any shallower than the
		// current ply can't beat a mate already proven at this ply.
		alpha = maxCP(alpha, mateScore(ply))
		beta = minCP(beta, MateScore-eval.CP(ply))
		if alpha >= beta {
			return alpha
		}
	}

	inCheck := isInCheck(b)
	if inCheck {
		depth++ // check extension: never resolve a check at depth 0
	}

	if depth <= 0 {
		return s.quiescence(b, ply, alpha, beta)
	}

	s.nodes++
	if s.nodes&1023 == 0 && s.Time.HardStopInner(s.nodes, s.nodeLimit) {
		return 0
	}

	origAlpha := alpha
	var hashMove move.Encoded
	if ttBest, ttScore, _, ttDepth, ttBound, ok := s.TT.Probe(b.Key); ok {
		hashMove = ttBest
		if !pvNode && ttDepth >= depth {
			switch ttBound {
			case BoundExact:
				return ttScore
			case BoundLower:
				if ttScore >= beta {
					return ttScore
				}
			case BoundUpper:
				if ttScore <= alpha {
					return ttScore
				}
			}
		}
	} else if depth >= s.Params.IIRMinDepth && pvNode {
		// Internal iterative reduction: no hash move to try first means
		// this node probably isn't worth a full-depth search either.
		depth--
	}

	staticE := staticEval(b, s.hist)
	improving := ply >= 2 && !inCheck

	if !pvNode && !inCheck {
		if depth <= s.Params.ReverseFutilityMaxDepth &&
			staticE-s.Params.ReverseFutilityMargin*eval.CP(depth) >= beta && abs32(int32(beta)) < int32(MateScore-MaxPly) {
			return staticE
		}

		if depth >= s.Params.NullMoveMinDepth && staticE >= beta && !lastMoveWasNull(b) && hasNonPawnMaterial(b) {
			ep, key := b.MakeNullMove()
			reduction := s.Params.NullMoveBaseReduction + depth/s.Params.NullMoveDepthDivisor
			s.pushKey(b.Key)
			score := -s.negamax(b, depth-1-reduction, ply+1, -beta, -beta+1, false, !cutNode)
			s.popKey()
			b.UnmakeNullMove(ep, key)
			if s.Time.Stopped() {
				return 0
			}
			if score >= beta {
				return beta
			}
		}
	}

	var list move.List
	movegen.Generate(b, false, &list)
	if list.Len == 0 {
		if inCheck {
			return mateScore(ply)
		}
		return DrawScore
	}

	order := newOrderer(b, s.hist, &list, hashMove, ply)

	best := move.None16
	bestScore := -Infinity
	moveNumber := 0
	var quietsTried []move.Encoded

	for {
		m, ok := order.pickNext()
		if !ok {
			break
		}
		if s.searchMoves != nil && ply == 0 && !s.searchMoves[m] {
			continue
		}
		moveNumber++

		captured := capturedPiece(b, m)
		isQuiet := captured == piece.None && !m.Flag().IsPromotion()

		if !pvNode && !inCheck && isQuiet && bestScore > MatedScore+MaxPly {
			if depth <= s.Params.LMPMaxDepth && moveNumber > s.Params.LMPBase+depth*depth {
				continue
			}
			if depth <= s.Params.FutilityMaxDepth &&
				staticE+s.Params.FutilityMargin*eval.CP(depth) <= alpha {
				continue
			}
		}

		undo := b.MakeMove(m)
		s.pushKey(b.Key)

		givesCheck := isInCheck(b)
		reduction := 0
		if depth >= s.Params.LMRMinDepth && moveNumber > s.Params.LMRMinMoveNo &&
			isQuiet && !inCheck && !givesCheck {
			reduction = 1 + depth/8
			if pvNode {
				reduction--
			}
			if improving {
				reduction--
			}
			if reduction < 0 {
				reduction = 0
			}
			if reduction >= depth {
				reduction = depth - 1
			}
		}

		var score eval.CP
		if moveNumber == 1 {
			score = -s.negamax(b, depth-1, ply+1, -beta, -alpha, pvNode, false)
		} else {
			score = -s.negamax(b, depth-1-reduction, ply+1, -alpha-1, -alpha, false, true)
			if score > alpha && (reduction > 0 || score < beta) {
				score = -s.negamax(b, depth-1, ply+1, -beta, -alpha, pvNode, false)
			}
		}

		s.popKey()
		b.UnmakeMove(m, undo)

		if s.Time.Stopped() {
			return 0
		}

		if isQuiet {
			quietsTried = append(quietsTried, m)
		}

		if score > bestScore {
			bestScore = score
			best = m
			if score > alpha {
				alpha = score
				s.pv.update(ply, m)
				if score >= beta {
					if isQuiet {
						s.hist.addKiller(ply, m)
						bonus := int32(depth * depth)
						s.hist.updateQuiet(b.SideToMove, m, bonus, s.Params.HistoryMax)
						for _, q := range quietsTried[:len(quietsTried)-1] {
							s.hist.updateQuiet(b.SideToMove, q, -bonus, s.Params.HistoryMax)
						}
					} else if captured != piece.None {
						moved := b.PieceAt(m.From())
						s.hist.updateCapture(moved, captured.Type(), int32(depth*depth), s.Params.HistoryMax)
					}
					break
				}
			}
		}
	}

	bound := BoundExact
	if bestScore <= origAlpha {
		bound = BoundUpper
	} else if bestScore >= beta {
		bound = BoundLower
	}
	s.TT.Store(b.Key, best, bestScore, staticE, depth, bound)

	if !inCheck && best != move.None16 && !best.Flag().IsPromotion() && capturedPiece(b, best) == piece.None {
		s.hist.updateCorrection(b.SideToMove, b.PawnKey, b.MinorKey, depth, bestScore-staticE)
	}

	return bestScore
}

func maxCP(a, b eval.CP) eval.CP {
	if a > b {
		return a
	}
	return b
}

func minCP(a, b eval.CP) eval.CP {
	if a < b {
		return a
	}
	return b
}

// capturedPiece reports what stands on m's destination square before the
// move is made, accounting for en passant's non-destination capture
// square.
func capturedPiece(b *board.Board, m move.Encoded) piece.Piece {
	if m.Flag() == move.EnPassant {
		return piece.Make(piece.Opposite(b.SideToMove), piece.Pawn)
	}
	return b.PieceAt(m.To())
}

func isInCheck(b *board.Board) bool {
	kingSq := b.Pieces[piece.Make(b.SideToMove, piece.King)].LSB()
	opp := piece.Opposite(b.SideToMove)
	return squareAttackedBy(b, kingSq, opp)
}

func hasNonPawnMaterial(b *board.Board) bool {
	side := b.SideToMove
	return (b.Pieces[piece.Make(side, piece.Knight)] |
		b.Pieces[piece.Make(side, piece.Bishop)] |
		b.Pieces[piece.Make(side, piece.Rook)] |
		b.Pieces[piece.Make(side, piece.Queen)]) != 0
}

// lastMoveWasNull is a placeholder hook for double-null-move avoidance;
// this engine never chains two null moves because MakeNullMove always
// alternates with a real search frame, so it's always false today.
func lastMoveWasNull(b *board.Board) bool { return false }

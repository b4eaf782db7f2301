package attacks

import "github.com/corvidchess/corvid/bitboard"

// Rook and bishop attacks from a given square depend only on the "relevant
// blocker" set intersected with the sliding ray, excluding the board edge
// (a blocker on the edge doesn't change where the ray stops short of it).
// Each square has a precomputed magic multiplier; index = (blockers *
// magic) >> (64 - bits) selects the square's bucket inside a shared table.
// Magic numbers are compile-time constants, never recomputed at runtime.

var bishopMagics = [64]uint64{
	0x11410121040100,
	0x2084820928010,
	0xa010208481080040,
	0x214240082000610,
	0x4d104000400480,
	0x1012010804408,
	0x42044101452000c,
	0x2844804050104880,
	0x814204290a0a00,
	0x10280688224500,
	0x1080410101010084,
	0x10020a108408004,
	0x2482020210c80080,
	0x480104a0040400,
	0x411006404200810,
	0x1024010908024292,
	0x1004401001011a,
	0x810006081220080,
	0x1040404206004100,
	0x58080000820041ce,
	0x3406000422010890,
	0x1a004100520210,
	0x202a000048040400,
	0x225004441180110,
	0x8064240102240,
	0x1424200404010402,
	0x1041100041024200,
	0x8082002012008200,
	0x1010008104000,
	0x8808004000806000,
	0x380a000080c400,
	0x31040100042d0101,
	0x110109008082220,
	0x4010880204201,
	0x4006462082100300,
	0x4002010040140041,
	0x40090200250880,
	0x2010100c40c08040,
	0x12800ac01910104,
	0x10b20051020100,
	0x210894104828c000,
	0x50440220004800,
	0x1002011044180800,
	0x4220404010410204,
	0x1002204a2020401,
	0x21021001000210,
	0x4880081009402,
	0xc208088c088e0040,
	0x4188464200080,
	0x3810440618022200,
	0xc020310401040420,
	0x2000008208800e0,
	0x4c910240020,
	0x425100a8602a0,
	0x20c4206a0c030510,
	0x4c10010801184000,
	0x200202020a026200,
	0x6000004400841080,
	0xc14004121082200,
	0x400324804208800,
	0x1802200040504100,
	0x1820000848488820,
	0x8620682a908400,
	0x8010600084204240,
}

var rookMagics = [64]uint64{
	0x2080008040002010,
	0x40200010004000,
	0x100090010200040,
	0x2080080010000480,
	0x880040080080102,
	0x8200106200042108,
	0x410041000408b200,
	0x100009a00402100,
	0x5800800020804000,
	0x848404010002000,
	0x101001820010041,
	0x10a0040100420080,
	0x8a02002006001008,
	0x926000844110200,
	0x8000800200800100,
	0x28060001008c2042,
	0x10818002204000,
	0x10004020004001,
	0x110002008002400,
	0x11a020010082040,
	0x2001010008000410,
	0x42010100080400,
	0x4004040008020110,
	0x820000840041,
	0x400080208000,
	0x2080200040005000,
	0x8000200080100080,
	0x4400080180500080,
	0x4900080080040080,
	0x4004004480020080,
	0x8006000200040108,
	0xc481000100006396,
	0x1000400080800020,
	0x201004400040,
	0x10008010802000,
	0x204012000a00,
	0x800400800802,
	0x284000200800480,
	0x3000403000200,
	0x840a6000514,
	0x4080c000228012,
	0x10002000444010,
	0x620001000808020,
	0xc210010010009,
	0x100c001008010100,
	0xc10020004008080,
	0x20100802040001,
	0x808008305420014,
	0xc010800840043080,
	0x208401020890100,
	0x10b0081020028280,
	0x6087001001220900,
	0xc080011000500,
	0x9810200040080,
	0x2000010882100400,
	0x2000050880540200,
	0x800020104200810a,
	0x6220250242008016,
	0x9180402202900a,
	0x40210500100009,
	0x6000814102026,
	0x410100080a040013,
	0x10405008022d1184,
	0x1000009400410822,
}

var bishopBits = [64]int{
	6, 5, 5, 5, 5, 5, 5, 6,
	5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 7, 7, 7, 7, 5, 5,
	5, 5, 7, 9, 9, 7, 5, 5,
	5, 5, 7, 9, 9, 7, 5, 5,
	5, 5, 7, 7, 7, 7, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5,
	6, 5, 5, 5, 5, 5, 5, 6,
}

var rookBits = [64]int{
	12, 11, 11, 11, 11, 11, 11, 12,
	11, 10, 10, 10, 10, 10, 10, 11,
	11, 10, 10, 10, 10, 10, 10, 11,
	11, 10, 10, 10, 10, 10, 10, 11,
	11, 10, 10, 10, 10, 10, 10, 11,
	11, 10, 10, 10, 10, 10, 10, 11,
	11, 10, 10, 10, 10, 10, 10, 11,
	12, 11, 11, 11, 11, 11, 11, 12,
}

var (
	bishopOccupancyMask [64]bitboard.Board
	rookOccupancyMask   [64]bitboard.Board
	// bishopTable[sq] has 2^bishopBits[sq] entries; bishopTable is sized to
	// the worst case (9 bits -> 512 entries) to keep indexing uniform.
	bishopTable [64][512]bitboard.Board
	// rookTable[sq] has up to 2^12 = 4096 entries.
	rookTable [64][4096]bitboard.Board
)

func initSliderOccupancyMasks() {
	for sq := 0; sq < 64; sq++ {
		b := bitboard.Square(sq).Bit()
		bishopOccupancyMask[sq] = genBishopRelevantOccupancy(b)
		rookOccupancyMask[sq] = genRookRelevantOccupancy(b)
	}
}

// initMagicEntry fills the bishop and rook attack buckets for sq by
// enumerating every subset of its relevant-occupancy mask.
func initMagicEntry(sq bitboard.Square) {
	bBits := bishopBits[sq]
	mask := bishopOccupancyMask[sq]
	for i := 0; i < 1<<bBits; i++ {
		occ := occupancySubset(i, bBits, mask)
		key := uint64(occ) * bishopMagics[sq] >> (64 - bBits)
		bishopTable[sq][key] = genBishopAttacks(sq.Bit(), occ)
	}

	rBits := rookBits[sq]
	mask = rookOccupancyMask[sq]
	for i := 0; i < 1<<rBits; i++ {
		occ := occupancySubset(i, rBits, mask)
		key := uint64(occ) * rookMagics[sq] >> (64 - rBits)
		rookTable[sq][key] = genRookAttacks(sq.Bit(), occ)
	}
}

// occupancySubset returns the index-th subset of mask's set bits, used to
// enumerate every possible blocker configuration during table init.
func occupancySubset(index, bitCount int, mask bitboard.Board) bitboard.Board {
	var occupancy bitboard.Board
	for i := 0; i < bitCount; i++ {
		sq := bitboard.PopLSB(&mask)
		if index&(1<<i) != 0 {
			occupancy |= sq.Bit()
		}
	}
	return occupancy
}

// genBishopAttacks rays out from bishop in all four diagonal directions
// until it runs off the board or hits a blocker (the blocker square is
// included in the result).
func genBishopAttacks(bishop, occupancy bitboard.Board) bitboard.Board {
	var attacks bitboard.Board

	for i := bishop.NorthWest(); i != 0; i = i.NorthWest() {
		attacks |= i
		if i.Overlaps(occupancy) {
			break
		}
	}
	for i := bishop.NorthEast(); i != 0; i = i.NorthEast() {
		attacks |= i
		if i.Overlaps(occupancy) {
			break
		}
	}
	for i := bishop.SouthWest(); i != 0; i = i.SouthWest() {
		attacks |= i
		if i.Overlaps(occupancy) {
			break
		}
	}
	for i := bishop.SouthEast(); i != 0; i = i.SouthEast() {
		attacks |= i
		if i.Overlaps(occupancy) {
			break
		}
	}
	return attacks
}

// genRookAttacks rays out from rook along ranks and files.
func genRookAttacks(rook, occupancy bitboard.Board) bitboard.Board {
	var attacks bitboard.Board

	for i := rook.North(); i != 0; i = i.North() {
		attacks |= i
		if i.Overlaps(occupancy) {
			break
		}
	}
	for i := rook.South(); i != 0; i = i.South() {
		attacks |= i
		if i.Overlaps(occupancy) {
			break
		}
	}
	for i := rook.East(); i != 0; i = i.East() {
		attacks |= i
		if i.Overlaps(occupancy) {
			break
		}
	}
	for i := rook.West(); i != 0; i = i.West() {
		attacks |= i
		if i.Overlaps(occupancy) {
			break
		}
	}
	return attacks
}

// genBishopRelevantOccupancy returns the squares whose occupancy actually
// changes a bishop's attack set from this square: the diagonal rays with
// the board edge excluded (an edge blocker never hides anything further).
func genBishopRelevantOccupancy(bishop bitboard.Board) bitboard.Board {
	var occ bitboard.Board
	notEdgeNW := bitboard.NotFileA & ^bitboard.Rank8
	notEdgeNE := bitboard.NotFileH & ^bitboard.Rank8
	notEdgeSW := bitboard.NotFileA & ^bitboard.Rank1
	notEdgeSE := bitboard.NotFileH & ^bitboard.Rank1

	for i := bishop.NorthWest(); i&notEdgeNW != 0; i = i.NorthWest() {
		occ |= i
	}
	for i := bishop.NorthEast(); i&notEdgeNE != 0; i = i.NorthEast() {
		occ |= i
	}
	for i := bishop.SouthWest(); i&notEdgeSW != 0; i = i.SouthWest() {
		occ |= i
	}
	for i := bishop.SouthEast(); i&notEdgeSE != 0; i = i.SouthEast() {
		occ |= i
	}
	return occ
}

// genRookRelevantOccupancy mirrors genBishopRelevantOccupancy for rooks.
func genRookRelevantOccupancy(rook bitboard.Board) bitboard.Board {
	var occ bitboard.Board
	for i := rook.North(); i&^bitboard.Rank8 != 0; i = i.North() {
		occ |= i
	}
	for i := rook.South(); i&^bitboard.Rank1 != 0; i = i.South() {
		occ |= i
	}
	for i := rook.East(); i&bitboard.NotFileH != 0; i = i.East() {
		occ |= i
	}
	for i := rook.West(); i&bitboard.NotFileA != 0; i = i.West() {
		occ |= i
	}
	return occ
}

// Bishop returns the bishop attack set from sq given the full board
// occupancy.
func Bishop(sq bitboard.Square, occupancy bitboard.Board) bitboard.Board {
	blockers := occupancy & bishopOccupancyMask[sq]
	key := uint64(blockers) * bishopMagics[sq] >> (64 - bishopBits[sq])
	return bishopTable[sq][key]
}

// Rook returns the rook attack set from sq given the full board occupancy.
func Rook(sq bitboard.Square, occupancy bitboard.Board) bitboard.Board {
	blockers := occupancy & rookOccupancyMask[sq]
	key := uint64(blockers) * rookMagics[sq] >> (64 - rookBits[sq])
	return rookTable[sq][key]
}

// Queen returns the union of the rook and bishop attack sets from sq.
func Queen(sq bitboard.Square, occupancy bitboard.Board) bitboard.Board {
	return Rook(sq, occupancy) | Bishop(sq, occupancy)
}

// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package pardd

import (
	"math/big"
	"testing"
)

// nqueens computes solutions for the N-Queen chess problem and returns the
// number of solutions. It builds a BDD with NxN variables corresponding to the
// squares in the chess board like:
//
//	0 4  8 12
//	1 5  9 13
//	2 6 10 14
//	3 7 11 15
//
// One solution is then that 2,4,11,13 should be true, meaning a queen should
// be placed there:
//
//	. X . .
//	. . . X
//	X . . .
//	. . X .
func nqueens(N int) (*big.Int, error) {
	// the arena never reclaims intermediate results, so leave ample headroom
	b, err := New(N*N, PoolSize(1<<21), CacheSize(1<<18))
	if err != nil {
		return nil, err
	}
	queen := b.True()
	X := make([][]Handle, N)
	for i := range X {
		X[i] = make([]Handle, N)
		for j := range X[i] {
			X[i][j] = b.Ithvar(i*N + j)
		}
	}
	// Place a queen in each column
	for i := 0; i < N; i++ {
		e := b.False()
		for j := 0; j < N; j++ {
			e = b.Or(e, X[i][j])
		}
		queen = b.And(queen, e)
	}

	// Build requirements for each variable(field)
	for i := 0; i < N; i++ {
		for j := 0; j < N; j++ {
			// No one in the same column
			a := b.True()
			for k := 0; k < N; k++ {
				if k != j {
					a = b.And(a, b.Imp(X[i][j], b.Not(X[i][k])))
				}
			}
			// No one in the same row
			r := b.True()
			for k := 0; k < N; k++ {
				if k != i {
					r = b.And(r, b.Imp(X[i][j], b.Not(X[k][j])))
				}
			}
			// No one in the same down-right diagonal
			c := b.True()
			for k := 0; k < N; k++ {
				ll := k - i + j
				if ll >= 0 && ll < N {
					if k != i {
						c = b.And(c, b.Imp(X[i][j], b.Not(X[k][ll])))
					}
				}
			}
			// No one in the same up-right diagonal
			d := b.True()
			for k := 0; k < N; k++ {
				ll := i + j - k
				if ll >= 0 && ll < N {
					if k != i {
						d = b.And(d, b.Imp(X[i][j], b.Not(X[k][ll])))
					}
				}
			}
			queen = b.And(queen, a, r, c, d)
		}
	}
	if err := b.Err(); err != nil {
		return nil, err
	}
	return b.Satcount(queen), nil
}

func TestNQueens(t *testing.T) {
	var nqueensTests = []struct {
		N        int
		expected int64
	}{
		{4, 2},
		{5, 10},
		{6, 4},
		{8, 92},
	}
	for _, tt := range nqueensTests {
		actual, err := nqueens(tt.N)
		if err != nil {
			t.Fatal(err)
		}
		if actual.Cmp(big.NewInt(tt.expected)) != 0 {
			t.Errorf("error in NQueens(%d), expected %d, actual %s", tt.N, tt.expected, actual)
		}
	}
}

func BenchmarkNQueens(b *testing.B) {
	for n := 0; n < b.N; n++ {
		if _, err := nqueens(8); err != nil {
			b.Error(err)
		}
	}
}

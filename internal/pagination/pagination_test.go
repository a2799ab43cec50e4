package pagination_test

import (
	"math"
	"testing"

	"github.com/saulo-duarte/trivia-lambda/internal/pagination"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestParsePage(t *testing.T) {
	cases := map[string]int{
		"":    1,
		"abc": 1,
		"1.5": 1,
		"3":   3,
		"0":   0,
		"-2":  -2,
	}
	for raw, want := range cases {
		if got := pagination.ParsePage(raw); got != want {
			t.Errorf("ParsePage(%q) = %d, want %d", raw, got, want)
		}
	}
}

func TestPaginateLength(t *testing.T) {
	for _, n := range []int{0, 1, 9, 10, 11, 25, 40} {
		items := seq(n)
		for p := 1; p <= 6; p++ {
			want := n - (p-1)*pagination.PageSize
			if want < 0 {
				want = 0
			}
			if want > pagination.PageSize {
				want = pagination.PageSize
			}

			got := pagination.Paginate(items, p)
			if len(got) != want {
				t.Fatalf("n=%d page=%d: expected %d items, got %d", n, p, want, len(got))
			}
			for i, v := range got {
				if expected := (p-1)*pagination.PageSize + i + 1; v != expected {
					t.Fatalf("n=%d page=%d: item %d = %d, want %d", n, p, i, v, expected)
				}
			}
		}
	}
}

func TestPaginateEdges(t *testing.T) {
	t.Run("NonPositivePage", func(t *testing.T) {
		for _, p := range []int{0, -1} {
			got := pagination.Paginate(seq(15), p)
			if got == nil || len(got) != 0 {
				t.Errorf("page %d: expected empty non-nil slice, got %v", p, got)
			}
		}
	})

	t.Run("BeyondLastPage", func(t *testing.T) {
		got := pagination.Paginate(seq(15), 2000)
		if got == nil || len(got) != 0 {
			t.Errorf("expected empty non-nil slice, got %v", got)
		}
	})

	t.Run("HugePageDoesNotOverflow", func(t *testing.T) {
		for _, p := range []int{math.MaxInt/pagination.PageSize + 2, math.MaxInt} {
			got := pagination.Paginate(seq(15), p)
			if got == nil || len(got) != 0 {
				t.Errorf("page %d: expected empty non-nil slice, got %v", p, got)
			}
		}
	})

	t.Run("DoesNotAliasInput", func(t *testing.T) {
		items := seq(5)
		got := pagination.Paginate(items, 1)
		got[0] = 99
		if items[0] != 1 {
			t.Error("Paginate must return a copy of the page")
		}
	})
}

package iterators_test

import (
	"errors"
	"testing"

	"github.com/matryer/is"

	"github.com/hasbyte1/go-collection-views/funcs"
	"github.com/hasbyte1/go-collection-views/iterators"
)

func even(n int) bool { return n%2 == 0 }

func TestOf(t *testing.T) {
	is := is.New(t)

	it := iterators.Of(1, 2, 3)

	is.Equal(iterators.Collect(it), []int{1, 2, 3})
	is.True(!it.HasNext())
	is.True(errors.Is(iterators.Of(1).Remove(), iterators.ErrRemoveUnsupported))
}

func TestFilter(t *testing.T) {
	is := is.New(t)

	it := iterators.Filter(iterators.Of(1, 2, 3, 4, 5), even)

	is.Equal(iterators.Collect(it), []int{2, 4})
}

func TestFilter_NoMatch(t *testing.T) {
	is := is.New(t)

	it := iterators.Filter(iterators.Of(1, 3, 5), even)

	is.True(!it.HasNext())
}

func TestFilter_StagesAhead(t *testing.T) {
	is := is.New(t)

	// HasNext must already know whether a satisfying element exists,
	// without consuming it.
	it := iterators.Filter(iterators.Of(1, 2), even)

	is.True(it.HasNext())
	is.True(it.HasNext())
	is.Equal(it.Next(), 2)
	is.True(!it.HasNext())
}

func TestFilter_RemoveUnsupported(t *testing.T) {
	is := is.New(t)

	it := iterators.Filter(iterators.Of(2, 4), even)
	it.Next()

	is.True(errors.Is(it.Remove(), iterators.ErrRemoveUnsupported))
}

func TestFilter_ExhaustedNextPanics(t *testing.T) {
	is := is.New(t)

	it := iterators.Filter(iterators.Of(1), even)

	defer func() {
		is.Equal(recover(), iterators.ErrNoSuchElement)
	}()
	it.Next()
}

func TestMap(t *testing.T) {
	is := is.New(t)

	it := iterators.Map(iterators.Of("a", "bb", "ccc"), func(s string) int { return len(s) })

	is.Equal(iterators.Collect(it), []int{1, 2, 3})
}

func TestMap_RemoveForwards(t *testing.T) {
	is := is.New(t)

	// Of does not support removal; the mapped iterator must surface the
	// source's answer unchanged.
	it := iterators.Map(iterators.Of(1, 2), func(n int) int { return n * 2 })
	it.Next()

	is.True(errors.Is(it.Remove(), iterators.ErrRemoveUnsupported))
}

func TestSize(t *testing.T) {
	is := is.New(t)

	is.Equal(iterators.Size(iterators.Of(1, 2, 3)), 3)
	is.Equal(iterators.Size(iterators.Of[int]()), 0)
}

func TestAnyAll(t *testing.T) {
	is := is.New(t)

	is.True(iterators.Any(iterators.Of(1, 2, 3), even))
	is.True(!iterators.Any(iterators.Of(1, 3), even))
	is.True(iterators.All(iterators.Of(2, 4), even))
	is.True(!iterators.All(iterators.Of(2, 3), even))
	is.True(iterators.All(iterators.Of[int](), even))
}

func TestContains(t *testing.T) {
	is := is.New(t)

	is.True(iterators.Contains(iterators.Of(1, 2, 3), 2, funcs.Eq[int]()))
	is.True(!iterators.Contains(iterators.Of(1, 2, 3), 9, funcs.Eq[int]()))
}

func TestElementsEqual(t *testing.T) {
	is := is.New(t)

	eq := funcs.Eq[int]()

	is.True(iterators.ElementsEqual(iterators.Of(1, 2), iterators.Of(1, 2), eq))
	is.True(!iterators.ElementsEqual(iterators.Of(1, 2), iterators.Of(1, 2, 3), eq))
	is.True(!iterators.ElementsEqual(iterators.Of(1, 2, 3), iterators.Of(1, 2), eq))
	is.True(!iterators.ElementsEqual(iterators.Of(1, 2), iterators.Of(2, 1), eq))
}

func TestRemoveIf_UnsupportedSource(t *testing.T) {
	is := is.New(t)

	changed, err := iterators.RemoveIf(iterators.Of(1, 2, 3), even)

	is.True(!changed)
	is.True(errors.Is(err, iterators.ErrRemoveUnsupported))
}

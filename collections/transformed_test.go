package collections_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/matryer/is"

	"github.com/hasbyte1/go-collection-views/collections"
	"github.com/hasbyte1/go-collection-views/funcs"
	"github.com/hasbyte1/go-collection-views/lists"
)

func TestTransform_Observes(t *testing.T) {
	is := is.New(t)

	source := lists.New("a", "bb", "ccc")
	view := collections.Transform[string, int](source, func(s string) int { return len(s) })

	is.Equal(view.ToSlice(), []int{1, 2, 3})
}

func TestTransform_SizeAlwaysMatchesSource(t *testing.T) {
	is := is.New(t)

	source := lists.New(1, 2, 3)
	view := collections.Transform[int, string](source, strconv.Itoa)

	is.Equal(view.Size(), 3)

	is.NoErr(source.Add(4))
	is.Equal(view.Size(), source.Size())

	is.NoErr(source.Clear())
	is.Equal(view.Size(), 0)
	is.True(view.IsEmpty())
}

func TestTransform_AddUnsupported(t *testing.T) {
	is := is.New(t)

	view := collections.Transform[int, string](lists.New(1), strconv.Itoa)

	is.True(errors.Is(view.Add("2"), collections.ErrUnsupportedOperation))
	is.True(errors.Is(view.AddAll([]string{"2", "3"}), collections.ErrUnsupportedOperation))
}

func TestTransform_ClearForwards(t *testing.T) {
	is := is.New(t)

	source := lists.New(1, 2, 3)
	view := collections.Transform[int, string](source, strconv.Itoa)

	is.NoErr(view.Clear())
	is.True(source.IsEmpty())
}

func TestTransform_IteratorRemoveForwards(t *testing.T) {
	is := is.New(t)

	source := lists.New("a", "bb", "ccc")
	view := collections.Transform[string, int](source, func(s string) int { return len(s) })

	it := view.Iterator()
	is.Equal(it.Next(), 1)
	is.Equal(it.Next(), 2)
	is.NoErr(it.Remove()) // removes "bb" from the source

	is.Equal(source.ToSlice(), []string{"a", "ccc"})
	is.Equal(view.ToSlice(), []int{1, 3})
}

func TestTransform_RemoveValue(t *testing.T) {
	is := is.New(t)

	source := lists.New("a", "bb", "ccc")
	view := collections.Transform[string, int](source, func(s string) int { return len(s) })

	removed, err := view.Remove(2, funcs.Eq[int]())
	is.NoErr(err)
	is.True(removed)
	is.Equal(source.ToSlice(), []string{"a", "ccc"})

	removed, err = view.Remove(9, funcs.Eq[int]())
	is.NoErr(err)
	is.True(!removed)
}

func TestTransform_RemoveAllRetainAll(t *testing.T) {
	is := is.New(t)

	source := lists.New("a", "bb", "ccc", "dd")
	view := collections.Transform[string, int](source, func(s string) int { return len(s) })

	changed, err := view.RemoveAll([]int{2}, funcs.Eq[int]())
	is.NoErr(err)
	is.True(changed)
	is.Equal(source.ToSlice(), []string{"a", "ccc"})

	changed, err = view.RetainAll([]int{3}, funcs.Eq[int]())
	is.NoErr(err)
	is.True(changed)
	is.Equal(source.ToSlice(), []string{"ccc"})
}

func TestTransform_Contains(t *testing.T) {
	is := is.New(t)

	view := collections.Transform[int, string](lists.New(1, 2), strconv.Itoa)

	is.True(view.Contains("2", funcs.Eq[string]()))
	is.True(!view.Contains("3", funcs.Eq[string]()))
	is.True(view.ContainsAll([]string{"1", "2"}, funcs.Eq[string]()))
}

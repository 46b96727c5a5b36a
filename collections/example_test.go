package collections_test

import (
	"fmt"

	"github.com/hasbyte1/go-collection-views/collections"
	"github.com/hasbyte1/go-collection-views/funcs"
	"github.com/hasbyte1/go-collection-views/lists"
)

func ExampleFilter() {
	source := lists.New(1, 2, 3, 4, 5)
	evens := collections.Filter[int](source, func(n int) bool { return n%2 == 0 })

	fmt.Println(evens.ToSlice())

	evens.Add(6) // writes through to source
	fmt.Println(source.ToSlice())
	fmt.Println(evens.ToSlice())
	// Output:
	// [2 4]
	// [1 2 3 4 5 6]
	// [2 4 6]
}

func ExampleTransform() {
	source := lists.New("a", "bb", "ccc")
	lengths := collections.Transform[string, int](source, func(s string) int { return len(s) })

	fmt.Println(lengths.ToSlice())

	source.Add("dddd") // the view is live
	fmt.Println(lengths.ToSlice())
	// Output:
	// [1 2 3]
	// [1 2 3 4]
}

func ExampleSafeContains() {
	ints := lists.New[any](1, 2, 3)
	eq := func(a, b any) bool { return a.(int) == b.(int) }

	fmt.Println(collections.SafeContains[any](ints, 2, eq))
	fmt.Println(collections.SafeContains[any](ints, "not-an-int", eq))
	// Output:
	// true
	// false
}

func ExampleFormat() {
	l := lists.New[any]("x", "y")
	l.Add(l) // self-containing

	fmt.Println(collections.Format[any](l))
	// Output: [x, y, (this Container)]
}

func ExampleFilter_composed() {
	source := lists.New(1, 2, 3, 4, 5, 6, 7, 8)
	even := funcs.Predicate[int](func(n int) bool { return n%2 == 0 })
	big := funcs.Predicate[int](func(n int) bool { return n > 4 })

	// filtering a filtered view flattens into one conjunction
	view := collections.Filter(collections.Filter(source, even), big)
	fmt.Println(view.ToSlice())
	// Output: [6 8]
}

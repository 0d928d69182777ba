package vector_test

import (
	"errors"
	"fmt"

	"github.com/Fishytek/Vector/container/vector"
)

func ExampleVector() {
	v := vector.Of(1, 2, 3)
	v.PushBack(4)

	fmt.Println(v, v.Len(), v.Cap())

	v.Erase(v.Begin() + 2)
	v.Insert(v.Begin(), 0)

	fmt.Println(v, v.Len(), v.Cap())

	// Output:
	// [1 2 3 4] 4 6
	// [0 1 2 4] 4 6
}

func ExampleVector_PushBack() {
	v := vector.New[string]()
	for _, s := range []string{"a", "b", "c", "d", "e"} {
		v.PushBack(s)
		fmt.Print(v.Cap(), " ")
	}
	fmt.Println()

	// Output:
	// 1 2 4 4 8
}

func ExampleVector_At() {
	v := vector.Of(10, 20)

	if p, err := v.At(1); err == nil {
		fmt.Println(*p)
	}

	_, err := v.At(2)
	fmt.Println(errors.Is(err, vector.ErrOutOfRange))
	fmt.Println(err)

	// Output:
	// 20
	// true
	// vector: index out of range: index 2, size 2
}

func ExampleVector_Resize() {
	v := vector.WithReserve[int](vector.Reserve(2))
	v.PushBack(1)

	v.Resize(5)
	fmt.Println(v, v.Cap())

	v.Resize(1)
	fmt.Println(v, v.Cap())

	// Output:
	// [1 0 0 0 0] 5
	// [1] 5
}

func ExampleMove() {
	src := vector.Of("x", "y")
	dst := vector.Move(src)

	fmt.Println(dst, src.Len(), src.Cap())

	// Output:
	// [x y] 0 0
}

func ExampleLess() {
	a := vector.Of(1, 2, 3)
	b := vector.Of(1, 2, 4)

	fmt.Println(vector.Equal(a, a.Clone()), vector.Less(a, b), vector.GreaterOrEqual(a, b))

	// Output:
	// true true false
}

package rtree_test

import (
	"fmt"
	"os"

	"github.com/rectree/rtree"
)

func Example() {
	tree, err := rtree.New(4, rtree.Rect{})
	if err != nil {
		panic(err)
	}
	for i := 0; i < 5; i++ {
		f := float64(i * 5)
		_ = tree.Insert(rtree.Rect{MinX: f, MinY: f, MaxX: f + 1, MaxY: f + 1})
	}

	fmt.Println(tree.Query(rtree.Rect{MinX: 0, MinY: 0, MaxX: 21, MaxY: 21}))
	fmt.Println(tree.Query(rtree.Rect{MinX: 4, MinY: 4, MaxX: 9, MaxY: 9}))
	fmt.Println(tree.Delete(rtree.Rect{MinX: 5, MinY: 5, MaxX: 6, MaxY: 6}))
	fmt.Println(tree.Query(rtree.Rect{MinX: 4, MinY: 4, MaxX: 9, MaxY: 9}))
	// Output:
	// [[0,0,1,1] [5,5,6,6] [10,10,11,11] [15,15,16,16] [20,20,21,21]]
	// [[5,5,6,6]]
	// true
	// []
}

func ExampleNewRect() {
	_, err := rtree.NewRect(1, 0, 0, 1)
	fmt.Println(err)
	// Output: rtree: invalid geometry: [1,0,0,1]
}

func ExampleRTree_Fprint() {
	tree, _ := rtree.New(3, rtree.Rect{}) // Ignore error ONLY to keep example simple.
	for _, r := range []rtree.Rect{
		{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1},
		{MinX: 0, MinY: 2, MaxX: 1, MaxY: 3},
		{MinX: 8, MinY: 0, MaxX: 9, MaxY: 1},
		{MinX: 8, MinY: 2, MaxX: 9, MaxY: 3},
	} {
		_ = tree.Insert(r)
	}
	_ = tree.Fprint(os.Stdout)
	// Output:
	// [0,0,9,3]
	// ├── [0,0,1,3]
	// │   ├── [0,0,1,1]
	// │   └── [0,2,1,3]
	// └── [8,0,9,3]
	//     ├── [8,0,9,1]
	//     └── [8,2,9,3]
}

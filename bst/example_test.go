package bst_test

import (
	"fmt"

	"github.com/katalvlaran/drills/bintree"
	"github.com/katalvlaran/drills/bst"
)

// ExampleSecondLargest builds
//
//	      5
//	    /   \
//	   3     8
//	  / \   / \
//	 1   4 7   9
//
// and walks 5 → 8, where the right child 9 is a leaf.
func ExampleSecondLargest() {
	root := bintree.FromValues(5, 3, 8, 1, 4, 7, 9)

	v, err := bst.SecondLargest(root)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(v)
	// Output:
	// 8
}

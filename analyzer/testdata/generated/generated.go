// Code generated by hand. DO NOT EDIT.

package generated

func check(x int) bool {
	return x > 12 // want "magic number 12 in greater than comparison"
}

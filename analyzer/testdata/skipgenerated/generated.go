// Code generated by hand. DO NOT EDIT.

package skipgenerated

func check(x int) bool {
	return x > 12
}

package basicauth

import "runtime"

// Wipe sets every byte in x to zero.
//
// It is used to scrub the intermediate "username:password"
// buffers built by Header and Parse.
//
//go:noinline
func Wipe(x []byte) {
	// Marked "noinline" so that the compiler cannot peer inside,
	// notice the stores are never read, and elide them.
	for i := range x {
		x[i] = 0
	}
	// KeepAlive nudges the compiler away from DCEing the
	// for-loop.
	runtime.KeepAlive(x)
}

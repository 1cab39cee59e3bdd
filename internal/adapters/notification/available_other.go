//go:build !linux

package notification

// Available reports whether desktop notifications can be delivered. The
// platform notification center is always present.
func Available() error {
	return nil
}

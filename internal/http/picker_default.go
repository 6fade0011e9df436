//go:build !mollie_stdlib

package http

func init() {
	RegisterDefault(func(opts Options) Adapter {
		return NewDefaultRetryableAdapter(opts)
	})
}

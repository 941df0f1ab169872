//go:build gtxt

package atlas

// Returns the backend used by [New](). Without Ebitengine (gtxt
// version), this is an [ImageBackend].
func DefaultBackend() Backend { return ImageBackend{} }

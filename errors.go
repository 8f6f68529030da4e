package potrace

import "errors"

// Error taxonomy (spec 7, "Error Handling Design"). Each sentinel is
// wrapped with call-site context via fmt.Errorf's %w, the way the teacher
// wraps context.go's dimension check and checks accelerator.go's
// ErrFallbackToCPU with errors.Is.
var (
	// ErrInvalidParameter is returned by SetParameters when a setter
	// rejects its input: an unknown key, a value of the wrong kind, a
	// value out of range, or a non-increasing/out-of-0..255 steps list.
	ErrInvalidParameter = errors.New("potrace: invalid parameter")

	// ErrUnloadedImage is returned by GetPathTag/GetSVG/GetSymbol when
	// called before a successful LoadImage.
	ErrUnloadedImage = errors.New("potrace: no image loaded")

	// ErrImageDecodingFailed is returned when a loader could not produce
	// a usable pixel grid from its input.
	ErrImageDecodingFailed = errors.New("potrace: image decoding failed")

	// ErrAllocationFailure is returned when an internal array allocation
	// fails; partial results are discarded and the instance is left in
	// its previous consistent state.
	ErrAllocationFailure = errors.New("potrace: allocation failure")

	// ErrOptimizationIncomplete is a non-fatal status: curve optimization
	// aborted and the engine fell back to the unoptimized curve. The
	// per-path stage wraps it with %w, so errors.Is finds it there;
	// ProcessPaths reports it as its optIncomplete result, and
	// GetSVG/GetPathTag do not treat it as fatal.
	ErrOptimizationIncomplete = errors.New("potrace: curve optimization incomplete, using unoptimized curve")
)

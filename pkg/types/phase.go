// Render phases of a list view.
package types

// Phase is the render state of a mounted view. Exactly one of Loading,
// Failed or Loaded; the error text lives only on Failed.
type Phase interface {
	isPhase()
	String() string
}

// Loading is the initial phase of every mount.
type Loading struct{}

// Failed carries the human-readable description of a fetch failure.
type Failed struct {
	Message string
}

// Loaded means the collection has been fetched and normalized.
type Loaded struct{}

func (Loading) isPhase() {}
func (Failed) isPhase()  {}
func (Loaded) isPhase()  {}

func (Loading) String() string { return "loading" }
func (Failed) String() string  { return "error" }
func (Loaded) String() string  { return "loaded" }

// State is the phase plus the collection of a mounted view.
type State[T any] struct {
	Phase Phase
	Items []T
}

// IsLoading reports whether p is the Loading phase.
func IsLoading(p Phase) bool {
	_, ok := p.(Loading)
	return ok
}

// FailureMessage returns the message of a Failed phase.
func FailureMessage(p Phase) (string, bool) {
	f, ok := p.(Failed)
	if !ok {
		return "", false
	}
	return f.Message, true
}

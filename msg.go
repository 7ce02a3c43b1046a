package elm

// Msg is a tagged message fed into the dispatch loop. Name returns the
// discriminator used for handler-map lookup; the payload is whatever
// the concrete type carries.
//
// Example:
//
//	type Increment struct{ By int }
//
//	func (Increment) Name() string { return "Increment" }
type Msg interface {
	Name() string
}

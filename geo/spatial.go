package geo

// Spatial is the capability an object must provide to be held in a spatial
// index: it yields its current axis-aligned bounding envelope.
//
// An index never interprets the object beyond its envelope and treats two
// objects as the same by Go equality of the interface value. Implementations
// should therefore use pointer receivers, making identity pointer identity.
type Spatial interface {
	Envelope() Envelope
}

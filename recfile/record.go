package recfile

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spatialkit/boxtree/geo"
)

// Record is a named spatial record with a stable identity, suitable for
// indexing in a boxtree (it implements geo.Spatial through its pointer type).
type Record struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	MinX float64   `json:"minx"`
	MinY float64   `json:"miny"`
	MinZ float64   `json:"minz"`
	MaxX float64   `json:"maxx"`
	MaxY float64   `json:"maxy"`
	MaxZ float64   `json:"maxz"`
}

// New creates a record with a fresh identity from a name and an envelope.
func New(name string, env geo.Envelope) *Record {
	return &Record{
		ID:   uuid.New(),
		Name: name,
		MinX: env.MinX, MinY: env.MinY, MinZ: env.MinZ,
		MaxX: env.MaxX, MaxY: env.MaxY, MaxZ: env.MaxZ,
	}
}

// Envelope implements geo.Spatial for *Record.
func (r *Record) Envelope() geo.Envelope {
	return geo.Envelope{
		MinX: r.MinX, MinY: r.MinY, MinZ: r.MinZ,
		MaxX: r.MaxX, MaxY: r.MaxY, MaxZ: r.MaxZ,
	}
}

func (r *Record) String() string {
	return fmt.Sprintf("%s %s", r.Name, r.Envelope())
}

// Package entity maintains the client's entity table: {entityId, type,
// position, velocity, yaw, pitch, metadata} bounded by a SpawnXxx packet
// and a DestroyEntities packet (spec.md §3), and the entity factory/kinds
// supplement of SPEC_FULL.md §10 grounded on
// original_source/mclib/entity/EntityFactory.h and entity/XPOrb.h.
package entity

import "github.com/google/uuid"

// Kind identifies the category of entity a SpawnXxx packet introduced.
// Replaces the source's per-kind class hierarchy (EntityFactory producing
// Zombie, Skeleton, XPOrb, ...) with a single struct tagged by Kind, per
// spec.md §9.
type Kind int

const (
	KindUnknown Kind = iota
	KindObject
	KindMob
	KindPlayer
	KindExperienceOrb
	KindGlobal
	KindPainting
)

func (k Kind) String() string {
	switch k {
	case KindObject:
		return "Object"
	case KindMob:
		return "Mob"
	case KindPlayer:
		return "Player"
	case KindExperienceOrb:
		return "ExperienceOrb"
	case KindGlobal:
		return "Global"
	case KindPainting:
		return "Painting"
	default:
		return "Unknown"
	}
}

// Entity is one live entity in the client's world model.
type Entity struct {
	EntityID int32
	UUID     uuid.UUID
	Kind     Kind
	TypeID   int32 // object type / mob type / painting motive, per Kind

	X, Y, Z       float64
	VX, VY, VZ    int16 // raw velocity units, as carried on the wire
	Yaw, Pitch    float32
	HeadPitch     float32
	OnGround      bool

	// Metadata holds decoded entity-metadata entries keyed by index; mclib
	// does not interpret them further, mirroring the registry's
	// read-only-after-init posture (spec.md §5) toward data it has no
	// semantic need to understand.
	Metadata map[uint8]any
}

// NewEntity returns a freshly-spawned entity at the given position.
func NewEntity(entityID int32, kind Kind, typeID int32, x, y, z float64) *Entity {
	return &Entity{
		EntityID: entityID,
		Kind:     kind,
		TypeID:   typeID,
		X:        x,
		Y:        y,
		Z:        z,
		Metadata: make(map[uint8]any),
	}
}

// ApplyRelativeMove applies a delta-encoded position update (the wire's
// 1/4096-block fixed-point deltas, already converted to float by the
// caller).
func (e *Entity) ApplyRelativeMove(dx, dy, dz float64) {
	e.X += dx
	e.Y += dy
	e.Z += dz
}

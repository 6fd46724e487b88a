package world

import "github.com/Lemiort/mclib/nbt"

// BlockEntityKind identifies the variant of a BlockEntity's payload.
// Replaces the source's block-entity class hierarchy with a tagged
// variant, per spec.md §9: "shared behaviour becomes a capability the
// variant implements, not a vtable slot."
type BlockEntityKind string

const (
	BlockEntityChest    BlockEntityKind = "minecraft:chest"
	BlockEntitySign     BlockEntityKind = "minecraft:sign"
	BlockEntityBeacon   BlockEntityKind = "minecraft:beacon"
	BlockEntityFurnace  BlockEntityKind = "minecraft:furnace"
	BlockEntityMobSpawn BlockEntityKind = "minecraft:mob_spawner"
	BlockEntityUnknown  BlockEntityKind = "unknown"
)

// BlockEntity is the per-coordinate structured payload carried alongside
// the bulk voxel data (spec.md GLOSSARY). mclib does not decode the
// NBT into kind-specific fields; it retains the raw compound so a caller
// that understands a given kind can read it, mirroring how the bulk
// voxel decoder itself performs no block-specific interpretation.
type BlockEntity struct {
	X, Y, Z int
	Kind    BlockEntityKind
	Data    nbt.NBT
}

// NewBlockEntity constructs a BlockEntity from a decoded NBT compound,
// reading the kind from the compound's "id" string tag when present.
func NewBlockEntity(x, y, z int, data nbt.NBT) *BlockEntity {
	kind := BlockEntityUnknown
	if s, ok := data.Root()["id"].(*nbt.String); ok {
		kind = BlockEntityKind(s.Value)
	}
	return &BlockEntity{X: x, Y: y, Z: z, Kind: kind, Data: data}
}

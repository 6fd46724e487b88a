package in

import (
	"github.com/Lemiort/mclib/nbt"
	"github.com/Lemiort/mclib/packets"
	"github.com/Lemiort/mclib/protocol"
	"github.com/Lemiort/mclib/world"
)

// JoinGame transitions the client into a fully-initialised Play session.
type JoinGame struct {
	EntityID     int32
	Gamemode     uint8
	Dimension    int32
	Difficulty   uint8
	MaxPlayers   uint8
	LevelType    string
	ReducedDebug bool
}

func (*JoinGame) Kind() string { return "JoinGame" }
func (p *JoinGame) Deserialize(buf packets.Reader, _ protocol.Version) error {
	var err error
	if p.EntityID, err = buf.ReadInt(); err != nil {
		return err
	}
	if p.Gamemode, err = buf.ReadUByte(); err != nil {
		return err
	}
	dim, err := buf.ReadInt()
	if err != nil {
		return err
	}
	p.Dimension = dim
	if p.Difficulty, err = buf.ReadUByte(); err != nil {
		return err
	}
	if p.MaxPlayers, err = buf.ReadUByte(); err != nil {
		return err
	}
	if p.LevelType, err = buf.ReadString(); err != nil {
		return err
	}
	p.ReducedDebug, err = buf.ReadBool()
	return err
}

// KeepAlive must be echoed immediately (spec.md §4.6).
type KeepAlive struct {
	Payload int64
}

func (*KeepAlive) Kind() string { return "KeepAlive" }
func (p *KeepAlive) Deserialize(buf packets.Reader, _ protocol.Version) (err error) {
	p.Payload, err = buf.ReadLong()
	return
}

// PlayerPositionAndLook is the server's authoritative position sync; an
// inbound instance must trigger an automatic TeleportConfirm reply
// (spec.md §4.6).
type PlayerPositionAndLook struct {
	X, Y, Z    float64
	Yaw, Pitch float32
	Flags      uint8
	TeleportID int32
}

func (*PlayerPositionAndLook) Kind() string { return "PlayerPositionAndLook" }
func (p *PlayerPositionAndLook) Deserialize(buf packets.Reader, _ protocol.Version) error {
	var err error
	if p.X, err = buf.ReadDouble(); err != nil {
		return err
	}
	if p.Y, err = buf.ReadDouble(); err != nil {
		return err
	}
	if p.Z, err = buf.ReadDouble(); err != nil {
		return err
	}
	if p.Yaw, err = buf.ReadFloat(); err != nil {
		return err
	}
	if p.Pitch, err = buf.ReadFloat(); err != nil {
		return err
	}
	if p.Flags, err = buf.ReadUByte(); err != nil {
		return err
	}
	p.TeleportID, err = buf.ReadVarInt()
	return err
}

// SetSlot updates a single inventory slot, or the cursor when
// WindowID==-1 (spec.md §4.8).
type SetSlot struct {
	WindowID  int8
	SlotIndex int16
	Item      packets.Slot
}

func (*SetSlot) Kind() string { return "SetSlot" }
func (p *SetSlot) Deserialize(buf packets.Reader, version protocol.Version) error {
	var err error
	if p.WindowID, err = buf.ReadInt8(); err != nil {
		return err
	}
	if p.SlotIndex, err = buf.ReadShort(); err != nil {
		return err
	}
	return p.Item.Deserialize(buf, version)
}

// WindowItems overwrites every slot of a window at once.
type WindowItems struct {
	WindowID uint8
	Items    []packets.Slot
}

func (*WindowItems) Kind() string { return "WindowItems" }
func (p *WindowItems) Deserialize(buf packets.Reader, version protocol.Version) error {
	var err error
	if p.WindowID, err = buf.ReadUByte(); err != nil {
		return err
	}
	count, err := buf.ReadShort()
	if err != nil {
		return err
	}
	p.Items = make([]packets.Slot, count)
	for i := range p.Items {
		if err := p.Items[i].Deserialize(buf, version); err != nil {
			return err
		}
	}
	return nil
}

// OpenWindow replaces any existing inventory at WindowID (spec.md §4.8).
type OpenWindow struct {
	WindowID   uint8
	WindowType string
	Title      string
	SlotCount  uint8
}

func (*OpenWindow) Kind() string { return "OpenWindow" }
func (p *OpenWindow) Deserialize(buf packets.Reader, _ protocol.Version) error {
	var err error
	if p.WindowID, err = buf.ReadUByte(); err != nil {
		return err
	}
	if p.WindowType, err = buf.ReadString(); err != nil {
		return err
	}
	if p.Title, err = buf.ReadString(); err != nil {
		return err
	}
	p.SlotCount, err = buf.ReadUByte()
	return err
}

// ConfirmTransaction reports server acceptance/rejection of a queued
// click (spec.md §4.8).
type ConfirmTransaction struct {
	WindowID int8
	ActionID int16
	Accepted bool
}

func (*ConfirmTransaction) Kind() string { return "ConfirmTransaction" }
func (p *ConfirmTransaction) Deserialize(buf packets.Reader, _ protocol.Version) error {
	var err error
	if p.WindowID, err = buf.ReadInt8(); err != nil {
		return err
	}
	if p.ActionID, err = buf.ReadShort(); err != nil {
		return err
	}
	p.Accepted, err = buf.ReadBool()
	return err
}

// SpawnObject introduces a non-living entity (item frame, arrow, boat, ...).
type SpawnObject struct {
	EntityID int32
	Type     int8
	X, Y, Z  float64
	Pitch, Yaw float32
	Data     int32
	VelocityX, VelocityY, VelocityZ int16
}

func (*SpawnObject) Kind() string { return "SpawnObject" }
func (p *SpawnObject) Deserialize(buf packets.Reader, _ protocol.Version) error {
	var err error
	if p.EntityID, err = buf.ReadVarInt(); err != nil {
		return err
	}
	if _, err = buf.ReadUUID(); err != nil { // object UUID, unused
		return err
	}
	if p.Type, err = buf.ReadInt8(); err != nil {
		return err
	}
	if p.X, err = buf.ReadDouble(); err != nil {
		return err
	}
	if p.Y, err = buf.ReadDouble(); err != nil {
		return err
	}
	if p.Z, err = buf.ReadDouble(); err != nil {
		return err
	}
	if p.Pitch, err = readAngle(buf); err != nil {
		return err
	}
	if p.Yaw, err = readAngle(buf); err != nil {
		return err
	}
	if p.Data, err = buf.ReadInt(); err != nil {
		return err
	}
	if p.VelocityX, err = buf.ReadShort(); err != nil {
		return err
	}
	if p.VelocityY, err = buf.ReadShort(); err != nil {
		return err
	}
	p.VelocityZ, err = buf.ReadShort()
	return err
}

// readAngle reads a packed-byte angle (256ths of a turn) as degrees.
func readAngle(buf packets.Reader) (float32, error) {
	b, err := buf.ReadInt8()
	if err != nil {
		return 0, err
	}
	return float32(b) * (360.0 / 256.0), nil
}

// SpawnMob introduces a living entity.
type SpawnMob struct {
	EntityID   int32
	Type       int32
	X, Y, Z    float64
	Yaw, Pitch, HeadPitch float32
	VelocityX, VelocityY, VelocityZ int16
}

func (*SpawnMob) Kind() string { return "SpawnMob" }
func (p *SpawnMob) Deserialize(buf packets.Reader, _ protocol.Version) error {
	var err error
	if p.EntityID, err = buf.ReadVarInt(); err != nil {
		return err
	}
	if _, err = buf.ReadUUID(); err != nil {
		return err
	}
	if p.Type, err = buf.ReadVarInt(); err != nil {
		return err
	}
	if p.X, err = buf.ReadDouble(); err != nil {
		return err
	}
	if p.Y, err = buf.ReadDouble(); err != nil {
		return err
	}
	if p.Z, err = buf.ReadDouble(); err != nil {
		return err
	}
	if p.Yaw, err = readAngle(buf); err != nil {
		return err
	}
	if p.Pitch, err = readAngle(buf); err != nil {
		return err
	}
	if p.HeadPitch, err = readAngle(buf); err != nil {
		return err
	}
	if p.VelocityX, err = buf.ReadShort(); err != nil {
		return err
	}
	if p.VelocityY, err = buf.ReadShort(); err != nil {
		return err
	}
	if p.VelocityZ, err = buf.ReadShort(); err != nil {
		return err
	}
	// SpawnMob's trailing entity-metadata array is left unparsed: each
	// entry's value width depends on its declared type id, and mclib
	// carries no per-version metadata-type registry (SPEC_FULL.md §9).
	// Nothing downstream reads past this point for this packet.
	return nil
}

// SpawnPlayer introduces another player entity.
type SpawnPlayer struct {
	EntityID   int32
	X, Y, Z    float64
	Yaw, Pitch float32
}

func (*SpawnPlayer) Kind() string { return "SpawnPlayer" }
func (p *SpawnPlayer) Deserialize(buf packets.Reader, _ protocol.Version) error {
	var err error
	if p.EntityID, err = buf.ReadVarInt(); err != nil {
		return err
	}
	if _, err = buf.ReadUUID(); err != nil {
		return err
	}
	if p.X, err = buf.ReadDouble(); err != nil {
		return err
	}
	if p.Y, err = buf.ReadDouble(); err != nil {
		return err
	}
	if p.Z, err = buf.ReadDouble(); err != nil {
		return err
	}
	if p.Yaw, err = readAngle(buf); err != nil {
		return err
	}
	p.Pitch, err = readAngle(buf)
	return err
}

// SpawnExperienceOrb introduces an XP orb entity.
type SpawnExperienceOrb struct {
	EntityID int32
	X, Y, Z  float64
	Count    int16
}

func (*SpawnExperienceOrb) Kind() string { return "SpawnExperienceOrb" }
func (p *SpawnExperienceOrb) Deserialize(buf packets.Reader, _ protocol.Version) error {
	var err error
	if p.EntityID, err = buf.ReadVarInt(); err != nil {
		return err
	}
	if p.X, err = buf.ReadDouble(); err != nil {
		return err
	}
	if p.Y, err = buf.ReadDouble(); err != nil {
		return err
	}
	if p.Z, err = buf.ReadDouble(); err != nil {
		return err
	}
	p.Count, err = buf.ReadShort()
	return err
}

// DestroyEntities ends the lifetime of the listed entities.
type DestroyEntities struct {
	EntityIDs []int32
}

func (*DestroyEntities) Kind() string { return "DestroyEntities" }
func (p *DestroyEntities) Deserialize(buf packets.Reader, _ protocol.Version) error {
	count, err := buf.ReadVarInt()
	if err != nil {
		return err
	}
	p.EntityIDs = make([]int32, count)
	for i := range p.EntityIDs {
		if p.EntityIDs[i], err = buf.ReadVarInt(); err != nil {
			return err
		}
	}
	return nil
}

// EntityVelocity updates an entity's velocity.
type EntityVelocity struct {
	EntityID                         int32
	VelocityX, VelocityY, VelocityZ int16
}

func (*EntityVelocity) Kind() string { return "EntityVelocity" }
func (p *EntityVelocity) Deserialize(buf packets.Reader, _ protocol.Version) error {
	var err error
	if p.EntityID, err = buf.ReadVarInt(); err != nil {
		return err
	}
	if p.VelocityX, err = buf.ReadShort(); err != nil {
		return err
	}
	if p.VelocityY, err = buf.ReadShort(); err != nil {
		return err
	}
	p.VelocityZ, err = buf.ReadShort()
	return err
}

// EntityTeleport sets an entity's absolute position and look.
type EntityTeleport struct {
	EntityID   int32
	X, Y, Z    float64
	Yaw, Pitch float32
	OnGround   bool
}

func (*EntityTeleport) Kind() string { return "EntityTeleport" }
func (p *EntityTeleport) Deserialize(buf packets.Reader, _ protocol.Version) error {
	var err error
	if p.EntityID, err = buf.ReadVarInt(); err != nil {
		return err
	}
	if p.X, err = buf.ReadDouble(); err != nil {
		return err
	}
	if p.Y, err = buf.ReadDouble(); err != nil {
		return err
	}
	if p.Z, err = buf.ReadDouble(); err != nil {
		return err
	}
	if p.Yaw, err = readAngle(buf); err != nil {
		return err
	}
	if p.Pitch, err = readAngle(buf); err != nil {
		return err
	}
	p.OnGround, err = buf.ReadBool()
	return err
}

// EntityRelativeMove applies a fixed-point (1/4096 block) position delta.
type EntityRelativeMove struct {
	EntityID      int32
	DX, DY, DZ    int16
	OnGround      bool
}

func (*EntityRelativeMove) Kind() string { return "EntityRelativeMove" }
func (p *EntityRelativeMove) Deserialize(buf packets.Reader, _ protocol.Version) error {
	var err error
	if p.EntityID, err = buf.ReadVarInt(); err != nil {
		return err
	}
	if p.DX, err = buf.ReadShort(); err != nil {
		return err
	}
	if p.DY, err = buf.ReadShort(); err != nil {
		return err
	}
	if p.DZ, err = buf.ReadShort(); err != nil {
		return err
	}
	p.OnGround, err = buf.ReadBool()
	return err
}

// DeltaBlocks converts the wire's 1/4096-block fixed point delta to
// float blocks.
func (p *EntityRelativeMove) DeltaBlocks() (dx, dy, dz float64) {
	return fixedDeltaBlocks(p.DX, p.DY, p.DZ)
}

// fixedDeltaBlocks converts the wire's 1/4096-block fixed point deltas
// shared by EntityRelativeMove and EntityLookAndRelativeMove to float
// blocks.
func fixedDeltaBlocks(dx, dy, dz int16) (float64, float64, float64) {
	return float64(dx) / 4096, float64(dy) / 4096, float64(dz) / 4096
}

// EntityLookAndRelativeMove is EntityRelativeMove plus a new look.
type EntityLookAndRelativeMove struct {
	EntityID   int32
	DX, DY, DZ int16
	Yaw, Pitch float32
	OnGround   bool
}

func (*EntityLookAndRelativeMove) Kind() string { return "EntityLookAndRelativeMove" }
func (p *EntityLookAndRelativeMove) Deserialize(buf packets.Reader, _ protocol.Version) error {
	var err error
	if p.EntityID, err = buf.ReadVarInt(); err != nil {
		return err
	}
	if p.DX, err = buf.ReadShort(); err != nil {
		return err
	}
	if p.DY, err = buf.ReadShort(); err != nil {
		return err
	}
	if p.DZ, err = buf.ReadShort(); err != nil {
		return err
	}
	if p.Yaw, err = readAngle(buf); err != nil {
		return err
	}
	if p.Pitch, err = readAngle(buf); err != nil {
		return err
	}
	p.OnGround, err = buf.ReadBool()
	return err
}

// DeltaBlocks converts the wire's 1/4096-block fixed point delta to
// float blocks.
func (p *EntityLookAndRelativeMove) DeltaBlocks() (dx, dy, dz float64) {
	return fixedDeltaBlocks(p.DX, p.DY, p.DZ)
}

// EntityLook updates only an entity's look.
type EntityLook struct {
	EntityID   int32
	Yaw, Pitch float32
	OnGround   bool
}

func (*EntityLook) Kind() string { return "EntityLook" }
func (p *EntityLook) Deserialize(buf packets.Reader, _ protocol.Version) error {
	var err error
	if p.EntityID, err = buf.ReadVarInt(); err != nil {
		return err
	}
	if p.Yaw, err = readAngle(buf); err != nil {
		return err
	}
	if p.Pitch, err = readAngle(buf); err != nil {
		return err
	}
	p.OnGround, err = buf.ReadBool()
	return err
}

// EntityHeadLook updates only an entity's head yaw.
type EntityHeadLook struct {
	EntityID int32
	HeadYaw  float32
}

func (*EntityHeadLook) Kind() string { return "EntityHeadLook" }
func (p *EntityHeadLook) Deserialize(buf packets.Reader, _ protocol.Version) error {
	var err error
	if p.EntityID, err = buf.ReadVarInt(); err != nil {
		return err
	}
	p.HeadYaw, err = readAngle(buf)
	return err
}

// ChunkData carries one chunk column (spec.md §4.7).
type ChunkData struct {
	ChunkX, ChunkZ int32
	Column         *world.ChunkColumn
}

func (*ChunkData) Kind() string { return "ChunkData" }
func (p *ChunkData) Deserialize(buf packets.Reader, _ protocol.Version) error {
	var err error
	if p.ChunkX, err = buf.ReadInt(); err != nil {
		return err
	}
	if p.ChunkZ, err = buf.ReadInt(); err != nil {
		return err
	}
	continuous, err := buf.ReadBool()
	if err != nil {
		return err
	}
	sectionMask, err := buf.ReadVarInt()
	if err != nil {
		return err
	}

	// Size is the byte length of the section data that follows; mclib
	// reads sections directly off buf rather than slicing by this count.
	if _, err := buf.ReadVarInt(); err != nil {
		return err
	}

	col := world.NewChunkColumn(p.ChunkX, p.ChunkZ)
	// skyLight is carried implicitly by the overworld dimension in this
	// version range; mclib has no dimension registry to consult, so it
	// always reads sky light, matching the common single-dimension test
	// deployments this library targets.
	if err := col.Decode(buf, uint16(sectionMask), continuous, true); err != nil {
		return err
	}

	beCount, err := buf.ReadVarInt()
	if err != nil {
		return err
	}
	for i := int32(0); i < beCount; i++ {
		var tag nbt.NBT
		if err := tag.ReadFrom(buf); err != nil {
			return err
		}
		root := tag.Root()
		x, y, z := blockEntityCoords(root)
		col.SetBlockEntity(world.NewBlockEntity(x, y, z, tag))
	}

	p.Column = col
	return nil
}

func blockEntityCoords(root nbt.Compound) (x, y, z int) {
	get := func(key string) int {
		if v, ok := root[key].(*nbt.Int); ok {
			return int(v.Value)
		}
		return 0
	}
	return get("x"), get("y"), get("z")
}

// Respawn reinitialises the client's dimension/gamemode state.
type Respawn struct {
	Dimension  int32
	Difficulty uint8
	Gamemode   uint8
	LevelType  string
}

func (*Respawn) Kind() string { return "Respawn" }
func (p *Respawn) Deserialize(buf packets.Reader, _ protocol.Version) error {
	var err error
	if p.Dimension, err = buf.ReadInt(); err != nil {
		return err
	}
	if p.Difficulty, err = buf.ReadUByte(); err != nil {
		return err
	}
	if p.Gamemode, err = buf.ReadUByte(); err != nil {
		return err
	}
	p.LevelType, err = buf.ReadString()
	return err
}

// PlayerAbilities reports the server-authoritative flying/invulnerable
// state.
type PlayerAbilities struct {
	Flags        uint8
	FlyingSpeed  float32
	WalkingSpeed float32
}

func (*PlayerAbilities) Kind() string { return "PlayerAbilities" }
func (p *PlayerAbilities) Deserialize(buf packets.Reader, _ protocol.Version) error {
	var err error
	if p.Flags, err = buf.ReadUByte(); err != nil {
		return err
	}
	if p.FlyingSpeed, err = buf.ReadFloat(); err != nil {
		return err
	}
	p.WalkingSpeed, err = buf.ReadFloat()
	return err
}

// UpdateHealth reports current health/food/saturation.
type UpdateHealth struct {
	Health         float32
	Food           int32
	FoodSaturation float32
}

func (*UpdateHealth) Kind() string { return "UpdateHealth" }
func (p *UpdateHealth) Deserialize(buf packets.Reader, _ protocol.Version) error {
	var err error
	if p.Health, err = buf.ReadFloat(); err != nil {
		return err
	}
	if p.Food, err = buf.ReadVarInt(); err != nil {
		return err
	}
	p.FoodSaturation, err = buf.ReadFloat()
	return err
}

// SetExperience reports current XP bar state.
type SetExperience struct {
	ExperienceBar   float32
	Level           int32
	TotalExperience int32
}

func (*SetExperience) Kind() string { return "SetExperience" }
func (p *SetExperience) Deserialize(buf packets.Reader, _ protocol.Version) error {
	var err error
	if p.ExperienceBar, err = buf.ReadFloat(); err != nil {
		return err
	}
	if p.Level, err = buf.ReadVarInt(); err != nil {
		return err
	}
	p.TotalExperience, err = buf.ReadVarInt()
	return err
}

// HeldItemChange reports the server-confirmed selected hotbar slot.
type HeldItemChange struct {
	Slot int8
}

func (*HeldItemChange) Kind() string { return "HeldItemChange" }
func (p *HeldItemChange) Deserialize(buf packets.Reader, _ protocol.Version) (err error) {
	p.Slot, err = buf.ReadInt8()
	return
}

// SpawnPosition sets the compass/respawn anchor position.
type SpawnPosition struct {
	X, Y, Z int32
}

func (*SpawnPosition) Kind() string { return "SpawnPosition" }
func (p *SpawnPosition) Deserialize(buf packets.Reader, _ protocol.Version) (err error) {
	p.X, p.Y, p.Z, err = buf.ReadPosition()
	return
}

// TimeUpdate reports world age and time of day.
type TimeUpdate struct {
	WorldAge  int64
	TimeOfDay int64
}

func (*TimeUpdate) Kind() string { return "TimeUpdate" }
func (p *TimeUpdate) Deserialize(buf packets.Reader, _ protocol.Version) error {
	var err error
	if p.WorldAge, err = buf.ReadLong(); err != nil {
		return err
	}
	p.TimeOfDay, err = buf.ReadLong()
	return err
}

package in

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/Lemiort/mclib/nbt"
	"github.com/Lemiort/mclib/packets"
	"github.com/Lemiort/mclib/protocol"
)

// This file carries the Play-state inbound records that play_stub.go used
// to discard generically. Each is grounded on the field list of the
// matching class in
// original_source/mclib/include/mclib/protocol/packets/Packet.h, with
// wire widths cross-checked against the already-typed neighbours in
// play_core.go where the header's C++ member type doesn't pin down
// VarInt-vs-raw or fixed-point-vs-float encoding.

// Statistics reports the scoreboard-backed statistic values spec.md §9
// names as a candidate for full decoding.
type Statistics struct {
	Entries map[string]int32
}

func (*Statistics) Kind() string { return "Statistics" }
func (p *Statistics) Deserialize(buf packets.Reader, _ protocol.Version) error {
	count, err := buf.ReadVarInt()
	if err != nil {
		return err
	}
	p.Entries = make(map[string]int32, count)
	for i := int32(0); i < count; i++ {
		name, err := buf.ReadString()
		if err != nil {
			return err
		}
		value, err := buf.ReadVarInt()
		if err != nil {
			return err
		}
		p.Entries[name] = value
	}
	return nil
}

// UpdateBlockEntity replaces a block entity's NBT payload (sign text,
// banner pattern, skull owner, ...).
type UpdateBlockEntity struct {
	X, Y, Z int32
	Action  uint8
	Data    nbt.NBT
}

func (*UpdateBlockEntity) Kind() string { return "UpdateBlockEntity" }
func (p *UpdateBlockEntity) Deserialize(buf packets.Reader, _ protocol.Version) error {
	var err error
	if p.X, p.Y, p.Z, err = buf.ReadPosition(); err != nil {
		return err
	}
	if p.Action, err = buf.ReadUByte(); err != nil {
		return err
	}
	return p.Data.ReadFrom(buf)
}

// BlockAction carries a block-specific action (note block pitch, piston
// push, chest lid), decoupled from any state change to the block itself.
type BlockAction struct {
	X, Y, Z     int32
	ActionID    uint8
	ActionParam uint8
	BlockType   int32
}

func (*BlockAction) Kind() string { return "BlockAction" }
func (p *BlockAction) Deserialize(buf packets.Reader, _ protocol.Version) error {
	var err error
	if p.X, p.Y, p.Z, err = buf.ReadPosition(); err != nil {
		return err
	}
	if p.ActionID, err = buf.ReadUByte(); err != nil {
		return err
	}
	if p.ActionParam, err = buf.ReadUByte(); err != nil {
		return err
	}
	p.BlockType, err = buf.ReadVarInt()
	return err
}

// BlockChange updates a single block's state id.
type BlockChange struct {
	X, Y, Z int32
	BlockID int32
}

func (*BlockChange) Kind() string { return "BlockChange" }
func (p *BlockChange) Deserialize(buf packets.Reader, _ protocol.Version) error {
	var err error
	if p.X, p.Y, p.Z, err = buf.ReadPosition(); err != nil {
		return err
	}
	p.BlockID, err = buf.ReadVarInt()
	return err
}

// Boss bar actions, per the Action field of BossBar.
const (
	BossBarActionAdd = iota
	BossBarActionRemove
	BossBarActionUpdateHealth
	BossBarActionUpdateTitle
	BossBarActionUpdateStyle
	BossBarActionUpdateFlags
)

// BossBar adds, removes, or updates one boss bar; the fields populated
// depend on Action.
type BossBar struct {
	UUID     uuid.UUID
	Action   int32
	Title    string
	Health   float32
	Color    int32
	Division int32
	Flags    uint8
}

func (*BossBar) Kind() string { return "BossBar" }
func (p *BossBar) Deserialize(buf packets.Reader, _ protocol.Version) error {
	var err error
	if p.UUID, err = buf.ReadUUID(); err != nil {
		return err
	}
	if p.Action, err = buf.ReadVarInt(); err != nil {
		return err
	}
	switch p.Action {
	case BossBarActionAdd:
		if p.Title, err = buf.ReadString(); err != nil {
			return err
		}
		if p.Health, err = buf.ReadFloat(); err != nil {
			return err
		}
		if p.Color, err = buf.ReadVarInt(); err != nil {
			return err
		}
		if p.Division, err = buf.ReadVarInt(); err != nil {
			return err
		}
		p.Flags, err = buf.ReadUByte()
	case BossBarActionRemove:
	case BossBarActionUpdateHealth:
		p.Health, err = buf.ReadFloat()
	case BossBarActionUpdateTitle:
		p.Title, err = buf.ReadString()
	case BossBarActionUpdateStyle:
		if p.Color, err = buf.ReadVarInt(); err != nil {
			return err
		}
		p.Division, err = buf.ReadVarInt()
	case BossBarActionUpdateFlags:
		p.Flags, err = buf.ReadUByte()
	default:
		return fmt.Errorf("in: BossBar: unknown action %d", p.Action)
	}
	return err
}

// ServerDifficulty reports the world's configured difficulty level.
type ServerDifficulty struct {
	Difficulty uint8
}

func (*ServerDifficulty) Kind() string { return "ServerDifficulty" }
func (p *ServerDifficulty) Deserialize(buf packets.Reader, _ protocol.Version) (err error) {
	p.Difficulty, err = buf.ReadUByte()
	return
}

// Chat is an inbound chat/system message; Position selects chat box (0),
// system message (1), or action bar (2).
type Chat struct {
	Message  string
	Position int8
}

func (*Chat) Kind() string { return "Chat" }
func (p *Chat) Deserialize(buf packets.Reader, _ protocol.Version) error {
	var err error
	if p.Message, err = buf.ReadString(); err != nil {
		return err
	}
	p.Position, err = buf.ReadInt8()
	return err
}

// BlockChangeRecord is one entry of a MultiBlockChange packet, positioned
// relative to the packet's chunk.
type BlockChangeRecord struct {
	X, Z uint8 // 0-15 within the chunk
	Y    uint8
	BlockID int32
}

// MultiBlockChange batches several BlockChange-equivalent updates within
// one chunk column.
type MultiBlockChange struct {
	ChunkX, ChunkZ int32
	Records        []BlockChangeRecord
}

func (*MultiBlockChange) Kind() string { return "MultiBlockChange" }
func (p *MultiBlockChange) Deserialize(buf packets.Reader, _ protocol.Version) error {
	var err error
	if p.ChunkX, err = buf.ReadInt(); err != nil {
		return err
	}
	if p.ChunkZ, err = buf.ReadInt(); err != nil {
		return err
	}
	count, err := buf.ReadVarInt()
	if err != nil {
		return err
	}
	p.Records = make([]BlockChangeRecord, count)
	for i := range p.Records {
		xz, err := buf.ReadUByte()
		if err != nil {
			return err
		}
		p.Records[i].X = xz >> 4
		p.Records[i].Z = xz & 0x0F
		if p.Records[i].Y, err = buf.ReadUByte(); err != nil {
			return err
		}
		if p.Records[i].BlockID, err = buf.ReadVarInt(); err != nil {
			return err
		}
	}
	return nil
}

// WindowProperty updates one server-tracked property of an open window
// (furnace progress, enchanting table levels, ...).
type WindowProperty struct {
	WindowID uint8
	Property int16
	Value    int16
}

func (*WindowProperty) Kind() string { return "WindowProperty" }
func (p *WindowProperty) Deserialize(buf packets.Reader, _ protocol.Version) error {
	var err error
	if p.WindowID, err = buf.ReadUByte(); err != nil {
		return err
	}
	if p.Property, err = buf.ReadShort(); err != nil {
		return err
	}
	p.Value, err = buf.ReadShort()
	return err
}

// SetCooldown starts (cooldownTicks>0) or clears (0) an item's
// use-cooldown indicator.
type SetCooldown struct {
	ItemID        int32
	CooldownTicks int32
}

func (*SetCooldown) Kind() string { return "SetCooldown" }
func (p *SetCooldown) Deserialize(buf packets.Reader, _ protocol.Version) error {
	var err error
	if p.ItemID, err = buf.ReadVarInt(); err != nil {
		return err
	}
	p.CooldownTicks, err = buf.ReadVarInt()
	return err
}

// NamedSoundEffect plays a sound identified by resource location, at a
// fixed-point position (1/8-block units, not float, despite the original
// C++ header's Vector3d member).
type NamedSoundEffect struct {
	SoundName       string
	Category        int32
	X, Y, Z         int32
	Volume, Pitch   float32
}

func (*NamedSoundEffect) Kind() string { return "NamedSoundEffect" }
func (p *NamedSoundEffect) Deserialize(buf packets.Reader, _ protocol.Version) error {
	var err error
	if p.SoundName, err = buf.ReadString(); err != nil {
		return err
	}
	if p.Category, err = buf.ReadVarInt(); err != nil {
		return err
	}
	if p.X, err = buf.ReadInt(); err != nil {
		return err
	}
	if p.Y, err = buf.ReadInt(); err != nil {
		return err
	}
	if p.Z, err = buf.ReadInt(); err != nil {
		return err
	}
	if p.Volume, err = buf.ReadFloat(); err != nil {
		return err
	}
	p.Pitch, err = buf.ReadFloat()
	return err
}

// EntityStatus triggers a client-side one-shot effect (hurt animation,
// totem pop, firework explosion, ...) keyed by a raw (non-VarInt)
// entity id, unlike most other entity-targeted packets.
type EntityStatus struct {
	EntityID int32
	Status   int8
}

func (*EntityStatus) Kind() string { return "EntityStatus" }
func (p *EntityStatus) Deserialize(buf packets.Reader, _ protocol.Version) error {
	var err error
	if p.EntityID, err = buf.ReadInt(); err != nil {
		return err
	}
	p.Status, err = buf.ReadInt8()
	return err
}

// Explosion reports a world explosion: center, radius, the list of
// relatively-offset blocks it destroyed, and the push it gives the
// local player.
type Explosion struct {
	X, Y, Z                   float32
	Radius                    float32
	AffectedBlockCount        int32
	MotionX, MotionY, MotionZ float32
}

func (*Explosion) Kind() string { return "Explosion" }
func (p *Explosion) Deserialize(buf packets.Reader, _ protocol.Version) error {
	var err error
	if p.X, err = buf.ReadFloat(); err != nil {
		return err
	}
	if p.Y, err = buf.ReadFloat(); err != nil {
		return err
	}
	if p.Z, err = buf.ReadFloat(); err != nil {
		return err
	}
	if p.Radius, err = buf.ReadFloat(); err != nil {
		return err
	}
	count, err := buf.ReadInt()
	if err != nil {
		return err
	}
	p.AffectedBlockCount = count
	if _, err := buf.ReadByteArray(int(count) * 3); err != nil {
		return err
	}
	if p.MotionX, err = buf.ReadFloat(); err != nil {
		return err
	}
	if p.MotionY, err = buf.ReadFloat(); err != nil {
		return err
	}
	p.MotionZ, err = buf.ReadFloat()
	return err
}

// UnloadChunk tells the client to drop a chunk column it may be holding;
// both coordinates are raw ints on the wire, not VarInts.
type UnloadChunk struct {
	ChunkX, ChunkZ int32
}

func (*UnloadChunk) Kind() string { return "UnloadChunk" }
func (p *UnloadChunk) Deserialize(buf packets.Reader, _ protocol.Version) error {
	var err error
	if p.ChunkX, err = buf.ReadInt(); err != nil {
		return err
	}
	p.ChunkZ, err = buf.ReadInt()
	return err
}

// ChangeGameState reports a gamemode/weather/demo-message change;
// interpretation of Value depends on Reason (e.g. Reason=7 is rain
// strength, Reason=3 is the new gamemode id as a float).
type ChangeGameState struct {
	Reason uint8
	Value  float32
}

func (*ChangeGameState) Kind() string { return "ChangeGameState" }
func (p *ChangeGameState) Deserialize(buf packets.Reader, _ protocol.Version) error {
	var err error
	if p.Reason, err = buf.ReadUByte(); err != nil {
		return err
	}
	p.Value, err = buf.ReadFloat()
	return err
}

// Effect plays a world-positioned sound/particle effect identified by a
// numeric id (distinct from the resource-location-keyed NamedSoundEffect).
type Effect struct {
	EffectID              int32
	X, Y, Z               int32
	Data                  int32
	DisableRelativeVolume bool
}

func (*Effect) Kind() string { return "Effect" }
func (p *Effect) Deserialize(buf packets.Reader, _ protocol.Version) error {
	var err error
	if p.EffectID, err = buf.ReadInt(); err != nil {
		return err
	}
	if p.X, p.Y, p.Z, err = buf.ReadPosition(); err != nil {
		return err
	}
	if p.Data, err = buf.ReadInt(); err != nil {
		return err
	}
	p.DisableRelativeVolume, err = buf.ReadBool()
	return err
}

// Known particle ids whose extra data field has a fixed, well-known
// shape; every other id carries no extra data mclib decodes.
const (
	particleIconCrack = 36
	particleBlockCrack = 37
	particleBlockDust  = 38
)

// Particle spawns a client-side particle effect. ExtraData holds the
// particle-specific VarInt payload (block/item ids) for the handful of
// parameterised particle kinds; it is empty for the rest.
type Particle struct {
	ParticleID                      int32
	LongDistance                    bool
	X, Y, Z                         float32
	OffsetX, OffsetY, OffsetZ       float32
	ParticleData                    float32
	Count                           int32
	ExtraData                       []int32
}

func (*Particle) Kind() string { return "Particle" }
func (p *Particle) Deserialize(buf packets.Reader, _ protocol.Version) error {
	var err error
	if p.ParticleID, err = buf.ReadInt(); err != nil {
		return err
	}
	if p.LongDistance, err = buf.ReadBool(); err != nil {
		return err
	}
	if p.X, err = buf.ReadFloat(); err != nil {
		return err
	}
	if p.Y, err = buf.ReadFloat(); err != nil {
		return err
	}
	if p.Z, err = buf.ReadFloat(); err != nil {
		return err
	}
	if p.OffsetX, err = buf.ReadFloat(); err != nil {
		return err
	}
	if p.OffsetY, err = buf.ReadFloat(); err != nil {
		return err
	}
	if p.OffsetZ, err = buf.ReadFloat(); err != nil {
		return err
	}
	if p.ParticleData, err = buf.ReadFloat(); err != nil {
		return err
	}
	if p.Count, err = buf.ReadInt(); err != nil {
		return err
	}
	var extraCount int
	switch p.ParticleID {
	case particleIconCrack:
		extraCount = 2
	case particleBlockCrack, particleBlockDust:
		extraCount = 1
	}
	p.ExtraData = make([]int32, extraCount)
	for i := range p.ExtraData {
		if p.ExtraData[i], err = buf.ReadVarInt(); err != nil {
			return err
		}
	}
	return nil
}

// MapIcon is one marker drawn on a map (player, item frame, ...).
type MapIcon struct {
	DirectionAndType uint8
	X, Z             int32
}

// Map pushes a full or partial update of one map item's rendered pixels
// and icons.
type Map struct {
	ItemDamage       int32
	Scale            int8
	TrackingPosition bool
	Icons            []MapIcon
	Columns          uint8
	Rows             uint8
	X, Z             int8
	Data             []byte
}

func (*Map) Kind() string { return "Map" }
func (p *Map) Deserialize(buf packets.Reader, _ protocol.Version) error {
	var err error
	if p.ItemDamage, err = buf.ReadVarInt(); err != nil {
		return err
	}
	if p.Scale, err = buf.ReadInt8(); err != nil {
		return err
	}
	if p.TrackingPosition, err = buf.ReadBool(); err != nil {
		return err
	}
	iconCount, err := buf.ReadVarInt()
	if err != nil {
		return err
	}
	p.Icons = make([]MapIcon, iconCount)
	for i := range p.Icons {
		if p.Icons[i].DirectionAndType, err = buf.ReadUByte(); err != nil {
			return err
		}
		if p.Icons[i].X, err = buf.ReadVarInt(); err != nil {
			return err
		}
		if p.Icons[i].Z, err = buf.ReadVarInt(); err != nil {
			return err
		}
	}
	if p.Columns, err = buf.ReadUByte(); err != nil {
		return err
	}
	if p.Columns == 0 {
		return nil
	}
	if p.Rows, err = buf.ReadUByte(); err != nil {
		return err
	}
	if p.X, err = buf.ReadInt8(); err != nil {
		return err
	}
	if p.Z, err = buf.ReadInt8(); err != nil {
		return err
	}
	length, err := buf.ReadVarInt()
	if err != nil {
		return err
	}
	p.Data, err = buf.ReadByteArray(int(length))
	return err
}

// VehicleMove is the server's authoritative position/look for the
// vehicle the local player is riding.
type VehicleMove struct {
	X, Y, Z    float64
	Yaw, Pitch float32
}

func (*VehicleMove) Kind() string { return "VehicleMove" }
func (p *VehicleMove) Deserialize(buf packets.Reader, _ protocol.Version) error {
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
	p.Pitch, err = buf.ReadFloat()
	return err
}

// OpenSignEditor tells the client to open the sign-text editor for the
// block at the given position.
type OpenSignEditor struct {
	X, Y, Z int32
}

func (*OpenSignEditor) Kind() string { return "OpenSignEditor" }
func (p *OpenSignEditor) Deserialize(buf packets.Reader, _ protocol.Version) (err error) {
	p.X, p.Y, p.Z, err = buf.ReadPosition()
	return
}

// CraftRecipeResponse confirms a CraftRecipeRequest against the named
// recipe in the given crafting window.
type CraftRecipeResponse struct {
	WindowID uint8
	Recipe   string
}

func (*CraftRecipeResponse) Kind() string { return "CraftRecipeResponse" }
func (p *CraftRecipeResponse) Deserialize(buf packets.Reader, _ protocol.Version) error {
	var err error
	if p.WindowID, err = buf.ReadUByte(); err != nil {
		return err
	}
	p.Recipe, err = buf.ReadString()
	return err
}

// Combat events, per the Event field of CombatEvent.
const (
	CombatEventEnterCombat = iota
	CombatEventEndCombat
	CombatEventEntityDead
)

// CombatEvent reports the start/end of combat, or a combat-caused death;
// the fields populated depend on Event.
type CombatEvent struct {
	Event    int32
	Duration int32
	EntityID int32
	PlayerID int32
	Message  string
}

func (*CombatEvent) Kind() string { return "CombatEvent" }
func (p *CombatEvent) Deserialize(buf packets.Reader, _ protocol.Version) error {
	var err error
	if p.Event, err = buf.ReadVarInt(); err != nil {
		return err
	}
	switch p.Event {
	case CombatEventEnterCombat:
	case CombatEventEndCombat:
		if p.Duration, err = buf.ReadVarInt(); err != nil {
			return err
		}
		p.EntityID, err = buf.ReadInt()
	case CombatEventEntityDead:
		if p.PlayerID, err = buf.ReadVarInt(); err != nil {
			return err
		}
		if p.EntityID, err = buf.ReadInt(); err != nil {
			return err
		}
		p.Message, err = buf.ReadString()
	default:
		return fmt.Errorf("in: CombatEvent: unknown event %d", p.Event)
	}
	return err
}

// Player-list actions, per the Action field of PlayerListItem.
const (
	PlayerListItemAddPlayer = iota
	PlayerListItemUpdateGamemode
	PlayerListItemUpdateLatency
	PlayerListItemUpdateDisplayName
	PlayerListItemRemovePlayer
)

// PlayerListProperty is one game-profile property (textures, ...)
// carried by a PlayerListItemAddPlayer entry.
type PlayerListProperty struct {
	Name      string
	Value     string
	Signed    bool
	Signature string
}

// PlayerListEntry is one per-player record within a PlayerListItem
// packet; the fields populated depend on the packet's Action.
type PlayerListEntry struct {
	UUID        uuid.UUID
	Name        string
	Properties  []PlayerListProperty
	Gamemode    int32
	Ping        int32
	HasDisplayName bool
	DisplayName string
}

// PlayerListItem adds, updates, or removes tab-list entries; one Action
// applies uniformly to every Entries member.
type PlayerListItem struct {
	Action  int32
	Entries []PlayerListEntry
}

func (*PlayerListItem) Kind() string { return "PlayerListItem" }
func (p *PlayerListItem) Deserialize(buf packets.Reader, _ protocol.Version) error {
	var err error
	if p.Action, err = buf.ReadVarInt(); err != nil {
		return err
	}
	count, err := buf.ReadVarInt()
	if err != nil {
		return err
	}
	p.Entries = make([]PlayerListEntry, count)
	for i := range p.Entries {
		e := &p.Entries[i]
		if e.UUID, err = buf.ReadUUID(); err != nil {
			return err
		}
		switch p.Action {
		case PlayerListItemAddPlayer:
			if e.Name, err = buf.ReadString(); err != nil {
				return err
			}
			propCount, err := buf.ReadVarInt()
			if err != nil {
				return err
			}
			e.Properties = make([]PlayerListProperty, propCount)
			for j := range e.Properties {
				prop := &e.Properties[j]
				if prop.Name, err = buf.ReadString(); err != nil {
					return err
				}
				if prop.Value, err = buf.ReadString(); err != nil {
					return err
				}
				if prop.Signed, err = buf.ReadBool(); err != nil {
					return err
				}
				if prop.Signed {
					if prop.Signature, err = buf.ReadString(); err != nil {
						return err
					}
				}
			}
			if e.Gamemode, err = buf.ReadVarInt(); err != nil {
				return err
			}
			if e.Ping, err = buf.ReadVarInt(); err != nil {
				return err
			}
			if e.HasDisplayName, err = buf.ReadBool(); err != nil {
				return err
			}
			if e.HasDisplayName {
				if e.DisplayName, err = buf.ReadString(); err != nil {
					return err
				}
			}
		case PlayerListItemUpdateGamemode:
			if e.Gamemode, err = buf.ReadVarInt(); err != nil {
				return err
			}
		case PlayerListItemUpdateLatency:
			if e.Ping, err = buf.ReadVarInt(); err != nil {
				return err
			}
		case PlayerListItemUpdateDisplayName:
			if e.HasDisplayName, err = buf.ReadBool(); err != nil {
				return err
			}
			if e.HasDisplayName {
				if e.DisplayName, err = buf.ReadString(); err != nil {
					return err
				}
			}
		case PlayerListItemRemovePlayer:
		default:
			return fmt.Errorf("in: PlayerListItem: unknown action %d", p.Action)
		}
	}
	return nil
}

// UseBed plays the sleeping animation for the given entity at a bed
// location.
type UseBed struct {
	EntityID int32
	X, Y, Z  int32
}

func (*UseBed) Kind() string { return "UseBed" }
func (p *UseBed) Deserialize(buf packets.Reader, _ protocol.Version) error {
	var err error
	if p.EntityID, err = buf.ReadVarInt(); err != nil {
		return err
	}
	p.X, p.Y, p.Z, err = buf.ReadPosition()
	return err
}

// UnlockRecipes toggles the crafting-book UI and the set of recipes the
// client is allowed to show as unlocked.
type UnlockRecipes struct {
	Action                int32
	CraftingBookOpen      bool
	CraftingFilterActive  bool
	RecipeIDs             []int32
	RecipeIDsToInitialize []int32
}

func (*UnlockRecipes) Kind() string { return "UnlockRecipes" }
func (p *UnlockRecipes) Deserialize(buf packets.Reader, _ protocol.Version) error {
	var err error
	if p.Action, err = buf.ReadVarInt(); err != nil {
		return err
	}
	if p.CraftingBookOpen, err = buf.ReadBool(); err != nil {
		return err
	}
	if p.CraftingFilterActive, err = buf.ReadBool(); err != nil {
		return err
	}
	count, err := buf.ReadVarInt()
	if err != nil {
		return err
	}
	p.RecipeIDs = make([]int32, count)
	for i := range p.RecipeIDs {
		if p.RecipeIDs[i], err = buf.ReadVarInt(); err != nil {
			return err
		}
	}
	if p.Action != 0 {
		return nil
	}
	initCount, err := buf.ReadVarInt()
	if err != nil {
		return err
	}
	p.RecipeIDsToInitialize = make([]int32, initCount)
	for i := range p.RecipeIDsToInitialize {
		if p.RecipeIDsToInitialize[i], err = buf.ReadVarInt(); err != nil {
			return err
		}
	}
	return nil
}

// RemoveEntityEffect clears a previously applied status effect.
type RemoveEntityEffect struct {
	EntityID int32
	EffectID int8
}

func (*RemoveEntityEffect) Kind() string { return "RemoveEntityEffect" }
func (p *RemoveEntityEffect) Deserialize(buf packets.Reader, _ protocol.Version) error {
	var err error
	if p.EntityID, err = buf.ReadVarInt(); err != nil {
		return err
	}
	p.EffectID, err = buf.ReadInt8()
	return err
}

// ResourcePackSend asks the client to download and apply a resource pack.
type ResourcePackSend struct {
	URL  string
	Hash string
}

func (*ResourcePackSend) Kind() string { return "ResourcePackSend" }
func (p *ResourcePackSend) Deserialize(buf packets.Reader, _ protocol.Version) error {
	var err error
	if p.URL, err = buf.ReadString(); err != nil {
		return err
	}
	p.Hash, err = buf.ReadString()
	return err
}

// SelectAdvancementTab opens (HasID) or closes (!HasID) an advancement
// tab in the client UI.
type SelectAdvancementTab struct {
	HasID bool
	TabID string
}

func (*SelectAdvancementTab) Kind() string { return "SelectAdvancementTab" }
func (p *SelectAdvancementTab) Deserialize(buf packets.Reader, _ protocol.Version) error {
	var err error
	if p.HasID, err = buf.ReadBool(); err != nil {
		return err
	}
	if p.HasID {
		p.TabID, err = buf.ReadString()
	}
	return err
}

// World-border actions, per the Action field of WorldBorder.
const (
	WorldBorderSetSize = iota
	WorldBorderLerpSize
	WorldBorderSetCenter
	WorldBorderInitialize
	WorldBorderSetWarningTime
	WorldBorderSetWarningBlocks
)

// WorldBorder manages the client-rendered world border; the fields
// populated depend on Action.
type WorldBorder struct {
	Action                 int32
	X, Z                   float64
	OldDiameter, NewDiameter float64
	Speed                  int64
	PortalTeleportBoundary int32
	WarningTime            int32
	WarningBlocks          int32
}

func (*WorldBorder) Kind() string { return "WorldBorder" }
func (p *WorldBorder) Deserialize(buf packets.Reader, _ protocol.Version) error {
	var err error
	if p.Action, err = buf.ReadVarInt(); err != nil {
		return err
	}
	switch p.Action {
	case WorldBorderSetSize:
		p.NewDiameter, err = buf.ReadDouble()
	case WorldBorderLerpSize:
		if p.OldDiameter, err = buf.ReadDouble(); err != nil {
			return err
		}
		if p.NewDiameter, err = buf.ReadDouble(); err != nil {
			return err
		}
		p.Speed, err = buf.ReadVarLong()
	case WorldBorderSetCenter:
		if p.X, err = buf.ReadDouble(); err != nil {
			return err
		}
		p.Z, err = buf.ReadDouble()
	case WorldBorderInitialize:
		if p.X, err = buf.ReadDouble(); err != nil {
			return err
		}
		if p.Z, err = buf.ReadDouble(); err != nil {
			return err
		}
		if p.OldDiameter, err = buf.ReadDouble(); err != nil {
			return err
		}
		if p.NewDiameter, err = buf.ReadDouble(); err != nil {
			return err
		}
		if p.Speed, err = buf.ReadVarLong(); err != nil {
			return err
		}
		if p.PortalTeleportBoundary, err = buf.ReadVarInt(); err != nil {
			return err
		}
		if p.WarningTime, err = buf.ReadVarInt(); err != nil {
			return err
		}
		p.WarningBlocks, err = buf.ReadVarInt()
	case WorldBorderSetWarningTime:
		p.WarningTime, err = buf.ReadVarInt()
	case WorldBorderSetWarningBlocks:
		p.WarningBlocks, err = buf.ReadVarInt()
	default:
		return fmt.Errorf("in: WorldBorder: unknown action %d", p.Action)
	}
	return err
}

// Camera switches the client's rendered viewpoint to the given entity.
type Camera struct {
	CameraID int32
}

func (*Camera) Kind() string { return "Camera" }
func (p *Camera) Deserialize(buf packets.Reader, _ protocol.Version) (err error) {
	p.CameraID, err = buf.ReadVarInt()
	return
}

// DisplayScoreboard assigns a scoreboard to one of the client's display
// slots (list, sidebar, below name).
type DisplayScoreboard struct {
	Position  int8
	ScoreName string
}

func (*DisplayScoreboard) Kind() string { return "DisplayScoreboard" }
func (p *DisplayScoreboard) Deserialize(buf packets.Reader, _ protocol.Version) error {
	var err error
	if p.Position, err = buf.ReadInt8(); err != nil {
		return err
	}
	p.ScoreName, err = buf.ReadString()
	return err
}

// Entity-metadata value type ids, per the wire format's type tag
// preceding each entry's value.
const (
	metadataTypeByte = iota
	metadataTypeVarInt
	metadataTypeFloat
	metadataTypeString
	metadataTypeChat
	metadataTypeOptChat
	metadataTypeSlot
	metadataTypeBoolean
	metadataTypeRotation
	metadataTypePosition
	metadataTypeOptPosition
	metadataTypeDirection
	metadataTypeOptUUID
	metadataTypeBlockID
)

// metadataTerminator ends an EntityMetadata entry list.
const metadataTerminator = 0xFF

// EntityMetadata carries the decoded {index: value} entries for one
// entity, applied to entity.Entity.Metadata (spec.md §3).
type EntityMetadata struct {
	EntityID int32
	Entries  map[uint8]any
}

func (*EntityMetadata) Kind() string { return "EntityMetadata" }
func (p *EntityMetadata) Deserialize(buf packets.Reader, version protocol.Version) error {
	var err error
	if p.EntityID, err = buf.ReadVarInt(); err != nil {
		return err
	}
	p.Entries = make(map[uint8]any)
	for {
		index, err := buf.ReadUByte()
		if err != nil {
			return err
		}
		if index == metadataTerminator {
			return nil
		}
		valueType, err := buf.ReadVarInt()
		if err != nil {
			return err
		}
		value, err := readMetadataValue(buf, version, valueType)
		if err != nil {
			return err
		}
		p.Entries[index] = value
	}
}

func readMetadataValue(buf packets.Reader, version protocol.Version, valueType int32) (any, error) {
	switch valueType {
	case metadataTypeByte:
		return buf.ReadInt8()
	case metadataTypeVarInt:
		return buf.ReadVarInt()
	case metadataTypeFloat:
		return buf.ReadFloat()
	case metadataTypeString, metadataTypeChat:
		return buf.ReadString()
	case metadataTypeOptChat:
		present, err := buf.ReadBool()
		if err != nil || !present {
			return nil, err
		}
		return buf.ReadString()
	case metadataTypeSlot:
		var s packets.Slot
		if err := s.Deserialize(buf, version); err != nil {
			return nil, err
		}
		return s, nil
	case metadataTypeBoolean:
		return buf.ReadBool()
	case metadataTypeRotation:
		x, err := buf.ReadFloat()
		if err != nil {
			return nil, err
		}
		y, err := buf.ReadFloat()
		if err != nil {
			return nil, err
		}
		z, err := buf.ReadFloat()
		if err != nil {
			return nil, err
		}
		return [3]float32{x, y, z}, nil
	case metadataTypePosition:
		x, y, z, err := buf.ReadPosition()
		if err != nil {
			return nil, err
		}
		return [3]int32{x, y, z}, nil
	case metadataTypeOptPosition:
		present, err := buf.ReadBool()
		if err != nil || !present {
			return nil, err
		}
		x, y, z, err := buf.ReadPosition()
		if err != nil {
			return nil, err
		}
		return [3]int32{x, y, z}, nil
	case metadataTypeDirection, metadataTypeBlockID:
		return buf.ReadVarInt()
	case metadataTypeOptUUID:
		present, err := buf.ReadBool()
		if err != nil || !present {
			return nil, err
		}
		return buf.ReadUUID()
	default:
		return nil, fmt.Errorf("in: EntityMetadata: unknown value type %d", valueType)
	}
}

// AttachEntity leashes or unleashes (VehicleID==-1) one entity to
// another; both ids are raw ints on the wire.
type AttachEntity struct {
	EntityID, VehicleID int32
}

func (*AttachEntity) Kind() string { return "AttachEntity" }
func (p *AttachEntity) Deserialize(buf packets.Reader, _ protocol.Version) error {
	var err error
	if p.EntityID, err = buf.ReadInt(); err != nil {
		return err
	}
	p.VehicleID, err = buf.ReadInt()
	return err
}

// EntityEquipment updates one equipment slot (hand, offhand, armor) of
// an entity.
type EntityEquipment struct {
	EntityID int32
	Slot     int32
	Item     packets.Slot
}

func (*EntityEquipment) Kind() string { return "EntityEquipment" }
func (p *EntityEquipment) Deserialize(buf packets.Reader, version protocol.Version) error {
	var err error
	if p.EntityID, err = buf.ReadVarInt(); err != nil {
		return err
	}
	if p.Slot, err = buf.ReadVarInt(); err != nil {
		return err
	}
	return p.Item.Deserialize(buf, version)
}

// Scoreboard-objective modes, per the Mode field of ScoreboardObjective.
const (
	ScoreboardObjectiveCreate = iota
	ScoreboardObjectiveRemove
	ScoreboardObjectiveUpdate
)

// ScoreboardObjective creates, removes, or updates a scoreboard
// objective; DisplayText/ObjectiveType are only present for Create and
// Update.
type ScoreboardObjective struct {
	Name          string
	Mode          int8
	DisplayText   string
	ObjectiveType string
}

func (*ScoreboardObjective) Kind() string { return "ScoreboardObjective" }
func (p *ScoreboardObjective) Deserialize(buf packets.Reader, _ protocol.Version) error {
	var err error
	if p.Name, err = buf.ReadString(); err != nil {
		return err
	}
	if p.Mode, err = buf.ReadInt8(); err != nil {
		return err
	}
	if p.Mode == ScoreboardObjectiveCreate || p.Mode == ScoreboardObjectiveUpdate {
		if p.DisplayText, err = buf.ReadString(); err != nil {
			return err
		}
		p.ObjectiveType, err = buf.ReadString()
	}
	return err
}

// SetPassengers replaces the full set of entities riding EntityID.
type SetPassengers struct {
	EntityID   int32
	Passengers []int32
}

func (*SetPassengers) Kind() string { return "SetPassengers" }
func (p *SetPassengers) Deserialize(buf packets.Reader, _ protocol.Version) error {
	var err error
	if p.EntityID, err = buf.ReadVarInt(); err != nil {
		return err
	}
	count, err := buf.ReadVarInt()
	if err != nil {
		return err
	}
	p.Passengers = make([]int32, count)
	for i := range p.Passengers {
		if p.Passengers[i], err = buf.ReadVarInt(); err != nil {
			return err
		}
	}
	return nil
}

// Team modes, per the Mode field of Teams.
const (
	TeamsCreate = iota
	TeamsRemove
	TeamsUpdateInfo
	TeamsAddPlayers
	TeamsRemovePlayers
)

// Teams creates, removes, or updates a scoreboard team, or adds/removes
// players from one; the fields populated depend on Mode.
type Teams struct {
	Name              string
	Mode              int8
	DisplayName       string
	Prefix, Suffix    string
	FriendlyFire      int8
	NameTagVisibility string
	CollisionRule     string
	Color             int8
	Players           []string
}

func (*Teams) Kind() string { return "Teams" }
func (p *Teams) Deserialize(buf packets.Reader, _ protocol.Version) error {
	var err error
	if p.Name, err = buf.ReadString(); err != nil {
		return err
	}
	if p.Mode, err = buf.ReadInt8(); err != nil {
		return err
	}
	switch p.Mode {
	case TeamsCreate, TeamsUpdateInfo:
		if p.DisplayName, err = buf.ReadString(); err != nil {
			return err
		}
		if p.Prefix, err = buf.ReadString(); err != nil {
			return err
		}
		if p.Suffix, err = buf.ReadString(); err != nil {
			return err
		}
		if p.FriendlyFire, err = buf.ReadInt8(); err != nil {
			return err
		}
		if p.NameTagVisibility, err = buf.ReadString(); err != nil {
			return err
		}
		if p.CollisionRule, err = buf.ReadString(); err != nil {
			return err
		}
		if p.Color, err = buf.ReadInt8(); err != nil {
			return err
		}
		if p.Mode == TeamsUpdateInfo {
			return nil
		}
	case TeamsRemove:
		return nil
	}

	if p.Mode == TeamsCreate || p.Mode == TeamsAddPlayers || p.Mode == TeamsRemovePlayers {
		count, err := buf.ReadVarInt()
		if err != nil {
			return err
		}
		p.Players = make([]string, count)
		for i := range p.Players {
			if p.Players[i], err = buf.ReadString(); err != nil {
				return err
			}
		}
	}
	return nil
}

// UpdateScore sets (Action!=1) or removes (Action==1) one scoreboard
// entry's value.
type UpdateScore struct {
	EntityName    string
	Action        int8
	ObjectiveName string
	Value         int32
}

func (*UpdateScore) Kind() string { return "UpdateScore" }
func (p *UpdateScore) Deserialize(buf packets.Reader, _ protocol.Version) error {
	var err error
	if p.EntityName, err = buf.ReadString(); err != nil {
		return err
	}
	if p.Action, err = buf.ReadInt8(); err != nil {
		return err
	}
	if p.ObjectiveName, err = buf.ReadString(); err != nil {
		return err
	}
	if p.Action != 1 {
		p.Value, err = buf.ReadVarInt()
	}
	return err
}

// Title actions, per the Action field of Title.
const (
	TitleSetTitle = iota
	TitleSetSubtitle
	TitleSetActionBar
	TitleSetTimesAndDisplay
	TitleHide
	TitleReset
)

// Title drives the client's on-screen title/subtitle/action-bar text and
// its fade timing; the fields populated depend on Action.
type Title struct {
	Action               int32
	Text                 string
	FadeIn, Stay, FadeOut int32
}

func (*Title) Kind() string { return "Title" }
func (p *Title) Deserialize(buf packets.Reader, _ protocol.Version) error {
	var err error
	if p.Action, err = buf.ReadVarInt(); err != nil {
		return err
	}
	switch p.Action {
	case TitleSetTitle, TitleSetSubtitle, TitleSetActionBar:
		p.Text, err = buf.ReadString()
	case TitleSetTimesAndDisplay:
		if p.FadeIn, err = buf.ReadInt(); err != nil {
			return err
		}
		if p.Stay, err = buf.ReadInt(); err != nil {
			return err
		}
		p.FadeOut, err = buf.ReadInt()
	case TitleHide, TitleReset:
	default:
		return fmt.Errorf("in: Title: unknown action %d", p.Action)
	}
	return err
}

// SoundEffect plays a sound identified by numeric id, at a fixed-point
// position (1/8-block units, not float).
type SoundEffect struct {
	SoundID       int32
	Category      int32
	X, Y, Z       int32
	Volume, Pitch float32
}

func (*SoundEffect) Kind() string { return "SoundEffect" }
func (p *SoundEffect) Deserialize(buf packets.Reader, _ protocol.Version) error {
	var err error
	if p.SoundID, err = buf.ReadVarInt(); err != nil {
		return err
	}
	if p.Category, err = buf.ReadVarInt(); err != nil {
		return err
	}
	if p.X, err = buf.ReadInt(); err != nil {
		return err
	}
	if p.Y, err = buf.ReadInt(); err != nil {
		return err
	}
	if p.Z, err = buf.ReadInt(); err != nil {
		return err
	}
	if p.Volume, err = buf.ReadFloat(); err != nil {
		return err
	}
	p.Pitch, err = buf.ReadFloat()
	return err
}

// PlayerListHeaderAndFooter sets the tab-list header/footer text (empty
// JSON string clears either).
type PlayerListHeaderAndFooter struct {
	Header string
	Footer string
}

func (*PlayerListHeaderAndFooter) Kind() string { return "PlayerListHeaderAndFooter" }
func (p *PlayerListHeaderAndFooter) Deserialize(buf packets.Reader, _ protocol.Version) error {
	var err error
	if p.Header, err = buf.ReadString(); err != nil {
		return err
	}
	p.Footer, err = buf.ReadString()
	return err
}

// CollectItem plays the pickup animation of an item/arrow/orb entity
// flying into a collector entity's inventory.
type CollectItem struct {
	CollectedEntityID int32
	CollectorEntityID int32
	PickupItemCount   int32
}

func (*CollectItem) Kind() string { return "CollectItem" }
func (p *CollectItem) Deserialize(buf packets.Reader, _ protocol.Version) error {
	var err error
	if p.CollectedEntityID, err = buf.ReadVarInt(); err != nil {
		return err
	}
	if p.CollectorEntityID, err = buf.ReadVarInt(); err != nil {
		return err
	}
	p.PickupItemCount, err = buf.ReadVarInt()
	return err
}

// EntityPropertyModifier is one attribute modifier attached to an
// EntityProperty entry.
type EntityPropertyModifier struct {
	UUID      uuid.UUID
	Amount    float64
	Operation int8
}

// EntityProperty is one named attribute (movement speed, attack damage,
// ...) and its modifier list.
type EntityProperty struct {
	Key       string
	Value     float64
	Modifiers []EntityPropertyModifier
}

// EntityProperties reports an entity's current attribute values.
type EntityProperties struct {
	EntityID   int32
	Properties []EntityProperty
}

func (*EntityProperties) Kind() string { return "EntityProperties" }
func (p *EntityProperties) Deserialize(buf packets.Reader, _ protocol.Version) error {
	var err error
	if p.EntityID, err = buf.ReadVarInt(); err != nil {
		return err
	}
	count, err := buf.ReadInt()
	if err != nil {
		return err
	}
	p.Properties = make([]EntityProperty, count)
	for i := range p.Properties {
		prop := &p.Properties[i]
		if prop.Key, err = buf.ReadString(); err != nil {
			return err
		}
		if prop.Value, err = buf.ReadDouble(); err != nil {
			return err
		}
		modCount, err := buf.ReadVarInt()
		if err != nil {
			return err
		}
		prop.Modifiers = make([]EntityPropertyModifier, modCount)
		for j := range prop.Modifiers {
			mod := &prop.Modifiers[j]
			if mod.UUID, err = buf.ReadUUID(); err != nil {
				return err
			}
			if mod.Amount, err = buf.ReadDouble(); err != nil {
				return err
			}
			if mod.Operation, err = buf.ReadInt8(); err != nil {
				return err
			}
		}
	}
	return nil
}

// EntityEffect applies a status effect (potion effect) to an entity.
type EntityEffect struct {
	EntityID  int32
	EffectID  int8
	Amplifier int8
	Duration  int32
	Flags     uint8
}

func (*EntityEffect) Kind() string { return "EntityEffect" }
func (p *EntityEffect) Deserialize(buf packets.Reader, _ protocol.Version) error {
	var err error
	if p.EntityID, err = buf.ReadVarInt(); err != nil {
		return err
	}
	if p.EffectID, err = buf.ReadInt8(); err != nil {
		return err
	}
	if p.Amplifier, err = buf.ReadInt8(); err != nil {
		return err
	}
	if p.Duration, err = buf.ReadVarInt(); err != nil {
		return err
	}
	p.Flags, err = buf.ReadUByte()
	return err
}

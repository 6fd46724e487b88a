// Package out holds every outbound (client-to-server) packet type: about
// 40 records spanning Handshake, Status, Login, and Play, grounded on
// original_source/mclib/include/mclib/protocol/packets/Packet.h and its
// serverbound counterparts.
package out

import (
	"github.com/google/uuid"

	"github.com/Lemiort/mclib/packets"
	"github.com/Lemiort/mclib/protocol"
)

// Handshake is the sole Handshake-state packet (wire id 0x00): carries
// the client's chosen protocol version and the intended next state
// (spec.md §3).
type Handshake struct {
	ProtocolVersion int32
	ServerHost      string
	ServerPort      uint16
	NextState       protocol.State
}

func (*Handshake) Kind() string { return "Handshake" }
func (p *Handshake) Serialize(buf packets.Writer, _ protocol.Version) error {
	buf.WriteVarInt(p.ProtocolVersion)
	buf.WriteString(p.ServerHost)
	buf.WriteUShort(p.ServerPort)
	switch p.NextState {
	case protocol.Status:
		buf.WriteVarInt(1)
	case protocol.Login:
		buf.WriteVarInt(2)
	}
	return nil
}

// Request is the Status-state server-list-ping request (wire id 0x00,
// empty body).
type Request struct{}

func (*Request) Kind() string { return "Request" }
func (*Request) Serialize(packets.Writer, protocol.Version) error { return nil }

// Ping echoes a payload in the Status state (wire id 0x01).
type Ping struct {
	Payload int64
}

func (*Ping) Kind() string { return "Ping" }
func (p *Ping) Serialize(buf packets.Writer, _ protocol.Version) error {
	buf.WriteLong(p.Payload)
	return nil
}

// LoginStart begins the Login sequence (wire id 0x00, spec.md §4.6 step 2).
type LoginStart struct {
	Username string
}

func (*LoginStart) Kind() string { return "LoginStart" }
func (p *LoginStart) Serialize(buf packets.Writer, _ protocol.Version) error {
	buf.WriteString(p.Username)
	return nil
}

// EncryptionResponse replies to an inbound EncryptionRequest (wire id
// 0x01, spec.md §4.6 step 3) with the RSA-encrypted shared secret and
// verify token.
type EncryptionResponse struct {
	EncryptedSharedSecret []byte
	EncryptedVerifyToken  []byte
}

func (*EncryptionResponse) Kind() string { return "EncryptionResponse" }
func (p *EncryptionResponse) Serialize(buf packets.Writer, _ protocol.Version) error {
	buf.WriteVarInt(int32(len(p.EncryptedSharedSecret)))
	buf.WriteBytes(p.EncryptedSharedSecret)
	buf.WriteVarInt(int32(len(p.EncryptedVerifyToken)))
	buf.WriteBytes(p.EncryptedVerifyToken)
	return nil
}

// TeleportConfirm acknowledges an inbound PlayerPositionAndLook
// (spec.md §4.6's automatic reply).
type TeleportConfirm struct {
	TeleportID int32
}

func (*TeleportConfirm) Kind() string { return "TeleportConfirm" }
func (p *TeleportConfirm) Serialize(buf packets.Writer, _ protocol.Version) error {
	buf.WriteVarInt(p.TeleportID)
	return nil
}

// ChatMessage sends player chat.
type ChatMessage struct {
	Message string
}

func (*ChatMessage) Kind() string { return "ChatMessage" }
func (p *ChatMessage) Serialize(buf packets.Writer, _ protocol.Version) error {
	buf.WriteString(p.Message)
	return nil
}

// ClientStatus tells the server the client has respawned or opened the
// stats screen.
type ClientStatus struct {
	ActionID int32
}

func (*ClientStatus) Kind() string { return "ClientStatus" }
func (p *ClientStatus) Serialize(buf packets.Writer, _ protocol.Version) error {
	buf.WriteVarInt(p.ActionID)
	return nil
}

// ClientSettings mirrors the fluent builder of SPEC_FULL.md §10 (grounded
// on original_source/mclib/core/ClientSettings.h): locale, view distance,
// chat mode/colors, displayed skin parts, and main hand.
type ClientSettings struct {
	Locale              string
	ViewDistance        int8
	ChatMode            int32
	ChatColors          bool
	DisplayedSkinParts  uint8
	MainHand            int32
}

func (*ClientSettings) Kind() string { return "ClientSettings" }
func (p *ClientSettings) Serialize(buf packets.Writer, _ protocol.Version) error {
	buf.WriteString(p.Locale)
	buf.WriteInt8(p.ViewDistance)
	buf.WriteVarInt(p.ChatMode)
	buf.WriteBool(p.ChatColors)
	buf.WriteUByte(p.DisplayedSkinParts)
	buf.WriteVarInt(p.MainHand)
	return nil
}

// ConfirmTransaction acknowledges (or, per spec.md §4.8, actively echoes
// a rejection of) a server transaction.
type ConfirmTransaction struct {
	WindowID int8
	ActionID int16
	Accepted bool
}

func (*ConfirmTransaction) Kind() string { return "ConfirmTransaction" }
func (p *ConfirmTransaction) Serialize(buf packets.Writer, _ protocol.Version) error {
	buf.WriteInt8(p.WindowID)
	buf.WriteShort(p.ActionID)
	buf.WriteBool(p.Accepted)
	return nil
}

// ClickWindow drives PickUp/Place (spec.md §4.8).
type ClickWindow struct {
	WindowID    int32
	SlotIndex   int32
	Button      int8
	ActionID    int16
	Mode        int32
	ClickedItem packets.Slot
}

func (*ClickWindow) Kind() string { return "ClickWindow" }
func (p *ClickWindow) Serialize(buf packets.Writer, version protocol.Version) error {
	buf.WriteInt8(int8(p.WindowID))
	buf.WriteShort(int16(p.SlotIndex))
	buf.WriteInt8(p.Button)
	buf.WriteShort(p.ActionID)
	buf.WriteVarInt(p.Mode)
	p.ClickedItem.Serialize(buf, version)
	return nil
}

// CloseWindow tells the server the client closed windowId.
type CloseWindow struct {
	WindowID uint8
}

func (*CloseWindow) Kind() string { return "CloseWindow" }
func (p *CloseWindow) Serialize(buf packets.Writer, _ protocol.Version) error {
	buf.WriteUByte(p.WindowID)
	return nil
}

// PluginMessage carries an opaque payload on a named channel; the
// modded/plugin handshake that interprets it is an external collaborator
// per spec.md §1.
type PluginMessage struct {
	Channel string
	Data    []byte
}

func (*PluginMessage) Kind() string { return "PluginMessage" }
func (p *PluginMessage) Serialize(buf packets.Writer, _ protocol.Version) error {
	buf.WriteString(p.Channel)
	buf.WriteBytes(p.Data)
	return nil
}

// UseEntity attacks or interacts with an entity.
type UseEntity struct {
	EntityID int32
	Type     int32 // 0=interact, 1=attack, 2=interact at
	X, Y, Z  float32
	Hand     int32
}

func (*UseEntity) Kind() string { return "UseEntity" }
func (p *UseEntity) Serialize(buf packets.Writer, _ protocol.Version) error {
	buf.WriteVarInt(p.EntityID)
	buf.WriteVarInt(p.Type)
	if p.Type == 2 {
		buf.WriteFloat(p.X)
		buf.WriteFloat(p.Y)
		buf.WriteFloat(p.Z)
	}
	if p.Type == 0 || p.Type == 2 {
		buf.WriteVarInt(p.Hand)
	}
	return nil
}

// KeepAlive echoes an inbound KeepAlive payload (spec.md §4.6's
// automatic reply).
type KeepAlive struct {
	Payload int64
}

func (*KeepAlive) Kind() string { return "KeepAlive" }
func (p *KeepAlive) Serialize(buf packets.Writer, _ protocol.Version) error {
	buf.WriteLong(p.Payload)
	return nil
}

// Player is the heartbeat "on ground" packet sent every tick.
type Player struct {
	OnGround bool
}

func (*Player) Kind() string { return "Player" }
func (p *Player) Serialize(buf packets.Writer, _ protocol.Version) error {
	buf.WriteBool(p.OnGround)
	return nil
}

// PlayerPosition reports a position-only movement.
type PlayerPosition struct {
	X, Y, Z  float64
	OnGround bool
}

func (*PlayerPosition) Kind() string { return "PlayerPosition" }
func (p *PlayerPosition) Serialize(buf packets.Writer, _ protocol.Version) error {
	buf.WriteDouble(p.X)
	buf.WriteDouble(p.Y)
	buf.WriteDouble(p.Z)
	buf.WriteBool(p.OnGround)
	return nil
}

// PlayerLook reports a look-only movement.
type PlayerLook struct {
	Yaw, Pitch float32
	OnGround   bool
}

func (*PlayerLook) Kind() string { return "PlayerLook" }
func (p *PlayerLook) Serialize(buf packets.Writer, _ protocol.Version) error {
	buf.WriteFloat(p.Yaw)
	buf.WriteFloat(p.Pitch)
	buf.WriteBool(p.OnGround)
	return nil
}

// PlayerPositionAndLook reports a full position+look movement, and is
// also the shape of the automatic reply mirrored back after an inbound
// PlayerPositionAndLook (spec.md §4.6).
type PlayerPositionAndLook struct {
	X, Y, Z    float64
	Yaw, Pitch float32
	OnGround   bool
}

func (*PlayerPositionAndLook) Kind() string { return "PlayerPositionAndLook" }
func (p *PlayerPositionAndLook) Serialize(buf packets.Writer, _ protocol.Version) error {
	buf.WriteDouble(p.X)
	buf.WriteDouble(p.Y)
	buf.WriteDouble(p.Z)
	buf.WriteFloat(p.Yaw)
	buf.WriteFloat(p.Pitch)
	buf.WriteBool(p.OnGround)
	return nil
}

// VehicleMove reports the client-controlled position of a ridden vehicle.
type VehicleMove struct {
	X, Y, Z    float64
	Yaw, Pitch float32
}

func (*VehicleMove) Kind() string { return "VehicleMove" }
func (p *VehicleMove) Serialize(buf packets.Writer, _ protocol.Version) error {
	buf.WriteDouble(p.X)
	buf.WriteDouble(p.Y)
	buf.WriteDouble(p.Z)
	buf.WriteFloat(p.Yaw)
	buf.WriteFloat(p.Pitch)
	return nil
}

// PlayerAbilities reports client-side flying/invulnerability state.
type PlayerAbilities struct {
	Flags            uint8
	FlyingSpeed      float32
	WalkingSpeed     float32
}

func (*PlayerAbilities) Kind() string { return "PlayerAbilities" }
func (p *PlayerAbilities) Serialize(buf packets.Writer, _ protocol.Version) error {
	buf.WriteUByte(p.Flags)
	buf.WriteFloat(p.FlyingSpeed)
	buf.WriteFloat(p.WalkingSpeed)
	return nil
}

// PlayerDigging reports a dig start/cancel/finish and related actions.
type PlayerDigging struct {
	Status int32
	X, Y, Z int32
	Face    int8
}

func (*PlayerDigging) Kind() string { return "PlayerDigging" }
func (p *PlayerDigging) Serialize(buf packets.Writer, _ protocol.Version) error {
	buf.WriteVarInt(p.Status)
	buf.WritePosition(p.X, p.Y, p.Z)
	buf.WriteInt8(p.Face)
	return nil
}

// EntityAction reports sneak/sprint/horse-jump/leave-bed actions.
type EntityAction struct {
	EntityID  int32
	ActionID  int32
	JumpBoost int32
}

func (*EntityAction) Kind() string { return "EntityAction" }
func (p *EntityAction) Serialize(buf packets.Writer, _ protocol.Version) error {
	buf.WriteVarInt(p.EntityID)
	buf.WriteVarInt(p.ActionID)
	buf.WriteVarInt(p.JumpBoost)
	return nil
}

// HeldItemChange reports a hotbar slot change.
type HeldItemChange struct {
	Slot int16
}

func (*HeldItemChange) Kind() string { return "HeldItemChange" }
func (p *HeldItemChange) Serialize(buf packets.Writer, _ protocol.Version) error {
	buf.WriteShort(p.Slot)
	return nil
}

// CreativeInventoryAction sets a slot directly in creative mode.
type CreativeInventoryAction struct {
	Slot      int16
	ClickedItem packets.Slot
}

func (*CreativeInventoryAction) Kind() string { return "CreativeInventoryAction" }
func (p *CreativeInventoryAction) Serialize(buf packets.Writer, version protocol.Version) error {
	buf.WriteShort(p.Slot)
	p.ClickedItem.Serialize(buf, version)
	return nil
}

// Animation swings the client's arm.
type Animation struct {
	Hand int32
}

func (*Animation) Kind() string { return "Animation" }
func (p *Animation) Serialize(buf packets.Writer, _ protocol.Version) error {
	buf.WriteVarInt(p.Hand)
	return nil
}

// PlayerBlockPlacement places a block against a clicked face.
type PlayerBlockPlacement struct {
	X, Y, Z               int32
	Face                  int32
	Hand                  int32
	CursorX, CursorY, CursorZ float32
}

func (*PlayerBlockPlacement) Kind() string { return "PlayerBlockPlacement" }
func (p *PlayerBlockPlacement) Serialize(buf packets.Writer, _ protocol.Version) error {
	buf.WritePosition(p.X, p.Y, p.Z)
	buf.WriteVarInt(p.Face)
	buf.WriteVarInt(p.Hand)
	buf.WriteFloat(p.CursorX)
	buf.WriteFloat(p.CursorY)
	buf.WriteFloat(p.CursorZ)
	return nil
}

// UseItem uses the item in the client's hand (right-click with nothing
// targeted).
type UseItem struct {
	Hand int32
}

func (*UseItem) Kind() string { return "UseItem" }
func (p *UseItem) Serialize(buf packets.Writer, _ protocol.Version) error {
	buf.WriteVarInt(p.Hand)
	return nil
}

// ResourcePackStatus reports the client's handling of a resource pack
// push.
type ResourcePackStatus struct {
	Result int32
}

func (*ResourcePackStatus) Kind() string { return "ResourcePackStatus" }
func (p *ResourcePackStatus) Serialize(buf packets.Writer, _ protocol.Version) error {
	buf.WriteVarInt(p.Result)
	return nil
}

// TabComplete requests completion candidates for partially-typed chat
// text.
type TabComplete struct {
	Text string
}

func (*TabComplete) Kind() string { return "TabComplete" }
func (p *TabComplete) Serialize(buf packets.Writer, _ protocol.Version) error {
	buf.WriteString(p.Text)
	return nil
}

// EnchantItem requests enchanting the item in an open enchantment table
// window.
type EnchantItem struct {
	WindowID     int8
	EnchantmentID int8
}

func (*EnchantItem) Kind() string { return "EnchantItem" }
func (p *EnchantItem) Serialize(buf packets.Writer, _ protocol.Version) error {
	buf.WriteInt8(p.WindowID)
	buf.WriteInt8(p.EnchantmentID)
	return nil
}

// UpdateSign sends edited sign text.
type UpdateSign struct {
	X, Y, Z          int32
	Line1, Line2, Line3, Line4 string
}

func (*UpdateSign) Kind() string { return "UpdateSign" }
func (p *UpdateSign) Serialize(buf packets.Writer, _ protocol.Version) error {
	buf.WritePosition(p.X, p.Y, p.Z)
	buf.WriteString(p.Line1)
	buf.WriteString(p.Line2)
	buf.WriteString(p.Line3)
	buf.WriteString(p.Line4)
	return nil
}

// Spectate teleports a spectating client to the given entity's UUID.
type Spectate struct {
	TargetPlayer uuid.UUID
}

func (*Spectate) Kind() string { return "Spectate" }
func (p *Spectate) Serialize(buf packets.Writer, _ protocol.Version) error {
	buf.WriteUUID(p.TargetPlayer)
	return nil
}

// SteerVehicle reports ridden-vehicle steering input.
type SteerVehicle struct {
	Sideways, Forward float32
	Flags             uint8
}

func (*SteerVehicle) Kind() string { return "SteerVehicle" }
func (p *SteerVehicle) Serialize(buf packets.Writer, _ protocol.Version) error {
	buf.WriteFloat(p.Sideways)
	buf.WriteFloat(p.Forward)
	buf.WriteUByte(p.Flags)
	return nil
}

// CraftingBookData reports a recipe book UI interaction. The recipe
// book itself is outside mclib's scope (spec.md §1); mclib only
// transports the wire fields.
type CraftingBookData struct {
	Type int32
	Payload []byte
}

func (*CraftingBookData) Kind() string { return "CraftingBookData" }
func (p *CraftingBookData) Serialize(buf packets.Writer, _ protocol.Version) error {
	buf.WriteVarInt(p.Type)
	buf.WriteBytes(p.Payload)
	return nil
}

// AdvancementTab reports opening/closing the advancement screen.
type AdvancementTab struct {
	Action int32
	TabID  string
}

func (*AdvancementTab) Kind() string { return "AdvancementTab" }
func (p *AdvancementTab) Serialize(buf packets.Writer, _ protocol.Version) error {
	buf.WriteVarInt(p.Action)
	if p.Action == 0 {
		buf.WriteString(p.TabID)
	}
	return nil
}

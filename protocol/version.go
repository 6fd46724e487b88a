package protocol

// Version is an opaque tag identifying a specific wire version. All id
// tables and selected packet layouts are a function of this tag; it is
// fixed for the lifetime of a Connection and chosen before Login begins
// (spec.md §3).
type Version int32

// Supported protocol versions, named after their release, mirroring
// original_source's mc::protocol::Version enumeration.
const (
	Minecraft_1_8_9   Version = 47
	Minecraft_1_11    Version = 315
	Minecraft_1_12    Version = 335
	Minecraft_1_12_1  Version = 338
	Minecraft_1_12_2  Version = 340
	Minecraft_1_13_2  Version = 404
	Minecraft_1_14    Version = 477
	Minecraft_1_14_4  Version = 498
)

func (v Version) String() string {
	switch v {
	case Minecraft_1_8_9:
		return "1.8.9"
	case Minecraft_1_11:
		return "1.11"
	case Minecraft_1_12:
		return "1.12"
	case Minecraft_1_12_1:
		return "1.12.1"
	case Minecraft_1_12_2:
		return "1.12.2"
	case Minecraft_1_13_2:
		return "1.13.2"
	case Minecraft_1_14:
		return "1.14"
	case Minecraft_1_14_4:
		return "1.14.4"
	default:
		return "unknown"
	}
}

// SlotHasPresenceFlag reports whether this version's Slot serialisation
// uses the post-1.13 "present" boolean form rather than the legacy
// "-1 means empty" int16 id form (spec.md §3, Slot).
func (v Version) SlotHasPresenceFlag() bool {
	return v > Minecraft_1_12_2
}

// Package world implements the client-visible world model: bit-packed
// palette chunk sections stacked into chunk columns, and the block
// entities layered on top of them. Grounded on spec.md §4.7, which in
// turn re-expresses original_source/mclib's Chunk/ChunkColumn classes as
// a plain data type rather than a shared-pointer object graph (spec.md
// §9's "smart-pointer-shared ChunkColumnPtr" note).
package world

import (
	"errors"

	"github.com/Lemiort/mclib/databuffer"
)

// ErrInvalidChunkLayout is returned when a chunk section's on-wire
// bits-per-block or data-word count cannot be parsed consistently.
var ErrInvalidChunkLayout = errors.New("world: invalid chunk section layout")

const (
	sectionWidth  = 16
	sectionHeight = 16
	sectionDepth  = 16
	blocksPerSect = sectionWidth * sectionHeight * sectionDepth

	blockLightBytes = 2048
	skyLightBytes   = 2048

	defaultBitsPerBlock = 4
	globalPaletteBits    = 9
)

// Chunk is one 16x16x16 section of a ChunkColumn: a palette (empty in
// global-palette mode) and a dense array of bitsPerBlock-wide indices
// packed into 64-bit words (spec.md §3, §4.7).
type Chunk struct {
	bitsPerBlock int
	palette      []int32 // nil/empty => global palette mode
	data         []uint64
}

// NewChunk returns a freshly-allocated empty section: bitsPerBlock=4, a
// single palette entry of air (block state 0), and a zeroed data array
// (spec.md §4.7, "first write into a freshly-allocated empty chunk").
func NewChunk() *Chunk {
	return &Chunk{
		bitsPerBlock: defaultBitsPerBlock,
		palette:      []int32{0},
		data:         make([]uint64, wordsFor(blocksPerSect, defaultBitsPerBlock)),
	}
}

func wordsFor(count, bitsPerBlock int) int {
	return (count*bitsPerBlock + 63) / 64
}

func index(x, y, z int) int {
	return y*256 + z*16 + x
}

func inBounds(x, y, z int) bool {
	return x >= 0 && x < sectionWidth && y >= 0 && y < sectionHeight && z >= 0 && z < sectionDepth
}

// GetBlock returns the block state id at (x, y, z); out-of-bounds
// coordinates return 0 (air) rather than failing (spec.md §4.7).
func (c *Chunk) GetBlock(x, y, z int) int32 {
	if !inBounds(x, y, z) {
		return 0
	}
	value := c.readRaw(index(x, y, z))
	if len(c.palette) == 0 {
		return value
	}
	if int(value) >= len(c.palette) {
		return 0
	}
	return c.palette[value]
}

// SetBlock writes blockStateID at (x, y, z), resolving it through the
// palette (appending a new entry if necessary) when not in global-palette
// mode. Out-of-bounds coordinates are a no-op.
func (c *Chunk) SetBlock(x, y, z int, blockStateID int32) {
	if !inBounds(x, y, z) {
		return
	}
	var raw int32
	if len(c.palette) == 0 {
		raw = blockStateID
	} else {
		raw = c.paletteIndexFor(blockStateID)
	}
	c.writeRaw(index(x, y, z), uint64(raw))
}

// paletteIndexFor returns the palette slot for blockStateID, appending a
// new entry (and growing bitsPerBlock/data if the wider index no longer
// fits) when the state is not yet present.
func (c *Chunk) paletteIndexFor(blockStateID int32) int32 {
	for i, v := range c.palette {
		if v == blockStateID {
			return int32(i)
		}
	}
	newIndex := int32(len(c.palette))
	c.palette = append(c.palette, blockStateID)
	if requiredBits(len(c.palette)) > c.bitsPerBlock {
		c.growBitsPerBlock(requiredBits(len(c.palette)))
	}
	return newIndex
}

func requiredBits(paletteLen int) int {
	bits := 1
	for (1 << bits) < paletteLen {
		bits++
	}
	if bits < defaultBitsPerBlock {
		bits = defaultBitsPerBlock
	}
	return bits
}

// growBitsPerBlock re-packs every existing value into a wider data array.
func (c *Chunk) growBitsPerBlock(newBits int) {
	old := make([]int32, blocksPerSect)
	for i := 0; i < blocksPerSect; i++ {
		old[i] = int32(c.readRaw(i))
	}
	c.bitsPerBlock = newBits
	c.data = make([]uint64, wordsFor(blocksPerSect, newBits))
	for i, v := range old {
		c.writeRaw(i, uint64(v))
	}
}

// readRaw fetches the bitsPerBlock-wide value at block index i, stitching
// across a 64-bit word boundary when the span crosses one (spec.md §4.7).
func (c *Chunk) readRaw(i int) uint64 {
	bitIndex := i * c.bitsPerBlock
	startWord := bitIndex / 64
	offset := uint(bitIndex % 64)
	mask := uint64(1)<<uint(c.bitsPerBlock) - 1

	if offset+uint(c.bitsPerBlock) <= 64 {
		return (c.data[startWord] >> offset) & mask
	}
	return ((c.data[startWord] >> offset) | (c.data[startWord+1] << (64 - offset))) & mask
}

// writeRaw stores value (already masked to bitsPerBlock bits) at block
// index i, clearing the prior bits before ORing in the new ones.
func (c *Chunk) writeRaw(i int, value uint64) {
	bitIndex := i * c.bitsPerBlock
	startWord := bitIndex / 64
	offset := uint(bitIndex % 64)
	mask := uint64(1)<<uint(c.bitsPerBlock) - 1
	value &= mask

	c.data[startWord] = (c.data[startWord] &^ (mask << offset)) | (value << offset)
	if offset+uint(c.bitsPerBlock) > 64 {
		spill := 64 - offset
		c.data[startWord+1] = (c.data[startWord+1] &^ (mask >> spill)) | (value >> spill)
	}
}

// ReadChunkSection parses one section off buf per spec.md §4.7 steps 1-4,
// returning the decoded section with its block/sky light discarded (the
// source performs no light parsing either; see SPEC_FULL.md §9).
func ReadChunkSection(buf *databuffer.DataBuffer, skyLight bool) (*Chunk, error) {
	bitsByte, err := buf.ReadUByte()
	if err != nil {
		return nil, err
	}
	bitsPerBlock := int(bitsByte)
	if bitsPerBlock <= 0 {
		return nil, ErrInvalidChunkLayout
	}

	var palette []int32
	if bitsPerBlock < globalPaletteBits {
		length, err := buf.ReadVarInt()
		if err != nil {
			return nil, err
		}
		palette = make([]int32, length)
		for i := range palette {
			v, err := buf.ReadVarInt()
			if err != nil {
				return nil, err
			}
			palette[i] = v
		}
	}

	dataLength, err := buf.ReadVarInt()
	if err != nil {
		return nil, err
	}
	data := make([]uint64, dataLength)
	for i := range data {
		v, err := buf.ReadLong()
		if err != nil {
			return nil, err
		}
		data[i] = uint64(v)
	}

	if _, err := buf.ReadByteArray(blockLightBytes); err != nil {
		return nil, err
	}
	if skyLight {
		if _, err := buf.ReadByteArray(skyLightBytes); err != nil {
			return nil, err
		}
	}

	return &Chunk{bitsPerBlock: bitsPerBlock, palette: palette, data: data}, nil
}

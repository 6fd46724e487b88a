package world

import (
	"github.com/Lemiort/mclib/databuffer"
)

const sectionsPerColumn = 16

// ChunkColumn is the (chunkX, chunkZ)-identified stack of up to 16
// sections plus the block entities anchored in it (spec.md §3). Sections
// absent from sectionMask are nil.
type ChunkColumn struct {
	ChunkX, ChunkZ int32

	sections      [sectionsPerColumn]*Chunk
	sectionMask   uint16
	continuous    bool
	skyLight      bool
	blockEntities map[[3]int]*BlockEntity
}

// NewChunkColumn returns an empty column ready to receive decoded
// sections and block entities.
func NewChunkColumn(chunkX, chunkZ int32) *ChunkColumn {
	return &ChunkColumn{
		ChunkX:        chunkX,
		ChunkZ:        chunkZ,
		blockEntities: make(map[[3]int]*BlockEntity),
	}
}

// Section returns the section at index i (0..15), or nil if absent.
func (c *ChunkColumn) Section(i int) *Chunk {
	if i < 0 || i >= sectionsPerColumn {
		return nil
	}
	return c.sections[i]
}

// SectionMask reports which of the 16 section slots are present.
func (c *ChunkColumn) SectionMask() uint16 { return c.sectionMask }

// Continuous reports whether this column carries biome data (spec.md §3;
// the biome bytes themselves are read and discarded — see SPEC_FULL.md §9
// open question on biome parsing).
func (c *ChunkColumn) Continuous() bool { return c.continuous }

// GetBlock returns the block state id at absolute column-local
// coordinates; y spans 0..255 across all 16 sections. Coordinates outside
// the column, or falling in an absent section, return 0 (air).
func (c *ChunkColumn) GetBlock(x, y, z int) int32 {
	if y < 0 || y >= sectionsPerColumn*sectionHeight {
		return 0
	}
	section := c.sections[y/sectionHeight]
	if section == nil {
		return 0
	}
	return section.GetBlock(x, y%sectionHeight, z)
}

// SetBlock writes the block state id at absolute column-local
// coordinates, lazily allocating the target section if it was previously
// absent (spec.md §4.7's "freshly-allocated empty chunk" rule, lifted to
// column granularity).
func (c *ChunkColumn) SetBlock(x, y, z int, blockStateID int32) {
	if y < 0 || y >= sectionsPerColumn*sectionHeight {
		return
	}
	sectionIndex := y / sectionHeight
	if c.sections[sectionIndex] == nil {
		c.sections[sectionIndex] = NewChunk()
		c.sectionMask |= 1 << uint(sectionIndex)
	}
	c.sections[sectionIndex].SetBlock(x, y%sectionHeight, z, blockStateID)
}

// BlockEntityAt returns the block entity anchored at the given absolute
// coordinates, if any.
func (c *ChunkColumn) BlockEntityAt(x, y, z int) (*BlockEntity, bool) {
	be, ok := c.blockEntities[[3]int{x, y, z}]
	return be, ok
}

// SetBlockEntity anchors a block entity at its own coordinates, replacing
// any prior entity at that position.
func (c *ChunkColumn) SetBlockEntity(be *BlockEntity) {
	c.blockEntities[[3]int{be.X, be.Y, be.Z}] = be
}

// RemoveBlockEntity removes the block entity at the given coordinates.
func (c *ChunkColumn) RemoveBlockEntity(x, y, z int) {
	delete(c.blockEntities, [3]int{x, y, z})
}

// Decode parses this column's sections from buf: for each set bit in
// sectionMask, one ReadChunkSection call, in ascending section-index
// order (spec.md §4.7). When continuous, the 256 biome bytes that follow
// the sections are read and discarded.
func (c *ChunkColumn) Decode(buf *databuffer.DataBuffer, sectionMask uint16, continuous, skyLight bool) error {
	c.sectionMask = sectionMask
	c.continuous = continuous
	c.skyLight = skyLight

	for i := 0; i < sectionsPerColumn; i++ {
		if sectionMask&(1<<uint(i)) == 0 {
			continue
		}
		section, err := ReadChunkSection(buf, skyLight)
		if err != nil {
			return err
		}
		c.sections[i] = section
	}
	if continuous {
		if _, err := buf.ReadByteArray(sectionWidth * sectionDepth); err != nil {
			return err
		}
	}
	return nil
}

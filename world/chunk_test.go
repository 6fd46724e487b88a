package world

import "testing"

// TestChunkRoundTrip covers spec.md §8's universal invariant: for every
// bitsPerBlock in {4..8, 13}, set/get round-trips for every coordinate.
func TestChunkRoundTrip(t *testing.T) {
	for _, bits := range []int{4, 5, 6, 7, 8, 13} {
		c := &Chunk{
			bitsPerBlock: bits,
			data:         make([]uint64, wordsFor(blocksPerSect, bits)),
		}
		// Global-palette mode (bits >= 9) stores block state ids directly;
		// legacy-palette mode stores palette-relative indices. Exercise
		// values representative of each.
		for x := 0; x < sectionWidth; x++ {
			for y := 0; y < sectionHeight; y++ {
				for z := 0; z < sectionDepth; z++ {
					want := int32((x + y*3 + z*7) % (1 << uint(bits)))
					c.writeRaw(index(x, y, z), uint64(want))
				}
			}
		}
		for x := 0; x < sectionWidth; x++ {
			for y := 0; y < sectionHeight; y++ {
				for z := 0; z < sectionDepth; z++ {
					want := uint64((x + y*3 + z*7) % (1 << uint(bits)))
					got := c.readRaw(index(x, y, z))
					if got != want {
						t.Fatalf("bits=%d (%d,%d,%d): got %d want %d", bits, x, y, z, got, want)
					}
				}
			}
		}
	}
}

// TestChunkCrossWordLookup is spec.md §8 scenario 5: bitsPerBlock=5,
// palette [0..31], and a block index whose bit span (60..65) straddles a
// 64-bit word boundary per i = y*256 + z*16 + x. That's i=12: (x=12, y=0,
// z=0).
func TestChunkCrossWordLookup(t *testing.T) {
	palette := make([]int32, 32)
	for i := range palette {
		palette[i] = int32(i)
	}
	c := &Chunk{
		bitsPerBlock: 5,
		palette:      palette,
		data:         make([]uint64, wordsFor(blocksPerSect, 5)),
	}

	const x, y, z = 12, 0, 0
	i := index(x, y, z)
	if bitIndex := i * 5; bitIndex%64 == 0 || bitIndex%64+5 <= 64 {
		t.Fatalf("test fixture assumption broken: (%d,%d,%d) no longer straddles a word boundary (bit index %d)", x, y, z, bitIndex)
	}

	c.SetBlock(x, y, z, 27)
	if got := c.GetBlock(x, y, z); got != 27 {
		t.Fatalf("cross-word lookup: got %d want 27", got)
	}
}

func TestChunkOutOfBoundsReturnsAir(t *testing.T) {
	c := NewChunk()
	if got := c.GetBlock(-1, 0, 0); got != 0 {
		t.Fatalf("out-of-bounds GetBlock: got %d want 0", got)
	}
	c.SetBlock(16, 0, 0, 5) // no-op, must not panic
}

func TestChunkPaletteGrows(t *testing.T) {
	c := NewChunk()
	for i := int32(0); i < 20; i++ {
		c.SetBlock(0, 0, 0, i)
		if got := c.GetBlock(0, 0, 0); got != i {
			t.Fatalf("after growth, GetBlock(0,0,0) = %d want %d", got, i)
		}
	}
}

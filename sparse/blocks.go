package sparse

// blockHandle addresses one block within a map's blockStore. Handles
// are meaningless outside the store that issued them.
type blockHandle int

// blockStore owns the sparse data: one fixed-size packed record array
// per covered coverage pixel. It performs no spatial computation and
// trusts its caller on offset bounds.
type blockStore struct {
	recordSize   int
	blockRecords uint64
	sentinel     []byte // one sentinel record, the fill template
	blocks       [][]byte
}

func newBlockStore(schema *Schema, blockRecords uint64) *blockStore {
	return &blockStore{
		recordSize:   schema.RecordSize(),
		blockRecords: blockRecords,
		sentinel:     schema.sentinelRecord(),
	}
}

// allocate creates one block of blockRecords sentinel-filled records
// and returns its handle. A freshly allocated block reads as "no data"
// at every offset.
func (s *blockStore) allocate() blockHandle {
	block := make([]byte, int(s.blockRecords)*s.recordSize)
	for off := 0; off < len(block); off += s.recordSize {
		copy(block[off:off+s.recordSize], s.sentinel)
	}
	s.blocks = append(s.blocks, block)
	return blockHandle(len(s.blocks) - 1)
}

// read returns the packed record at the given local offset.
//
// The caller is responsible for h being a handle issued by this store
// and offset being within [0, blockRecords).
func (s *blockStore) read(h blockHandle, offset uint64) []byte {
	block := s.blocks[h]
	start := int(offset) * s.recordSize
	return block[start : start+s.recordSize]
}

// write overwrites the record at the given local offset. Same caller
// burden as read; rec must be exactly recordSize bytes.
func (s *blockStore) write(h blockHandle, offset uint64, rec []byte) {
	copy(s.read(h, offset), rec)
}

// numBlocks returns the count of allocated blocks.
func (s *blockStore) numBlocks() int {
	return len(s.blocks)
}

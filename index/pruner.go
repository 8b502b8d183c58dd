package index

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/blockstore-io/blockstore/go/common/log"
	"github.com/blockstore-io/blockstore/go/stats"
)

// FilterBlocks evaluates the filter over a segment's blocks and returns
// a mask with one bit per block, set when the block must be scanned.
func FilterBlocks(f *RangeFilter, blocks []stats.BlockStats) (*bitset.BitSet, error) {
	mask := bitset.New(uint(len(blocks)))
	for i, b := range blocks {
		scan, err := f.Eval(b)
		if err != nil {
			return nil, err
		}
		if scan {
			mask.Set(uint(i))
		}
	}
	log.Debug("block pruning done",
		log.Int("blocks", len(blocks)),
		log.Uint("scan", uint(mask.Count())))
	return mask, nil
}

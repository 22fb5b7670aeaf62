package blocking

import "sort"

// BlockSize names one block and its member count.
type BlockSize struct {
	Key  string `json:"key" yaml:"key"`
	Size int    `json:"size" yaml:"size"`
}

// Distribution summarizes how well blocking partitioned the catalog.
// Prefix-derived vocabularies degenerate on real titles (most prefixes
// are distinct, so most blocks are singletons and the few fat blocks
// carry nearly all candidate pairs); this diagnostic makes that visible
// instead of assuming effective partitioning.
type Distribution struct {
	Records        int         `json:"records" yaml:"records"`
	Assigned       int         `json:"assigned" yaml:"assigned"`
	Unassigned     int         `json:"unassigned" yaml:"unassigned"`
	Blocks         int         `json:"blocks" yaml:"blocks"`
	Singletons     int         `json:"singletons" yaml:"singletons"`
	CandidatePairs int         `json:"candidate_pairs" yaml:"candidate_pairs"`
	MaxSize        int         `json:"max_size" yaml:"max_size"`
	MeanSize       float64     `json:"mean_size" yaml:"mean_size"`
	Largest        []BlockSize `json:"largest" yaml:"largest"`
}

// Distribution computes the block-size distribution, reporting the top
// largest blocks (ties broken by key).
func (b *Blocks) Distribution(top int) Distribution {
	d := Distribution{
		Records:        b.assigned + b.unassigned,
		Assigned:       b.assigned,
		Unassigned:     b.unassigned,
		Blocks:         b.Len(),
		CandidatePairs: b.CandidatePairs(),
	}

	sizes := make([]BlockSize, 0, b.Len())
	for _, key := range b.keys {
		n := len(b.members[key])
		sizes = append(sizes, BlockSize{Key: key, Size: n})
		if n == 1 {
			d.Singletons++
		}
		if n > d.MaxSize {
			d.MaxSize = n
		}
	}
	if d.Blocks > 0 {
		d.MeanSize = float64(d.Assigned) / float64(d.Blocks)
	}

	sort.Slice(sizes, func(i, j int) bool {
		if sizes[i].Size != sizes[j].Size {
			return sizes[i].Size > sizes[j].Size
		}
		return sizes[i].Key < sizes[j].Key
	})
	if top > len(sizes) {
		top = len(sizes)
	}
	if top > 0 {
		d.Largest = sizes[:top]
	}
	return d
}

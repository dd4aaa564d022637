package vk

// StructureType mirrors VkStructureType: the sType tag that prefixes every
// extension struct in a pNext chain (§3: "pNext chains walked and
// serialised as tagged variant records").
type StructureType uint32

// sentinelStructureType terminates a decoded pNext chain — the "terminator
// = sentinel" rule of §4.3.
const sentinelStructureType StructureType = 0

// ExtStruct is one link of a pNext chain: a tagged, opaque byte blob. Real
// extension struct layouts are part of the external Vulkan schema (§1) and
// are out of core scope; the core only needs to walk the chain, not
// interpret every member, so each link is carried as raw bytes next to its
// sType tag.
type ExtStruct struct {
	SType StructureType
	Data  []byte
}

// Chain is a pNext chain: zero or more ExtStructs in declaration order.
type Chain []ExtStruct

// Clone deep-copies the chain's backing byte slices so the result is
// independent of the caller's memory, as required of any cloned creation
// info (§3 invariants).
func (c Chain) Clone() Chain {
	if c == nil {
		return nil
	}
	out := make(Chain, len(c))
	for i, e := range c {
		d := make([]byte, len(e.Data))
		copy(d, e.Data)
		out[i] = ExtStruct{SType: e.SType, Data: d}
	}
	return out
}

package ast

// NodeID identifies a node within one Tree's arena.
type NodeID uint32

// NoNodeID is the invalid node ID.
const NoNodeID NodeID = 0

// IsValid reports whether the ID refers to an allocated node.
func (id NodeID) IsValid() bool {
	return id != NoNodeID
}

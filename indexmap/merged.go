// Package indexmap: merged renumbering across a sequence of block columns.
package indexmap

// MergedIndex translates a block-scaled global index of block column
// field into the flat numbering of a merged pattern.
//
// The merged numbering concatenates, rank by rank in ascending order,
// each rank's owned span of every block column in field order. An
// index owned by rank p therefore lands after all spans of ranks
// below p and after p's spans of the block columns before field.
//
// scaled is a scalar (block-size-scaled) index in the numbering of
// maps[field]; the result is scalar in the merged numbering, whose
// block size is 1.
//
// Returns ErrNilMap for nil entries, ErrBadShape for an empty map
// sequence or field outside it, ErrBlockSizeMismatch when the maps
// disagree on block size, and ErrIndexOutOfRange for an index outside
// the field's global extent.
// Complexity: O(P·F) for P ranks and F block columns.
func MergedIndex(maps []*Map, field int, scaled int64) (int64, error) {
	if len(maps) == 0 || field < 0 || field >= len(maps) {
		return 0, ErrBadShape
	}
	for _, m := range maps {
		if m == nil {
			return 0, ErrNilMap
		}
		if m.BlockSize() != maps[0].BlockSize() {
			return 0, ErrBlockSizeMismatch
		}
	}

	bs := int64(maps[field].BlockSize())
	if scaled < 0 || scaled >= bs*maps[field].Size(Global) {
		return 0, ErrIndexOutOfRange
	}
	node := scaled / bs
	component := scaled % bs

	owner, err := maps[field].Owner(node)
	if err != nil {
		return 0, err
	}

	// Nodes of every block column on ranks below the owner.
	var base int64
	for p := 0; p < owner; p++ {
		for _, m := range maps {
			n, errOwned := m.OwnedOn(p)
			if errOwned != nil {
				return 0, errOwned
			}
			base += n
		}
	}
	// The owner's spans of the block columns before field.
	for _, m := range maps[:field] {
		n, errOwned := m.OwnedOn(owner)
		if errOwned != nil {
			return 0, errOwned
		}
		base += n
	}

	local := node - maps[field].rangeStart(owner)

	return bs*(base+local) + component, nil
}

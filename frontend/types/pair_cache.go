package types

import (
	set "github.com/hashicorp/go-set/v3"

	"github.com/knot-lang/knot/frontend/ir"
)

// typePair holds a pair of types assumed related while a coinductive
// check is in flight.
type typePair struct {
	lhs ir.Type
	rhs ir.Type
}

func (p *typePair) Hash() uint64 {
	return 31*p.lhs.Hash() ^ p.rhs.Hash()
}

type pairSet = set.HashSet[*typePair, uint64]

func newPairSet() *pairSet {
	return set.NewHashSet[*typePair, uint64](0)
}

// assumed reports whether an alpha-equivalent pair is already in seen.
// Membership cannot be hash identity: two RecTypes that differ only in
// their binder name hash differently but close the same cycle, so each
// candidate is compared shape-wise under a fresh renaming.
func assumed(seen *pairSet, lhs, rhs ir.Type) bool {
	for pair := range seen.Items() {
		if alphaShapeEqual(pair.lhs, lhs, nil) && alphaShapeEqual(pair.rhs, rhs, nil) {
			return true
		}
	}
	return false
}

// assuming returns a copy of seen that also contains (lhs, rhs). The
// original is never touched, so sibling recursions cannot observe each
// other's hypotheses.
func assuming(seen *pairSet, lhs, rhs ir.Type) *pairSet {
	grown := set.NewHashSet[*typePair, uint64](seen.Size() + 1)
	for pair := range seen.Items() {
		grown.Insert(pair)
	}
	grown.Insert(&typePair{lhs: lhs, rhs: rhs})
	return grown
}

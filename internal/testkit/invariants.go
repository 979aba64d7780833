package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"arithrank/internal/arith"
)

// CheckTableInvariants runs the consistency checks over the rank facility:
// 1) every arithmetic type has a category and a rank that fits in a byte
// 2) every tier member classifies into the tier's category, exactly once
// 3) members of one tier share their rank
// 4) the rank rule is reflexive and never crosses categories
func CheckTableInvariants() error {
	all := arith.All()
	if len(all) == 0 {
		return fmt.Errorf("no arithmetic types registered")
	}

	// 1) totality
	for _, t := range all {
		if _, ok := t.Category(); !ok {
			return fmt.Errorf("%s has no category", t)
		}
		r, ok := t.Rank()
		if !ok {
			return fmt.Errorf("%s is classified but has no rank", t)
		}
		if _, err := safecast.Conv[uint8](r); err != nil {
			return fmt.Errorf("%s rank %d out of range: %w", t, r, err)
		}
	}

	// 2) tiers agree with the classifier; 3) tier members share a rank
	seen := make(map[arith.Type]bool, len(all))
	for _, tier := range arith.Tiers() {
		if len(tier.Members) == 0 {
			return fmt.Errorf("empty %s tier at rank %d", tier.Category, tier.Rank)
		}
		for _, t := range tier.Members {
			if seen[t] {
				return fmt.Errorf("%s appears in more than one tier", t)
			}
			seen[t] = true
			if c := t.MustCategory(); c != tier.Category {
				return fmt.Errorf("%s classifies as %s but sits in a %s tier", t, c, tier.Category)
			}
			if r := t.MustRank(); r != tier.Rank {
				return fmt.Errorf("%s has rank %d, tier says %d", t, r, tier.Rank)
			}
		}
	}
	if len(seen) != len(all) {
		return fmt.Errorf("tiers cover %d of %d types", len(seen), len(all))
	}

	// 4) predicate sanity
	for _, a := range all {
		if !arith.SafeByRank(a, a) {
			return fmt.Errorf("rank rule is not reflexive for %s", a)
		}
		for _, b := range all {
			if a.MustCategory() != b.MustCategory() && arith.SafeByRank(a, b) {
				return fmt.Errorf("rank rule accepts cross-category pair %s -> %s", a, b)
			}
		}
	}
	return nil
}

package arith

import "fmt"

// Verdict records every fact SafeByRank looked at for one ordered pair.
type Verdict struct {
	A, B Type

	// Known is false when either side is outside the arithmetic set.
	Known         bool
	SameCategory  bool
	SignViolation bool // A is not unsigned while B is
	RankA, RankB  int
	Safe          bool
}

// Explain evaluates the rank rule for (a, b) and keeps the intermediate
// results. A verdict is safe only when both types share a category, there is
// no sign violation and rank(a) >= rank(b).
func Explain(a, b Type) Verdict {
	v := Verdict{A: a, B: b}
	ca, okA := a.Category()
	cb, okB := b.Category()
	ra, rankA := a.Rank()
	rb, rankB := b.Rank()
	if !okA || !okB || !rankA || !rankB {
		return v
	}
	v.Known = true
	v.SameCategory = ca == cb
	v.SignViolation = !a.UnsignedForSafety() && b.UnsignedForSafety()
	v.RankA, v.RankB = ra, rb
	v.Safe = v.SameCategory && !v.SignViolation && ra >= rb
	return v
}

// Reason describes why the verdict came out the way it did.
func (v Verdict) Reason() string {
	switch {
	case !v.Known:
		return "not an arithmetic type pair"
	case !v.SameCategory:
		return fmt.Sprintf("category mismatch: %s vs %s", v.A.MustCategory(), v.B.MustCategory())
	case v.SignViolation:
		return fmt.Sprintf("%s is signed but %s is unsigned", v.A, v.B)
	case v.RankA < v.RankB:
		return fmt.Sprintf("rank %d of %s is below rank %d of %s", v.RankA, v.A, v.RankB, v.B)
	default:
		return fmt.Sprintf("%s covers %s (rank %d >= %d)", v.A, v.B, v.RankA, v.RankB)
	}
}

// SafeByRank reports whether a can stand in for b: same category, no
// signed/unsigned violation, and a is ranked at least as high as b.
// Pairs involving unknown tokens are never safe.
func SafeByRank(a, b Type) bool {
	return Explain(a, b).Safe
}

// Convertible reports whether a value of type from may be implicitly turned
// into to. The target must cover the source, so the rank rule is evaluated
// with the target first.
func Convertible(from, to Type) bool {
	return SafeByRank(to, from)
}

// Targets keeps the candidates that a value of type from converts to safely,
// preserving their order.
func Targets(from Type, candidates []Type) []Type {
	var out []Type
	for _, c := range candidates {
		if Convertible(from, c) {
			out = append(out, c)
		}
	}
	return out
}

package arith

import "fmt"

// Overrides win over the integral default below.
var categoryOverrides = map[Type]Category{
	TypeChar:       CategoryCharacter,
	TypeSChar:      CategoryCharacter,
	TypeUChar:      CategoryCharacter,
	TypeChar16:     CategoryCharacter,
	TypeChar32:     CategoryCharacter,
	TypeWChar:      CategoryWideCharacter,
	TypeBool:       CategoryBoolean,
	TypeFloat:      CategoryFloating,
	TypeDouble:     CategoryFloating,
	TypeLongDouble: CategoryFloating,
}

// integral mirrors the usual language notion: booleans and every character
// type count as integral, floating types do not.
func (t Type) integral() bool {
	switch t {
	case TypeBool,
		TypeChar, TypeSChar, TypeUChar, TypeChar16, TypeChar32, TypeWChar,
		TypeShort, TypeUShort, TypeInt, TypeUInt,
		TypeLong, TypeULong, TypeLongLong, TypeULongLong:
		return true
	default:
		return false
	}
}

// Category classifies t. ok is false for tokens outside the arithmetic set;
// there is no fallback category.
func (t Type) Category() (Category, bool) {
	if c, ok := categoryOverrides[t]; ok {
		return c, true
	}
	if t.integral() {
		return CategoryInteger, true
	}
	return CategoryInvalid, false
}

// MustCategory panics when t is not classifiable.
func (t Type) MustCategory() Category {
	c, ok := t.Category()
	if !ok {
		panic(fmt.Sprintf("arith: no category for %s", t))
	}
	return c
}

var nativeUnsigned = map[Type]bool{
	TypeBool:      true,
	TypeUChar:     true,
	TypeChar16:    true,
	TypeChar32:    true,
	TypeUShort:    true,
	TypeUInt:      true,
	TypeULong:     true,
	TypeULongLong: true,
}

// Plain char is always treated as signed, whatever the target's native
// signedness for it is. This keeps verdicts identical across platforms.
var unsignedOverrides = map[Type]bool{
	TypeChar: false,
}

// UnsignedForSafety reports whether t counts as unsigned for the
// sign-violation rule of SafeByRank.
func (t Type) UnsignedForSafety() bool {
	if u, ok := unsignedOverrides[t]; ok {
		return u
	}
	return nativeUnsigned[t]
}

// Tier groups the types that share one rank inside a category. Signed and
// unsigned variants of a width always come from the same tier.
type Tier struct {
	Category Category
	Rank     int
	Members  []Type
}

func pair(c Category, rank int, signed, unsigned Type) Tier {
	return Tier{Category: c, Rank: rank, Members: []Type{signed, unsigned}}
}

func single(c Category, rank int, t Type) Tier {
	return Tier{Category: c, Rank: rank, Members: []Type{t}}
}

// signed char sits one tier below char: char is pinned next to unsigned char
// even though it is treated as signed.
var rankTiers = []Tier{
	single(CategoryBoolean, 0, TypeBool),

	single(CategoryCharacter, 0, TypeSChar),
	pair(CategoryCharacter, 1, TypeChar, TypeUChar),
	single(CategoryCharacter, 2, TypeChar16),
	single(CategoryCharacter, 3, TypeChar32),

	single(CategoryWideCharacter, 0, TypeWChar),

	pair(CategoryInteger, 0, TypeShort, TypeUShort),
	pair(CategoryInteger, 1, TypeInt, TypeUInt),
	pair(CategoryInteger, 2, TypeLong, TypeULong),
	pair(CategoryInteger, 3, TypeLongLong, TypeULongLong),

	single(CategoryFloating, 0, TypeFloat),
	single(CategoryFloating, 1, TypeDouble),
	single(CategoryFloating, 2, TypeLongDouble),
}

var ranks = buildRanks(rankTiers)

func buildRanks(tiers []Tier) map[Type]int {
	out := make(map[Type]int, typeCount)
	for _, tier := range tiers {
		for _, t := range tier.Members {
			if _, dup := out[t]; dup {
				panic(fmt.Sprintf("arith: %s ranked twice", t))
			}
			out[t] = tier.Rank
		}
	}
	return out
}

// Tiers returns a copy of the rank table.
func Tiers() []Tier {
	out := make([]Tier, len(rankTiers))
	for i, tier := range rankTiers {
		tier.Members = append([]Type(nil), tier.Members...)
		out[i] = tier
	}
	return out
}

// Rank returns the portable rank of t within its category. ok is false when
// the table has no entry; there is no default rank.
func (t Type) Rank() (int, bool) {
	r, ok := ranks[t]
	return r, ok
}

// MustRank panics when t has no rank entry.
func (t Type) MustRank() int {
	r, ok := t.Rank()
	if !ok {
		panic(fmt.Sprintf("arith: no rank for %s", t))
	}
	return r
}

package arith

import "testing"

func TestTypeOfMarkers(t *testing.T) {
	markers := []struct {
		want Type
		got  func() Type
	}{
		{TypeBool, TypeOf[Bool]},
		{TypeChar, TypeOf[Char]},
		{TypeSChar, TypeOf[SChar]},
		{TypeUChar, TypeOf[UChar]},
		{TypeChar16, TypeOf[Char16]},
		{TypeChar32, TypeOf[Char32]},
		{TypeWChar, TypeOf[WChar]},
		{TypeShort, TypeOf[Short]},
		{TypeUShort, TypeOf[UShort]},
		{TypeInt, TypeOf[Int]},
		{TypeUInt, TypeOf[UInt]},
		{TypeLong, TypeOf[Long]},
		{TypeULong, TypeOf[ULong]},
		{TypeLongLong, TypeOf[LongLong]},
		{TypeULongLong, TypeOf[ULongLong]},
		{TypeFloat, TypeOf[Float]},
		{TypeDouble, TypeOf[Double]},
		{TypeLongDouble, TypeOf[LongDouble]},
	}
	if len(markers) != len(All()) {
		t.Fatalf("%d markers for %d types", len(markers), len(All()))
	}
	for _, m := range markers {
		if got := m.got(); got != m.want {
			t.Fatalf("marker for %s resolves to %s", m.want, got)
		}
	}
}

func TestGenericQueries(t *testing.T) {
	if got := CategoryOf[Char](); got != CategoryCharacter {
		t.Fatalf("CategoryOf[Char] = %v", got)
	}
	if got := CategoryOf[WChar](); got != CategoryWideCharacter {
		t.Fatalf("CategoryOf[WChar] = %v", got)
	}
	if got := CategoryOf[Bool](); got != CategoryBoolean {
		t.Fatalf("CategoryOf[Bool] = %v", got)
	}
	if got := RankOf[LongDouble](); got != 2 {
		t.Fatalf("RankOf[LongDouble] = %d", got)
	}
	if RankOf[Int]() != RankOf[UInt]() {
		t.Fatalf("int and unsigned int must share a rank")
	}
	if IsUnsignedForSafety[Char]() {
		t.Fatalf("Char must be signed for safety")
	}
	if !IsUnsignedForSafety[UChar]() {
		t.Fatalf("UChar must be unsigned")
	}
}

func TestGenericSafety(t *testing.T) {
	if !IsSafeByRank[Int, Int]() {
		t.Fatalf("IsSafeByRank[Int, Int] should hold")
	}
	if IsSafeByRank[Double, Int]() {
		t.Fatalf("floating -> integer must not be safe")
	}
	if !SafelyConvertible[Int, UInt]() {
		t.Fatalf("int -> unsigned int of equal rank should be safe")
	}
	if SafelyConvertible[UInt, Int]() {
		t.Fatalf("unsigned int -> int must not be safe")
	}
	if !SafelyConvertible[Char16, Char32]() || SafelyConvertible[Char32, Char16]() {
		t.Fatalf("char16_t/char32_t direction is wrong")
	}
	if !SafelyConvertible[SChar, Char]() {
		t.Fatalf("signed char -> char should be safe")
	}
}

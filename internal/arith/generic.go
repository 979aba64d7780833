package arith

// Arithmetic is satisfied only by the marker types declared in this file.
// Instantiating any of the queries below with another type fails to build.
type Arithmetic interface {
	arithmeticType() Type
}

type (
	Bool       struct{}
	Char       struct{}
	SChar      struct{}
	UChar      struct{}
	Char16     struct{}
	Char32     struct{}
	WChar      struct{}
	Short      struct{}
	UShort     struct{}
	Int        struct{}
	UInt       struct{}
	Long       struct{}
	ULong      struct{}
	LongLong   struct{}
	ULongLong  struct{}
	Float      struct{}
	Double     struct{}
	LongDouble struct{}
)

func (Bool) arithmeticType() Type       { return TypeBool }
func (Char) arithmeticType() Type       { return TypeChar }
func (SChar) arithmeticType() Type      { return TypeSChar }
func (UChar) arithmeticType() Type      { return TypeUChar }
func (Char16) arithmeticType() Type     { return TypeChar16 }
func (Char32) arithmeticType() Type     { return TypeChar32 }
func (WChar) arithmeticType() Type      { return TypeWChar }
func (Short) arithmeticType() Type      { return TypeShort }
func (UShort) arithmeticType() Type     { return TypeUShort }
func (Int) arithmeticType() Type        { return TypeInt }
func (UInt) arithmeticType() Type       { return TypeUInt }
func (Long) arithmeticType() Type       { return TypeLong }
func (ULong) arithmeticType() Type      { return TypeULong }
func (LongLong) arithmeticType() Type   { return TypeLongLong }
func (ULongLong) arithmeticType() Type  { return TypeULongLong }
func (Float) arithmeticType() Type      { return TypeFloat }
func (Double) arithmeticType() Type     { return TypeDouble }
func (LongDouble) arithmeticType() Type { return TypeLongDouble }

// TypeOf returns the token for a marker type.
func TypeOf[T Arithmetic]() Type {
	var zero T
	return zero.arithmeticType()
}

// CategoryOf classifies T.
func CategoryOf[T Arithmetic]() Category {
	return TypeOf[T]().MustCategory()
}

// RankOf returns the rank of T within its category.
func RankOf[T Arithmetic]() int {
	return TypeOf[T]().MustRank()
}

// IsUnsignedForSafety reports T's signedness as seen by the sign rule;
// Char is always signed here.
func IsUnsignedForSafety[T Arithmetic]() bool {
	return TypeOf[T]().UnsignedForSafety()
}

// IsSafeByRank is the rank rule on marker types: A covers B.
func IsSafeByRank[A, B Arithmetic]() bool {
	return SafeByRank(TypeOf[A](), TypeOf[B]())
}

// SafelyConvertible reports whether a From value may implicitly become a To.
func SafelyConvertible[From, To Arithmetic]() bool {
	return IsSafeByRank[To, From]()
}

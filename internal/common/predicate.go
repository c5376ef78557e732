package common

// UnknownStr is returned by String methods for out-of-range enum values.
const UnknownStr = "unknown"

type number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// IsInRange checks if a value is within the specified range, both inclusive.
func IsInRange[T number](min T, value T, max T) bool {
	return min <= value && value <= max
}

// IsInLeftOpenRange checks if a value is within (min, max].
func IsInLeftOpenRange[T number](min T, value T, max T) bool {
	return min < value && value <= max
}

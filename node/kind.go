package node

import "deep-cloner/internal/common"

type DispatcherEnum int

const (
	DispatcherUnknown DispatcherEnum = iota
	DispatcherPrimitive
	DispatcherRecord
	DispatcherSequence
	DispatcherSlice
	DispatcherMap
	DispatcherStruct
	DispatcherPointer

	// DispatcherTotal is a constant that represents the total number of kinds defined
	DispatcherTotal = int(iota)
)

func (d DispatcherEnum) String() string {
	switch d {
	case DispatcherPrimitive:
		return "primitive"
	case DispatcherRecord:
		return "record"
	case DispatcherSequence:
		return "sequence"
	case DispatcherSlice:
		return "slice"
	case DispatcherMap:
		return "map"
	case DispatcherStruct:
		return "struct"
	case DispatcherPointer:
		return "pointer"
	default:
		return common.UnknownStr
	}
}

// IsComposite reports whether values of this shape have enumerable properties.
func (d DispatcherEnum) IsComposite() bool {
	switch d {
	default:
		return false
	case DispatcherRecord, DispatcherSequence, DispatcherSlice, DispatcherMap, DispatcherStruct:
		return true
	}
}

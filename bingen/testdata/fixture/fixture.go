// Package fixture declares one type of every shape bingen understands.
package fixture

import (
	"github.com/wippyai/plbin/binfile"
	"github.com/wippyai/plbin/ref"
)

// Color is an enum.
//
//bingen:enum
type Color uint16

const (
	ColorRed Color = iota
	ColorGreen
	ColorBlue
)

// Perm is a flag set.
//
//bingen:flags
type Perm uint8

const (
	PermRead Perm = 1 << iota
	PermWrite
)

// Point is referenced from an ordered map.
//
//bingen:record
type Point struct {
	X, Y int32
}

// Shape is a union with a renamed case.
//
//bingen:union repr=uint16
//bingen:case Circle
//bingen:case Rect Rectangle
type Shape interface {
	Kind() ShapeKind
}

type Circle struct {
	Radius uint32
}

type Rectangle struct {
	W, H uint32
}

// Sample has a field of every supported shape.
//
//bingen:record
type Sample struct {
	ID     uint32
	Name   string
	Ok     bool
	Color  Color
	Perm   Perm
	Alias  *string
	Parent *ref.TypeRef
	Tags   []string
	Counts map[string]uint64
	Table  binfile.OrderedMap[string, Point]
	Digest [4]uint8
	Wide   binfile.U128
	Shape  Shape
	Shapes []Shape
}

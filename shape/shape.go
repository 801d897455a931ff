package shape

import (
	"github.com/katalvlaran/kgraphcore/bitmatrix"
	"github.com/katalvlaran/kgraphcore/ids"
)

const (
	opNewValidator  = "NewValidator"
	opRegisterShape = "RegisterShape"
	opSetClass      = "SetClass"
	opSetProperty   = "SetProperty"
	opValidateNode  = "ValidateNode"
)

// CompiledShape is the bitmask-tuple representation of one precompiled
// shape. TargetClassMask and RequiredPropertyMask carry the hot-path
// constraint; Extended carries everything else (cardinality, in-set,
// length/numeric bounds, logical combinators, property paths; there is
// no datatype constraint) and is nil for a shape that only uses the hot
// path.
type CompiledShape struct {
	TargetClassMask      []uint64
	RequiredPropertyMask []uint64
	Extended             *ExtendedConstraints

	registered bool
}

// Validator holds the node-class and node-property matrices plus the
// registered shape slots. Its zero value is not usable; construct with
// NewValidator.
type Validator struct {
	maxNodes      uint32
	maxClasses    uint32
	maxProperties uint32

	nodeClass *bitmatrix.Matrix // rows = nodes, cols = classes
	nodeProp  *bitmatrix.Matrix // rows = nodes, cols = properties

	shapes []CompiledShape
}

// NewValidator allocates a Validator sized for maxNodes nodes,
// maxClasses classes, maxProperties properties, and maxShapes shape
// slots (all initially unregistered).
func NewValidator(maxNodes, maxClasses, maxProperties, maxShapes uint32) (*Validator, error) {
	nodeClass, err := bitmatrix.NewMatrix(int(maxNodes), int(maxClasses))
	if err != nil {
		return nil, shapeErrorf(opNewValidator, ErrCapacityExceeded)
	}
	nodeProp, err := bitmatrix.NewMatrix(int(maxNodes), int(maxProperties))
	if err != nil {
		return nil, shapeErrorf(opNewValidator, ErrCapacityExceeded)
	}
	if maxShapes == 0 {
		return nil, shapeErrorf(opNewValidator, ErrInvalidDimensions)
	}

	return &Validator{
		maxNodes:      maxNodes,
		maxClasses:    maxClasses,
		maxProperties: maxProperties,
		nodeClass:     nodeClass,
		nodeProp:      nodeProp,
		shapes:        make([]CompiledShape, maxShapes),
	}, nil
}

// SetClass mirrors an rdf:type(node, class) fact into the node-class
// matrix. Called by the orchestrator at triple-insert time, never by the
// validation hot path.
func (v *Validator) SetClass(node, class ids.ID) error {
	if err := ids.CheckRange(ids.SortSubject, node, v.maxNodes); err != nil {
		return shapeErrorf(opSetClass, err)
	}
	if err := ids.CheckRange(ids.SortClass, class, v.maxClasses); err != nil {
		return shapeErrorf(opSetClass, err)
	}
	_ = v.nodeClass.Set(int(node), int(class))

	return nil
}

// SetProperty mirrors a has-property(node, property) fact into the
// node-property matrix.
func (v *Validator) SetProperty(node, property ids.ID) error {
	if err := ids.CheckRange(ids.SortSubject, node, v.maxNodes); err != nil {
		return shapeErrorf(opSetProperty, err)
	}
	if err := ids.CheckRange(ids.SortProperty, property, v.maxProperties); err != nil {
		return shapeErrorf(opSetProperty, err)
	}
	_ = v.nodeProp.Set(int(node), int(property))

	return nil
}

// RegisterShape installs a compiled shape at slot. The mask slices must
// have length equal to the validator's node-class / node-property row
// stride respectively; RegisterShape does not itself build masks from
// class/property ID lists (see NewTargetClassMask / NewPropertyMask).
func (v *Validator) RegisterShape(slot ids.ID, s CompiledShape) error {
	if int(slot) >= len(v.shapes) {
		return shapeErrorf(opRegisterShape, ErrOutOfRange)
	}
	if len(s.TargetClassMask) != v.nodeClass.Stride() {
		return shapeErrorf(opRegisterShape, ErrInvalidDimensions)
	}
	if len(s.RequiredPropertyMask) != v.nodeProp.Stride() {
		return shapeErrorf(opRegisterShape, ErrInvalidDimensions)
	}
	s.registered = true
	v.shapes[slot] = s

	return nil
}

// NewTargetClassMask builds a class-mask row of the validator's stride
// with the given class bits set. Convenience for callers that want to
// name classes rather than hand-roll word arithmetic.
func (v *Validator) NewTargetClassMask(classes ...ids.ID) []uint64 {
	return newMask(v.nodeClass.Stride(), classes)
}

// NewPropertyMask builds a property-mask row of the validator's stride
// with the given property bits set.
func (v *Validator) NewPropertyMask(properties ...ids.ID) []uint64 {
	return newMask(v.nodeProp.Stride(), properties)
}

func newMask(stride int, members []ids.ID) []uint64 {
	mask := make([]uint64, stride)
	for _, m := range members {
		word := int(m) / 64
		if word >= stride {
			continue
		}
		mask[word] |= uint64(1) << uint(m%64)
	}

	return mask
}

// ValidateNode runs the fixed hot-path sequence from §4.4:
//
//  1. Load shape.
//  2. Load the node's class row.
//  3. AND with target_class_mask; zero -> not targeted -> valid.
//  4. Load the node's property row.
//  5. (node_properties AND required_property_mask) == required_property_mask,
//     else invalid.
//
// If the shape has extended constraints, they are dispatched after step
// 5 passes (validateExtended leaves the fixed-instruction budget
// entirely, per §4.4 step 6). An empty (never-registered) shape slot is
// ErrUnknownShape, regardless of node.
func (v *Validator) ValidateNode(node, shapeSlot ids.ID) (bool, error) {
	if int(shapeSlot) >= len(v.shapes) || !v.shapes[shapeSlot].registered {
		return false, shapeErrorf(opValidateNode, ErrUnknownShape)
	}
	if node >= v.maxNodes {
		return false, shapeErrorf(opValidateNode, ErrOutOfRange)
	}
	s := &v.shapes[shapeSlot]

	classRow := v.nodeClass.Row(int(node))
	if !bitmatrix.AnyAnd(classRow, s.TargetClassMask) {
		return true, nil
	}

	propRow := v.nodeProp.Row(int(node))
	if !bitmatrix.ContainsAll(propRow, s.RequiredPropertyMask) {
		return false, nil
	}

	if s.Extended != nil {
		return validateExtended(v, node, s.Extended)
	}

	return true, nil
}

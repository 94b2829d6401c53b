// Package scene implements the deduplicated scene graph store and the
// AST-to-store builder. The store is an arena of immutable, interned
// entries addressed by small integer ids, grounded on gazed-vu's
// asset.go "depot" cache (look the value up by a canonical key before
// allocating a new slot) generalized with Go generics since the scene
// store interns several unrelated value kinds.
package scene

// NodeID addresses an SDF node in the Store.
type NodeID int

// PatternID addresses a Pattern in the Store.
type PatternID int

// MaterialID addresses a Material in the Store.
type MaterialID int

// TransformID addresses a Transform in the Store.
type TransformID int

// LightID addresses a Light in the Store.
type LightID int

// CameraID addresses a Camera in the Store.
type CameraID int

// TargetID addresses a render Target in the Store.
type TargetID int

// NoMaterial is the sentinel MaterialID meaning "no material resolved
// yet", returned by the distance evaluator for nodes with no painted
// ancestor.
const NoMaterial MaterialID = -1

package component

import "github.com/jakecoffman/cp"

// Collider is the collision volume used for hover detection. Shape is the
// static box registered in the keyboard's space; its UserData is the owning
// entity as uint64.
type Collider struct {
	Width  float64
	Height float64
	Shape  *cp.Shape
}

var ColliderComponent = NewComponent[Collider]()

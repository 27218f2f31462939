package component

// Name is the scene name of an entity, used for logging and config lookup.
type Name struct {
	Value string
}

var NameComponent = NewComponent[Name]()

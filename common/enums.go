// Package common keeps enumerations shared by configuration, the frame engine
// and the scenario runner. Enum code is produced by go-enum.
package common

//go:generate go tool go-enum --marshal --names

// Where a new page goes relative to existing pages.
// ENUM(atEnd, atBeginning, after, before)
type PageLocation int

// What to do with frames already created when bulk threading fails midway.
// ENUM(keep, discard)
type ThreadFailurePolicy int

// Scenario step operation.
// ENUM(create, remove, link, unlink, insert, thread, reconcile, overflow, info, list, chain, addPage, validate, dump)
type StepOp int

// NeedsReference reports whether page insertion is relative to another page.
func (l PageLocation) NeedsReference() bool {
	return l == PageLocationAfter || l == PageLocationBefore
}

// Mutating reports whether step changes the document.
func (o StepOp) Mutating() bool {
	switch o {
	case StepOpCreate, StepOpRemove, StepOpLink, StepOpUnlink, StepOpInsert,
		StepOpThread, StepOpReconcile, StepOpAddPage:
		return true
	default:
		return false
	}
}

package story

import "nyxventure/internal/node"

// Artifact is an item that moves through the story. The game holds the
// complete list; a chapter may hold a reference while the artifact lies
// there. An artifact used through a link may be exhausted afterwards.
type Artifact struct {
	node.Base
	name        string
	description string
	exhausted   bool
}

// NewArtifact returns an unattached artifact.
func NewArtifact() *Artifact {
	a := &Artifact{}
	a.Init(a)
	return a
}

func (a *Artifact) Kind() Kind          { return KindArtifact }
func (a *Artifact) Label() string       { return a.name }
func (a *Artifact) Name() string        { return a.name }
func (a *Artifact) Description() string { return a.description }
func (a *Artifact) Exhausted() bool     { return a.exhausted }

func (a *Artifact) SetName(v string) bool { return node.SetProperty(a, &a.name, v, "Name") }
func (a *Artifact) SetDescription(v string) bool {
	return node.SetProperty(a, &a.description, v, "Description")
}
func (a *Artifact) SetExhausted(v bool) bool {
	return node.SetProperty(a, &a.exhausted, v, "Exhausted")
}

func (a *Artifact) specs() []fieldSpec {
	return []fieldSpec{
		stringField("Name", a.Name, a.SetName),
		stringField("Description", a.Description, a.SetDescription),
		boolField("Exhausted", a.Exhausted, a.SetExhausted),
	}
}

func (a *Artifact) Fields() []Field { return listFields(a.specs()) }

func (a *Artifact) SetField(property string, value any) error {
	return assignField(KindArtifact, a.specs(), property, value)
}

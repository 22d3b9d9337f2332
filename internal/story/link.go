package story

import "nyxventure/internal/node"

// Link leads from the chapter owning it to a target chapter. A link may
// require an artifact, and may exhaust it when followed. Target and
// RequiredArtifact reference entities owned elsewhere and are never wired for
// bubbling.
type Link struct {
	node.Base
	text             string
	consumesArtifact bool
	target           *Chapter
	requiredArtifact *Artifact
}

// NewLink returns an unattached link.
func NewLink() *Link {
	l := &Link{}
	l.Init(l)
	return l
}

func (l *Link) Kind() Kind                  { return KindLink }
func (l *Link) Label() string               { return l.text }
func (l *Link) Text() string                { return l.text }
func (l *Link) ConsumesArtifact() bool      { return l.consumesArtifact }
func (l *Link) Target() *Chapter            { return l.target }
func (l *Link) RequiredArtifact() *Artifact { return l.requiredArtifact }

func (l *Link) SetText(v string) bool { return node.SetProperty(l, &l.text, v, "Text") }
func (l *Link) SetConsumesArtifact(v bool) bool {
	return node.SetProperty(l, &l.consumesArtifact, v, "ConsumesArtifact")
}

// SetTarget points the link at c. Pass nil to unset.
func (l *Link) SetTarget(c *Chapter) bool { return node.SetProperty(l, &l.target, c, "Target") }

// SetRequiredArtifact makes following the link depend on a. Pass nil to unset.
func (l *Link) SetRequiredArtifact(a *Artifact) bool {
	return node.SetProperty(l, &l.requiredArtifact, a, "RequiredArtifact")
}

// Usable reports whether the link can be followed: it requires no artifact or
// the required artifact is not exhausted.
func (l *Link) Usable() bool {
	return l.requiredArtifact == nil || !l.requiredArtifact.Exhausted()
}

// Follow returns the target chapter, exhausting the required artifact when
// the link consumes it. It returns false when the link is not usable.
func (l *Link) Follow() (*Chapter, bool) {
	if !l.Usable() {
		return nil, false
	}
	if l.consumesArtifact && l.requiredArtifact != nil {
		l.requiredArtifact.SetExhausted(true)
	}
	return l.target, true
}

func (l *Link) specs() []fieldSpec {
	return []fieldSpec{
		stringField("Text", l.Text, l.SetText),
		boolField("ConsumesArtifact", l.ConsumesArtifact, l.SetConsumesArtifact),
	}
}

func (l *Link) Fields() []Field { return listFields(l.specs()) }

func (l *Link) SetField(property string, value any) error {
	return assignField(KindLink, l.specs(), property, value)
}

// References lists the target chapter and required artifact when set.
func (l *Link) References() []Reference {
	var out []Reference
	if l.target != nil {
		out = append(out, Reference{Name: "Target", Target: l.target})
	}
	if l.requiredArtifact != nil {
		out = append(out, Reference{Name: "RequiredArtifact", Target: l.requiredArtifact})
	}
	return out
}

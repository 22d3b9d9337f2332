package story

import "nyxventure/internal/node"

// Chapter describes a situation or place in the story. Its links lead to
// further chapters; a chapter without links ends the story. Artifacts lying
// in the chapter are references to artifacts the game owns.
type Chapter struct {
	node.Base
	name      string
	text      string
	links     *node.List[*Link]
	artifacts *node.Set[*Artifact]
	slots     slotTable
}

// NewChapter returns an unattached chapter without links.
func NewChapter() *Chapter {
	c := &Chapter{}
	c.Init(c)
	c.links = node.NewList[*Link](c, "Links")
	c.artifacts = node.NewSet[*Artifact](c, "Artifacts")
	c.slots = slotTable{
		c.links.Name(): listSlot(c.links, KindLink, c.CreateLink),
	}
	return c
}

func (c *Chapter) Kind() Kind    { return KindChapter }
func (c *Chapter) Label() string { return c.name }
func (c *Chapter) Name() string  { return c.name }
func (c *Chapter) Text() string  { return c.text }

func (c *Chapter) SetName(v string) bool { return node.SetProperty(c, &c.name, v, "Name") }
func (c *Chapter) SetText(v string) bool { return node.SetProperty(c, &c.text, v, "Text") }

// Terminal reports whether the story ends in this chapter.
func (c *Chapter) Terminal() bool { return c.links.Len() == 0 }

func (c *Chapter) Links() []*Link { return c.links.Items() }

// AddLink appends an existing link without wiring its bubbling.
func (c *Chapter) AddLink(l *Link) { c.links.Add(l) }

// OwnLink appends an existing link and wires its bubbling.
func (c *Chapter) OwnLink(l *Link) error { return c.links.Own(l) }

// CreateLink creates a link owned by this chapter.
func (c *Chapter) CreateLink() *Link {
	l := NewLink()
	_ = c.links.Own(l)
	return l
}

// RemoveLink releases l and reports whether it was a link of this chapter.
func (c *Chapter) RemoveLink(l *Link) bool { return c.links.Remove(l) }

func (c *Chapter) Artifacts() []*Artifact { return c.artifacts.Items() }

func (c *Chapter) HasArtifact(a *Artifact) bool { return c.artifacts.Contains(a) }

// PlaceArtifact puts a in the chapter. It reports whether a was not there yet.
func (c *Chapter) PlaceArtifact(a *Artifact) bool { return c.artifacts.Add(a) }

// TakeArtifact removes a from the chapter. It reports whether a was there.
func (c *Chapter) TakeArtifact(a *Artifact) bool { return c.artifacts.Remove(a) }

func (c *Chapter) specs() []fieldSpec {
	return []fieldSpec{
		stringField("Name", c.Name, c.SetName),
		stringField("Text", c.Text, c.SetText),
	}
}

func (c *Chapter) Fields() []Field { return listFields(c.specs()) }

func (c *Chapter) SetField(property string, value any) error {
	return assignField(KindChapter, c.specs(), property, value)
}

func (c *Chapter) Create(slot string) (Entity, error) { return c.slots.create(KindChapter, slot) }

func (c *Chapter) Add(slot string, e Entity) error { return c.slots.add(KindChapter, slot, e) }

func (c *Chapter) Own(slot string, e Entity) error { return c.slots.own(KindChapter, slot, e) }

func (c *Chapter) Remove(slot string, e Entity) (bool, error) {
	return c.slots.remove(KindChapter, slot, e)
}

// References lists the artifacts lying in the chapter.
func (c *Chapter) References() []Reference {
	items := c.artifacts.Items()
	out := make([]Reference, len(items))
	for i, a := range items {
		out[i] = Reference{Name: c.artifacts.Name(), Target: a}
	}
	return out
}

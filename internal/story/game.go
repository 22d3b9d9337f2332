package story

import "nyxventure/internal/node"

// Game is the root of a story definition.
type Game struct {
	node.Base
	title          string
	description    string
	author         string
	genre          string
	startChapter   *node.Ref[*Chapter]
	chapters       *node.List[*Chapter]
	features       *node.List[*Feature]
	skills         *node.List[*Skill]
	characterTypes *node.List[*CharacterType]
	artifacts      *node.List[*Artifact]
	slots          slotTable
}

// NewGame returns an empty game.
func NewGame() *Game {
	g := &Game{}
	g.Init(g)
	g.startChapter = node.NewRef[*Chapter](g, "StartChapter")
	g.chapters = node.NewList[*Chapter](g, "Chapters")
	g.features = node.NewList[*Feature](g, "Features")
	g.skills = node.NewList[*Skill](g, "Skills")
	g.characterTypes = node.NewList[*CharacterType](g, "CharacterTypes")
	g.artifacts = node.NewList[*Artifact](g, "Artifacts")
	g.slots = slotTable{
		g.startChapter.Name():   refSlot(g.startChapter, KindChapter, g.CreateStartChapter),
		g.chapters.Name():       listSlot(g.chapters, KindChapter, g.CreateChapter),
		g.features.Name():       listSlot(g.features, KindFeature, g.CreateFeature),
		g.skills.Name():         listSlot(g.skills, KindSkill, g.CreateSkill),
		g.characterTypes.Name(): listSlot(g.characterTypes, KindCharacterType, g.CreateCharacterType),
		g.artifacts.Name():      listSlot(g.artifacts, KindArtifact, g.CreateArtifact),
	}
	return g
}

func (g *Game) Kind() Kind          { return KindGame }
func (g *Game) Label() string       { return g.title }
func (g *Game) Title() string       { return g.title }
func (g *Game) Description() string { return g.description }
func (g *Game) Author() string      { return g.author }
func (g *Game) Genre() string       { return g.genre }

func (g *Game) SetTitle(v string) bool { return node.SetProperty(g, &g.title, v, "Title") }
func (g *Game) SetDescription(v string) bool {
	return node.SetProperty(g, &g.description, v, "Description")
}
func (g *Game) SetAuthor(v string) bool { return node.SetProperty(g, &g.author, v, "Author") }
func (g *Game) SetGenre(v string) bool  { return node.SetProperty(g, &g.genre, v, "Genre") }

// StartChapter returns the chapter the story begins with, or nil.
func (g *Game) StartChapter() *Chapter { return refValue(g.startChapter) }

// SetStartChapter sets c as start chapter without wiring its bubbling. A
// previously owned start chapter is released.
func (g *Game) SetStartChapter(c *Chapter) { g.startChapter.Set(c) }

// OwnStartChapter sets c as start chapter and wires its bubbling.
func (g *Game) OwnStartChapter(c *Chapter) error { return g.startChapter.Own(c) }

// CreateStartChapter creates an owned start chapter, replacing the current one.
func (g *Game) CreateStartChapter() *Chapter {
	c := NewChapter()
	_ = g.startChapter.Own(c)
	return c
}

// RemoveStartChapter releases the start chapter.
func (g *Game) RemoveStartChapter() { g.startChapter.Clear() }

func (g *Game) Chapters() []*Chapter        { return g.chapters.Items() }
func (g *Game) AddChapter(c *Chapter)       { g.chapters.Add(c) }
func (g *Game) OwnChapter(c *Chapter) error { return g.chapters.Own(c) }
func (g *Game) RemoveChapter(c *Chapter) bool {
	return g.chapters.Remove(c)
}

// CreateChapter creates a chapter owned by the game.
func (g *Game) CreateChapter() *Chapter {
	c := NewChapter()
	_ = g.chapters.Own(c)
	return c
}

func (g *Game) Features() []*Feature        { return g.features.Items() }
func (g *Game) AddFeature(f *Feature)       { g.features.Add(f) }
func (g *Game) OwnFeature(f *Feature) error { return g.features.Own(f) }
func (g *Game) RemoveFeature(f *Feature) bool {
	return g.features.Remove(f)
}

// CreateFeature creates a feature owned by the game.
func (g *Game) CreateFeature() *Feature {
	f := NewFeature()
	_ = g.features.Own(f)
	return f
}

func (g *Game) Skills() []*Skill        { return g.skills.Items() }
func (g *Game) AddSkill(s *Skill)       { g.skills.Add(s) }
func (g *Game) OwnSkill(s *Skill) error { return g.skills.Own(s) }
func (g *Game) RemoveSkill(s *Skill) bool {
	return g.skills.Remove(s)
}

// CreateSkill creates a skill owned by the game.
func (g *Game) CreateSkill() *Skill {
	s := NewSkill()
	_ = g.skills.Own(s)
	return s
}

func (g *Game) CharacterTypes() []*CharacterType         { return g.characterTypes.Items() }
func (g *Game) AddCharacterType(ct *CharacterType)       { g.characterTypes.Add(ct) }
func (g *Game) OwnCharacterType(ct *CharacterType) error { return g.characterTypes.Own(ct) }
func (g *Game) RemoveCharacterType(ct *CharacterType) bool {
	return g.characterTypes.Remove(ct)
}

// CreateCharacterType creates a character type owned by the game.
func (g *Game) CreateCharacterType() *CharacterType {
	ct := NewCharacterType()
	_ = g.characterTypes.Own(ct)
	return ct
}

func (g *Game) Artifacts() []*Artifact        { return g.artifacts.Items() }
func (g *Game) AddArtifact(a *Artifact)       { g.artifacts.Add(a) }
func (g *Game) OwnArtifact(a *Artifact) error { return g.artifacts.Own(a) }
func (g *Game) RemoveArtifact(a *Artifact) bool {
	return g.artifacts.Remove(a)
}

// CreateArtifact creates an artifact owned by the game.
func (g *Game) CreateArtifact() *Artifact {
	a := NewArtifact()
	_ = g.artifacts.Own(a)
	return a
}

func (g *Game) specs() []fieldSpec {
	return []fieldSpec{
		stringField("Title", g.Title, g.SetTitle),
		stringField("Description", g.Description, g.SetDescription),
		stringField("Author", g.Author, g.SetAuthor),
		stringField("Genre", g.Genre, g.SetGenre),
	}
}

func (g *Game) Fields() []Field { return listFields(g.specs()) }

func (g *Game) SetField(property string, value any) error {
	return assignField(KindGame, g.specs(), property, value)
}

func (g *Game) Create(slot string) (Entity, error) { return g.slots.create(KindGame, slot) }

func (g *Game) Add(slot string, e Entity) error { return g.slots.add(KindGame, slot, e) }

func (g *Game) Own(slot string, e Entity) error { return g.slots.own(KindGame, slot, e) }

func (g *Game) Remove(slot string, e Entity) (bool, error) {
	return g.slots.remove(KindGame, slot, e)
}

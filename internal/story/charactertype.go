package story

import "nyxventure/internal/node"

// CharacterType is a kind of character the player can choose. It stores base
// points for features and skills the game owns; those entities are never
// wired as its children.
type CharacterType struct {
	node.Base
	name              string
	description       string
	baseFeaturePoints *node.Table[*Feature, int]
	baseSkillPoints   *node.Table[*Skill, int]
}

// NewCharacterType returns an unattached character type without points.
func NewCharacterType() *CharacterType {
	ct := &CharacterType{}
	ct.Init(ct)
	ct.baseFeaturePoints = node.NewTable[*Feature, int](ct, "BaseFeaturePoints")
	ct.baseSkillPoints = node.NewTable[*Skill, int](ct, "BaseSkillPoints")
	return ct
}

func (ct *CharacterType) Kind() Kind          { return KindCharacterType }
func (ct *CharacterType) Label() string       { return ct.name }
func (ct *CharacterType) Name() string        { return ct.name }
func (ct *CharacterType) Description() string { return ct.description }

func (ct *CharacterType) SetName(v string) bool { return node.SetProperty(ct, &ct.name, v, "Name") }
func (ct *CharacterType) SetDescription(v string) bool {
	return node.SetProperty(ct, &ct.description, v, "Description")
}

// BaseFeaturePoint returns the base points for f, or node.NotFound when f has
// no points on this character type.
func (ct *CharacterType) BaseFeaturePoint(f *Feature) int {
	if p, ok := ct.baseFeaturePoints.Lookup(f); ok {
		return p
	}
	return node.NotFound
}

// SetBaseFeaturePoint stores points for f, adding f to the table when new.
func (ct *CharacterType) SetBaseFeaturePoint(f *Feature, points int) {
	ct.baseFeaturePoints.Set(f, points)
}

// RemoveBaseFeaturePoint drops f from the table.
func (ct *CharacterType) RemoveBaseFeaturePoint(f *Feature) bool {
	return ct.baseFeaturePoints.Remove(f)
}

// BaseFeaturePoints returns the feature table in insertion order.
func (ct *CharacterType) BaseFeaturePoints() []node.Entry[*Feature, int] {
	return ct.baseFeaturePoints.Entries()
}

// BaseSkillPoint returns the base points for s, or node.NotFound.
func (ct *CharacterType) BaseSkillPoint(s *Skill) int {
	if p, ok := ct.baseSkillPoints.Lookup(s); ok {
		return p
	}
	return node.NotFound
}

func (ct *CharacterType) SetBaseSkillPoint(s *Skill, points int) { ct.baseSkillPoints.Set(s, points) }

func (ct *CharacterType) RemoveBaseSkillPoint(s *Skill) bool { return ct.baseSkillPoints.Remove(s) }

func (ct *CharacterType) BaseSkillPoints() []node.Entry[*Skill, int] {
	return ct.baseSkillPoints.Entries()
}

// SetBasePoints stores points for a feature or skill. value may be any
// integral number.
func (ct *CharacterType) SetBasePoints(e Entity, value any) error {
	n, ok := asInt(value)
	if !ok {
		return invalidValueError{kind: KindCharacterType, property: "points", want: "integer", value: value}
	}
	switch v := e.(type) {
	case *Feature:
		ct.SetBaseFeaturePoint(v, n)
	case *Skill:
		ct.SetBaseSkillPoint(v, n)
	default:
		return pointsKindError(e)
	}
	return nil
}

// RemoveBasePoints drops the points stored for a feature or skill.
func (ct *CharacterType) RemoveBasePoints(e Entity) (bool, error) {
	switch v := e.(type) {
	case *Feature:
		return ct.RemoveBaseFeaturePoint(v), nil
	case *Skill:
		return ct.RemoveBaseSkillPoint(v), nil
	}
	return false, pointsKindError(e)
}

func pointsKindError(e Entity) error {
	got := Kind("nil")
	if e != nil {
		got = e.Kind()
	}
	return kindMismatchError{slot: "BasePoints", want: KindFeature + " or " + KindSkill, got: got}
}

func (ct *CharacterType) specs() []fieldSpec {
	return []fieldSpec{
		stringField("Name", ct.Name, ct.SetName),
		stringField("Description", ct.Description, ct.SetDescription),
	}
}

func (ct *CharacterType) Fields() []Field { return listFields(ct.specs()) }

func (ct *CharacterType) SetField(property string, value any) error {
	return assignField(KindCharacterType, ct.specs(), property, value)
}

// References lists the feature and skill point entries.
func (ct *CharacterType) References() []Reference {
	var out []Reference
	for _, e := range ct.baseFeaturePoints.Entries() {
		out = append(out, Reference{Name: ct.baseFeaturePoints.Name(), Target: e.Key, Value: e.Value})
	}
	for _, e := range ct.baseSkillPoints.Entries() {
		out = append(out, Reference{Name: ct.baseSkillPoints.Name(), Target: e.Key, Value: e.Value})
	}
	return out
}

package story

import "nyxventure/internal/node"

// Skill is an ability a character improves through play.
type Skill struct {
	node.Base
	name        string
	description string
	minValue    int
	maxValue    int
}

// NewSkill returns an unattached skill.
func NewSkill() *Skill {
	s := &Skill{}
	s.Init(s)
	return s
}

func (s *Skill) Kind() Kind          { return KindSkill }
func (s *Skill) Label() string       { return s.name }
func (s *Skill) Name() string        { return s.name }
func (s *Skill) Description() string { return s.description }
func (s *Skill) MinValue() int       { return s.minValue }
func (s *Skill) MaxValue() int       { return s.maxValue }

func (s *Skill) SetName(v string) bool { return node.SetProperty(s, &s.name, v, "Name") }
func (s *Skill) SetDescription(v string) bool {
	return node.SetProperty(s, &s.description, v, "Description")
}
func (s *Skill) SetMinValue(v int) bool { return node.SetProperty(s, &s.minValue, v, "MinValue") }
func (s *Skill) SetMaxValue(v int) bool { return node.SetProperty(s, &s.maxValue, v, "MaxValue") }

func (s *Skill) specs() []fieldSpec {
	return []fieldSpec{
		stringField("Name", s.Name, s.SetName),
		stringField("Description", s.Description, s.SetDescription),
		intField("MinValue", s.MinValue, s.SetMinValue),
		intField("MaxValue", s.MaxValue, s.SetMaxValue),
	}
}

func (s *Skill) Fields() []Field { return listFields(s.specs()) }

func (s *Skill) SetField(property string, value any) error {
	return assignField(KindSkill, s.specs(), property, value)
}

package story

import "nyxventure/internal/node"

// Feature is a property of a character that can change over time, such as
// health, strength or mana.
type Feature struct {
	node.Base
	name        string
	description string
	minValue    int
	maxValue    int
}

// NewFeature returns an unattached feature.
func NewFeature() *Feature {
	f := &Feature{}
	f.Init(f)
	return f
}

func (f *Feature) Kind() Kind          { return KindFeature }
func (f *Feature) Label() string       { return f.name }
func (f *Feature) Name() string        { return f.name }
func (f *Feature) Description() string { return f.description }
func (f *Feature) MinValue() int       { return f.minValue }
func (f *Feature) MaxValue() int       { return f.maxValue }

func (f *Feature) SetName(v string) bool { return node.SetProperty(f, &f.name, v, "Name") }
func (f *Feature) SetDescription(v string) bool {
	return node.SetProperty(f, &f.description, v, "Description")
}
func (f *Feature) SetMinValue(v int) bool { return node.SetProperty(f, &f.minValue, v, "MinValue") }
func (f *Feature) SetMaxValue(v int) bool { return node.SetProperty(f, &f.maxValue, v, "MaxValue") }

func (f *Feature) specs() []fieldSpec {
	return []fieldSpec{
		stringField("Name", f.Name, f.SetName),
		stringField("Description", f.Description, f.SetDescription),
		intField("MinValue", f.MinValue, f.SetMinValue),
		intField("MaxValue", f.MaxValue, f.SetMaxValue),
	}
}

func (f *Feature) Fields() []Field { return listFields(f.specs()) }

func (f *Feature) SetField(property string, value any) error {
	return assignField(KindFeature, f.specs(), property, value)
}

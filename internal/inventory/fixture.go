package inventory

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/logistics-api/internal/entities/items"
	"github.com/KirkDiggler/logistics-api/internal/errors"
)

// Fixture is the YAML document describing a set of named containers
//
//	containers:
//	  - id: drawer-1
//	    slots:
//	      - declared: 999
//	        ceiling: 10
//	        allow: [minecraft:cobblestone]
//	        stack: {id: minecraft:cobblestone, max_stack: 64, count: 5}
//	      - declared: 64
//	        copies: 26
type Fixture struct {
	Containers []ContainerFixture `yaml:"containers"`
}

// ContainerFixture describes one container
type ContainerFixture struct {
	ID    string        `yaml:"id"`
	Slots []SlotFixture `yaml:"slots"`
}

// SlotFixture describes a slot template. Copies repeats it; zero means once.
type SlotFixture struct {
	Declared    int           `yaml:"declared"`
	Ceiling     int           `yaml:"ceiling"`
	Allow       []string      `yaml:"allow"`
	StackCapped bool          `yaml:"stack_capped"`
	Refusing    bool          `yaml:"refusing"`
	Copies      int           `yaml:"copies"`
	Stack       *StackFixture `yaml:"stack"`
}

// StackFixture describes an initial slot occupant
type StackFixture struct {
	ID       string            `yaml:"id"`
	MaxStack int               `yaml:"max_stack"`
	Count    int               `yaml:"count"`
	Tags     []string          `yaml:"tags"`
	Meta     map[string]string `yaml:"meta"`
}

// Named pairs a container with its fixture id
type Named struct {
	ID        string
	Container *Memory
}

// Stack converts the fixture into a stack, defaulting the natural limit
func (f *StackFixture) Stack() items.Stack {
	if f == nil {
		return items.Empty
	}
	maxStack := f.MaxStack
	if maxStack == 0 {
		maxStack = items.DefaultMaxStackSize
	}
	var meta items.Metadata
	if len(f.Meta) > 0 {
		meta = items.Metadata(f.Meta)
	}
	return items.Stack{
		Kind:  items.Kind{ID: f.ID, MaxStackSize: maxStack, Tags: items.NormalizeTags(f.Tags)},
		Meta:  meta,
		Count: f.Count,
	}
}

// LoadFixture decodes and validates a fixture, returning containers in document order
func LoadFixture(r io.Reader) ([]Named, error) {
	var doc Fixture
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, errors.InvalidArgument("fixture is empty")
		}
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse fixture")
	}

	seen := make(map[string]bool, len(doc.Containers))
	out := make([]Named, 0, len(doc.Containers))
	for i, c := range doc.Containers {
		if c.ID == "" {
			return nil, errors.InvalidArgumentf("container %d is missing an id", i)
		}
		if seen[c.ID] {
			return nil, errors.AlreadyExistsf("container %s is defined twice", c.ID)
		}
		seen[c.ID] = true

		slots, err := expandSlots(c)
		if err != nil {
			return nil, err
		}
		out = append(out, Named{ID: c.ID, Container: NewMemory(slots...)})
	}

	return out, nil
}

func expandSlots(c ContainerFixture) ([]SlotConfig, error) {
	var slots []SlotConfig
	for i, sf := range c.Slots {
		vb := errors.NewValidationBuilder()
		errors.ValidateNonNegative("declared", sf.Declared, vb)
		errors.ValidateNonNegative("ceiling", sf.Ceiling, vb)
		errors.ValidateNonNegative("copies", sf.Copies, vb)
		if sf.Stack != nil {
			errors.ValidateRequired("stack.id", sf.Stack.ID, vb)
			errors.ValidateNonNegative("stack.count", sf.Stack.Count, vb)
			errors.ValidateNonNegative("stack.max_stack", sf.Stack.MaxStack, vb)
			if sf.Declared > 0 && sf.Stack.Count > sf.Declared {
				vb.Fieldf("stack.count", "exceeds declared limit %d", sf.Declared)
			}
		}
		if err := vb.Build(); err != nil {
			return nil, errors.Wrapf(err, "invalid slot %d of container %s", i, c.ID)
		}

		copies := max(sf.Copies, 1)
		for range copies {
			slots = append(slots, SlotConfig{
				Declared:    sf.Declared,
				Ceiling:     sf.Ceiling,
				Allow:       sf.Allow,
				StackCapped: sf.StackCapped,
				Refusing:    sf.Refusing,
				Stack:       sf.Stack.Stack(),
			})
		}
	}
	return slots, nil
}

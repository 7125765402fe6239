package tween

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/phanxgames/tween/easing"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// ErrInvalidPreset is wrapped by every preset validation error.
var ErrInvalidPreset = errors.New("tween: invalid preset")

// PropertySet is a partial set of endpoint values. Nil fields are left
// unconfigured.
type PropertySet struct {
	Translation    *Vec2
	Scale          *Vec2
	Rotation       *float64
	Opacity        *float64
	Color          *Color
	LayoutPosition *Vec2
	Padding        *Margin
	MaxHeight      *float64
	Visibility     *Visibility
}

// Preset is a named, reusable tween description loaded from YAML.
type Preset struct {
	Name     string
	Duration float64
	Delay    float64
	Easing   easing.Kind
	Params   []float64 // shape, then period
	Additive bool
	From     PropertySet
	To       PropertySet
}

// Apply configures in with the preset's easing and endpoints. Duration and
// delay are fixed when the instance is created; see Manager.Play.
func (p *Preset) Apply(in *Instance) *Instance {
	in.Easing(p.Easing, p.Params...)
	applyFrom(in, &p.From)
	applyTo(in, &p.To)
	return in
}

func applyFrom(in *Instance, s *PropertySet) {
	if s.Translation != nil {
		in.translation.setStart(*s.Translation)
	}
	if s.Scale != nil {
		in.scale.setStart(*s.Scale)
	}
	if s.Rotation != nil {
		in.rotation.setStart(*s.Rotation)
	}
	if s.Opacity != nil {
		in.opacity.setStart(*s.Opacity)
	}
	if s.Color != nil {
		in.color.setStart(*s.Color)
	}
	if s.LayoutPosition != nil {
		in.layoutPos.setStart(*s.LayoutPosition)
	}
	if s.Padding != nil {
		in.padding.setStart(*s.Padding)
	}
	if s.MaxHeight != nil {
		in.maxHeight.setStart(*s.MaxHeight)
	}
	if s.Visibility != nil {
		in.visibility.setStart(*s.Visibility)
	}
}

func applyTo(in *Instance, s *PropertySet) {
	if s.Translation != nil {
		in.translation.setTarget(*s.Translation)
	}
	if s.Scale != nil {
		in.scale.setTarget(*s.Scale)
	}
	if s.Rotation != nil {
		in.rotation.setTarget(*s.Rotation)
	}
	if s.Opacity != nil {
		in.opacity.setTarget(*s.Opacity)
	}
	if s.Color != nil {
		in.color.setTarget(*s.Color)
	}
	if s.LayoutPosition != nil {
		in.layoutPos.setTarget(*s.LayoutPosition)
	}
	if s.Padding != nil {
		in.padding.setTarget(*s.Padding)
	}
	if s.MaxHeight != nil {
		in.maxHeight.setTarget(*s.MaxHeight)
	}
	if s.Visibility != nil {
		in.visibility.setTarget(*s.Visibility)
	}
}

// Play creates a tween on target from p, begins it and returns it. The
// preset's Additive flag selects CreateAdditive over Create.
func (m *Manager) Play(target Target, p *Preset) *Instance {
	var in *Instance
	if p.Additive {
		in = m.CreateAdditive(target, p.Duration, p.Delay)
	} else {
		in = m.Create(target, p.Duration, p.Delay)
	}
	return p.Apply(in).Begin()
}

// PresetLibrary is a set of presets keyed by name.
type PresetLibrary struct {
	presets map[string]*Preset
}

// Get returns the preset called name.
func (l *PresetLibrary) Get(name string) (*Preset, bool) {
	p, ok := l.presets[name]
	return p, ok
}

// Names returns every preset name in sorted order.
func (l *PresetLibrary) Names() []string {
	names := make([]string, 0, len(l.presets))
	for name := range l.presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of presets.
func (l *PresetLibrary) Len() int {
	return len(l.presets)
}

// LoadPresets reads and parses a preset file.
func LoadPresets(path string) (*PresetLibrary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("tween: load presets %s: %w", path, err)
	}
	lib, err := ParsePresets(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lib, nil
}

// ParsePresets parses a YAML document mapping preset names to entries:
//
//	fade_in:
//	  duration: 0.25
//	  easing: OutCubic
//	  from: { opacity: 0 }
//	  to:   { opacity: 1, visibility: Visible }
//
// Colors are written as "#rrggbb", "#rrggbbaa", an SVG color name, or a
// {r, g, b, a} map in [0, 1].
func ParsePresets(data []byte) (*PresetLibrary, error) {
	var raw map[string]presetSpec
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("tween: unmarshal presets: %w", err)
	}
	lib := &PresetLibrary{presets: make(map[string]*Preset, len(raw))}
	for name, spec := range raw {
		p, err := spec.build(name)
		if err != nil {
			return nil, fmt.Errorf("preset %q: %w", name, err)
		}
		lib.presets[name] = p
	}
	return lib, nil
}

type presetSpec struct {
	Duration float64   `yaml:"duration"`
	Delay    float64   `yaml:"delay"`
	Easing   string    `yaml:"easing"`
	Params   []float64 `yaml:"params"`
	Additive bool      `yaml:"additive"`
	From     propsSpec `yaml:"from"`
	To       propsSpec `yaml:"to"`
}

type propsSpec struct {
	Translation    *Vec2      `yaml:"translation"`
	Scale          *Vec2      `yaml:"scale"`
	Rotation       *float64   `yaml:"rotation"`
	Opacity        *float64   `yaml:"opacity"`
	Color          *yamlColor `yaml:"color"`
	LayoutPosition *Vec2      `yaml:"layout_position"`
	Padding        *Margin    `yaml:"padding"`
	MaxHeight      *float64   `yaml:"max_height"`
	Visibility     *string    `yaml:"visibility"`
}

func (s presetSpec) build(name string) (*Preset, error) {
	if s.Duration < 0 {
		return nil, fmt.Errorf("%w: negative duration %v", ErrInvalidPreset, s.Duration)
	}
	if s.Delay < 0 {
		return nil, fmt.Errorf("%w: negative delay %v", ErrInvalidPreset, s.Delay)
	}
	if len(s.Params) > 2 {
		return nil, fmt.Errorf("%w: at most 2 easing params, got %d", ErrInvalidPreset, len(s.Params))
	}
	p := &Preset{
		Name:     name,
		Duration: s.Duration,
		Delay:    s.Delay,
		Easing:   easing.InOutQuad,
		Params:   s.Params,
		Additive: s.Additive,
	}
	if s.Easing != "" {
		k, err := easing.ParseKind(s.Easing)
		if err != nil {
			return nil, err
		}
		p.Easing = k
	}
	var err error
	if p.From, err = s.From.build(); err != nil {
		return nil, fmt.Errorf("from: %w", err)
	}
	if p.To, err = s.To.build(); err != nil {
		return nil, fmt.Errorf("to: %w", err)
	}
	return p, nil
}

func (s propsSpec) build() (PropertySet, error) {
	set := PropertySet{
		Translation:    s.Translation,
		Scale:          s.Scale,
		Rotation:       s.Rotation,
		Opacity:        s.Opacity,
		LayoutPosition: s.LayoutPosition,
		Padding:        s.Padding,
		MaxHeight:      s.MaxHeight,
	}
	if s.Color != nil {
		c := s.Color.Color
		set.Color = &c
	}
	if s.Visibility != nil {
		v, err := ParseVisibility(*s.Visibility)
		if err != nil {
			return set, err
		}
		set.Visibility = &v
	}
	return set, nil
}

type yamlColor struct {
	Color
}

func (c *yamlColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.MappingNode {
		c.Color = Color{A: 1}
		return value.Decode(&c.Color)
	}
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: color must be a string or a map", ErrInvalidPreset)
	}
	if named, ok := colornames.Map[strings.ToLower(value.Value)]; ok {
		c.Color = ColorFromRGBA(named)
		return nil
	}

	s := strings.TrimPrefix(value.Value, "#")
	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("%w: invalid color %q", ErrInvalidPreset, value.Value)
	}
	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}
	var rgba [4]uint8
	rgba[3] = 255
	for i := 0; i < len(s)/2; i++ {
		v, err := parse(i * 2)
		if err != nil {
			return fmt.Errorf("%w: invalid color %q", ErrInvalidPreset, value.Value)
		}
		rgba[i] = v
	}
	c.Color = ColorFromRGBA(color.NRGBA{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]})
	return nil
}

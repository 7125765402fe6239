package ecs

import (
	"fmt"

	"github.com/phanxgames/tween"

	"github.com/yohamta/donburi"
)

// VisualData is the animatable state of an entity.
type VisualData struct {
	Transform  tween.Transform
	Opacity    float64
	Color      tween.Color
	Visibility tween.Visibility
}

// Visual is the component EntityTarget reads and writes. New entities get
// the identity transform, full opacity and a white tint.
var Visual = donburi.NewComponentType[VisualData](VisualData{
	Transform: tween.IdentityTransform,
	Opacity:   1,
	Color:     tween.ColorWhite,
})

// EntityTarget is a tween target addressing an entity's Visual component.
// It is a small comparable value, so two handles to the same entity cancel
// each other's tweens in Manager.Create.
type EntityTarget struct {
	world  donburi.World
	entity donburi.Entity
}

// NewEntityTarget returns a target for entity in world.
func NewEntityTarget(world donburi.World, entity donburi.Entity) EntityTarget {
	return EntityTarget{world: world, entity: entity}
}

// Entity returns the addressed entity.
func (t EntityTarget) Entity() donburi.Entity {
	return t.entity
}

func (t EntityTarget) String() string {
	return fmt.Sprintf("Entity(%v)", t.entity)
}

// Alive reports whether the entity still exists and carries Visual. A
// removed entity's handle stays invalid even if its slot is reused.
func (t EntityTarget) Alive() bool {
	if t.world == nil || !t.world.Valid(t.entity) {
		return false
	}
	return t.world.Entry(t.entity).HasComponent(Visual)
}

func (t EntityTarget) visual() *VisualData {
	return Visual.Get(t.world.Entry(t.entity))
}

func (t EntityTarget) RenderTransform() tween.Transform      { return t.visual().Transform }
func (t EntityTarget) SetRenderTransform(tf tween.Transform) { t.visual().Transform = tf }

func (t EntityTarget) Opacity() float64     { return t.visual().Opacity }
func (t EntityTarget) SetOpacity(v float64) { t.visual().Opacity = v }

func (t EntityTarget) Color() tween.Color     { return t.visual().Color }
func (t EntityTarget) SetColor(c tween.Color) { t.visual().Color = c }

func (t EntityTarget) Visibility() tween.Visibility     { return t.visual().Visibility }
func (t EntityTarget) SetVisibility(v tween.Visibility) { t.visual().Visibility = v }

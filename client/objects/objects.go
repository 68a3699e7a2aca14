package objects

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// GameObject is the highest level interface for game related types.
// Objects form a tree that is initialized, updated, drawn and destroyed together.
type GameObject interface {
	Lifecycle

	GetID() string
	GetZIndex() int
	GetParent() GameObject
	SetParent(parent GameObject)
	GetChild(id string) GameObject
	GetChildren() []GameObject
	AddChild(id string, child GameObject) error
	RemoveChild(id string) error
	RemoveFromParent() error
}

// BaseObject implements the tree bookkeeping of a GameObject with no-op lifecycle methods.
type BaseObject struct {
	id       string
	zIndex   int
	parent   GameObject
	children *childList
}

type NewBaseObjectOpts struct {
	// ZIndex orders siblings under a SortedZIndexObject. Lower is drawn first.
	ZIndex int
}

var _ GameObject = &BaseObject{}

func NewBaseObject(id string, opts *NewBaseObjectOpts) *BaseObject {
	o := &BaseObject{
		id:       id,
		children: newChildList(),
	}
	if opts != nil {
		o.zIndex = opts.ZIndex
	}
	return o
}

func (o *BaseObject) Init() error { return nil }
func (o *BaseObject) Destroy() error { return nil }
func (o *BaseObject) Update() error { return nil }
func (o *BaseObject) Draw(screen *ebiten.Image) {}
func (o *BaseObject) GetID() string { return o.id }
func (o *BaseObject) GetZIndex() int { return o.zIndex }
func (o *BaseObject) GetParent() GameObject { return o.parent }
func (o *BaseObject) SetParent(parent GameObject) { o.parent = parent }

func (o *BaseObject) GetChild(id string) GameObject {
	return o.children.Get(id)
}

func (o *BaseObject) GetChildren() []GameObject {
	return o.children.ordered
}

// AddChild initializes the child's tree and appends it.
func (o *BaseObject) AddChild(id string, child GameObject) error {
	if o.children.Get(id) != nil {
		return fmt.Errorf("child object with id %s already exists", id)
	}
	if err := InitTree(child); err != nil {
		return fmt.Errorf("failed to initialize child object tree: %v", err)
	}
	o.children.Add(id, child)
	child.SetParent(o)
	return nil
}

// RemoveChild destroys the child's tree and detaches it.
func (o *BaseObject) RemoveChild(id string) error {
	child := o.children.Get(id)
	if child == nil {
		return fmt.Errorf("child object with id %s does not exist", id)
	}
	if err := DestroyTree(child); err != nil {
		return fmt.Errorf("failed to destroy child object tree: %v", err)
	}
	o.children.Remove(id)
	child.SetParent(nil)
	return nil
}

func (o *BaseObject) RemoveFromParent() error {
	if o.parent == nil {
		return fmt.Errorf("object %s has no parent", o.id)
	}
	return o.parent.RemoveChild(o.id)
}

// childList keeps children in insertion order with lookup by ID.
type childList struct {
	idxIDObjects map[string]GameObject
	ordered      []GameObject
}

func newChildList() *childList {
	return &childList{
		idxIDObjects: make(map[string]GameObject),
	}
}

func (c *childList) Add(id string, child GameObject) {
	c.idxIDObjects[id] = child
	c.ordered = append(c.ordered, child)
}

func (c *childList) Get(id string) GameObject {
	return c.idxIDObjects[id]
}

func (c *childList) Remove(id string) {
	child, ok := c.idxIDObjects[id]
	if !ok {
		return
	}
	delete(c.idxIDObjects, id)
	for i, obj := range c.ordered {
		if obj == child {
			c.ordered = append(c.ordered[:i:i], c.ordered[i+1:]...)
			return
		}
	}
}

// InitTree initializes o and then every descendant.
func InitTree(o GameObject) error {
	if err := o.Init(); err != nil {
		return fmt.Errorf("failed to initialize %s: %v", o.GetID(), err)
	}
	for _, child := range o.GetChildren() {
		if err := InitTree(child); err != nil {
			return err
		}
	}
	return nil
}

// UpdateTree updates o and then every descendant.
// Children may remove themselves while being updated.
func UpdateTree(o GameObject) error {
	if err := o.Update(); err != nil {
		return fmt.Errorf("failed to update %s: %v", o.GetID(), err)
	}
	children := append([]GameObject(nil), o.GetChildren()...)
	for _, child := range children {
		if err := UpdateTree(child); err != nil {
			return err
		}
	}
	return nil
}

// DrawTree draws o below its descendants.
func DrawTree(o GameObject, screen *ebiten.Image) {
	o.Draw(screen)
	for _, child := range o.GetChildren() {
		DrawTree(child, screen)
	}
}

// DestroyTree destroys every descendant and then o.
func DestroyTree(o GameObject) error {
	for _, child := range o.GetChildren() {
		if err := DestroyTree(child); err != nil {
			return err
		}
	}
	if err := o.Destroy(); err != nil {
		return fmt.Errorf("failed to destroy %s: %v", o.GetID(), err)
	}
	return nil
}

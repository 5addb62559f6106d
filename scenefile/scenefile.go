package scenefile

import (
	"io"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/phanxgames/grove"
)

// Document is the YAML form of a scene.
type Document struct {
	Name  string     `yaml:"name,omitempty"`
	Nodes []NodeSpec `yaml:"nodes,omitempty"`
}

// NodeSpec is the YAML form of a node and its subtree.
type NodeSpec struct {
	Name        string      `yaml:"name"`
	Translation []float64   `yaml:"translation,omitempty,flow"`
	Euler       []float64   `yaml:"euler,omitempty,flow"`
	Quat        []float64   `yaml:"quat,omitempty,flow"`
	Scale       []float64   `yaml:"scale,omitempty,flow"`
	Bounds      *BoundsSpec `yaml:"bounds,omitempty"`
	Enabled     *bool       `yaml:"enabled,omitempty"`
	Visible     *bool       `yaml:"visible,omitempty"`
	Children    []NodeSpec  `yaml:"children,omitempty"`
}

// BoundsSpec is the YAML form of a local axis-aligned box.
type BoundsSpec struct {
	Min []float64 `yaml:"min,flow"`
	Max []float64 `yaml:"max,flow"`
}

// --- Decoding ---

// Load reads a scene document from the file at path.
func Load(path string) (*grove.Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "scenefile: open")
	}
	defer f.Close()
	s, err := Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "scenefile: %s", path)
	}
	return s, nil
}

// Decode reads a scene document from r and builds the scene. Unknown keys
// are rejected.
func Decode(r io.Reader) (*grove.Scene, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var doc Document
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "decode yaml")
	}
	return doc.Build()
}

// Build creates a scene from the document.
func (d *Document) Build() (*grove.Scene, error) {
	s := grove.NewScene(d.Name)
	for i := range d.Nodes {
		n, err := d.Nodes[i].Build()
		if err != nil {
			return nil, err
		}
		s.AddNode(n)
	}
	return s, nil
}

// Build creates the node and its subtree. Transforms are applied as local
// transforms after the node is attached to its parent.
func (ns *NodeSpec) Build() (*grove.Node, error) {
	local, err := ns.transform()
	if err != nil {
		return nil, err
	}
	n := grove.NewNode(ns.Name)
	if ns.Bounds != nil {
		lo, err := vec3(ns.Name, "bounds.min", ns.Bounds.Min)
		if err != nil {
			return nil, err
		}
		hi, err := vec3(ns.Name, "bounds.max", ns.Bounds.Max)
		if err != nil {
			return nil, err
		}
		n.Bounds = grove.NewAABB(lo, hi)
	}
	if ns.Enabled != nil {
		n.SetEnabled(*ns.Enabled)
	}
	if ns.Visible != nil {
		n.SetVisible(*ns.Visible)
	}
	for i := range ns.Children {
		c, err := ns.Children[i].Build()
		if err != nil {
			return nil, err
		}
		n.AddNode(c)
	}
	// Children keep their local transforms when the parent moves.
	n.SetLocalTransform(local)
	return n, nil
}

func (ns *NodeSpec) transform() (grove.Transform, error) {
	t := grove.IdentityTransform()
	var err error
	if ns.Translation != nil {
		if t.Translation, err = vec3(ns.Name, "translation", ns.Translation); err != nil {
			return t, err
		}
	}
	if ns.Scale != nil {
		if t.Scale, err = vec3(ns.Name, "scale", ns.Scale); err != nil {
			return t, err
		}
	}
	switch {
	case ns.Euler != nil && ns.Quat != nil:
		return t, errors.Errorf("node %q: euler and quat are mutually exclusive", ns.Name)
	case ns.Euler != nil:
		deg, err := vec3(ns.Name, "euler", ns.Euler)
		if err != nil {
			return t, err
		}
		t.Rotation = mgl64.AnglesToQuat(
			mgl64.DegToRad(deg[0]), mgl64.DegToRad(deg[1]), mgl64.DegToRad(deg[2]), mgl64.XYZ)
	case ns.Quat != nil:
		if len(ns.Quat) != 4 {
			return t, errors.Errorf("node %q: quat needs 4 values, got %d", ns.Name, len(ns.Quat))
		}
		q := mgl64.Quat{W: ns.Quat[0], V: mgl64.Vec3{ns.Quat[1], ns.Quat[2], ns.Quat[3]}}
		if q.Len() == 0 {
			return t, errors.Errorf("node %q: zero quaternion", ns.Name)
		}
		t.Rotation = q.Normalize()
	}
	return t, nil
}

func vec3(node, field string, v []float64) (mgl64.Vec3, error) {
	if len(v) != 3 {
		return mgl64.Vec3{}, errors.Errorf("node %q: %s needs 3 values, got %d", node, field, len(v))
	}
	return mgl64.Vec3{v[0], v[1], v[2]}, nil
}

// --- Encoding ---

// Encode writes the scene as a YAML document.
func Encode(w io.Writer, s *grove.Scene) error {
	doc := FromScene(s)
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return errors.Wrap(err, "encode yaml")
	}
	return errors.Wrap(enc.Close(), "encode yaml")
}

// FromScene captures the scene's hierarchy and local transforms.
func FromScene(s *grove.Scene) *Document {
	doc := &Document{Name: s.Name}
	for _, r := range s.Roots() {
		doc.Nodes = append(doc.Nodes, FromNode(r))
	}
	return doc
}

// FromNode captures n and its subtree.
func FromNode(n *grove.Node) NodeSpec {
	t := n.LocalTransform()
	ns := NodeSpec{Name: n.Name}
	if t.Translation != (mgl64.Vec3{}) {
		ns.Translation = t.Translation[:]
	}
	if t.Scale != (mgl64.Vec3{1, 1, 1}) {
		ns.Scale = t.Scale[:]
	}
	if t.Rotation != mgl64.QuatIdent() {
		ns.Quat = []float64{t.Rotation.W, t.Rotation.V[0], t.Rotation.V[1], t.Rotation.V[2]}
	}
	if !n.Bounds.Empty() {
		ns.Bounds = &BoundsSpec{Min: n.Bounds.Min[:], Max: n.Bounds.Max[:]}
	}
	if !n.Enabled() {
		ns.Enabled = new(bool)
	}
	if !n.Visible() {
		ns.Visible = new(bool)
	}
	for _, c := range n.Children() {
		ns.Children = append(ns.Children, FromNode(c))
	}
	return ns
}

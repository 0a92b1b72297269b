package renderer

import (
	"github.com/go-gl/mathgl/mgl32"
)

type MeshKind int

const (
	MeshPlane MeshKind = iota
	MeshCylinder
	MeshTaperedCylinder
)

// MeshVariant names a basic shape and which of its parts to draw.
type MeshVariant struct {
	Kind   MeshKind
	Top    bool
	Bottom bool
	Sides  bool
}

// SceneObject is one row of the scene table: everything needed to draw a
// mesh in both the shadow pass and the color pass.
type SceneObject struct {
	Name      string
	Mesh      MeshVariant
	Transform Transform

	// DepthTransform, when set, replaces Transform in the shadow pass
	// only. The straw uses this: its shadow is cast from a slightly
	// different pose than it is drawn in.
	DepthTransform *Transform

	MaterialTag string
	TextureTag  string     // empty means flat color
	Color       mgl32.Vec4 // used when TextureTag is empty
	UVScale     mgl32.Vec2
	Lighting    bool
	Liquid      bool // translucent ripple surface
	Translucent bool
}

// depthPose returns the transform used when rendering this object into the
// shadow map.
func (o SceneObject) depthPose() Transform {
	if o.DepthTransform != nil {
		return *o.DepthTransform
	}
	return o.Transform
}

// drawState builds the complete binder state for this object's color-pass
// draw.
func (o SceneObject) drawState() DrawState {
	return DrawState{
		Transform:   o.Transform,
		Color:       o.Color,
		TextureTag:  o.TextureTag,
		UVScale:     o.UVScale,
		MaterialTag: o.MaterialTag,
		Lighting:    o.Lighting,
		Liquid:      o.Liquid,
	}
}

// sceneObjects is the fixed still life: a stone table surface, a ceramic
// saucer with a raised rim, a tapered mug (outer shell and inner cavity),
// a leaning straw, the rippling liquid surface and the mug bottom. Draw
// order matters only for the translucent liquid: it comes after all the
// opaque geometry around and beneath it.
func sceneObjects() []SceneObject {
	strawShadowPose := Transform{
		Scale:       mgl32.Vec3{0.08, 2.96, 0.08},
		RotationDeg: mgl32.Vec3{-24.0, -18.0, 0.0},
		Position:    mgl32.Vec3{-0.45, 2.60, -0.12},
	}

	return []SceneObject{
		{
			Name: "table surface",
			Mesh: MeshVariant{Kind: MeshPlane},
			Transform: Transform{
				Scale:    mgl32.Vec3{20.0, 1.0, 10.0},
				Position: mgl32.Vec3{0.0, 0.0, 0.0},
			},
			MaterialTag: "stone-floor",
			TextureTag:  "stone",
			UVScale:     mgl32.Vec2{16.0, 16.0},
			Lighting:    true,
		},
		{
			Name: "saucer",
			Mesh: MeshVariant{Kind: MeshCylinder, Top: true, Bottom: true, Sides: true},
			Transform: Transform{
				Scale:    mgl32.Vec3{2.6, 0.02, 2.6},
				Position: mgl32.Vec3{0.0, 0.0, 0.0},
			},
			MaterialTag: "ceramic-saucer",
			Color:       mgl32.Vec4{1.00, 0.97, 0.88, 1.00},
			UVScale:     mgl32.Vec2{1.0, 1.0},
			Lighting:    true,
		},
		{
			Name: "saucer rim",
			Mesh: MeshVariant{Kind: MeshCylinder, Bottom: true, Sides: true},
			Transform: Transform{
				Scale:    mgl32.Vec3{2.6, 0.03, 2.6},
				Position: mgl32.Vec3{0.0, 0.03, 0.0},
			},
			MaterialTag: "ceramic-rim",
			Color:       mgl32.Vec4{0.98, 0.95, 0.86, 1.00},
			UVScale:     mgl32.Vec2{1.0, 1.0},
			Lighting:    true,
		},
		{
			Name: "mug outer shell",
			Mesh: MeshVariant{Kind: MeshTaperedCylinder, Top: true, Sides: true},
			Transform: Transform{
				Scale:       mgl32.Vec3{1.5, 2.0, 1.5},
				RotationDeg: mgl32.Vec3{180.0, 0.0, 0.0},
				Position:    mgl32.Vec3{0.0, 2.10, 0.0},
			},
			MaterialTag: "mug-body",
			TextureTag:  "grass",
			UVScale:     mgl32.Vec2{2.0, 1.0},
			Lighting:    true,
		},
		{
			Name: "mug inner cavity",
			Mesh: MeshVariant{Kind: MeshTaperedCylinder, Sides: true},
			Transform: Transform{
				Scale:       mgl32.Vec3{1.46, 1.96, 1.46},
				RotationDeg: mgl32.Vec3{180.0, 0.0, 0.0},
				Position:    mgl32.Vec3{0.0, 2.11, 0.0},
			},
			MaterialTag: "mug-body",
			TextureTag:  "grass",
			UVScale:     mgl32.Vec2{1.0, 1.0},
			Lighting:    true,
		},
		{
			Name: "straw",
			Mesh: MeshVariant{Kind: MeshCylinder, Top: true, Bottom: true, Sides: true},
			Transform: Transform{
				Scale:       mgl32.Vec3{0.08, 2.96, 0.08},
				RotationDeg: mgl32.Vec3{-32.25, 150.0, 0.0},
				Position:    mgl32.Vec3{-0.45, 0.25, -0.12},
			},
			DepthTransform: &strawShadowPose,
			MaterialTag:    "plastic-straw",
			Color:          mgl32.Vec4{0.96, 0.96, 0.92, 1.0},
			UVScale:        mgl32.Vec2{1.0, 1.0},
			Lighting:       true,
		},
		{
			Name: "liquid surface",
			Mesh: MeshVariant{Kind: MeshCylinder, Top: true},
			Transform: Transform{
				Scale:       mgl32.Vec3{1.30, 0.01, 1.30},
				RotationDeg: mgl32.Vec3{0.5, 0.0, 0.3},
				Position:    mgl32.Vec3{0.0, 1.78, 0.0},
			},
			MaterialTag: "liquid-glaze",
			Color:       mgl32.Vec4{0.2, 0.45, 0.9, 0.7},
			UVScale:     mgl32.Vec2{1.0, 1.0},
			Lighting:    true,
			Liquid:      true,
			Translucent: true,
		},
		{
			Name: "mug bottom",
			Mesh: MeshVariant{Kind: MeshCylinder, Top: true, Bottom: true},
			Transform: Transform{
				Scale:    mgl32.Vec3{1.0, 0.1, 1.0},
				Position: mgl32.Vec3{0.0, 0.06, 0.0},
			},
			MaterialTag: "liquid-glaze",
			TextureTag:  "grass",
			UVScale:     mgl32.Vec2{1.0, 1.0},
			Lighting:    true,
		},
	}
}

// sceneMaterials defines the material table the scene objects reference.
func sceneMaterials() []Material {
	return []Material{
		{
			Tag:           "stone-floor",
			DiffuseColor:  mgl32.Vec3{1.0, 1.0, 1.0},
			SpecularColor: mgl32.Vec3{0.4, 0.4, 0.4},
			Shininess:     32.0,
		},
		{
			Tag:           "ceramic-saucer",
			DiffuseColor:  mgl32.Vec3{0.6, 0.6, 0.6},
			SpecularColor: mgl32.Vec3{1.0, 1.0, 1.0},
			Shininess:     128.0,
		},
		{
			Tag:           "ceramic-rim",
			DiffuseColor:  mgl32.Vec3{0.55, 0.55, 0.55},
			SpecularColor: mgl32.Vec3{1.0, 1.0, 1.0},
			Shininess:     128.0,
		},
		{
			Tag:           "mug-body",
			DiffuseColor:  mgl32.Vec3{1.0, 1.0, 1.0},
			SpecularColor: mgl32.Vec3{0.25, 0.25, 0.25},
			Shininess:     24.0,
		},
		{
			Tag:           "plastic-straw",
			DiffuseColor:  mgl32.Vec3{1.0, 1.0, 1.0},
			SpecularColor: mgl32.Vec3{0.35, 0.35, 0.35},
			Shininess:     32.0,
		},
		{
			Tag:           "liquid-glaze",
			DiffuseColor:  mgl32.Vec3{1.0, 0.95, 0.8},
			SpecularColor: mgl32.Vec3{1.0, 1.0, 1.0},
			Shininess:     96.0,
		},
	}
}

package shader

import _ "embed"

// SphereVertex transforms positions by model, view and projection uniforms.
//
//go:embed glsl/sphere.vert
var SphereVertex string

// SphereFragment fills with the uColor uniform.
//
//go:embed glsl/sphere.frag
var SphereFragment string

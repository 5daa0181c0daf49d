package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewRoomScene creates the closed room used as the default scene: four
// colored spheres and a spherical light inside a white box
func NewRoomScene() *Scene {
	camera := geometry.NewCamera(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))

	lightMaterial := material.White().WithEmission(core.NewVec3(255, 255, 255))
	light := geometry.NewSphere(core.NewVec3(0, 30, 10), 5, lightMaterial)

	s := New(camera, light)

	s.Add(
		geometry.NewSphere(core.NewVec3(5, -3, 50), 5, material.Red().WithReflectivity(0.1)),
		geometry.NewSphere(core.NewVec3(-5, 5, 30), 5, material.Green().WithReflectivity(0.2)),
		geometry.NewSphere(core.NewVec3(15, 15, 60), 5, material.Blue().WithReflectivity(1.0)),
		geometry.NewSphere(core.NewVec3(-15, -15, 60), 5, material.Pink()),
	)

	wall := material.White()

	// Floor
	s.Add(geometry.NewRectangle(
		core.NewVec3(-500, -40, 0),
		core.NewVec3(0, 0, 1000),
		core.NewVec3(1000, 0, 0),
		wall,
	)...)
	// Ceiling
	s.Add(geometry.NewRectangle(
		core.NewVec3(-500, 40, 0),
		core.NewVec3(1000, 0, 0),
		core.NewVec3(0, 0, 1000),
		wall,
	)...)
	// Left wall
	s.Add(geometry.NewRectangle(
		core.NewVec3(-40, -500, 0),
		core.NewVec3(0, 1000, 0),
		core.NewVec3(0, 0, 1000),
		wall,
	)...)
	// Right wall
	s.Add(geometry.NewRectangle(
		core.NewVec3(40, -500, 0),
		core.NewVec3(0, 0, 1000),
		core.NewVec3(0, 1000, 0),
		wall,
	)...)
	// Front wall, just behind the camera
	s.Add(geometry.NewRectangle(
		core.NewVec3(-500, -500, -0.5),
		core.NewVec3(1000, 0, 0),
		core.NewVec3(0, 1000, 0),
		wall,
	)...)
	// Back wall
	s.Add(geometry.NewRectangle(
		core.NewVec3(-500, -500, 150),
		core.NewVec3(0, 1000, 0),
		core.NewVec3(1000, 0, 0),
		wall,
	)...)

	return s
}

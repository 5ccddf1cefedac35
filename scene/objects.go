package scene

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/spaghettifunk/atelier/engine/math"
	"github.com/spaghettifunk/atelier/engine/systems"
)

func unitUV() math.Vec2 { return math.Vec2{X: 1, Y: 1} }

// studyRoomObjects lays out the full study-room set piece: floor and two
// walls, a potted plant, an ottoman with pillows, a bookshelf with books,
// a framed picture, a rug, a floor lamp and a snow globe.
func studyRoomObjects() []Object {
	objects := []Object{
		// room shell
		{
			Name:  "floor",
			Shape: systems.ShapePlane,
			Scale: math.Vec3{X: 20, Y: 1, Z: 20}, TextureTag: "floor", MaterialTag: "wood",
		},
		{
			Name:  "wall-right",
			Shape: systems.ShapePlane,
			Scale: math.Vec3{X: 20, Y: 1, Z: 20}, Rotation: math.Vec3{X: 90, Y: 90},
			Position: math.Vec3{X: 20, Y: 20}, TextureTag: "wall", MaterialTag: "wall",
		},
		{
			Name:  "wall-back",
			Shape: systems.ShapePlane,
			Scale: math.Vec3{X: 20, Y: 1, Z: 20}, Rotation: math.Vec3{X: 90, Z: 90},
			Position: math.Vec3{Y: 20, Z: -20}, TextureTag: "wall", MaterialTag: "wall",
		},

		// potted plant: four fanned leaves around a central tip
		{
			Name:  "leaf-1",
			Shape: systems.ShapePyramid,
			Scale: math.Vec3{X: 0.5, Y: 1.5, Z: 0.5}, Rotation: math.Vec3{X: 45, Y: -90},
			Position: math.Vec3{X: -0.5, Y: 3}, TextureTag: "leaf", MaterialTag: "leaf",
		},
		{
			Name:  "leaf-2",
			Shape: systems.ShapePyramid,
			Scale: math.Vec3{X: 0.5, Y: 1.5, Z: 0.5}, Rotation: math.Vec3{X: -45},
			Position: math.Vec3{Y: 3, Z: -0.5}, TextureTag: "leaf", MaterialTag: "leaf",
		},
		{
			Name:  "leaf-3",
			Shape: systems.ShapePyramid,
			Scale: math.Vec3{X: 0.5, Y: 1.5, Z: 0.5}, Rotation: math.Vec3{X: 45},
			Position: math.Vec3{Y: 3, Z: 0.5}, TextureTag: "leaf", MaterialTag: "leaf",
		},
		{
			Name:  "leaf-4",
			Shape: systems.ShapePyramid,
			Scale: math.Vec3{X: 0.5, Y: 1.5, Z: 0.5}, Rotation: math.Vec3{X: -45, Y: -90},
			Position: math.Vec3{X: 0.5, Y: 3}, TextureTag: "leaf", MaterialTag: "leaf",
		},
		{
			Name:     "leaf-tip",
			Shape:    systems.ShapePyramid,
			Scale:    math.Vec3{X: 0.5, Y: 1.5, Z: 0.5},
			Position: math.Vec3{Y: 3.2}, TextureTag: "leaf", MaterialTag: "leaf",
		},
		{
			Name:  "plant-vase",
			Shape: systems.ShapeTaperedCylinder,
			Scale: math.Vec3{X: 1, Y: 1.5, Z: 1}, Rotation: math.Vec3{X: 180},
			Position: math.Vec3{Y: 2.4}, TextureTag: "vase", MaterialTag: "vase",
		},

		// reading corner
		{
			Name:     "ottoman",
			Shape:    systems.ShapeCylinder,
			Scale:    math.Vec3{X: 6, Y: 5, Z: 6},
			Position: math.Vec3{X: 14, Z: 5}, TextureTag: "ottoman", MaterialTag: "fabric",
		},
		{
			Name:  "pillow-1",
			Shape: systems.ShapeBox,
			Scale: math.Vec3{X: 5, Y: 1, Z: 5}, Rotation: math.Vec3{X: -75, Y: 120},
			Position: math.Vec3{X: 16, Y: 7.5, Z: 3}, TextureTag: "pillow", MaterialTag: "fabric",
		},
		{
			Name:  "pillow-2",
			Shape: systems.ShapeBox,
			Scale: math.Vec3{X: 5, Y: 1, Z: 5}, Rotation: math.Vec3{X: 90, Y: 90, Z: -20},
			Position: math.Vec3{X: 18, Y: 7.5, Z: 6}, TextureTag: "pillow", MaterialTag: "fabric",
		},

		// bookshelf: back panel, five shelves, two side panels
		{
			Name:  "bookshelf-back",
			Shape: systems.ShapeBox,
			Scale: math.Vec3{X: 15, Y: 0.5, Z: 20}, Rotation: math.Vec3{X: 90},
			Position: math.Vec3{X: 10.8, Y: 10, Z: -20}, TextureTag: "bookshelf", MaterialTag: "wood",
		},
	}

	for i, y := range []float32{10, 15, 5, 20, 0} {
		objects = append(objects, Object{
			Name:  shelfName(i),
			Shape: systems.ShapeBox,
			Scale: math.Vec3{X: 7, Y: 0.5, Z: 15}, Rotation: math.Vec3{Y: 90},
			Position: math.Vec3{X: 10.8, Y: y, Z: -18}, TextureTag: "bookshelf", MaterialTag: "wood",
		})
	}

	objects = append(objects, []Object{
		{
			Name:  "bookshelf-left",
			Shape: systems.ShapeBox,
			Scale: math.Vec3{X: 7, Y: 0.5, Z: 20}, Rotation: math.Vec3{X: 90, Y: 90},
			Position: math.Vec3{X: 3.4, Y: 10, Z: -18}, TextureTag: "bookshelf", MaterialTag: "wood",
		},
		{
			Name:  "bookshelf-right",
			Shape: systems.ShapeBox,
			Scale: math.Vec3{X: 7, Y: 0.5, Z: 20}, Rotation: math.Vec3{X: 90, Y: 90},
			Position: math.Vec3{X: 18.4, Y: 10, Z: -18}, TextureTag: "bookshelf", MaterialTag: "wood",
		},

		{
			Name:  "picture-frame",
			Shape: systems.ShapeBox,
			Scale: math.Vec3{X: 8, Y: 0.5, Z: 11}, Rotation: math.Vec3{X: 90, Y: 90},
			Position: math.Vec3{X: 19.8, Y: 20}, TextureTag: "picture", MaterialTag: "paper",
		},
		{
			Name:       "rug",
			Shape:      systems.ShapeBox,
			Scale:      math.Vec3{X: 10, Y: 0.3, Z: 15},
			TextureTag: "rug", MaterialTag: "fabric",
		},

		// floor lamp
		{
			Name:     "lamp-shade",
			Shape:    systems.ShapeTaperedCylinder,
			Scale:    math.Vec3{X: 2, Y: 3.5, Z: 2},
			Position: math.Vec3{X: -2, Y: 13, Z: -17}, TextureTag: "lamp_top", MaterialTag: "paper",
		},
		{
			Name:     "lamp-pole",
			Shape:    systems.ShapeCylinder,
			Scale:    math.Vec3{X: 0.3, Y: 13, Z: 0.3},
			Position: math.Vec3{X: -2, Y: 0.5, Z: -17}, TextureTag: "lamp_bot", MaterialTag: "metal",
		},
		{
			Name:     "lamp-base",
			Shape:    systems.ShapeCylinder,
			Scale:    math.Vec3{X: 2, Y: 0.5, Z: 2},
			Position: math.Vec3{X: -2, Z: -17}, TextureTag: "lamp_bot", MaterialTag: "metal",
		},

		// books stacked flat on two shelves
		{
			Name:  "book-1",
			Shape: systems.ShapeBox,
			Scale: math.Vec3{X: 3, Y: 1, Z: 4}, Rotation: math.Vec3{X: 90, Y: 90},
			Position: math.Vec3{X: 17.6, Y: 12, Z: -18}, TextureTag: "books", MaterialTag: "fabric",
		},
		{
			Name:  "book-2",
			Shape: systems.ShapeBox,
			Scale: math.Vec3{X: 3, Y: 1, Z: 5}, Rotation: math.Vec3{X: 90, Y: 90},
			Position: math.Vec3{X: 16.3, Y: 12.5, Z: -18}, TextureTag: "book2", MaterialTag: "fabric",
		},
		{
			Name:  "book-3",
			Shape: systems.ShapeBox,
			Scale: math.Vec3{X: 3, Y: 1, Z: 4}, Rotation: math.Vec3{X: 90, Y: 90},
			Position: math.Vec3{X: 15, Y: 12, Z: -18}, TextureTag: "books", MaterialTag: "fabric",
		},
		{
			Name:  "book-4",
			Shape: systems.ShapeBox,
			Scale: math.Vec3{X: 3, Y: 1, Z: 4}, Rotation: math.Vec3{X: 90, Y: 90},
			Position: math.Vec3{X: 4.2, Y: 17, Z: -18}, TextureTag: "books", MaterialTag: "fabric",
		},
		{
			Name:  "book-5",
			Shape: systems.ShapeBox,
			Scale: math.Vec3{X: 3, Y: 1, Z: 5}, Rotation: math.Vec3{X: 90, Y: 90},
			Position: math.Vec3{X: 5.4, Y: 17.4, Z: -18}, TextureTag: "book2", MaterialTag: "fabric",
		},
		{
			Name:  "book-6",
			Shape: systems.ShapeBox,
			Scale: math.Vec3{X: 2.9, Y: 1, Z: 3.8}, Rotation: math.Vec3{X: 90, Y: 90, Z: 20},
			Position: math.Vec3{X: 7, Y: 17.1, Z: -18}, TextureTag: "books", MaterialTag: "fabric",
		},

		// snow globe on the middle shelf
		{
			Name:     "snowglobe-base",
			Shape:    systems.ShapeTaperedCylinder,
			Scale:    math.Vec3{X: 1, Y: 1, Z: 1},
			Position: math.Vec3{X: 7, Y: 5, Z: -17}, TextureTag: "snowglobe_bot", MaterialTag: "metal",
		},
		{
			Name:     "snowglobe-dome",
			Shape:    systems.ShapeSphere,
			Scale:    math.Vec3{X: 0.9, Y: 0.9, Z: 0.9},
			Position: math.Vec3{X: 7, Y: 6.7, Z: -17}, TextureTag: "lamp_bot", MaterialTag: "glass",
		},
	}...)

	for i := range objects {
		objects[i].ID = uuid.New()
		if objects[i].UVScale == (math.Vec2{}) {
			objects[i].UVScale = unitUV()
		}
		// objects falling back to flat colour render as opaque grey
		if objects[i].Color == (math.Vec4{}) {
			objects[i].Color = math.NewVec4(0.5, 0.5, 0.5, 1)
		}
	}
	return objects
}

func shelfName(i int) string {
	return fmt.Sprintf("bookshelf-shelf-%d", i+1)
}

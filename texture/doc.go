// Package texture samples spherical barycentric coordinates over a planar
// quad cutting through a polyhedron and turns the blended vertex colors into
// an image.
//
// The quad is sampled at pixel centers, each sample is evaluated with an
// sbc.Evaluator and the vertex colors are blended with the resulting
// weights:
//
//	ev := sbc.NewFromPolyhedron(polyhedron.Cube(0.5))
//	img, stats, err := texture.Synthesize(ev, colors, texture.DefaultQuad(), texture.Options{Workers: 4})
//	if err != nil {
//	    return err
//	}
//	levels := texture.Mipmaps(img, 0)
//	err = texture.WriteFile("texture.png", levels[0])
package texture

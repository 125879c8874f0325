// Package corridor composites a highlighted "corridor" band over a raster
// image. Given a base image, an ordered polyline path in image-space pixel
// coordinates and a few styling parameters, it produces a single RGBA output
// where the area outside the corridor is faded toward white, the corridor
// interior keeps the original pixels, a colored ring outlines the corridor
// boundary, and start/end markers indicate the path direction.
//
// # Quick Start
//
//	comp := corridor.NewCompositor()
//
//	out, err := comp.Composite(img, []corridor.Point{
//		{X: 10, Y: 10},
//		{X: 90, Y: 90},
//	}, corridor.DefaultStyle(5))
//
// CompositePNG decodes the base image from a reader and returns encoded PNG
// bytes, which is the form the HTTP layer uses.
//
// # Pipeline
//
// Each call runs four stages in sequence: supersampled corridor-mask
// rasterization, background fade-and-restore compositing, edge-ring mask
// rasterization and coloring, and marker rendering followed by a final
// source-over composite. Every buffer is allocated per call; a Compositor
// holds no mutable state and is safe for concurrent use.
//
// # Rendering
//
// Mask geometry is rasterized by a Renderer. The default software renderer
// expands strokes with round joints and fills them with a nonzero-winding
// scanline pass; masks are drawn at an integer supersampling factor and
// downsampled with a Catmull-Rom filter so band edges stay smooth. A custom
// Renderer can be injected with WithRenderer; its capabilities are queried
// once at construction, and renderers without round joint support fall back
// to unioning per-vertex disks along the path.
package corridor

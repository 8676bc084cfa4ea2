// Package spacegl is a software 3D rasterization pipeline for the Space
// Travel renderer.
//
// The pipeline is fixed and fully CPU-side:
//
//	Mesh → Vertex transform → Culling → Rasterization → Depth test → Fragment shading → Framebuffer.
//
// Fragment shading is procedural: a closed set of noise-driven shader
// functions selected per draw call (star, rocky, gas giant, ship, ice,
// desert, volcanic). There is no GPU abstraction and no texture sampling.
//
// The renderer draws into a caller-provided Framebuffer and renders one
// immutable Frame snapshot at a time. The hot path avoids allocations; a
// Renderer should be created once and reused.
package spacegl

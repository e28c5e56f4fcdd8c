package main

import "github.com/kelseyhightower/envconfig"

// Config holds the CLI's tunable build parameters. The kernel itself takes
// no configuration beyond what a caller passes to Build/Intersect; these
// knobs exist only at the host-application boundary (spec.md §1's
// out-of-scope host application, stood up here as a thin CLI).
type Config struct {
	MeshA string `envconfig:"MESH_A" required:"true" desc:"path to the first mesh file (.ply or .gltf/.glb)"`
	MeshB string `envconfig:"MESH_B" required:"true" desc:"path to the second mesh file (.ply or .gltf/.glb)"`

	MaxTrianglesPerNode int `envconfig:"MAX_TRIANGLES_PER_NODE" default:"10"`
	MaxDepth            int `envconfig:"MAX_DEPTH" default:"32"`
	NumWorkers          int `envconfig:"NUM_WORKERS" default:"1"`
}

func loadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("MESHXSECT", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

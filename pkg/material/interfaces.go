package material

// Material is the closed set of surface behaviors understood by the path integrator:
// *Diffuse, *Emissive, *Metallic, *CheckerBoard and *ProceduralNoise.
// Materials are immutable once constructed and may be shared between render workers.
type Material interface {
	// Kind returns a short stable name used in logs and scene files
	Kind() string

	// sealed restricts implementations to this package
	sealed()
}

const (
	KindDiffuse         = "diffuse"
	KindEmissive        = "emissive"
	KindMetallic        = "metallic"
	KindCheckerBoard    = "checker"
	KindProceduralNoise = "noise"
)

package orbitals

// Defaults, matching the interactive viewer's initial panel values.
const (
	DefaultN         = 3
	DefaultL         = 1
	DefaultM         = 1
	DefaultScale     = 30      // edge of the sampling cube, Bohr units
	DefaultThreshold = 0.0001  // minimum accepted squared amplitude
	DefaultGuesses   = 500_000 // candidate draws per pass
	ViewSize         = 50      // accepted positions are mapped to [-ViewSize/2, ViewSize/2]
	HistogramBins    = 32
	// image output
	ImageWidth  = 800
	ImageHeight = 600
	PointSize   = 1
	GIFFrames   = 36
	GIFDelay    = 8 // 100ths of a second per frame
	// camera and fog, in view units
	CameraFOVDeg   = 27
	CameraNear     = 5
	CameraFar      = 3500
	CameraDistance = 150
	FogNear        = 150
	FogFar         = 170
)

package orbitals

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"sort"

	"github.com/go-gl/mathgl/mgl32"
)

// RenderOptions controls the offline point renderer.
type RenderOptions struct {
	Width, Height int
	PointSize     int  // edge of the square drawn per point, pixels
	ViewSize      Real // see ViewSize
	Fog           bool
	Frames        int // GIF only
	Delay         int // GIF only, 100ths of a second per frame
}

func (o RenderOptions) validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return errors.New("image size must be positive")
	}
	if o.PointSize <= 0 {
		return errors.New("point size must be positive")
	}
	return nil
}

// camera looks at the origin from +Z; the cloud spins about Y by yaw radians,
// which is what orbiting the camera around the vertical axis looks like.
type camera struct {
	mvp           mgl32.Mat4
	width, height int
}

func newCamera(width, height int, yaw float32) camera {
	proj := mgl32.Perspective(mgl32.DegToRad(CameraFOVDeg), float32(width)/float32(height), CameraNear, CameraFar)
	view := mgl32.LookAtV(mgl32.Vec3{0, 0, CameraDistance}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	model := mgl32.HomogRotate3DY(yaw)
	return camera{mvp: proj.Mul4(view).Mul4(model), width: width, height: height}
}

// project returns the pixel of p and its eye-space depth; ok is false when p
// is clipped by the near/far planes.
func (c camera) project(p mgl32.Vec3) (x, y int, depth float32, ok bool) {
	clip := c.mvp.Mul4x1(p.Vec4(1))
	w := clip.W()
	if w <= 0 {
		return 0, 0, 0, false
	}
	ndc := clip.Vec3().Mul(1 / w)
	if ndc.Z() < -1 || ndc.Z() > 1 {
		return 0, 0, 0, false
	}
	x = int((ndc.X() + 1) / 2 * float32(c.width))
	y = int((1 - ndc.Y()) / 2 * float32(c.height))
	return x, y, w, true
}

type splat struct {
	x, y  int
	depth float32
	col   color.NRGBA
}

// renderFrame rasterizes view-space points back to front onto the background.
func renderFrame(pts []mgl32.Vec3, signs []Sign, opts RenderOptions, yaw float32) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: BackgroundColor.NRGBA()}, image.Point{}, draw.Src)

	cam := newCamera(opts.Width, opts.Height, yaw)
	splats := make([]splat, 0, len(pts))
	for i, p := range pts {
		x, y, d, ok := cam.project(p)
		if !ok {
			continue
		}
		c := signs[i].Color()
		if opts.Fog {
			c = c.Lerp(FogColor, smoothstep(FogNear, FogFar, Real(d)))
		}
		splats = append(splats, splat{x: x, y: y, depth: d, col: c.NRGBA()})
	}
	sort.SliceStable(splats, func(i, j int) bool { return splats[i].depth > splats[j].depth })

	half := opts.PointSize / 2
	bounds := img.Bounds()
	for _, s := range splats {
		for dy := 0; dy < opts.PointSize; dy++ {
			for dx := 0; dx < opts.PointSize; dx++ {
				pt := image.Point{X: s.x - half + dx, Y: s.y - half + dy}
				if pt.In(bounds) {
					img.SetNRGBA(pt.X, pt.Y, s.col)
				}
			}
		}
	}
	return img
}

// Render draws res as seen by the default camera.
func Render(res *SampleResult, opts RenderOptions) (*image.NRGBA, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return renderFrame(res.ViewPoints(opts.ViewSize), res.Signs, opts, 0), nil
}

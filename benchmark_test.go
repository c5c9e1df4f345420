package plot

import (
	"image"
	"testing"
)

// BenchmarkRender benchmarks full frames of a plot with three graphs.
// The sample cache is warm after the first frame, as in a host that
// re-renders without a gesture.
func BenchmarkRender(b *testing.B) {
	sizes := []struct {
		name          string
		width, height int
	}{
		{"640x480", 640, 480},
		{"1920x1080", 1920, 1080},
	}
	for _, size := range sizes {
		b.Run(size.name, func(b *testing.B) {
			p, err := New(size.width, size.height)
			if err != nil {
				b.Fatal(err)
			}
			for _, name := range []string{"sin", "square", "reciprocal"} {
				f, _ := Builtin(name)
				if err := p.AddGraph(name, f); err != nil {
					b.Fatal(err)
				}
			}
			dst := image.NewRGBA(image.Rect(0, 0, size.width, size.height))
			b.ResetTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if err := p.Render(dst); err != nil {
					b.Fatal(err)
				}
			}
			b.SetBytes(int64(size.width * size.height * 4))
		})
	}
}

// BenchmarkZoomRender benchmarks a zoom gesture followed by a frame, so
// every iteration re-samples the graph.
func BenchmarkZoomRender(b *testing.B) {
	p, err := New(800, 600)
	if err != nil {
		b.Fatal(err)
	}
	f, _ := Builtin("sin")
	if err := p.AddGraph("sin", f); err != nil {
		b.Fatal(err)
	}
	dst := image.NewRGBA(image.Rect(0, 0, 800, 600))
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		p.Zoom(400, 300, i%2 == 0, false)
		if err := p.Render(dst); err != nil {
			b.Fatal(err)
		}
	}
}

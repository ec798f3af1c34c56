package dataset_test

import (
	"testing"

	"github.com/katalvlaran/scatter/dataset"
)

const benchCount = 1024

// BenchmarkSimple measures the uniform sample-and-label path.
func BenchmarkSimple(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := dataset.Simple(benchCount, dataset.WithSeed(1)); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkCircle measures the costliest uniform rule (two squarings).
func BenchmarkCircle(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := dataset.Circle(benchCount, dataset.WithSeed(1)); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSpiral measures the trigonometric parametric path.
func BenchmarkSpiral(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := dataset.Spiral(benchCount); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkGenerate measures registry dispatch overhead on top of Simple.
func BenchmarkGenerate(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := dataset.Generate("Simple", benchCount, dataset.WithSeed(1)); err != nil {
			b.Fatal(err)
		}
	}
}

package wave

import (
	"testing"

	"ripple-ca/internal/core"
)

func benchmarkMood(b *testing.B, mood string, rows, cols int) {
	p, _ := Mood(mood)
	m, err := New(rows, cols, p, core.NewRNG(1))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Step()
	}
}

func BenchmarkStepStorm256(b *testing.B) { benchmarkMood(b, "storm", 256, 256) }

func BenchmarkStepOcean256(b *testing.B) { benchmarkMood(b, "ocean", 256, 256) }

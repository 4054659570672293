package sheet

import (
	"testing"

	"gitlab.com/tinyland/lab/charsheet/pkg/character"
	"gitlab.com/tinyland/lab/charsheet/pkg/layout"
)

func benchCharacter(b *testing.B) *character.Character {
	b.Helper()
	c, err := character.Load("../character/testdata/dandelion.json")
	if err != nil {
		b.Fatal(err)
	}
	return c
}

// BenchmarkRender times one full frame.
func BenchmarkRender(b *testing.B) {
	c := benchCharacter(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Render(c, Options{}, 200, 60)
	}
}

// BenchmarkRenderCached times a frame with warm solver results, the
// steady state of watch mode.
func BenchmarkRenderCached(b *testing.B) {
	c := benchCharacter(b)
	opts := Options{Cache: layout.NewLayoutCache()}
	_ = Render(c, opts, 200, 60)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Render(c, opts, 200, 60)
	}
}

package nodelink

import (
	"bytes"
	"context"
	"testing"
)

const clustered = `digraph G {
subgraph cluster_0 {
  label="Alpha";
  1;
  2;
}

1[label="A", fillcolor="#ff0000", style="filled"];
2[label="B", fillcolor="#ff", style="filled"];
1->2;
}
`

func TestCheck(t *testing.T) {
	if err := Check(context.Background(), []byte(clustered)); err != nil {
		t.Errorf("Check() error = %v", err)
	}
}

func TestRenderSVG(t *testing.T) {
	svg, err := RenderSVG(context.Background(), []byte(clustered))
	if err != nil {
		t.Fatalf("RenderSVG() error = %v", err)
	}
	if !bytes.Contains(svg, []byte("<svg")) {
		t.Error("RenderSVG() output is not SVG")
	}
	if !bytes.Contains(svg, []byte("Alpha")) {
		t.Error("RenderSVG() output lacks the cluster label")
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="10pt" height="20pt" viewBox="0.00 0.00 100.50 200.25"><g/></svg>`)
	out := normalizeViewBox(in)

	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100.50 200.25" width="100" height="200"><g/></svg>`
	if string(out) != want {
		t.Errorf("normalizeViewBox() = %s, want %s", out, want)
	}

	plain := []byte("<svg><g/></svg>")
	if got := normalizeViewBox(plain); !bytes.Equal(got, plain) {
		t.Errorf("normalizeViewBox() without viewBox = %s", got)
	}
}

package render_test

import (
	"strings"
	"testing"

	"offer-agent/internal/render"
)

func TestRender_MissingFontAssets(t *testing.T) {
	a := testAttrs()

	_, err := render.Render(&a, t.TempDir())
	if err == nil {
		t.Fatal("expected an error when font assets are absent")
	}
	if !strings.Contains(err.Error(), "font asset") {
		t.Errorf("error = %v, want a font asset message", err)
	}
}

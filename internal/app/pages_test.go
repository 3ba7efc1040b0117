package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/slidemenu/internal/routes"
	"github.com/llehouerou/slidemenu/internal/ui/testutil"
)

func TestSource(t *testing.T) {
	tests := []struct {
		name  string
		route routes.Route
		want  string
	}{
		{"root maps to home", routes.Route{ID: "/", Label: "Start"}, "# Home"},
		{"named page", routes.Route{ID: "/about", Label: "About"}, "# About"},
		{"missing page uses label", routes.Route{ID: "/blog", Label: "Blog"}, "# Blog\n\nNothing here yet."},
		{"missing page without label", routes.Route{ID: "/x"}, "# /x"},
		{"path escape", routes.Route{ID: "/../app.go", Label: "Nope"}, "# Nope"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, Source(tt.route), tt.want)
		})
	}
}

func TestPages_Render(t *testing.T) {
	p := NewPages()
	r := routes.Route{ID: "/blog", Label: "Blog"}

	out, err := p.Render(r, 40)
	require.NoError(t, err)
	assert.Contains(t, testutil.StripANSI(out), "Nothing here yet.")

	again, err := p.Render(r, 40)
	require.NoError(t, err)
	assert.Equal(t, out, again)
	assert.Len(t, p.cache, 1)

	_, err = p.Render(r, 60)
	require.NoError(t, err)
	assert.Equal(t, 60, p.width, "a new width rebuilds the renderer")

	p.Reset()
	assert.Empty(t, p.cache)
}

func TestPages_RenderClampsWidth(t *testing.T) {
	p := NewPages()
	_, err := p.Render(routes.Route{ID: "/"}, 3)
	require.NoError(t, err)
	assert.Equal(t, 20, p.width)
}

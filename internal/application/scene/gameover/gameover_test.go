package gameover

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/starcatcher/internal/application/scene"
)

type namedScene struct{ name string }

func (s *namedScene) Name() string                        { return s.name }
func (s *namedScene) Update(float64) (scene.Scene, error) { return nil, nil }
func (s *namedScene) Draw(*ebiten.Image)                  {}
func (s *namedScene) OnEnter()                            {}
func (s *namedScene) OnExit()                             {}

type director struct{}

func (director) Menu() scene.Scene                 { return &namedScene{"menu"} }
func (director) Playing() scene.Scene              { return &namedScene{"playing"} }
func (director) GameOver(scene.Result) scene.Scene { return &namedScene{"gameover"} }

func TestGameOver_Update(t *testing.T) {
	tests := []struct {
		name string
		key  ebiten.Key
		want string
	}{
		{"space retries", ebiten.KeySpace, "playing"},
		{"enter retries", ebiten.KeyEnter, "playing"},
		{"escape goes to menu", ebiten.KeyEscape, "menu"},
		{"other keys wait", ebiten.KeyA, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(scene.Result{Score: 30}, director{}, nil)
			g.keys = func(k ebiten.Key) bool { return k == tt.key }

			next, err := g.Update(1.0 / 60.0)
			require.NoError(t, err)
			if tt.want == "" {
				assert.Nil(t, next)
				return
			}
			require.NotNil(t, next)
			assert.Equal(t, tt.want, next.Name())
		})
	}
}

func TestGameOver_Lines(t *testing.T) {
	g := New(scene.Result{Score: 130, Best: 130, NewRecord: true, Waves: 1}, director{}, nil)
	assert.Equal(t, "gameover", g.Name())
	assert.Equal(t, []string{
		"Score: 130",
		"Best: 130",
		"New record!",
		"Waves cleared: 1",
		"SPACE to retry, ESC for the menu",
	}, g.Lines())

	g = New(scene.Result{Score: 10, Best: 90}, director{}, nil)
	assert.NotContains(t, g.Lines(), "New record!")
	assert.Equal(t, 130, New(scene.Result{Score: 130}, director{}, nil).Result().Score)
}

package main

import (
	"errors"
	"testing"

	"github.com/Carmen-Shannon/oxy-scroll/engine/scene"
)

func TestHeroTable(t *testing.T) {
	tests := []struct {
		name    string
		hero    string
		want    scene.ID
		wantErr bool
	}{
		{"default", "floating_shapes", scene.FloatingShapes, false},
		{"sphere", "rotating_sphere", scene.RotatingSphere, false},
		{"unknown", "sphere", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := heroTable(tt.hero)
			if (err != nil) != tt.wantErr {
				t.Fatalf("heroTable(%q) error = %v, wantErr %v", tt.hero, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if table[0].Scene != tt.want {
				t.Errorf("opening scene = %v, want %v", table[0].Scene, tt.want)
			}
			if _, err := scene.NewCompositor(scene.WithTable(table)); err != nil {
				t.Errorf("NewCompositor() error = %v", err)
			}
		})
	}

	t.Run("scene already in the table", func(t *testing.T) {
		table, err := heroTable("chaos_elements")
		if err != nil {
			t.Fatal(err)
		}
		if _, err := scene.NewCompositor(scene.WithTable(table)); !errors.Is(err, scene.ErrDuplicateScene) {
			t.Errorf("NewCompositor() error = %v, want ErrDuplicateScene", err)
		}
	})
}

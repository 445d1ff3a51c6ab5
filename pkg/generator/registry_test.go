package generator

import (
	"errors"
	"reflect"
	"testing"
)

func asset(variant, name, component string) IconAsset {
	return IconAsset{Variant: variant, Name: name, Component: component}
}

func TestRegistryScopes(t *testing.T) {
	tests := []struct {
		name   string
		layout Layout
		assets []IconAsset
		want   error
	}{
		{"same component in two variant folders", LayoutVariant, []IconAsset{asset("light", "bell", "Bell"), asset("bold", "bell", "Bell")}, nil},
		{"same component in one variant folder", LayoutVariant, []IconAsset{asset("light", "arrow-left", "ArrowLeft"), asset("light", "arrow_left", "ArrowLeft")}, ErrNameCollision},
		{"same component in the flat folder", LayoutFlat, []IconAsset{asset("light", "bell", "Bell"), asset("bold", "bell", "Bell")}, ErrNameCollision},
		{"suffixed components in the flat folder", LayoutFlat, []IconAsset{asset("light", "bell", "BellLight"), asset("bold", "bell", "BellBold")}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry([]string{"light", "bold"}, tt.layout)
			var err error
			for _, a := range tt.assets {
				if err = r.Add(a); err != nil {
					break
				}
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestRegistryOrder(t *testing.T) {
	r := NewRegistry([]string{"light", "bold"}, LayoutVariant)
	for _, a := range []IconAsset{
		asset("light", "bell", "Bell"),
		asset("light", "arrow-left", "ArrowLeft"),
		asset("bold", "zap", "Zap"),
		asset("bold", "bell", "Bell"),
	} {
		if err := r.Add(a); err != nil {
			t.Fatalf("add: %v", err)
		}
	}

	if got, want := r.Names(), []string{"bell", "arrow-left", "zap"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("names: got %v, want %v", got, want)
	}
	if got := r.Assets("bold"); len(got) != 2 || got[0].Name != "zap" {
		t.Fatalf("unexpected bold assets %v", got)
	}
	if len(r.All()) != 4 {
		t.Fatalf("expected 4 assets, got %d", len(r.All()))
	}
	if a, ok := r.Lookup("zap", "bold"); !ok || a.Component != "Zap" {
		t.Fatalf("lookup zap/bold: %v %v", a, ok)
	}
	if _, ok := r.Lookup("zap", "light"); ok {
		t.Fatal("zap found in light")
	}
	if _, ok := r.Lookup("bell", "filled"); ok {
		t.Fatal("lookup in an unknown variant succeeded")
	}
}

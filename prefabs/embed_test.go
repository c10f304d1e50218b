package prefabs

import "testing"

func TestLoadEmbeddedPrefabs(t *testing.T) {
	for _, name := range []string{"tuning.yaml", "page.yaml", "prefabs/tuning.yaml"} {
		t.Run(name, func(t *testing.T) {
			data, err := Load(name)
			if err != nil {
				t.Fatalf("load %s: %v", name, err)
			}
			if len(data) == 0 {
				t.Fatalf("load %s: empty", name)
			}
		})
	}

	if _, err := Load("missing.yaml"); err == nil {
		t.Fatal("expected an error for a missing prefab")
	}
}

func TestLoadScriptPathForms(t *testing.T) {
	forms := []string{
		"zigzag.tengo",
		"scripts/zigzag.tengo",
		"prefabs/scripts/zigzag.tengo",
	}
	for _, name := range forms {
		t.Run(name, func(t *testing.T) {
			data, err := LoadScript(name)
			if err != nil {
				t.Fatalf("load script %s: %v", name, err)
			}
			if len(data) == 0 {
				t.Fatalf("load script %s: empty", name)
			}
		})
	}
}

package levels

import "testing"

func TestLoadEmbeddedKeyboardScene(t *testing.T) {
	for _, name := range []string{"keyboard", "keyboard.json", "levels/keyboard.json"} {
		t.Run(name, func(t *testing.T) {
			scene, err := LoadScene(name)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			keys := 0
			for _, obj := range scene.Objects {
				if obj.Type == "key" {
					keys++
					if obj.Width <= 0 || obj.Height <= 0 {
						t.Fatalf("key %s has no size", obj.Name)
					}
				}
			}
			if keys != 8 {
				t.Fatalf("expected 8 keys, got %d", keys)
			}
		})
	}
}

func TestParseSceneRejectsBadJSON(t *testing.T) {
	if _, err := ParseScene([]byte("{")); err == nil {
		t.Fatalf("expected an error")
	}
}

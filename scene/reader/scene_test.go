package reader

import (
	"context"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/achilleasa/raymarch/scene"
	"github.com/achilleasa/raymarch/types"
)

func TestDecodeDefaults(t *testing.T) {
	sc, err := Decode(strings.NewReader(`{"scene": "box"}`))
	if err != nil {
		t.Fatal(err)
	}

	exp := scene.Default()
	if sc.Kind != exp.Kind || *sc.Camera != *exp.Camera || sc.Light != exp.Light || sc.BgColor != exp.BgColor {
		t.Fatalf("expected reference scene; got %s", sc.Camera)
	}
}

func TestDecodeOverrides(t *testing.T) {
	payload := `{
		"scene": "spheres",
		"width": 320,
		"height": 200,
		"fov": 90,
		"eye": [1, 2, 5],
		"light": [0, 10, 0],
		"ambient": 0.25,
		"background": [0, 0, 0]
	}`
	sc, err := Decode(strings.NewReader(payload))
	if err != nil {
		t.Fatal(err)
	}

	if sc.Kind != scene.SphereLattice {
		t.Fatalf("expected sphere lattice; got %s", sc.Kind)
	}
	if sc.Camera.Width != 320 || sc.Camera.Height != 200 {
		t.Fatalf("expected 320x200 frame; got %dx%d", sc.Camera.Width, sc.Camera.Height)
	}
	if math.Abs(sc.Camera.FOV-math.Pi/2) > 1e-12 {
		t.Fatalf("expected fov of pi/2; got %f", sc.Camera.FOV)
	}
	if sc.Camera.Eye != types.XYZ(1, 2, 5) {
		t.Fatalf("expected eye override; got %v", sc.Camera.Eye)
	}
	if sc.Light.Position != types.XYZ(0, 10, 0) || sc.Light.Ambient != 0.25 {
		t.Fatalf("expected light override; got %+v", sc.Light)
	}
	if sc.BgColor != types.XYZ(0, 0, 0) {
		t.Fatalf("expected background override; got %v", sc.BgColor)
	}
}

func TestDecodeErrors(t *testing.T) {
	type spec struct {
		payload string
		expErr  error
		expMsg  string
	}
	specs := []spec{
		{`{"scene": "torus"}`, scene.ErrUnknownScene, ""},
		{`{"scene": "box", "fov": 180}`, scene.ErrInvalidFOV, ""},
		{`{"scene": "box", "ambient": -0.1}`, scene.ErrInvalidAmbient, ""},
		{`{"scene": "box", "speed": 11}`, nil, "unknown field"},
		{`{"scene": `, nil, "invalid scene description"},
	}

	for index, s := range specs {
		_, err := Decode(strings.NewReader(s.payload))
		if err == nil {
			t.Fatalf("[spec %d] expected an error", index)
		}
		if s.expErr != nil && !errors.Is(err, s.expErr) {
			t.Fatalf("[spec %d] expected error %v; got %v", index, s.expErr, err)
		}
		if s.expMsg != "" && !strings.Contains(err.Error(), s.expMsg) {
			t.Fatalf("[spec %d] expected error containing %q; got %v", index, s.expMsg, err)
		}
	}
}

func TestReadLocalScene(t *testing.T) {
	sceneFile := filepath.Join(t.TempDir(), "scene.json")
	if err := os.WriteFile(sceneFile, []byte(`{"scene": "spheres", "width": 8, "height": 6}`), 0644); err != nil {
		t.Fatal(err)
	}

	sc, err := ReadScene(context.Background(), sceneFile)
	if err != nil {
		t.Fatal(err)
	}
	if sc.Kind != scene.SphereLattice || sc.Camera.Width != 8 || sc.Camera.Height != 6 {
		t.Fatalf("unexpected scene %s %s", sc.Kind, sc.Camera)
	}
}

func TestReadRemoteScene(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/scenes/box.json" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`{"scene": "box", "width": 16, "height": 16}`))
	}))
	defer server.Close()

	sc, err := ReadScene(context.Background(), server.URL+"/scenes/box.json")
	if err != nil {
		t.Fatal(err)
	}
	if sc.Kind != scene.Box || sc.Camera.Width != 16 {
		t.Fatalf("unexpected scene %s %s", sc.Kind, sc.Camera)
	}

	_, err = ReadScene(context.Background(), server.URL+"/scenes/missing.json")
	if err == nil || !strings.Contains(err.Error(), "status 404") {
		t.Fatalf("expected 404 error; got %v", err)
	}
}

func TestReadInvalidSceneReportsPath(t *testing.T) {
	sceneFile := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(sceneFile, []byte(`{"scene": "cone"}`), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := ReadScene(context.Background(), sceneFile)
	if !errors.Is(err, scene.ErrUnknownScene) || !strings.Contains(err.Error(), "broken.json") {
		t.Fatalf("expected unknown scene error naming the file; got %v", err)
	}
}

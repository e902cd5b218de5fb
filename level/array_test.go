package level

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/nathoo/leveldesc/types"
)

func values(ps []*Param) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Value()
	}
	return out
}

func names(ps []*Param) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Name()
	}
	return out
}

func TestAsArray(t *testing.T) {
	tests := []struct {
		value string
		want  []string
	}{
		{"1;2;3", []string{"1", "2", "3"}},
		{" 1 ; 2 ;3 ", []string{"1", "2", "3"}},
		{"1;;2;", []string{"1", "2"}},
		{"single", []string{"single"}},
		{"", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := NewRaw("v", tt.value).AsArray()
			if err != nil {
				t.Fatalf("AsArray: %v", err)
			}
			if diff := cmp.Diff(tt.want, values(got)); diff != "" {
				t.Errorf("values mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestArrayChildNames(t *testing.T) {
	l := lineWith(NewRaw("pos", "1;;2"))
	elems, err := l.Param("pos").AsArray()
	if err != nil {
		t.Fatalf("AsArray: %v", err)
	}
	if diff := cmp.Diff([]string{"pos[0]", "pos[1]"}, names(elems)); diff != "" {
		t.Errorf("names mismatch (-want +got):\n%s", diff)
	}
	for _, e := range elems {
		if e.Line() != l {
			t.Errorf("%s not bound to the parent's line", e.Name())
		}
	}
}

func TestArrayMemoized(t *testing.T) {
	p := NewRaw("v", "1;2")
	a, _ := p.AsArray()
	b, _ := p.AsArray()
	if len(a) != 2 || a[0] != b[0] || a[1] != b[1] {
		t.Error("second AsArray returned different children")
	}
}

func TestArrayAbsent(t *testing.T) {
	l := NewLine("Foo")
	if _, err := l.Param("v").AsArray(); !errors.Is(err, ErrMissingParam) {
		t.Errorf("got %v, want ErrMissingParam", err)
	}
	got, err := l.Param("v").AsArrayOr(nil)
	if err != nil || got != nil {
		t.Errorf("got (%v, %v), want (nil, nil)", got, err)
	}
}

func TestNewArray(t *testing.T) {
	p := NewArray("v", NewInt("", 1), NewInt("", 2), NewInt("", 3))
	if p.Value() != "1;2;3" {
		t.Errorf("got %q, want %q", p.Value(), "1;2;3")
	}
	elems, err := p.AsArray()
	if err != nil {
		t.Fatalf("AsArray: %v", err)
	}
	if diff := cmp.Diff([]string{"v[0]", "v[1]", "v[2]"}, names(elems)); diff != "" {
		t.Errorf("names mismatch (-want +got):\n%s", diff)
	}

	// Reading the text back gives the same elements.
	back, _ := NewRaw("v", p.Value()).AsArray()
	if diff := cmp.Diff(values(elems), values(back)); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestNewArrayAttach(t *testing.T) {
	l := NewLine("Foo")
	l.Set(NewArray("v", NewInt("", 1)))
	elems, _ := l.Param("v").AsArray()
	if elems[0].Line() != l {
		t.Error("children of a composed array not bound to the line")
	}
}

func TestAsColor(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    types.Color
		wantErr bool
	}{
		{"hex", "#FF0000", types.Color{R: 1, G: 0, B: 0, A: 1}, false},
		{"hex lower", "#00ff00", types.Color{R: 0, G: 1, B: 0, A: 1}, false},
		{"hex alpha", "#0000FF80", types.Color{R: 0, G: 0, B: 1, A: 128.0 / 255.0}, false},
		{"byte list", "255;0;0", types.Color{R: 1, G: 0, B: 0, A: 1}, false},
		{"byte list alpha", "255;0;0;255", types.Color{R: 1, G: 0, B: 0, A: 1}, false},
		{"unit list", "1;0.5;0", types.Color{R: 1, G: 0.5, B: 0, A: 1}, false},
		{"unit list alpha", "0.5;0.5;0.5;0.5", types.Color{R: 0.5, G: 0.5, B: 0.5, A: 0.5}, false},
		{"white", "1;1;1", types.Color{R: 1, G: 1, B: 1, A: 1}, false},
		{"too short", "1;2", types.Color{}, true},
		{"too long", "1;2;3;4;5", types.Color{}, true},
		{"bad element", "1;x;0", types.Color{}, true},
		{"bad hex", "#GG0000", types.Color{}, true},
		{"short hex", "#F00", types.Color{}, true},
		{"bad hex alpha", "#FF0000ZZ", types.Color{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewRaw("color", tt.value).AsColor()
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("color mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestColorFormsAgree(t *testing.T) {
	hex, err := NewRaw("c", "#FF8000").AsColor()
	if err != nil {
		t.Fatal(err)
	}
	list, err := NewRaw("c", "255;128;0").AsColor()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(hex, list); diff != "" {
		t.Errorf("hex and list forms differ (-hex +list):\n%s", diff)
	}
}

func TestColorFormsAgreeForEveryByte(t *testing.T) {
	for n := 0; n <= 255; n++ {
		hex, err := NewRaw("c", fmt.Sprintf("#%02X%02X%02X", n, n, 255-n)).AsColor()
		if err != nil {
			t.Fatal(err)
		}
		list, err := NewRaw("c", fmt.Sprintf("%d;%d;%d", n, n, 255-n)).AsColor()
		if err != nil {
			t.Fatal(err)
		}
		if hex != list {
			t.Errorf("byte %d: hex %+v, list %+v", n, hex, list)
		}
	}
}

func TestColorElementErrorNamesParent(t *testing.T) {
	_, err := NewRaw("color", "1;x;0").AsColor()
	var bad *BadParamError
	if !errors.As(err, &bad) {
		t.Fatalf("got %v, want *BadParamError", err)
	}
	if bad.Param != "color" || bad.Expected != "color" {
		t.Errorf("got param %q expected %q, want color/color", bad.Param, bad.Expected)
	}
}

func TestAsPoint(t *testing.T) {
	got, err := NewRaw("p", "3;-4.5").AsPoint()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(types.Point{X: 3, Y: -4.5}, got); diff != "" {
		t.Errorf("point mismatch (-want +got):\n%s", diff)
	}
	for _, v := range []string{"3", "1;2;3", "a;b"} {
		if _, err := NewRaw("p", v).AsPoint(); !errors.Is(err, ErrBadParam) {
			t.Errorf("%q: got %v, want ErrBadParam", v, err)
		}
	}
}

func TestAsVec3(t *testing.T) {
	tests := []struct {
		value   string
		want    types.Vec3
		wantErr bool
	}{
		{"1;2", types.Vec3{X: 1, Y: 0, Z: 2}, false},
		{"1;2;3", types.Vec3{X: 1, Y: 2, Z: 3}, false},
		{"1.5; -2; 0.25", types.Vec3{X: 1.5, Y: -2, Z: 0.25}, false},
		{"1", types.Vec3{}, true},
		{"1;2;3;4", types.Vec3{}, true},
		{"1;x;3", types.Vec3{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := NewRaw("pos", tt.value).AsVec3()
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("vec mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestComposedValues(t *testing.T) {
	tests := []struct {
		name string
		p    *Param
		want string
	}{
		{"int", NewInt("n", -3), "-3"},
		{"float", NewFloat("f", 0.1), "0.1"},
		{"whole float", NewFloat("f", 2), "2"},
		{"large float", NewFloat("f", 1e21), "1e+21"},
		{"bool", NewBool("b", true), "true"},
		{"string", NewString("s", "hi there"), `"hi there"`},
		{"string with quote", NewString("s", `say "x"`), `'say "x"'`},
		{"color", NewColor("c", types.Color{R: 1, G: 0, B: 0, A: 1}), "1;0;0"},
		{"color alpha", NewColor("c", types.Color{R: 1, G: 0, B: 0, A: 0.5}), "1;0;0;0.5"},
		{"point", NewPoint("p", types.Point{X: 1, Y: 2}), "1;2"},
		{"vec3", NewVec3("v", types.Vec3{X: 1, Y: 0, Z: 2.5}), "1;0;2.5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Value(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestComposeRoundTrip(t *testing.T) {
	c := types.Color{R: 0.25, G: 0.5, B: 0.75, A: 0.125}
	gotC, err := NewRaw("c", NewColor("c", c).Value()).AsColor()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(c, gotC); diff != "" {
		t.Errorf("color round trip (-want +got):\n%s", diff)
	}

	v := types.Vec3{X: -1.5, Y: 3, Z: 1e-3}
	gotV, err := NewRaw("v", NewVec3("v", v).Value()).AsVec3()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(v, gotV); diff != "" {
		t.Errorf("vec3 round trip (-want +got):\n%s", diff)
	}
}

func TestConcurrentDecompose(t *testing.T) {
	p := NewRaw("pos", "1;2;3")
	want := types.Vec3{X: 1, Y: 2, Z: 3}

	var wg sync.WaitGroup
	vecs := make([]types.Vec3, 8)
	parts := make([][]*Param, 8)
	errs := make([]error, 8)
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				vecs[i], errs[i] = p.AsVec3()
				return
			}
			parts[i], errs[i] = p.AsArray()
		}()
	}
	wg.Wait()

	for i := range 8 {
		if errs[i] != nil {
			t.Fatalf("goroutine %d: %v", i, errs[i])
		}
		if i%2 == 0 {
			if vecs[i] != want {
				t.Errorf("goroutine %d: AsVec3() = %v, want %v", i, vecs[i], want)
			}
			continue
		}
		if diff := cmp.Diff([]string{"1", "2", "3"}, values(parts[i])); diff != "" {
			t.Errorf("goroutine %d: AsArray() mismatch (-want +got):\n%s", i, diff)
		}
		if &parts[i][0] != &parts[1][0] {
			t.Errorf("goroutine %d split the value again", i)
		}
	}
}

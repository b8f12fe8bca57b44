// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package backend

import (
	"errors"
	"testing"
)

// fakeGraphics is a minimal Graphics for registry tests.
type fakeGraphics struct {
	name string
}

func (g *fakeGraphics) Name() string { return g.name }

func (g *fakeGraphics) NewRenderingDevice(useSoftwareRenderer bool) (RenderingDevice, error) {
	return nil, errors.New("not implemented")
}

func (g *fakeGraphics) NewCompositingDevice(target CompositionTarget, dev RenderingDevice) (CompositingDevice, error) {
	return nil, errors.New("not implemented")
}

var _ Graphics = (*fakeGraphics)(nil)

func TestRegistrySelection(t *testing.T) {
	factory := func(name string) Factory {
		return func() (Graphics, error) { return &fakeGraphics{name: name}, nil }
	}
	Register("reg-test-low", 5, factory("reg-test-low"), nil)
	Register("reg-test-down", 20, factory("reg-test-down"), func() bool { return false })
	Register("reg-test-mid", 10, factory("reg-test-mid"), func() bool { return true })
	Register("reg-test-broken", 30, func() (Graphics, error) {
		return nil, errors.New("construction failed")
	}, nil)

	names := List()
	index := func(name string) int {
		for i, n := range names {
			if n == name {
				return i
			}
		}
		t.Fatalf("List() missing %q: %v", name, names)
		return -1
	}
	if !(index("reg-test-broken") < index("reg-test-down") &&
		index("reg-test-down") < index("reg-test-mid") &&
		index("reg-test-mid") < index("reg-test-low")) {
		t.Errorf("List() order wrong: %v", names)
	}

	g, err := ByName("reg-test-mid")
	if err != nil {
		t.Fatalf("ByName: %v", err)
	}
	if g.Name() != "reg-test-mid" {
		t.Errorf("ByName returned %q", g.Name())
	}

	if _, err := ByName("reg-test-missing"); !errors.Is(err, ErrUnknownBackend) {
		t.Errorf("ByName(missing) error = %v, want ErrUnknownBackend", err)
	}

	// Default must skip the broken factory and the unavailable backend and
	// land on the highest-priority usable one.
	g, err = Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if g.Name() != "reg-test-mid" {
		t.Errorf("Default() = %q, want %q", g.Name(), "reg-test-mid")
	}
}

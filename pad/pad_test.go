package pad

import (
	"testing"

	"github.com/automoto/stardive/engine"
)

func TestTriggerOnlyOnFirstTick(t *testing.T) {
	var p Pad

	p.OnKey("Space", true)
	p.Update()

	if !p.Pressed(Fire) {
		t.Error("fire not pressed after key down")
	}
	if !p.Triggered(Fire) {
		t.Error("fire not triggered on the first tick")
	}

	p.Update()
	if !p.Pressed(Fire) {
		t.Error("fire released without a key up")
	}
	if p.Triggered(Fire) {
		t.Error("fire triggered again while held")
	}

	p.OnKey("Space", false)
	p.Update()
	if p.Pressed(Fire) {
		t.Error("fire still pressed after key up")
	}
}

func TestStickReplacesHorizontalPair(t *testing.T) {
	var p Pad

	p.OnStick(engine.DirLeft)
	p.Update()
	if !p.Pressed(Left) || p.Pressed(Right) {
		t.Error("stick left not reflected")
	}

	p.OnStick(engine.DirRight)
	p.Update()
	if p.Pressed(Left) || !p.Pressed(Right) {
		t.Error("stick right must replace left, not add to it")
	}

	p.OnStick(engine.DirNeutral)
	p.Update()
	if p.Pressed(Left) || p.Pressed(Right) {
		t.Error("neutral must clear both horizontal bits")
	}
}

func TestKeyAndStickMerge(t *testing.T) {
	var p Pad

	p.OnKey("ArrowLeft", true)
	p.OnStick(engine.DirRight)
	p.Update()

	if !p.Pressed(Left) || !p.Pressed(Right) {
		t.Error("key and stick sources must merge, not mask each other")
	}

	// Releasing the stick leaves the key held.
	p.OnStick(engine.DirNeutral)
	p.Update()
	if !p.Pressed(Left) {
		t.Error("key state lost when the stick went neutral")
	}
	if p.Pressed(Right) {
		t.Error("stick state survived going neutral")
	}
}

func TestRepeatedButtonLevelsHarmless(t *testing.T) {
	var p Pad

	p.OnButton(true)
	p.OnButton(true)
	p.Update()
	if !p.Triggered(Fire) {
		t.Error("fire not triggered")
	}

	p.OnButton(false)
	p.OnButton(false)
	p.Update()
	if p.Pressed(Fire) {
		t.Error("fire still pressed after release")
	}
}

func TestUnknownCodeIgnored(t *testing.T) {
	var p Pad

	p.OnKey("KeyQ", true)
	p.Update()
	if p.pressed != 0 {
		t.Errorf("pressed = %b, want no bits for an unbound code", p.pressed)
	}
}

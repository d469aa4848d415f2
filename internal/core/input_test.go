package core

import (
	"reflect"
	"testing"
)

func TestInputFrameOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionRotate)
	f.Set(ActionLeft)
	f.Set(ActionRotate)

	want := []Action{ActionRotate, ActionLeft}
	if got := f.Ordered(); !reflect.DeepEqual(got, want) {
		t.Errorf("Ordered() = %v, expected %v", got, want)
	}
	if !f.Has(ActionLeft) || f.Has(ActionHold) {
		t.Error("Has() does not match Set() calls")
	}

	clone := f.Clone()
	f.Clear()
	if len(f.Ordered()) != 0 || f.Has(ActionRotate) {
		t.Error("Clear() should drop every action")
	}
	if got := clone.Ordered(); !reflect.DeepEqual(got, want) {
		t.Errorf("clone lost actions: %v", got)
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionPause) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionPause)
	if !f.Has(ActionPause) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestActionString(t *testing.T) {
	if ActionHardDrop.String() != "HardDrop" {
		t.Errorf("ActionHardDrop.String() = %q", ActionHardDrop.String())
	}
	if Action(99).String() != "Unknown" {
		t.Error("unknown action should stringify as Unknown")
	}
}

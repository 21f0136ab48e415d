package ptr

import "testing"

func TestTo(t *testing.T) {
	t.Run("string", func(t *testing.T) {
		s := "test"
		ptr := To(s)
		if ptr == nil {
			t.Fatal("Expected non-nil pointer")
		}
		if *ptr != s {
			t.Errorf("Expected %q, got %q", s, *ptr)
		}
		if ptr == &s {
			t.Error("Expected different address")
		}
	})

	t.Run("custom type", func(t *testing.T) {
		type SpeakerName string
		name := SpeakerName("Jane")
		ptr := To(name)
		if ptr == nil {
			t.Fatal("Expected non-nil pointer")
		}
		if *ptr != name {
			t.Errorf("Expected %q, got %q", name, *ptr)
		}
	})
}

func TestString(t *testing.T) {
	s := "hello world"
	ptr := String(s)
	if ptr == nil {
		t.Fatal("Expected non-nil pointer")
	}
	if *ptr != s {
		t.Errorf("Expected %q, got %q", s, *ptr)
	}
}

func TestInt(t *testing.T) {
	i := 42
	ptr := Int(i)
	if ptr == nil {
		t.Fatal("Expected non-nil pointer")
	}
	if *ptr != i {
		t.Errorf("Expected %d, got %d", i, *ptr)
	}
}

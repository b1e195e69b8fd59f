package record

import "testing"

func TestField_Map(t *testing.T) {
	src := Record{"a": 1, "b": "two"}

	if got := Field(src, "a"); got != 1 {
		t.Errorf("got %v, want 1", got)
	}
	if got := Field(src, "b"); got != "two" {
		t.Errorf("got %v, want two", got)
	}
}

func TestField_MissingIsNil(t *testing.T) {
	src := Record{"a": 1}
	if got := Field(src, "nope"); got != nil {
		t.Errorf("expected nil for missing field, got %v", got)
	}
}

func TestField_TypedMap(t *testing.T) {
	src := map[string]int{"count": 7}
	if got := Field(src, "count"); got != 7 {
		t.Errorf("got %v, want 7", got)
	}
	if got := Field(src, "other"); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}

func TestField_Struct(t *testing.T) {
	type user struct {
		Name string
		Age  int
		tag  string
	}
	src := user{Name: "ada", Age: 36, tag: "hidden"}

	if got := Field(src, "Name"); got != "ada" {
		t.Errorf("got %v, want ada", got)
	}
	if got := Field(src, "Age"); got != 36 {
		t.Errorf("got %v, want 36", got)
	}
	if got := Field(src, "tag"); got != nil {
		t.Errorf("unexported field should be nil, got %v", got)
	}
	if got := Field(src, "Missing"); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}

func TestField_StructPointer(t *testing.T) {
	type user struct{ Name string }
	src := &user{Name: "ada"}

	if got := Field(src, "Name"); got != "ada" {
		t.Errorf("got %v, want ada", got)
	}

	var nilPtr *user
	if got := Field(nilPtr, "Name"); got != nil {
		t.Errorf("expected nil for nil pointer, got %v", got)
	}
}

func TestField_Nil(t *testing.T) {
	if got := Field(nil, "a"); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}

func TestField_Scalar(t *testing.T) {
	if got := Field(42, "a"); got != nil {
		t.Errorf("expected nil for scalar, got %v", got)
	}
	if got := Field("text", "a"); got != nil {
		t.Errorf("expected nil for string, got %v", got)
	}
}

func TestProject(t *testing.T) {
	src := Record{"a": 1, "b": 2, "c": 3}
	got := Project(src, "a", "b")

	if len(got) != 2 {
		t.Fatalf("expected 2 fields, got %v", got)
	}
	if got["a"] != 1 || got["b"] != 2 {
		t.Errorf("got %v", got)
	}
	if _, present := got["c"]; present {
		t.Error("extra field should be absent")
	}
}

func TestProject_FreshIdentity(t *testing.T) {
	src := Record{"a": 1}
	got := Project(src, "a")

	got["a"] = 99
	if src["a"] != 1 {
		t.Error("projection should be a distinct record")
	}
}

func TestProject_MissingFieldNil(t *testing.T) {
	got := Project(Record{"a": 1}, "a", "missing")
	if got["a"] != 1 {
		t.Errorf("got %v", got)
	}
	if v, present := got["missing"]; !present || v != nil {
		t.Errorf("missing field should be present with nil value, got %v", got)
	}
}

func TestProject_SharesNestedStructure(t *testing.T) {
	nested := map[string]any{"inner": 1}
	src := Record{"n": nested}

	got := Project(src, "n")

	// The projection is shallow: mutating nested structure through the
	// projected record is observable on the source.
	got["n"].(map[string]any)["inner"] = 2
	if nested["inner"] != 2 {
		t.Error("nested structure should be shared with the source")
	}
}

func TestProject_StructSource(t *testing.T) {
	type event struct {
		ID   string
		Size int
	}
	got := Project(event{ID: "e1", Size: 10}, "ID", "Size")
	if got["ID"] != "e1" || got["Size"] != 10 {
		t.Errorf("got %v", got)
	}
}

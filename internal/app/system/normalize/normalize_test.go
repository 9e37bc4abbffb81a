package normalize

import (
	"encoding/json"
	"testing"
)

func decode(t *testing.T, s string) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal([]byte(s), &m); err != nil {
		t.Fatalf("bad fixture %s: %v", s, err)
	}
	return m
}

func TestCollection_KeyPriority(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    int
	}{
		{"categories wins", `{"categories":[1],"parts_categories":[1,2],"data":[1,2,3]}`, 1},
		{"parts_categories second", `{"parts_categories":[1,2],"data":[1,2,3]}`, 2},
		{"data last", `{"data":[1,2,3]}`, 3},
		{"none present", `{"items":[1,2,3,4]}`, 0},
		{"empty object", `{}`, 0},
		{"null skipped", `{"categories":null,"data":[1,2]}`, 2},
		{"empty array still wins", `{"categories":[],"data":[1,2]}`, 0},
		{"selected value not a collection", `{"categories":{"a":1},"data":[1,2]}`, 0},
		{"string value", `{"categories":"nope"}`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Collection(decode(t, tt.payload), PartsCategoryKeys...)
			if got == nil {
				t.Fatal("Collection returned nil, want empty slice")
			}
			if len(got) != tt.want {
				t.Errorf("len = %d, want %d", len(got), tt.want)
			}
		})
	}
}

func TestCollection_NilMap(t *testing.T) {
	if got := Collection(nil, PartsCategoryKeys...); len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}

func TestFirstKey(t *testing.T) {
	m := decode(t, `{"data":[],"parts_categories":[]}`)
	k, ok := FirstKey(m, PartsCategoryKeys...)
	if !ok || k != "parts_categories" {
		t.Errorf("FirstKey = %q, %v; want parts_categories, true", k, ok)
	}
	if _, ok := FirstKey(m, "missing"); ok {
		t.Error("FirstKey found a missing key")
	}
}

func TestIsActive(t *testing.T) {
	tests := []struct {
		name string
		item string
		want bool
	}{
		{"no flags", `{}`, true},
		{"snake true", `{"is_active":true}`, true},
		{"snake false", `{"is_active":false}`, false},
		{"camel false", `{"isActive":false}`, false},
		{"camel true", `{"isActive":true}`, true},
		{"snake true camel false", `{"is_active":true,"isActive":false}`, false},
		{"non-bool flag", `{"is_active":"false"}`, true},
		{"null flag", `{"is_active":null}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsActive(decode(t, tt.item)); got != tt.want {
				t.Errorf("IsActive(%s) = %v, want %v", tt.item, got, tt.want)
			}
		})
	}
}

func TestIsActive_NonObject(t *testing.T) {
	if !IsActive(42.0) {
		t.Error("non-object item should count as active")
	}
}

func TestCountActive(t *testing.T) {
	items := Collection(decode(t, `{"categories":[{"is_active":true},{"isActive":false},{}]}`), PartsCategoryKeys...)
	if got := CountActive(items); got != 2 {
		t.Errorf("CountActive = %d, want 2", got)
	}
}

func TestNumber(t *testing.T) {
	m := decode(t, `{"a":"12","b":7,"c":"x"}`)
	if f, ok := Number(m, "missing", "a"); !ok || f != 12 {
		t.Errorf("Number(a) = %v, %v", f, ok)
	}
	if f, ok := Number(m, "b"); !ok || f != 7 {
		t.Errorf("Number(b) = %v, %v", f, ok)
	}
	if _, ok := Number(m, "c"); ok {
		t.Error("Number(c) should fail for non-numeric string")
	}
	if got := Int(m, "missing"); got != 0 {
		t.Errorf("Int(missing) = %d, want 0", got)
	}
}

func TestString(t *testing.T) {
	m := decode(t, `{"message":"  ","error":" boom "}`)
	if got := String(m, MessageKeys...); got != "boom" {
		t.Errorf("String = %q, want boom", got)
	}
}

func TestName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Door Motor", "Door Motor"},
		{"  Door   Motor  ", "Door Motor"},
		{"", ""},
		{"   ", ""},
		{"موتور  درب", "موتور درب"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Name(tt.input); got != tt.want {
				t.Errorf("Name(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

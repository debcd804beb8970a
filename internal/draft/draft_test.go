package draft

import (
	"errors"
	"testing"
)

func TestParseField(t *testing.T) {
	tests := []struct {
		input   string
		want    Field
		wantErr bool
	}{
		{"role", FieldRole, false},
		{"Role", FieldRole, false},
		{"TASK", FieldTask, false},
		{"context", FieldContext, false},
		{"reasoning", FieldReasoning, false},
		{"outputFormat", FieldOutputFormat, false},
		{"Output Format", FieldOutputFormat, false},
		{"output-format", FieldOutputFormat, false},
		{"stop_conditions", FieldStopConditions, false},
		{" Stop Conditions ", FieldStopConditions, false},
		{"", "", true},
		{"goal", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseField(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseField(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrUnknownField) {
				t.Errorf("ParseField(%q) error = %v, want ErrUnknownField", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseField(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSetGet(t *testing.T) {
	var d Draft
	for _, f := range Fields() {
		value := "  value for " + string(f) + " | with pipes  "
		if err := d.Set(f, value); err != nil {
			t.Fatalf("Set(%s) error: %v", f, err)
		}
		if got := d.Get(f); got != value {
			t.Errorf("Get(%s) = %q, want verbatim %q", f, got, value)
		}
	}

	if err := d.Set(Field("nope"), "x"); !errors.Is(err, ErrUnknownField) {
		t.Errorf("Set(unknown) error = %v, want ErrUnknownField", err)
	}
	if got := d.Get(Field("nope")); got != "" {
		t.Errorf("Get(unknown) = %q, want empty", got)
	}
}

func TestIsEmpty(t *testing.T) {
	if !(Draft{}).IsEmpty() {
		t.Error("zero Draft should be empty")
	}
	if !(Draft{Role: " ", Reasoning: "\n"}).IsEmpty() {
		t.Error("whitespace-only Draft should be empty")
	}
	if (Draft{Reasoning: "x"}).IsEmpty() {
		t.Error("Draft with reasoning should not be empty")
	}
}

func TestFilled(t *testing.T) {
	tests := []struct {
		name  string
		draft Draft
		want  int
	}{
		{"empty", Draft{}, 0},
		{"whitespace ignored", Draft{Role: " ", Task: "t"}, 1},
		{"example", Example(), 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.draft.Filled(); got != tt.want {
				t.Errorf("Filled() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFieldsOrderAndCopy(t *testing.T) {
	want := []Field{FieldRole, FieldTask, FieldContext, FieldReasoning, FieldOutputFormat, FieldStopConditions}
	got := Fields()
	if len(got) != len(want) {
		t.Fatalf("Fields() len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Fields()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	got[0] = "mutated"
	if Fields()[0] != FieldRole {
		t.Error("Fields() should return a copy")
	}
}

func TestSectionsMatchFields(t *testing.T) {
	secs := Sections()
	fields := Fields()
	if len(secs) != len(fields) {
		t.Fatalf("Sections() len = %d, want %d", len(secs), len(fields))
	}
	for i, s := range secs {
		if s.Field != fields[i] {
			t.Errorf("Sections()[%d].Field = %q, want %q", i, s.Field, fields[i])
		}
		if s.Title == "" || s.Placeholder == "" || s.Description == "" || s.Tip == "" {
			t.Errorf("section %q has empty metadata: %+v", s.Field, s)
		}
	}

	s, ok := SectionFor(FieldOutputFormat)
	if !ok || s.Title != "Output Format" {
		t.Errorf("SectionFor(outputFormat) = %+v, %v", s, ok)
	}
	if _, ok := SectionFor(Field("nope")); ok {
		t.Error("SectionFor(unknown) should report false")
	}
}

func TestExampleDeterministic(t *testing.T) {
	a := Example()
	a.Role = "changed"

	b := Example()
	if b.Role == "changed" {
		t.Fatal("Example() should return a fresh value")
	}
	if b != Example() {
		t.Error("Example() should return the same values every call")
	}
	for _, f := range Fields() {
		if b.Get(f) == "" {
			t.Errorf("Example() leaves %s empty", f)
		}
	}
}

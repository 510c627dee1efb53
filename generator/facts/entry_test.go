package facts

import "testing"

func TestEntry_String(t *testing.T) {
	e := Entry{
		Name: "timeval",
		Fact: StructType,
	}
	want := "{Name: timeval, Fact: Struct}"
	if got := e.String(); got != want {
		t.Errorf("Entry.String() = %v, want %v", got, want)
	}
}

package input

import "testing"

func TestParseAction(t *testing.T) {
	tests := []struct {
		in      string
		want    Action
		wantErr bool
	}{
		{in: "line.join", want: Action{Name: "line.join"}},
		{in: " case.transform:title ", want: Action{Name: "case.transform", Args: ActionArgs{Mode: "title"}}},
		{in: "select.boundary:end", want: Action{Name: "select.boundary", Args: ActionArgs{Direction: "end"}}},
		{in: "line.join:x", wantErr: true},
		{in: ":upper", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseAction(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseAction(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseAction(%q) error = %v", tt.in, err)
			continue
		}
		if got.Name != tt.want.Name || got.Args.Mode != tt.want.Args.Mode || got.Args.Direction != tt.want.Args.Direction {
			t.Errorf("ParseAction(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestActionString(t *testing.T) {
	a := Action{Name: "case.transform", Args: ActionArgs{Mode: "upper"}}.WithCount(3)
	if got, want := a.String(), "case.transform(mode=upper, count=3)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got := (Action{Name: "line.join"}).String(); got != "line.join" {
		t.Errorf("String() = %q", got)
	}
}

func TestNamespace(t *testing.T) {
	if got := (Action{Name: "select.word"}).Namespace(); got != "select" {
		t.Errorf("Namespace() = %q, want select", got)
	}
	if got := (Action{Name: "noop"}).Namespace(); got != "" {
		t.Errorf("Namespace() = %q, want empty", got)
	}
}

func TestArgsExtra(t *testing.T) {
	args := ActionArgs{Extra: map[string]interface{}{"k": "v", "n": 1}}
	if args.GetString("k") != "v" {
		t.Error("GetString(k) should be v")
	}
	if args.GetString("n") != "" {
		t.Error("GetString on a non-string should be empty")
	}
	if _, ok := (ActionArgs{}).Get("k"); ok {
		t.Error("Get on nil Extra should fail")
	}
}

package weburl

import "testing"

func TestSplitPathComponents(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		isSpecial bool
		want      []string
	}{
		{"simple path", "/a/b/c", false, []string{"", "a", "b", "c"}},
		{"trailing separator yields empty tail", "a/b/", false, []string{"a", "b", ""}},
		{"special scheme splits on backslash too", `a\b/c`, true, []string{"a", "b", "c"}},
		{"empty input yields one empty component", "", false, []string{""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitPathComponents([]byte(tt.in), tt.isSpecial)
			if len(got) != len(tt.want) {
				t.Fatalf("splitPathComponents(%q) = %v, want %v", tt.in, got, tt.want)
			}
			for i, w := range tt.want {
				if string(got[i]) != w {
					t.Errorf("component %d = %q, want %q", i, got[i], w)
				}
			}
		})
	}
}

func TestIsDotAndDotDotComponent(t *testing.T) {
	if !isDotComponent([]byte(".")) {
		t.Errorf("isDotComponent(\".\") = false, want true")
	}
	if isDotComponent([]byte("..")) {
		t.Errorf("isDotComponent(\"..\") = true, want false")
	}
	if !isDotDotComponent([]byte("..")) {
		t.Errorf("isDotDotComponent(\"..\") = false, want true")
	}
	if isDotDotComponent([]byte(".")) {
		t.Errorf("isDotDotComponent(\".\") = true, want false")
	}
}

func TestIsWindowsDriveLetter(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"C:", true},
		{"c|", true},
		{"C", false},
		{"C::", false},
		{"1:", false},
	}
	for _, tt := range tests {
		if got := isWindowsDriveLetter([]byte(tt.in)); got != tt.want {
			t.Errorf("isWindowsDriveLetter(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestBuildHierarchicalPathDotDotResolution(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"single dotdot pops one component", "/a/b/../c", "/a/c"},
		{"dot component is dropped", "/a/./b", "/a/b"},
		{"leading dotdot with no base has no effect beyond root", "/../a", "/a"},
		{"trailing dotdot yields directory slash", "/a/b/..", "/a/"},
		{"multiple consecutive separators preserved as empty runs", "/a//b", "/a//b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := string(buildHierarchicalPath([]byte(tt.in), SchemeHTTP, nil))
			if got != tt.want {
				t.Errorf("buildHierarchicalPath(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestBuildHierarchicalPathWithBaseMerge(t *testing.T) {
	base, err := Parse("http://a/b/c/d;p?q")
	if err != nil {
		t.Fatalf("base parse error: %v", err)
	}

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare relative merges into base directory", "g", "/b/c/g"},
		{"single dotdot pops base and input", "../g", "/b/g"},
		{"double dotdot pops to root", "../../g", "/g"},
		{"excess dotdot clamps at root", "../../../../g", "/g"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := string(buildHierarchicalPath([]byte(tt.in), SchemeHTTP, base))
			if got != tt.want {
				t.Errorf("buildHierarchicalPath(%q, base) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFirstForwardComponentLength(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"/abc/def", 3},
		{"/abc", 3},
		{"/", 0},
		{"", 0},
		{"abc", 0},
	}
	for _, tt := range tests {
		if got := firstForwardComponentLength([]byte(tt.in)); got != tt.want {
			t.Errorf("firstForwardComponentLength(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestNeedsPathSigil(t *testing.T) {
	tests := []struct {
		name         string
		hasAuthority bool
		path         string
		want         bool
	}{
		{"no authority, double slash path needs sigil", false, "//foo", true},
		{"no authority, single slash path is fine", false, "/foo", false},
		{"authority present never needs sigil", true, "//foo", false},
		{"short path never needs sigil", false, "/", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := needsPathSigil(tt.hasAuthority, []byte(tt.path)); got != tt.want {
				t.Errorf("needsPathSigil(%v, %q) = %v, want %v", tt.hasAuthority, tt.path, got, tt.want)
			}
		})
	}
}

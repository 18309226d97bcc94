package template

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/goliatone/go-metatags/pkg/head"
	"github.com/goliatone/go-metatags/pkg/tags"
)

type stubRenderer struct {
	filters map[string]func(any, any) (any, error)
	err     error
}

func (s *stubRenderer) Render(string, any, ...io.Writer) (string, error) { return "", nil }
func (s *stubRenderer) RenderString(string, any, ...io.Writer) (string, error) { return "", nil }
func (s *stubRenderer) GlobalContext(any) error { return nil }

func (s *stubRenderer) RegisterFilter(name string, fn func(any, any) (any, error)) error {
	if s.err != nil {
		return s.err
	}
	if s.filters == nil {
		s.filters = make(map[string]func(any, any) (any, error))
	}
	s.filters[name] = fn
	return nil
}

func TestRegisterFilters(t *testing.T) {
	stub := &stubRenderer{}
	if err := RegisterFilters(stub); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, ok := stub.filters[FilterName]; !ok {
		t.Fatalf("expected %s filter registered", FilterName)
	}
}

func TestRegisterFilters_ExistingIsFine(t *testing.T) {
	stub := &stubRenderer{err: ErrFilterExists}
	if err := RegisterFilters(stub); err != nil {
		t.Fatalf("expected existing filter to be tolerated, got %v", err)
	}

	boom := errors.New("boom")
	stub = &stubRenderer{err: boom}
	if err := RegisterFilters(stub); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
	if err := RegisterFilters(nil); err == nil {
		t.Fatalf("expected error for nil renderer")
	}
}

func TestMetaTags_Head(t *testing.T) {
	h := head.New(head.WithConfig(tags.NewConfig()))
	h.SetTitleForAll("T")

	cases := []struct {
		name  string
		param any
		want  string
	}{
		{name: "no param", param: nil, want: h.WriteAll(head.WriteOptions{})},
		{name: "bool", param: true, want: h.WriteAll(head.WriteOptions{NewLine: true})},
		{name: "string", param: "newline", want: h.WriteAll(head.WriteOptions{NewLine: true})},
		{name: "false string", param: "false", want: h.WriteAll(head.WriteOptions{})},
		{name: "int", param: 1, want: h.WriteAll(head.WriteOptions{NewLine: true})},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := MetaTags(h, tc.param)
			if err != nil {
				t.Fatalf("filter: %v", err)
			}
			if got != SafeHTML(tc.want) {
				t.Fatalf("want %q, got %q", tc.want, got)
			}
		})
	}
}

func TestMetaTags_Records(t *testing.T) {
	og := tags.NewOpenGraphFields(tags.WithConfig(tags.NewConfig()))

	got, err := MetaTags(og, nil)
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	if got != SafeHTML(`<meta property="og:type" content="website">`) {
		t.Fatalf("unexpected output %q", got)
	}

	got, err = MetaTags(*og, nil)
	if err != nil {
		t.Fatalf("filter value record: %v", err)
	}
	if !strings.Contains(string(got.(SafeHTML)), "og:type") {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestMetaTags_Unsupported(t *testing.T) {
	if _, err := MetaTags(42, nil); err == nil {
		t.Fatalf("expected error for unsupported input")
	}
	got, err := MetaTags(nil, nil)
	if err != nil || got != SafeHTML("") {
		t.Fatalf("expected empty output for nil input, got %q (%v)", got, err)
	}
}

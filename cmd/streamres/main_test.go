package main

import (
	"bytes"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/birkland/streamres"
	"github.com/go-test/deep"
)

func memResolver(files map[string]string) streamres.Resolver {
	return streamres.Func(func(path string) (io.ReadCloser, bool) {
		content, ok := files[path]
		if !ok {
			return nil, false
		}
		return ioutil.NopCloser(strings.NewReader(content)), true
	})
}

func TestCatAction(t *testing.T) {
	r := memResolver(map[string]string{"a": "A", "b": "B", "c": "C"})

	cases := []struct {
		name      string
		paths     []string
		parallel  int
		expected  string
		expectErr bool
	}{
		{"inOrder", []string{"c", "a", "b"}, 10, "CAB", false},
		{"serial", []string{"a", "b", "c", "a"}, 1, "ABCA", false},
		{"zeroParallel", []string{"b"}, 0, "B", false},
		{"absentStillWritesOthers", []string{"a", "nope", "c"}, 2, "AC", true},
		{"nothing", nil, 10, "", false},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			var out bytes.Buffer
			err := catAction(&out, r, c.paths, c.parallel)
			if (err != nil) != c.expectErr {
				t.Errorf("expected error: %t, got error: %v", c.expectErr, err)
			}
			if out.String() != c.expected {
				t.Errorf("expected %q, got %q", c.expected, out.String())
			}
		})
	}
}

func TestCheckAction(t *testing.T) {
	r := memResolver(map[string]string{"here": "content"})

	var out bytes.Buffer
	if err := checkAction(&out, r, []string{"here", "gone"}); err != nil {
		t.Fatalf("check failed: %+v", err)
	}

	expected := []string{"here\tok", "gone\tabsent"}
	if diffs := deep.Equal(expected, strings.Split(strings.TrimSpace(out.String()), "\n")); len(diffs) != 0 {
		t.Errorf("unexpected output: %s", diffs)
	}
}

func TestLsAction(t *testing.T) {
	tempDir, err := ioutil.TempDir("", "streamres_test")
	if err != nil {
		t.Fatal("Could not create testing temp dir")
	}
	defer os.RemoveAll(tempDir)

	_ = os.Mkdir(filepath.Join(tempDir, "dir"), 0775)
	_ = ioutil.WriteFile(filepath.Join(tempDir, "dir", "file"), []byte("content"), 0664)

	var out bytes.Buffer
	if err := lsAction(&out, []string{tempDir}); err != nil {
		t.Fatalf("ls failed: %+v", err)
	}

	expected := []string{
		"absent\t" + filepath.Join(tempDir, "dir"),
		"file\t" + filepath.Join(tempDir, "dir", "file"),
	}
	if diffs := deep.Equal(expected, strings.Split(strings.TrimSpace(out.String()), "\n")); len(diffs) != 0 {
		t.Errorf("unexpected output: %s", diffs)
	}

	if err := lsAction(&out, []string{"a", "b"}); err == nil {
		t.Errorf("expected an error for too many arguments")
	}
}

func TestNewResolver(t *testing.T) {
	cases := []struct {
		driver    string
		expectErr bool
	}{
		{"", false},
		{"file", false},
		{"afero", false},
		{"s3", true},
	}

	for _, c := range cases {
		c := c
		t.Run(c.driver, func(t *testing.T) {
			r, err := newResolver(c.driver)
			if (err != nil) != c.expectErr {
				t.Fatalf("expected error: %t, got error: %v", c.expectErr, err)
			}
			if err == nil {
				if _, ok := r.Resolve("DOES_NOT_EXIST"); ok {
					t.Errorf("should not have resolved")
				}
			}
		})
	}
}

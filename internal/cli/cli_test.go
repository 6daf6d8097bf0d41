package cli_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/favonia/tinyutils/internal/cli"
	"github.com/favonia/tinyutils/internal/config"
	"github.com/favonia/tinyutils/internal/file"
	"github.com/favonia/tinyutils/internal/pp"
	"github.com/favonia/tinyutils/internal/report"
)

type harness struct {
	diag   strings.Builder
	out    strings.Builder
	stdout strings.Builder
	stderr strings.Builder
	env    *cli.Env
}

func newHarness(t *testing.T, files map[string]string) *harness {
	t.Helper()

	memfs := afero.NewMemMapFs()
	for path, content := range files {
		require.NoError(t, afero.WriteFile(memfs, path, []byte(content), 0o644))
	}
	file.FS = afero.NewReadOnlyFs(memfs)
	t.Cleanup(func() { file.FS = afero.NewOsFs() })

	h := &harness{}
	h.env = &cli.Env{
		PP:      pp.New(&h.diag).SetEmoji(false),
		Out:     pp.New(&h.out).SetEmoji(false),
		Stdout:  &h.stdout,
		Stderr:  &h.stderr,
		Config:  config.Default(),
		Version: "v0.0.0-test",
	}
	return h
}

//nolint:paralleltest // changing file.FS
func TestCompare(t *testing.T) {
	h := newHarness(t, map[string]string{"/a.txt": "apple\nbanana\n", "/b.txt": ""})

	require.Equal(t, 0, cli.Execute(h.env, []string{"compare", "/a.txt", "/b.txt"}))
	require.Equal(t, `Only in A (2 items, ascending):
   apple
   banana
Only in B (0 items, ascending):
Intersection (0 items, ascending):
Union (2 items, ascending):
   apple
   banana
`, h.out.String())
}

//nolint:paralleltest // changing file.FS
func TestCompareToggle(t *testing.T) {
	h := newHarness(t, map[string]string{"/a.txt": "1,2,3", "/b.txt": "2,3,4"})

	require.Equal(t, 0, cli.Execute(h.env, []string{"compare", "-t", "union", "--toggle", "only-in-b", "/a.txt", "/b.txt"}))
	require.Contains(t, h.out.String(), "Union (4 items, descending):\n   4\n   3\n   2\n   1\n")
	require.Contains(t, h.out.String(), "Only in B (1 item, descending):\n   4\n")
	require.Contains(t, h.out.String(), "Intersection (2 items, ascending):\n   2\n   3\n")
}

//nolint:paralleltest // changing file.FS
func TestCompareJSON(t *testing.T) {
	h := newHarness(t, map[string]string{"/a.txt": "1,2,3", "/b.txt": "2,3,4"})
	h.env.Config.Format = report.JSON

	require.Equal(t, 0, cli.Execute(h.env, []string{"compare", "/a.txt", "/b.txt"}))
	require.Empty(t, h.out.String())

	var decoded struct {
		Comparison struct {
			Panels []struct {
				Name  string   `json:"name"`
				Items []string `json:"items"`
			} `json:"panels"`
		} `json:"comparison"`
	}
	require.NoError(t, json.Unmarshal([]byte(h.stdout.String()), &decoded))
	require.Len(t, decoded.Comparison.Panels, 4)
	require.Equal(t, "intersection", decoded.Comparison.Panels[2].Name)
	require.Equal(t, []string{"2", "3"}, decoded.Comparison.Panels[2].Items)
}

//nolint:paralleltest // changing file.FS
func TestCompareFailures(t *testing.T) {
	for name, tc := range map[string]struct {
		args    []string
		message string
	}{
		"missing-file": {[]string{"compare", "/a.txt", "/nowhere.txt"}, `Failed to read "/nowhere.txt"`},
		"bad-toggle":   {[]string{"compare", "-t", "unique", "/a.txt", "/a.txt"}, `"unique" is not one of`},
		"arg-count":    {[]string{"compare", "/a.txt"}, "accepts 2 arg(s), received 1"},
		"bad-command":  {[]string{"contrast"}, `unknown command "contrast"`},
	} {
		t.Run(name, func(t *testing.T) {
			h := newHarness(t, map[string]string{"/a.txt": "x"})
			require.Equal(t, 1, cli.Execute(h.env, tc.args))
			require.Contains(t, h.diag.String(), tc.message)
			require.Empty(t, h.out.String())
		})
	}
}

//nolint:paralleltest // changing file.FS
func TestDupes(t *testing.T) {
	for name, tc := range map[string]struct {
		content  string
		args     []string
		expected string
	}{
		"duplicates": {"a, b, a\nc", nil, "Duplicated Items (1 item):\n   a: 2 times\n"},
		"none":       {"a,b,c", nil, "No duplicates found!\n"},
		"empty":      {"  \n ", nil, "No duplicates found!\n"},
		"remove":     {"3,1,3,2", []string{"--remove"}, "Results (3 items, ascending):\n   1\n   2\n   3\n"},
		"remove-desc": {
			"b,a,b,c", []string{"-r", "--order", "desc"},
			"Results (3 items, descending):\n   c\n   b\n   a\n",
		},
	} {
		t.Run(name, func(t *testing.T) {
			h := newHarness(t, map[string]string{"/list.txt": tc.content})
			args := append([]string{"dupes"}, tc.args...)
			args = append(args, "/list.txt")
			require.Equal(t, 0, cli.Execute(h.env, args))
			require.Equal(t, tc.expected, h.out.String())
		})
	}
}

//nolint:paralleltest // changing file.FS
func TestDupesBadOrder(t *testing.T) {
	h := newHarness(t, map[string]string{"/list.txt": "a"})
	require.Equal(t, 1, cli.Execute(h.env, []string{"dupes", "-r", "--order", "up", "/list.txt"}))
	require.Contains(t, h.diag.String(), `--order ("up") is neither "asc" nor "desc"`)
}

//nolint:paralleltest // changing file.FS
func TestDupesYAML(t *testing.T) {
	h := newHarness(t, map[string]string{"/list.txt": "a, b, a\nc"})
	h.env.Config.Format = report.YAML

	require.Equal(t, 0, cli.Execute(h.env, []string{"dupes", "/list.txt"}))
	require.YAMLEq(t, `
duplicates:
  status: has-duplicates
  duplicates:
  - item: a
    count: 2
`, h.stdout.String())
}

//nolint:paralleltest // changing file.FS
func TestSession(t *testing.T) {
	h := newHarness(t, map[string]string{
		"/script.txt": "set a 1,2\nset b 2\ncompare\ntoggle only-in-a\nset text x,x\ncheck\n",
	})

	require.Equal(t, 0, cli.Execute(h.env, []string{"session", "/script.txt"}))
	require.Equal(t, `Only in A (1 item, ascending):
   1
Only in B (0 items, ascending):
Intersection (1 item, ascending):
   2
Union (2 items, ascending):
   1
   2
Only in A (1 item, descending):
   1
Duplicated Items (1 item):
   x: 2 times
`, h.out.String())
}

//nolint:paralleltest // changing file.FS
func TestSessionFailure(t *testing.T) {
	h := newHarness(t, map[string]string{"/script.txt": "set a 1\ncompare\nexplode\n"})

	require.Equal(t, 1, cli.Execute(h.env, []string{"session", "/script.txt"}))
	require.Contains(t, h.diag.String(), "Script stopped at line 3")
	require.Contains(t, h.out.String(), "Only in A (1 item, ascending):")
}

//nolint:paralleltest // changing file.FS
func TestSessionJSON(t *testing.T) {
	h := newHarness(t, map[string]string{"/script.txt": "set text 1,1\nremove\norder\n"})
	h.env.Config.Format = report.JSON

	require.Equal(t, 0, cli.Execute(h.env, []string{"session", "/script.txt"}))
	require.JSONEq(t, `{"duplicates":{
		"status":"not-checked",
		"duplicates":[],
		"unique":{"name":"unique","title":"Results","order":"desc","mode":"numeric","count":1,"items":["1"]}
	}}`, h.stdout.String())
}

//nolint:paralleltest // changing file.FS
func TestVersion(t *testing.T) {
	h := newHarness(t, nil)
	require.Equal(t, 0, cli.Execute(h.env, []string{"--version"}))
	require.Contains(t, h.stderr.String(), "v0.0.0-test")
}

//nolint:paralleltest // changing file.FS
func TestDupesRemoveHint(t *testing.T) {
	for name, tc := range map[string]struct {
		args  []string
		shown bool
	}{
		"check":  {[]string{"dupes", "/list.txt"}, true},
		"remove": {[]string{"dupes", "--remove", "/list.txt"}, false},
	} {
		t.Run(name, func(t *testing.T) {
			h := newHarness(t, map[string]string{"/list.txt": "a,a"})
			require.Equal(t, 0, cli.Execute(h.env, tc.args))
			if tc.shown {
				require.Contains(t, h.diag.String(), "Remove the duplicates")
			} else {
				require.NotContains(t, h.diag.String(), "Remove the duplicates")
			}
		})
	}
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

//nolint:paralleltest // changing file.FS
func TestRenderFailure(t *testing.T) {
	h := newHarness(t, map[string]string{"/list.txt": "a,a"})
	h.env.PP = pp.New(&h.diag)
	h.env.Stdout = brokenWriter{}
	h.env.Config.Format = report.JSON
	require.Equal(t, 1, cli.Execute(h.env, []string{"dupes", "/list.txt"}))
	require.Contains(t, h.diag.String(), string(pp.EmojiError)+" Failed to write the results: disk full")
}

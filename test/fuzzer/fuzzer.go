// Package fuzzer implements the libFuzzer-style entry points for OSS-Fuzz.
package fuzzer

import (
	"io"
	"log"
	"strings"

	"go.uber.org/mock/gomock"
	"golang.org/x/text/language"

	"github.com/favonia/tinyutils/internal/item"
	"github.com/favonia/tinyutils/internal/mocks"
	"github.com/favonia/tinyutils/internal/pp"
	"github.com/favonia/tinyutils/internal/session"
	"github.com/favonia/tinyutils/internal/setalg"
	"github.com/favonia/tinyutils/internal/sorter"
)

type Reporter struct{}

func (r Reporter) Errorf(format string, args ...any) {
	log.Fatalf(format, args...)
}

func (r Reporter) Fatalf(format string, args ...any) {
	log.Fatalf(format, args...)
}

// Compare splits the input at the first NUL byte into two lists and checks
// that the comparison partitions the union.
func Compare(bytes []byte) int {
	rawA, rawB, _ := strings.Cut(string(bytes), "\x00")
	res := setalg.Compare(item.Split(rawA), item.Split(rawB))

	if len(res.OnlyInA)+len(res.OnlyInB)+len(res.Intersection) != len(res.Union) {
		log.Fatalf("the panels of %q do not partition the union", bytes)
	}

	s := sorter.New(language.Und)
	for _, items := range [][]string{res.OnlyInA, res.OnlyInB, res.Intersection, res.Union} {
		if len(s.Sort(items, sorter.Descending)) != len(items) {
			log.Fatalf("sorting %q changed the number of items", items)
		}
	}

	return 0
}

// RunScript runs the input as a session script without printing results.
func RunScript(bytes []byte) int {
	mockCtrl := gomock.NewController(Reporter{})
	defer mockCtrl.Finish()

	mockPP := mocks.NewMockPP(mockCtrl)
	for n := range 3 {
		args := make([]any, n)
		for i := range args {
			args[i] = gomock.Any()
		}
		mockPP.EXPECT().Infof(gomock.Any(), gomock.Any(), args...).AnyTimes()
		mockPP.EXPECT().Noticef(gomock.Any(), gomock.Any(), args...).AnyTimes()
		mockPP.EXPECT().Hintf(gomock.Any(), gomock.Any(), args...).AnyTimes()
	}

	s := session.New(mockPP, pp.New(io.Discard), sorter.New(language.Und), sorter.Ascending)
	s.ReadFile = func(_ pp.PP, path string) (string, bool) { return path, true }
	_ = s.Run(string(bytes))

	return 0
}

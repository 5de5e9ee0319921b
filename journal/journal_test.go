package journal_test

import (
	"testing"

	"github.com/dashlaunch/dashlaunch/common"
	"github.com/dashlaunch/dashlaunch/hamlet"
	"github.com/dashlaunch/dashlaunch/journal"
)

func TestJournalCanBeCalled(t *testing.T) {
	must, wont := hamlet.Specifications(t)

	common.Product.ForceHome(t.TempDir())
	defer common.Product.ForceHome("")

	must.Equal("foo bar", journal.Unify("  foo  \t  \r\n   bar  "))

	common.ControllerType = "unittest"

	must.Nil(journal.Post("launch", "journal-1", "from journal/journal_test.go"))
	events, err := journal.Events()
	must.Nil(err)
	wont.Nil(events)
	must.True(len(events) > 0)
	must.Nil(journal.Post("launch", "journal-2", "from journal/journal_test.go"))
	second, err := journal.Events()
	must.Nil(err)
	must.True(len(second) > len(events))
	must.Equal("dashlaunch.unittest", second[0].Controller)
}

func TestEmptyJournalIsNotAnError(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	common.Product.ForceHome(t.TempDir())
	defer common.Product.ForceHome("")

	events, err := journal.Events()
	must.Nil(err)
	must.Equal(0, len(events))
}

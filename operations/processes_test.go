package operations_test

import (
	"os"
	"testing"

	"github.com/dashlaunch/dashlaunch/hamlet"
	"github.com/dashlaunch/dashlaunch/operations"
)

func TestSnapshotSeesThisProcess(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	processes, err := operations.Snapshot()
	must_be.Nil(err)
	_, found := processes[os.Getpid()]
	must_be.True(found)
}

func TestSnapshotsCanBeDiffed(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	before, err := operations.Snapshot()
	must_be.Nil(err)
	after, err := operations.Snapshot()
	must_be.Nil(err)
	wont_be.True(len(before) == 0)
	wont_be.True(len(after) == 0)
}

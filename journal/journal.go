package journal

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/dashlaunch/dashlaunch/common"
	"github.com/dashlaunch/dashlaunch/pathlib"
)

// Append-only launch journal: one json object per line in the product
// home, recording what was launched, when, and how it went.

type Entry struct {
	When       int64  `json:"when"`
	Controller string `json:"controller"`
	Event      string `json:"event"`
	Detail     string `json:"detail"`
	Comment    string `json:"comment,omitempty"`
}

var writing sync.Mutex

func Unify(value string) string {
	return strings.Join(strings.Fields(value), " ")
}

func Post(event, detail, commentForm string, fields ...interface{}) (err error) {
	entry := Entry{
		When:       time.Now().Unix(),
		Controller: common.ControllerIdentity(),
		Event:      Unify(event),
		Detail:     Unify(detail),
		Comment:    Unify(fmt.Sprintf(commentForm, fields...)),
	}
	blob, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("could not serialize journal entry, reason: %w", err)
	}
	writing.Lock()
	defer writing.Unlock()
	err = pathlib.EnsureDirectoryExists(common.Product.Home())
	if err != nil {
		return err
	}
	return pathlib.AppendFile(common.Product.JournalFile(), append(blob, '\n'))
}

func Events() ([]Entry, error) {
	writing.Lock()
	defer writing.Unlock()
	source := common.Product.JournalFile()
	if !pathlib.IsFile(source) {
		return []Entry{}, nil
	}
	blob, err := os.ReadFile(source)
	if err != nil {
		return nil, err
	}
	result := make([]Entry, 0, 100)
	for _, line := range strings.SplitAfter(string(blob), "\n") {
		flat := strings.TrimSpace(line)
		if len(flat) == 0 {
			continue
		}
		var entry Entry
		err = json.Unmarshal([]byte(flat), &entry)
		if err != nil {
			common.Uncritical("journal", err)
			continue
		}
		result = append(result, entry)
	}
	return result, nil
}

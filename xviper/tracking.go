package xviper

import (
	"crypto/sha256"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/dashlaunch/dashlaunch/common"
)

const (
	trackingIdentityKey = `tracking.identity`
)

var (
	guidSteps = []int{4, 2, 2, 2, 6}
)

func AsGuid(content []byte) string {
	result := make([]string, 0, len(guidSteps))
	for _, step := range guidSteps {
		result = append(result, fmt.Sprintf("%02x", content[:step]))
		content = content[step:]
	}
	return strings.Join(result, "-")
}

func generateRandomIdentity() string {
	now := time.Now()
	digester := sha256.New()
	content := fmt.Sprintf("ID: %v/%v/%v/%v", common.UserHomeIdentity(), now.Format(time.RFC3339Nano), rand.Uint64(), rand.Uint64())
	digester.Write([]byte(content))
	return AsGuid(digester.Sum(nil))
}

// TrackingIdentity is a stable anonymous identity for this installation,
// used only to tag journal entries from the same machine.
func TrackingIdentity() string {
	identity := GetString(trackingIdentityKey)
	if len(identity) == 0 {
		identity = generateRandomIdentity()
		Set(trackingIdentityKey, identity)
	}
	return identity
}

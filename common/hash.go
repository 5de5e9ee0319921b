package common

import (
	"fmt"

	"github.com/dchest/siphash"
)

const (
	sipKeyLeft  = uint64(9007199254740993)
	sipKeyRight = uint64(2147483647)
)

func Siphash(left, right uint64, body []byte) uint64 {
	return siphash.Hash(left, right, body)
}

// BlueprintHash gives a short stable fingerprint for content, used to
// detect when an installed dependency set no longer matches configuration.
func BlueprintHash(content []byte) string {
	return fmt.Sprintf("%016x", Siphash(sipKeyLeft, sipKeyRight, content))
}

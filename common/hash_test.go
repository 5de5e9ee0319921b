package common_test

import (
	"testing"

	"github.com/dashlaunch/dashlaunch/common"
	"github.com/dashlaunch/dashlaunch/hamlet"
)

func TestBlueprintHashIsStable(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	first := common.BlueprintHash([]byte("streamlit requests pandas"))
	second := common.BlueprintHash([]byte("streamlit requests pandas"))
	must_be.Equal(first, second)
	must_be.Equal(16, len(first))
	wont_be.Equal(first, common.BlueprintHash([]byte("streamlit requests")))
}

func TestUserHomeIdentityIsStable(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	first := common.UserHomeIdentity()
	must_be.Equal(first, common.UserHomeIdentity())
	must_be.Equal(16, len(first))
}

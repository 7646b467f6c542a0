package pure_utils

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Adityakk9031/FirAgent/utils"
)

func TestMap(t *testing.T) {
	assert.Equal(t, []string{"1", "2"}, Map([]int{1, 2}, strconv.Itoa))

	out := Map([]int(nil), strconv.Itoa)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestNilIfBlank(t *testing.T) {
	assert.Nil(t, NilIfBlank(nil))
	assert.Nil(t, NilIfBlank(utils.Ptr("   ")))
	assert.Equal(t, "Pune", *NilIfBlank(utils.Ptr(" Pune ")))
}

package itf

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeDBName(t *testing.T) {
	assert.Equal(t, "testrepositories_postgres", SanitizeDBName("TestRepositories/Postgres"))
	assert.Equal(t, "a_b_c", SanitizeDBName("--a..b (c)--"))
	assert.Equal(t, "test_db", SanitizeDBName("///"))

	long := "Test" + strings.Repeat("VeryLongSubtestName/", 10)
	got := SanitizeDBName(long)
	assert.LessOrEqual(t, len(got), maxDBNameLength)
	assert.NotEqual(t, got, SanitizeDBName(long+"x"))
}

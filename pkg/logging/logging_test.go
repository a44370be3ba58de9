package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestFileLogger_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "import.log")

	f, logger, err := FileLogger(logrus.InfoLevel, path)
	require.NoError(t, err)
	logger.WithField("journal_id", 7).Info("imported")
	require.NoError(t, f.Close())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(b), `"journal_id":7`)
}

func TestConsoleLogger_Level(t *testing.T) {
	require.Equal(t, logrus.DebugLevel, ConsoleLogger(logrus.DebugLevel).GetLevel())
}

func TestNop_DiscardsInfo(t *testing.T) {
	require.False(t, Nop().Logger.IsLevelEnabled(logrus.InfoLevel))
}

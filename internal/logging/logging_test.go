package logging

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_LevelAndFormat(t *testing.T) {
	logger := logrus.New()

	closer, err := Setup(logger, afero.NewMemMapFs(), Options{Level: "debug", JSON: true})
	require.NoError(t, err)
	assert.Nil(t, closer)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())

	var buf bytes.Buffer
	logger.SetOutput(&buf)
	logger.WithField("component", "test").Info("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "test", entry["component"])
}

func TestSetup_InvalidLevelFallsBackToInfo(t *testing.T) {
	logger := logrus.New()

	_, err := Setup(logger, afero.NewMemMapFs(), Options{Level: "chatty"})
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)
}

func TestSetup_WritesToDatedFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	logger := logrus.New()

	closer, err := Setup(logger, fs, Options{Level: "info", Dir: "/var/log/swipeplayer"})
	require.NoError(t, err)
	require.NotNil(t, closer)

	logger.Info("first line")
	require.NoError(t, closer.Close())

	data, err := afero.ReadFile(fs, filepath.Join("/var/log/swipeplayer", FileName(time.Now())))
	require.NoError(t, err)
	assert.Contains(t, string(data), "first line")
}

func TestFileName(t *testing.T) {
	day := time.Date(2025, 3, 7, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "2025-03-07.log", FileName(day))
}

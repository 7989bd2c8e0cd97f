package commands_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfbio/mulled/pkg/commands"
	"github.com/nfbio/mulled/pkg/errdefs"
	"github.com/nfbio/mulled/pkg/mulled"
)

const knownImageName = "mulled-v2-619c3451ae694e3b30049169ccc46ef686f36023:ae300b3d4defea6364e0ce14717cec2fbe35b21d-0"

func newMockRegistry(t *testing.T, statusCode int) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(statusCode)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestGenerateCommand(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := commands.NewGenerateCommand().ToCLI()
	cmd.Writer = buf

	err := cmd.Run(t.Context(), []string{"generate", "samtools==1.9", "bcftools==1.9"})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), knownImageName)
	assert.Contains(t, buf.String(), mulled.DefaultRegistryBaseURL+"/"+knownImageName+"/")
}

func TestGenerateCommand_Check(t *testing.T) {
	server := newMockRegistry(t, http.StatusOK)

	buf := &bytes.Buffer{}
	cmd := commands.NewGenerateCommand().ToCLI()
	cmd.Writer = buf

	err := cmd.Run(t.Context(), []string{
		"generate", "--check", "--registry", server.URL, "samtools==1.9", "bcftools==1.9",
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), knownImageName)
	assert.Contains(t, buf.String(), "image found in the registry")
}

func TestGenerateCommand_JSON(t *testing.T) {
	server := newMockRegistry(t, http.StatusNotFound)

	buf := &bytes.Buffer{}
	cmd := commands.NewGenerateCommand().ToCLI()
	cmd.Writer = buf

	err := cmd.Run(t.Context(), []string{
		"generate", "--output", "json", "--check", "--registry", server.URL, "samtools==1.9", "bcftools==1.9",
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"image": "`+knownImageName+`"`)
	assert.Contains(t, buf.String(), `"exists": false`)
}

func TestGenerateCommand_BaseImageAndBuildNumber(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := commands.NewGenerateCommand().ToCLI()
	cmd.Writer = buf

	err := cmd.Run(t.Context(), []string{"generate", "--build-number", "3", "samtools==1.9"})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "samtools:1.9--3")
}

func TestGenerateCommand_InvalidBuildNumber(t *testing.T) {
	for _, badValue := range []string{"abc", "-1"} {
		cmd := commands.NewGenerateCommand().ToCLI()
		cmd.Writer = &bytes.Buffer{}

		err := cmd.Run(t.Context(), []string{"generate", "--build-number", badValue, "samtools==1.9"})
		require.Error(t, err)
		assert.ErrorIs(t, err, errdefs.ErrInvalidParameter)
	}
}

func TestGenerateCommand_BadSpecification(t *testing.T) {
	cmd := commands.NewGenerateCommand().ToCLI()
	cmd.Writer = &bytes.Buffer{}

	err := cmd.Run(t.Context(), []string{"generate", "numpy"})
	require.Error(t, err)
	assert.ErrorIs(t, err, mulled.ErrBadFormat)
}

func TestParseCommand(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := commands.NewParseCommand().ToCLI()
	cmd.Writer = buf

	err := cmd.Run(t.Context(), []string{"parse", "samtools==1.9", "bcftools=1.9"})
	require.NoError(t, err)
	assert.Equal(t, "samtools\t1.9\nbcftools\t1.9\n", buf.String())
}

func TestParseCommand_JSON(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := commands.NewParseCommand().ToCLI()
	cmd.Writer = buf

	err := cmd.Run(t.Context(), []string{"parse", "--output", "json", "samtools==1.9"})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"tool": "samtools", "version": "1.9"}]`, buf.String())
}

func TestParseCommand_BadVersion(t *testing.T) {
	cmd := commands.NewParseCommand().ToCLI()
	cmd.Writer = &bytes.Buffer{}

	err := cmd.Run(t.Context(), []string{"parse", "numpy==notaversion"})
	require.Error(t, err)
	assert.ErrorIs(t, err, mulled.ErrBadVersion)
}

func TestExistsCommand(t *testing.T) {
	server := newMockRegistry(t, http.StatusOK)

	buf := &bytes.Buffer{}
	cmd := commands.NewExistsCommand().ToCLI()
	cmd.Writer = buf

	err := cmd.Run(t.Context(), []string{"exists", "--registry", server.URL, knownImageName})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "image found")
}

func TestExistsCommand_NotFound(t *testing.T) {
	server := newMockRegistry(t, http.StatusNotFound)

	cmd := commands.NewExistsCommand().ToCLI()
	cmd.Writer = &bytes.Buffer{}

	err := cmd.Run(t.Context(), []string{"exists", "--registry", server.URL, knownImageName})
	require.Error(t, err)
	assert.ErrorIs(t, err, errdefs.ErrNotFound)
}

func TestVersionCommand(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := commands.NewVersionCommand().ToCLI()
	cmd.Writer = buf

	err := cmd.Run(t.Context(), []string{"version", "--short"})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "dev")
}

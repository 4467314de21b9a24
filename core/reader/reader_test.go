package reader

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"filepreview-app/core/domain"
	coreerrors "filepreview-app/core/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileWithContent(name, content string) domain.CandidateFile {
	return domain.CandidateFile{
		Name: name,
		Size: int64(len(content)),
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader(content)), nil
		},
	}
}

func await(t *testing.T, ch <-chan domain.ReadOutcome) domain.ReadOutcome {
	t.Helper()
	select {
	case outcome := <-ch:
		return outcome
	case <-time.After(2 * time.Second):
		t.Fatal("read did not complete")
		return domain.ReadOutcome{}
	}
}

func TestReader_DecodesUTF8(t *testing.T) {
	r := NewReader(nil)

	outcome := await(t, r.Read(context.Background(), fileWithContent("a.txt", "héllo\nwörld")))

	require.NoError(t, outcome.Err)
	assert.Equal(t, "héllo\nwörld", outcome.Text)
}

func TestReader_StripsByteOrderMark(t *testing.T) {
	r := NewReader(nil)

	outcome := await(t, r.Read(context.Background(), fileWithContent("a.txt", "\xef\xbb\xbfhello")))

	require.NoError(t, outcome.Err)
	assert.Equal(t, "hello", outcome.Text)
}

func TestReader_ReplacesInvalidBytes(t *testing.T) {
	r := NewReader(nil)

	outcome := await(t, r.Read(context.Background(), fileWithContent("a.txt", "ok\xffok")))

	require.NoError(t, outcome.Err)
	assert.Equal(t, "ok\uFFFDok", outcome.Text)
}

func TestReader_OpenFailureIsReadFailure(t *testing.T) {
	r := NewReader(nil)
	f := domain.CandidateFile{
		Name: "locked.txt",
		Size: 10,
		Open: func() (io.ReadCloser, error) {
			return nil, errors.New("permission denied")
		},
	}

	outcome := await(t, r.Read(context.Background(), f))

	require.Error(t, outcome.Err)
	assert.True(t, coreerrors.IsKind(outcome.Err, domain.ReadFailure))
	assert.Contains(t, outcome.Err.Error(), "permission denied")
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, io.ErrUnexpectedEOF
}

func TestReader_IOErrorIsReadFailure(t *testing.T) {
	r := NewReader(nil)
	f := domain.CandidateFile{
		Name: "broken.txt",
		Size: 10,
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(failingReader{}), nil
		},
	}

	outcome := await(t, r.Read(context.Background(), f))

	assert.True(t, coreerrors.IsKind(outcome.Err, domain.ReadFailure))
	assert.ErrorIs(t, outcome.Err, io.ErrUnexpectedEOF)
}

func TestReader_MissingOpenerIsReadFailure(t *testing.T) {
	outcome := await(t, NewReader(nil).Read(context.Background(), domain.CandidateFile{Name: "a.txt", Size: 1}))

	assert.ErrorIs(t, outcome.Err, domain.ErrNoContent)
}

func TestReader_MaxBytes(t *testing.T) {
	r := NewReader(nil, WithMaxBytes(4))

	outcome := await(t, r.Read(context.Background(), fileWithContent("big.txt", "12345")))
	assert.ErrorIs(t, outcome.Err, ErrTooLarge)

	outcome = await(t, r.Read(context.Background(), fileWithContent("fits.txt", "1234")))
	require.NoError(t, outcome.Err)
	assert.Equal(t, "1234", outcome.Text)
}

func TestReader_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	outcome := await(t, NewReader(nil).Read(ctx, fileWithContent("a.txt", "hello")))

	assert.ErrorIs(t, outcome.Err, context.Canceled)
}

func TestReader_DoesNotBlockCaller(t *testing.T) {
	release := make(chan struct{})
	f := domain.CandidateFile{
		Name: "slow.txt",
		Size: 5,
		Open: func() (io.ReadCloser, error) {
			<-release
			return io.NopCloser(strings.NewReader("hello")), nil
		},
	}

	ch := NewReader(nil).Read(context.Background(), f)

	select {
	case <-ch:
		t.Fatal("read completed before content was released")
	default:
	}

	close(release)
	outcome := await(t, ch)
	assert.Equal(t, "hello", outcome.Text)
}

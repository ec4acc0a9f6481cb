package resolver

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mxpv/ooyala/pkg/config"
	"github.com/mxpv/ooyala/pkg/model"
)

func TestGetMetadata(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	body := `{"metadata":{"abc":{"base":{"title":"First","duration":120}},"def":{"base":{"title":"Second"}}}}`

	transport := NewMockTransport(ctrl)
	transport.EXPECT().
		Get(gomock.Any(), "https://player.ooyala.com/player_api/v1/metadata/embed_code/branding/abc,def?videoPcode=pcode").
		Return(&Response{StatusCode: 200, Body: []byte(body)}, nil)

	r := newResolver(t, NewMockHost(ctrl), transport, &fakeClock{}, config.Settings{})

	out, err := r.GetMetadata(context.Background(), "abc", "def")
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "First", out["abc"]["title"])
	assert.EqualValues(t, 120, out["abc"]["duration"])
	assert.Equal(t, "Second", out["def"]["title"])
}

func TestGetMetadataProviderError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	transport := NewMockTransport(ctrl)
	transport.EXPECT().Get(gomock.Any(), gomock.Any()).
		Return(&Response{StatusCode: 200, Body: []byte(`{"errors":{"code":"1","message":"invalid pcode"}}`)}, nil)

	r := newResolver(t, NewMockHost(ctrl), transport, &fakeClock{}, config.Settings{})

	_, err := r.GetMetadata(context.Background(), "abc")
	require.Error(t, err)

	merr, ok := err.(*model.MetadataError)
	require.True(t, ok)
	assert.Equal(t, "invalid pcode", merr.Message)
}

func TestGetMetadataNoRetry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	transport := NewMockTransport(ctrl)
	transport.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused")).Times(1)

	clock := &fakeClock{}
	r := newResolver(t, NewMockHost(ctrl), transport, clock, config.Settings{})

	_, err := r.GetMetadata(context.Background(), "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
	assert.Empty(t, clock.waits)
}

func TestGetMetadataMissingInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r := newResolver(t, NewMockHost(ctrl), NewMockTransport(ctrl), &fakeClock{}, config.Settings{})

	_, err := r.GetMetadata(context.Background())
	assert.Equal(t, model.ErrMissingInput, err)
}

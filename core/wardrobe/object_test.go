package wardrobe_test

import (
	"context"
	"testing"

	"outfit-picker/core/storage/mocks"
	"outfit-picker/core/wardrobe"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func objectChannel(keys ...string) <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo, len(keys))
	for _, k := range keys {
		ch <- minio.ObjectInfo{Key: k}
	}
	close(ch)
	return ch
}

func TestObjectLister_ListDir(t *testing.T) {
	client := new(mocks.Client)
	client.On("ListObjects", mock.Anything, "closet-bucket", mock.MatchedBy(func(opts minio.ListObjectsOptions) bool {
		return opts.Prefix == "closet/" && !opts.Recursive
	})).Return(objectChannel(
		"closet/",
		"closet/tops/",
		"closet/shoes/",
		"closet/stray.txt",
	))

	l := wardrobe.NewObjectLister(client, "closet-bucket")
	entries, err := l.ListDir(context.Background(), "closet")
	require.NoError(t, err)

	assert.Equal(t, []wardrobe.Entry{
		{Name: "shoes", Dir: true},
		{Name: "stray.txt", Dir: false},
		{Name: "tops", Dir: true},
	}, entries)
	client.AssertExpectations(t)
}

func TestObjectLister_MissingPrefix(t *testing.T) {
	client := new(mocks.Client)
	client.On("ListObjects", mock.Anything, "closet-bucket", mock.Anything).
		Return(objectChannel())

	l := wardrobe.NewObjectLister(client, "closet-bucket")
	_, err := l.ListDir(context.Background(), "closet/missing")
	assert.ErrorIs(t, err, wardrobe.ErrNotFound)
}

func TestObjectLister_ListError(t *testing.T) {
	ch := make(chan minio.ObjectInfo, 1)
	ch <- minio.ObjectInfo{Err: assert.AnError}
	close(ch)

	client := new(mocks.Client)
	client.On("ListObjects", mock.Anything, "closet-bucket", mock.Anything).
		Return((<-chan minio.ObjectInfo)(ch))

	l := wardrobe.NewObjectLister(client, "closet-bucket")
	_, err := l.ListDir(context.Background(), "closet")
	assert.ErrorIs(t, err, assert.AnError)
}

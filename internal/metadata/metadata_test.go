package metadata

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ZilDuck/nft-marketplace/internal/entity"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() Service {
	client := retryablehttp.NewClient()
	client.RetryMax = 0
	client.Logger = nil

	c := cache.New(time.Minute, time.Minute)

	return NewMetadataService(client, c)
}

func TestGetCollectionMetadata(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"name":"Ducks","symbol":"DUCK"}`))
	}))
	defer srv.Close()

	svc := newTestService()

	md, err := svc.GetCollectionMetadata(entity.Collection{Contract: "0xabc", MetadataUri: srv.URL})
	require.NoError(t, err)
	assert.Equal(t, "Ducks", md["name"])
	assert.Equal(t, "DUCK", md["symbol"])
}

func TestGetCollectionMetadata_Cached(t *testing.T) {
	var hits int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&hits, 1)
		_, _ = w.Write([]byte(`{"name":"Ducks"}`))
	}))
	defer srv.Close()

	svc := newTestService()
	collection := entity.Collection{Contract: "0xabc", MetadataUri: srv.URL}

	_, err := svc.GetCollectionMetadata(collection)
	require.NoError(t, err)
	_, err = svc.GetCollectionMetadata(collection)
	require.NoError(t, err)

	assert.Equal(t, int64(1), atomic.LoadInt64(&hits))
}

func TestGetCollectionMetadata_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	svc := newTestService()

	_, err := svc.GetCollectionMetadata(entity.Collection{Contract: "0xabc", MetadataUri: srv.URL})
	assert.Error(t, err)
}

func TestGetCollectionMetadata_UnsupportedScheme(t *testing.T) {
	svc := newTestService()

	_, err := svc.GetCollectionMetadata(entity.Collection{Contract: "0xabc", MetadataUri: "ftp://nope"})
	assert.ErrorIs(t, err, ErrUnsupportedScheme)
}

func TestResolveUri_Ipfs(t *testing.T) {
	uri, err := resolveUri("ipfs://QmHash/collection.json")
	require.NoError(t, err)
	assert.Equal(t, "https://ipfs.io/ipfs/QmHash/collection.json", uri)
}

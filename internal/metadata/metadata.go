package metadata

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"github.com/ZilDuck/nft-marketplace/internal/entity"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/patrickmn/go-cache"
)

var ErrUnsupportedScheme = errors.New("metadata: unsupported uri scheme")

const ipfsGateway = "https://ipfs.io/ipfs/"

type Service interface {
	GetCollectionMetadata(collection entity.Collection) (map[string]interface{}, error)
}

type service struct {
	client *retryablehttp.Client
	cache  *cache.Cache
}

func NewMetadataService(client *retryablehttp.Client, cache *cache.Cache) Service {
	return service{client, cache}
}

func (s service) GetCollectionMetadata(collection entity.Collection) (map[string]interface{}, error) {
	if cached, found := s.cache.Get(collection.Slug()); found {
		return cached.(map[string]interface{}), nil
	}

	uri, err := resolveUri(collection.MetadataUri)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Get(uri)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return nil, errors.New(resp.Status)
	}

	buf := new(bytes.Buffer)
	_, err = buf.ReadFrom(resp.Body)
	if err != nil {
		return nil, err
	}

	var md map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &md); err != nil {
		return nil, err
	}

	s.cache.Set(collection.Slug(), md, cache.DefaultExpiration)

	return md, nil
}

func resolveUri(raw string) (string, error) {
	switch {
	case strings.HasPrefix(raw, "ipfs://"):
		return ipfsGateway + strings.TrimPrefix(raw, "ipfs://"), nil
	case strings.HasPrefix(raw, "https://"), strings.HasPrefix(raw, "http://"):
		return raw, nil
	}

	return "", ErrUnsupportedScheme
}

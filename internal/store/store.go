package store

import (
	"encoding/json"
	"time"

	bolt "go.etcd.io/bbolt"
)

var (
	CollectionsBucket = []byte("collections")
	OffersBucket      = []byte("offers")
	BidsBucket        = []byte("bids")
	LedgerBucket      = []byte("ledger")
)

var buckets = [][]byte{CollectionsBucket, OffersBucket, BidsBucket, LedgerBucket}

// Store is the bolt-backed persistence layer. Every marketplace operation
// commits its mutations in a single bolt transaction.
type Store struct {
	db *bolt.DB
}

func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range buckets {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Update(fn func(tx *bolt.Tx) error) error {
	return s.db.Update(fn)
}

func (s *Store) View(fn func(tx *bolt.Tx) error) error {
	return s.db.View(fn)
}

// Get unmarshals the value stored under key into out. The second return is
// false when the key is absent.
func (s *Store) Get(bucket, key []byte, out interface{}) (bool, error) {
	var raw []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bucket).Get(key); v != nil {
			raw = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	if raw == nil {
		return false, nil
	}

	return true, json.Unmarshal(raw, out)
}

// GetTx is Get inside an open transaction, for read-modify-write sequences
// that must observe earlier writes of the same transaction.
func GetTx(tx *bolt.Tx, bucket, key []byte, out interface{}) (bool, error) {
	v := tx.Bucket(bucket).Get(key)
	if v == nil {
		return false, nil
	}

	return true, json.Unmarshal(v, out)
}

func Put(tx *bolt.Tx, bucket, key []byte, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}

	return tx.Bucket(bucket).Put(key, raw)
}

package entity

// Entity is anything that can be persisted under a storage key.
type Entity interface {
	Slug() string
}

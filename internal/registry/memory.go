package registry

import (
	"sync"
)

// MemoryResolver maps contract addresses to in-process registry clients. Real
// deployments plug in an adapter speaking to the actual registry; the memory
// implementations below exist for tests and local runs.
type MemoryResolver struct {
	mtx        sync.RWMutex
	registries map[string]Client
}

func NewMemoryResolver() *MemoryResolver {
	return &MemoryResolver{registries: make(map[string]Client)}
}

func (r *MemoryResolver) Add(contract string, client Client) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.registries[contract] = client
}

func (r *MemoryResolver) Registry(contract string) (Client, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	client, ok := r.registries[contract]
	if !ok {
		return nil, ErrRegistryNotFound
	}

	return client, nil
}

// MemorySingleOwner is an in-memory registry with one owner per token.
type MemorySingleOwner struct {
	mtx         sync.RWMutex
	admin       string
	owners      map[uint64]string
	approvals   map[string]map[string]bool
	transferErr error
}

func NewMemorySingleOwner(admin string) *MemorySingleOwner {
	return &MemorySingleOwner{
		admin:     admin,
		owners:    make(map[uint64]string),
		approvals: make(map[string]map[string]bool),
	}
}

func (r *MemorySingleOwner) Mint(tokenId uint64, owner string) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.owners[tokenId] = owner
}

func (r *MemorySingleOwner) Approve(owner, operator string, approved bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if r.approvals[owner] == nil {
		r.approvals[owner] = make(map[string]bool)
	}
	r.approvals[owner][operator] = approved
}

func (r *MemorySingleOwner) SetAdministrator(admin string) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.admin = admin
}

// FailTransfers makes every subsequent Transfer return err. Pass nil to
// restore normal behaviour.
func (r *MemorySingleOwner) FailTransfers(err error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.transferErr = err
}

func (r *MemorySingleOwner) CurrentAdministrator() (string, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	return r.admin, nil
}

func (r *MemorySingleOwner) IsApprovedForTransfer(owner, operator string) (bool, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	return r.approvals[owner][operator], nil
}

func (r *MemorySingleOwner) OwnerOf(tokenId uint64) (string, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	owner, ok := r.owners[tokenId]
	if !ok {
		return "", ErrUnknownToken
	}

	return owner, nil
}

func (r *MemorySingleOwner) Transfer(from, to string, tokenId uint64) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if r.transferErr != nil {
		return r.transferErr
	}
	if r.owners[tokenId] != from {
		return ErrTransferDenied
	}

	r.owners[tokenId] = to

	return nil
}

// MemoryQuantityHolder is an in-memory registry with per-holder quantities.
type MemoryQuantityHolder struct {
	mtx         sync.RWMutex
	admin       string
	balances    map[uint64]map[string]uint64
	approvals   map[string]map[string]bool
	transferErr error
}

func NewMemoryQuantityHolder(admin string) *MemoryQuantityHolder {
	return &MemoryQuantityHolder{
		admin:     admin,
		balances:  make(map[uint64]map[string]uint64),
		approvals: make(map[string]map[string]bool),
	}
}

func (r *MemoryQuantityHolder) Mint(tokenId uint64, holder string, quantity uint64) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if r.balances[tokenId] == nil {
		r.balances[tokenId] = make(map[string]uint64)
	}
	r.balances[tokenId][holder] += quantity
}

func (r *MemoryQuantityHolder) Approve(owner, operator string, approved bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if r.approvals[owner] == nil {
		r.approvals[owner] = make(map[string]bool)
	}
	r.approvals[owner][operator] = approved
}

func (r *MemoryQuantityHolder) SetAdministrator(admin string) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.admin = admin
}

func (r *MemoryQuantityHolder) FailTransfers(err error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.transferErr = err
}

func (r *MemoryQuantityHolder) CurrentAdministrator() (string, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	return r.admin, nil
}

func (r *MemoryQuantityHolder) IsApprovedForTransfer(owner, operator string) (bool, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	return r.approvals[owner][operator], nil
}

func (r *MemoryQuantityHolder) BalanceOf(holder string, tokenId uint64) (uint64, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	return r.balances[tokenId][holder], nil
}

func (r *MemoryQuantityHolder) TransferQuantity(from, to string, tokenId, quantity uint64) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if r.transferErr != nil {
		return r.transferErr
	}
	if quantity == 0 {
		return nil
	}
	if r.balances[tokenId][from] < quantity {
		return ErrTransferDenied
	}

	r.balances[tokenId][from] -= quantity
	r.balances[tokenId][to] += quantity

	return nil
}

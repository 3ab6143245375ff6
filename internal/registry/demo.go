package registry

// NewDemoResolver builds a resolver pre-populated with in-memory registries so
// a local daemon can serve the full trade lifecycle without a real registry
// adapter. Each contract gets tokens 1..supply minted to admin, with operator
// approved to transfer on admin's behalf.
func NewDemoResolver(singleContracts, quantityContracts []string, admin, operator string, supply uint64) *MemoryResolver {
	resolver := NewMemoryResolver()

	for _, contract := range singleContracts {
		client := NewMemorySingleOwner(admin)
		for tokenId := uint64(1); tokenId <= supply; tokenId++ {
			client.Mint(tokenId, admin)
		}
		client.Approve(admin, operator, true)
		resolver.Add(contract, client)
	}

	for _, contract := range quantityContracts {
		client := NewMemoryQuantityHolder(admin)
		for tokenId := uint64(1); tokenId <= supply; tokenId++ {
			client.Mint(tokenId, admin, supply)
		}
		client.Approve(admin, operator, true)
		resolver.Add(contract, client)
	}

	return resolver
}
